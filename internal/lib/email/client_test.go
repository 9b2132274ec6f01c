package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPreviewData(t *testing.T) {
	for name, data := range PreviewData {
		t.Run(string(name), func(t *testing.T) {
			html, err := Render(name, data)
			require.NoError(t, err)
			assert.Contains(t, html, data["TournamentName"])
			assert.Contains(t, html, data["Location"])
		})
	}
}

func TestRenderPreview(t *testing.T) {
	html, err := RenderPreview(TemplateTournamentCreated)
	require.NoError(t, err)
	assert.Contains(t, html, "Campeonato de Andalucía Alevín")

	_, err = RenderPreview(Template("missing"))
	assert.ErrorContains(t, err, "no preview data")
}

func TestRenderEscapesValues(t *testing.T) {
	html, err := Render(TemplateTournamentCreated, map[string]string{"TournamentName": "<b>Open</b>"})
	require.NoError(t, err)
	assert.NotContains(t, html, "<b>Open</b>")
	assert.Contains(t, html, "&lt;b&gt;Open&lt;/b&gt;")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)
	assert.Error(t, err)
}
