package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/swimmeet/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestReturnsFreshPayload(t *testing.T) {
	prototype := &model.CreateClubPayload{Name: "leftover"}

	first := newRequest(prototype)
	second := newRequest(prototype)

	require.NotNil(t, first)
	assert.NotSame(t, prototype, first)
	assert.NotSame(t, first, second)
	assert.Empty(t, first.Name)
}

func TestHandleBindsEachRequestIndependently(t *testing.T) {
	e := echo.New()

	var seen []string
	h := Handle(Handler{}, func(c echo.Context, req *model.CreateTournamentPayload) (*model.TournamentCreatedResponse, error) {
		seen = append(seen, req.Location)
		return &model.TournamentCreatedResponse{ID: int64(len(seen))}, nil
	}, http.StatusCreated, &model.CreateTournamentPayload{})

	bodies := []string{
		`{"tipo":"Open","nombre":"A","fecha":"01 Jan 2025","numero_participantes":1,"lugar":"Madrid"}`,
		`{"tipo":"Open","nombre":"B","fecha":"02 Jan 2025","numero_participantes":2,"lugar":"Bilbao"}`,
	}
	for _, body := range bodies {
		req := httptest.NewRequest(http.MethodPost, "/tournaments", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	assert.Equal(t, []string{"Madrid", "Bilbao"}, seen)
}

func TestJSONResponseHandlerOperation(t *testing.T) {
	assert.Equal(t, "handler", JSONResponseHandler{status: http.StatusOK}.GetOperation())
}
