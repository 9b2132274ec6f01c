package email

import "fmt"

// PreviewData contains sample template data for local preview/testing.
//
// It maps:
//
//	templateName -> (templateVariableName -> exampleValue)
var PreviewData = map[Template]map[string]string{
	TemplateTournamentCreated: {
		"TournamentID":     "1",
		"TournamentName":   "Campeonato de Andalucía Alevín",
		"Category":         "Autonómico",
		"Date":             "15 Apr 2024",
		"Location":         "Sevilla",
		"ParticipantCount": "120",
	},
}

// RenderPreview renders templateName with its PreviewData sample values.
func RenderPreview(templateName Template) (string, error) {
	data, ok := PreviewData[templateName]
	if !ok {
		return "", fmt.Errorf("no preview data for email template %q", templateName)
	}
	return Render(templateName, data)
}
