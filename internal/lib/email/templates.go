package email

import "embed"

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateTournamentCreated corresponds to templates/tournament_created.html
	TemplateTournamentCreated Template = "tournament_created"
)

// templatesFS carries the HTML templates inside the binary.
//
//go:embed templates/*.html
var templatesFS embed.FS
