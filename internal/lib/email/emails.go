package email

import (
	"context"
	"fmt"
	"strconv"
)

// TournamentAnnouncement is the data rendered into the tournament_created template.
type TournamentAnnouncement struct {
	TournamentID     int64
	Name             string
	Category         string
	Date             string
	Location         string
	ParticipantCount int
}

// SendTournamentCreatedEmail announces a newly registered tournament.
func (c *Client) SendTournamentCreatedEmail(ctx context.Context, to string, t TournamentAnnouncement) error {
	// Keys must match what the HTML template expects.
	data := map[string]string{
		"TournamentID":     strconv.FormatInt(t.TournamentID, 10),
		"TournamentName":   t.Name,
		"Category":         t.Category,
		"Date":             t.Date,
		"Location":         t.Location,
		"ParticipantCount": strconv.Itoa(t.ParticipantCount),
	}

	return c.SendEmail(
		ctx,
		to,
		fmt.Sprintf("Nuevo torneo: %s", t.Name),
		TemplateTournamentCreated,
		data,
	)
}
