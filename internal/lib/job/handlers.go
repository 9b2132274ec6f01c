package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/swimmeet/internal/lib/email"
	"github.com/hibiken/asynq"
)

// TournamentNotifier sends the tournament announcement email.
type TournamentNotifier interface {
	SendTournamentCreatedEmail(ctx context.Context, to string, t email.TournamentAnnouncement) error
}

// handleTournamentCreatedTask emails the configured recipient about a new tournament.
//
// Returning an error makes Asynq mark the task failed and schedule a retry.
func (j *JobService) handleTournamentCreatedTask(ctx context.Context, t *asynq.Task) error {
	var p TournamentCreatedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// Retrying cannot fix a malformed payload.
		return fmt.Errorf("failed to unmarshal tournament payload: %v: %w", err, asynq.SkipRetry)
	}

	if j.notifyTo == "" {
		j.logger.Debug().
			Int64("tournament_id", p.TournamentID).
			Msg("no notification email configured, skipping tournament announcement")
		return nil
	}

	j.logger.Info().
		Str("type", TaskTournamentCreated).
		Int64("tournament_id", p.TournamentID).
		Str("to", j.notifyTo).
		Msg("Processing tournament announcement task")

	err := j.notifier.SendTournamentCreatedEmail(ctx, j.notifyTo, email.TournamentAnnouncement{
		TournamentID:     p.TournamentID,
		Name:             p.Name,
		Category:         p.Category,
		Date:             p.Date,
		Location:         p.Location,
		ParticipantCount: p.ParticipantCount,
	})
	if err != nil {
		j.logger.Error().
			Str("type", TaskTournamentCreated).
			Int64("tournament_id", p.TournamentID).
			Err(err).
			Msg("Failed to send tournament announcement")
		return err
	}

	j.logger.Info().
		Str("type", TaskTournamentCreated).
		Int64("tournament_id", p.TournamentID).
		Msg("Successfully sent tournament announcement")

	return nil
}
