package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/swimmeet/internal/model"
	"github.com/deppfellow/swimmeet/internal/repository"
	"github.com/rs/zerolog"
)

// sampleTournaments is the development dataset.
var sampleTournaments = []model.CreateTournamentPayload{
	{Category: "Autonómico", Name: "Campeonato de Andalucía Alevín", Date: "15 Apr 2024", ParticipantCount: intPtr(120), Location: "Sevilla"},
	{Category: "Nacional", Name: "Campeonato de España Open Primavera", Date: "22 Mar 2024", ParticipantCount: intPtr(450), Location: "Sabadell"},
	{Category: "Provincial", Name: "Trofeo Ciudad de Málaga", Date: "08 Jun 2024", ParticipantCount: intPtr(80), Location: "Málaga"},
}

func intPtr(v int) *int { return &v }

// Seed inserts the sample tournaments when the store holds none and
// returns how many rows it wrote. Existing data is never touched.
func Seed(ctx context.Context, store repository.Store) (int, error) {
	inserted := 0
	err := store.WithinTx(ctx, func(repos *repository.Repositories) error {
		count, err := repos.Tournaments.CountTournaments(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, p := range sampleTournaments {
			t, err := p.ToTournament()
			if err != nil {
				return err
			}
			if _, err := repos.Tournaments.CreateTournament(ctx, t); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed tournaments: %w", err)
	}

	zerolog.Ctx(ctx).Info().Int("inserted", inserted).Msg("seed finished")
	return inserted, nil
}
