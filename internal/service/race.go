package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/swimmeet/internal/errs"
	"github.com/deppfellow/swimmeet/internal/model"
	"github.com/deppfellow/swimmeet/internal/repository"
	"github.com/rs/zerolog"
)

type RaceService struct {
	store repository.Store
}

func NewRaceService(store repository.Store) *RaceService {
	return &RaceService{store: store}
}

func requireTournament(ctx context.Context, repos *repository.Repositories, id int64) error {
	if _, err := repos.Tournaments.GetTournamentByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errs.NewNotFoundError("Tournament not found", true, nil)
		}
		return err
	}
	return nil
}

// CreateRace stores a race under an existing tournament. A missing
// tournament yields a 404 and nothing is written.
func (s *RaceService) CreateRace(ctx context.Context, payload *model.CreateRacePayload) (*model.Race, error) {
	race, err := payload.ToRace()
	if err != nil {
		return nil, errs.NewUnprocessableEntityError("Validation failed", true, []errs.FieldError{
			{Field: "hora_aprox", Error: err.Error()},
		})
	}

	var created *model.Race
	err = s.store.WithinTx(ctx, func(repos *repository.Repositories) error {
		if err := requireTournament(ctx, repos, race.TournamentID); err != nil {
			return err
		}

		created, err = repos.Races.CreateRace(ctx, race)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create race: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "race_created").
		Int64("race_id", created.ID).
		Int64("tournament_id", created.TournamentID).
		Msg("race created")

	return created, nil
}

// ListRaces returns the races of one tournament.
func (s *RaceService) ListRaces(ctx context.Context, tournamentID int64) (*model.TournamentRacesResponse, error) {
	var res *model.TournamentRacesResponse
	err := s.store.WithinTx(ctx, func(repos *repository.Repositories) error {
		if err := requireTournament(ctx, repos, tournamentID); err != nil {
			return err
		}

		races, err := repos.Races.ListRacesByTournamentIDs(ctx, []int64{tournamentID})
		if err != nil {
			return err
		}

		res = &model.TournamentRacesResponse{
			TournamentID: tournamentID,
			Races:        model.NewRaceResponses(races),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list races: %w", err)
	}

	return res, nil
}
