package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/swimmeet/internal/errs"
	"github.com/deppfellow/swimmeet/internal/lib/job"
	"github.com/deppfellow/swimmeet/internal/model"
	"github.com/deppfellow/swimmeet/internal/repository"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// TaskEnqueuer is the part of *asynq.Client the services use.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type TournamentService struct {
	store repository.Store
	// jobs is nil when background jobs are disabled.
	jobs TaskEnqueuer
}

func NewTournamentService(store repository.Store, jobs TaskEnqueuer) *TournamentService {
	return &TournamentService{store: store, jobs: jobs}
}

func (s *TournamentService) CreateTournament(ctx context.Context, payload *model.CreateTournamentPayload) (*model.Tournament, error) {
	t, err := payload.ToTournament()
	if err != nil {
		return nil, errs.NewUnprocessableEntityError("Validation failed", true, []errs.FieldError{
			{Field: "fecha", Error: err.Error()},
		})
	}

	var created *model.Tournament
	err = s.store.WithinTx(ctx, func(repos *repository.Repositories) error {
		created, err = repos.Tournaments.CreateTournament(ctx, t)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create tournament: %w", err)
	}

	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("event", "tournament_created").
		Int64("tournament_id", created.ID).
		Msg("tournament created")

	// The tournament is committed; a failed announcement must not fail the request.
	s.announce(ctx, created)

	return created, nil
}

func (s *TournamentService) announce(ctx context.Context, t *model.Tournament) {
	if s.jobs == nil {
		return
	}

	logger := zerolog.Ctx(ctx)

	task, err := job.NewTournamentCreatedTask(job.TournamentCreatedPayload{
		TournamentID:     t.ID,
		Name:             t.Name,
		Category:         t.Category,
		Date:             model.FormatDate(t.Date),
		Location:         t.Location,
		ParticipantCount: t.ParticipantCount,
	})
	if err != nil {
		logger.Error().Err(err).Int64("tournament_id", t.ID).Msg("failed to build tournament announcement task")
		return
	}

	info, err := s.jobs.EnqueueContext(ctx, task)
	if err != nil {
		logger.Error().Err(err).Int64("tournament_id", t.ID).Msg("failed to enqueue tournament announcement")
		return
	}

	logger.Debug().Str("task_id", info.ID).Int64("tournament_id", t.ID).Msg("tournament announcement enqueued")
}

// ListTournaments returns every tournament with its races nested.
func (s *TournamentService) ListTournaments(ctx context.Context) ([]model.TournamentResponse, error) {
	res := []model.TournamentResponse{}
	err := s.store.WithinTx(ctx, func(repos *repository.Repositories) error {
		tournaments, err := repos.Tournaments.ListTournaments(ctx)
		if err != nil {
			return err
		}

		ids := make([]int64, 0, len(tournaments))
		for _, t := range tournaments {
			ids = append(ids, t.ID)
		}

		races, err := repos.Races.ListRacesByTournamentIDs(ctx, ids)
		if err != nil {
			return err
		}

		byTournament := make(map[int64][]model.Race, len(tournaments))
		for _, r := range races {
			byTournament[r.TournamentID] = append(byTournament[r.TournamentID], r)
		}

		for _, t := range tournaments {
			res = append(res, model.NewTournamentResponse(t, byTournament[t.ID]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	return res, nil
}
