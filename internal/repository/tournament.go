package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/swimmeet/internal/model"
	"github.com/deppfellow/swimmeet/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

type TournamentPostgresRepository struct {
	db DBTX
}

const tournamentColumns = `id, category, name, date, participant_count, location, created_at`

func (r *TournamentPostgresRepository) CreateTournament(ctx context.Context, t *model.Tournament) (*model.Tournament, error) {
	stmt := `
		INSERT INTO tournaments (category, name, date, participant_count, location)
		VALUES (@category, @name, @date, @participant_count, @location)
		RETURNING id, created_at
	`

	created := *t
	err := r.db.QueryRow(ctx, stmt, pgx.NamedArgs{
		"category":          t.Category,
		"name":              t.Name,
		"date":              t.Date,
		"participant_count": t.ParticipantCount,
		"location":          t.Location,
	}).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert tournament: %w", err)
	}

	return &created, nil
}

func (r *TournamentPostgresRepository) GetTournamentByID(ctx context.Context, id int64) (*model.Tournament, error) {
	rows, err := r.db.Query(ctx, `SELECT `+tournamentColumns+` FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query tournament %d: %w", id, err)
	}

	t, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Tournament])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sqlerr.NotFound("tournaments")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to collect tournament %d: %w", id, err)
	}

	return &t, nil
}

func (r *TournamentPostgresRepository) ListTournaments(ctx context.Context) ([]model.Tournament, error) {
	rows, err := r.db.Query(ctx, `SELECT `+tournamentColumns+` FROM tournaments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tournaments: %w", err)
	}

	tournaments, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Tournament])
	if err != nil {
		return nil, fmt.Errorf("failed to collect tournaments: %w", err)
	}

	return tournaments, nil
}

func (r *TournamentPostgresRepository) CountTournaments(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM tournaments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tournaments: %w", err)
	}
	return count, nil
}
