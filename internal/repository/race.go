package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/swimmeet/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type RacePostgresRepository struct {
	db DBTX
}

// raceRow mirrors the races table. TIME columns decode into pgtype.Time,
// which counts microseconds since midnight.
type raceRow struct {
	ID           int64       `db:"id"`
	TournamentID int64       `db:"tournament_id"`
	ApproxTime   pgtype.Time `db:"approx_time"`
	Style        string      `db:"style"`
	Distance     int         `db:"distance"`
	CreatedAt    time.Time   `db:"created_at"`
}

func (r raceRow) toModel() model.Race {
	return model.Race{
		ID:           r.ID,
		TournamentID: r.TournamentID,
		ApproxTime:   clockFromMicroseconds(r.ApproxTime.Microseconds),
		Style:        r.Style,
		Distance:     r.Distance,
		CreatedAt:    r.CreatedAt,
	}
}

// clockFromMicroseconds returns the time of day on the zero date, the same
// shape model.ParseClock produces.
func clockFromMicroseconds(us int64) time.Time {
	return time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(us) * time.Microsecond)
}

func clockToTime(t time.Time) pgtype.Time {
	us := int64(t.Hour())*int64(time.Hour/time.Microsecond) +
		int64(t.Minute())*int64(time.Minute/time.Microsecond) +
		int64(t.Second())*int64(time.Second/time.Microsecond)
	return pgtype.Time{Microseconds: us, Valid: true}
}

func (r *RacePostgresRepository) CreateRace(ctx context.Context, race *model.Race) (*model.Race, error) {
	stmt := `
		INSERT INTO races (tournament_id, approx_time, style, distance)
		VALUES (@tournament_id, @approx_time, @style, @distance)
		RETURNING id, created_at
	`

	created := *race
	err := r.db.QueryRow(ctx, stmt, pgx.NamedArgs{
		"tournament_id": race.TournamentID,
		"approx_time":   clockToTime(race.ApproxTime),
		"style":         race.Style,
		"distance":      race.Distance,
	}).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert race: %w", err)
	}

	return &created, nil
}

func (r *RacePostgresRepository) ListRacesByTournamentIDs(ctx context.Context, tournamentIDs []int64) ([]model.Race, error) {
	if len(tournamentIDs) == 0 {
		return []model.Race{}, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, tournament_id, approx_time, style, distance, created_at
		FROM races
		WHERE tournament_id = ANY($1)
		ORDER BY id
	`, tournamentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query races: %w", err)
	}

	raceRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[raceRow])
	if err != nil {
		return nil, fmt.Errorf("failed to collect races: %w", err)
	}

	races := make([]model.Race, 0, len(raceRows))
	for _, row := range raceRows {
		races = append(races, row.toModel())
	}
	return races, nil
}
