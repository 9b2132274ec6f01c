package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/swimmeet/internal/model"
	"github.com/deppfellow/swimmeet/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

type ClubPostgresRepository struct {
	db DBTX
}

const clubColumns = `id, name, province, address, phone, member_count, url, created_at`

func (r *ClubPostgresRepository) CreateClub(ctx context.Context, club *model.Club) (*model.Club, error) {
	stmt := `
		INSERT INTO clubs (name, province, address, phone, member_count, url)
		VALUES (@name, @province, @address, @phone, @member_count, @url)
		RETURNING id, created_at
	`

	created := *club
	err := r.db.QueryRow(ctx, stmt, pgx.NamedArgs{
		"name":         club.Name,
		"province":     club.Province,
		"address":      club.Address,
		"phone":        club.Phone,
		"member_count": club.MemberCount,
		"url":          club.URL,
	}).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert club: %w", err)
	}

	return &created, nil
}

func (r *ClubPostgresRepository) GetClubByID(ctx context.Context, id int64) (*model.Club, error) {
	rows, err := r.db.Query(ctx, `SELECT `+clubColumns+` FROM clubs WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query club %d: %w", id, err)
	}

	club, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Club])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sqlerr.NotFound("clubs")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to collect club %d: %w", id, err)
	}

	return &club, nil
}

func (r *ClubPostgresRepository) ListClubs(ctx context.Context) ([]model.Club, error) {
	rows, err := r.db.Query(ctx, `SELECT `+clubColumns+` FROM clubs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query clubs: %w", err)
	}

	clubs, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Club])
	if err != nil {
		return nil, fmt.Errorf("failed to collect clubs: %w", err)
	}

	return clubs, nil
}
