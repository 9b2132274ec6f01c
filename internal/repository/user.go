package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/swimmeet/internal/model"
	"github.com/jackc/pgx/v5"
)

type UserPostgresRepository struct {
	db DBTX
}

const userColumns = `id, club_id, name, surname, phone, birth_date, role, created_at`

func (r *UserPostgresRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	stmt := `
		INSERT INTO users (club_id, name, surname, phone, birth_date, role)
		VALUES (@club_id, @name, @surname, @phone, @birth_date, @role)
		RETURNING id, created_at
	`

	created := *user
	err := r.db.QueryRow(ctx, stmt, pgx.NamedArgs{
		"club_id":    user.ClubID,
		"name":       user.Name,
		"surname":    user.Surname,
		"phone":      user.Phone,
		"birth_date": user.BirthDate,
		"role":       string(user.Role),
	}).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &created, nil
}

func (r *UserPostgresRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	return r.collect(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
}

func (r *UserPostgresRepository) ListUsersByClubIDs(ctx context.Context, clubIDs []int64) ([]model.User, error) {
	if len(clubIDs) == 0 {
		return []model.User{}, nil
	}
	return r.collect(ctx, `SELECT `+userColumns+` FROM users WHERE club_id = ANY($1) ORDER BY id`, clubIDs)
}

func (r *UserPostgresRepository) collect(ctx context.Context, query string, args ...any) ([]model.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect users: %w", err)
	}

	return users, nil
}
