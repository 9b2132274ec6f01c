package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore runs every unit of work in a database transaction.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// WithinTx begins a transaction, runs fn and commits. Any error from fn
// rolls the transaction back.
func (s *PostgresStore) WithinTx(ctx context.Context, fn func(repos *Repositories) error) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(NewPostgresRepositories(tx))
	})
	if err != nil {
		return fmt.Errorf("postgres transaction: %w", err)
	}
	return nil
}

// NewPostgresRepositories binds every repository to db.
func NewPostgresRepositories(db DBTX) *Repositories {
	return &Repositories{
		Clubs:       &ClubPostgresRepository{db: db},
		Users:       &UserPostgresRepository{db: db},
		Tournaments: &TournamentPostgresRepository{db: db},
		Races:       &RacePostgresRepository{db: db},
	}
}
