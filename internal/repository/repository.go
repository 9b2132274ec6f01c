// Package repository handles all interactions with the data store.
//
// It contains raw SQL queries and methods to fetch and persist
// records, abstracting storage away from the service layer.
//
// Two stores implement the same interfaces:
//   - postgres: pgx queries, one database transaction per unit of work
//   - memory: process-local slices guarded by a mutex
package repository

import (
	"context"

	"github.com/deppfellow/swimmeet/internal/model"
	"github.com/deppfellow/swimmeet/internal/sqlerr"
)

// ErrNotFound is returned (wrapped) by Get* methods when no record matches.
var ErrNotFound = sqlerr.ErrNotFound

// ClubRepository persists clubs.
type ClubRepository interface {
	CreateClub(ctx context.Context, club *model.Club) (*model.Club, error)
	GetClubByID(ctx context.Context, id int64) (*model.Club, error)
	// ListClubs returns every club ordered by id.
	ListClubs(ctx context.Context) ([]model.Club, error)
}

// UserRepository persists users.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	// ListUsers returns every user ordered by id.
	ListUsers(ctx context.Context) ([]model.User, error)
	// ListUsersByClubIDs returns the users of the given clubs ordered by id.
	ListUsersByClubIDs(ctx context.Context, clubIDs []int64) ([]model.User, error)
}

// TournamentRepository persists tournaments.
type TournamentRepository interface {
	CreateTournament(ctx context.Context, t *model.Tournament) (*model.Tournament, error)
	GetTournamentByID(ctx context.Context, id int64) (*model.Tournament, error)
	// ListTournaments returns every tournament ordered by id.
	ListTournaments(ctx context.Context) ([]model.Tournament, error)
	CountTournaments(ctx context.Context) (int, error)
}

// RaceRepository persists races.
type RaceRepository interface {
	CreateRace(ctx context.Context, race *model.Race) (*model.Race, error)
	// ListRacesByTournamentIDs returns the races of the given tournaments ordered by id.
	ListRacesByTournamentIDs(ctx context.Context, tournamentIDs []int64) ([]model.Race, error)
}

// Repositories is a container for all repository instances bound to
// one unit of work.
type Repositories struct {
	Clubs       ClubRepository
	Users       UserRepository
	Tournaments TournamentRepository
	Races       RaceRepository
}

// Store opens units of work.
//
// WithinTx runs fn with repositories that share one transaction. If fn
// returns an error nothing it wrote is kept; otherwise every write is
// committed before WithinTx returns.
type Store interface {
	WithinTx(ctx context.Context, fn func(repos *Repositories) error) error
}
