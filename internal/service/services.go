// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data. Every call runs in one store transaction.
package service

import (
	"github.com/deppfellow/swimmeet/internal/repository"
	"github.com/deppfellow/swimmeet/internal/server"
)

type Services struct {
	Auth        *AuthService
	Clubs       *ClubService
	Users       *UserService
	Tournaments *TournamentService
	Races       *RaceService
}

func NewService(s *server.Server, store repository.Store) (*Services, error) {
	authService := NewAuthService(s)

	// A nil *JobService must not become a non-nil interface.
	var enqueuer TaskEnqueuer
	if s.Job != nil {
		enqueuer = s.Job.Client
	}

	return &Services{
		Auth:        authService,
		Clubs:       NewClubService(store),
		Users:       NewUserService(store),
		Tournaments: NewTournamentService(store, enqueuer),
		Races:       NewRaceService(store),
	}, nil
}
