package handler

import (
	"github.com/deppfellow/swimmeet/internal/server"
	"github.com/deppfellow/swimmeet/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object around.
type Handlers struct {
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
	Club       *ClubHandler
	User       *UserHandler
	Tournament *TournamentHandler
	Race       *RaceHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
		Club:       NewClubHandler(s, services.Clubs),
		User:       NewUserHandler(s, services.Users),
		Tournament: NewTournamentHandler(s, services.Tournaments),
		Race:       NewRaceHandler(s, services.Races),
	}
}
