package handler

import (
	"github.com/deppfellow/swimmeet/internal/model"
	"github.com/deppfellow/swimmeet/internal/server"
	"github.com/deppfellow/swimmeet/internal/service"
	"github.com/labstack/echo/v4"
)

type RaceHandler struct {
	Handler
	raceService *service.RaceService
}

func NewRaceHandler(s *server.Server, raceService *service.RaceService) *RaceHandler {
	return &RaceHandler{
		Handler:     NewHandler(s),
		raceService: raceService,
	}
}

// CreateRace adds a race to the tournament named in the path.
func (h *RaceHandler) CreateRace(c echo.Context, payload *model.CreateRacePayload) (*model.RaceCreatedResponse, error) {
	race, err := h.raceService.CreateRace(c.Request().Context(), payload)
	if err != nil {
		return nil, err
	}
	return &model.RaceCreatedResponse{ID: race.ID, TournamentID: race.TournamentID}, nil
}

func (h *RaceHandler) ListRaces(c echo.Context, req *model.ListRacesRequest) (*model.TournamentRacesResponse, error) {
	return h.raceService.ListRaces(c.Request().Context(), req.TournamentID)
}
