package handler

import (
	"github.com/deppfellow/swimmeet/internal/model"
	"github.com/deppfellow/swimmeet/internal/server"
	"github.com/deppfellow/swimmeet/internal/service"
	"github.com/labstack/echo/v4"
)

type TournamentHandler struct {
	Handler
	tournamentService *service.TournamentService
}

func NewTournamentHandler(s *server.Server, tournamentService *service.TournamentService) *TournamentHandler {
	return &TournamentHandler{
		Handler:           NewHandler(s),
		tournamentService: tournamentService,
	}
}

func (h *TournamentHandler) CreateTournament(c echo.Context, payload *model.CreateTournamentPayload) (*model.TournamentCreatedResponse, error) {
	t, err := h.tournamentService.CreateTournament(c.Request().Context(), payload)
	if err != nil {
		return nil, err
	}
	return &model.TournamentCreatedResponse{ID: t.ID}, nil
}

func (h *TournamentHandler) ListTournaments(c echo.Context, _ *model.ListRequest) ([]model.TournamentResponse, error) {
	return h.tournamentService.ListTournaments(c.Request().Context())
}
