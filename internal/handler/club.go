package handler

import (
	"github.com/deppfellow/swimmeet/internal/model"
	"github.com/deppfellow/swimmeet/internal/server"
	"github.com/deppfellow/swimmeet/internal/service"
	"github.com/labstack/echo/v4"
)

type ClubHandler struct {
	Handler
	clubService *service.ClubService
}

func NewClubHandler(s *server.Server, clubService *service.ClubService) *ClubHandler {
	return &ClubHandler{
		Handler:     NewHandler(s),
		clubService: clubService,
	}
}

func (h *ClubHandler) CreateClub(c echo.Context, payload *model.CreateClubPayload) (*model.ClubCreatedResponse, error) {
	club, err := h.clubService.CreateClub(c.Request().Context(), payload)
	if err != nil {
		return nil, err
	}
	return &model.ClubCreatedResponse{ID: club.ID}, nil
}

func (h *ClubHandler) ListClubs(c echo.Context, _ *model.ListRequest) ([]model.ClubResponse, error) {
	return h.clubService.ListClubs(c.Request().Context())
}
