package handler

import (
	"github.com/deppfellow/swimmeet/internal/model"
	"github.com/deppfellow/swimmeet/internal/server"
	"github.com/deppfellow/swimmeet/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	userService *service.UserService
}

func NewUserHandler(s *server.Server, userService *service.UserService) *UserHandler {
	return &UserHandler{
		Handler:     NewHandler(s),
		userService: userService,
	}
}

func (h *UserHandler) CreateUser(c echo.Context, payload *model.CreateUserPayload) (*model.UserCreatedResponse, error) {
	user, err := h.userService.CreateUser(c.Request().Context(), payload)
	if err != nil {
		return nil, err
	}
	return &model.UserCreatedResponse{ID: user.ID}, nil
}

func (h *UserHandler) ListUsers(c echo.Context, _ *model.ListRequest) ([]model.UserListItem, error) {
	return h.userService.ListUsers(c.Request().Context())
}
