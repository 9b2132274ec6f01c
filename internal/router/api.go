package router

import (
	"net/http"

	"github.com/deppfellow/swimmeet/internal/handler"
	"github.com/deppfellow/swimmeet/internal/middleware"
	"github.com/deppfellow/swimmeet/internal/model"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes maps the domain endpoints. Writes go through
// RequireAuth, which is a no-op unless a Clerk secret key is set.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	auth := m.Auth.RequireAuth

	clubs := r.Group("/clubs")
	clubs.GET("", handler.Handle(h.Club.Handler, h.Club.ListClubs, http.StatusOK, &model.ListRequest{}))
	clubs.POST("", handler.Handle(h.Club.Handler, h.Club.CreateClub, http.StatusCreated, &model.CreateClubPayload{}), auth)

	users := r.Group("/users")
	users.GET("", handler.Handle(h.User.Handler, h.User.ListUsers, http.StatusOK, &model.ListRequest{}))
	users.POST("", handler.Handle(h.User.Handler, h.User.CreateUser, http.StatusCreated, &model.CreateUserPayload{}), auth)

	tournaments := r.Group("/tournaments")
	tournaments.GET("", handler.Handle(h.Tournament.Handler, h.Tournament.ListTournaments, http.StatusOK, &model.ListRequest{}))
	tournaments.POST("", handler.Handle(h.Tournament.Handler, h.Tournament.CreateTournament, http.StatusCreated, &model.CreateTournamentPayload{}), auth)

	races := tournaments.Group("/:tournament_id/races")
	races.GET("", handler.Handle(h.Race.Handler, h.Race.ListRaces, http.StatusOK, &model.ListRacesRequest{}))
	races.POST("", handler.Handle(h.Race.Handler, h.Race.CreateRace, http.StatusCreated, &model.CreateRacePayload{}), auth)
}
