package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/deppfellow/swimmeet/internal/errs"
	"github.com/deppfellow/swimmeet/internal/server"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards write routes with a Clerk session token.
type AuthMiddleware struct {
	server *server.Server
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
	}
}

// Enabled reports whether a Clerk secret key is configured.
func (auth *AuthMiddleware) Enabled() bool {
	return auth.server.Config.Auth.SecretKey != ""
}

// RequireAuth is an Echo middleware that enforces authentication using Clerk.
//
// Without a configured secret key it passes every request through, which
// keeps local setups and tests free of Clerk.
//
// Otherwise:
//  1. Clerk's middleware parses and verifies "Authorization: Bearer <token>".
//  2. On failure a JSON 401 in the errs.HTTPError shape is written.
//  3. On success the session subject and role are stored on the Echo context.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	if !auth.Enabled() {
		return next
	}

	failure := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w.WriteHeader(http.StatusUnauthorized)

		if err := json.NewEncoder(w).Encode(errs.NewUnauthorizedError("Unauthorized", false)); err != nil {
			auth.server.Logger.Error().
				Err(err).
				Str("function", "RequireAuth").
				Msg("failed to write JSON response")
			return
		}

		auth.server.Logger.Warn().
			Str("function", "RequireAuth").
			Str("path", r.URL.Path).
			Msg("rejected request without a valid session token")
	})

	return echo.WrapMiddleware(
		clerkhttp.WithHeaderAuthorization(clerkhttp.AuthorizationFailureHandler(failure)),
	)(func(c echo.Context) error {
		claims, ok := clerk.SessionClaimsFromContext(c.Request().Context())
		if !ok {
			GetLogger(c).Error().
				Str("function", "RequireAuth").
				Msg("could not get session claims from context")

			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		c.Set(UserIDKey, claims.Subject)
		c.Set(UserRoleKey, claims.ActiveOrganizationRole)

		GetLogger(c).Debug().
			Str("function", "RequireAuth").
			Str("user_id", claims.Subject).
			Msg("user authenticated successfully")

		return next(c)
	})
}
