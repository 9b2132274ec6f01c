package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/swimmeet/internal/config"
	"github.com/deppfellow/swimmeet/internal/errs"
	"github.com/deppfellow/swimmeet/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(secretKey string, out *bytes.Buffer) *server.Server {
	logger := zerolog.New(out)
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Auth:    config.AuthConfig{SecretKey: secretKey},
		},
		Logger: &logger,
	}
}

func newTestEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	return e
}

func TestRequireAuthRejectsRequestsWithoutSession(t *testing.T) {
	var out bytes.Buffer
	s := newTestServer("sk_test_swimmeet", &out)
	e := newTestEcho(s)

	called := false
	e.POST("/clubs", func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusCreated)
	}, NewAuthMiddleware(s).RequireAuth)

	tests := []struct {
		name          string
		authorization string
	}{
		{"no bearer token", ""},
		{"malformed bearer token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/clubs", nil)
			if tt.authorization != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authorization)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

			var httpErr errs.HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &httpErr), rec.Body.String())
			assert.Equal(t, "UNAUTHORIZED", httpErr.Code)
			assert.Equal(t, "Unauthorized", httpErr.Message)
			assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
		})
	}

	assert.False(t, called)
}

func TestRequireAuthDisabledPassesThrough(t *testing.T) {
	var out bytes.Buffer
	s := newTestServer("", &out)
	e := newTestEcho(s)

	e.POST("/clubs", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, NewAuthMiddleware(s).RequireAuth)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/clubs", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGlobalErrorHandlerHeadRequest(t *testing.T) {
	var out bytes.Buffer
	e := newTestEcho(newTestServer("", &out))

	handler := func(echo.Context) error {
		return errs.NewNotFoundError("Tournament not found", true, nil)
	}
	e.HEAD("/tournaments/:tournament_id/races", handler)
	e.GET("/tournaments/:tournament_id/races", handler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/tournaments/9/races", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tournaments/9/races", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tournament not found")
}

func TestGlobalErrorHandlerHidesInternalErrors(t *testing.T) {
	var out bytes.Buffer
	e := newTestEcho(newTestServer("", &out))

	e.GET("/clubs", func(echo.Context) error {
		return assert.AnError
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clubs", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestRequestLoggerIncludesSessionUser(t *testing.T) {
	var out bytes.Buffer
	s := newTestServer("", &out)
	e := newTestEcho(s)

	e.Use(NewContextEnhancer(s).EnhanceContext(), NewGlobalMiddlewares(s).RequestLogger())
	e.GET("/clubs", func(c echo.Context) error {
		c.Set(UserIDKey, "user_123")
		c.Set(UserRoleKey, "org:admin")
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clubs", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, out.String(), `"user_id":"user_123"`)
	assert.Contains(t, out.String(), `"user_role":"org:admin"`)
}
