package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/swimmeet/internal/config"
	"github.com/deppfellow/swimmeet/internal/errs"
	"github.com/deppfellow/swimmeet/internal/handler"
	"github.com/deppfellow/swimmeet/internal/middleware"
	"github.com/deppfellow/swimmeet/internal/repository"
	"github.com/deppfellow/swimmeet/internal/server"
	"github.com/deppfellow/swimmeet/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, mutate ...func(*config.Config)) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			ReadTimeout:        5,
			WriteTimeout:       5,
			IdleTimeout:        5,
			CORSAllowedOrigins: []string{"*"},
		},
		Database:      config.DatabaseConfig{Driver: config.DriverMemory},
		Observability: config.DefaultObservabilityConfig(),
	}
	for _, m := range mutate {
		m(cfg)
	}

	logger := zerolog.Nop()
	s := &server.Server{Config: cfg, Logger: &logger}

	services, err := service.NewService(s, repository.NewStore(s))
	require.NoError(t, err)

	return NewRouter(s, handler.NewHandlers(s, services))
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

const (
	clubBody       = `{"nombre":"CN Sabadell","provincia":"Barcelona","direccion":"Carrer de Sant Oleguer","telefono":"937234567","numero_socios":0,"url":"https://cnsabadell.cat"}`
	tournamentBody = `{"tipo":"Autonómico","nombre":"Trofeo de Invierno","fecha":"01 Jan 2025","numero_participantes":64,"lugar":"Madrid"}`
)

func userBody(clubID string) string {
	return `{"nombre":"Mireia","apellidos":"Belmonte García","telefono":"600123123","fecha_nacimiento":"10 Nov 1990","rol":"swimmer","club_id":` + clubID + `}`
}

func TestCreateClubThenList(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/clubs", clubBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]int64{"Club added": 1}, decode[map[string]int64](t, rec))

	rec = do(t, e, http.MethodGet, "/clubs", "")
	require.Equal(t, http.StatusOK, rec.Code)

	clubs := decode[[]map[string]any](t, rec)
	require.Len(t, clubs, 1)
	assert.Equal(t, float64(1), clubs[0]["ID"])
	assert.Equal(t, "CN Sabadell", clubs[0]["NOMBRE"])
	assert.Equal(t, "Barcelona", clubs[0]["PROVINCIA"])
	assert.Equal(t, float64(0), clubs[0]["NUMERO SOCIOS"])
	assert.Equal(t, []any{}, clubs[0]["USUARIOS"])
}

func TestCreateUserWithUnknownClub(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/users", userBody("99"))
	require.Equal(t, http.StatusNotFound, rec.Code)

	httpErr := decode[errs.HTTPError](t, rec)
	assert.Equal(t, "Club not found", httpErr.Message)
	assert.Equal(t, "NOT_FOUND", httpErr.Code)

	rec = do(t, e, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUserNestedUnderClub(t *testing.T) {
	e := newTestServer(t)

	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/clubs", clubBody).Code)

	rec := do(t, e, http.MethodPost, "/users", userBody("1"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]int64{"User added": 1}, decode[map[string]int64](t, rec))

	clubs := decode[[]map[string]any](t, do(t, e, http.MethodGet, "/clubs", ""))
	require.Len(t, clubs, 1)

	users, ok := clubs[0]["USUARIOS"].([]any)
	require.True(t, ok)
	require.Len(t, users, 1)
	assert.Equal(t, map[string]any{
		"ID":               float64(1),
		"NOMBRE":           "Mireia",
		"APELLIDOS":        "Belmonte García",
		"TELEFONO":         "600123123",
		"FECHA NACIMIENTO": "10 Nov 1990",
		"ROL":              "swimmer",
	}, users[0])

	list := decode[[]map[string]any](t, do(t, e, http.MethodGet, "/users", ""))
	require.Len(t, list, 1)
	assert.Equal(t, float64(1), list[0]["CLUB ID"])
	assert.Equal(t, "10 Nov 1990", list[0]["FECHA NACIMIENTO"])
}

func TestTournamentDateRoundTrip(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/tournaments", tournamentBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]int64{"Tournament added": 1}, decode[map[string]int64](t, rec))

	tournaments := decode[[]map[string]any](t, do(t, e, http.MethodGet, "/tournaments", ""))
	require.Len(t, tournaments, 1)
	assert.Equal(t, "01 Jan 2025", tournaments[0]["FECHA"])
	assert.Equal(t, "Autonómico", tournaments[0]["TIPO"])
	assert.Equal(t, float64(64), tournaments[0]["NUMERO PARTICIPANTES"])
	assert.Equal(t, []any{}, tournaments[0]["CARRERAS"])
}

func TestRaceUnderUnknownTournament(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/tournaments/7/races", `{"hora_aprox":"14:30","estilo":"crol","distancia":100}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Tournament not found", decode[errs.HTTPError](t, rec).Message)

	rec = do(t, e, http.MethodGet, "/tournaments/7/races", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Tournament not found", decode[errs.HTTPError](t, rec).Message)

	// Creating the tournament now yields the first race id: nothing was persisted.
	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/tournaments", tournamentBody).Code)
	rec = do(t, e, http.MethodPost, "/tournaments/1/races", `{"hora_aprox":"09:00","estilo":"braza","distancia":50}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[string]int64{"Race added": 1, "tournament_id": 1}, decode[map[string]int64](t, rec))
}

func TestRacesUnderNonPositiveTournamentID(t *testing.T) {
	e := newTestServer(t)

	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/tournaments", tournamentBody).Code)

	for _, id := range []string{"0", "-3"} {
		target := "/tournaments/" + id + "/races"

		rec := do(t, e, http.MethodGet, target, "")
		require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
		assert.Equal(t, "Tournament not found", decode[errs.HTTPError](t, rec).Message)

		rec = do(t, e, http.MethodPost, target, `{"hora_aprox":"10:00","estilo":"crol","distancia":100}`)
		require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
		assert.Equal(t, "Tournament not found", decode[errs.HTTPError](t, rec).Message)
	}

	rec := do(t, e, http.MethodGet, "/tournaments/1/races", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tournament_id": 1, "races": []}`, rec.Body.String())
}

func TestRaceTimeRoundTrip(t *testing.T) {
	e := newTestServer(t)

	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/tournaments", tournamentBody).Code)

	rec := do(t, e, http.MethodPost, "/tournaments/1/races", `{"hora_aprox":"14:30","estilo":"espalda","distancia":200}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/tournaments/1/races", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"tournament_id": 1,
		"races": [{"ID": 1, "HORA APROXIMADA": "14:30", "ESTILO": "espalda", "DISTANCIA": 200}]
	}`, rec.Body.String())

	tournaments := decode[[]map[string]any](t, do(t, e, http.MethodGet, "/tournaments", ""))
	require.Len(t, tournaments, 1)
	races, ok := tournaments[0]["CARRERAS"].([]any)
	require.True(t, ok)
	require.Len(t, races, 1)
	assert.Equal(t, "14:30", races[0].(map[string]any)["HORA APROXIMADA"])
}

func TestIDsIncreasePerEntityType(t *testing.T) {
	e := newTestServer(t)

	var clubIDs, tournamentIDs []int64
	for range 3 {
		clubIDs = append(clubIDs, decode[map[string]int64](t, do(t, e, http.MethodPost, "/clubs", clubBody))["Club added"])
		tournamentIDs = append(tournamentIDs, decode[map[string]int64](t, do(t, e, http.MethodPost, "/tournaments", tournamentBody))["Tournament added"])
	}

	assert.Equal(t, []int64{1, 2, 3}, clubIDs)
	assert.Equal(t, []int64{1, 2, 3}, tournamentIDs)
}

func TestValidationErrors(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name   string
		target string
		body   string
		status int
		field  string
	}{
		{"malformed json", "/clubs", `{"nombre":`, http.StatusBadRequest, ""},
		{"wrong json type", "/clubs", `{"numero_socios":"many"}`, http.StatusBadRequest, ""},
		{"missing member count", "/clubs", `{"nombre":"a","provincia":"b","direccion":"c","telefono":"d","url":"https://x.es"}`, http.StatusUnprocessableEntity, "numero_socios"},
		{"bad url", "/clubs", strings.Replace(clubBody, "https://cnsabadell.cat", "not a url", 1), http.StatusUnprocessableEntity, "url"},
		{"unknown role", "/users", strings.Replace(userBody("1"), "swimmer", "goalkeeper", 1), http.StatusUnprocessableEntity, "rol"},
		{"bad birth date", "/users", strings.Replace(userBody("1"), "10 Nov 1990", "1990-11-10", 1), http.StatusUnprocessableEntity, "fecha_nacimiento"},
		{"bad tournament date", "/tournaments", strings.Replace(tournamentBody, "01 Jan 2025", "2025/01/01", 1), http.StatusUnprocessableEntity, "fecha"},
		{"negative participants", "/tournaments", strings.Replace(tournamentBody, "64", "-1", 1), http.StatusUnprocessableEntity, "numero_participantes"},
		{"participants above integer range", "/tournaments", strings.Replace(tournamentBody, "64", "3000000000", 1), http.StatusUnprocessableEntity, "numero_participantes"},
		{"members above integer range", "/clubs", strings.Replace(clubBody, `"numero_socios":0`, `"numero_socios":3000000000`, 1), http.StatusUnprocessableEntity, "numero_socios"},
		{"distance above integer range", "/tournaments/1/races", `{"hora_aprox":"10:00","estilo":"crol","distancia":3000000000}`, http.StatusUnprocessableEntity, "distancia"},
		{"bad race time", "/tournaments/1/races", `{"hora_aprox":"25:99","estilo":"crol","distancia":100}`, http.StatusUnprocessableEntity, "hora_aprox"},
		{"zero distance", "/tournaments/1/races", `{"hora_aprox":"10:00","estilo":"crol","distancia":0}`, http.StatusUnprocessableEntity, "distancia"},
		{"non numeric tournament", "/tournaments/abc/races", `{"hora_aprox":"10:00","estilo":"crol","distancia":1}`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, http.MethodPost, tt.target, tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			httpErr := decode[errs.HTTPError](t, rec)
			assert.Equal(t, tt.status, httpErr.Status)
			if tt.field == "" {
				return
			}

			var fields []string
			for _, fe := range httpErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode[map[string]any](t, rec)
	assert.Equal(t, "healthy", status["status"])
	assert.Equal(t, config.DriverMemory, status["driver"])

	rec = do(t, e, http.MethodGet, "/docs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/static/openapi.json")

	rec = do(t, e, http.MethodGet, "/static/openapi.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/tournaments/{tournament_id}/races")

	rec = do(t, e, http.MethodGet, "/nowhere", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decode[errs.HTTPError](t, rec).Message)
}

func TestRequestIDHeader(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/clubs", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))

	rec = do(t, e, http.MethodGet, "/clubs", "")
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRateLimit(t *testing.T) {
	e := newTestServer(t, func(cfg *config.Config) {
		cfg.Server.RateLimit = 1
	})

	assert.Equal(t, http.StatusOK, do(t, e, http.MethodGet, "/clubs", "").Code)

	rec := do(t, e, http.MethodGet, "/clubs", "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decode[errs.HTTPError](t, rec).Code)

	// Health checks are never limited.
	assert.Equal(t, http.StatusOK, do(t, e, http.MethodGet, "/status", "").Code)
}
