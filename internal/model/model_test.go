package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseDate("01 Jan 2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "01 Jan 2025", FormatDate(d))

	_, err = ParseDate("2025-01-01")
	assert.Error(t, err)
}

func TestClockRoundTrip(t *testing.T) {
	c, err := ParseClock("14:30")
	require.NoError(t, err)
	assert.Equal(t, 14, c.Hour())
	assert.Equal(t, 30, c.Minute())
	assert.Equal(t, "14:30", FormatClock(c))

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}

func validClubPayload() *CreateClubPayload {
	return &CreateClubPayload{
		Name:        "CN Barcelona",
		Province:    "Barcelona",
		Address:     "Passeig Joan de Borbó 93",
		Phone:       "932210010",
		MemberCount: intPtr(0),
		URL:         "https://cnb.cat",
	}
}

func TestCreateClubPayloadValidate(t *testing.T) {
	p := validClubPayload()
	require.NoError(t, p.Validate())

	p.MemberCount = nil
	err := p.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "numero_socios", verrs[0].Field())
	assert.Equal(t, "required", verrs[0].Tag())

	p = validClubPayload()
	p.MemberCount = intPtr(-1)
	assert.Error(t, p.Validate())
}

func TestCreateUserPayload(t *testing.T) {
	p := &CreateUserPayload{
		Name:      "Mireia",
		Surname:   "Belmonte",
		Phone:     "600000000",
		BirthDate: "10 Nov 1990",
		Role:      "swimmer",
		ClubID:    1,
	}
	require.NoError(t, p.Validate())

	u, err := p.ToUser()
	require.NoError(t, err)
	assert.Equal(t, RoleSwimmer, u.Role)
	assert.Equal(t, "10 Nov 1990", FormatDate(u.BirthDate))

	p.Role = "goalkeeper"
	assert.Error(t, p.Validate())

	p.Role = "coach"
	p.BirthDate = "1990-11-10"
	err = p.Validate()
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "fecha_nacimiento", verrs[0].Field())
	assert.Equal(t, "date_dmy", verrs[0].Tag())
}

func TestCreateRacePayload(t *testing.T) {
	p := &CreateRacePayload{TournamentID: 3, ApproxTime: "09:05", Style: "crol", Distance: 100}
	require.NoError(t, p.Validate())

	r, err := p.ToRace()
	require.NoError(t, err)
	assert.Equal(t, int64(3), r.TournamentID)
	assert.Equal(t, "09:05", FormatClock(r.ApproxTime))

	p.ApproxTime = "9h05"
	assert.Error(t, p.Validate())

	p.ApproxTime = "09:05"
	p.Distance = 0
	assert.Error(t, p.Validate())

	p.Distance = 3_000_000_000
	assert.Error(t, p.Validate())

	// The tournament id is resolved by the store, not by validation.
	p.Distance = 100
	p.TournamentID = 0
	assert.NoError(t, p.Validate())
	assert.NoError(t, (&ListRacesRequest{TournamentID: -3}).Validate())
}

func TestClubResponseLabels(t *testing.T) {
	club := Club{ID: 7, Name: "CN Sabadell", Province: "Barcelona", Address: "Carrer", Phone: "1", MemberCount: 20, URL: "https://cns.cat"}
	body, err := json.Marshal(NewClubResponse(club, nil))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, float64(7), decoded["ID"])
	assert.Equal(t, "CN Sabadell", decoded["NOMBRE"])
	assert.Equal(t, float64(20), decoded["NUMERO SOCIOS"])
	assert.Equal(t, []any{}, decoded["USUARIOS"])
}

func TestUserListItemLabels(t *testing.T) {
	birth, _ := ParseDate("05 May 2001")
	body, err := json.Marshal(NewUserListItem(User{ID: 2, ClubID: 9, Name: "Ana", Role: RoleReferee, BirthDate: birth}))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "05 May 2001", decoded["FECHA NACIMIENTO"])
	assert.Equal(t, "referee", decoded["ROL"])
	assert.Equal(t, float64(9), decoded["CLUB ID"])
}

func TestTournamentResponse(t *testing.T) {
	p := &CreateTournamentPayload{Category: "Open", Name: "Trofeo", Date: "01 Jan 2025", ParticipantCount: intPtr(50), Location: "Madrid"}
	require.NoError(t, p.Validate())

	tour, err := p.ToTournament()
	require.NoError(t, err)
	tour.ID = 1

	approx, _ := ParseClock("14:30")
	res := NewTournamentResponse(*tour, []Race{{ID: 4, TournamentID: 1, ApproxTime: approx, Style: "espalda", Distance: 200}})
	assert.Equal(t, "01 Jan 2025", res.Date)
	require.Len(t, res.Races, 1)
	assert.Equal(t, "14:30", res.Races[0].ApproxTime)
}
