package model

import (
	"fmt"
	"time"
)

// Race is one event of a tournament.
type Race struct {
	ID           int64
	TournamentID int64
	// ApproxTime only carries a time of day.
	ApproxTime time.Time
	Style      string
	// Distance in meters.
	Distance  int
	CreatedAt time.Time
}

// CreateRacePayload is the body of POST /tournaments/:tournament_id/races.
type CreateRacePayload struct {
	// An unknown id, zero and negatives included, is answered with 404 by the service.
	TournamentID int64  `param:"tournament_id" json:"-"`
	ApproxTime   string `json:"hora_aprox" validate:"required,clock_hm"`
	Style        string `json:"estilo" validate:"required,max=50"`
	Distance     int    `json:"distancia" validate:"required,gt=0,lte=2147483647"`
}

func (p *CreateRacePayload) Validate() error {
	return validate.Struct(p)
}

// ToRace builds the row to insert, parsing the approximate time.
func (p *CreateRacePayload) ToRace() (*Race, error) {
	approx, err := ParseClock(p.ApproxTime)
	if err != nil {
		return nil, fmt.Errorf("parsing race time %q: %w", p.ApproxTime, err)
	}

	return &Race{
		TournamentID: p.TournamentID,
		ApproxTime:   approx,
		Style:        p.Style,
		Distance:     p.Distance,
	}, nil
}

// ListRacesRequest addresses GET /tournaments/:tournament_id/races.
type ListRacesRequest struct {
	TournamentID int64 `param:"tournament_id"`
}

func (p *ListRacesRequest) Validate() error {
	return validate.Struct(p)
}

// RaceResponse is a race nested under its tournament.
type RaceResponse struct {
	ID         int64  `json:"ID"`
	ApproxTime string `json:"HORA APROXIMADA"`
	Style      string `json:"ESTILO"`
	Distance   int    `json:"DISTANCIA"`
}

func NewRaceResponse(r Race) RaceResponse {
	return RaceResponse{
		ID:         r.ID,
		ApproxTime: FormatClock(r.ApproxTime),
		Style:      r.Style,
		Distance:   r.Distance,
	}
}

// NewRaceResponses never returns nil so an empty list encodes as [].
func NewRaceResponses(races []Race) []RaceResponse {
	res := make([]RaceResponse, 0, len(races))
	for _, r := range races {
		res = append(res, NewRaceResponse(r))
	}
	return res
}

// TournamentRacesResponse is the body of GET /tournaments/:tournament_id/races.
type TournamentRacesResponse struct {
	TournamentID int64          `json:"tournament_id"`
	Races        []RaceResponse `json:"races"`
}

// RaceCreatedResponse is the body returned by POST /tournaments/:tournament_id/races.
type RaceCreatedResponse struct {
	ID           int64 `json:"Race added"`
	TournamentID int64 `json:"tournament_id"`
}
