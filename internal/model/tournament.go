package model

import (
	"fmt"
	"time"
)

// Tournament is a swimming competition. It owns zero or more races.
type Tournament struct {
	ID int64 `db:"id"`
	// Category is the free-text "tipo" label (e.g. "Autonómico").
	Category         string    `db:"category"`
	Name             string    `db:"name"`
	Date             time.Time `db:"date"`
	ParticipantCount int       `db:"participant_count"`
	Location         string    `db:"location"`
	CreatedAt        time.Time `db:"created_at"`
}

// CreateTournamentPayload is the body of POST /tournaments.
type CreateTournamentPayload struct {
	Category         string `json:"tipo" validate:"required,max=100"`
	Name             string `json:"nombre" validate:"required,max=255"`
	Date             string `json:"fecha" validate:"required,date_dmy"`
	ParticipantCount *int   `json:"numero_participantes" validate:"required,gte=0,lte=2147483647"`
	Location         string `json:"lugar" validate:"required,max=255"`
}

func (p *CreateTournamentPayload) Validate() error {
	return validate.Struct(p)
}

// ToTournament builds the row to insert, parsing the date.
func (p *CreateTournamentPayload) ToTournament() (*Tournament, error) {
	date, err := ParseDate(p.Date)
	if err != nil {
		return nil, fmt.Errorf("parsing tournament date %q: %w", p.Date, err)
	}

	t := &Tournament{
		Category: p.Category,
		Name:     p.Name,
		Date:     date,
		Location: p.Location,
	}
	if p.ParticipantCount != nil {
		t.ParticipantCount = *p.ParticipantCount
	}
	return t, nil
}

// TournamentResponse is one element of GET /tournaments.
type TournamentResponse struct {
	ID               int64          `json:"ID"`
	Category         string         `json:"TIPO"`
	Name             string         `json:"NOMBRE"`
	Date             string         `json:"FECHA"`
	ParticipantCount int            `json:"NUMERO PARTICIPANTES"`
	Location         string         `json:"LUGAR"`
	Races            []RaceResponse `json:"CARRERAS"`
}

// NewTournamentResponse formats a tournament and its races.
func NewTournamentResponse(t Tournament, races []Race) TournamentResponse {
	return TournamentResponse{
		ID:               t.ID,
		Category:         t.Category,
		Name:             t.Name,
		Date:             FormatDate(t.Date),
		ParticipantCount: t.ParticipantCount,
		Location:         t.Location,
		Races:            NewRaceResponses(races),
	}
}

// TournamentCreatedResponse is the body returned by POST /tournaments.
type TournamentCreatedResponse struct {
	ID int64 `json:"Tournament added"`
}
