package model

import "time"

// Club is a swimming club. It owns zero or more users.
type Club struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Province    string    `db:"province"`
	Address     string    `db:"address"`
	Phone       string    `db:"phone"`
	MemberCount int       `db:"member_count"`
	URL         string    `db:"url"`
	CreatedAt   time.Time `db:"created_at"`
}

// CreateClubPayload is the body of POST /clubs.
type CreateClubPayload struct {
	Name     string `json:"nombre" validate:"required,max=255"`
	Province string `json:"provincia" validate:"required,max=100"`
	Address  string `json:"direccion" validate:"required,max=255"`
	Phone    string `json:"telefono" validate:"required,max=30"`
	// Pointer so that an explicit 0 passes "required". Bounded by the INTEGER column.
	MemberCount *int   `json:"numero_socios" validate:"required,gte=0,lte=2147483647"`
	URL         string `json:"url" validate:"required,url,max=255"`
}

func (p *CreateClubPayload) Validate() error {
	return validate.Struct(p)
}

// ToClub builds the row to insert. The id is assigned by the store.
func (p *CreateClubPayload) ToClub() *Club {
	club := &Club{
		Name:     p.Name,
		Province: p.Province,
		Address:  p.Address,
		Phone:    p.Phone,
		URL:      p.URL,
	}
	if p.MemberCount != nil {
		club.MemberCount = *p.MemberCount
	}
	return club
}

// ClubResponse is one element of GET /clubs.
type ClubResponse struct {
	ID          int64          `json:"ID"`
	Name        string         `json:"NOMBRE"`
	Province    string         `json:"PROVINCIA"`
	Address     string         `json:"DIRECCION"`
	Phone       string         `json:"TELEFONO"`
	MemberCount int            `json:"NUMERO SOCIOS"`
	URL         string         `json:"URL"`
	Users       []UserResponse `json:"USUARIOS"`
}

// NewClubResponse formats a club and the users that belong to it.
func NewClubResponse(club Club, users []User) ClubResponse {
	res := ClubResponse{
		ID:          club.ID,
		Name:        club.Name,
		Province:    club.Province,
		Address:     club.Address,
		Phone:       club.Phone,
		MemberCount: club.MemberCount,
		URL:         club.URL,
		Users:       make([]UserResponse, 0, len(users)),
	}
	for _, u := range users {
		res.Users = append(res.Users, NewUserResponse(u))
	}
	return res
}

// ClubCreatedResponse is the body returned by POST /clubs.
type ClubCreatedResponse struct {
	ID int64 `json:"Club added"`
}
