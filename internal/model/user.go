package model

import (
	"fmt"
	"time"
)

// Role is what a user does in a club.
type Role string

const (
	RoleReferee Role = "referee"
	RoleSwimmer Role = "swimmer"
	RoleCoach   Role = "coach"
)

// User is a swimmer, coach or referee. It belongs to exactly one club.
type User struct {
	ID        int64     `db:"id"`
	ClubID    int64     `db:"club_id"`
	Name      string    `db:"name"`
	Surname   string    `db:"surname"`
	Phone     string    `db:"phone"`
	BirthDate time.Time `db:"birth_date"`
	Role      Role      `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

// CreateUserPayload is the body of POST /users.
type CreateUserPayload struct {
	Name      string `json:"nombre" validate:"required,max=100"`
	Surname   string `json:"apellidos" validate:"required,max=150"`
	Phone     string `json:"telefono" validate:"required,max=30"`
	BirthDate string `json:"fecha_nacimiento" validate:"required,date_dmy"`
	Role      string `json:"rol" validate:"required,oneof=referee swimmer coach"`
	ClubID    int64  `json:"club_id" validate:"required,gt=0"`
}

func (p *CreateUserPayload) Validate() error {
	return validate.Struct(p)
}

// ToUser builds the row to insert, parsing the birth date.
func (p *CreateUserPayload) ToUser() (*User, error) {
	birthDate, err := ParseDate(p.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("parsing birth date %q: %w", p.BirthDate, err)
	}

	return &User{
		ClubID:    p.ClubID,
		Name:      p.Name,
		Surname:   p.Surname,
		Phone:     p.Phone,
		BirthDate: birthDate,
		Role:      Role(p.Role),
	}, nil
}

// UserResponse is a user nested under its club.
type UserResponse struct {
	ID        int64  `json:"ID"`
	Name      string `json:"NOMBRE"`
	Surname   string `json:"APELLIDOS"`
	Phone     string `json:"TELEFONO"`
	BirthDate string `json:"FECHA NACIMIENTO"`
	Role      Role   `json:"ROL"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Surname:   u.Surname,
		Phone:     u.Phone,
		BirthDate: FormatDate(u.BirthDate),
		Role:      u.Role,
	}
}

// UserListItem is one element of GET /users. It uses the same labels as
// UserResponse plus the owning club.
type UserListItem struct {
	UserResponse
	ClubID int64 `json:"CLUB ID"`
}

func NewUserListItem(u User) UserListItem {
	return UserListItem{
		UserResponse: NewUserResponse(u),
		ClubID:       u.ClubID,
	}
}

// UserCreatedResponse is the body returned by POST /users.
type UserCreatedResponse struct {
	ID int64 `json:"User added"`
}
