package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/swimmeet/internal/errs"
	"github.com/deppfellow/swimmeet/internal/model"
	"github.com/deppfellow/swimmeet/internal/repository"
	"github.com/rs/zerolog"
)

type UserService struct {
	store repository.Store
}

func NewUserService(store repository.Store) *UserService {
	return &UserService{store: store}
}

// CreateUser stores a user for an existing club. A missing club yields a
// 404 and nothing is written.
func (s *UserService) CreateUser(ctx context.Context, payload *model.CreateUserPayload) (*model.User, error) {
	user, err := payload.ToUser()
	if err != nil {
		return nil, errs.NewUnprocessableEntityError("Validation failed", true, []errs.FieldError{
			{Field: "fecha_nacimiento", Error: err.Error()},
		})
	}

	var created *model.User
	err = s.store.WithinTx(ctx, func(repos *repository.Repositories) error {
		if _, err := repos.Clubs.GetClubByID(ctx, user.ClubID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return errs.NewNotFoundError("Club not found", true, nil)
			}
			return err
		}

		created, err = repos.Users.CreateUser(ctx, user)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "user_created").
		Int64("user_id", created.ID).
		Int64("club_id", created.ClubID).
		Str("role", string(created.Role)).
		Msg("user created")

	return created, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.UserListItem, error) {
	res := []model.UserListItem{}
	err := s.store.WithinTx(ctx, func(repos *repository.Repositories) error {
		users, err := repos.Users.ListUsers(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			res = append(res, model.NewUserListItem(u))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return res, nil
}
