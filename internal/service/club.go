package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/swimmeet/internal/model"
	"github.com/deppfellow/swimmeet/internal/repository"
	"github.com/rs/zerolog"
)

type ClubService struct {
	store repository.Store
}

func NewClubService(store repository.Store) *ClubService {
	return &ClubService{store: store}
}

func (s *ClubService) CreateClub(ctx context.Context, payload *model.CreateClubPayload) (*model.Club, error) {
	var club *model.Club
	err := s.store.WithinTx(ctx, func(repos *repository.Repositories) error {
		var err error
		club, err = repos.Clubs.CreateClub(ctx, payload.ToClub())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create club: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "club_created").
		Int64("club_id", club.ID).
		Msg("club created")

	return club, nil
}

// ListClubs returns every club with its users nested.
func (s *ClubService) ListClubs(ctx context.Context) ([]model.ClubResponse, error) {
	res := []model.ClubResponse{}
	err := s.store.WithinTx(ctx, func(repos *repository.Repositories) error {
		clubs, err := repos.Clubs.ListClubs(ctx)
		if err != nil {
			return err
		}

		ids := make([]int64, 0, len(clubs))
		for _, c := range clubs {
			ids = append(ids, c.ID)
		}

		users, err := repos.Users.ListUsersByClubIDs(ctx, ids)
		if err != nil {
			return err
		}

		byClub := make(map[int64][]model.User, len(clubs))
		for _, u := range users {
			byClub[u.ClubID] = append(byClub[u.ClubID], u)
		}

		for _, c := range clubs {
			res = append(res, model.NewClubResponse(c, byClub[c.ID]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}

	return res, nil
}
