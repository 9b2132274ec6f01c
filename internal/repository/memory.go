package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/deppfellow/swimmeet/internal/model"
	"github.com/deppfellow/swimmeet/internal/sqlerr"
)

// memData is one consistent snapshot of every table.
// Rows are appended in id order, so the slices are always sorted by id.
type memData struct {
	clubs       []model.Club
	users       []model.User
	tournaments []model.Tournament
	races       []model.Race
}

func (d *memData) clone() *memData {
	return &memData{
		clubs:       slices.Clone(d.clubs),
		users:       slices.Clone(d.users),
		tournaments: slices.Clone(d.tournaments),
		races:       slices.Clone(d.races),
	}
}

// MemoryStore keeps records in process memory.
//
// Units of work are serialized by mu. Each one writes to a private copy of
// the data that replaces the shared snapshot only when fn succeeds. Id
// sequences live outside the snapshot so an id is never handed out twice,
// even after a rollback.
type MemoryStore struct {
	mu   sync.Mutex
	data *memData

	nextClubID       int64
	nextUserID       int64
	nextTournamentID int64
	nextRaceID       int64

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: &memData{},
		now:  time.Now,
	}
}

func (s *MemoryStore) WithinTx(ctx context.Context, fn func(repos *Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, data: s.data.clone()}
	if err := fn(tx.repositories()); err != nil {
		return err
	}

	s.data = tx.data
	return nil
}

// memTx implements every repository over one private snapshot.
// It is only used while the store mutex is held.
type memTx struct {
	store *MemoryStore
	data  *memData
}

func (tx *memTx) repositories() *Repositories {
	return &Repositories{
		Clubs:       tx,
		Users:       tx,
		Tournaments: tx,
		Races:       tx,
	}
}

func (tx *memTx) CreateClub(_ context.Context, club *model.Club) (*model.Club, error) {
	tx.store.nextClubID++

	created := *club
	created.ID = tx.store.nextClubID
	created.CreatedAt = tx.store.now()
	tx.data.clubs = append(tx.data.clubs, created)

	return &created, nil
}

func (tx *memTx) GetClubByID(_ context.Context, id int64) (*model.Club, error) {
	i := slices.IndexFunc(tx.data.clubs, func(c model.Club) bool { return c.ID == id })
	if i < 0 {
		return nil, sqlerr.NotFound("clubs")
	}
	club := tx.data.clubs[i]
	return &club, nil
}

func (tx *memTx) ListClubs(_ context.Context) ([]model.Club, error) {
	return slices.Clone(tx.data.clubs), nil
}

func (tx *memTx) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	// Same guarantee as the users.club_id foreign key.
	if _, err := tx.GetClubByID(ctx, user.ClubID); err != nil {
		return nil, err
	}

	tx.store.nextUserID++

	created := *user
	created.ID = tx.store.nextUserID
	created.CreatedAt = tx.store.now()
	tx.data.users = append(tx.data.users, created)

	return &created, nil
}

func (tx *memTx) ListUsers(_ context.Context) ([]model.User, error) {
	return slices.Clone(tx.data.users), nil
}

func (tx *memTx) ListUsersByClubIDs(_ context.Context, clubIDs []int64) ([]model.User, error) {
	users := []model.User{}
	for _, u := range tx.data.users {
		if slices.Contains(clubIDs, u.ClubID) {
			users = append(users, u)
		}
	}
	return users, nil
}

func (tx *memTx) CreateTournament(_ context.Context, t *model.Tournament) (*model.Tournament, error) {
	tx.store.nextTournamentID++

	created := *t
	created.ID = tx.store.nextTournamentID
	created.CreatedAt = tx.store.now()
	tx.data.tournaments = append(tx.data.tournaments, created)

	return &created, nil
}

func (tx *memTx) GetTournamentByID(_ context.Context, id int64) (*model.Tournament, error) {
	i := slices.IndexFunc(tx.data.tournaments, func(t model.Tournament) bool { return t.ID == id })
	if i < 0 {
		return nil, sqlerr.NotFound("tournaments")
	}
	t := tx.data.tournaments[i]
	return &t, nil
}

func (tx *memTx) ListTournaments(_ context.Context) ([]model.Tournament, error) {
	return slices.Clone(tx.data.tournaments), nil
}

func (tx *memTx) CountTournaments(_ context.Context) (int, error) {
	return len(tx.data.tournaments), nil
}

func (tx *memTx) CreateRace(ctx context.Context, race *model.Race) (*model.Race, error) {
	// Same guarantee as the races.tournament_id foreign key.
	if _, err := tx.GetTournamentByID(ctx, race.TournamentID); err != nil {
		return nil, err
	}

	tx.store.nextRaceID++

	created := *race
	created.ID = tx.store.nextRaceID
	created.CreatedAt = tx.store.now()
	tx.data.races = append(tx.data.races, created)

	return &created, nil
}

func (tx *memTx) ListRacesByTournamentIDs(_ context.Context, tournamentIDs []int64) ([]model.Race, error) {
	races := []model.Race{}
	for _, r := range tx.data.races {
		if slices.Contains(tournamentIDs, r.TournamentID) {
			races = append(races, r)
		}
	}
	return races, nil
}
