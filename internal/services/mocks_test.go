package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alphagym/internal/models/db_models"
	"alphagym/internal/repositories"
)

// In-memory fakes for the repository interfaces. Error fields force a
// failure on the matching call; everything else behaves like a tiny
// database.

type fakeIdentityRepo struct {
	creds     map[string]*db_models.AuthCredential
	insertErr error
	hashes    map[uuid.UUID]string
}

func newFakeIdentityRepo() *fakeIdentityRepo {
	return &fakeIdentityRepo{
		creds:  make(map[string]*db_models.AuthCredential),
		hashes: make(map[uuid.UUID]string),
	}
}

func (f *fakeIdentityRepo) Insert(_ context.Context, cred *db_models.AuthCredential) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if _, ok := f.creds[cred.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	if cred.ID == uuid.Nil {
		cred.ID = uuid.New()
	}
	f.creds[cred.Email] = cred
	return nil
}

func (f *fakeIdentityRepo) FindByEmail(_ context.Context, email string) (*db_models.AuthCredential, error) {
	return f.creds[email], nil
}

func (f *fakeIdentityRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	f.hashes[id] = hash
	for _, cred := range f.creds {
		if cred.ID == id {
			cred.PasswordHash = hash
		}
	}
	return nil
}

type fakeAccountRepo struct {
	accounts  map[uuid.UUID]*db_models.Account
	insertErr error

	firstLoginCompleted []uuid.UUID

	ownerRows []repositories.OwnerRow
	coachRows []repositories.CoachRow
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*db_models.Account)}
}

func (f *fakeAccountRepo) add(account *db_models.Account) *db_models.Account {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.ID] = account
	return account
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.add(account)
	return nil
}

func (f *fakeAccountRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Account, error) {
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) Update(_ context.Context, account *db_models.Account) error {
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) SetGym(_ context.Context, id uuid.UUID, gymID uuid.UUID) error {
	if a, ok := f.accounts[id]; ok {
		g := gymID
		a.GymID = &g
	}
	return nil
}

func (f *fakeAccountRepo) CompleteFirstLogin(_ context.Context, id uuid.UUID) error {
	f.firstLoginCompleted = append(f.firstLoginCompleted, id)
	if a, ok := f.accounts[id]; ok {
		a.FirstLogin = false
		a.TempPassword = nil
	}
	return nil
}

func (f *fakeAccountRepo) ListOwners(_ context.Context) ([]repositories.OwnerRow, error) {
	return f.ownerRows, nil
}

func (f *fakeAccountRepo) ListCoachesByGym(_ context.Context, _ uuid.UUID) ([]repositories.CoachRow, error) {
	return f.coachRows, nil
}

func (f *fakeAccountRepo) ListAllCoaches(_ context.Context) ([]repositories.CoachRow, error) {
	return f.coachRows, nil
}

func (f *fakeAccountRepo) DeleteCoach(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	delete(f.accounts, id)
	return nil
}

func (f *fakeAccountRepo) CountByRole(_ context.Context, role db_models.Role) (int64, error) {
	var n int64
	for _, a := range f.accounts {
		if a.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeAccountRepo) CountByRoleAndGym(_ context.Context, role db_models.Role, gymID uuid.UUID) (int64, error) {
	var n int64
	for _, a := range f.accounts {
		if a.Role == role && a.GymID != nil && *a.GymID == gymID {
			n++
		}
	}
	return n, nil
}

type fakeGymRepo struct {
	gyms      map[uuid.UUID]*db_models.Gym
	insertErr error
}

func newFakeGymRepo() *fakeGymRepo {
	return &fakeGymRepo{gyms: make(map[uuid.UUID]*db_models.Gym)}
}

func (f *fakeGymRepo) Insert(_ context.Context, gym *db_models.Gym) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if gym.ID == uuid.Nil {
		gym.ID = uuid.New()
	}
	f.gyms[gym.ID] = gym
	return nil
}

func (f *fakeGymRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Gym, error) {
	return f.gyms[id], nil
}

func (f *fakeGymRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) (*db_models.Gym, error) {
	for _, g := range f.gyms {
		if g.OwnerID == ownerID {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGymRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.gyms)), nil
}

func (f *fakeGymRepo) List(_ context.Context) ([]db_models.Gym, error) {
	out := make([]db_models.Gym, 0, len(f.gyms))
	for _, g := range f.gyms {
		out = append(out, *g)
	}
	return out, nil
}

type fakeMembershipRepo struct {
	memberships map[uuid.UUID]*db_models.Membership
	order       []uuid.UUID
	insertErr   error
	deleted     []uuid.UUID
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{memberships: make(map[uuid.UUID]*db_models.Membership)}
}

func (f *fakeMembershipRepo) Insert(_ context.Context, m *db_models.Membership) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	f.memberships[m.ID] = m
	f.order = append(f.order, m.ID)
	return nil
}

func (f *fakeMembershipRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Membership, error) {
	return f.memberships[id], nil
}

func (f *fakeMembershipRepo) FindByMember(_ context.Context, memberID uuid.UUID) (*db_models.Membership, error) {
	for _, m := range f.memberships {
		if m.MemberID == memberID {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMembershipRepo) ListByGym(_ context.Context, gymID uuid.UUID) ([]db_models.Membership, error) {
	out := []db_models.Membership{}
	for i := len(f.order) - 1; i >= 0; i-- {
		m := f.memberships[f.order[i]]
		if m != nil && m.GymID == gymID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMembershipRepo) ListByCoach(_ context.Context, coachID uuid.UUID) ([]db_models.Membership, error) {
	out := []db_models.Membership{}
	for i := len(f.order) - 1; i >= 0; i-- {
		m := f.memberships[f.order[i]]
		if m != nil && m.CoachID != nil && *m.CoachID == coachID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMembershipRepo) Update(_ context.Context, m *db_models.Membership) error {
	f.memberships[m.ID] = m
	return nil
}

func (f *fakeMembershipRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.memberships, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeMembershipRepo) DetachCoach(_ context.Context, _ *gorm.DB, coachID uuid.UUID) error {
	for _, m := range f.memberships {
		if m.CoachID != nil && *m.CoachID == coachID {
			m.CoachID = nil
		}
	}
	return nil
}

func (f *fakeMembershipRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.memberships)), nil
}

type fakeAnalyticsRepo struct {
	active  int64
	expired int64
	rollups []repositories.GymRollupRow
}

func (f *fakeAnalyticsRepo) CountMembershipsEndingOnOrAfter(_ context.Context, _ time.Time) (int64, error) {
	return f.active, nil
}

func (f *fakeAnalyticsRepo) CountMembershipsEndingBefore(_ context.Context, _ time.Time) (int64, error) {
	return f.expired, nil
}

func (f *fakeAnalyticsRepo) GymRollups(_ context.Context, _ time.Time) ([]repositories.GymRollupRow, error) {
	return f.rollups, nil
}

// pinTime freezes the service clock for a test and restores it after.
func pinTime(t time.Time) func() {
	prev := timeNow
	timeNow = func() time.Time { return t }
	return func() { timeNow = prev }
}
