package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alphagym/internal/models/db_models"
	"alphagym/internal/models/request_models"
	"alphagym/pkg/utils"
)

type provisioningFixture struct {
	identity *fakeIdentityRepo
	accounts *fakeAccountRepo
	gyms     *fakeGymRepo
	members  *fakeMembershipRepo
	service  ProvisioningServiceInterface
}

func newProvisioningFixture() *provisioningFixture {
	f := &provisioningFixture{
		identity: newFakeIdentityRepo(),
		accounts: newFakeAccountRepo(),
		gyms:     newFakeGymRepo(),
		members:  newFakeMembershipRepo(),
	}
	f.service = NewProvisioningService(f.identity, f.accounts, f.gyms, f.members)
	return f
}

func (f *provisioningFixture) addAdmin() *db_models.Account {
	return f.accounts.add(&db_models.Account{Email: "admin@alphagym.test", Role: db_models.RoleAdmin})
}

func (f *provisioningFixture) addOwnerWithGym() *db_models.Account {
	gymID := uuid.New()
	f.gyms.gyms[gymID] = &db_models.Gym{BaseModel: db_models.BaseModel{ID: gymID}, Name: "Alpha"}
	owner := f.accounts.add(&db_models.Account{Email: "owner@alphagym.test", Role: db_models.RoleOwner, GymID: &gymID})
	f.gyms.gyms[gymID].OwnerID = owner.ID
	return owner
}

func TestProvisionOwner(t *testing.T) {
	f := newProvisioningFixture()
	admin := f.addAdmin()

	resp, err := f.service.ProvisionOwner(context.Background(), admin.ID, request_models.CreateOwnerRequest{
		Email:   "new.owner@alphagym.test",
		GymName: "Iron Temple",
	})
	require.NoError(t, err)

	assert.Equal(t, "new.owner@alphagym.test", resp.Credentials.Email)
	assert.Len(t, resp.Credentials.TemporaryPassword, utils.TempPasswordLength)
	assert.Equal(t, string(db_models.RoleOwner), resp.Account.Role)

	cred := f.identity.creds["new.owner@alphagym.test"]
	require.NotNil(t, cred)
	assert.NoError(t, utils.ComparePasswords(cred.PasswordHash, resp.Credentials.TemporaryPassword))

	account, err := f.accounts.FindByEmail(context.Background(), "new.owner@alphagym.test")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, cred.ID, account.ID)
	assert.True(t, account.FirstLogin)
	require.NotNil(t, account.GymID)

	gym := f.gyms.gyms[*account.GymID]
	require.NotNil(t, gym)
	assert.Equal(t, "Iron Temple", gym.Name)
	assert.Equal(t, account.ID, gym.OwnerID)
}

func TestProvisionOwnerRequiresAdmin(t *testing.T) {
	f := newProvisioningFixture()
	owner := f.addOwnerWithGym()

	_, err := f.service.ProvisionOwner(context.Background(), owner.ID, request_models.CreateOwnerRequest{
		Email:   "x@alphagym.test",
		GymName: "Nope",
	})
	assert.ErrorIs(t, err, utils.ErrScopeViolation)
	assert.Empty(t, f.identity.creds)
}

func TestProvisionOwnerDuplicateEmail(t *testing.T) {
	f := newProvisioningFixture()
	admin := f.addAdmin()

	req := request_models.CreateOwnerRequest{Email: "dup@alphagym.test", GymName: "First"}
	_, err := f.service.ProvisionOwner(context.Background(), admin.ID, req)
	require.NoError(t, err)

	_, err = f.service.ProvisionOwner(context.Background(), admin.ID, req)
	assert.ErrorIs(t, err, utils.ErrDuplicateIdentity)
}

func TestProvisionOwnerPartialFailureLeavesOrphan(t *testing.T) {
	f := newProvisioningFixture()
	admin := f.addAdmin()
	f.accounts.insertErr = errors.New("connection reset")

	_, err := f.service.ProvisionOwner(context.Background(), admin.ID, request_models.CreateOwnerRequest{
		Email:   "orphan@alphagym.test",
		GymName: "Ghost Gym",
	})
	assert.ErrorIs(t, err, utils.ErrUpstreamWriteFailure)

	// The credential survives the failed run; nothing compensates.
	assert.NotNil(t, f.identity.creds["orphan@alphagym.test"])
	assert.Empty(t, f.gyms.gyms)
}

func TestProvisionCoachInheritsGym(t *testing.T) {
	f := newProvisioningFixture()
	owner := f.addOwnerWithGym()

	resp, err := f.service.ProvisionCoach(context.Background(), owner.ID, request_models.CreateCoachRequest{
		Email:    "coach@alphagym.test",
		FullName: "Dana Cruz",
	})
	require.NoError(t, err)

	account, err := f.accounts.FindByEmail(context.Background(), "coach@alphagym.test")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, db_models.RoleCoach, account.Role)
	require.NotNil(t, account.GymID)
	assert.Equal(t, *owner.GymID, *account.GymID)
	assert.Len(t, resp.Credentials.TemporaryPassword, utils.TempPasswordLength)
}

func TestProvisionCoachWithoutGym(t *testing.T) {
	f := newProvisioningFixture()
	owner := f.accounts.add(&db_models.Account{Email: "gymless@alphagym.test", Role: db_models.RoleOwner})

	_, err := f.service.ProvisionCoach(context.Background(), owner.ID, request_models.CreateCoachRequest{
		Email:    "coach@alphagym.test",
		FullName: "Dana Cruz",
	})
	assert.ErrorIs(t, err, utils.ErrMissingTenantScope)
}

func TestProvisionMember(t *testing.T) {
	restore := pinTime(day("2024-03-01"))
	defer restore()

	f := newProvisioningFixture()
	owner := f.addOwnerWithGym()
	coach := f.accounts.add(&db_models.Account{
		Email: "coach@alphagym.test", Role: db_models.RoleCoach, GymID: owner.GymID,
	})
	coachID := coach.ID.String()

	_, err := f.service.ProvisionMember(context.Background(), owner.ID, request_models.CreateMemberRequest{
		Email:            "member@alphagym.test",
		FullName:         "Sam Reyes",
		SubscriptionType: "yearly",
		BasePrice:        decimal.RequireFromString("300"),
		PromoPercentage:  decimal.RequireFromString("10"),
		CoachID:          &coachID,
	})
	require.NoError(t, err)

	account, err := f.accounts.FindByEmail(context.Background(), "member@alphagym.test")
	require.NoError(t, err)
	require.NotNil(t, account)

	m, err := f.members.FindByMember(context.Background(), account.ID)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "2024-03-01", m.MembershipStart.Format("2006-01-02"))
	assert.Equal(t, "2025-03-01", m.MembershipEnd.Format("2006-01-02"))
	assert.True(t, m.PricePaid.Equal(decimal.RequireFromString("270")), "got %s", m.PricePaid)
	require.NotNil(t, m.CoachID)
	assert.Equal(t, coach.ID, *m.CoachID)
}

func TestProvisionMemberChecksBeforeWriting(t *testing.T) {
	f := newProvisioningFixture()
	owner := f.addOwnerWithGym()

	otherGym := uuid.New()
	outsideCoach := f.accounts.add(&db_models.Account{
		Email: "outside@alphagym.test", Role: db_models.RoleCoach, GymID: &otherGym,
	})
	outsideID := outsideCoach.ID.String()

	tests := []struct {
		name string
		req  request_models.CreateMemberRequest
		want error
	}{
		{
			"unknown plan",
			request_models.CreateMemberRequest{Email: "a@alphagym.test", FullName: "A", SubscriptionType: "weekly"},
			utils.ErrInvalidSubscription,
		},
		{
			"coach from another gym",
			request_models.CreateMemberRequest{Email: "b@alphagym.test", FullName: "B", SubscriptionType: "monthly", CoachID: &outsideID},
			utils.ErrInvalidCoachScope,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.ProvisionMember(context.Background(), owner.ID, tt.req)
			assert.ErrorIs(t, err, tt.want)
			// Rejected before step one: no credential to orphan.
			assert.Nil(t, f.identity.creds[tt.req.Email])
		})
	}
}
