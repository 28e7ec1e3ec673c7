package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alphagym/internal/models/db_models"
	"alphagym/internal/repositories"
	"alphagym/pkg/utils"
)

func TestOwnerDashboard(t *testing.T) {
	restore := pinTime(day("2024-05-15"))
	defer restore()

	accounts := newFakeAccountRepo()
	members := newFakeMembershipRepo()
	gyms := newFakeGymRepo()
	service := NewDashboardService(accounts, members, gyms, &fakeAnalyticsRepo{})

	gymID := uuid.New()
	owner := accounts.add(&db_models.Account{Email: "owner@alphagym.test", Role: db_models.RoleOwner, GymID: &gymID})
	accounts.add(&db_models.Account{Email: "c1@alphagym.test", Role: db_models.RoleCoach, GymID: &gymID})
	accounts.add(&db_models.Account{Email: "c2@alphagym.test", Role: db_models.RoleCoach, GymID: &gymID})

	ends := []string{
		"2024-06-15", // active
		"2024-06-01", // active
		"2024-05-20", // expiring
		"2024-05-10", // expired
		"2024-05-01", // expired
		"2024-04-01", // expired
	}
	for _, end := range ends {
		member := accounts.add(&db_models.Account{Role: db_models.RoleMember, GymID: &gymID})
		require.NoError(t, members.Insert(context.Background(), &db_models.Membership{
			MemberID:      member.ID,
			GymID:         gymID,
			MembershipEnd: day(end),
			Member:        member,
		}))
	}

	dashboard, err := service.OwnerDashboard(context.Background(), owner.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(6), dashboard.TotalMembers)
	assert.Equal(t, int64(2), dashboard.ActiveMembers)
	assert.Equal(t, int64(1), dashboard.ExpiringMembers)
	assert.Equal(t, int64(3), dashboard.ExpiredMembers)
	assert.Equal(t, int64(2), dashboard.TotalCoaches)
	assert.Len(t, dashboard.RecentMembers, 5)
	// Newest enrollment leads the recent list.
	assert.Equal(t, "2024-04-01", dashboard.RecentMembers[0].MembershipEnd)
}

func TestOwnerDashboardScope(t *testing.T) {
	accounts := newFakeAccountRepo()
	service := NewDashboardService(accounts, newFakeMembershipRepo(), newFakeGymRepo(), &fakeAnalyticsRepo{})

	coach := accounts.add(&db_models.Account{Email: "coach@alphagym.test", Role: db_models.RoleCoach})
	_, err := service.OwnerDashboard(context.Background(), coach.ID)
	assert.ErrorIs(t, err, utils.ErrScopeViolation)
}

func TestAdminAnalytics(t *testing.T) {
	restore := pinTime(day("2024-05-15"))
	defer restore()

	accounts := newFakeAccountRepo()
	members := newFakeMembershipRepo()
	gyms := newFakeGymRepo()

	gymID := uuid.New()
	analytics := &fakeAnalyticsRepo{
		active:  4,
		expired: 2,
		rollups: []repositories.GymRollupRow{
			{ID: gymID.String(), Name: "Alpha", OwnerName: "Alex Kim", CoachesCount: 2, MembersCount: 6, ActiveCount: 4},
		},
	}
	service := NewDashboardService(accounts, members, gyms, analytics)

	admin := accounts.add(&db_models.Account{Email: "admin@alphagym.test", Role: db_models.RoleAdmin})
	accounts.add(&db_models.Account{Role: db_models.RoleOwner})
	accounts.add(&db_models.Account{Role: db_models.RoleCoach})
	accounts.add(&db_models.Account{Role: db_models.RoleMember})
	accounts.add(&db_models.Account{Role: db_models.RoleMember})
	require.NoError(t, gyms.Insert(context.Background(), &db_models.Gym{Name: "Alpha"}))

	got, err := service.AdminAnalytics(context.Background(), admin.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.TotalGyms)
	assert.Equal(t, int64(1), got.TotalOwners)
	assert.Equal(t, int64(1), got.TotalCoaches)
	assert.Equal(t, int64(2), got.TotalMembers)
	assert.Equal(t, int64(4), got.ActiveMemberships)
	assert.Equal(t, int64(2), got.ExpiredMemberships)
	require.Len(t, got.Gyms, 1)
	assert.Equal(t, gymID, got.Gyms[0].ID)
	assert.Equal(t, "Alex Kim", got.Gyms[0].OwnerName)
}

func TestAdminAnalyticsRequiresAdmin(t *testing.T) {
	accounts := newFakeAccountRepo()
	service := NewDashboardService(accounts, newFakeMembershipRepo(), newFakeGymRepo(), &fakeAnalyticsRepo{})

	owner := accounts.add(&db_models.Account{Email: "owner@alphagym.test", Role: db_models.RoleOwner})
	_, err := service.AdminAnalytics(context.Background(), owner.ID)
	assert.ErrorIs(t, err, utils.ErrScopeViolation)
}

func TestListOwners(t *testing.T) {
	accounts := newFakeAccountRepo()
	service := NewDashboardService(accounts, newFakeMembershipRepo(), newFakeGymRepo(), &fakeAnalyticsRepo{})

	admin := accounts.add(&db_models.Account{Email: "admin@alphagym.test", Role: db_models.RoleAdmin})
	accounts.ownerRows = []repositories.OwnerRow{
		{
			Account: db_models.Account{
				BaseModel:  db_models.BaseModel{ID: uuid.New()},
				Email:      "owner@alphagym.test",
				FirstLogin: true,
			},
			GymName: "Alpha",
		},
	}

	owners, err := service.ListOwners(context.Background(), admin.ID)
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, "Alpha", owners[0].GymName)
	assert.True(t, owners[0].FirstLogin)
}
