package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"alphagym/internal/models/db_models"
	"alphagym/internal/models/response_models"
	"alphagym/internal/repositories"
	"alphagym/pkg/utils"
)

const recentMembersLimit = 5

type DashboardServiceInterface interface {
	OwnerDashboard(ctx context.Context, actorID uuid.UUID) (response_models.OwnerDashboard, error)
	AdminAnalytics(ctx context.Context, actorID uuid.UUID) (response_models.AdminAnalytics, error)
	ListOwners(ctx context.Context, actorID uuid.UUID) ([]response_models.OwnerSummary, error)
}

type DashboardService struct {
	accountRepo    repositories.AccountRepository
	membershipRepo repositories.MembershipRepository
	gymRepo        repositories.GymRepository
	analyticsRepo  repositories.AnalyticsRepository
}

func NewDashboardService(
	accountRepo repositories.AccountRepository,
	membershipRepo repositories.MembershipRepository,
	gymRepo repositories.GymRepository,
	analyticsRepo repositories.AnalyticsRepository,
) DashboardServiceInterface {
	return &DashboardService{
		accountRepo:    accountRepo,
		membershipRepo: membershipRepo,
		gymRepo:        gymRepo,
		analyticsRepo:  analyticsRepo,
	}
}

// OwnerDashboard classifies every membership of the gym against today
// and folds the labels into KPI counters. Memberships and the coach
// count load concurrently, both are read-only.
func (d *DashboardService) OwnerDashboard(ctx context.Context, actorID uuid.UUID) (response_models.OwnerDashboard, error) {
	actor, err := resolveActor(ctx, d.accountRepo, actorID)
	if err != nil {
		return response_models.OwnerDashboard{}, err
	}
	if actor.Role != db_models.RoleOwner {
		return response_models.OwnerDashboard{}, utils.ErrScopeViolation
	}
	if actor.GymID == nil {
		return response_models.OwnerDashboard{}, utils.ErrMissingTenantScope
	}

	var (
		memberships []db_models.Membership
		coachCount  int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		memberships, err = d.membershipRepo.ListByGym(gctx, *actor.GymID)
		return err
	})
	g.Go(func() error {
		var err error
		coachCount, err = d.accountRepo.CountByRoleAndGym(gctx, db_models.RoleCoach, *actor.GymID)
		return err
	})
	if err := g.Wait(); err != nil {
		return response_models.OwnerDashboard{}, utils.ErrDatabaseError
	}

	dashboard := response_models.OwnerDashboard{
		TotalMembers:  int64(len(memberships)),
		TotalCoaches:  coachCount,
		RecentMembers: []response_models.MembershipResponse{},
	}

	now := timeNow()
	for i := range memberships {
		status := ClassifyStatus(&memberships[i].MembershipEnd, now)
		switch status.Label {
		case StatusActive:
			dashboard.ActiveMembers++
		case StatusExpiring:
			dashboard.ExpiringMembers++
		case StatusExpired:
			dashboard.ExpiredMembers++
		}
	}

	// ListByGym is already newest first.
	svc := MembershipService{membershipRepo: d.membershipRepo, accountRepo: d.accountRepo}
	for i := range memberships {
		if i == recentMembersLimit {
			break
		}
		dashboard.RecentMembers = append(dashboard.RecentMembers, svc.toResponse(&memberships[i]))
	}
	return dashboard, nil
}

// AdminAnalytics aggregates across the whole platform. All counters are
// independent reads, so they fan out on an errgroup.
func (d *DashboardService) AdminAnalytics(ctx context.Context, actorID uuid.UUID) (response_models.AdminAnalytics, error) {
	actor, err := resolveActor(ctx, d.accountRepo, actorID)
	if err != nil {
		return response_models.AdminAnalytics{}, err
	}
	if actor.Role != db_models.RoleAdmin {
		return response_models.AdminAnalytics{}, utils.ErrScopeViolation
	}

	today := utils.Midnight(timeNow())
	var (
		analytics response_models.AdminAnalytics
		rollups   []repositories.GymRollupRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		analytics.TotalGyms, err = d.gymRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		analytics.TotalOwners, err = d.accountRepo.CountByRole(gctx, db_models.RoleOwner)
		return err
	})
	g.Go(func() error {
		var err error
		analytics.TotalCoaches, err = d.accountRepo.CountByRole(gctx, db_models.RoleCoach)
		return err
	})
	g.Go(func() error {
		var err error
		analytics.TotalMembers, err = d.accountRepo.CountByRole(gctx, db_models.RoleMember)
		return err
	})
	g.Go(func() error {
		var err error
		analytics.TotalMemberships, err = d.membershipRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		analytics.ActiveMemberships, err = d.analyticsRepo.CountMembershipsEndingOnOrAfter(gctx, today)
		return err
	})
	g.Go(func() error {
		var err error
		analytics.ExpiredMemberships, err = d.analyticsRepo.CountMembershipsEndingBefore(gctx, today)
		return err
	})
	g.Go(func() error {
		var err error
		rollups, err = d.analyticsRepo.GymRollups(gctx, today)
		return err
	})
	if err := g.Wait(); err != nil {
		return response_models.AdminAnalytics{}, utils.ErrDatabaseError
	}

	analytics.Gyms = make([]response_models.GymRollup, 0, len(rollups))
	for _, row := range rollups {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			continue
		}
		analytics.Gyms = append(analytics.Gyms, response_models.GymRollup{
			ID:           id,
			Name:         row.Name,
			Location:     row.Location,
			OwnerName:    row.OwnerName,
			CoachesCount: row.CoachesCount,
			MembersCount: row.MembersCount,
			ActiveCount:  row.ActiveCount,
		})
	}
	return analytics, nil
}

func (d *DashboardService) ListOwners(ctx context.Context, actorID uuid.UUID) ([]response_models.OwnerSummary, error) {
	actor, err := resolveActor(ctx, d.accountRepo, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != db_models.RoleAdmin {
		return nil, utils.ErrScopeViolation
	}

	rows, err := d.accountRepo.ListOwners(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.OwnerSummary, 0, len(rows))
	for i := range rows {
		out = append(out, response_models.OwnerSummary{
			ID:          rows[i].ID,
			Email:       rows[i].Email,
			Phone:       rows[i].Phone,
			GymName:     rows[i].GymName,
			GymLocation: rows[i].GymLocation,
			FirstLogin:  rows[i].FirstLogin,
		})
	}
	return out, nil
}
