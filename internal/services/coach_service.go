package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alphagym/internal/infra"
	"alphagym/internal/models/db_models"
	"alphagym/internal/models/response_models"
	"alphagym/internal/repositories"
	"alphagym/pkg/utils"
)

type CoachServiceInterface interface {
	ListGymCoaches(ctx context.Context, actorID uuid.UUID) ([]response_models.CoachResponse, error)
	ListAllCoaches(ctx context.Context, actorID uuid.UUID) ([]response_models.CoachResponse, error)
	DeleteCoach(ctx context.Context, actorID uuid.UUID, coachID uuid.UUID) error
}

type CoachService struct {
	db             *gorm.DB
	accountRepo    repositories.AccountRepository
	membershipRepo repositories.MembershipRepository
}

func NewCoachService(
	db *gorm.DB,
	accountRepo repositories.AccountRepository,
	membershipRepo repositories.MembershipRepository,
) CoachServiceInterface {
	return &CoachService{
		db:             db,
		accountRepo:    accountRepo,
		membershipRepo: membershipRepo,
	}
}

// ListGymCoaches is the owner's roster. It is the one place a retained
// temporary password is still revealed, so the owner can hand it over
// until the coach signs in.
func (c *CoachService) ListGymCoaches(ctx context.Context, actorID uuid.UUID) ([]response_models.CoachResponse, error) {
	actor, err := resolveActor(ctx, c.accountRepo, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != db_models.RoleOwner {
		return nil, utils.ErrScopeViolation
	}
	if actor.GymID == nil {
		return nil, utils.ErrMissingTenantScope
	}

	rows, err := c.accountRepo.ListCoachesByGym(ctx, *actor.GymID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CoachResponse, 0, len(rows))
	for i := range rows {
		resp := toCoachResponse(&rows[i])
		if rows[i].FirstLogin && rows[i].TempPassword != nil {
			resp.TempPassword = *rows[i].TempPassword
		}
		out = append(out, resp)
	}
	return out, nil
}

// ListAllCoaches is the member-facing find-a-coach view: every coach
// across every gym, busiest first. Members can browse cross-gym; the
// same-gym rule only bites when they try to assign one.
func (c *CoachService) ListAllCoaches(ctx context.Context, actorID uuid.UUID) ([]response_models.CoachResponse, error) {
	if _, err := resolveActor(ctx, c.accountRepo, actorID); err != nil {
		return nil, err
	}

	rows, err := c.accountRepo.ListAllCoaches(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CoachResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toCoachResponse(&rows[i]))
	}
	return out, nil
}

// DeleteCoach detaches the coach's members first, then removes the
// account, both inside one transaction. Members keep their memberships
// with no coach assigned.
func (c *CoachService) DeleteCoach(ctx context.Context, actorID uuid.UUID, coachID uuid.UUID) error {
	actor, err := resolveActor(ctx, c.accountRepo, actorID)
	if err != nil {
		return err
	}
	if actor.Role != db_models.RoleOwner {
		return utils.ErrScopeViolation
	}
	if actor.GymID == nil {
		return utils.ErrMissingTenantScope
	}

	coach, err := c.accountRepo.FindById(ctx, coachID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if coach == nil || coach.Role != db_models.RoleCoach {
		return utils.ErrNotFound
	}
	if coach.GymID == nil || *coach.GymID != *actor.GymID {
		return utils.ErrNotFound
	}

	tx := infra.StartTransaction(c.db)
	if tx.Error != nil {
		return utils.ErrDatabaseError
	}

	var txErr error
	defer func() { infra.ReleaseTransaction(tx, txErr) }()

	if txErr = c.membershipRepo.DetachCoach(ctx, tx, coachID); txErr != nil {
		return utils.ErrDatabaseError
	}
	if txErr = c.accountRepo.DeleteCoach(ctx, tx, coachID); txErr != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toCoachResponse(row *repositories.CoachRow) response_models.CoachResponse {
	return response_models.CoachResponse{
		ID:          row.ID,
		FullName:    row.FullName,
		Phone:       row.Phone,
		Bio:         row.Bio,
		AvatarURL:   row.AvatarURL,
		GymName:     row.GymName,
		GymLocation: row.GymLocation,
		ClientCount: row.ClientCount,
		FirstLogin:  row.FirstLogin,
	}
}
