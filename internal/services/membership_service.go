package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"alphagym/internal/models/db_models"
	"alphagym/internal/models/request_models"
	"alphagym/internal/models/response_models"
	"alphagym/internal/repositories"
	"alphagym/pkg/utils"
)

// timeNow is swapped in tests to pin "today".
var timeNow = time.Now

type MembershipServiceInterface interface {
	ListForGym(ctx context.Context, actorID uuid.UUID) ([]response_models.MembershipResponse, error)
	ListForCoach(ctx context.Context, actorID uuid.UUID) ([]response_models.MembershipResponse, error)
	GetMine(ctx context.Context, actorID uuid.UUID) (*response_models.MyMembershipResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, membershipID uuid.UUID, request request_models.UpdateMembershipRequest) (response_models.MembershipResponse, error)
	Delete(ctx context.Context, actorID uuid.UUID, membershipID uuid.UUID) error
	ReassignCoach(ctx context.Context, actorID uuid.UUID, membershipID uuid.UUID, coachID uuid.UUID) (response_models.MembershipResponse, error)
}

type MembershipService struct {
	membershipRepo repositories.MembershipRepository
	accountRepo    repositories.AccountRepository
}

func NewMembershipService(
	membershipRepo repositories.MembershipRepository,
	accountRepo repositories.AccountRepository,
) MembershipServiceInterface {
	return &MembershipService{
		membershipRepo: membershipRepo,
		accountRepo:    accountRepo,
	}
}

// validateCoachScope confirms the referenced account is a coach of the
// given gym. Anything else is an invalid coach reference, including a
// coach of some other gym.
func validateCoachScope(ctx context.Context, repo repositories.AccountRepository, coachID uuid.UUID, gymID uuid.UUID) error {
	coach, err := repo.FindById(ctx, coachID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if coach == nil || coach.Role != db_models.RoleCoach {
		return utils.ErrInvalidCoachScope
	}
	if coach.GymID == nil || *coach.GymID != gymID {
		return utils.ErrInvalidCoachScope
	}
	return nil
}

func (s *MembershipService) ListForGym(ctx context.Context, actorID uuid.UUID) ([]response_models.MembershipResponse, error) {
	actor, err := resolveActor(ctx, s.accountRepo, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != db_models.RoleOwner {
		return nil, utils.ErrScopeViolation
	}
	if actor.GymID == nil {
		return nil, utils.ErrMissingTenantScope
	}

	memberships, err := s.membershipRepo.ListByGym(ctx, *actor.GymID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.toResponses(memberships), nil
}

func (s *MembershipService) ListForCoach(ctx context.Context, actorID uuid.UUID) ([]response_models.MembershipResponse, error) {
	actor, err := resolveActor(ctx, s.accountRepo, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != db_models.RoleCoach {
		return nil, utils.ErrScopeViolation
	}

	memberships, err := s.membershipRepo.ListByCoach(ctx, actor.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.toResponses(memberships), nil
}

func (s *MembershipService) GetMine(ctx context.Context, actorID uuid.UUID) (*response_models.MyMembershipResponse, error) {
	actor, err := resolveActor(ctx, s.accountRepo, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != db_models.RoleMember {
		return nil, utils.ErrScopeViolation
	}

	m, err := s.membershipRepo.FindByMember(ctx, actor.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if m == nil {
		return nil, nil
	}

	resp := &response_models.MyMembershipResponse{
		MembershipResponse: s.toResponse(m),
		GymName:            m.Gym.Name,
		GymLocation:        m.Gym.Location,
	}
	if m.Coach != nil {
		resp.CoachPhone = m.Coach.Phone
		resp.CoachBio = m.Coach.Bio
		resp.CoachAvatar = m.Coach.AvatarURL
	}
	return resp, nil
}

// Update is the owner's escape hatch: unlike creation, every field may
// be overridden directly. When the plan or start date changes and no
// explicit end date comes with it, the end date is re-derived.
func (s *MembershipService) Update(ctx context.Context, actorID uuid.UUID, membershipID uuid.UUID, request request_models.UpdateMembershipRequest) (response_models.MembershipResponse, error) {
	m, err := s.findOwned(ctx, actorID, membershipID)
	if err != nil {
		return response_models.MembershipResponse{}, err
	}

	if request.Discipline != nil {
		m.Discipline = *request.Discipline
	}

	recomputeEnd := false
	if request.SubscriptionType != nil {
		subType := db_models.SubscriptionType(*request.SubscriptionType)
		if _, ok := planMonths[subType]; !ok {
			return response_models.MembershipResponse{}, utils.ErrInvalidSubscription
		}
		m.SubscriptionType = subType
		recomputeEnd = true
	}
	if request.MembershipStart != nil {
		start, err := utils.ParseDate(*request.MembershipStart)
		if err != nil {
			return response_models.MembershipResponse{}, utils.ErrInvalidSubscription
		}
		m.MembershipStart = start
		recomputeEnd = true
	}
	if request.MembershipEnd != nil {
		end, err := utils.ParseDate(*request.MembershipEnd)
		if err != nil {
			return response_models.MembershipResponse{}, utils.ErrInvalidSubscription
		}
		m.MembershipEnd = end
		recomputeEnd = false
	}
	if recomputeEnd {
		end, err := ComputeEndDate(m.SubscriptionType, m.MembershipStart)
		if err != nil {
			return response_models.MembershipResponse{}, err
		}
		m.MembershipEnd = end
	}

	if request.PromoPercentage != nil {
		m.PromoPercentage = *request.PromoPercentage
	}
	if request.PricePaid != nil {
		price := *request.PricePaid
		if price.IsNegative() {
			price = decimal.Zero
		}
		m.PricePaid = price.Round(2)
	}

	if request.CoachID != nil {
		if *request.CoachID == "" {
			m.CoachID = nil
		} else {
			parsed, err := uuid.Parse(*request.CoachID)
			if err != nil {
				return response_models.MembershipResponse{}, utils.ErrInvalidCoachScope
			}
			if err := validateCoachScope(ctx, s.accountRepo, parsed, m.GymID); err != nil {
				return response_models.MembershipResponse{}, err
			}
			m.CoachID = &parsed
		}
	}

	if err := s.membershipRepo.Update(ctx, m); err != nil {
		return response_models.MembershipResponse{}, utils.ErrDatabaseError
	}
	return s.toResponse(m), nil
}

// Delete removes the membership row only. The member account and its
// credential stay, so the person can be re-enrolled later.
func (s *MembershipService) Delete(ctx context.Context, actorID uuid.UUID, membershipID uuid.UUID) error {
	m, err := s.findOwned(ctx, actorID, membershipID)
	if err != nil {
		return err
	}
	if err := s.membershipRepo.Delete(ctx, m.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// ReassignCoach is allowed to the membership's own member (self
// service) and to the gym's owner. The new coach must belong to the
// membership's gym.
func (s *MembershipService) ReassignCoach(ctx context.Context, actorID uuid.UUID, membershipID uuid.UUID, coachID uuid.UUID) (response_models.MembershipResponse, error) {
	actor, err := resolveActor(ctx, s.accountRepo, actorID)
	if err != nil {
		return response_models.MembershipResponse{}, err
	}

	m, err := s.membershipRepo.FindById(ctx, membershipID)
	if err != nil {
		return response_models.MembershipResponse{}, utils.ErrDatabaseError
	}
	if m == nil {
		return response_models.MembershipResponse{}, utils.ErrNotFound
	}

	switch actor.Role {
	case db_models.RoleMember:
		if m.MemberID != actor.ID {
			// Do not confirm the record exists to someone outside it.
			return response_models.MembershipResponse{}, utils.ErrNotFound
		}
	case db_models.RoleOwner:
		if actor.GymID == nil || *actor.GymID != m.GymID {
			return response_models.MembershipResponse{}, utils.ErrNotFound
		}
	default:
		return response_models.MembershipResponse{}, utils.ErrScopeViolation
	}

	if err := validateCoachScope(ctx, s.accountRepo, coachID, m.GymID); err != nil {
		return response_models.MembershipResponse{}, err
	}

	m.CoachID = &coachID
	if err := s.membershipRepo.Update(ctx, m); err != nil {
		return response_models.MembershipResponse{}, utils.ErrDatabaseError
	}
	return s.toResponse(m), nil
}

// findOwned loads a membership and verifies the actor is the owner of
// its gym. Cross-tenant lookups read as "not found".
func (s *MembershipService) findOwned(ctx context.Context, actorID uuid.UUID, membershipID uuid.UUID) (*db_models.Membership, error) {
	actor, err := resolveActor(ctx, s.accountRepo, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != db_models.RoleOwner {
		return nil, utils.ErrScopeViolation
	}

	m, err := s.membershipRepo.FindById(ctx, membershipID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if m == nil {
		return nil, utils.ErrNotFound
	}
	if actor.GymID == nil || *actor.GymID != m.GymID {
		return nil, utils.ErrNotFound
	}
	return m, nil
}

func (s *MembershipService) toResponse(m *db_models.Membership) response_models.MembershipResponse {
	status := ClassifyStatus(&m.MembershipEnd, timeNow())
	resp := response_models.MembershipResponse{
		ID:               m.ID,
		MemberID:         m.MemberID,
		GymID:            m.GymID,
		MemberName:       m.Member.FullName,
		MemberPhone:      m.Member.Phone,
		Discipline:       m.Discipline,
		SubscriptionType: string(m.SubscriptionType),
		MembershipStart:  utils.FormatDate(m.MembershipStart),
		MembershipEnd:    utils.FormatDate(m.MembershipEnd),
		PricePaid:        m.PricePaid,
		PromoPercentage:  m.PromoPercentage,
		CoachID:          m.CoachID,
		Status:           string(status.Label),
		DaysRemaining:    status.DaysRemaining,
	}
	if m.Coach != nil {
		resp.CoachName = m.Coach.FullName
	}
	return resp
}

func (s *MembershipService) toResponses(ms []db_models.Membership) []response_models.MembershipResponse {
	out := make([]response_models.MembershipResponse, 0, len(ms))
	for i := range ms {
		out = append(out, s.toResponse(&ms[i]))
	}
	return out
}
