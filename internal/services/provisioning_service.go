package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alphagym/internal/models/db_models"
	"alphagym/internal/models/request_models"
	"alphagym/internal/models/response_models"
	"alphagym/internal/repositories"
	"alphagym/pkg/utils"
)

// ProvisioningService bootstraps role-scoped accounts with a generated
// temporary password. The flow is deliberately sequential and
// uncompensated: credential first, then profile, then gym or
// membership. A failure after the credential exists surfaces as
// ErrUpstreamWriteFailure so an operator can reconcile the orphan;
// nothing rolls back.
type ProvisioningServiceInterface interface {
	ProvisionOwner(ctx context.Context, actorID uuid.UUID, request request_models.CreateOwnerRequest) (response_models.ProvisionedAccountResponse, error)
	ProvisionCoach(ctx context.Context, actorID uuid.UUID, request request_models.CreateCoachRequest) (response_models.ProvisionedAccountResponse, error)
	ProvisionMember(ctx context.Context, actorID uuid.UUID, request request_models.CreateMemberRequest) (response_models.ProvisionedAccountResponse, error)
}

type ProvisioningService struct {
	identityRepo   repositories.IdentityRepository
	accountRepo    repositories.AccountRepository
	gymRepo        repositories.GymRepository
	membershipRepo repositories.MembershipRepository
}

func NewProvisioningService(
	identityRepo repositories.IdentityRepository,
	accountRepo repositories.AccountRepository,
	gymRepo repositories.GymRepository,
	membershipRepo repositories.MembershipRepository,
) ProvisioningServiceInterface {
	return &ProvisioningService{
		identityRepo:   identityRepo,
		accountRepo:    accountRepo,
		gymRepo:        gymRepo,
		membershipRepo: membershipRepo,
	}
}

func (p *ProvisioningService) ProvisionOwner(ctx context.Context, actorID uuid.UUID, request request_models.CreateOwnerRequest) (response_models.ProvisionedAccountResponse, error) {
	actor, err := resolveActor(ctx, p.accountRepo, actorID)
	if err != nil {
		return response_models.ProvisionedAccountResponse{}, err
	}
	if actor.Role != db_models.RoleAdmin {
		return response_models.ProvisionedAccountResponse{}, utils.ErrScopeViolation
	}

	id, tempPassword, err := p.createIdentity(ctx, request.Email)
	if err != nil {
		return response_models.ProvisionedAccountResponse{}, err
	}

	account := &db_models.Account{
		BaseModel:    db_models.BaseModel{ID: id},
		Email:        request.Email,
		Phone:        request.Phone,
		Role:         db_models.RoleOwner,
		FirstLogin:   true,
		TempPassword: &tempPassword,
	}
	if err := p.accountRepo.Insert(ctx, account); err != nil {
		return response_models.ProvisionedAccountResponse{}, p.partialFailure(request.Email, "owner profile", err)
	}

	gym := &db_models.Gym{
		Name:     request.GymName,
		Location: request.Location,
		OwnerID:  id,
	}
	if err := p.gymRepo.Insert(ctx, gym); err != nil {
		return response_models.ProvisionedAccountResponse{}, p.partialFailure(request.Email, "gym", err)
	}

	// The profile exists before the gym, so the gym id lands in a
	// follow-up update.
	if err := p.accountRepo.SetGym(ctx, id, gym.ID); err != nil {
		return response_models.ProvisionedAccountResponse{}, p.partialFailure(request.Email, "gym backfill", err)
	}
	account.GymID = &gym.ID

	return p.grant(account, tempPassword), nil
}

func (p *ProvisioningService) ProvisionCoach(ctx context.Context, actorID uuid.UUID, request request_models.CreateCoachRequest) (response_models.ProvisionedAccountResponse, error) {
	actor, err := resolveActor(ctx, p.accountRepo, actorID)
	if err != nil {
		return response_models.ProvisionedAccountResponse{}, err
	}
	if actor.Role != db_models.RoleOwner {
		return response_models.ProvisionedAccountResponse{}, utils.ErrScopeViolation
	}
	if actor.GymID == nil {
		return response_models.ProvisionedAccountResponse{}, utils.ErrMissingTenantScope
	}

	id, tempPassword, err := p.createIdentity(ctx, request.Email)
	if err != nil {
		return response_models.ProvisionedAccountResponse{}, err
	}

	account := &db_models.Account{
		BaseModel:    db_models.BaseModel{ID: id},
		Email:        request.Email,
		FullName:     request.FullName,
		Phone:        request.Phone,
		Role:         db_models.RoleCoach,
		GymID:        actor.GymID,
		FirstLogin:   true,
		TempPassword: &tempPassword,
	}
	if err := p.accountRepo.Insert(ctx, account); err != nil {
		return response_models.ProvisionedAccountResponse{}, p.partialFailure(request.Email, "coach profile", err)
	}

	return p.grant(account, tempPassword), nil
}

func (p *ProvisioningService) ProvisionMember(ctx context.Context, actorID uuid.UUID, request request_models.CreateMemberRequest) (response_models.ProvisionedAccountResponse, error) {
	actor, err := resolveActor(ctx, p.accountRepo, actorID)
	if err != nil {
		return response_models.ProvisionedAccountResponse{}, err
	}
	if actor.Role != db_models.RoleOwner {
		return response_models.ProvisionedAccountResponse{}, utils.ErrScopeViolation
	}
	if actor.GymID == nil {
		return response_models.ProvisionedAccountResponse{}, utils.ErrMissingTenantScope
	}

	// Everything checkable without writing is checked here, before the
	// identity exists.
	subType := db_models.SubscriptionType(request.SubscriptionType)
	if _, ok := planMonths[subType]; !ok {
		return response_models.ProvisionedAccountResponse{}, utils.ErrInvalidSubscription
	}

	var coachID *uuid.UUID
	if request.CoachID != nil && *request.CoachID != "" {
		parsed, err := uuid.Parse(*request.CoachID)
		if err != nil {
			return response_models.ProvisionedAccountResponse{}, utils.ErrInvalidCoachScope
		}
		if err := validateCoachScope(ctx, p.accountRepo, parsed, *actor.GymID); err != nil {
			return response_models.ProvisionedAccountResponse{}, err
		}
		coachID = &parsed
	}

	id, tempPassword, err := p.createIdentity(ctx, request.Email)
	if err != nil {
		return response_models.ProvisionedAccountResponse{}, err
	}

	account := &db_models.Account{
		BaseModel:    db_models.BaseModel{ID: id},
		Email:        request.Email,
		FullName:     request.FullName,
		Phone:        request.Phone,
		Role:         db_models.RoleMember,
		GymID:        actor.GymID,
		FirstLogin:   true,
		TempPassword: &tempPassword,
	}
	if err := p.accountRepo.Insert(ctx, account); err != nil {
		return response_models.ProvisionedAccountResponse{}, p.partialFailure(request.Email, "member profile", err)
	}

	start := utils.Midnight(timeNow())
	end, err := ComputeEndDate(subType, start)
	if err != nil {
		return response_models.ProvisionedAccountResponse{}, p.partialFailure(request.Email, "membership plan", err)
	}

	membership := &db_models.Membership{
		MemberID:         id,
		GymID:            *actor.GymID,
		Discipline:       request.Discipline,
		SubscriptionType: subType,
		MembershipStart:  start,
		MembershipEnd:    end,
		PricePaid:        ComputeFinalPrice(request.BasePrice, request.PromoPercentage),
		PromoPercentage:  request.PromoPercentage,
		CoachID:          coachID,
	}
	if err := p.membershipRepo.Insert(ctx, membership); err != nil {
		return response_models.ProvisionedAccountResponse{}, p.partialFailure(request.Email, "membership", err)
	}

	return p.grant(account, tempPassword), nil
}

// createIdentity is step one of every flow: the sign-in credential.
// Duplicate emails are rejected before the write and again on the
// unique index, so a concurrent registration cannot slip through.
func (p *ProvisioningService) createIdentity(ctx context.Context, email string) (uuid.UUID, string, error) {
	existing, err := p.identityRepo.FindByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, "", utils.ErrDatabaseError
	}
	if existing != nil {
		return uuid.Nil, "", utils.ErrDuplicateIdentity
	}

	tempPassword, err := utils.GenerateTempPassword()
	if err != nil {
		return uuid.Nil, "", utils.ErrDatabaseError
	}
	hash, err := utils.HashPassword(tempPassword)
	if err != nil {
		return uuid.Nil, "", utils.ErrDatabaseError
	}

	cred := &db_models.AuthCredential{
		Email:        email,
		PasswordHash: hash,
	}
	if err := p.identityRepo.Insert(ctx, cred); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return uuid.Nil, "", utils.ErrDuplicateIdentity
		}
		return uuid.Nil, "", utils.ErrDatabaseError
	}
	return cred.ID, tempPassword, nil
}

func (p *ProvisioningService) partialFailure(email, step string, err error) error {
	log.Printf("Provisioning of %s failed at %s, credential is orphaned: %v", email, step, err)
	return fmt.Errorf("%w: %s write failed for %s", utils.ErrUpstreamWriteFailure, step, email)
}

func (p *ProvisioningService) grant(account *db_models.Account, tempPassword string) response_models.ProvisionedAccountResponse {
	return response_models.ProvisionedAccountResponse{
		Account: toProfileResponse(account),
		Credentials: response_models.CredentialGrant{
			Email:             account.Email,
			TemporaryPassword: tempPassword,
		},
	}
}
