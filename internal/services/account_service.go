package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"alphagym/internal/models/db_models"
	"alphagym/internal/models/request_models"
	"alphagym/internal/models/response_models"
	"alphagym/internal/repositories"
	"alphagym/pkg/memcache"
	"alphagym/pkg/utils"
)

const minPasswordLength = 8

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.LoginResponse, error)
	CompletePasswordReset(ctx context.Context, accountID uuid.UUID, request request_models.SetPasswordRequest) error
	Logout(token string, expiresAt time.Time)
	GetProfile(ctx context.Context, accountID uuid.UUID) (response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (response_models.ProfileResponse, error)
}

type AccountService struct {
	identityRepo repositories.IdentityRepository
	accountRepo  repositories.AccountRepository
	revoked      memcache.RevokedTokenStore
}

func NewAccountService(
	identityRepo repositories.IdentityRepository,
	accountRepo repositories.AccountRepository,
	revoked memcache.RevokedTokenStore,
) AccountServiceInterface {
	return &AccountService{
		identityRepo: identityRepo,
		accountRepo:  accountRepo,
		revoked:      revoked,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.LoginResponse, error) {
	cred, err := a.identityRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}
	if cred == nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(cred.PasswordHash, request.Password); err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		// Orphaned credential from a partial provisioning run: there is
		// a sign-in identity but no profile to act as.
		log.Printf("Login rejected for orphaned identity %s", request.Email)
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, string(account.Role))
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	return response_models.LoginResponse{
		Token:      token,
		FirstLogin: account.FirstLogin,
	}, nil
}

// CompletePasswordReset is the one-way PendingFirstLogin -> Active
// transition. Validation happens before any write; on success the
// credential is replaced, the forced-reset flag drops and the retained
// temporary password is discarded.
func (a *AccountService) CompletePasswordReset(ctx context.Context, accountID uuid.UUID, request request_models.SetPasswordRequest) error {
	if len(request.NewPassword) < minPasswordLength {
		return utils.ErrWeakPassword
	}
	if request.NewPassword != request.Confirm {
		return utils.ErrPasswordMismatch
	}

	hash, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.identityRepo.UpdatePasswordHash(ctx, accountID, hash); err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.accountRepo.CompleteFirstLogin(ctx, accountID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Logout(token string, expiresAt time.Time) {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}
	a.revoked.Revoke(token, ttl)
}

func (a *AccountService) GetProfile(ctx context.Context, accountID uuid.UUID) (response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return response_models.ProfileResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.ProfileResponse{}, utils.ErrNotFound
	}
	return toProfileResponse(account), nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return response_models.ProfileResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.ProfileResponse{}, utils.ErrNotFound
	}

	if request.FullName != nil {
		account.FullName = *request.FullName
	}
	if request.Phone != nil {
		account.Phone = *request.Phone
	}
	if request.Bio != nil {
		account.Bio = *request.Bio
	}
	if request.AvatarURL != nil {
		account.AvatarURL = *request.AvatarURL
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return response_models.ProfileResponse{}, utils.ErrDatabaseError
	}
	return toProfileResponse(account), nil
}

func toProfileResponse(account *db_models.Account) response_models.ProfileResponse {
	return response_models.ProfileResponse{
		ID:        account.ID,
		Email:     account.Email,
		FullName:  account.FullName,
		Phone:     account.Phone,
		Bio:       account.Bio,
		AvatarURL: account.AvatarURL,
		Role:      string(account.Role),
		GymID:     account.GymID,
	}
}
