package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alphagym/internal/models/db_models"
)

// IdentityRepository is the local identity provider: it owns the
// sign-in credentials, nothing else. Provisioning writes here first,
// before any profile row exists.
type IdentityRepository interface {
	Insert(ctx context.Context, cred *db_models.AuthCredential) error
	FindByEmail(ctx context.Context, email string) (*db_models.AuthCredential, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

type identityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) IdentityRepository {
	return &identityRepository{db: db}
}

func (r *identityRepository) Insert(ctx context.Context, cred *db_models.AuthCredential) error {
	return r.db.WithContext(ctx).Create(cred).Error
}

func (r *identityRepository) FindByEmail(ctx context.Context, email string) (*db_models.AuthCredential, error) {
	var cred db_models.AuthCredential
	err := r.db.WithContext(ctx).First(&cred, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cred, nil
}

func (r *identityRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.AuthCredential{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}
