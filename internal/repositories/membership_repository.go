package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alphagym/internal/models/db_models"
)

type MembershipRepository interface {
	Insert(ctx context.Context, m *db_models.Membership) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Membership, error)
	FindByMember(ctx context.Context, memberID uuid.UUID) (*db_models.Membership, error)
	ListByGym(ctx context.Context, gymID uuid.UUID) ([]db_models.Membership, error)
	ListByCoach(ctx context.Context, coachID uuid.UUID) ([]db_models.Membership, error)
	Update(ctx context.Context, m *db_models.Membership) error
	Delete(ctx context.Context, id uuid.UUID) error
	DetachCoach(ctx context.Context, tx *gorm.DB, coachID uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type membershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Insert(ctx context.Context, m *db_models.Membership) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *membershipRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Membership, error) {
	var m db_models.Membership
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Coach").
		Preload("Gym").
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *membershipRepository) FindByMember(ctx context.Context, memberID uuid.UUID) (*db_models.Membership, error) {
	var m db_models.Membership
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Coach").
		Preload("Gym").
		First(&m, "member_id = ?", memberID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *membershipRepository) ListByGym(ctx context.Context, gymID uuid.UUID) ([]db_models.Membership, error) {
	var ms []db_models.Membership
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Coach").
		Where("gym_id = ?", gymID).
		Order("created_at DESC").
		Find(&ms).Error
	return ms, err
}

func (r *membershipRepository) ListByCoach(ctx context.Context, coachID uuid.UUID) ([]db_models.Membership, error) {
	var ms []db_models.Membership
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("coach_id = ?", coachID).
		Order("created_at DESC").
		Find(&ms).Error
	return ms, err
}

func (r *membershipRepository) Update(ctx context.Context, m *db_models.Membership) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *membershipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.Membership{}).Error
}

// DetachCoach nulls the coach reference on every membership assigned to
// the coach, inside the caller's transaction. Used before coach deletion.
func (r *membershipRepository) DetachCoach(ctx context.Context, tx *gorm.DB, coachID uuid.UUID) error {
	return tx.WithContext(ctx).
		Model(&db_models.Membership{}).
		Where("coach_id = ?", coachID).
		Update("coach_id", nil).Error
}

func (r *membershipRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Membership{}).Count(&n).Error
	return n, err
}
