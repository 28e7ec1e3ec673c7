package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alphagym/internal/models/db_models"
)

type GymRepository interface {
	Insert(ctx context.Context, gym *db_models.Gym) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Gym, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*db_models.Gym, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]db_models.Gym, error)
}

type gymRepository struct {
	db *gorm.DB
}

func NewGymRepository(db *gorm.DB) GymRepository {
	return &gymRepository{db: db}
}

func (r *gymRepository) Insert(ctx context.Context, gym *db_models.Gym) error {
	return r.db.WithContext(ctx).Create(gym).Error
}

func (r *gymRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Gym, error) {
	var gym db_models.Gym
	err := r.db.WithContext(ctx).First(&gym, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gym, nil
}

func (r *gymRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*db_models.Gym, error) {
	var gym db_models.Gym
	err := r.db.WithContext(ctx).First(&gym, "owner_id = ?", ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gym, nil
}

func (r *gymRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Gym{}).Count(&n).Error
	return n, err
}

func (r *gymRepository) List(ctx context.Context) ([]db_models.Gym, error) {
	var gyms []db_models.Gym
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&gyms).Error
	return gyms, err
}
