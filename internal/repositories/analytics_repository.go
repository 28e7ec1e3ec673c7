package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"alphagym/internal/models/db_models"
)

// GymRollupRow is one line of the admin per-gym breakdown. The active
// count uses the same date boundary the status classifier applies: an
// end date before today is expired, anything else counts as active
// here (the badge-level expiring split happens in Go).
type GymRollupRow struct {
	ID           string `gorm:"column:id"`
	Name         string `gorm:"column:name"`
	Location     string `gorm:"column:location"`
	OwnerName    string `gorm:"column:owner_name"`
	CoachesCount int64  `gorm:"column:coaches_count"`
	MembersCount int64  `gorm:"column:members_count"`
	ActiveCount  int64  `gorm:"column:active_count"`
}

type AnalyticsRepository interface {
	CountMembershipsEndingOnOrAfter(ctx context.Context, day time.Time) (int64, error)
	CountMembershipsEndingBefore(ctx context.Context, day time.Time) (int64, error)
	GymRollups(ctx context.Context, today time.Time) ([]GymRollupRow, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountMembershipsEndingOnOrAfter(ctx context.Context, day time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Membership{}).
		Where("membership_end >= ?", day).
		Count(&n).Error
	return n, err
}

func (r *analyticsRepository) CountMembershipsEndingBefore(ctx context.Context, day time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Membership{}).
		Where("membership_end < ?", day).
		Count(&n).Error
	return n, err
}

func (r *analyticsRepository) GymRollups(ctx context.Context, today time.Time) ([]GymRollupRow, error) {
	var rows []GymRollupRow
	err := r.db.WithContext(ctx).
		Table("gyms g").
		Select(`g.id, g.name, g.location,
			o.full_name AS owner_name,
			(SELECT COUNT(*) FROM accounts c WHERE c.gym_id = g.id AND c.role = 'coach' AND c.deleted_at IS NULL) AS coaches_count,
			(SELECT COUNT(*) FROM memberships m WHERE m.gym_id = g.id AND m.deleted_at IS NULL) AS members_count,
			(SELECT COUNT(*) FROM memberships m WHERE m.gym_id = g.id AND m.membership_end >= ? AND m.deleted_at IS NULL) AS active_count`,
			today).
		Joins("LEFT JOIN accounts o ON o.id = g.owner_id").
		Where("g.deleted_at IS NULL").
		Order("g.created_at ASC").
		Find(&rows).Error
	return rows, err
}
