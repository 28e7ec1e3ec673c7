package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alphagym/internal/models/db_models"
)

// CoachRow carries a coach profile together with its client count and
// gym detail, for the roster and find-a-coach views.
type CoachRow struct {
	db_models.Account
	ClientCount int64  `gorm:"column:client_count"`
	GymName     string `gorm:"column:gym_name"`
	GymLocation string `gorm:"column:gym_location"`
}

// OwnerRow backs the admin owners list.
type OwnerRow struct {
	db_models.Account
	GymName     string `gorm:"column:gym_name"`
	GymLocation string `gorm:"column:gym_location"`
}

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	Update(ctx context.Context, account *db_models.Account) error
	SetGym(ctx context.Context, id uuid.UUID, gymID uuid.UUID) error
	CompleteFirstLogin(ctx context.Context, id uuid.UUID) error

	ListOwners(ctx context.Context) ([]OwnerRow, error)
	ListCoachesByGym(ctx context.Context, gymID uuid.UUID) ([]CoachRow, error)
	ListAllCoaches(ctx context.Context) ([]CoachRow, error)
	DeleteCoach(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	CountByRole(ctx context.Context, role db_models.Role) (int64, error)
	CountByRoleAndGym(ctx context.Context, role db_models.Role, gymID uuid.UUID) (int64, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := r.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) Update(ctx context.Context, account *db_models.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *accountRepository) SetGym(ctx context.Context, id uuid.UUID, gymID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("gym_id", gymID).Error
}

// CompleteFirstLogin flips the forced-reset flag and discards the
// retained temporary password in one statement.
func (r *accountRepository) CompleteFirstLogin(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"first_login":   false,
			"temp_password": nil,
		}).Error
}

func (r *accountRepository) ListOwners(ctx context.Context) ([]OwnerRow, error) {
	var rows []OwnerRow
	err := r.db.WithContext(ctx).
		Table("accounts a").
		Select("a.*, g.name AS gym_name, g.location AS gym_location").
		Joins("LEFT JOIN gyms g ON g.owner_id = a.id").
		Where("a.role = ? AND a.deleted_at IS NULL", db_models.RoleOwner).
		Order("a.created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *accountRepository) ListCoachesByGym(ctx context.Context, gymID uuid.UUID) ([]CoachRow, error) {
	var rows []CoachRow
	err := r.db.WithContext(ctx).
		Table("accounts a").
		Select(`a.*,
			(SELECT COUNT(*) FROM memberships m WHERE m.coach_id = a.id AND m.deleted_at IS NULL) AS client_count`).
		Where("a.role = ? AND a.gym_id = ? AND a.deleted_at IS NULL", db_models.RoleCoach, gymID).
		Order("a.created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *accountRepository) ListAllCoaches(ctx context.Context) ([]CoachRow, error) {
	var rows []CoachRow
	err := r.db.WithContext(ctx).
		Table("accounts a").
		Select(`a.*,
			g.name AS gym_name,
			g.location AS gym_location,
			(SELECT COUNT(*) FROM memberships m WHERE m.coach_id = a.id AND m.deleted_at IS NULL) AS client_count`).
		Joins("LEFT JOIN gyms g ON g.id = a.gym_id").
		Where("a.role = ? AND a.deleted_at IS NULL", db_models.RoleCoach).
		Order("client_count DESC").
		Find(&rows).Error
	return rows, err
}

// DeleteCoach runs inside the caller's transaction; members must have
// been detached first.
func (r *accountRepository) DeleteCoach(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return tx.WithContext(ctx).
		Where("id = ? AND role = ?", id, db_models.RoleCoach).
		Delete(&db_models.Account{}).Error
}

func (r *accountRepository) CountByRole(ctx context.Context, role db_models.Role) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("role = ?", role).
		Count(&n).Error
	return n, err
}

func (r *accountRepository) CountByRoleAndGym(ctx context.Context, role db_models.Role, gymID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("role = ? AND gym_id = ?", role, gymID).
		Count(&n).Error
	return n, err
}
