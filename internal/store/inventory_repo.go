package store

import (
	"context"
	"errors"

	"github.com/halimou/patisserie/internal/domain"
	"gorm.io/gorm"
)

// InventoryRepository handles daily inventory persistence. Inventories are
// addressed by their calendar date ("YYYY-MM-DD"); lexicographic ordering of
// that form is chronological, so range filters are plain string comparisons.
type InventoryRepository interface {
	// Create inserts a new inventory record
	Create(ctx context.Context, inv *domain.DailyInventory) error

	// GetByDate retrieves the inventory for one date
	GetByDate(ctx context.Context, date string) (*domain.DailyInventory, error)

	// ExistsByDate reports whether an inventory already exists for a date
	ExistsByDate(ctx context.Context, date string) (bool, error)

	// ListRecent retrieves the most recent inventories, date descending
	ListRecent(ctx context.Context, limit int) ([]domain.DailyInventory, error)

	// FindRange retrieves inventories inside the inclusive [start, end]
	// window; an empty bound leaves that side open
	FindRange(ctx context.Context, start, end string, dateDesc bool) ([]domain.DailyInventory, error)

	// UpdateByDate applies a partial column update to one inventory
	UpdateByDate(ctx context.Context, date string, updates map[string]interface{}) error

	// DeleteByDate removes the inventory for one date
	DeleteByDate(ctx context.Context, date string) error
}

// GormInventoryRepository is the GORM implementation of InventoryRepository
type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) Create(ctx context.Context, inv *domain.DailyInventory) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *GormInventoryRepository) GetByDate(ctx context.Context, date string) (*domain.DailyInventory, error) {
	var inv domain.DailyInventory
	err := r.db.WithContext(ctx).Where("date = ?", date).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Entity: "inventory", Key: date}
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *GormInventoryRepository) ExistsByDate(ctx context.Context, date string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.DailyInventory{}).
		Where("date = ?", date).
		Count(&count).Error
	return count > 0, err
}

func (r *GormInventoryRepository) ListRecent(ctx context.Context, limit int) ([]domain.DailyInventory, error) {
	var rows []domain.DailyInventory
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormInventoryRepository) FindRange(ctx context.Context, start, end string, dateDesc bool) ([]domain.DailyInventory, error) {
	query := r.db.WithContext(ctx).Model(&domain.DailyInventory{})
	if start != "" {
		query = query.Where("date >= ?", start)
	}
	if end != "" {
		query = query.Where("date <= ?", end)
	}
	if dateDesc {
		query = query.Order("date DESC")
	}
	var rows []domain.DailyInventory
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormInventoryRepository) UpdateByDate(ctx context.Context, date string, updates map[string]interface{}) error {
	var inv domain.DailyInventory
	err := r.db.WithContext(ctx).Select("id").Where("date = ?", date).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.NotFoundError{Entity: "inventory", Key: date}
	}
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&domain.DailyInventory{}).Where("date = ?", date).Updates(updates).Error
}

func (r *GormInventoryRepository) DeleteByDate(ctx context.Context, date string) error {
	res := r.db.WithContext(ctx).Where("date = ?", date).Delete(&domain.DailyInventory{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &domain.NotFoundError{Entity: "inventory", Key: date}
	}
	return nil
}
