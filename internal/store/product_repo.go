// Package store is the entity-store adapter: per-entity repository
// interfaces with GORM implementations. Every operation is a single bounded
// store round-trip; connectivity failures propagate to the caller.
package store

import (
	"context"
	"errors"
	"strconv"

	"github.com/halimou/patisserie/internal/domain"
	"gorm.io/gorm"
)

// ProductRepository handles catalog product persistence
type ProductRepository interface {
	// Create inserts a new product
	Create(ctx context.Context, p *domain.Product) error

	// GetByID retrieves a product by id
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// List retrieves products; archived ones only when asked for
	List(ctx context.Context, includeArchived bool) ([]domain.Product, error)

	// Update applies a partial column update to one product
	Update(ctx context.Context, id int64, updates map[string]interface{}) error

	// Delete removes a product permanently
	Delete(ctx context.Context, id int64) error
}

// GormProductRepository is the GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *GormProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Entity: "product", Key: strconv.FormatInt(id, 10)}
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepository) List(ctx context.Context, includeArchived bool) ([]domain.Product, error) {
	query := r.db.WithContext(ctx).Model(&domain.Product{})
	if !includeArchived {
		query = query.Where("is_archived = ?", false)
	}
	var rows []domain.Product
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormProductRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	var p domain.Product
	err := r.db.WithContext(ctx).Select("id").Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.NotFoundError{Entity: "product", Key: strconv.FormatInt(id, 10)}
	}
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Updates(updates).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &domain.NotFoundError{Entity: "product", Key: strconv.FormatInt(id, 10)}
	}
	return nil
}
