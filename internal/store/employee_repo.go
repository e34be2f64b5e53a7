package store

import (
	"context"
	"errors"
	"strconv"

	"github.com/halimou/patisserie/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository handles employee persistence
type EmployeeRepository interface {
	// Create inserts a new employee
	Create(ctx context.Context, e *domain.Employee) error

	// GetByID retrieves an employee by id
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)

	// Exists reports whether an employee record resolves for id
	Exists(ctx context.Context, id int64) (bool, error)

	// List retrieves employees; inactive ones only when asked for. Records
	// written before the is_active flag existed have it NULL and count as
	// active.
	List(ctx context.Context, includeInactive bool) ([]domain.Employee, error)

	// Update applies a partial column update to one employee
	Update(ctx context.Context, id int64, updates map[string]interface{}) error

	// Delete removes an employee permanently
	Delete(ctx context.Context, id int64) error
}

// GormEmployeeRepository is the GORM implementation of EmployeeRepository
type GormEmployeeRepository struct {
	db *gorm.DB
}

func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

func (r *GormEmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *GormEmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var e domain.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Entity: "employee", Key: strconv.FormatInt(id, 10)}
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GormEmployeeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *GormEmployeeRepository) List(ctx context.Context, includeInactive bool) ([]domain.Employee, error) {
	query := r.db.WithContext(ctx).Model(&domain.Employee{})
	if !includeInactive {
		query = query.Where("is_active IS NULL OR is_active = ?", true)
	}
	var rows []domain.Employee
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormEmployeeRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	var e domain.Employee
	err := r.db.WithContext(ctx).Select("id").Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.NotFoundError{Entity: "employee", Key: strconv.FormatInt(id, 10)}
	}
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&domain.Employee{}).Where("id = ?", id).Updates(updates).Error
}

func (r *GormEmployeeRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &domain.NotFoundError{Entity: "employee", Key: strconv.FormatInt(id, 10)}
	}
	return nil
}
