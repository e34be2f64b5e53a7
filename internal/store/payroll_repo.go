package store

import (
	"context"
	"errors"
	"strconv"

	"github.com/halimou/patisserie/internal/domain"
	"gorm.io/gorm"
)

// PayrollRepository handles payroll entry persistence
type PayrollRepository interface {
	// Create inserts a new payroll entry
	Create(ctx context.Context, p *domain.PayrollEntry) error

	// GetByID retrieves a payroll entry by id
	GetByID(ctx context.Context, id int64) (*domain.PayrollEntry, error)

	// List retrieves payroll entries, optionally filtered by employee
	// (employeeID > 0) and/or period (non-empty)
	List(ctx context.Context, employeeID int64, period string) ([]domain.PayrollEntry, error)

	// Update applies a partial column update to one payroll entry
	Update(ctx context.Context, id int64, updates map[string]interface{}) error

	// Delete removes a payroll entry
	Delete(ctx context.Context, id int64) error
}

// GormPayrollRepository is the GORM implementation of PayrollRepository
type GormPayrollRepository struct {
	db *gorm.DB
}

func NewGormPayrollRepository(db *gorm.DB) *GormPayrollRepository {
	return &GormPayrollRepository{db: db}
}

func (r *GormPayrollRepository) Create(ctx context.Context, p *domain.PayrollEntry) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *GormPayrollRepository) GetByID(ctx context.Context, id int64) (*domain.PayrollEntry, error) {
	var p domain.PayrollEntry
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Entity: "payroll", Key: strconv.FormatInt(id, 10)}
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormPayrollRepository) List(ctx context.Context, employeeID int64, period string) ([]domain.PayrollEntry, error) {
	query := r.db.WithContext(ctx).Model(&domain.PayrollEntry{})
	if employeeID > 0 {
		query = query.Where("employee_id = ?", employeeID)
	}
	if period != "" {
		query = query.Where("period = ?", period)
	}
	var rows []domain.PayrollEntry
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormPayrollRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	var p domain.PayrollEntry
	err := r.db.WithContext(ctx).Select("id").Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.NotFoundError{Entity: "payroll", Key: strconv.FormatInt(id, 10)}
	}
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&domain.PayrollEntry{}).Where("id = ?", id).Updates(updates).Error
}

func (r *GormPayrollRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.PayrollEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &domain.NotFoundError{Entity: "payroll", Key: strconv.FormatInt(id, 10)}
	}
	return nil
}
