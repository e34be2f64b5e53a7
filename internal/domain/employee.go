package domain

import (
	"strings"
	"time"
)

// Employee is a staff record. Deactivation is a soft flag; records written
// before the flag existed have it NULL and are treated as active.
type Employee struct {
	ID         int64     `json:"id,string" form:"id"`
	FullName   string    `gorm:"index" json:"full_name" form:"full_name"`
	Role       string    `json:"role" form:"role"`
	BaseSalary float64   `json:"base_salary" form:"base_salary"`
	IsActive   *bool     `gorm:"index" json:"is_active" form:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName Specify table name
func (Employee) TableName() string {
	return "employees"
}

// Active reports whether the employee should be listed by default.
func (e *Employee) Active() bool {
	return e.IsActive == nil || *e.IsActive
}

// EmployeeCreate is the creation payload. is_active is forced to true.
type EmployeeCreate struct {
	FullName   string  `json:"full_name"`
	Role       string  `json:"role"`
	BaseSalary float64 `json:"base_salary"`
}

func (e *EmployeeCreate) Validate() error {
	if strings.TrimSpace(e.FullName) == "" {
		return &ValidationError{Field: "full_name", Reason: "is required"}
	}
	if e.BaseSalary < 0 {
		return &ValidationError{Field: "base_salary", Reason: "must not be negative"}
	}
	return nil
}

// EmployeePatch is a sparse update payload.
type EmployeePatch struct {
	FullName   *string  `json:"full_name"`
	Role       *string  `json:"role"`
	BaseSalary *float64 `json:"base_salary"`
	IsActive   *bool    `json:"is_active"`
}

func (p *EmployeePatch) Updates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if p.FullName != nil {
		updates["full_name"] = *p.FullName
	}
	if p.Role != nil {
		updates["role"] = *p.Role
	}
	if p.BaseSalary != nil {
		updates["base_salary"] = *p.BaseSalary
	}
	if p.IsActive != nil {
		updates["is_active"] = *p.IsActive
	}
	if len(updates) == 0 {
		return nil, &NoFieldsError{}
	}
	return updates, nil
}
