package domain

import (
	"strings"
	"time"
)

// PayrollEntry records advances and payments for one employee over one
// "YYYY-MM" period. It is a historical record: the referenced employee is
// only checked to exist at creation time, and multiple entries per period
// are permitted.
type PayrollEntry struct {
	ID         int64     `json:"id,string" form:"id"`
	EmployeeID int64     `gorm:"index" json:"employee_id,string" form:"employee_id"`
	Period     string    `gorm:"size:7;index" json:"period" form:"period"`
	Advances   float64   `json:"advances" form:"advances"`
	Paid       float64   `json:"paid" form:"paid"`
	Notes      string    `json:"notes" form:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName Specify table name
func (PayrollEntry) TableName() string {
	return "payrolls"
}

// PayrollCreate is the creation payload. employee_id arrives in its opaque
// string form.
type PayrollCreate struct {
	EmployeeID string  `json:"employee_id"`
	Period     string  `json:"period"`
	Advances   float64 `json:"advances"`
	Paid       float64 `json:"paid"`
	Notes      string  `json:"notes"`
}

func (p *PayrollCreate) Validate() error {
	if strings.TrimSpace(p.EmployeeID) == "" {
		return &ValidationError{Field: "employee_id", Reason: "is required"}
	}
	if strings.TrimSpace(p.Period) == "" {
		return &ValidationError{Field: "period", Reason: "is required"}
	}
	return nil
}

// PayrollPatch is a sparse update payload. The employee reference itself is
// not editable; the entry stays attached to whoever it was written for.
type PayrollPatch struct {
	Period   *string  `json:"period"`
	Advances *float64 `json:"advances"`
	Paid     *float64 `json:"paid"`
	Notes    *string  `json:"notes"`
}

func (p *PayrollPatch) Updates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if p.Period != nil {
		updates["period"] = *p.Period
	}
	if p.Advances != nil {
		updates["advances"] = *p.Advances
	}
	if p.Paid != nil {
		updates["paid"] = *p.Paid
	}
	if p.Notes != nil {
		updates["notes"] = *p.Notes
	}
	if len(updates) == 0 {
		return nil, &NoFieldsError{}
	}
	return updates, nil
}
