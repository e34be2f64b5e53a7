package domain

import (
	"strings"
	"time"
)

// Product categories are an open enum; these are the values the catalog uses.
const (
	CategoryGateau       = "gâteau"
	CategoryViennoiserie = "viennoiserie"
	CategoryAutre        = "autre"
)

// Product is a catalog item. Archival is a soft delete: archived products are
// hidden from default listings but stay referenceable from historical
// inventory lines.
type Product struct {
	ID          int64     `json:"id,string" form:"id"`
	Name        string    `gorm:"index" json:"name" form:"name"`
	Category    string    `gorm:"size:64" json:"category" form:"category"`
	Price       float64   `json:"price" form:"price"`
	IsRecurring bool      `json:"is_recurring" form:"is_recurring"`
	IsArchived  bool      `gorm:"index" json:"is_archived" form:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}

// ProductCreate is the creation payload. is_archived is not accepted here;
// every product starts non-archived.
type ProductCreate struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	IsRecurring *bool   `json:"is_recurring"`
}

func (p *ProductCreate) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if strings.TrimSpace(p.Category) == "" {
		return &ValidationError{Field: "category", Reason: "is required"}
	}
	if p.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}

// Recurring returns the requested flag, defaulting to true.
func (p *ProductCreate) Recurring() bool {
	if p.IsRecurring == nil {
		return true
	}
	return *p.IsRecurring
}

// ProductPatch is a sparse update payload; nil fields are left unchanged.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	IsRecurring *bool    `json:"is_recurring"`
	IsArchived  *bool    `json:"is_archived"`
}

// Updates converts the patch into a column update map. Supplying no
// recognized field at all is an error.
func (p *ProductPatch) Updates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Category != nil {
		updates["category"] = *p.Category
	}
	if p.Price != nil {
		updates["price"] = *p.Price
	}
	if p.IsRecurring != nil {
		updates["is_recurring"] = *p.IsRecurring
	}
	if p.IsArchived != nil {
		updates["is_archived"] = *p.IsArchived
	}
	if len(updates) == 0 {
		return nil, &NoFieldsError{}
	}
	return updates, nil
}
