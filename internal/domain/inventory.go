package domain

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// InventoryLine is one product row embedded in a daily inventory. Name,
// category and price are snapshots taken at write time: later edits to the
// product do not alter historical inventories.
type InventoryLine struct {
	ProductID         string  `json:"product_id"`
	ProductName       string  `json:"product_name"`
	Category          string  `json:"category"`
	QuantityProduced  int     `json:"quantity_produced"`
	QuantitySold      int     `json:"quantity_sold"`
	QuantityWasted    int     `json:"quantity_wasted"`
	QuantityRemaining int     `json:"quantity_remaining"`
	Price             float64 `json:"price"`
}

// DailyInventory is the production/sales record for one calendar date.
// There is at most one record per distinct date value.
type DailyInventory struct {
	ID           int64                              `json:"id,string"`
	Date         string                             `gorm:"size:10;index:idx_inventories_date,sort:desc;index:idx_inventories_date_revenue,sort:desc,priority:1" json:"date"`
	Products     datatypes.JSONSlice[InventoryLine] `json:"products"`
	TotalRevenue float64                            `gorm:"index:idx_inventories_date_revenue,sort:desc,priority:2" json:"total_revenue"`
	CreatedAt    time.Time                          `json:"created_at"`
	UpdatedAt    time.Time                          `json:"updated_at"`
}

// TableName Specify table name
func (DailyInventory) TableName() string {
	return "inventories"
}

// LinesRevenue derives revenue from inventory lines as quantity sold times
// the snapshot price of each line.
func LinesRevenue(lines []InventoryLine) float64 {
	var total float64
	for _, l := range lines {
		total += float64(l.QuantitySold) * l.Price
	}
	return total
}

// DailyInventoryCreate is the creation payload.
type DailyInventoryCreate struct {
	Date     string          `json:"date"`
	Products []InventoryLine `json:"products"`
}

func (i *DailyInventoryCreate) Validate() error {
	if strings.TrimSpace(i.Date) == "" {
		return &ValidationError{Field: "date", Reason: "is required"}
	}
	if len(i.Products) == 0 {
		return &EmptyProductsError{}
	}
	for idx, line := range i.Products {
		if strings.TrimSpace(line.ProductID) == "" {
			return &InvalidLineError{Index: idx, Reason: "product_id is required"}
		}
		if line.Price < 0 {
			return &InvalidLineError{Index: idx, Reason: "price must not be negative"}
		}
	}
	return nil
}

// DailyInventoryUpdate replaces the whole products list. Unlike create it
// accepts an explicit empty list: an update may legitimately clear a day out.
// Products is a pointer so a body that omits the field entirely binds to nil
// and can be told apart from `"products": []`.
type DailyInventoryUpdate struct {
	Products *[]InventoryLine `json:"products"`
}
