// Package stats computes aggregate inventory statistics. Everything here is
// derived fresh per request from the store; nothing is cached or persisted.
package stats

import (
	"context"
	"math"

	"github.com/halimou/patisserie/internal/domain"
	"github.com/halimou/patisserie/internal/store"
)

// ProductStat is the per-product rollup inside a summary. ProductName and
// Category come from the first line seen for that product in the window;
// later snapshots never overwrite them.
type ProductStat struct {
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Category      string  `json:"category"`
	TotalProduced int     `json:"total_produced"`
	TotalSold     int     `json:"total_sold"`
	TotalWasted   int     `json:"total_wasted"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgSoldPerDay float64 `json:"avg_sold_per_day"`
}

// Summary holds the grand totals for a date window plus the per-product
// rollups in first-seen order.
type Summary struct {
	TotalSales    float64       `json:"total_sales"`
	TotalWasted   int           `json:"total_wasted"`
	TotalSold     int           `json:"total_sold"`
	TotalProduced int           `json:"total_produced"`
	ProductsStats []ProductStat `json:"products_stats"`
}

// DailyStat is one day of a single product's history.
type DailyStat struct {
	Date     string  `json:"date"`
	Produced int     `json:"produced"`
	Sold     int     `json:"sold"`
	Wasted   int     `json:"wasted"`
	Revenue  float64 `json:"revenue"`
}

// ProductHistory is the day-by-day record of one product over a window.
type ProductHistory struct {
	ProductID  string      `json:"product_id"`
	DailyStats []DailyStat `json:"daily_stats"`
}

// Export is the bulk dump of inventories in a window plus the active catalog.
type Export struct {
	Inventories []domain.DailyInventory `json:"inventories"`
	Products    []domain.Product        `json:"products"`
}

// Service aggregates daily inventory records. It only ever reads.
type Service struct {
	inventories store.InventoryRepository
	products    store.ProductRepository
}

func NewService(inventories store.InventoryRepository, products store.ProductRepository) *Service {
	return &Service{inventories: inventories, products: products}
}

// Summarize computes totals over the inclusive [start, end] window. Either
// bound may be empty, leaving that side open.
func (s *Service) Summarize(ctx context.Context, start, end string) (*Summary, error) {
	inventories, err := s.inventories.FindRange(ctx, start, end, false)
	if err != nil {
		return nil, err
	}

	summary := &Summary{ProductsStats: []ProductStat{}}
	buckets := map[string]*ProductStat{}
	var order []string

	for _, inv := range inventories {
		summary.TotalSales += inv.TotalRevenue
		for _, line := range inv.Products {
			summary.TotalWasted += line.QuantityWasted
			summary.TotalSold += line.QuantitySold
			summary.TotalProduced += line.QuantityProduced

			bucket, seen := buckets[line.ProductID]
			if !seen {
				bucket = &ProductStat{
					ProductID:   line.ProductID,
					ProductName: line.ProductName,
					Category:    line.Category,
				}
				buckets[line.ProductID] = bucket
				order = append(order, line.ProductID)
			}
			bucket.TotalProduced += line.QuantityProduced
			bucket.TotalSold += line.QuantitySold
			bucket.TotalWasted += line.QuantityWasted
			// Revenue share per product uses this line's own snapshot price,
			// not the inventory's stored total.
			bucket.TotalRevenue += float64(line.QuantitySold) * line.Price
		}
	}

	// The divisor is the number of fetched inventory records, not the number
	// of days a given product appeared in.
	numDays := len(inventories)
	if numDays == 0 {
		numDays = 1
	}
	for _, productID := range order {
		bucket := buckets[productID]
		bucket.AvgSoldPerDay = round1(float64(bucket.TotalSold) / float64(numDays))
		summary.ProductsStats = append(summary.ProductsStats, *bucket)
	}
	return summary, nil
}

// History returns the day-by-day figures of one product over the window,
// in store fetch order.
func (s *Service) History(ctx context.Context, productID, start, end string) (*ProductHistory, error) {
	inventories, err := s.inventories.FindRange(ctx, start, end, false)
	if err != nil {
		return nil, err
	}

	history := &ProductHistory{ProductID: productID, DailyStats: []DailyStat{}}
	for _, inv := range inventories {
		for _, line := range inv.Products {
			if line.ProductID != productID {
				continue
			}
			history.DailyStats = append(history.DailyStats, DailyStat{
				Date:     inv.Date,
				Produced: line.QuantityProduced,
				Sold:     line.QuantitySold,
				Wasted:   line.QuantityWasted,
				Revenue:  float64(line.QuantitySold) * line.Price,
			})
		}
	}
	return history, nil
}

// ExportRange dumps the inventories of a window (date descending) together
// with all non-archived products. Archived products are excluded regardless
// of the window; products carry no date.
func (s *Service) ExportRange(ctx context.Context, start, end string) (*Export, error) {
	inventories, err := s.inventories.FindRange(ctx, start, end, true)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx, false)
	if err != nil {
		return nil, err
	}
	if inventories == nil {
		inventories = []domain.DailyInventory{}
	}
	if products == nil {
		products = []domain.Product{}
	}
	return &Export{Inventories: inventories, Products: products}, nil
}

// round1 rounds to one decimal, half to even, so exact .x5 midpoints land on
// the even digit (0.25 -> 0.2, 0.35 -> 0.4).
func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
