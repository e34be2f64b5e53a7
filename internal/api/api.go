// Package api maps the HTTP surface onto the store and the stats service.
package api

import (
	"github.com/halimou/patisserie/internal/stats"
	"github.com/halimou/patisserie/internal/store"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type API struct {
	products    store.ProductRepository
	inventories store.InventoryRepository
	employees   store.EmployeeRepository
	payrolls    store.PayrollRepository
	stats       *stats.Service
}

// New wires the repositories and the aggregator around one store handle.
func New(db *gorm.DB) *API {
	products := store.NewGormProductRepository(db)
	inventories := store.NewGormInventoryRepository(db)
	return &API{
		products:    products,
		inventories: inventories,
		employees:   store.NewGormEmployeeRepository(db),
		payrolls:    store.NewGormPayrollRepository(db),
		stats:       stats.NewService(inventories, products),
	}
}

// Register attaches every route to the given group.
func (a *API) Register(g *echo.Group) {
	g.GET("/", a.root)

	g.POST("/products", a.createProduct)
	g.GET("/products", a.listProducts)
	g.GET("/products/:id", a.getProduct)
	g.PUT("/products/:id", a.updateProduct)
	g.DELETE("/products/:id", a.deleteProduct)

	g.POST("/inventories", a.createInventory)
	g.GET("/inventories", a.listInventories)
	g.GET("/inventories/:date", a.getInventory)
	g.PUT("/inventories/:date", a.updateInventory)
	g.DELETE("/inventories/:date", a.deleteInventory)

	g.GET("/stats/summary", a.statsSummary)
	g.GET("/stats/product/:id", a.statsProduct)
	g.GET("/export", a.export)

	g.POST("/employees", a.createEmployee)
	g.GET("/employees", a.listEmployees)
	g.GET("/employees/:id", a.getEmployee)
	g.PUT("/employees/:id", a.updateEmployee)
	g.DELETE("/employees/:id", a.deleteEmployee)

	g.POST("/payrolls", a.createPayroll)
	g.GET("/payrolls", a.listPayrolls)
	g.PUT("/payrolls/:id", a.updatePayroll)
	g.DELETE("/payrolls/:id", a.deletePayroll)
}

func (a *API) root(c echo.Context) error {
	return c.JSON(200, map[string]string{
		"message": "Pâtisserie Inventory API",
		"status":  "running",
	})
}
