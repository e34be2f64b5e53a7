package app

import (
	"context"
	"math"
	"time"

	"github.com/halimou/patisserie/internal/domain"
	"github.com/halimou/patisserie/internal/store"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// revenueTolerance is the float drift considered equal when re-deriving a
// stored total_revenue.
const revenueTolerance = 0.01

func (a *Application) initJobs() {
	spec := a.appConfig.Jobs.RevenueAudit
	if spec == "" {
		return
	}
	a.sched = cron.New()
	if _, err := a.sched.AddFunc(spec, a.runRevenueAudit); err != nil {
		zap.L().Error("failed to register revenue audit job", zap.Error(err))
		return
	}
	a.sched.Start()
	zap.L().Info("revenue audit job scheduled", zap.String("spec", spec))
}

// runRevenueAudit re-derives total_revenue for recent inventories and logs
// any drift from the stored value. It is read-only: aggregates are never
// written back.
func (a *Application) runRevenueAudit() {
	days := a.appConfig.Jobs.RevenueAuditDays
	if days <= 0 {
		days = 31
	}
	start := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	repo := store.NewGormInventoryRepository(a.gormDB)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	inventories, err := repo.FindRange(ctx, start, "", false)
	if err != nil {
		zap.L().Error("revenue audit fetch failed", zap.Error(err))
		return
	}

	var drifted int
	for _, inv := range inventories {
		derived := domain.LinesRevenue(inv.Products)
		if math.Abs(derived-inv.TotalRevenue) > revenueTolerance {
			drifted++
			zap.L().Warn("stored revenue drifts from derived value",
				zap.String("date", inv.Date),
				zap.Float64("stored", inv.TotalRevenue),
				zap.Float64("derived", derived))
		}
	}
	zap.L().Info("revenue audit finished",
		zap.Int("checked", len(inventories)),
		zap.Int("drifted", drifted))
}
