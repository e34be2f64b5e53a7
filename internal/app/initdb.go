package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/halimou/patisserie/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// getDatabase opens the configured database. Failure to connect is fatal:
// the process cannot serve anything without its store.
func getDatabase(cfg config.DBConfig, workdir string) *gorm.DB {
	level := logger.Warn
	if cfg.Debug {
		level = logger.Info
	}
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(level),
	}

	var dialector gorm.Dialector
	switch cfg.Type {
	case "sqlite":
		dbfile := filepath.Join(workdir, "data", cfg.Name+".db")
		_ = os.MkdirAll(filepath.Dir(dbfile), 0o755)
		dialector = sqlite.Open(dbfile)
	default:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Passwd, cfg.Name, time.Local.String())
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		zap.S().Fatalf("failed to connect database: %v", err)
	}

	sqldb, err := db.DB()
	if err != nil {
		zap.S().Fatalf("failed to get sql db: %v", err)
	}
	sqldb.SetMaxIdleConns(10)
	sqldb.SetMaxOpenConns(50)
	sqldb.SetConnMaxLifetime(time.Hour)
	return db
}
