package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/halimou/patisserie/config"
	"github.com/halimou/patisserie/internal/api"
	"github.com/halimou/patisserie/internal/app"
	"github.com/halimou/patisserie/internal/webserver"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	cfile  = flag.String("c", "patisserie.yml", "config file")
	initdb = flag.Bool("initdb", false, "drop and recreate all tables, then exit")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*cfile)
	if err != nil {
		panic(err)
	}

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		application.InitDb()
		zap.S().Info("database initialized")
		return
	}

	server := webserver.NewWebServer(cfg)
	api.New(application.DB()).Register(server.ApiGroup())

	go func() {
		if err := server.Start(); err != nil {
			zap.S().Errorf("web server stopped: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	zap.S().Info("shutting down")
	if err := server.Shutdown(); err != nil {
		zap.S().Errorf("web server shutdown: %v", err)
	}
}
