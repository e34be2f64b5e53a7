// Package webserver hosts the echo HTTP server and its middleware stack.
package webserver

import (
	"context"
	"fmt"
	"time"

	"github.com/halimou/patisserie/config"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type WebServer struct {
	appConfig *config.AppConfig
	root      *echo.Echo
}

func NewWebServer(appConfig *config.AppConfig) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zap.L().Info("http request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	return &WebServer{appConfig: appConfig, root: e}
}

// Echo exposes the underlying echo instance (route registration, tests).
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

// ApiGroup returns the route group under the configured api prefix.
func (s *WebServer) ApiGroup() *echo.Group {
	return s.root.Group(s.appConfig.Web.ApiPrefix)
}

func (s *WebServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.appConfig.Web.Host, s.appConfig.Web.Port)
	zap.S().Infof("starting web server on %s", addr)
	return s.root.Start(addr)
}

func (s *WebServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.root.Shutdown(ctx)
}
