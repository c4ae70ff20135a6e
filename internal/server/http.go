package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/handler"
)

type HTTPServer struct {
	echo *echo.Echo
}

func NewHTTPServer(preflightHandler *handler.PreflightHTTPHandler) *HTTPServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/health", preflightHandler.Health())
	e.GET("/ready", preflightHandler.Ready())
	e.POST("/preflight", preflightHandler.Rerun())

	return &HTTPServer{echo: e}
}

func (s *HTTPServer) Handler() http.Handler {
	return s.echo
}

// Start blocks until the server stops. A graceful shutdown is not an error.
func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	if err := s.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
