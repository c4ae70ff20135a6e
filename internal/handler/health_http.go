package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/domain"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/port"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

type ReadyResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

type PreflightResponse struct {
	Passed bool           `json:"passed"`
	Error  string         `json:"error,omitempty"`
	Report *domain.Report `json:"report"`
}

// PreflightHTTPHandler serves liveness and readiness from the latest preflight report.
type PreflightHTTPHandler struct {
	preflight port.PreflightService
	mu        sync.RWMutex
	report    *domain.Report
}

func NewPreflightHTTPHandler(preflight port.PreflightService, initial *domain.Report) *PreflightHTTPHandler {
	return &PreflightHTTPHandler{
		preflight: preflight,
		report:    initial,
	}
}

func (h *PreflightHTTPHandler) Health() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{
			Status:    "ok",
			Service:   "fraud-detection-worker",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func (h *PreflightHTTPHandler) Ready() echo.HandlerFunc {
	return func(c echo.Context) error {
		h.mu.RLock()
		report := h.report
		h.mu.RUnlock()

		response := ReadyResponse{
			Status:    "not ready",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}
		if report == nil {
			return c.JSON(http.StatusServiceUnavailable, response)
		}

		response.Checks = report.Checks()
		if !report.Passed() {
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		response.Status = "ready"
		return c.JSON(http.StatusOK, response)
	}
}

// Rerun executes the checks again and replaces the report used by Ready.
func (h *PreflightHTTPHandler) Rerun() echo.HandlerFunc {
	return func(c echo.Context) error {
		report, err := h.preflight.Run(c.Request().Context())
		if report != nil {
			h.mu.Lock()
			h.report = report
			h.mu.Unlock()
		}

		response := PreflightResponse{Passed: err == nil, Report: report}
		if err != nil {
			log.WithError(err).Warn("Preflight rerun failed")
			response.Error = err.Error()
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.JSON(http.StatusOK, response)
	}
}
