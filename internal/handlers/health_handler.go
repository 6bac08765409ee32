package handlers

import (
	"net/http"
	"time"

	"banking-reports/internal/dto"
	"banking-reports/internal/errors"
	"banking-reports/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db      *gorm.DB
	breaker services.CircuitBreakerInterface
}

// NewHealthCheckHandler creates a new health check handler. breaker may be nil.
func NewHealthCheckHandler(db *gorm.DB, breaker services.CircuitBreakerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, breaker: breaker}
}

// HealthCheck reports database connectivity and the ledger circuit state.
// An open circuit degrades the status but the process stays healthy.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is healthy or degraded"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Database connection failed"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	response := dto.HealthResponse{
		Status:        "healthy",
		Time:          time.Now().UTC().Format(time.RFC3339),
		LedgerCircuit: services.StateClosed.String(),
	}
	if h.breaker != nil {
		response.LedgerCircuit = h.breaker.GetState().String()
		response.LedgerFailures = h.breaker.GetFailureCount()
		if h.breaker.IsOpen() {
			response.Status = "degraded"
		}
	}
	return c.JSON(http.StatusOK, response)
}
