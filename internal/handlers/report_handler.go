package handlers

import (
	"log/slog"
	"net/http"

	"banking-reports/internal/dto"
	"banking-reports/internal/errors"
	"banking-reports/internal/models"
	"banking-reports/internal/services"
	"banking-reports/internal/validation"

	"github.com/labstack/echo/v4"
)

// ReportHandler exposes the report dispatcher over HTTP
type ReportHandler struct {
	dispatcher services.ReportDispatcherInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(dispatcher services.ReportDispatcherInterface) *ReportHandler {
	return &ReportHandler{dispatcher: dispatcher}
}

// RegisterRoutes mounts the report endpoints on g
func (h *ReportHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/reports", h.ListReports)
	g.GET("/reports/:domain/:reportType", h.GenerateReport)
	g.GET("/reports/:domain/:reportType/summary", h.GetReportSummary)
}

// ListReports returns the report catalog
// @Summary List reports
// @Tags Reports
// @Produce json
// @Success 200 {object} models.ReportEnvelope "Catalog of domains and report types"
// @Router /reports [get]
func (h *ReportHandler) ListReports(c echo.Context) error {
	return c.JSON(http.StatusOK, models.SuccessEnvelope(dto.CatalogResponse{Domains: h.dispatcher.Catalog()}))
}

// GenerateReport computes one report for the requested period
// @Summary Generate a report
// @Tags Reports
// @Produce json
// @Param domain path string true "Report domain" Enums(financial, regulatory, risk, customer)
// @Param reportType path string true "Report type"
// @Param startDate query string true "Period start (YYYY-MM-DD)"
// @Param endDate query string true "Period end (YYYY-MM-DD)"
// @Param accountType query string false "Account type filter"
// @Param loanType query string false "Loan type filter"
// @Param segment query string false "Customer segment filter"
// @Success 200 {object} models.ReportEnvelope "Report document"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid query parameters"
// @Failure 400 {object} models.ReportEnvelope "VALIDATION_006 - Start date after end date"
// @Failure 404 {object} models.ReportEnvelope "REPORT_001 - Unsupported report"
// @Failure 503 {object} models.ReportEnvelope "REPORT_002 - Ledger unavailable"
// @Failure 504 {object} models.ReportEnvelope "REPORT_004 - Report timed out"
// @Router /reports/{domain}/{reportType} [get]
func (h *ReportHandler) GenerateReport(c echo.Context) error {
	req, errResp := bindReportRequest(c)
	if errResp != nil {
		return c.JSON(errResp.GetHTTPStatus(), errResp)
	}
	return sendEnvelope(c, h.dispatcher.Generate(c.Request().Context(), req))
}

// GetReportSummary computes a report and returns its headline projection
// @Summary Summarize a report
// @Tags Reports
// @Produce json
// @Param domain path string true "Report domain"
// @Param reportType path string true "Report type"
// @Param startDate query string true "Period start (YYYY-MM-DD)"
// @Param endDate query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} models.ReportEnvelope "Report summary"
// @Router /reports/{domain}/{reportType}/summary [get]
func (h *ReportHandler) GetReportSummary(c echo.Context) error {
	req, errResp := bindReportRequest(c)
	if errResp != nil {
		return c.JSON(errResp.GetHTTPStatus(), errResp)
	}
	return sendEnvelope(c, h.dispatcher.Summary(c.Request().Context(), req))
}

// bindReportRequest binds and validates the path and query.
func bindReportRequest(c echo.Context) (models.ReportRequest, *errors.ErrorResponse) {
	traceID := getTraceID(c)

	var query dto.ReportQuery
	if err := c.Bind(&query); err != nil {
		return models.ReportRequest{}, errors.NewErrorResponse(errors.ValidationInvalidFormat, traceID,
			errors.WithDetails("Malformed query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		messages := validation.FieldMessages(err)
		if messages == nil {
			slog.ErrorContext(c.Request().Context(), "failed to validate report query", "error", err)
			response, _ := errors.WrapSystemError(err, traceID)
			return models.ReportRequest{}, response
		}
		return models.ReportRequest{}, errors.NewValidationError(messages, traceID)
	}

	req, err := query.ToRequest()
	if err != nil {
		return models.ReportRequest{}, errors.NewErrorResponse(errors.ValidationInvalidDate, traceID, errors.WithDetails(err.Error()))
	}
	return req, nil
}

func sendEnvelope(c echo.Context, envelope *models.ReportEnvelope) error {
	if envelope.Success {
		return c.JSON(http.StatusOK, envelope)
	}
	code := errors.ErrorCode(envelope.Error.Code)
	c.Response().Header().Set(ErrorCodeHeader, envelope.Error.Code)
	return c.JSON(errors.GetHTTPStatus(code), envelope)
}
