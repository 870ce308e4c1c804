package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"insulink/internal/delivery/api/middleware"
	"insulink/internal/delivery/api/response"
	"insulink/internal/domain/calendar"
	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// DashboardHandler serves the report endpoints of the dashboard.
type DashboardHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// Report returns glucose and insulin totals and averages. The optional
// start and end query dates bound the window, both inclusive.
func (h *DashboardHandler) Report(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	window, err := parseWindow(c)
	if err != nil {
		return err
	}

	summary, err := h.reportUC.Summary(c.Request().Context(), userID, window)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// Monthly returns dense monthly averages for the last :months months.
func (h *DashboardHandler) Monthly(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	months, err := strconv.Atoi(c.Param("months"))
	if err != nil {
		return domainerrors.NewValidationError(domainerrors.FieldViolation{Field: "months", Reason: "must be a whole number"})
	}

	report, err := h.reportUC.Monthly(c.Request().Context(), userID, months)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report)
}

// Today returns the glucose, insulin and carb totals of the current day.
func (h *DashboardHandler) Today(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	intake, err := h.reportUC.TodayIntake(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, intake)
}

// Readings returns the per-row chart series inside the window.
func (h *DashboardHandler) Readings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	window, err := parseWindow(c)
	if err != nil {
		return err
	}

	series, err := h.reportUC.ReadingsSeries(c.Request().Context(), userID, window)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, series)
}

// Device returns the latest pump telemetry of the user.
func (h *DashboardHandler) Device(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.reportUC.DeviceStatus(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status)
}

// History returns the full reading rows inside the window.
func (h *DashboardHandler) History(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	window, err := parseWindow(c)
	if err != nil {
		return err
	}

	history, err := h.reportUC.History(c.Request().Context(), userID, window)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history)
}

// parseWindow reads the optional start and end query dates.
func parseWindow(c echo.Context) (entity.DateWindow, error) {
	var window entity.DateWindow
	var violations []domainerrors.FieldViolation

	for _, bound := range []struct {
		name string
		dst  **time.Time
	}{
		{name: "start", dst: &window.Start},
		{name: "end", dst: &window.End},
	} {
		raw := c.QueryParam(bound.name)
		if raw == "" {
			continue
		}

		date, err := calendar.ParseDate(raw)
		if err != nil {
			violations = append(violations, domainerrors.FieldViolation{Field: bound.name, Reason: "is not a valid date"})

			continue
		}
		*bound.dst = &date
	}

	if len(violations) > 0 {
		return entity.DateWindow{}, domainerrors.NewValidationError(violations...)
	}

	return window, nil
}
