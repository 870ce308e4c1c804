package handler

import (
	"log/slog"
	"net/http"

	"insulink/internal/delivery/api/middleware"
	"insulink/internal/delivery/api/response"
	"insulink/internal/domain/calendar"
	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a pump
type RegisterDeviceRequest struct {
	SerialNumber   string `json:"serial_number" validate:"required"`
	Model          string `json:"model" validate:"omitempty,oneof=standard pro"`
	ManufacturedAt string `json:"manufactured_at"`
}

// RegisterDevice handles pump registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	info := &usecase.DeviceInfo{
		SerialNumber: req.SerialNumber,
		Model:        entity.DeviceModel(req.Model),
	}
	if req.ManufacturedAt != "" {
		manufacturedAt, err := calendar.ParseDate(req.ManufacturedAt)
		if err != nil {
			return domainerrors.NewValidationError(domainerrors.FieldViolation{
				Field:  "manufactured_at",
				Reason: "is not a valid date",
			})
		}
		info.ManufacturedAt = &manufacturedAt
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), info)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetDevice handles retrieving one pump by id
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	device, err := h.deviceUC.GetDevice(c.Request().Context(), deviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, device)
}

// GetUserDevices handles retrieving the pumps of the authenticated user
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices)
}
