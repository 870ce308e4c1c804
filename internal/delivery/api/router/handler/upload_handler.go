package handler

import (
	"log/slog"
	"net/http"

	"insulink/internal/delivery/api/middleware"
	"insulink/internal/delivery/api/response"
	"insulink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	IngestionUC usecase.IngestionUsecase
	Logger      *slog.Logger
}

// UploadHandler accepts batched readings from pumps.
type UploadHandler struct {
	ingestionUC usecase.IngestionUsecase
	logger      *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		ingestionUC: params.IngestionUC,
		logger:      params.Logger,
	}
}

// Upload stores one device upload. The body keeps the firmware's field names.
func (h *UploadHandler) Upload(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var payload usecase.UploadPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Upload body is not valid JSON")
	}

	result, err := h.ingestionUC.Ingest(c.Request().Context(), userID, &payload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result)
}
