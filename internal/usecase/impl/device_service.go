package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "insulink/internal/delivery/context"
	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/domain/repository"
	"insulink/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterDevice registers a pump by serial number.
func (s *deviceService) RegisterDevice(ctx context.Context, info *usecase.DeviceInfo) (*entity.Device, error) {
	var problems violations
	serial := ""
	model := entity.DeviceModelStandard
	if info == nil {
		problems.add("serial_number", "is required")
	} else {
		serial = strings.TrimSpace(info.SerialNumber)
		if serial == "" {
			problems.add("serial_number", "is required")
		}
		if info.Model != "" {
			model = info.Model
		}
		if !model.IsValid() {
			problems.add("model", "must be one of standard, pro")
		}
	}
	if len(problems) > 0 {
		return nil, domainerrors.NewValidationError(problems...)
	}

	device := &entity.Device{
		ID:             uuid.Must(uuid.NewV7()),
		SerialNumber:   serial,
		Model:          model,
		ManufacturedAt: info.ManufacturedAt,
		UserIDs:        []uuid.UUID{},
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, storeError(err, "failed to create device")
	}

	s.log(ctx).Info("Device registered", slog.String("serial", serial), slog.String("device_id", device.ID.String()))

	return device, nil
}

// GetDevice retrieves a device by ID.
func (s *deviceService) GetDevice(ctx context.Context, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, storeError(err, "device "+deviceID.String())
	}

	return device, nil
}

// GetUserDevices retrieves every device the user has uploaded from.
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, storeError(err, "failed to find user devices")
	}

	return devices, nil
}
