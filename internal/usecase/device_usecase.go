package usecase

import (
	"context"
	"time"

	"insulink/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo contains the information needed to register a pump.
type DeviceInfo struct {
	SerialNumber   string
	Model          entity.DeviceModel
	ManufacturedAt *time.Time
}

// DeviceUsecase defines the interface for device management operations.
type DeviceUsecase interface {
	// RegisterDevice registers a pump by serial number.
	// A serial number can only be registered once.
	RegisterDevice(ctx context.Context, info *DeviceInfo) (*entity.Device, error)

	// GetDevice retrieves a device by ID.
	GetDevice(ctx context.Context, deviceID uuid.UUID) (*entity.Device, error)

	// GetUserDevices retrieves every device the user has uploaded from.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)
}
