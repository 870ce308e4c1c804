// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"insulink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device whose serial number already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindDeviceBySerial retrieves a device by its serial number.
	FindDeviceBySerial(ctx context.Context, serial string) (*entity.Device, error)

	// ApplyTelemetry overwrites the device telemetry (last write wins) and adds
	// userID to the device's user set. It returns the updated device.
	ApplyTelemetry(ctx context.Context, deviceID, userID uuid.UUID, telemetry entity.DeviceTelemetry) (*entity.Device, error)

	// FindDevicesByUser retrieves the devices linked to a user, most recently updated first.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)
}
