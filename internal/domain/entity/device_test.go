package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDevice_ApplyTelemetry(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	device := &Device{ID: uuid.New(), SerialNumber: "SN-1", Model: DeviceModelStandard}

	first := DeviceTelemetry{BatteryPercentage: 80, ReservoirPercentage: 50}
	device.ApplyTelemetry(userID, first, now)
	assert.Equal(t, first, device.Telemetry)
	assert.Equal(t, []uuid.UUID{userID}, device.UserIDs)
	assert.Equal(t, now, device.UpdatedAt)

	second := DeviceTelemetry{BatteryPercentage: 0, ReservoirPercentage: 10}
	device.ApplyTelemetry(userID, second, now.Add(time.Hour))
	assert.Equal(t, second, device.Telemetry)
	assert.Len(t, device.UserIDs, 1)
}

func TestUser_AddDevice(t *testing.T) {
	deviceID := uuid.New()
	user := &User{ID: uuid.New()}

	assert.True(t, user.AddDevice(deviceID))
	assert.False(t, user.AddDevice(deviceID))
	assert.Equal(t, []uuid.UUID{deviceID}, user.DeviceIDs)
}

func TestDeviceModel_IsValid(t *testing.T) {
	assert.True(t, DeviceModelStandard.IsValid())
	assert.True(t, DeviceModelPro.IsValid())
	assert.False(t, DeviceModel("mini").IsValid())
}
