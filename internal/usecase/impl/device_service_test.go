package impl

import (
	"context"
	"testing"
	"time"

	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/domain/repository"
	mockRepo "insulink/internal/mocks/repository"
	"insulink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{DeviceRepo: deviceRepo, Logger: newDiscardLogger()})

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	manufactured := time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, &usecase.DeviceInfo{
		SerialNumber:   " SN-42 ",
		Model:          entity.DeviceModelPro,
		ManufacturedAt: &manufactured,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, device.ID)
	assert.Equal(t, "SN-42", device.SerialNumber)
	assert.Equal(t, entity.DeviceModelPro, device.Model)
	assert.Equal(t, &manufactured, device.ManufacturedAt)
	assert.Empty(t, device.UserIDs)
}

func TestDeviceService_RegisterDevice_DefaultsToStandardModel(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.MatchedBy(func(d *entity.Device) bool {
			return d.Model == entity.DeviceModelStandard
		})).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, &usecase.DeviceInfo{SerialNumber: "SN-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceModelStandard, device.Model)
}

func TestDeviceService_RegisterDevice_Duplicate(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.Anything).
		Return(repository.ErrDuplicateDevice)

	_, err := fx.service.RegisterDevice(ctx, &usecase.DeviceInfo{SerialNumber: "SN-1"})
	require.ErrorIs(t, err, domainerrors.ErrDeviceAlreadyExists)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())
}

func TestDeviceService_RegisterDevice_Invalid(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), &usecase.DeviceInfo{SerialNumber: "  ", Model: "mini"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Violations(), 2)

	_, err = fx.service.RegisterDevice(context.Background(), nil)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_GetDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), SerialNumber: "SN-1"}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	found, err := fx.service.GetDevice(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, device, found)
}

func TestDeviceService_GetDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

	_, err := fx.service.GetDevice(ctx, deviceID)
	require.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_GetUserDevices_StoreError(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, errors.New("connection reset"))

	_, err := fx.service.GetUserDevices(ctx, userID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}
