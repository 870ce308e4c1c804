package postgres

import (
	"context"
	"time"

	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/domain/repository"
	"insulink/internal/infra/persistence/model"
	"insulink/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface on
// the generated query builder.
type deviceRepository struct {
	q *query.Query
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		q: query.Use(db),
	}
}

// CreateDevice persists a new device.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.q.DeviceModel.WithContext(ctx).Create(deviceM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing or invalid device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	if len(device.UserIDs) > 0 {
		if err := repo.linkUsers(ctx, deviceM.ID, device.UserIDs); err != nil {
			return err
		}
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	return repo.findOne(ctx, repo.q.DeviceModel.ID.Eq(id))
}

// FindDeviceBySerial retrieves a device by its serial number.
func (repo *deviceRepository) FindDeviceBySerial(ctx context.Context, serial string) (*entity.Device, error) {
	return repo.findOne(ctx, repo.q.DeviceModel.SerialNumber.Eq(serial))
}

// ApplyTelemetry overwrites the telemetry columns and links the user.
func (repo *deviceRepository) ApplyTelemetry(
	ctx context.Context,
	deviceID, userID uuid.UUID,
	telemetry entity.DeviceTelemetry,
) (*entity.Device, error) {
	devices := repo.q.DeviceModel

	// The UPDATE row lock serialises concurrent uploads for the same device.
	// A map keeps zero telemetry values and NULLs in the update.
	result, err := devices.WithContext(ctx).
		Where(devices.ID.Eq(deviceID)).
		Updates(map[string]any{
			"battery_percentage":   telemetry.BatteryPercentage,
			"reservoir_percentage": telemetry.ReservoirPercentage,
			"reservoir_changed_at": timePtr(telemetry.ReservoirChangedAt),
			"patch_changed_at":     timePtr(telemetry.PatchChangedAt),
			"reported_at":          timePtr(telemetry.ReportedAt),
			"updated_at":           time.Now(),
		})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to apply device telemetry")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrDeviceNotFound
	}

	if err := repo.linkUsers(ctx, deviceID, []uuid.UUID{userID}); err != nil {
		return nil, err
	}

	return repo.FindDeviceByID(ctx, deviceID)
}

// FindDevicesByUser retrieves the devices linked to a user, most recently updated first.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	devices := repo.q.DeviceModel
	links := &repo.q.DeviceUserModel

	deviceModels, err := devices.WithContext(ctx).
		Preload(devices.Users).
		Join(links, links.DeviceID.EqCol(devices.ID)).
		Where(links.UserID.Eq(userID)).
		Order(devices.UpdatedAt.Desc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	result := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		result = append(result, toDeviceDomain(deviceM))
	}

	return result, nil
}

func (repo *deviceRepository) findOne(ctx context.Context, cond gen.Condition) (*entity.Device, error) {
	devices := repo.q.DeviceModel

	deviceM, err := devices.WithContext(ctx).
		Preload(devices.Users).
		Where(cond).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device")
	}

	return toDeviceDomain(deviceM), nil
}

func (repo *deviceRepository) linkUsers(ctx context.Context, deviceID uuid.UUID, userIDs []uuid.UUID) error {
	links := make([]*model.DeviceUserModel, 0, len(userIDs))
	for _, userID := range userIDs {
		links = append(links, &model.DeviceUserModel{DeviceID: deviceID, UserID: userID})
	}

	if err := repo.q.DeviceUserModel.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(links...); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link device users")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	userIDs := make([]uuid.UUID, 0, len(data.Users))
	for _, link := range data.Users {
		userIDs = append(userIDs, link.UserID)
	}

	return &entity.Device{
		ID:             data.ID,
		SerialNumber:   data.SerialNumber,
		Model:          entity.DeviceModel(data.Model),
		ManufacturedAt: data.ManufacturedAt,
		Telemetry: entity.DeviceTelemetry{
			BatteryPercentage:   data.BatteryPercentage,
			ReservoirPercentage: data.ReservoirPercentage,
			ReservoirChangedAt:  derefTime(data.ReservoirChangedAt),
			PatchChangedAt:      derefTime(data.PatchChangedAt),
			ReportedAt:          derefTime(data.ReportedAt),
		},
		UserIDs:   userIDs,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
// The user links are written separately.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:                  data.ID,
		SerialNumber:        data.SerialNumber,
		Model:               data.Model.String(),
		ManufacturedAt:      data.ManufacturedAt,
		BatteryPercentage:   data.Telemetry.BatteryPercentage,
		ReservoirPercentage: data.Telemetry.ReservoirPercentage,
		ReservoirChangedAt:  timePtr(data.Telemetry.ReservoirChangedAt),
		PatchChangedAt:      timePtr(data.Telemetry.PatchChangedAt),
		ReportedAt:          timePtr(data.Telemetry.ReportedAt),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}

	return *t
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}
