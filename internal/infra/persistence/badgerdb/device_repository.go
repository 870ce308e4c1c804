package badgerdb

import (
	"context"
	"slices"
	"time"

	"insulink/internal/domain/entity"
	"insulink/internal/domain/repository"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	run runner
}

// NewDeviceRepository is the constructor for deviceRepository outside a transaction.
func NewDeviceRepository(db *badger.DB) repository.DeviceRepository {
	return &deviceRepository{run: runner{db: db}}
}

// CreateDevice stores the device and claims its serial number.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	err := repo.run.update(ctx, func(txn *badger.Txn) error {
		taken, err := exists(txn, deviceSerialKey(device.SerialNumber))
		if err != nil {
			return err
		}
		if taken {
			return repository.ErrDuplicateDevice
		}

		now := time.Now().UTC()
		if device.ID == uuid.Nil {
			device.ID = uuid.Must(uuid.NewV7())
		}
		device.CreatedAt, device.UpdatedAt = now, now
		if device.UserIDs == nil {
			device.UserIDs = []uuid.UUID{}
		}

		if err := setRecord(txn, deviceKey(device.ID), device); err != nil {
			return err
		}
		if err := txn.Set(deviceSerialKey(device.SerialNumber), []byte(device.ID.String())); err != nil {
			return err
		}
		for _, userID := range device.UserIDs {
			if err := txn.Set(deviceUserKey(userID, device.ID), nil); err != nil {
				return err
			}
		}

		return nil
	})

	return storageError(err, "failed to create device")
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	var device *entity.Device
	err := repo.run.view(ctx, func(txn *badger.Txn) error {
		var err error
		device, err = loadDevice(txn, id)

		return err
	})
	if err != nil {
		return nil, storageError(err, "failed to find device")
	}

	return device, nil
}

// FindDeviceBySerial resolves the serial index, then loads the device.
func (repo *deviceRepository) FindDeviceBySerial(ctx context.Context, serial string) (*entity.Device, error) {
	var device *entity.Device
	err := repo.run.view(ctx, func(txn *badger.Txn) error {
		item, err := txn.Get(deviceSerialKey(serial))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return repository.ErrDeviceNotFound
		}
		if err != nil {
			return err
		}

		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		id, err := uuid.ParseBytes(raw)
		if err != nil {
			return errors.Wrap(err, "corrupt device serial index")
		}

		device, err = loadDevice(txn, id)

		return err
	})
	if err != nil {
		return nil, storageError(err, "failed to find device by serial")
	}

	return device, nil
}

// ApplyTelemetry is a read-modify-write of the device record. Two concurrent
// uploads conflict at commit and the later one fails instead of interleaving.
func (repo *deviceRepository) ApplyTelemetry(
	ctx context.Context,
	deviceID, userID uuid.UUID,
	telemetry entity.DeviceTelemetry,
) (*entity.Device, error) {
	var device *entity.Device
	err := repo.run.update(ctx, func(txn *badger.Txn) error {
		var err error
		device, err = loadDevice(txn, deviceID)
		if err != nil {
			return err
		}

		device.ApplyTelemetry(userID, telemetry, time.Now().UTC())

		if err := setRecord(txn, deviceKey(device.ID), device); err != nil {
			return err
		}

		return txn.Set(deviceUserKey(userID, device.ID), nil)
	})
	if err != nil {
		return nil, storageError(err, "failed to apply device telemetry")
	}

	return device, nil
}

// FindDevicesByUser retrieves the devices linked to a user, most recently updated first.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	devices := []*entity.Device{}
	err := repo.run.view(ctx, func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := deviceUserPrefixKey(userID)
		var ids []uuid.UUID
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			id, err := uuid.Parse(lastSegment(it.Item().Key()))
			if err != nil {
				return errors.Wrap(err, "corrupt device user index")
			}
			ids = append(ids, id)
		}

		for _, id := range ids {
			device, err := loadDevice(txn, id)
			if err != nil {
				return err
			}
			devices = append(devices, device)
		}

		return nil
	})
	if err != nil {
		return nil, storageError(err, "failed to find devices by user")
	}

	slices.SortStableFunc(devices, func(a, b *entity.Device) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})

	return devices, nil
}

func loadDevice(txn *badger.Txn, id uuid.UUID) (*entity.Device, error) {
	var device entity.Device
	if err := getRecord(txn, deviceKey(id), &device); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, err
	}

	return &device, nil
}
