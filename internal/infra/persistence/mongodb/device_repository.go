package mongodb

import (
	"context"
	"time"

	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	coll *mongo.Collection
	sess *mongo.Session
}

// NewDeviceRepository is the constructor for deviceRepository outside a transaction.
func NewDeviceRepository(db *mongo.Database) repository.DeviceRepository {
	return newDeviceRepository(db, nil)
}

func newDeviceRepository(db *mongo.Database, sess *mongo.Session) *deviceRepository {
	return &deviceRepository{coll: db.Collection(devicesCollection), sess: sess}
}

// CreateDevice persists a new device.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	now := time.Now().UTC()
	if device.ID == uuid.Nil {
		device.ID = uuid.Must(uuid.NewV7())
	}
	device.CreatedAt, device.UpdatedAt = now, now

	if _, err := repo.coll.InsertOne(bind(ctx, repo.sess), fromDeviceDomain(device)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	return repo.findOne(ctx, bson.M{"_id": id.String()})
}

// FindDeviceBySerial retrieves a device by its serial number.
func (repo *deviceRepository) FindDeviceBySerial(ctx context.Context, serial string) (*entity.Device, error) {
	return repo.findOne(ctx, bson.M{"serial_number": serial})
}

// ApplyTelemetry replaces the telemetry sub-document and adds the user in one update.
func (repo *deviceRepository) ApplyTelemetry(
	ctx context.Context,
	deviceID, userID uuid.UUID,
	telemetry entity.DeviceTelemetry,
) (*entity.Device, error) {
	update := bson.M{
		"$set": bson.M{
			"telemetry":  fromTelemetryDomain(telemetry),
			"updated_at": time.Now().UTC(),
		},
		"$addToSet": bson.M{"user_ids": userID.String()},
	}

	var doc deviceDocument
	err := repo.coll.FindOneAndUpdate(
		bind(ctx, repo.sess),
		bson.M{"_id": deviceID.String()},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to apply device telemetry")
	}

	return toDeviceDomain(&doc), nil
}

// FindDevicesByUser retrieves the devices linked to a user, most recently updated first.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	ctx = bind(ctx, repo.sess)

	cursor, err := repo.coll.Find(ctx,
		bson.M{"user_ids": userID.String()},
		options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}),
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find devices by user")
	}
	defer cursor.Close(ctx)

	var docs []*deviceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode devices")
	}

	devices := make([]*entity.Device, 0, len(docs))
	for _, doc := range docs {
		devices = append(devices, toDeviceDomain(doc))
	}

	return devices, nil
}

func (repo *deviceRepository) findOne(ctx context.Context, filter bson.M) (*entity.Device, error) {
	var doc deviceDocument

	if err := repo.coll.FindOne(bind(ctx, repo.sess), filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device")
	}

	return toDeviceDomain(&doc), nil
}
