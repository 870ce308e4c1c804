package impl

import (
	"context"
	"log/slog"
	"time"

	"insulink/config"
	deliverycontext "insulink/internal/delivery/context"
	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/domain/repository"
	"insulink/internal/domain/service"
	"insulink/internal/errors"
	"insulink/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ingestionService implements the IngestionUsecase interface.
type ingestionService struct {
	txManager      repository.TransactionManager
	validate       *validator.Validate
	registerDevice bool
	timeout        time.Duration
	recorder       service.UsageRecorder
	logger         *slog.Logger
	now            func() time.Time
}

// IngestionServiceParams holds dependencies for IngestionService, injected by Fx.
type IngestionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Recorder  service.UsageRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewIngestionService is the constructor for ingestionService.
func NewIngestionService(params IngestionServiceParams) usecase.IngestionUsecase {
	srv := &ingestionService{
		txManager: params.TxManager,
		validate:  newPayloadValidator(),
		recorder:  params.Recorder,
		logger:    params.Logger,
		now:       time.Now,
	}

	if cfg := params.Config.Ingestion; cfg != nil {
		srv.registerDevice = cfg.UnregisteredDevice == config.UnregisteredDeviceRegister
		srv.timeout = cfg.Timeout
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *ingestionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Ingest stores one upload in a single transaction.
func (srv *ingestionService) Ingest(ctx context.Context, userID uuid.UUID, payload *usecase.UploadPayload) (*usecase.IngestionResult, error) {
	started := srv.now()

	batch, err := buildBatch(srv.validate, userID, payload, started.UTC())
	if err != nil {
		srv.recorder.RecordUpload(service.UploadOutcomeRejected, srv.now().Sub(started))
		srv.log(ctx).Warn("Rejected invalid upload", slog.String("user_id", userID.String()), slog.Any("error", err))

		return nil, err
	}

	if srv.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.timeout)
		defer cancel()
	}

	result, err := srv.store(ctx, userID, batch)
	elapsed := srv.now().Sub(started)
	if err != nil {
		err = storeError(err, "failed to store upload")
		if isClientError(err) {
			srv.recorder.RecordUpload(service.UploadOutcomeRejected, elapsed)
			srv.log(ctx).Warn("Rejected upload", slog.String("serial", batch.serial), slog.Any("error", err))
		} else {
			srv.recorder.RecordUpload(service.UploadOutcomeFailed, elapsed)
			srv.log(ctx).Error("Failed to store upload", slog.String("serial", batch.serial), slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to ingest upload")
	}

	srv.recorder.RecordUpload(service.UploadOutcomeSuccess, elapsed)
	srv.recorder.RecordReadings(entity.SeriesGlucose, result.Glucose.Inserted, result.Glucose.Skipped)
	srv.recorder.RecordReadings(entity.SeriesBolus, result.Bolus.Inserted, result.Bolus.Skipped)
	srv.recorder.RecordReadings(entity.SeriesBasal, result.Basal.Inserted, result.Basal.Skipped)

	srv.log(ctx).Info("Upload stored",
		slog.String("serial", batch.serial),
		slog.String("device_id", result.Device.ID.String()),
		slog.Int("glucose_inserted", result.Glucose.Inserted),
		slog.Int("bolus_inserted", result.Bolus.Inserted),
		slog.Int("basal_inserted", result.Basal.Inserted),
		slog.Int("skipped", result.Glucose.Skipped+result.Bolus.Skipped+result.Basal.Skipped),
		slog.Duration("elapsed", elapsed),
	)

	return result, nil
}

// store runs every write of the upload in one transaction. Any failure
// discards all of them.
func (srv *ingestionService) store(ctx context.Context, userID uuid.UUID, batch *ingestBatch) (*usecase.IngestionResult, error) {
	result := &usecase.IngestionResult{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.NewDeviceRepository()

		device, err := srv.resolveDevice(ctx, deviceRepo, batch.serial)
		if err != nil {
			return err
		}

		device, err = deviceRepo.ApplyTelemetry(ctx, device.ID, userID, batch.telemetry)
		if err != nil {
			return storeError(err, "failed to apply device telemetry")
		}

		if err := repoFactory.NewUserRepository().AddDevice(ctx, userID, device.ID); err != nil {
			return storeError(err, "failed to link device to user")
		}

		batch.stamp(device.ID)

		if result.Glucose, err = insertSeries[*entity.GlucoseReading](ctx, repoFactory.NewGlucoseRepository(), batch.glucose); err != nil {
			return storeError(err, "failed to insert glucose readings")
		}
		if result.Bolus, err = insertSeries[*entity.BolusReading](ctx, repoFactory.NewBolusRepository(), batch.bolus); err != nil {
			return storeError(err, "failed to insert bolus readings")
		}
		if result.Basal, err = insertSeries[*entity.BasalReading](ctx, repoFactory.NewBasalRepository(), batch.basal); err != nil {
			return storeError(err, "failed to insert basal readings")
		}

		result.Device = device

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// resolveDevice finds the device by serial number. An unknown serial is
// rejected unless self-registration is enabled.
func (srv *ingestionService) resolveDevice(ctx context.Context, deviceRepo repository.DeviceRepository, serial string) (*entity.Device, error) {
	device, err := deviceRepo.FindDeviceBySerial(ctx, serial)
	if err == nil {
		return device, nil
	}
	if !errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, storeError(err, "failed to find device")
	}

	if !srv.registerDevice {
		return nil, domainerrors.ErrDeviceNotRegistered.WithDetails("serial number " + serial)
	}

	device = &entity.Device{
		ID:           uuid.Must(uuid.NewV7()),
		SerialNumber: serial,
		Model:        entity.DeviceModelStandard,
		UserIDs:      []uuid.UUID{},
	}
	if err := deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, storeError(err, "failed to register device")
	}
	srv.log(ctx).Info("Registered device on first upload", slog.String("serial", serial), slog.String("device_id", device.ID.String()))

	return device, nil
}

// insertSeries stores one series and counts what was new.
func insertSeries[T entity.Reading](ctx context.Context, repo repository.ReadingRepository[T], readings []T) (usecase.SeriesCounts, error) {
	counts := usecase.SeriesCounts{Submitted: len(readings)}
	if len(readings) == 0 {
		return counts, nil
	}

	inserted, err := repo.Insert(ctx, readings)
	if err != nil {
		return counts, err
	}

	counts.Inserted = inserted
	counts.Skipped = len(readings) - inserted

	return counts, nil
}
