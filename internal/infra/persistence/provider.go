// Package persistence selects the store backend configured in store.driver.
package persistence

import (
	"log/slog"

	"insulink/config"
	"insulink/internal/domain/repository"
	"insulink/internal/infra/persistence/badgerdb"
	"insulink/internal/infra/persistence/mongodb"
	"insulink/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Store is every repository of one backend plus its transaction manager.
type Store struct {
	fx.Out

	TxManager         repository.TransactionManager
	DeviceRepository  repository.DeviceRepository
	UserRepository    repository.UserRepository
	GlucoseRepository repository.GlucoseRepository
	BolusRepository   repository.BolusRepository
	BasalRepository   repository.BasalRepository
}

// NewStore connects the configured backend and builds its repositories.
func NewStore(params StoreParams) (Store, error) {
	driver := params.Config.Store.Driver
	logger := params.Logger.With(slog.String("store", driver))

	switch driver {
	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lc, Config: params.Config, Logger: logger})
		if err != nil {
			return Store{}, err
		}
		logger.Info("Using PostgreSQL store")

		return Store{
			TxManager:         postgres.NewTransactionManager(db),
			DeviceRepository:  postgres.NewDeviceRepository(db),
			UserRepository:    postgres.NewUserRepository(db),
			GlucoseRepository: postgres.NewGlucoseRepository(db),
			BolusRepository:   postgres.NewBolusRepository(db),
			BasalRepository:   postgres.NewBasalRepository(db),
		}, nil

	case config.StoreDriverMongo:
		db, err := mongodb.New(mongodb.Params{Lifecycle: params.Lc, Config: params.Config, Logger: logger})
		if err != nil {
			return Store{}, err
		}
		logger.Info("Using MongoDB store", slog.String("database", params.Config.Mongo.Database))

		return Store{
			TxManager:         mongodb.NewTransactionManager(db),
			DeviceRepository:  mongodb.NewDeviceRepository(db),
			UserRepository:    mongodb.NewUserRepository(db),
			GlucoseRepository: mongodb.NewGlucoseRepository(db),
			BolusRepository:   mongodb.NewBolusRepository(db),
			BasalRepository:   mongodb.NewBasalRepository(db),
		}, nil

	case config.StoreDriverBadger:
		db, err := badgerdb.New(badgerdb.Params{Lifecycle: params.Lc, Config: params.Config, Logger: logger})
		if err != nil {
			return Store{}, err
		}
		logger.Info("Using BadgerDB store", slog.Bool("in_memory", params.Config.Badger.InMemory))

		return Store{
			TxManager:         badgerdb.NewTransactionManager(db),
			DeviceRepository:  badgerdb.NewDeviceRepository(db),
			UserRepository:    badgerdb.NewUserRepository(db),
			GlucoseRepository: badgerdb.NewGlucoseRepository(db),
			BolusRepository:   badgerdb.NewBolusRepository(db),
			BasalRepository:   badgerdb.NewBasalRepository(db),
		}, nil

	default:
		return Store{}, errors.Errorf("unknown store driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
