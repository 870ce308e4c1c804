// Package mongodb implements the persistence layer on MongoDB. Transactions
// need a replica set or a sharded cluster.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"insulink/config"
	"insulink/internal/domain/lifecycle"
	"insulink/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/fx"
)

// Collection names.
const (
	devicesCollection = "devices"
	usersCollection   = "users"
	glucoseCollection = "glucose_readings"
	bolusCollection   = "bolus_readings"
	basalCollection   = "basal_readings"
)

const defaultConnectTimeout = 10 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects the client and returns the configured database.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if params.Config.Store.AutoMigrate {
				if err := EnsureIndexes(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("MongoDB indexes ensured", slog.String("database", cfg.Database))
			}

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return db, nil
}

// EnsureIndexes creates the unique indexes that make re-uploads idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(devicesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "serial_number", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return errors.Wrap(err, "failed to create devices index")
	}

	if _, err := db.Collection(devicesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_ids", Value: 1}, {Key: "updated_at", Value: -1}},
	}); err != nil {
		return errors.Wrap(err, "failed to create devices user index")
	}

	readingTimeFields := map[string]string{
		glucoseCollection: "reading_time",
		bolusCollection:   "time",
		basalCollection:   "start_time",
	}
	for name, timeField := range readingTimeFields {
		indexModels := []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "user_id", Value: 1},
					{Key: "device_id", Value: 1},
					{Key: "date", Value: 1},
					{Key: timeField, Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{
					{Key: "user_id", Value: 1},
					{Key: "date", Value: 1},
				},
			},
		}
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexModels); err != nil {
			return errors.Wrapf(err, "failed to create %s indexes", name)
		}
	}

	return nil
}
