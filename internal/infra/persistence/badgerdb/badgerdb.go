// Package badgerdb implements the persistence layer on an embedded BadgerDB.
// It backs local development and the end-to-end tests of the use cases.
package badgerdb

import (
	"context"
	"fmt"
	"log/slog"

	"insulink/config"
	"insulink/internal/errors"
	logs "insulink/internal/infra/log"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the database configured in badger.* and closes it on stop.
func New(params Params) (*badger.DB, error) {
	db, err := Open(params.Config.Badger, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}

// Open opens a BadgerDB. A nil logger silences badger.
func Open(cfg *config.BadgerConfig, logger *slog.Logger) (*badger.DB, error) {
	var opts badger.Options
	if cfg == nil || cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Dir)
	}

	if logger != nil {
		opts = opts.WithLogger(&slogBadgerLogger{logger: logs.Component(logger, "badger")})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open BadgerDB")
	}

	return db, nil
}

// slogBadgerLogger adapts slog to badger.Logger.
type slogBadgerLogger struct {
	logger *slog.Logger
}

func (l *slogBadgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *slogBadgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *slogBadgerLogger) Infof(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *slogBadgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
