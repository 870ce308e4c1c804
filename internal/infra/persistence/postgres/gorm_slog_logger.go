package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "insulink/internal/delivery/context"
	logs "insulink/internal/infra/log"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	slowQueryThreshold = 200 * time.Millisecond

	// Batched reading inserts produce very long statements.
	maxLoggedSQL = 2048

	queryLogComponent = "gorm"
)

// queryLogger routes gorm logs through slog, preferring the request-scoped
// logger found on the query context.
type queryLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
}

func newQueryLogger(baseLogger *slog.Logger) logger.Interface {
	componentLogger := logs.Component(baseLogger, queryLogComponent)

	// Every statement is logged only when the gorm component runs at debug.
	level := logger.Warn
	if componentLogger.Enabled(context.Background(), slog.LevelDebug) {
		level = logger.Info
	}

	return &queryLogger{
		logger: componentLogger,
		level:  level,
	}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) log(ctx context.Context) *slog.Logger {
	if requestLogger := deliverycontext.GetLogger(ctx); requestLogger != nil {
		return logs.Component(requestLogger, queryLogComponent)
	}

	return l.logger
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Info {
		l.log(ctx).InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Warn {
		l.log(ctx).WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Error {
		l.log(ctx).ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}

// Trace logs failed queries, slow queries, and in debug mode every query.
// A missing row or an aborted request is not a database failure.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return
	case err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)):
		if l.level >= logger.Warn {
			l.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Query aborted", queryAttrs(sqlAndRowsFn, elapsed, slog.Any("error", err))...)
		}
	case err != nil:
		if l.level >= logger.Error {
			l.log(ctx).LogAttrs(ctx, slog.LevelError, "Query failed", queryAttrs(sqlAndRowsFn, elapsed, slog.Any("error", err))...)
		}
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		l.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Slow query", queryAttrs(sqlAndRowsFn, elapsed, slog.Duration("threshold", slowQueryThreshold))...)
	case l.level >= logger.Info:
		l.log(ctx).LogAttrs(ctx, slog.LevelDebug, "Query", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration, extra ...slog.Attr) []slog.Attr {
	sql, rows := sqlAndRowsFn()
	if len(sql) > maxLoggedSQL {
		sql = sql[:maxLoggedSQL] + "..."
	}

	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}

	return append(attrs, extra...)
}
