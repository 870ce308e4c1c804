package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	deliverycontext "insulink/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestQueryLogger_LevelFollowsLogger(t *testing.T) {
	var buf bytes.Buffer

	quiet, ok := newQueryLogger(newBufferLogger(&buf, slog.LevelInfo)).(*queryLogger)
	require.True(t, ok)
	assert.Equal(t, logger.Warn, quiet.level)

	verbose, ok := newQueryLogger(newBufferLogger(&buf, slog.LevelDebug)).(*queryLogger)
	require.True(t, ok)
	assert.Equal(t, logger.Info, verbose.level)
}

func TestQueryLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := newBufferLogger(&buf, slog.LevelDebug)
	queries := newQueryLogger(base)
	ctx := deliverycontext.WithLogger(context.Background(), base.With(slog.String("request_id", "req-1")))
	statement := func() (string, int64) { return "SELECT 1", 1 }

	queries.Trace(ctx, time.Now(), statement, nil)
	out := buf.String()
	assert.Contains(t, out, `"msg":"Query"`)
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"component":"gorm"`)

	buf.Reset()
	queries.Trace(ctx, time.Now(), statement, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	buf.Reset()
	queries.Trace(context.Background(), time.Now(), statement, context.DeadlineExceeded)
	assert.Contains(t, buf.String(), `"msg":"Query aborted"`)
	assert.Contains(t, buf.String(), `"component":"gorm"`)
}
