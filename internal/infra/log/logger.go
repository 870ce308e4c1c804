package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"insulink/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ComponentKey is the attribute that selects a per-component level.
const ComponentKey = "component"

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the service logger and installs it as the slog default.
// env.log.components overrides env.log.level for loggers tagged with Component,
// so the store can be quieter or noisier than the request path.
func New(params Params) (*slog.Logger, error) {
	logger, err := newLogger(os.Stdout, params.Config.Env.Log)
	if err != nil {
		return nil, err
	}

	if name := params.Config.Env.ServiceName; name != "" {
		logger = logger.With(slog.String("service", name))
	}
	slog.SetDefault(logger)

	return logger, nil
}

// Component tags logger with a component name so its configured level applies.
func Component(logger *slog.Logger, name string) *slog.Logger {
	return logger.With(slog.String(ComponentKey, name))
}

func newLogger(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]slog.Level, len(cfg.Components))
	floor := level
	for name, raw := range cfg.Components {
		componentLevel, err := parseLogLevel(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "component %s", name)
		}
		overrides[strings.ToLower(name)] = componentLevel
		floor = min(floor, componentLevel)
	}

	// The inner handler lets through the most verbose configured level;
	// componentHandler narrows it per logger.
	opts := &slog.HandlerOptions{Level: floor}
	var inner slog.Handler
	if cfg.Pretty {
		inner = slog.NewTextHandler(w, opts)
	} else {
		inner = slog.NewJSONHandler(w, opts)
	}

	return slog.New(&componentHandler{next: inner, level: level, overrides: overrides}), nil
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}

// componentHandler gates records by the level of the last component attribute
// added through Logger.With. Component attributes on single records are ignored.
type componentHandler struct {
	next      slog.Handler
	level     slog.Level
	overrides map[string]slog.Level
}

func (h *componentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level && h.next.Enabled(ctx, level)
}

func (h *componentHandler) Handle(ctx context.Context, record slog.Record) error {
	return h.next.Handle(ctx, record)
}

func (h *componentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	level := h.level
	for _, attr := range attrs {
		if attr.Key != ComponentKey {
			continue
		}
		if override, ok := h.overrides[strings.ToLower(attr.Value.String())]; ok {
			level = override
		}
	}

	return &componentHandler{next: h.next.WithAttrs(attrs), level: level, overrides: h.overrides}
}

func (h *componentHandler) WithGroup(name string) slog.Handler {
	return &componentHandler{next: h.next.WithGroup(name), level: h.level, overrides: h.overrides}
}
