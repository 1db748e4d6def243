// Package debug carries a log/slog logger in a context for the lstypes
// command. The lsp and lsif packages never log.
package debug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

type Level int

const (
	_ Level = iota
	Error
	Warning
	Info
	Debug
	Trace
)

// LevelTrace sits below slog.LevelDebug and is used for per entry output.
const LevelTrace = slog.LevelDebug - 4

// ProgramLevel is the level of every logger made by NewContext. It can be
// changed while the program runs.
var ProgramLevel = new(slog.LevelVar)

// ParseLevel parses a configured level name.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return Error, nil
	case "warn", "warning":
		return Warning, nil
	case "", "info":
		return Info, nil
	case "debug":
		return Debug, nil
	case "trace":
		return Trace, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Debug:
		return "debug"
	case Trace:
		return "trace"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

type loggerCtx int

const (
	loggerCtxKey = loggerCtx(iota)
)

// NewContext returns ctx carrying a text logger writing to w at
// ProgramLevel.
func NewContext(ctx context.Context, w io.Writer) context.Context {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ProgramLevel})
	return withLogger(ctx, slog.New(h))
}

func withLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

func getLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger)
	if !ok {
		return slog.Default()
	}

	return logger
}

func convertLevel(level Level) slog.Level {
	switch level {
	case Error:
		return slog.LevelError
	case Warning:
		return slog.LevelWarn
	case Info:
		return slog.LevelInfo
	case Trace:
		return LevelTrace
	default:
		return slog.LevelDebug
	}
}

// SetLevel sets ProgramLevel.
func SetLevel(l Level) {
	ProgramLevel.Set(convertLevel(l))
}

func (l Level) Log(ctx context.Context, msg string, args ...any) {
	getLogger(ctx).Log(ctx, convertLevel(l), msg, args...)
}

func LogError(ctx context.Context, msg string, err error) {
	getLogger(ctx).Log(ctx, slog.LevelError, msg, slog.Any("error", err))
}

// With returns ctx carrying a logger that adds args to every record.
func With(ctx context.Context, args ...any) (context.Context, *slog.Logger) {
	logger := getLogger(ctx).With(args...)
	return withLogger(ctx, logger), logger
}

// Start logs the beginning of the operation name and returns ctx scoped to
// it together with a function that logs its end and duration.
func Start(ctx context.Context, name string, args ...any) (context.Context, func()) {
	logger := getLogger(ctx).With(slog.String("op", name))
	ctx = withLogger(ctx, logger)
	logger.Log(ctx, slog.LevelDebug, "begin", args...)
	begin := time.Now()

	return ctx, func() {
		args = append(args, slog.Duration("elapsed", time.Since(begin).Round(time.Millisecond)))
		logger.Log(ctx, slog.LevelDebug, "end", args...)
	}
}
