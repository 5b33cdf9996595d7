package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/fhuszti/wedding-medias-go/internal/api_context"
)

// Config selects how records are rendered.
type Config struct {
	Service   string
	JSON      bool
	Level     slog.Level
	AddSource bool
	Out       io.Writer
}

// ConfigFromEnv reads LOG_FORMAT (json|text, default json), LOG_LEVEL
// (debug|info|warn|error, default info) and LOG_SOURCE (bool, default false).
func ConfigFromEnv(svc string) Config {
	cfg := Config{Service: svc, JSON: true, Level: slog.LevelInfo, Out: os.Stdout}

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "text") {
		cfg.JSON = false
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = levelOf(v)
	}
	cfg.AddSource, _ = strconv.ParseBool(os.Getenv("LOG_SOURCE"))
	return cfg
}

func levelOf(s string) slog.Level {
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// New builds a logger whose records carry the service name, the request id
// and, on media routes, the addressed public id.
func New(cfg Config) *slog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: cfg.Level, AddSource: cfg.AddSource}

	var h slog.Handler = slog.NewJSONHandler(out, opts)
	if !cfg.JSON {
		h = slog.NewTextHandler(out, opts)
	}
	return slog.New(requestScoped{next: h}).With("svc", cfg.Service)
}

var current *slog.Logger

// Init installs the environment-configured logger as the package and slog default.
// Plain log.Printf output is routed through it as well.
func Init(svc string) {
	l := New(ConfigFromEnv(svc))
	current = l
	slog.SetDefault(l)

	log.SetFlags(0)
	log.SetOutput(slog.NewLogLogger(l.Handler(), slog.LevelInfo).Writer())
}

func active() *slog.Logger {
	if current != nil {
		return current
	}
	return slog.Default()
}

// requestScoped decorates records with values carried by the request context.
type requestScoped struct{ next slog.Handler }

func (h requestScoped) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.next.Enabled(ctx, lvl)
}

func (h requestScoped) Handle(ctx context.Context, r slog.Record) error {
	rid, ok := api_context.RequestIDFromContext(ctx)
	if !ok {
		rid = "system"
	}
	r.AddAttrs(slog.String("request_id", rid))
	if id, ok := api_context.MediaIDFromContext(ctx); ok {
		r.AddAttrs(slog.String("media_id", id))
	}
	return h.next.Handle(ctx, r)
}

func (h requestScoped) WithAttrs(attrs []slog.Attr) slog.Handler {
	return requestScoped{next: h.next.WithAttrs(attrs)}
}

func (h requestScoped) WithGroup(name string) slog.Handler {
	return requestScoped{next: h.next.WithGroup(name)}
}

// emit records the caller of the exported helper as the source location.
func emit(ctx context.Context, lvl slog.Level, msg string, attrs ...any) {
	l := active()
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.Enabled(ctx, lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	r.Add(attrs...)
	_ = l.Handler().Handle(ctx, r)
}

func Debug(ctx context.Context, msg string, attrs ...any) { emit(ctx, slog.LevelDebug, msg, attrs...) }
func Info(ctx context.Context, msg string, attrs ...any) { emit(ctx, slog.LevelInfo, msg, attrs...) }
func Warn(ctx context.Context, msg string, attrs ...any) { emit(ctx, slog.LevelWarn, msg, attrs...) }
func Error(ctx context.Context, msg string, attrs ...any) { emit(ctx, slog.LevelError, msg, attrs...) }

func Debugf(ctx context.Context, format string, a ...any) {
	emit(ctx, slog.LevelDebug, fmt.Sprintf(format, a...))
}

func Infof(ctx context.Context, format string, a ...any) {
	emit(ctx, slog.LevelInfo, fmt.Sprintf(format, a...))
}

func Warnf(ctx context.Context, format string, a ...any) {
	emit(ctx, slog.LevelWarn, fmt.Sprintf(format, a...))
}

func Errorf(ctx context.Context, format string, a ...any) {
	emit(ctx, slog.LevelError, fmt.Sprintf(format, a...))
}
