// Package model owns the process-wide model reference. A Handle serves
// whichever adapter was loaded last and swaps in a new one atomically on
// reload, so the priority and status sub-models always change together.
package model

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/jsamuelsen11/task-classifier/internal/adapters/model/linear"
	"github.com/jsamuelsen11/task-classifier/internal/platform/config"
	"github.com/jsamuelsen11/task-classifier/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ModelAdapter     = (*Handle)(nil)
	_ ports.ModelInfo        = (*Handle)(nil)
	_ ports.ModelSnapshotter = (*Handle)(nil)
)

// Loader produces a ready-to-serve model adapter.
type Loader func(ctx context.Context) (ports.ModelAdapter, error)

// FileLoader loads a linear model bundle from path on every call.
func FileLoader(path string) Loader {
	return func(ctx context.Context) (ports.ModelAdapter, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m, err := linear.Load(path)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// StaticLoader always returns adapter. Used for the remote backend, whose
// model lifecycle belongs to the model server.
func StaticLoader(adapter ports.ModelAdapter) Loader {
	return func(context.Context) (ports.ModelAdapter, error) {
		return adapter, nil
	}
}

// slot wraps the interface value so it can live behind an atomic.Pointer.
type slot struct {
	adapter ports.ModelAdapter
}

// Handle is a reloadable ports.ModelAdapter. Reads are lock-free; reloads are
// serialized.
type Handle struct {
	load    Loader
	path    string
	logger  *slog.Logger
	current atomic.Pointer[slot]
	mu      sync.Mutex
}

// HandleOption configures a Handle.
type HandleOption func(*Handle)

// WithBundlePath records the model file the Handle loads from. Location
// reports it whenever the file exists, whether or not it loaded.
func WithBundlePath(path string) HandleOption {
	return func(h *Handle) { h.path = path }
}

// NewHandle creates a Handle that serves Disabled until the first successful
// Reload.
func NewHandle(load Loader, logger *slog.Logger, opts ...HandleOption) *Handle {
	h := &Handle{load: load, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Open builds the Handle for the configured backend and performs the initial
// load. A failed initial load is logged and leaves the service running on the
// heuristic; only an unusable configuration is returned as an error.
func Open(ctx context.Context, cfg config.ModelConfig, remote ports.ModelAdapter, logger *slog.Logger) (*Handle, error) {
	var (
		load Loader
		opts []HandleOption
	)

	switch cfg.Backend {
	case config.ModelBackendFile:
		load = FileLoader(cfg.Path)
		opts = append(opts, WithBundlePath(cfg.Path))
	case config.ModelBackendRemote:
		if remote == nil {
			return nil, errors.New("model backend is remote but no model server client was provided")
		}
		load = StaticLoader(remote)
	case config.ModelBackendNone:
		load = StaticLoader(Disabled{})
	default:
		return nil, fmt.Errorf("unknown model backend %q", cfg.Backend)
	}

	h := NewHandle(load, logger.With(slog.String("backend", cfg.Backend)), opts...)
	_ = h.Reload(ctx)
	return h, nil
}

// Reload runs the loader and, on success, replaces the served model. On
// failure the previous model keeps serving and the error is returned.
func (h *Handle) Reload(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	adapter, err := h.load(ctx)
	if err == nil && adapter == nil {
		err = errors.New("loader returned no model")
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "model load failed",
			slog.Any("error", err),
			slog.Bool("serving_previous", h.current.Load() != nil),
		)
		return fmt.Errorf("reloading model: %w", err)
	}

	h.current.Store(&slot{adapter: adapter})
	h.logger.InfoContext(ctx, "model loaded",
		slog.Bool("available", adapter.Available()),
		slog.String("location", location(adapter)),
	)
	return nil
}

// Snapshot returns the adapter currently in service.
func (h *Handle) Snapshot() ports.ModelAdapter {
	if s := h.current.Load(); s != nil {
		return s.adapter
	}
	return Disabled{}
}

// Available reports whether the current adapter can serve predictions.
func (h *Handle) Available() bool { return h.Snapshot().Available() }

// Location returns where the model comes from, or "". A bundle file that
// exists is reported even when it failed to load.
func (h *Handle) Location() string {
	if loc := location(h.Snapshot()); loc != "" {
		return loc
	}
	if h.path == "" {
		return ""
	}
	if _, err := os.Stat(h.path); err != nil {
		return ""
	}
	return h.path
}

func (h *Handle) PredictPriority(ctx context.Context, text string) (string, error) {
	return h.Snapshot().PredictPriority(ctx, text)
}

func (h *Handle) PredictStatus(ctx context.Context, text string) (string, error) {
	return h.Snapshot().PredictStatus(ctx, text)
}

func (h *Handle) ConfidencePriority(ctx context.Context, text string) (float64, error) {
	return h.Snapshot().ConfidencePriority(ctx, text)
}

func (h *Handle) ConfidenceStatus(ctx context.Context, text string) (float64, error) {
	return h.Snapshot().ConfidenceStatus(ctx, text)
}

func location(adapter ports.ModelAdapter) string {
	if info, ok := adapter.(ports.ModelInfo); ok {
		return info.Location()
	}
	return ""
}
