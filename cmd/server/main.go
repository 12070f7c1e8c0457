// Package main is the entry point for the task classifier service. It wires
// all dependencies using samber/do v2, loads the model, serves HTTP, reloads
// the model on SIGHUP, and shuts down gracefully on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/task-classifier/internal/adapters/http"
	"github.com/jsamuelsen11/task-classifier/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/task-classifier/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/task-classifier/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/task-classifier/internal/adapters/model"
	"github.com/jsamuelsen11/task-classifier/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/task-classifier/internal/app"
	"github.com/jsamuelsen11/task-classifier/internal/platform/config"
	"github.com/jsamuelsen11/task-classifier/internal/platform/health"
	"github.com/jsamuelsen11/task-classifier/internal/platform/httpclient"
	"github.com/jsamuelsen11/task-classifier/internal/platform/logging"
	"github.com/jsamuelsen11/task-classifier/internal/platform/telemetry"
	"github.com/jsamuelsen11/task-classifier/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	if cfg.History.Enabled {
		store := do.MustInvoke[*sqlite.Store](injector)
		defer func() {
			if err := store.Close(); err != nil {
				logger.Error("closing prediction history", slog.Any("error", err))
			}
		}()
	}

	handle := do.MustInvoke[*model.Handle](injector)
	go watchReload(ctx, handle, logger)

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// watchReload reloads the model each time the process receives SIGHUP. A
// failed reload is logged by the handle, which keeps the previous model.
func watchReload(ctx context.Context, handle *model.Handle, logger *slog.Logger) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			logger.Info("reloading model", slog.String("signal", "SIGHUP"))
			_ = handle.Reload(ctx)
		}
	}
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// The model server client is resolved only for the remote backend.
	do.Provide(injector, func(i do.Injector) (*acl.ModelServerClient, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Client, "model-server", metrics, logger)
		remote, err := acl.NewModelServerClient(client, logger)
		if err != nil {
			return nil, err
		}
		do.MustInvoke[ports.HealthRegistry](i).Register(remote)
		return remote, nil
	})

	do.Provide(injector, func(i do.Injector) (*model.Handle, error) {
		var remote ports.ModelAdapter
		if cfg.Model.Backend == config.ModelBackendRemote {
			client, err := do.Invoke[*acl.ModelServerClient](i)
			if err != nil {
				return nil, err
			}
			remote = client
		}
		return model.Open(ctx, cfg.Model, remote, logger)
	})

	do.Provide(injector, func(i do.Injector) (*sqlite.Store, error) {
		store, err := sqlite.Open(ctx, cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("opening prediction history: %w", err)
		}
		do.MustInvoke[ports.HealthRegistry](i).Register(store)
		return store, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Classifier, error) {
		handle := do.MustInvoke[*model.Handle](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewArbitrator(handle, logger,
			app.WithModelTimeout(cfg.Model.Timeout),
			app.WithMetrics(metrics),
			app.WithBatchWorkers(cfg.Batch.MaxWorkers),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ClassifyHandler, error) {
		classifier := do.MustInvoke[ports.Classifier](i)
		opts := []handlers.ClassifyOption{handlers.WithMaxBatch(cfg.Batch.MaxItems)}
		if cfg.History.Enabled {
			store, err := do.Invoke[*sqlite.Store](i)
			if err != nil {
				return nil, err
			}
			opts = append(opts, handlers.WithHistory(store, cfg.History.RecentLimit))
		}
		return handlers.NewClassifyHandler(classifier, logger, opts...), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		handle := do.MustInvoke[*model.Handle](i)
		return handlers.NewHealthHandler(registry, handle), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.InfoHandler, error) {
		handle := do.MustInvoke[*model.Handle](i)
		return handlers.NewInfoHandler(handle, version, adapthttp.Endpoints(cfg.History.Enabled)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := adapthttp.Handlers{
			Classify: do.MustInvoke[*handlers.ClassifyHandler](i),
			Health:   do.MustInvoke[*handlers.HealthHandler](i),
			Info:     do.MustInvoke[*handlers.InfoHandler](i),
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h, cfg.CORS,
			middleware.Stack(logger, metrics, cfg.Server.WriteTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
