package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/PixelDavon/SmartReminder/internal/app"
	"github.com/PixelDavon/SmartReminder/internal/config"
	"github.com/PixelDavon/SmartReminder/internal/logging"
	"github.com/PixelDavon/SmartReminder/internal/notify"
	"github.com/PixelDavon/SmartReminder/internal/storage"
)

// runtime wires config, logger, snapshot store, notification engine and the
// app context together for one command invocation.
type runtime struct {
	cfg    *config.Config
	log    *zap.Logger
	store  *storage.SQLiteStore
	engine *notify.Engine
	app    *app.App
}

func openRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	store, err := storage.OpenSQLite(cfg.Database.Path, log)
	if err != nil {
		return nil, err
	}

	engine := notify.NewEngine(cfg.Notifications.BufferSize)
	engine.Start()

	a, err := app.New(ctx, store, engine,
		app.WithLogger(log),
		app.WithPolicy(cfg.Policy()),
	)
	if err != nil {
		engine.Stop()
		_ = store.Close()
		return nil, err
	}

	return &runtime{cfg: cfg, log: log, store: store, engine: engine, app: a}, nil
}

func (r *runtime) close(ctx context.Context) {
	if err := r.app.Close(ctx); err != nil {
		r.log.Error("final snapshot flush failed", zap.Error(err))
	}
	r.engine.Stop()
	if err := r.store.Close(); err != nil {
		r.log.Warn("closing snapshot store failed", zap.Error(err))
	}
	_ = r.log.Sync()
}

// withRuntime runs fn against a fully wired runtime and tears it down after.
func withRuntime(ctx context.Context, fn func(*runtime) error) error {
	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.close(ctx)
	return fn(rt)
}
