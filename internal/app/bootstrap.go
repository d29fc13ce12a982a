package app

import (
	"log/slog"

	"symbench/internal/infra"
	"symbench/internal/infra/storage"
)

// Bootstrap orchestrates the harness startup sequence
type Bootstrap struct {
	Config *infra.Config
	Store  *storage.Store // nil when run-history persistence is disabled
}

// NewBootstrap creates a new Bootstrap instance
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize loads configuration, installs the logger and opens the
// optional run-history store.
func (b *Bootstrap) Initialize() error {
	cfg, err := infra.LoadConfig("configs/config.yaml")
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	logger := infra.NewLogger(cfg)
	slog.SetDefault(logger)

	if cfg.Storage.Enabled {
		store, err := storage.NewStore(cfg.Storage.Path)
		if err != nil {
			return err
		}
		b.Store = store
		slog.Info("run-history store ready", slog.String("path", cfg.Storage.Path))
	}

	return nil
}
