// Package app wires configuration, logging, storage and the product store
// into one application instance shared by the server and the CLI.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/poolshark1904/gestao-produtos/internal/adapter/qrcode"
	"github.com/poolshark1904/gestao-produtos/internal/config"
	"github.com/poolshark1904/gestao-produtos/internal/core/service"
)

type Application struct {
	Config  *config.Config
	Logger  *zap.Logger
	Storage Storage
	Store   *service.ProductStore
}

// New opens storage and builds the product store. The caller owns Close.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Application, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ids, err := service.NewIDGenerator(cfg.Store.IDScheme)
	if err != nil {
		return nil, err
	}

	kv, err := OpenStorage(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	logger.Info("storage opened", zap.String("driver", cfg.Storage.Driver))

	store := service.NewProductStore(
		kv,
		qrcode.NewClient(cfg.QR.Endpoint, cfg.QR.Timeout),
		service.WithIDGenerator(ids),
		service.WithLogger(logger.Named("store")),
	)

	return &Application{
		Config:  cfg,
		Logger:  logger,
		Storage: kv,
		Store:   store,
	}, nil
}

func (a *Application) Close() error {
	_ = a.Logger.Sync()
	return a.Storage.Close()
}
