package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-resizer/internal/adapter/handler"
	"github.com/marcos-nsantos/image-resizer/internal/domain/entity"
	"github.com/marcos-nsantos/image-resizer/internal/infrastructure/config"
	"github.com/marcos-nsantos/image-resizer/internal/infrastructure/observability"
	"github.com/marcos-nsantos/image-resizer/internal/infrastructure/server"
	"github.com/marcos-nsantos/image-resizer/internal/infrastructure/storage"
	"github.com/marcos-nsantos/image-resizer/internal/usecase/clean"
	"github.com/marcos-nsantos/image-resizer/internal/usecase/resize"
)

type appKey struct{}

type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	resizeSvc *resize.Service
	cleanSvc  *clean.Service
}

func bootstrap(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Log, "imagectl")
	if err != nil {
		return err
	}

	store, err := storage.New(c.Context, cfg)
	if err != nil {
		return fmt.Errorf("creating object store: %w", err)
	}

	a := &app{
		cfg:       cfg,
		logger:    logger,
		resizeSvc: resize.NewService(store, storage.NewImageProcessor(), cfg.Resizer, logger),
		cleanSvc:  clean.NewService(store, logger),
	}
	c.Context = context.WithValue(c.Context, appKey{}, a)
	return nil
}

func shutdown(c *cli.Context) error {
	if a, ok := c.Context.Value(appKey{}).(*app); ok {
		_ = a.logger.Sync()
	}
	return nil
}

func fromContext(c *cli.Context) (*app, error) {
	a, ok := c.Context.Value(appKey{}).(*app)
	if !ok {
		return nil, fmt.Errorf("application not initialized")
	}
	return a, nil
}

func runResize(c *cli.Context) error {
	a, err := fromContext(c)
	if err != nil {
		return err
	}

	if c.NArg() == 0 {
		return fmt.Errorf("at least one key is required")
	}

	records := make([]entity.ObjectRef, 0, c.NArg())
	for _, key := range c.Args().Slice() {
		records = append(records, entity.NewObjectRef(c.String("bucket"), key))
	}

	result, err := a.resizeSvc.Resize(c.Context, records)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "status: %s (processed %d, skipped %d)\n", result.Status, result.Processed, result.Skipped)
	return nil
}

func runClean(c *cli.Context) error {
	a, err := fromContext(c)
	if err != nil {
		return err
	}

	result, err := a.cleanSvc.Clean(c.Context)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, result.Status)
	return nil
}

func runServe(c *cli.Context) error {
	a, err := fromContext(c)
	if err != nil {
		return err
	}

	router := server.NewRouter(server.RouterConfig{
		ResizeHandler: handler.NewResizeHandler(a.resizeSvc, a.logger),
		CleanHandler:  handler.NewCleanHandler(a.cleanSvc, a.logger),
		Logger:        a.logger,
		Environment:   a.cfg.Server.Environment,
	})

	srv := server.NewServer(server.ServerConfig{
		Port:         a.cfg.Server.Port,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		Handler:      router.Engine(),
		Logger:       a.logger,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		a.logger.Error("server shutdown error", zap.Error(err))
		return err
	}

	a.logger.Info("server stopped")
	return nil
}
