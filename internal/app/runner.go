package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"go.uber.org/dig"

	"entrega-tracker/internal/cli"
	"entrega-tracker/internal/config"
	"entrega-tracker/internal/http/debugserver"
	"entrega-tracker/internal/logx"
)

// MustRun executes one CLI command using the provided DI container and
// returns the process exit code.
func MustRun(container *dig.Container) int {
	code, err := run(container)
	if err != nil {
		log.Fatalf("run error: %v", err)
	}
	return code
}

func run(container *dig.Container) (int, error) {
	var code int
	err := container.Invoke(func(ctx context.Context, cfg *config.Config, app *cli.App, logger logx.Logger) {
		srv := startDebugServer(cfg, logger)
		code = app.Run(ctx, cfg.Args)
		stopDebugServer(srv, logger, 2*time.Second)
	})
	return code, err
}

// startDebugServer exposes pprof and metrics while the command runs.
// An empty address disables it, which is the normal CLI case.
func startDebugServer(cfg *config.Config, logger logx.Logger) *http.Server {
	if cfg.Debug.Addr == "" {
		return nil
	}

	srv := &http.Server{
		Addr:              cfg.Debug.Addr,
		Handler:           debugserver.Handler(debugserver.Config{User: cfg.Debug.User, Pass: cfg.Debug.Pass}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("debug server listening", logx.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("debug server error", logx.Any("err", err))
		}
	}()
	return srv
}

func stopDebugServer(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	if srv == nil {
		return
	}
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("debug server shutdown error", logx.Any("err", err))
	}
}
