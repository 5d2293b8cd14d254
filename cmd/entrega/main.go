package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"entrega-tracker/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	container := app.MustBuildContainer(ctx)
	code := app.MustRun(container)
	cancel()
	os.Exit(code)
}
