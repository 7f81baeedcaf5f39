package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

type runner interface {
	Start(context.Context) error
	Stop(context.Context) error
	Done() <-chan os.Signal
}

// run starts app and blocks until ctx is cancelled or the app asks to shut down.
func run(ctx context.Context, app runner) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		return fmt.Errorf("failed to stop application: %w", err)
	}
	return nil
}

var _ runner = (*fx.App)(nil)
