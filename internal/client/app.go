package client

import (
	"context"
	"errors"
	"fmt"

	"dogfetch/internal/config"
	"dogfetch/internal/logger"
	"dogfetch/internal/service"
	"dogfetch/internal/tui"
)

// App ties the terminal UI and the background storage purge job into one
// process lifecycle.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  config.ClientWorkers
	log      *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client: nil services")
	}
	if ui == nil {
		return nil, errors.New("client: nil ui")
	}
	return &App{services: services, ui: ui, workers: workers, log: log}, nil
}

// Run starts the purge job, hands control to the UI, and blocks until the
// user leaves. A quit from the login screen is a normal exit.
func (a *App) Run() error {
	ctx := context.Background()

	a.services.PurgeJob.Start(ctx, a.workers.PurgeInterval)
	defer a.services.PurgeJob.Stop()

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
