package devapi

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/fletes/internal/devapi/config"
	"github.com/dmitrijs2005/fletes/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *Server
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	store := NewStore()
	if c.Seed {
		if err := Seed(store, time.Now()); err != nil {
			return nil, fmt.Errorf("seed error: %w", err)
		}
	}

	srv := NewServer(store, c.SecretKey, c.AccessTokenValidityDuration, logger)
	return &App{config: c, logger: logger, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until a termination signal arrives or ctx is done.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "seed", app.config.Seed)
	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx, app.config.EndpointAddr); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}
	return nil
}
