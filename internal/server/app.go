// Package server initializes and runs the main application server.
// It selects the storage backend, wires the authentication and schedule
// services, and handles graceful shutdown of the HTTP endpoint.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/campushub/campushub/internal/logging"
	"github.com/campushub/campushub/internal/server/accounts"
	"github.com/campushub/campushub/internal/server/auth"
	"github.com/campushub/campushub/internal/server/config"
	"github.com/campushub/campushub/internal/server/events"
	"github.com/campushub/campushub/internal/server/httpapi"
	"github.com/campushub/campushub/internal/server/password"
	"github.com/campushub/campushub/internal/server/shared/db"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager db.RepositoryManager
	httpSrv *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	handler := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(handler)

	var manager db.RepositoryManager
	var err error
	if cfg.DatabaseDSN == "" {
		logger.Warn(context.Background(), "no database DSN configured, using in-memory store")
		manager = db.NewInMemoryRepositoryManager()
	} else {
		manager, err = db.NewPostgresRepositoryManager(context.Background(), cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	}

	issuer := auth.NewIssuer([]byte(cfg.SecretKey), cfg.TokenValidityDuration)
	hasher := password.NewHasher(cfg.BcryptCost)

	accountService := accounts.NewService(manager.Accounts(), hasher, issuer, cfg.StoreTimeout)
	eventService := events.NewService(manager.Events(), cfg.StoreTimeout)

	httpSrv := httpapi.NewServer(cfg.EndpointAddrHTTP, logger, accountService, eventService, issuer)

	return &App{config: cfg, logger: logger, manager: manager, httpSrv: httpSrv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpSrv.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
