package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkozyrev/tablesync/internal/adapter"
	"github.com/dkozyrev/tablesync/internal/config"
	"github.com/dkozyrev/tablesync/internal/logger"
	"github.com/dkozyrev/tablesync/internal/service"
	"github.com/dkozyrev/tablesync/internal/store"
	"github.com/dkozyrev/tablesync/internal/workers"
)

// tokenRenewalNotifier is implemented by adapters that can report a renewed
// access token so it can be persisted across restarts.
type tokenRenewalNotifier interface {
	OnTokenRenewed(fn func(token string))
}

// App is the assembled sync client: storages, adapter, services, and
// background workers.
type App struct {
	cfg      *config.StructuredConfig
	log      *logger.Logger
	storages *store.ClientStorages
	server   adapter.ServerAdapter
	services *service.Services
	workers  *workers.Workers
}

// NewApp builds the client from configuration. callbacks may be nil when the
// host application does not observe sync progress.
func NewApp(cfg *config.StructuredConfig, callbacks service.Callbacks, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	server, err := adapter.NewHTTPServerAdapter(cfg.API, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	// restore the session persisted by a previous run
	ctx := context.Background()
	token, err := storages.Settings.Get(ctx, store.SettingAccessToken)
	if err != nil && !errors.Is(err, store.ErrSettingNotFound) {
		return nil, fmt.Errorf("restore access token: %w", err)
	}
	server.SetToken(token)

	if notifier, ok := server.(tokenRenewalNotifier); ok {
		notifier.OnTokenRenewed(func(renewed string) {
			if err := storages.Settings.Set(context.Background(), store.SettingAccessToken, renewed); err != nil {
				log.Error().Err(err).
					Str("func", "client.NewApp").Msg("persisting renewed token failed")
			}
		})
	}

	channel, err := adapter.NewWebsocketChannel(cfg.API, server.Token, log)
	if err != nil {
		return nil, fmt.Errorf("create live channel: %w", err)
	}

	services := service.NewServices(storages, server, channel, cfg.Sync, callbacks, log)

	return &App{
		cfg:      cfg,
		log:      log,
		storages: storages,
		server:   server,
		services: services,
		workers: workers.New(
			workers.NewSyncJobWorker(services.SyncJob, cfg.Sync.Interval),
			workers.NewLiveListenerWorker(services.LiveListener, 0, log),
		),
	}, nil
}

// SetAccessToken stores the session token and persists it for future runs.
func (a *App) SetAccessToken(ctx context.Context, token string) error {
	a.server.SetToken(token)
	return a.storages.Settings.Set(ctx, store.SettingAccessToken, token)
}

// Services exposes the service layer to the host application.
func (a *App) Services() *service.Services {
	return a.services
}

// Run performs an initial full sync and starts the background workers. It
// returns once the workers are started; they stop when ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if _, err := a.services.SyncService.Sync(ctx); err != nil {
		a.log.Warn().Err(err).
			Str("func", "App.Run").Msg("initial sync failed")
	}

	a.workers.Run(ctx)
	return nil
}
