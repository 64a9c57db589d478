package app

import (
	"fmt"
	"time"

	"github.com/bobmcallan/myxview/internal/clients/predict"
	"github.com/bobmcallan/myxview/internal/common"
	"github.com/bobmcallan/myxview/internal/interfaces"
	"github.com/bobmcallan/myxview/internal/services/market"
	"github.com/bobmcallan/myxview/internal/services/watchlist"
	"github.com/bobmcallan/myxview/internal/storage"
)

// App holds all application dependencies and wires them together.
type App struct {
	Config  *common.Config
	Logger  *common.Logger
	Storage interfaces.StorageManager

	MarketService    interfaces.MarketService
	WatchlistService interfaces.WatchlistService
	PredictClient    interfaces.PredictClient

	StartupTime time.Time
}

// NewApp creates the application from configuration files, resolving the
// storage layer, services and outbound clients in dependency order.
func NewApp(configPaths ...string) (*App, error) {
	cfg, err := common.LoadConfig(configPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(&cfg.Logging)

	logger.Info().
		Str("environment", cfg.Environment).
		Str("version", common.GetVersion()).
		Msg("Starting myxview")

	storageManager, err := storage.NewManager(logger, &cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	marketService := market.NewService(storageManager, logger)
	watchlistService := watchlist.NewService(storageManager, logger)

	predictClient := predict.NewClient(cfg.Clients.Predict.BaseURL,
		predict.WithLogger(logger),
		predict.WithRateLimit(cfg.Clients.Predict.RateLimit),
		predict.WithTimeout(cfg.Clients.Predict.GetTimeout()),
	)

	return &App{
		Config:           cfg,
		Logger:           logger,
		Storage:          storageManager,
		MarketService:    marketService,
		WatchlistService: watchlistService,
		PredictClient:    predictClient,
		StartupTime:      time.Now(),
	}, nil
}

// Close releases application resources.
func (a *App) Close() {
	if a.Storage != nil {
		if err := a.Storage.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Error closing storage")
		}
	}
	a.Logger.Info().Msg("Application shut down")
}
