// Package app wires configuration, storage, catalogs and services into a
// running application for the configured skin. The screen layer sits above
// this package and consumes the services it exposes.
package app

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/dailydeck/internal/catalog"
	"github.com/ternarybob/dailydeck/internal/common"
	"github.com/ternarybob/dailydeck/internal/gesture"
	"github.com/ternarybob/dailydeck/internal/interfaces"
	"github.com/ternarybob/dailydeck/internal/models"
	"github.com/ternarybob/dailydeck/internal/pricing"
	"github.com/ternarybob/dailydeck/internal/services/daily"
	"github.com/ternarybob/dailydeck/internal/services/notify"
	"github.com/ternarybob/dailydeck/internal/services/preferences"
	"github.com/ternarybob/dailydeck/internal/services/saved"
	"github.com/ternarybob/dailydeck/internal/services/speech"
	"github.com/ternarybob/dailydeck/internal/storage"
)

// Capabilities are the platform surfaces the host provides. Either may be
// nil; missing capabilities degrade to no-ops so the core keeps working.
type Capabilities struct {
	Haptics     interfaces.Haptics
	Synthesizer interfaces.Synthesizer
}

// App holds all application components and dependencies
type App struct {
	Config  *common.Config
	Logger  arbor.ILogger
	Storage interfaces.KeyValueStorage

	// Catalogs (immutable after load)
	Cards  *catalog.Cards
	Stocks *catalog.Stocks

	// Services
	DailyService       *daily.Service
	NotesService       *saved.Service[models.KnowledgeCard]
	WatchlistService   *saved.Service[models.Stock]
	PreferencesService *preferences.Service
	NotifyService      *notify.Service
	SpeechService      *speech.Service

	// Gesture tuning shared by every card engine the screen layer creates
	GestureConfig gesture.Config
	Haptics       interfaces.Haptics

	scheduler *cron.Cron
	anchor    time.Time
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger, caps Capabilities) (*App, error) {
	app := &App{
		Config:        cfg,
		Logger:        logger,
		GestureConfig: gesture.ConfigFrom(cfg.Interaction),
		Haptics:       caps.Haptics,
	}
	if app.Haptics == nil {
		app.Haptics = noopHaptics{}
	}
	synth := caps.Synthesizer
	if synth == nil {
		synth = noopSynthesizer{}
	}

	anchor, err := common.ParseISODate(cfg.Pricing.AnchorDate)
	if err != nil {
		return nil, fmt.Errorf("invalid pricing anchor date: %w", err)
	}
	app.anchor = anchor

	// Notifier first so storage degradation can surface to the user
	app.NotifyService = notify.NewService(cfg.Interaction.SnackbarDelay(), logger)

	store, storeErr := storage.NewKeyValueStorage(logger, cfg)
	app.Storage = store
	if storeErr != nil {
		app.NotifyService.Show("Saved data is unavailable this session", interfaces.NotificationError)
	}

	if err := app.loadCatalogs(); err != nil {
		return nil, err
	}

	if err := app.initServices(synth); err != nil {
		return nil, err
	}

	if err := app.initScheduler(); err != nil {
		return nil, err
	}

	logger.Info().
		Str("skin", cfg.App.Skin).
		Str("date", app.DailyService.Date()).
		Msg("Application initialization complete")

	return app, nil
}

// loadCatalogs loads and validates the embedded content catalogs
func (a *App) loadCatalogs() error {
	var err error

	a.Cards, err = catalog.LoadCards()
	if err != nil {
		return fmt.Errorf("failed to load card catalog: %w", err)
	}
	a.Stocks, err = catalog.LoadStocks()
	if err != nil {
		return fmt.Errorf("failed to load stock catalog: %w", err)
	}

	a.Logger.Debug().
		Int("cards", a.Cards.Size()).
		Int("stocks", a.Stocks.Size()).
		Msg("Catalogs loaded")
	return nil
}

// initServices initializes all business services in dependency order
func (a *App) initServices(synth interfaces.Synthesizer) error {
	var err error

	switch a.Config.App.Skin {
	case common.SkinKnowledge:
		a.DailyService, err = daily.NewService(a.Cards, daily.KnowledgeSlots(), a.Logger)
	case common.SkinStocks:
		a.DailyService, err = daily.NewService(a.Stocks, daily.StockSlots(), a.Logger)
	default:
		return fmt.Errorf("unknown skin %q", a.Config.App.Skin)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize daily selection: %w", err)
	}
	a.Logger.Debug().Str("skin", a.Config.App.Skin).Msg("Daily selection service initialized")

	maxEntries := a.Config.Saved.MaxEntries
	a.NotesService = saved.NewService("notes-storage",
		func(c models.KnowledgeCard) string { return c.ID },
		maxEntries, a.Storage, a.Logger)
	a.WatchlistService = saved.NewService("watchlist-storage",
		func(s models.Stock) string { return s.Ticker },
		maxEntries, a.Storage, a.Logger)

	a.PreferencesService = preferences.NewService(a.Storage, a.Logger)
	a.SpeechService = speech.NewService(synth, a.Logger)

	return nil
}

// initScheduler registers the daily refresh job. The stores never reset by
// time on their own; this is the explicit refresh trigger.
func (a *App) initScheduler() error {
	if !a.Config.Refresh.Enabled {
		a.Logger.Debug().Msg("Scheduled refresh disabled")
		return nil
	}

	a.scheduler = cron.New()
	_, err := a.scheduler.AddFunc(a.Config.Refresh.Schedule, func() {
		a.Logger.Info().Msg("Scheduled daily refresh")
		a.RefreshDaily()
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", a.Config.Refresh.Schedule, err)
	}
	a.scheduler.Start()
	a.Logger.Debug().Str("schedule", a.Config.Refresh.Schedule).Msg("Refresh scheduler started")
	return nil
}

// RefreshDaily recomputes today's picks and clears the day's decisions
func (a *App) RefreshDaily() {
	a.DailyService.Refresh()
}

// NewSwipeEngine creates a gesture engine for one card using the configured
// tuning, routing threshold haptics to the platform capability. onDecision
// receives the committed outcome once the fly-away animation completes.
func (a *App) NewSwipeEngine(onDecision func(models.DecisionKind)) *gesture.Engine {
	return gesture.NewEngine(a.GestureConfig, gesture.Callbacks{
		OnHaptic:   a.Haptics.Impact,
		OnDecision: onDecision,
	})
}

// PriceSeries generates the synthetic daily close history for a stock,
// ending on the configured anchor date.
func (a *App) PriceSeries(stock models.Stock) []models.PricePoint {
	return pricing.Generate(stock.Ticker, a.anchor, pricing.Params{
		StartPrice: stock.StartPrice,
		Days:       a.Config.Pricing.HistoryDays,
		Volatility: stock.Volatility,
		Drift:      stock.Drift,
	})
}

// Quote summarizes a stock's generated series into its displayed quote
func (a *App) Quote(stock models.Stock) models.Quote {
	return pricing.Summarize(a.PriceSeries(stock))
}

// Close closes all application resources
func (a *App) Close() error {
	if a.scheduler != nil {
		ctx := a.scheduler.Stop()
		<-ctx.Done()
		a.Logger.Info().Msg("Refresh scheduler stopped")
	}

	if a.SpeechService != nil {
		a.SpeechService.Stop()
	}

	if a.Storage != nil {
		if err := a.Storage.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
		a.Logger.Info().Msg("Storage closed")
	}

	return nil
}

type noopHaptics struct{}

func (noopHaptics) Impact() {}

type noopSynthesizer struct{}

func (noopSynthesizer) Speak(script string, done func()) error { return nil }
func (noopSynthesizer) Stop()                                  {}
