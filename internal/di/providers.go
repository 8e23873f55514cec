package di

import (
	"time"

	"MarketPulse/internal/anomaly"
	"MarketPulse/internal/domain/repository"
	"MarketPulse/internal/handler/api"
	"MarketPulse/internal/history"
	"MarketPulse/internal/journal"
	"MarketPulse/internal/news"
	"MarketPulse/internal/provider"
	"MarketPulse/internal/provider/fallback"
	finnhubquotes "MarketPulse/internal/provider/finnhub"
	"MarketPulse/internal/provider/synthetic"
	"MarketPulse/internal/usecase"
	"MarketPulse/pkg/config"
	"MarketPulse/pkg/logger"
	"MarketPulse/pkg/metrics"
	"MarketPulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideHistory creates the shared last-known-price store.
func ProvideHistory() *history.Store {
	return history.NewStore()
}

// ProvideJournal creates the capped anomaly journal.
func ProvideJournal() *journal.Journal {
	return journal.New(journal.DefaultCapacity)
}

// ProvideValidator creates the anomaly validator over the price history.
func ProvideValidator(store *history.Store) *anomaly.Validator {
	return anomaly.NewValidator(store, nil, nil)
}

// ProvideOrchestrator assembles the failover chain. Without a Finnhub API
// key the primary tier is absent and every cycle starts at the secondary.
func ProvideOrchestrator(
	cfg *config.Config,
	store *history.Store,
	validator *anomaly.Validator,
	jrnl *journal.Journal,
	m repository.Metrics,
	l *logger.Logger,
) *usecase.Orchestrator {
	var primary provider.Provider
	if cfg.HasCredential() {
		primary = finnhubquotes.New(
			cfg.Finnhub.APIKey,
			cfg.Finnhub.BaseURL,
			cfg.Finnhub.RequestInterval,
			cfg.Finnhub.Timeout,
			nil,
			l,
		)
	}
	return usecase.NewOrchestrator(
		primary,
		synthetic.New(store, nil),
		fallback.New(nil),
		validator,
		jrnl,
		m,
		l,
	)
}

// ProvideSentimentService wires the news feed behind a TTL cache. The
// synthetic feed doubles as the backup when the live feed fails.
func ProvideSentimentService(cfg *config.Config, m repository.Metrics, l *logger.Logger) *usecase.SentimentService {
	backup := news.NewSyntheticFeed(nil, nil)

	var feed news.Feed = backup
	if cfg.News.Source == "finnhub" && cfg.HasCredential() {
		feed = news.NewFinnhubFeed(cfg.Finnhub.APIKey, cfg.Finnhub.BaseURL, cfg.News.Timeout, nil)
	}

	ttl := cfg.News.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return usecase.NewSentimentService(news.NewCachedFeed(feed, ttl), backup, m, l)
}

// ProvideMarketHandler creates the HTTP handler for the orchestration API.
func ProvideMarketHandler(
	l *logger.Logger,
	orchestrator *usecase.Orchestrator,
	sentiment *usecase.SentimentService,
	jrnl *journal.Journal,
	cfg *config.Config,
) *api.MarketHandler {
	return api.NewMarketHandler(l, orchestrator, sentiment, jrnl, cfg.Orchestrator.DefaultSymbols, cfg.Orchestrator.RequestTimeout)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *logger.Logger, h *api.MarketHandler) *server.App {
	return server.New(cfg, l, h)
}
