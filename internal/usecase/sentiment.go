package usecase

import (
	"context"
	"time"

	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/domain/repository"
	"MarketPulse/internal/news"
	"MarketPulse/internal/sentiment"
	xlogger "MarketPulse/pkg/logger"
)

// SentimentService aggregates reliability-weighted sentiment per symbol from
// the configured news feed. A failing feed degrades to the synthetic backup
// instead of erroring, mirroring the quote tiers.
type SentimentService struct {
	feed    news.Feed
	backup  news.Feed
	metrics repository.Metrics
	logger  *xlogger.Logger
	now     func() time.Time
}

func NewSentimentService(feed, backup news.Feed, metrics repository.Metrics, logger *xlogger.Logger) *SentimentService {
	return &SentimentService{
		feed:    feed,
		backup:  backup,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Analyze fetches the current article batch and aggregates it per symbol.
func (s *SentimentService) Analyze(ctx context.Context, symbols []string) models.SentimentResponse {
	articles, err := s.feed.Fetch(ctx, symbols)
	if err != nil && s.backup != nil {
		if s.logger != nil {
			s.logger.Warn("news feed failed, using synthetic articles", xlogger.Error(err))
		}
		articles, _ = s.backup.Fetch(ctx, symbols)
	}
	if articles == nil {
		articles = []models.NewsArticle{}
	}

	results := make([]models.WeightedSentimentResult, 0, len(symbols))
	for _, symbol := range symbols {
		res := sentiment.Aggregate(symbol, articles)
		results = append(results, res)
		if s.metrics != nil {
			s.metrics.RecordSentimentAggregation()
		}
		if s.logger != nil {
			s.logger.Debug("sentiment aggregated",
				xlogger.String("symbol", symbol),
				xlogger.Float64("raw", res.RawSentiment),
				xlogger.Float64("weighted", res.WeightedSentiment),
				xlogger.Int("articles", res.ArticleCount),
				xlogger.Float64("confidence", res.Confidence))
		}
	}

	if s.metrics != nil {
		s.metrics.RecordArticles(len(articles))
	}

	return models.SentimentResponse{
		Results:  results,
		Articles: articles,
		Metadata: models.SentimentMetadata{
			TotalArticles:       len(articles),
			AverageSourceWeight: sentiment.AverageWeight(articles),
			Timestamp:           s.now().UTC().Format(time.RFC3339),
		},
	}
}
