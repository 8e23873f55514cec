package news

import (
	"context"
	"fmt"
	"strings"
	"time"

	"MarketPulse/internal/domain/models"
	"MarketPulse/pkg/util"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
)

// finnhubArticle is Finnhub's /company-news item shape.
type finnhubArticle struct {
	Category string `json:"category"`
	Datetime int64  `json:"datetime"` // unix seconds
	Headline string `json:"headline"`
	ID       int64  `json:"id"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// FinnhubFeed pulls company news from the Finnhub REST API and estimates a
// headline sentiment by keyword polarity. Transient upstream failures are
// retried with exponential backoff.
type FinnhubFeed struct {
	apiKey  string
	baseURL string
	client  *resty.Client
	now     func() time.Time
}

func NewFinnhubFeed(apiKey, baseURL string, timeout time.Duration, now func() time.Time) *FinnhubFeed {
	if baseURL == "" {
		baseURL = "https://finnhub.io/api/v1"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if now == nil {
		now = time.Now
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", "marketpulse/1.0")

	return &FinnhubFeed{apiKey: apiKey, baseURL: baseURL, client: client, now: now}
}

func (f *FinnhubFeed) Fetch(ctx context.Context, symbols []string) ([]models.NewsArticle, error) {
	now := f.now()
	from := now.Add(-24 * time.Hour).Format("2006-01-02")
	to := now.Format("2006-01-02")

	articles := make([]models.NewsArticle, 0, len(symbols)*4)
	for _, symbol := range symbols {
		batch, err := f.fetchSymbol(ctx, symbol, from, to)
		if err != nil {
			return nil, fmt.Errorf("company news %s: %w", symbol, err)
		}
		articles = append(articles, batch...)
	}
	return articles, nil
}

func (f *FinnhubFeed) fetchSymbol(ctx context.Context, symbol, from, to string) ([]models.NewsArticle, error) {
	var payload []finnhubArticle

	operation := func() error {
		resp, err := f.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"symbol": symbol,
				"from":   from,
				"to":     to,
				"token":  f.apiKey,
			}).
			SetResult(&payload).
			Get(f.baseURL + "/company-news")
		if err != nil {
			return err
		}
		if resp.IsError() {
			return fmt.Errorf("finnhub news status %d", resp.StatusCode())
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 10 * time.Second
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, err
	}

	out := make([]models.NewsArticle, 0, len(payload))
	for _, a := range payload {
		if a.Headline == "" {
			continue
		}
		out = append(out, models.NewsArticle{
			ID:             fmt.Sprintf("news_%d", a.ID),
			Source:         a.Source,
			Headline:       a.Headline,
			Summary:        a.Summary,
			Sentiment:      EstimateSentiment(a.Headline),
			URL:            a.URL,
			PublishedAt:    time.Unix(a.Datetime, 0).UTC().Format(time.RFC3339),
			RelatedSymbols: []string{symbol},
		})
	}
	return out, nil
}

var positiveTerms = []string{
	"rally", "surge", "beat", "upgrade", "gain", "record", "strong",
	"growth", "rise", "jump", "bullish", "resilien",
}

var negativeTerms = []string{
	"fall", "drop", "miss", "downgrade", "loss", "weak", "cut",
	"fear", "plunge", "decline", "bearish", "concern", "volatil",
}

// EstimateSentiment scores a headline in [-1, 1] by keyword polarity. Crude,
// but enough signal for the weighting layer to work with.
func EstimateSentiment(headline string) float64 {
	lower := strings.ToLower(headline)
	score := 0.0
	for _, term := range positiveTerms {
		if strings.Contains(lower, term) {
			score += 0.25
		}
	}
	for _, term := range negativeTerms {
		if strings.Contains(lower, term) {
			score -= 0.25
		}
	}
	return util.Clamp(score, -1, 1)
}
