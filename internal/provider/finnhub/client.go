package finnhub

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/provider"
	xhttp "MarketPulse/pkg/http"
	xlogger "MarketPulse/pkg/logger"

	"golang.org/x/time/rate"
)

// quotePayload is Finnhub's /quote response shape.
type quotePayload struct {
	C  float64 `json:"c"`  // current price
	D  float64 `json:"d"`  // change
	DP float64 `json:"dp"` // percent change
	H  float64 `json:"h"`
	L  float64 `json:"l"`
	O  float64 `json:"o"`
	PC float64 `json:"pc"` // previous close
}

// Client is the PRIMARY quote tier backed by the Finnhub REST API.
//
// Symbols are fetched sequentially, paced by a rate limiter so the free-plan
// request budget holds regardless of batch size. A single bad symbol aborts
// the whole batch: partial primary data is treated as untrustworthy as a
// whole rather than silently mixed with other tiers.
type Client struct {
	apiKey  string
	baseURL string
	client  *xhttp.Client
	limiter *rate.Limiter
	rng     *rand.Rand
	logger  *xlogger.Logger
}

// New creates a Finnhub quote client. interval is the minimum spacing
// between per-symbol requests.
func New(apiKey, baseURL string, interval, timeout time.Duration, rng *rand.Rand, logger *xlogger.Logger) *Client {
	if baseURL == "" {
		baseURL = "https://finnhub.io/api/v1"
	}
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		rng:     rng,
		logger:  logger,
	}
}

func (c *Client) Tier() models.Source { return models.SourcePrimary }

// Fetch retrieves quotes for all symbols or fails the batch as a whole.
func (c *Client) Fetch(ctx context.Context, symbols []string) *models.FetchResult {
	start := time.Now()
	quotes := make([]models.Quote, 0, len(symbols))

	for _, symbol := range symbols {
		if err := c.limiter.Wait(ctx); err != nil {
			return c.failure(start, fmt.Sprintf("rate limiter: %v", err))
		}

		var payload quotePayload
		err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
			Method: xhttp.MethodGet,
			URL:    c.baseURL + "/quote",
			QueryParams: map[string][]string{
				"symbol": {symbol},
				"token":  {c.apiKey},
			},
		}, &payload)
		if err != nil {
			var se *xhttp.StatusError
			if errors.As(err, &se) {
				if c.logger != nil {
					c.logger.Warn("primary fetch rejected",
						xlogger.String("symbol", symbol),
						xlogger.Int("status", se.StatusCode))
				}
				return c.failure(start, fmt.Sprintf("HTTP %d from Finnhub", se.StatusCode))
			}
			return c.failure(start, err.Error())
		}

		if payload.C <= 0 {
			if c.logger != nil {
				c.logger.Warn("primary fetch returned no valid data", xlogger.String("symbol", symbol))
			}
			return c.failure(start, "invalid quote data received")
		}

		quotes = append(quotes, models.Quote{
			Symbol:        symbol,
			Name:          provider.IndexName(symbol),
			Price:         payload.C,
			Change:        payload.D,
			ChangePercent: payload.DP,
			Sparkline:     provider.Sparkline(c.rng, payload.C, provider.SparklineVolatility),
		})
	}

	return &models.FetchResult{
		Success:       true,
		Quotes:        quotes,
		Source:        models.SourcePrimary,
		LatencyMillis: time.Since(start).Milliseconds(),
	}
}

func (c *Client) failure(start time.Time, reason string) *models.FetchResult {
	return &models.FetchResult{
		Success:       false,
		Source:        models.SourcePrimary,
		LatencyMillis: time.Since(start).Milliseconds(),
		Error:         reason,
	}
}
