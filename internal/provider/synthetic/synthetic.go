package synthetic

import (
	"context"
	"math/rand"
	"time"

	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/history"
	"MarketPulse/internal/provider"
	"MarketPulse/pkg/util"
)

// seedPrices anchor symbols that have never been observed.
var seedPrices = map[string]float64{
	"SPY": 680,
	"QQQ": 617,
	"DIA": 481,
}

const defaultSeedPrice = 100

// simulatedLatencyMillis models the round trip a real secondary API would
// cost. It is reported, not slept, so the tier stays instant in tests.
const simulatedLatencyMillis = 100

// Provider is the SECONDARY tier: a synthetic model that anchors to the
// last-known price per symbol and perturbs it slightly. It stands in for a
// second external vendor and is defined to never fail.
type Provider struct {
	history *history.Store
	rng     *rand.Rand
}

func New(store *history.Store, rng *rand.Rand) *Provider {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Provider{history: store, rng: rng}
}

func (p *Provider) Tier() models.Source { return models.SourceSecondary }

func (p *Provider) Fetch(_ context.Context, symbols []string) *models.FetchResult {
	quotes := make([]models.Quote, 0, len(symbols))

	for _, symbol := range symbols {
		base := p.anchor(symbol)

		// -0.5% to +0.5% around the anchor
		variation := (p.rng.Float64() - 0.5) * 0.01
		price := util.Round2(base * (1 + variation))
		changePercent := util.Round4((p.rng.Float64() - 0.5) * 2)
		change := util.Round2(price * changePercent / 100)

		quotes = append(quotes, models.Quote{
			Symbol:        symbol,
			Name:          provider.IndexName(symbol),
			Price:         price,
			Change:        change,
			ChangePercent: changePercent,
			Sparkline:     provider.Sparkline(p.rng, price, provider.SparklineVolatility),
		})
	}

	return &models.FetchResult{
		Success:       true,
		Quotes:        quotes,
		Source:        models.SourceSecondary,
		LatencyMillis: simulatedLatencyMillis,
	}
}

func (p *Provider) anchor(symbol string) float64 {
	if e, ok := p.history.Lookup(symbol); ok {
		return e.Price
	}
	if seed, ok := seedPrices[symbol]; ok {
		return seed
	}
	return defaultSeedPrice
}
