package fallback

import (
	"context"
	"math/rand"
	"time"

	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/provider"
	"MarketPulse/pkg/util"
)

// staticPrices are the last-resort constants served when every live tier is
// unavailable.
var staticPrices = map[string]float64{
	"SPY": 680.59,
	"QQQ": 617.05,
	"DIA": 481.15,
	"IWM": 224.80,
	"VTI": 285.40,
}

const defaultStaticPrice = 100

// fallbackVolatility keeps static sparklines visibly calmer than live ones.
const fallbackVolatility = 0.008

// Provider is the FALLBACK tier: static per-symbol constants with a small
// random day change. It always succeeds and costs nothing, so its reported
// latency is zero.
type Provider struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Provider {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Provider{rng: rng}
}

func (p *Provider) Tier() models.Source { return models.SourceFallback }

func (p *Provider) Fetch(_ context.Context, symbols []string) *models.FetchResult {
	quotes := make([]models.Quote, 0, len(symbols))

	for _, symbol := range symbols {
		price, ok := staticPrices[symbol]
		if !ok {
			price = defaultStaticPrice
		}
		changePercent := util.Round4((p.rng.Float64() - 0.5) * 2)
		change := util.Round2(price * changePercent / 100)

		quotes = append(quotes, models.Quote{
			Symbol:        symbol,
			Name:          provider.IndexName(symbol),
			Price:         price,
			Change:        change,
			ChangePercent: changePercent,
			Sparkline:     provider.Sparkline(p.rng, price, fallbackVolatility),
		})
	}

	return &models.FetchResult{
		Success:       true,
		Quotes:        quotes,
		Source:        models.SourceFallback,
		LatencyMillis: 0,
	}
}
