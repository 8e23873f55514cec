package provider

import (
	"context"
	"math/rand"

	"MarketPulse/internal/domain/models"
)

// Provider is one quote source tier. Failures ride inside the FetchResult
// rather than a Go error so the orchestrator can treat every tier uniformly.
type Provider interface {
	Tier() models.Source
	Fetch(ctx context.Context, symbols []string) *models.FetchResult
}

// SparklinePoints is the fixed length of the synthetic intraday series.
const SparklinePoints = 24

// SparklineVolatility is the per-step perturbation applied when synthesizing
// a sparkline from a live price.
const SparklineVolatility = 0.008

var indexNames = map[string]string{
	"SPY": "S&P 500",
	"QQQ": "NASDAQ 100",
	"DIA": "Dow Jones",
	"IWM": "Russell 2000",
	"VTI": "Total Market",
}

// IndexName resolves the display name for a symbol, falling back to the
// symbol itself.
func IndexName(symbol string) string {
	if name, ok := indexNames[symbol]; ok {
		return name
	}
	return symbol
}

// Sparkline synthesizes an intraday series around base. The walk starts
// slightly below base with a mild upward drift, and the last point is pinned
// to base so the series always ends at the quoted price. It is a visual aid
// only; nothing downstream computes on it.
func Sparkline(rng *rand.Rand, base, volatility float64) []float64 {
	points := make([]float64, 0, SparklinePoints)
	current := base * 0.995
	for i := 0; i < SparklinePoints; i++ {
		current = current * (1 + (rng.Float64()-0.4)*volatility)
		points = append(points, current)
	}
	points[len(points)-1] = base
	return points
}
