package synthetic

import (
	"math/rand"
	"testing"

	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/history"

	"github.com/stretchr/testify/require"
)

func TestFetch_AnchorsToHistory(t *testing.T) {
	store := history.NewStore()
	store.Observe("SPY", 700, 1000)
	p := New(store, rand.New(rand.NewSource(1)))

	res := p.Fetch(t.Context(), []string{"SPY"})
	require.True(t, res.Success)
	require.Equal(t, models.SourceSecondary, res.Source)
	require.Len(t, res.Quotes, 1)

	q := res.Quotes[0]
	// Perturbation is bounded by ±0.5% of the anchor.
	require.InDelta(t, 700, q.Price, 700*0.005+0.01)
	require.Greater(t, q.Price, 0.0)
}

func TestFetch_SeedsWhenNoHistory(t *testing.T) {
	p := New(history.NewStore(), rand.New(rand.NewSource(2)))

	res := p.Fetch(t.Context(), []string{"QQQ", "ZZZ"})
	require.True(t, res.Success)
	require.Len(t, res.Quotes, 2)
	require.InDelta(t, 617, res.Quotes[0].Price, 617*0.005+0.01)
	require.InDelta(t, 100, res.Quotes[1].Price, 100*0.005+0.01)
}

func TestFetch_QuoteShape(t *testing.T) {
	p := New(history.NewStore(), rand.New(rand.NewSource(3)))

	res := p.Fetch(t.Context(), []string{"DIA"})
	q := res.Quotes[0]
	require.Equal(t, "Dow Jones", q.Name)
	require.Len(t, q.Sparkline, 24)
	require.Equal(t, q.Price, q.Sparkline[23])
	require.GreaterOrEqual(t, q.ChangePercent, -1.0)
	require.LessOrEqual(t, q.ChangePercent, 1.0)
	require.EqualValues(t, 100, res.LatencyMillis)
}
