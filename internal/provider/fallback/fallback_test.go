package fallback

import (
	"math/rand"
	"testing"

	"MarketPulse/internal/domain/models"

	"github.com/stretchr/testify/require"
)

func TestFetch_StaticPrices(t *testing.T) {
	p := New(rand.New(rand.NewSource(1)))

	res := p.Fetch(t.Context(), []string{"SPY", "QQQ", "DIA", "IWM", "VTI", "UNKNOWN"})
	require.True(t, res.Success)
	require.Equal(t, models.SourceFallback, res.Source)
	require.EqualValues(t, 0, res.LatencyMillis)

	want := []float64{680.59, 617.05, 481.15, 224.80, 285.40, 100}
	require.Len(t, res.Quotes, len(want))
	for i, q := range res.Quotes {
		require.Equal(t, want[i], q.Price, "symbol %s", q.Symbol)
		require.Len(t, q.Sparkline, 24)
		require.Equal(t, q.Price, q.Sparkline[23])
	}
}
