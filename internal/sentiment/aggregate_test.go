package sentiment

import (
	"testing"

	"MarketPulse/internal/domain/models"

	"github.com/stretchr/testify/require"
)

func article(source string, sentiment float64, symbols ...string) models.NewsArticle {
	return models.NewsArticle{
		Source:         source,
		Headline:       "headline",
		Sentiment:      sentiment,
		RelatedSymbols: symbols,
	}
}

func TestWeight_KnownAndUnknown(t *testing.T) {
	require.Equal(t, 1.0, Weight("Bloomberg"))
	require.Equal(t, 0.3, Weight("Reddit"))
	require.Equal(t, DefaultWeight, Weight("Some Random Blog"))
}

func TestAggregate_WeightingDivergesFromRawMean(t *testing.T) {
	articles := []models.NewsArticle{
		article("Bloomberg", 0.8, "SPY"),      // weight 1.0
		article("Unknown Blog", -0.8, "SPY"),  // weight 0.2
	}

	res := Aggregate("SPY", articles)
	require.Equal(t, 0.0, res.RawSentiment)
	// (0.8*1.0 + (-0.8)*0.2) / (1.0 + 0.2)
	require.InDelta(t, 0.5333, res.WeightedSentiment, 0.0001)
	require.Equal(t, 2, res.ArticleCount)
}

func TestAggregate_HighTrustSignalDominatesLowTrustNoise(t *testing.T) {
	articles := []models.NewsArticle{
		article("Bloomberg", 0.8, "QQQ"),
		article("Stocktwits", -0.8, "QQQ"), // weight 0.35
	}
	res := Aggregate("QQQ", articles)
	require.Equal(t, 0.0, res.RawSentiment)
	require.InDelta(t, (0.8*1.0-0.8*0.35)/(1.0+0.35), res.WeightedSentiment, 0.0001)
	require.Greater(t, res.WeightedSentiment, 0.0)
}

func TestAggregate_NoArticlesYieldsZeroRecord(t *testing.T) {
	articles := []models.NewsArticle{article("Reuters", 0.5, "SPY")}

	res := Aggregate("DIA", articles)
	require.Equal(t, "DIA", res.Symbol)
	require.Equal(t, 0.0, res.RawSentiment)
	require.Equal(t, 0.0, res.WeightedSentiment)
	require.Equal(t, 0, res.ArticleCount)
	require.Empty(t, res.TopSources)
	require.Equal(t, 0.0, res.Confidence)
}

func TestAggregate_TopSourcesCappedAndSorted(t *testing.T) {
	articles := []models.NewsArticle{
		article("Reddit", 0.1, "SPY"),
		article("Bloomberg", 0.2, "SPY"),
		article("Medium", 0.3, "SPY"),
		article("CNBC", 0.4, "SPY"),
		article("Zacks", 0.5, "SPY"),
		article("MarketWatch", 0.6, "SPY"),
		article("Forbes", 0.7, "SPY"),
	}

	res := Aggregate("SPY", articles)
	require.Len(t, res.TopSources, 5)
	for i := 1; i < len(res.TopSources); i++ {
		require.GreaterOrEqual(t, res.TopSources[i-1].Weight, res.TopSources[i].Weight,
			"topSources must be sorted by descending weight")
	}
	require.Equal(t, "Bloomberg", res.TopSources[0].Name)
}

func TestAggregate_PerSourceMeanSentiment(t *testing.T) {
	articles := []models.NewsArticle{
		article("Reuters", 0.4, "SPY"),
		article("Reuters", 0.8, "SPY"),
	}

	res := Aggregate("SPY", articles)
	require.Len(t, res.TopSources, 1)
	require.InDelta(t, 0.6, res.TopSources[0].Sentiment, 0.0001)
	require.Equal(t, 1.0, res.TopSources[0].Weight)
}

func TestAggregate_ConfidenceBlend(t *testing.T) {
	// 2 articles, 2 distinct sources, both weight 1.0:
	// 0.3*(2/10) + 0.3*(2/5) + 0.4*1.0 = 0.06 + 0.12 + 0.4 = 0.58
	articles := []models.NewsArticle{
		article("Bloomberg", 0.5, "SPY"),
		article("Reuters", 0.5, "SPY"),
	}

	res := Aggregate("SPY", articles)
	require.InDelta(t, 0.58, res.Confidence, 0.001)
	require.GreaterOrEqual(t, res.Confidence, 0.0)
	require.LessOrEqual(t, res.Confidence, 1.0)
}

func TestAverageWeight(t *testing.T) {
	require.Equal(t, 0.0, AverageWeight(nil))

	articles := []models.NewsArticle{
		article("Bloomberg", 0, "SPY"), // 1.0
		article("Reddit", 0, "SPY"),    // 0.3
	}
	require.InDelta(t, 0.65, AverageWeight(articles), 0.0001)
}
