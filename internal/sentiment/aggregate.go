package sentiment

import (
	"sort"

	"MarketPulse/internal/domain/models"
	"MarketPulse/pkg/util"
)

// confidence blend: volume, source diversity, average trust.
const (
	articleVolumeCap   = 10
	sourceDiversityCap = 5
	topSourcesLimit    = 5

	volumeCoeff    = 0.3
	diversityCoeff = 0.3
	trustCoeff     = 0.4
)

// Aggregate computes the reliability-weighted sentiment for one symbol from
// the given article batch. A symbol nobody wrote about yields the zero
// record rather than an error.
func Aggregate(symbol string, articles []models.NewsArticle) models.WeightedSentimentResult {
	relevant := filterBySymbol(symbol, articles)
	if len(relevant) == 0 {
		return models.WeightedSentimentResult{
			Symbol:     symbol,
			TopSources: []models.SourceScore{},
		}
	}

	var rawSum float64
	for _, a := range relevant {
		rawSum += a.Sentiment
	}
	rawSentiment := rawSum / float64(len(relevant))

	// Weighted mean plus per-source grouping for the top-sources breakdown.
	var weightedSum, totalWeight float64
	type sourceAcc struct {
		weight float64
		sum    float64
		count  int
	}
	bySource := make(map[string]*sourceAcc)

	for _, a := range relevant {
		w := Weight(a.Source)
		weightedSum += a.Sentiment * w
		totalWeight += w

		acc, ok := bySource[a.Source]
		if !ok {
			acc = &sourceAcc{weight: w}
			bySource[a.Source] = acc
		}
		acc.sum += a.Sentiment
		acc.count++
	}

	weightedSentiment := 0.0
	if totalWeight > 0 {
		weightedSentiment = weightedSum / totalWeight
	}

	topSources := make([]models.SourceScore, 0, len(bySource))
	for name, acc := range bySource {
		topSources = append(topSources, models.SourceScore{
			Name:      name,
			Weight:    acc.weight,
			Sentiment: util.Round4(acc.sum / float64(acc.count)),
		})
	}
	sort.Slice(topSources, func(i, j int) bool {
		if topSources[i].Weight != topSources[j].Weight {
			return topSources[i].Weight > topSources[j].Weight
		}
		return topSources[i].Name < topSources[j].Name
	})
	if len(topSources) > topSourcesLimit {
		topSources = topSources[:topSourcesLimit]
	}

	n := float64(len(relevant))
	volumeBonus := min(n/articleVolumeCap, 1)
	diversityBonus := min(float64(len(bySource))/sourceDiversityCap, 1)
	avgWeight := totalWeight / n
	confidence := volumeCoeff*volumeBonus + diversityCoeff*diversityBonus + trustCoeff*avgWeight

	return models.WeightedSentimentResult{
		Symbol:            symbol,
		RawSentiment:      util.Round4(rawSentiment),
		WeightedSentiment: util.Round4(weightedSentiment),
		ArticleCount:      len(relevant),
		TopSources:        topSources,
		Confidence:        util.Round2(util.Clamp(confidence, 0, 1)),
	}
}

// AverageWeight is the mean source weight across a whole article batch.
func AverageWeight(articles []models.NewsArticle) float64 {
	if len(articles) == 0 {
		return 0
	}
	var sum float64
	for _, a := range articles {
		sum += Weight(a.Source)
	}
	return util.Round4(sum / float64(len(articles)))
}

func filterBySymbol(symbol string, articles []models.NewsArticle) []models.NewsArticle {
	out := make([]models.NewsArticle, 0, len(articles))
	for _, a := range articles {
		for _, s := range a.RelatedSymbols {
			if s == symbol {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
