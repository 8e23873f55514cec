package sentiment

// Source reliability weights in [0, 1]. Tiered by editorial standards:
// wire services and major financial press carry full weight, aggregators and
// social sources are heavily discounted.
var sourceWeights = map[string]float64{
	// Tier 1 - major financial news
	"Bloomberg":            1.0,
	"Reuters":              1.0,
	"Wall Street Journal":  1.0,
	"Financial Times":      1.0,
	"CNBC":                 0.95,

	// Tier 2 - established financial media
	"MarketWatch":            0.9,
	"Barrons":                0.9,
	"The Economist":          0.9,
	"Yahoo Finance":          0.85,
	"Investor Business Daily": 0.85,
	"Seeking Alpha":          0.8,

	// Tier 3 - general news with finance sections
	"New York Times":   0.75,
	"Washington Post":  0.75,
	"Associated Press": 0.7,
	"Forbes":           0.7,
	"Business Insider": 0.65,
	"The Motley Fool":  0.6,

	// Tier 4 - aggregators and social
	"Benzinga":      0.5,
	"Zacks":         0.5,
	"TheStreet":     0.45,
	"InvestorPlace": 0.4,
	"Stocktwits":    0.35,
	"Reddit":        0.3,

	// Tier 5 - blogs
	"Medium":       0.25,
	"Substack":     0.25,
	"Unknown Blog": 0.2,
}

// DefaultWeight applies to sources absent from the table. Unknown is not the
// same as proven untrustworthy, so it is low but never zero.
const DefaultWeight = 0.15

// Weight returns the trust weight for a news source.
func Weight(source string) float64 {
	if w, ok := sourceWeights[source]; ok {
		return w
	}
	return DefaultWeight
}

// KnownSources lists every weighted source name.
func KnownSources() []string {
	out := make([]string, 0, len(sourceWeights))
	for name := range sourceWeights {
		out = append(out, name)
	}
	return out
}
