package models

// NewsArticle is a raw news item with an estimated sentiment in [-1, 1].
type NewsArticle struct {
	ID             string   `json:"id"`
	Source         string   `json:"source"`
	Headline       string   `json:"headline"`
	Summary        string   `json:"summary"`
	Sentiment      float64  `json:"sentiment"`
	URL            string   `json:"url"`
	PublishedAt    string   `json:"publishedAt"`
	RelatedSymbols []string `json:"relatedSymbols"`
}

// SourceScore describes one news outlet's contribution to a symbol's aggregate.
type SourceScore struct {
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`
	Sentiment float64 `json:"sentiment"`
}

// WeightedSentimentResult is the per-symbol reliability-weighted aggregate.
type WeightedSentimentResult struct {
	Symbol            string        `json:"symbol"`
	RawSentiment      float64       `json:"rawSentiment"`
	WeightedSentiment float64       `json:"weightedSentiment"`
	ArticleCount      int           `json:"articleCount"`
	TopSources        []SourceScore `json:"topSources"`
	Confidence        float64       `json:"confidence"`
}

// SentimentMetadata describes the article batch behind a sentiment response.
type SentimentMetadata struct {
	TotalArticles       int     `json:"totalArticles"`
	AverageSourceWeight float64 `json:"averageSourceWeight"`
	Timestamp           string  `json:"timestamp"`
}
