package repository

// Metrics abstracts the Prometheus recorder so use cases stay testable
// without a registry.
type Metrics interface {
	RecordFetchAttempt(tier, outcome string)
	RecordFailover(from, to string)
	RecordAnomaly(kind, severity string)
	RecordHealthStatus(status string)
	RecordLastPrice(symbol string, price float64)
	RecordFetchLatency(tier string, seconds float64)
	RecordArticles(n int)
	RecordSentimentAggregation()
}
