package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exposes Prometheus metrics for the orchestration core.
type Recorder struct {
	fetchAttempts  *prometheus.CounterVec
	failovers      *prometheus.CounterVec
	anomalies      *prometheus.CounterVec
	healthStatus   *prometheus.GaugeVec
	lastPrice      *prometheus.GaugeVec
	fetchLatency   *prometheus.HistogramVec
	articlesSeen   prometheus.Counter
	sentimentCalcs prometheus.Counter
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketpulse_fetch_attempts_total",
				Help: "Quote fetch attempts by tier and outcome",
			},
			[]string{"tier", "outcome"},
		),
		failovers: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketpulse_failovers_total",
				Help: "Failover transitions between provider tiers",
			},
			[]string{"from", "to"},
		),
		anomalies: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketpulse_anomalies_total",
				Help: "Data anomalies flagged by the validator",
			},
			[]string{"type", "severity"},
		),
		healthStatus: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "marketpulse_health_status",
				Help: "Current health status (1 for the active status label, 0 otherwise)",
			},
			[]string{"status"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "marketpulse_last_price",
				Help: "Last validated price per symbol",
			},
			[]string{"symbol"},
		),
		fetchLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "marketpulse_fetch_duration_seconds",
				Help:    "Duration of quote fetch cycles in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tier"},
		),
		articlesSeen: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "marketpulse_news_articles_total",
				Help: "News articles consumed by the sentiment aggregator",
			},
		),
		sentimentCalcs: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "marketpulse_sentiment_aggregations_total",
				Help: "Per-symbol sentiment aggregations performed",
			},
		),
	}
}

// RecordFetchAttempt records a tier attempt and its outcome.
func (r *Recorder) RecordFetchAttempt(tier, outcome string) {
	r.fetchAttempts.WithLabelValues(tier, outcome).Inc()
}

// RecordFailover records a transition from one tier to the next.
func (r *Recorder) RecordFailover(from, to string) {
	r.failovers.WithLabelValues(from, to).Inc()
}

// RecordAnomaly records a flagged anomaly.
func (r *Recorder) RecordAnomaly(kind, severity string) {
	r.anomalies.WithLabelValues(kind, severity).Inc()
}

// RecordHealthStatus sets the health gauge for the active status.
func (r *Recorder) RecordHealthStatus(status string) {
	for _, s := range []string{"GREEN", "YELLOW", "RED"} {
		v := 0.0
		if s == status {
			v = 1.0
		}
		r.healthStatus.WithLabelValues(s).Set(v)
	}
}

// RecordLastPrice records the last validated price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordFetchLatency records fetch-cycle latency in seconds for a tier.
func (r *Recorder) RecordFetchLatency(tier string, seconds float64) {
	r.fetchLatency.WithLabelValues(tier).Observe(seconds)
}

// RecordArticles counts consumed news articles.
func (r *Recorder) RecordArticles(n int) {
	r.articlesSeen.Add(float64(n))
}

// RecordSentimentAggregation counts one per-symbol aggregation.
func (r *Recorder) RecordSentimentAggregation() {
	r.sentimentCalcs.Inc()
}
