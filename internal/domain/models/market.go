package models

// Source identifies the provider tier a quote batch came from.
type Source string

const (
	SourcePrimary   Source = "PRIMARY"
	SourceSecondary Source = "SECONDARY"
	SourceFallback  Source = "FALLBACK"
)

// HealthStatus is the coarse traffic-light summary of data trustworthiness.
type HealthStatus string

const (
	StatusGreen  HealthStatus = "GREEN"
	StatusYellow HealthStatus = "YELLOW"
	StatusRed    HealthStatus = "RED"
)

// AnomalyType classifies a flagged data anomaly.
type AnomalyType string

const (
	AnomalyPriceSpike     AnomalyType = "PRICE_SPIKE"
	AnomalyStaleData      AnomalyType = "STALE_DATA"
	AnomalySourceMismatch AnomalyType = "SOURCE_MISMATCH"
)

// AnomalySeverity grades how implausible an observation is.
type AnomalySeverity string

const (
	SeverityLow    AnomalySeverity = "LOW"
	SeverityMedium AnomalySeverity = "MEDIUM"
	SeverityHigh   AnomalySeverity = "HIGH"
)

// Quote is a validated market quote as returned to callers.
// Sparkline is a 24-point synthetic intraday series ending at Price.
type Quote struct {
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	Sparkline     []float64 `json:"sparkline"`
}

// FetchResult is the uniform outcome of one provider-tier attempt.
// It never leaves the orchestrator.
type FetchResult struct {
	Success       bool
	Quotes        []Quote
	Source        Source
	LatencyMillis int64
	Error         string
}

// DataAnomaly is an advisory record of a statistically implausible observation.
type DataAnomaly struct {
	ID            string          `json:"id"`
	Symbol        string          `json:"symbol"`
	Type          AnomalyType     `json:"type"`
	Severity      AnomalySeverity `json:"severity"`
	Message       string          `json:"message"`
	PreviousValue float64         `json:"previousValue"`
	NewValue      float64         `json:"newValue"`
	PercentChange float64         `json:"percentChange"`
	Timestamp     string          `json:"timestamp"`
}

// DataHealthStatus summarizes the trustworthiness of the current cycle.
type DataHealthStatus struct {
	Status        HealthStatus  `json:"status"`
	LatencyMillis int64         `json:"latency"`
	Source        Source        `json:"source"`
	Anomalies     []DataAnomaly `json:"anomalies"`
	LastUpdated   string        `json:"lastUpdated"`
}
