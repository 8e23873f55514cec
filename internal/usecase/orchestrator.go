package usecase

import (
	"context"
	"time"

	"MarketPulse/internal/anomaly"
	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/domain/repository"
	"MarketPulse/internal/journal"
	"MarketPulse/internal/provider"
	xlogger "MarketPulse/pkg/logger"
)

// Health thresholds. Rule order matters: RED conditions dominate YELLOW even
// when a YELLOW condition also holds.
const (
	latencyGreenMillis  = 500
	latencyYellowMillis = 2000
	maxHealthyAnomalies = 2
)

// Orchestrator drives the Primary→Secondary→Fallback failover chain, runs
// every selected quote through the anomaly validator, and scores the cycle's
// health. It never fails outward: total failure degrades to fallback data
// under a RED status.
type Orchestrator struct {
	primary   provider.Provider // nil when no credential is configured
	secondary provider.Provider
	fallback  provider.Provider
	validator *anomaly.Validator
	journal   *journal.Journal
	metrics   repository.Metrics
	logger    *xlogger.Logger
	now       func() time.Time
}

func NewOrchestrator(
	primary, secondary, fallback provider.Provider,
	validator *anomaly.Validator,
	jrnl *journal.Journal,
	metrics repository.Metrics,
	logger *xlogger.Logger,
) *Orchestrator {
	return &Orchestrator{
		primary:   primary,
		secondary: secondary,
		fallback:  fallback,
		validator: validator,
		journal:   jrnl,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Orchestrate fetches, validates and health-scores quotes for symbols.
func (o *Orchestrator) Orchestrate(ctx context.Context, symbols []string) ([]models.Quote, models.DataHealthStatus) {
	result := o.selectTier(ctx, symbols)

	quotes, anomalies := o.validate(result.Quotes)
	health := models.DataHealthStatus{
		Status:        ComputeHealth(result.LatencyMillis, result.Source, len(anomalies)),
		LatencyMillis: result.LatencyMillis,
		Source:        result.Source,
		Anomalies:     anomalies,
		LastUpdated:   o.now().UTC().Format(time.RFC3339),
	}

	if o.journal != nil {
		o.journal.Append(anomalies...)
	}
	if o.metrics != nil {
		o.metrics.RecordFetchLatency(string(result.Source), float64(result.LatencyMillis)/1000)
		o.metrics.RecordHealthStatus(string(health.Status))
	}
	if o.logger != nil {
		o.logger.Info("orchestration cycle complete",
			xlogger.String("source", string(result.Source)),
			xlogger.String("status", string(health.Status)),
			xlogger.Int64("latency_ms", result.LatencyMillis),
			xlogger.Int("anomalies", len(anomalies)))
	}

	return quotes, health
}

// selectTier walks the failover chain. Tier choice is a pure function of
// configuration (primary present or not) and the prior tier's outcome.
func (o *Orchestrator) selectTier(ctx context.Context, symbols []string) *models.FetchResult {
	if o.primary != nil {
		result := o.primary.Fetch(ctx, symbols)
		o.recordAttempt(result)
		if result.Success {
			return result
		}
		if o.logger != nil {
			o.logger.Warn("primary tier failed, trying secondary", xlogger.String("reason", result.Error))
		}
		if o.metrics != nil {
			o.metrics.RecordFailover(string(models.SourcePrimary), string(models.SourceSecondary))
		}
	}

	result := o.secondary.Fetch(ctx, symbols)
	o.recordAttempt(result)
	if result.Success {
		return result
	}

	// The secondary tier is defined to never fail; reaching this point means
	// an implementation bug, so the static tier keeps the response alive.
	if o.logger != nil {
		o.logger.Error("secondary tier failed, using fallback", xlogger.String("reason", result.Error))
	}
	if o.metrics != nil {
		o.metrics.RecordFailover(string(models.SourceSecondary), string(models.SourceFallback))
	}
	result = o.fallback.Fetch(ctx, symbols)
	o.recordAttempt(result)
	return result
}

// validate runs each quote through the anomaly validator. A flagged quote
// has the last-known-good price substituted so the suspect value is never
// exposed; its sparkline is re-pinned to keep the series ending at the
// served price.
func (o *Orchestrator) validate(quotes []models.Quote) ([]models.Quote, []models.DataAnomaly) {
	validated := make([]models.Quote, 0, len(quotes))
	anomalies := make([]models.DataAnomaly, 0)

	for _, q := range quotes {
		a := o.validator.Validate(q.Symbol, q.Price)
		if a == nil {
			if o.metrics != nil {
				o.metrics.RecordLastPrice(q.Symbol, q.Price)
			}
			validated = append(validated, q)
			continue
		}

		anomalies = append(anomalies, *a)
		if o.metrics != nil {
			o.metrics.RecordAnomaly(string(a.Type), string(a.Severity))
		}
		if o.logger != nil {
			o.logger.Warn("anomaly detected, substituting last known price",
				xlogger.String("symbol", q.Symbol),
				xlogger.String("severity", string(a.Severity)),
				xlogger.Float64("suspect_price", q.Price))
		}

		if lastKnown, ok := o.validator.LastKnown(q.Symbol); ok {
			q.Price = lastKnown
			if n := len(q.Sparkline); n > 0 {
				q.Sparkline[n-1] = lastKnown
			}
		}
		validated = append(validated, q)
	}

	return validated, anomalies
}

func (o *Orchestrator) recordAttempt(r *models.FetchResult) {
	if o.metrics == nil {
		return
	}
	outcome := "success"
	if !r.Success {
		outcome = "failure"
	}
	o.metrics.RecordFetchAttempt(string(r.Source), outcome)
}

// ComputeHealth maps (latency, source, anomaly count) to a traffic-light
// status, evaluating RED rules before YELLOW ones.
func ComputeHealth(latencyMillis int64, source models.Source, anomalyCount int) models.HealthStatus {
	if source == models.SourceFallback || anomalyCount > maxHealthyAnomalies || latencyMillis > latencyYellowMillis {
		return models.StatusRed
	}
	if source == models.SourceSecondary || anomalyCount > 0 || latencyMillis > latencyGreenMillis {
		return models.StatusYellow
	}
	return models.StatusGreen
}
