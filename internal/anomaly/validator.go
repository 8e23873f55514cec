package anomaly

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"MarketPulse/internal/domain/models"
	"MarketPulse/internal/history"
	"MarketPulse/pkg/util"
)

// Detection thresholds.
const (
	// PriceSpikeThreshold flags relative jumps above 20%.
	PriceSpikeThreshold = 0.20
	// StaleDataThreshold is the reference window for stale-data grading.
	StaleDataThreshold = 60 * time.Second

	severityMedium = 0.30
	severityHigh   = 0.50
)

// Validator compares incoming quotes against the price history and flags
// statistically implausible jumps. It owns the decision of whether an
// observation updates the stored last-known price.
type Validator struct {
	history *history.Store
	now     func() time.Time
	rng     *rand.Rand
}

// NewValidator creates a validator over the given history store. now and rng
// are injectable so tests can pin time and anomaly IDs.
func NewValidator(store *history.Store, now func() time.Time, rng *rand.Rand) *Validator {
	if now == nil {
		now = time.Now
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Validator{history: store, now: now, rng: rng}
}

// Validate checks newPrice for symbol against the last-known price.
//
// First observations are never flagged; they seed the history. Observations
// within the spike threshold update the history and return nil. Observations
// beyond it return a PRICE_SPIKE anomaly and leave the stored last-known
// price untouched, so the suspect value never becomes the new baseline.
func (v *Validator) Validate(symbol string, newPrice float64) *models.DataAnomaly {
	now := v.now()
	nowMillis := now.UnixMilli()

	last, ok := v.history.Lookup(symbol)
	if !ok {
		v.history.Observe(symbol, newPrice, nowMillis)
		return nil
	}

	delta := math.Abs(newPrice-last.Price) / last.Price
	if delta <= PriceSpikeThreshold {
		v.history.Observe(symbol, newPrice, nowMillis)
		return nil
	}

	elapsed := time.Duration(nowMillis-last.ObservedAt) * time.Millisecond
	return &models.DataAnomaly{
		ID:            v.newID(nowMillis),
		Symbol:        symbol,
		Type:          models.AnomalyPriceSpike,
		Severity:      gradeSeverity(delta),
		Message:       fmt.Sprintf("%s price jumped %.2f%% in %.1fs - potential data error", symbol, delta*100, elapsed.Seconds()),
		PreviousValue: last.Price,
		NewValue:      newPrice,
		PercentChange: util.Round2(delta * 100),
		Timestamp:     now.UTC().Format(time.RFC3339),
	}
}

// LastKnown returns the stored baseline price for substitution.
func (v *Validator) LastKnown(symbol string) (float64, bool) {
	e, ok := v.history.Lookup(symbol)
	return e.Price, ok
}

func gradeSeverity(delta float64) models.AnomalySeverity {
	switch {
	case delta > severityHigh:
		return models.SeverityHigh
	case delta > severityMedium:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

func (v *Validator) newID(nowMillis int64) string {
	suffix := strconv.FormatInt(v.rng.Int63(), 36)
	if len(suffix) > 9 {
		suffix = suffix[:9]
	}
	return fmt.Sprintf("anomaly_%d_%s", nowMillis, suffix)
}
