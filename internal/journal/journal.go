package journal

import (
	"sync"

	"MarketPulse/internal/domain/models"
)

// DefaultCapacity caps retained anomaly history. Consumers accumulate across
// polls; anything older than the last 50 records has no display value.
const DefaultCapacity = 50

// Journal is a capped, in-memory ring of flagged anomalies. It is advisory
// history only; nothing is persisted.
type Journal struct {
	mu  sync.Mutex
	buf []models.DataAnomaly
	cap int
}

func New(capacity int) *Journal {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Journal{cap: capacity}
}

// Append records anomalies from one orchestration cycle, evicting the oldest
// entries beyond capacity.
func (j *Journal) Append(anomalies ...models.DataAnomaly) {
	if len(anomalies) == 0 {
		return
	}
	j.mu.Lock()
	j.buf = append(j.buf, anomalies...)
	if overflow := len(j.buf) - j.cap; overflow > 0 {
		j.buf = j.buf[overflow:]
	}
	j.mu.Unlock()
}

// Snapshot returns retained anomalies, newest first.
func (j *Journal) Snapshot() []models.DataAnomaly {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]models.DataAnomaly, len(j.buf))
	for i, a := range j.buf {
		out[len(j.buf)-1-i] = a
	}
	return out
}

// Clear drops all retained anomalies.
func (j *Journal) Clear() {
	j.mu.Lock()
	j.buf = nil
	j.mu.Unlock()
}

// Len returns the number of retained anomalies.
func (j *Journal) Len() int {
	j.mu.Lock()
	n := len(j.buf)
	j.mu.Unlock()
	return n
}
