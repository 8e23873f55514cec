package history

import "sync"

// Entry is the last validated observation for a symbol.
type Entry struct {
	Price      float64
	ObservedAt int64 // unix millis
}

// Store tracks the last-known price per symbol for the lifetime of the
// process. It is the only mutable state shared between orchestration
// requests; the lock keeps a symbol's price and timestamp from tearing
// under concurrent updates.
type Store struct {
	mu sync.Mutex
	m  map[string]Entry
}

func NewStore() *Store {
	return &Store{m: make(map[string]Entry)}
}

// Lookup returns the stored entry for symbol, if any.
func (s *Store) Lookup(symbol string) (Entry, bool) {
	s.mu.Lock()
	e, ok := s.m[symbol]
	s.mu.Unlock()
	return e, ok
}

// Observe records a validated observation, replacing any prior entry.
func (s *Store) Observe(symbol string, price float64, atMillis int64) {
	s.mu.Lock()
	s.m[symbol] = Entry{Price: price, ObservedAt: atMillis}
	s.mu.Unlock()
}

// Len returns the number of tracked symbols.
func (s *Store) Len() int {
	s.mu.Lock()
	n := len(s.m)
	s.mu.Unlock()
	return n
}
