package history

import (
	"sync"
	"testing"
)

func TestStore_LookupMissing(t *testing.T) {
	s := NewStore()
	if _, ok := s.Lookup("SPY"); ok {
		t.Fatalf("expected miss for untracked symbol")
	}
}

func TestStore_ObserveReplaces(t *testing.T) {
	s := NewStore()
	s.Observe("SPY", 680.59, 1000)
	s.Observe("SPY", 681.10, 2000)

	e, ok := s.Lookup("SPY")
	if !ok {
		t.Fatalf("expected entry")
	}
	if e.Price != 681.10 || e.ObservedAt != 2000 {
		t.Fatalf("unexpected entry %+v", e)
	}
	if s.Len() != 1 {
		t.Fatalf("want 1 symbol, got %d", s.Len())
	}
}

func TestStore_ConcurrentObserve(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Observe("QQQ", float64(600+n), int64(n))
		}(i)
	}
	wg.Wait()

	e, ok := s.Lookup("QQQ")
	if !ok {
		t.Fatalf("expected entry")
	}
	// Last writer wins; price and timestamp must belong to the same write.
	if int64(e.Price-600) != e.ObservedAt {
		t.Fatalf("torn entry: price=%v observedAt=%v", e.Price, e.ObservedAt)
	}
}
