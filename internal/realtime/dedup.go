package realtime

import "sync"

// SeenIDs is a bounded recency set. The staff dashboard must not
// re-alert for an order it already announced, but an unbounded
// seen-set grows for the life of the process; this keeps the newest
// cap entries and forgets the oldest ones FIFO.
type SeenIDs struct {
	mu    sync.Mutex
	cap   int
	order []string
	seen  map[string]struct{}
}

func NewSeenIDs(cap int) *SeenIDs {
	if cap < 1 {
		cap = 1
	}
	return &SeenIDs{
		cap:  cap,
		seen: make(map[string]struct{}, cap),
	}
}

// Remember records an id, reporting whether it was already present.
// At capacity the oldest remembered id is evicted.
func (s *SeenIDs) Remember(id string) (alreadySeen bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[id]; ok {
		return true
	}

	if len(s.order) >= s.cap {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.seen, oldest)
	}
	s.order = append(s.order, id)
	s.seen[id] = struct{}{}
	return false
}

func (s *SeenIDs) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
