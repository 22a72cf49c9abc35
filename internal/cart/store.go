package cart

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrMenuIncomplete = errors.New("daily menu needs both a soup and a main course")
	ErrMenuSoldOut    = errors.New("daily menu is sold out")
	ErrLineNotFound   = errors.New("cart line not found")
)

// Store is the single writer for one session's cart. All mutation goes
// through its methods; readers get value snapshots and subscribers get
// a fresh snapshot after every mutation. Nothing outside this type
// touches the line slice.
type Store struct {
	mu    sync.Mutex
	lines []Line
	subs  []chan Snapshot
}

func NewStore() *Store {
	return &Store{}
}

// Snapshot recomputes totals from the lines on every call.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Items: make([]Line, len(s.lines))}
	copy(snap.Items, s.lines)
	for i := range s.lines {
		snap.Total += s.lines[i].lineTotal()
		snap.ItemCount += s.lines[i].Quantity
	}
	return snap
}

// Subscribe returns a channel receiving a snapshot after each
// mutation. Slow subscribers miss intermediate states, never block
// the store.
func (s *Store) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, 8)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *Store) notifyLocked() {
	snap := s.snapshotLocked()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

// AddLine appends a new line and returns its id. Every add is a
// distinct line even when the item id matches an existing one:
// merging would conflate lines with different side/modifier
// compositions. Callers wanting quantity control address the
// returned line id.
func (s *Store) AddLine(line Line) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if line.LineID == "" {
		line.LineID = uuid.New().String()
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	s.lines = append(s.lines, line)
	s.notifyLocked()
	return line.LineID
}

// AddLines appends several lines as one mutation (one notification).
func (s *Store) AddLines(lines []Line) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.LineID == "" {
			line.LineID = uuid.New().String()
		}
		if line.Quantity < 1 {
			line.Quantity = 1
		}
		s.lines = append(s.lines, line)
		ids = append(ids, line.LineID)
	}
	s.notifyLocked()
	return ids
}

// UpdateQuantity sets a line's quantity; zero or below removes the
// line entirely. A cart never holds a line at quantity 0.
func (s *Store) UpdateQuantity(lineID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].LineID != lineID {
			continue
		}
		if quantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = quantity
		}
		s.notifyLocked()
		return nil
	}
	return ErrLineNotFound
}

// RemoveLine deletes a line unconditionally.
func (s *Store) RemoveLine(lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].LineID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.notifyLocked()
			return nil
		}
	}
	return ErrLineNotFound
}

// AddCompleteMenu adds the soup+main combo as one line at the combo
// price. Requires both combo parts and remaining portions.
func (s *Store) AddCompleteMenu(m CompleteMenu) (string, error) {
	if !m.HasSoup || !m.HasMain {
		return "", ErrMenuIncomplete
	}
	if m.RemainingPortions <= 0 {
		return "", ErrMenuSoldOut
	}

	return s.AddLine(Line{
		ItemID:    "daily_menu_" + m.OfferID,
		Name:      m.Name,
		UnitPrice: m.PackagePrice,
		Quantity:  1,
		DailyType: "menu",
		DailyDate: m.Date,
		DailyID:   m.OfferID,
	}), nil
}

// Clear empties the cart (after a successful checkout).
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.notifyLocked()
}

// Restore replaces the cart contents from a persisted snapshot.
func (s *Store) Restore(lines []Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = make([]Line, len(lines))
	copy(s.lines, lines)
	s.notifyLocked()
}
