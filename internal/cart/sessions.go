package cart

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Sessions hands out one Store per session id, loading persisted
// lines on first access and writing every mutation back through the
// repository. One session = one cart = one writer.
type Sessions struct {
	mu     sync.Mutex
	stores map[string]*Store
	repo   Repository
}

func NewSessions(repo Repository) *Sessions {
	return &Sessions{
		stores: make(map[string]*Store),
		repo:   repo,
	}
}

// Get returns the session's store, restoring persisted state on first
// access. A failed load starts the session with an empty cart rather
// than failing the request.
func (s *Sessions) Get(ctx context.Context, sessionID string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	if store, ok := s.stores[sessionID]; ok {
		return store
	}

	store := NewStore()
	lines, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		logrus.WithError(err).WithField("session", sessionID).
			Warn("cart restore failed, starting empty")
	} else if len(lines) > 0 {
		store.Restore(lines)
	}

	s.stores[sessionID] = store
	return store
}

// Persist writes the current cart state through to durable storage.
// Called after every handler-level mutation.
func (s *Sessions) Persist(ctx context.Context, sessionID string, store *Store) {
	snap := store.Snapshot()
	if err := s.repo.Save(ctx, sessionID, snap.Items); err != nil {
		logrus.WithError(err).WithField("session", sessionID).
			Error("cart persist failed")
	}
}

// Drop clears and forgets a session's cart (after checkout).
func (s *Sessions) Drop(ctx context.Context, sessionID string) {
	s.mu.Lock()
	store, ok := s.stores[sessionID]
	delete(s.stores, sessionID)
	s.mu.Unlock()

	if ok {
		store.Clear()
	}
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		logrus.WithError(err).WithField("session", sessionID).
			Error("cart delete failed")
	}
}
