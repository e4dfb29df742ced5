package linkstate

import (
	"context"
	"sync"
	"time"

	"shelf/internal/domain/entity"
	"shelf/internal/domain/repository"

	"github.com/pkg/errors"
)

type memoryEntry struct {
	attempt  entity.LinkAttempt
	deadline time.Time
}

// MemoryStore keeps link attempts in process memory. Attempts are lost on restart
// and are not shared between replicas.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Save stores the attempt under its state token for ttl.
func (s *MemoryStore) Save(_ context.Context, attempt *entity.LinkAttempt, ttl time.Duration) error {
	if attempt == nil || attempt.State == "" {
		return errors.New("link attempt state is required")
	}
	if ttl <= 0 {
		return errors.New("ttl must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)
	s.entries[attempt.State] = memoryEntry{attempt: *attempt, deadline: now.Add(ttl)}

	return nil
}

// Consume returns the attempt and removes it.
func (s *MemoryStore) Consume(_ context.Context, state string) (*entity.LinkAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[state]
	if !ok {
		return nil, repository.ErrLinkAttemptNotFound
	}
	delete(s.entries, state)

	if !s.now().Before(entry.deadline) {
		return nil, repository.ErrLinkAttemptNotFound
	}

	attempt := entry.attempt

	return &attempt, nil
}

// sweepLocked drops expired entries. Callers must hold mu.
func (s *MemoryStore) sweepLocked(now time.Time) {
	for state, entry := range s.entries {
		if !now.Before(entry.deadline) {
			delete(s.entries, state)
		}
	}
}
