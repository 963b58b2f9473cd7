package download

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/docx_converter/internal/domain"
)

type entry struct {
	download  *domain.Download
	expiresAt time.Time
}

// Store keeps converted files until the browser fetches them. Each token is single use.
type Store struct {
	log           *slog.Logger
	ttl           time.Duration
	sweepInterval time.Duration
	now           func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

func NewStore(log *slog.Logger, ttl, sweepInterval time.Duration) *Store {
	return &Store{
		log:           log,
		ttl:           ttl,
		sweepInterval: sweepInterval,
		now:           time.Now,
		entries:       make(map[string]entry),
	}
}

func (s *Store) Put(d *domain.Download) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[token] = entry{
		download:  d,
		expiresAt: s.now().Add(s.ttl),
	}

	return token
}

func (s *Store) Take(token string) (*domain.Download, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok {
		return nil, false
	}
	delete(s.entries, token)

	if !s.now().Before(e.expiresAt) {
		return nil, false
	}

	return e.download, true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Run evicts expired downloads until ctx is done.
func (s *Store) Run(ctx context.Context) error {
	if s.sweepInterval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %s", s.sweepInterval)
	}

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if evicted := s.sweep(); evicted > 0 {
				s.log.DebugContext(ctx, "evicted expired downloads", slog.Int("count", evicted))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Store) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	var evicted int
	for token, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, token)
			evicted++
		}
	}

	return evicted
}
