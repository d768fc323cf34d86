// Package ticket provides the in-memory store for single-use login handoff tickets.
package ticket

import (
	"context"
	"sync"
	"time"

	"epicblogs/config"
	"epicblogs/internal/domain/entity"
	"epicblogs/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultTTL      = 5 * time.Minute
	janitorInterval = time.Minute
)

// Store keeps pending handoff tickets keyed by ID. Multiple logins can be in
// flight at once; each ticket is independent and redeemable exactly once.
type Store struct {
	mu      sync.Mutex
	tickets map[string]*entity.HandoffTicket
	ttl     time.Duration
	done    chan struct{}
	closeMu sync.Once
}

// NewStore creates a ticket store and starts a background janitor that sweeps
// expired tickets. Call Close to stop the janitor.
func NewStore(cfg *config.Config) *Store {
	ttl := defaultTTL
	if cfg.Handoff != nil && cfg.Handoff.TicketTTL > 0 {
		ttl = cfg.Handoff.TicketTTL
	}

	s := &Store{
		tickets: make(map[string]*entity.HandoffTicket),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go s.janitor()

	return s
}

var _ service.TicketStore = (*Store)(nil)

// TTL returns how long issued tickets remain redeemable.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Put stores a ticket under its ID until it expires or is taken.
func (s *Store) Put(_ context.Context, t *entity.HandoffTicket) error {
	if t == nil || t.ID == "" {
		return errors.New("ticket must have an id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets[t.ID] = t

	return nil
}

// Take atomically removes and returns the ticket with the given ID.
// Concurrent takers race on the mutex and exactly one sees the ticket.
func (s *Store) Take(_ context.Context, id string) (*entity.HandoffTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[id]
	if !ok {
		return nil, service.ErrTicketNotFound
	}
	delete(s.tickets, id)

	if t.Expired(time.Now()) {
		return nil, service.ErrTicketNotFound
	}

	return t, nil
}

// Close stops the background janitor. Safe to call more than once.
func (s *Store) Close() {
	s.closeMu.Do(func() {
		close(s.done)
	})
}

// janitor drops expired tickets that were never redeemed.
func (s *Store) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.sweep(now)
		}
	}
}

func (s *Store) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.tickets {
		if t.Expired(now) {
			delete(s.tickets, id)
		}
	}
}
