package memory

import (
	"sync"
	"time"

	"support-router/internal/customer/repository"
	"support-router/internal/model"
	"support-router/pkg/log"
)

var _ repository.Repository = (*Store)(nil)

// Store is an in-process Repository used when storage.driver is "memory"
// and by end-to-end tests. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	customers map[int64]model.Customer
	tickets   []model.Ticket
	nextCust  int64
	nextTick  int64
	now       func() time.Time
	l         log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for created_at and updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty Store.
func New(l log.Logger, opts ...Option) *Store {
	s := &Store{
		customers: make(map[int64]model.Customer),
		nextCust:  1,
		nextTick:  1,
		now:       func() time.Time { return time.Now().UTC() },
		l:         l,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
