package session

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/21in7/tos-fronet-sub000/internal/affix"
	"github.com/21in7/tos-fronet-sub000/internal/concurrency"
	"github.com/21in7/tos-fronet-sub000/internal/domain"
	"github.com/21in7/tos-fronet-sub000/internal/logger"
)

// entry is one session's accumulator. Its stats are only touched while the
// session's lock is held.
type entry struct {
	stats     *affix.Stats
	createdAt time.Time
}

// Store keeps per-session roll statistics in memory. Sessions expire after the
// configured TTL and the least recently used ones are dropped past the size limit.
type Store struct {
	lru   *expirable.LRU[string, *entry]
	locks *concurrency.LockManager
	now   func() time.Time
}

// NewStore creates a session store holding at most size sessions for ttl each
func NewStore(size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		lru:   expirable.NewLRU[string, *entry](size, nil, ttl),
		locks: concurrency.NewLockManager(DefaultStripes),
		now:   time.Now,
	}
}

// Record adds rolls to a session, creating it on first use
func (s *Store) Record(ctx context.Context, sessionID string, rolls [][]domain.RolledOption) error {
	return s.locks.WithLock(sessionID, func() error {
		e, ok := s.lru.Get(sessionID)
		if !ok {
			e = &entry{stats: affix.NewStats(), createdAt: s.now()}
			logger.FromContext(ctx).Debug(LogMsgSessionCreated, "session_id", sessionID)
		}
		for _, roll := range rolls {
			e.stats.Record(roll)
		}
		// Add refreshes the TTL and recency
		s.lru.Add(sessionID, e)
		return nil
	})
}

// Snapshot returns a copy of a session's statistics
func (s *Store) Snapshot(_ context.Context, sessionID string) (affix.Stats, error) {
	var out affix.Stats
	err := s.locks.WithLock(sessionID, func() error {
		e, ok := s.lru.Get(sessionID)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
		}
		out = e.stats.Snapshot()
		return nil
	})
	return out, err
}

// Reset clears a session's statistics and returns what they were
func (s *Store) Reset(ctx context.Context, sessionID string) (affix.Stats, error) {
	var prev affix.Stats
	err := s.locks.WithLock(sessionID, func() error {
		e, ok := s.lru.Get(sessionID)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
		}
		prev = e.stats.Snapshot()
		e.stats.Reset()
		logger.FromContext(ctx).Debug(LogMsgSessionReset, "session_id", sessionID, "rolls", prev.Rolls)
		return nil
	})
	return prev, err
}

// Len reports how many live sessions the store holds
func (s *Store) Len() int {
	return s.lru.Len()
}

var _ affix.SessionStore = (*Store)(nil)
