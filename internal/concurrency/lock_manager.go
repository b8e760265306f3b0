package concurrency

import (
	"hash/fnv"
	"sync"
)

// DefaultStripes is the lock count used when NewLockManager is given a non-positive value
const DefaultStripes = 256

// LockManager hands out named locks backed by a fixed set of mutex stripes,
// so memory stays bounded no matter how many keys are seen. Two keys may share
// a stripe; a key always maps to the same one.
type LockManager struct {
	stripes []sync.Mutex
}

// NewLockManager creates a LockManager with the given number of stripes
func NewLockManager(stripes int) *LockManager {
	if stripes <= 0 {
		stripes = DefaultStripes
	}
	return &LockManager{stripes: make([]sync.Mutex, stripes)}
}

// GetLock returns the mutex guarding key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &lm.stripes[h.Sum32()%uint32(len(lm.stripes))]
}

// WithLock runs fn while holding the lock for key
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}
