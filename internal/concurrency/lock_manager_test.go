package concurrency

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_SameKeySameLock(t *testing.T) {
	lm := NewLockManager(16)

	assert.Same(t, lm.GetLock("session-a"), lm.GetLock("session-a"))
}

func TestLockManager_DefaultStripes(t *testing.T) {
	lm := NewLockManager(0)

	assert.Len(t, lm.stripes, DefaultStripes)
}

func TestLockManager_WithLockSerializes(t *testing.T) {
	lm := NewLockManager(4)
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lm.WithLock("shared", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestLockManager_WithLockReturnsError(t *testing.T) {
	lm := NewLockManager(1)
	want := errors.New("boom")

	err := lm.WithLock("k", func() error { return want })

	assert.ErrorIs(t, err, want)
	assert.True(t, lm.GetLock("k").TryLock(), "lock is released after fn returns")
}
