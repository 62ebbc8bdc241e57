package keymutex

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializesSameKey(t *testing.T) {
	t.Parallel()

	km := New()
	const workers = 50

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("emp-1/2025/2")
			counter++
			km.Unlock("emp-1/2025/2")
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestIndependentKeysDoNotBlock(t *testing.T) {
	t.Parallel()

	km := New()
	km.Lock("a")

	done := make(chan struct{})
	go func() {
		km.Lock("b")
		km.Unlock("b")
		close(done)
	}()

	<-done
	km.Unlock("a")
}

func TestEntriesAreReleased(t *testing.T) {
	t.Parallel()

	km := New()
	km.Lock("x")
	km.Unlock("x")

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.entries)
}

func TestUnlockUnheldPanics(t *testing.T) {
	t.Parallel()

	km := New()
	assert.Panics(t, func() { km.Unlock("nope") })
}
