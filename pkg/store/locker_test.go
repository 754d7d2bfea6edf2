package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocker_Acquire(t *testing.T) {
	ctx := context.Background()
	l := NewLocker()

	release, err := l.Acquire(ctx, "a", time.Millisecond)
	assert.NoError(t, err)

	// same table is serialized
	_, err = l.Acquire(ctx, "a", time.Millisecond*10)
	assert.Equal(t, ErrBusy, err)

	// a different table proceeds in parallel
	releaseB, err := l.Acquire(ctx, "b", time.Millisecond)
	assert.NoError(t, err)
	releaseB()

	release()
	release() // releasing twice is safe

	release2, err := l.Acquire(ctx, "a", time.Millisecond)
	assert.NoError(t, err)
	release2()
}

func TestLocker_AcquireContextCanceled(t *testing.T) {
	l := NewLocker()

	release, err := l.Acquire(context.Background(), "a", time.Millisecond)
	assert.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = l.Acquire(ctx, "a", time.Second)
	assert.Equal(t, context.Canceled, err)
}

func TestLocker_Serializes(t *testing.T) {
	ctx := context.Background()
	l := NewLocker()

	var wg sync.WaitGroup
	counter := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			release, err := l.Acquire(ctx, "a", time.Second*5)
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			// unsynchronized writes here would trip the race detector
			counter++
		}()
	}

	wg.Wait()
	assert.Equal(t, 50, counter)
}

func TestLocker_Forget(t *testing.T) {
	ctx := context.Background()
	l := NewLocker()

	release, err := l.Acquire(ctx, "a", time.Millisecond)
	assert.NoError(t, err)

	l.Forget("a")
	release()

	// a fresh lease exists after Forget
	release2, err := l.Acquire(ctx, "a", time.Millisecond)
	assert.NoError(t, err)
	release2()
}
