package util

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex(t *testing.T) {
	t.Run("serializes work on the same key", func(t *testing.T) {
		km := NewKeyedMutex()
		key := uuid.New()

		counter := 0
		wg := sync.WaitGroup{}
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := km.Lock(key)
				defer unlock()
				counter++
			}()
		}
		wg.Wait()

		require.Equal(t, 50, counter)
	})

	t.Run("different keys do not block each other", func(t *testing.T) {
		km := NewKeyedMutex()

		unlockA := km.Lock(uuid.New())
		defer unlockA()

		done := make(chan struct{})
		go func() {
			unlockB := km.Lock(uuid.New())
			unlockB()
			close(done)
		}()

		<-done
	})
}
