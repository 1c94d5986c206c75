package util

import (
	"sync"

	"github.com/google/uuid"
)

// KeyedMutex serializes work per key. Ledger mutations and balance
// replays for one portfolio must not interleave; different portfolios
// are independent.
type KeyedMutex struct {
	mutexes sync.Map
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{}
}

func (k *KeyedMutex) Lock(key uuid.UUID) func() {
	value, _ := k.mutexes.LoadOrStore(key, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
