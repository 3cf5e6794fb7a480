package memory

import "sync"

// keyedMutex hands out one mutex per key so commits on different complaints
// never contend.
type keyedMutex struct {
	locks sync.Map
}

func (k *keyedMutex) Lock(key string) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
