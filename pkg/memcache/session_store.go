package memcache

import (
	"sync"
	"time"
)

// Store is an in-memory key/value store whose entries expire after a TTL.
// Every successful read or update pushes the expiry forward.
type Store[V any] interface {
	Set(key string, value V)
	Get(key string) (V, bool)

	// Update runs fn on the stored value under the store lock and keeps the
	// result when fn returns nil. It reports false when the key is missing or
	// expired.
	Update(key string, fn func(v *V) error) (V, bool, error)

	Delete(key string)
	Len() int
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type TTLStore[V any] struct {
	mu   sync.RWMutex
	ttl  time.Duration
	now  func() time.Time
	data map[string]entry[V]

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func NewTTLStore[V any](ttl time.Duration) *TTLStore[V] {
	return &TTLStore[V]{
		ttl:  ttl,
		now:  time.Now,
		data: make(map[string]entry[V]),
	}
}

func (s *TTLStore[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry[V]{
		value:     value,
		expiresAt: s.now().Add(s.ttl),
	}
}

func (s *TTLStore[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(key)
	if !ok {
		var zero V
		return zero, false
	}
	e.expiresAt = s.now().Add(s.ttl)
	s.data[key] = e
	return e.value, true
}

func (s *TTLStore[V]) Update(key string, fn func(v *V) error) (V, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(key)
	if !ok {
		var zero V
		return zero, false, nil
	}

	v := e.value
	if err := fn(&v); err != nil {
		return e.value, true, err
	}
	s.data[key] = entry[V]{value: v, expiresAt: s.now().Add(s.ttl)}
	return v, true, nil
}

func (s *TTLStore[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

func (s *TTLStore[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// live must be called with the lock held. Expired entries are removed.
func (s *TTLStore[V]) live(key string) (entry[V], bool) {
	e, ok := s.data[key]
	if !ok {
		return e, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.data, key)
		return e, false
	}
	return e, true
}

// Sweep drops every expired entry and returns how many were removed.
func (s *TTLStore[V]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, key)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps expired entries every interval until StopJanitor.
func (s *TTLStore[V]) StartJanitor(interval time.Duration) {
	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	stop, done := s.stop, s.done
	s.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-stop:
				return
			}
		}
	}()
}

// StopJanitor stops the sweeper and waits for it to exit. Safe to call more
// than once, and without a running janitor.
func (s *TTLStore[V]) StopJanitor() {
	s.mu.RLock()
	stop, done := s.stop, s.done
	s.mu.RUnlock()
	if stop == nil {
		return
	}
	s.once.Do(func() { close(stop) })
	<-done
}
