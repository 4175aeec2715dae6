package session

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/collection"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	defaultTTL     = 30 * time.Minute
	janitorSlots   = 300
	janitorTickSec = 1
)

// Store abstracts session persistence. Update serializes all
// read-modify-write cycles for one session id, which is what prevents lost
// updates when duplicate webhook deliveries race.
type Store interface {
	Get(id string) (Session, bool, error)
	Update(id string, fn func(*Session) error) error
	Delete(id string) error
}

type memoryEntry struct {
	mu   sync.Mutex
	sess *Session
}

// MemoryStore keeps sessions in process memory with TTL eviction. A timing
// wheel slides every session's timer on touch and evicts it after the idle
// window, so abandoned carts do not accumulate.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	wheel   *collection.TimingWheel
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	s := &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
	}
	wheel, err := collection.NewTimingWheel(janitorTickSec*time.Second, janitorSlots, func(key, _ any) {
		id, ok := key.(string)
		if !ok {
			return
		}
		s.evict(id)
	})
	if err != nil {
		logx.Errorf("session store: timing wheel init failed: %v", err)
	} else {
		s.wheel = wheel
	}
	return s
}

func (s *MemoryStore) Get(id string) (Session, bool, error) {
	s.mu.Lock()
	entry, ok := s.entries[id]
	s.mu.Unlock()
	if !ok {
		return Session{}, false, nil
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	// deep copy: the caller iterates the snapshot outside the entry lock
	return entry.sess.Clone(), true, nil
}

func (s *MemoryStore) Update(id string, fn func(*Session) error) error {
	s.mu.Lock()
	entry, ok := s.entries[id]
	if !ok {
		entry = &memoryEntry{sess: New(id)}
		s.entries[id] = entry
	}
	s.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if err := fn(entry.sess); err != nil {
		return err
	}
	entry.sess.UpdatedAt = time.Now()
	s.touch(id, ok)
	return nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	if s.wheel != nil {
		_ = s.wheel.RemoveTimer(id)
	}
	return nil
}

// Stop releases the eviction timer. Intended for tests.
func (s *MemoryStore) Stop() {
	if s.wheel != nil {
		s.wheel.Stop()
	}
}

func (s *MemoryStore) touch(id string, known bool) {
	if s.wheel == nil {
		return
	}
	if known {
		if err := s.wheel.MoveTimer(id, s.ttl); err == nil {
			return
		}
	}
	_ = s.wheel.SetTimer(id, id, s.ttl)
}

func (s *MemoryStore) evict(id string) {
	s.mu.Lock()
	entry, ok := s.entries[id]
	s.mu.Unlock()
	if !ok {
		return
	}

	entry.mu.Lock()
	idle := time.Since(entry.sess.UpdatedAt)
	entry.mu.Unlock()

	// a touch may have raced the timer callback
	if idle < s.ttl {
		return
	}
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	logx.Infof("session store: evicted idle session %s", id)
}
