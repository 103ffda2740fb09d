package counter

import "sync"

type memStore struct {
	mu     sync.RWMutex
	counts map[string]uint64
}

// MemStore returns a memory based Store implementation for tests and
// ephemeral deployments.
func MemStore() Store {
	return &memStore{
		counts: map[string]uint64{},
	}
}

func (s *memStore) Load(key string) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count, ok := s.counts[key]
	if !ok {
		return 0, wrapError(ErrKeyNotFound, "%s", key)
	}

	return count, nil
}

func (s *memStore) Put(key string, count uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if count > s.counts[key] {
		s.counts[key] = count
	}

	return nil
}

func (s *memStore) Setup() error {
	return nil
}

func (s *memStore) Teardown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts = map[string]uint64{}

	return nil
}
