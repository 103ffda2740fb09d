package cache

import (
	"strings"
	"sync"
)

type memByteService struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// MemByteService returns a memory based ByteService implementation.
func MemByteService() ByteService {
	return &memByteService{
		data: map[string][]byte{},
	}
}

func (s *memByteService) Get(ns, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[prefixKey(ns, key)]
	if !ok {
		return nil, wrapError(ErrKeyNotFound, "%s%s%s", ns, KeySeparator, key)
	}

	return data, nil
}

func (s *memByteService) Set(ns, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := make([]byte, len(data))
	copy(d, data)

	s.data[prefixKey(ns, key)] = d

	return nil
}

type nopByteService struct{}

// NopByteService returns a ByteService which never stores and never hits, for
// deployments without a cache backend.
func NopByteService() ByteService {
	return &nopByteService{}
}

func (s *nopByteService) Get(ns, key string) ([]byte, error) {
	return nil, wrapError(ErrKeyNotFound, "%s", strings.Join([]string{ns, key}, KeySeparator))
}

func (s *nopByteService) Set(ns, key string, data []byte) error {
	return nil
}
