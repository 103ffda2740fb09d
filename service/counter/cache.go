package counter

import (
	"sync"
	"sync/atomic"
	"time"
)

// Cache defaults.
const (
	defaultRetryBudget = 8
)

// CacheOptions tune the durability behaviour of the caching Service.
type CacheOptions struct {
	// FlushInterval bounds the crash loss window: dirty counts are persisted
	// at least this often. Zero selects inline write-through, where every
	// increment is persisted before it returns.
	FlushInterval time.Duration
	// RetryBudget is the number of consecutive store write failures tolerated
	// before calls start reporting ErrStorageUnavailable alongside their
	// still-applied counts.
	RetryBudget int
}

// cacheEntry is the resident state of a single key. The entry mutex covers
// count, dirty and loaded, and is held across store I/O for this key only, so
// a slow store never blocks operations on other keys.
type cacheEntry struct {
	mu sync.Mutex

	count  uint64
	dirty  bool
	loaded bool
}

type cacheService struct {
	store Store
	opts  CacheOptions

	// mu guards the key set only. Entries are inserted unloaded, so two
	// first touches of the same key serialize on the entry mutex and a
	// single store load wins.
	mu      sync.RWMutex
	entries map[string]*cacheEntry

	failures int32

	closeOnce sync.Once
	closing   chan struct{}
	done      chan struct{}
}

// CacheService returns the in-memory counting Service on top of store. Counts
// are read through on first touch of a key and written behind on the
// configured interval, or written through inline if the interval is zero.
func CacheService(store Store, opts CacheOptions) Service {
	if opts.RetryBudget <= 0 {
		opts.RetryBudget = defaultRetryBudget
	}

	s := &cacheService{
		store:   store,
		opts:    opts,
		entries: map[string]*cacheEntry{},
		closing: make(chan struct{}),
		done:    make(chan struct{}),
	}

	if opts.FlushInterval > 0 {
		go s.run()
	} else {
		close(s.done)
	}

	return s
}

func (s *cacheService) Increment(key string) (uint64, error) {
	e := s.entry(key)

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.loaded {
		if err := s.load(key, e); err != nil {
			return 0, err
		}
	}

	e.count++
	e.dirty = true

	if s.opts.FlushInterval == 0 {
		_ = s.flushEntry(key, e)
	}

	if int(atomic.LoadInt32(&s.failures)) >= s.opts.RetryBudget {
		return e.count, wrapError(ErrStorageUnavailable, "%s", key)
	}

	return e.count, nil
}

func (s *cacheService) Peek(key string) (uint64, error) {
	e := s.entry(key)

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.loaded {
		if err := s.load(key, e); err != nil {
			return 0, err
		}
	}

	return e.count, nil
}

func (s *cacheService) Flush() error {
	var errs int

	for _, key := range s.keys() {
		s.mu.RLock()
		e := s.entries[key]
		s.mu.RUnlock()

		e.mu.Lock()
		err := s.flushEntry(key, e)
		e.mu.Unlock()

		if err != nil {
			errs++
		}
	}

	if errs > 0 {
		return wrapError(ErrStorageUnavailable, "%d keys not persisted", errs)
	}

	return nil
}

func (s *cacheService) Close() error {
	s.closeOnce.Do(func() {
		close(s.closing)
	})
	<-s.done

	return s.Flush()
}

// entry returns the resident entry for key, inserting an unloaded one if the
// key was never touched. The insert is the only path taking the write lock.
func (s *cacheService) entry(key string) *cacheEntry {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		return e
	}

	e = &cacheEntry{}
	s.entries[key] = e

	return e
}

// load fills the entry from the store. Callers must hold the entry mutex.
func (s *cacheService) load(key string, e *cacheEntry) error {
	count, err := s.store.Load(key)
	if err != nil {
		if !IsKeyNotFound(err) {
			return wrapError(ErrStorageUnavailable, "load %s: %s", key, err)
		}

		count = CountUnseen
	}

	e.count = count
	e.loaded = true

	return nil
}

// flushEntry persists the entry's current count. Callers must hold the entry
// mutex, which keeps writes for a key in increasing count order.
func (s *cacheService) flushEntry(key string, e *cacheEntry) error {
	if !e.dirty {
		return nil
	}

	if err := s.store.Put(key, e.count); err != nil {
		atomic.AddInt32(&s.failures, 1)

		return err
	}

	atomic.StoreInt32(&s.failures, 0)
	e.dirty = false

	return nil
}

func (s *cacheService) keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ks := make([]string, 0, len(s.entries))
	for k := range s.entries {
		ks = append(ks, k)
	}

	return ks
}

func (s *cacheService) run() {
	defer close(s.done)

	t := time.NewTicker(s.opts.FlushInterval)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			_ = s.Flush()
		case <-s.closing:
			return
		}
	}
}
