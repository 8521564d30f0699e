package pagecache

import (
	"context"
	"sync"
	"time"
)

// Page is one rendered HTML document and the moment it was generated.
type Page struct {
	Body        []byte    `json:"body"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Store keeps the last successfully generated page per key. Pages never
// expire from a store: a stale page is still served while it is rebuilt.
type Store interface {
	Get(ctx context.Context, key string) (Page, bool, error)
	Put(ctx context.Context, key string, page Page) error
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu    sync.RWMutex
	pages map[string]Page
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{pages: make(map[string]Page)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Page, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pages[key]
	return p, ok, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, page Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[key] = page
	return nil
}
