package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
)

// MemoryDraftStore keeps form drafts in process memory with expiration.
// Used when Redis is not configured and as a test double.
type MemoryDraftStore struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

type memoryItem struct {
	value      []byte
	expireTime time.Time
}

// NewMemoryDraftStore creates a new in-memory draft store
func NewMemoryDraftStore() *MemoryDraftStore {
	store := &MemoryDraftStore{
		items: make(map[string]*memoryItem),
		now:   time.Now,
		stop:  make(chan struct{}),
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired(5 * time.Minute)

	return store
}

// Save stores a copy of the draft with expiration
func (ms *MemoryDraftStore) Save(_ context.Context, draft *entities.FormDraft, ttl time.Duration) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[draft.ID] = &memoryItem{
		value:      raw,
		expireTime: ms.now().Add(ttl),
	}
	return nil
}

// Get returns the draft, nil when absent or expired
func (ms *MemoryDraftStore) Get(_ context.Context, id string) (*entities.FormDraft, error) {
	ms.mu.RLock()
	item, exists := ms.items[id]
	ms.mu.RUnlock()

	if !exists || ms.now().After(item.expireTime) {
		return nil, nil
	}

	var draft entities.FormDraft
	if err := json.Unmarshal(item.value, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// Delete removes a draft
func (ms *MemoryDraftStore) Delete(_ context.Context, id string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, id)
	return nil
}

// Close stops the cleanup goroutine
func (ms *MemoryDraftStore) Close() {
	ms.once.Do(func() { close(ms.stop) })
}

// cleanupExpired periodically removes expired items
func (ms *MemoryDraftStore) cleanupExpired(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ms.stop:
			return
		case <-ticker.C:
			ms.mu.Lock()
			now := ms.now()
			for key, item := range ms.items {
				if now.After(item.expireTime) {
					delete(ms.items, key)
				}
			}
			ms.mu.Unlock()
		}
	}
}
