package trendstore

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/ai-stylist/internal/domain/trending"
)

// MemoryStore keeps the trend tally in process memory. Counts reset on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	counts   map[string]int64
	displays map[string]string
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counts:   make(map[string]int64),
		displays: make(map[string]string),
	}
}

// Increment bumps the counter for a canonical name and records its first display form.
func (s *MemoryStore) Increment(_ context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[canonical]++
	if _, exists := s.displays[canonical]; !exists && display != "" {
		s.displays[canonical] = display
	}
	return nil
}

// Top returns the most frequently identified items.
func (s *MemoryStore) Top(_ context.Context, limit int) ([]trending.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.counts)
	}
	items := make([]trending.Item, 0, len(s.counts))
	for canonical, count := range s.counts {
		name := s.displays[canonical]
		if name == "" {
			name = canonical
		}
		items = append(items, trending.Item{Name: name, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Name < items[j].Name
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ trending.Store = (*MemoryStore)(nil)
