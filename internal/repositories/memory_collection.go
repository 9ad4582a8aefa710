package repositories

import (
	"context"
	"fmt"
	"sync"
)

// MemoryCollection keeps records in an insertion-ordered slice.
type MemoryCollection[T Record] struct {
	mu    sync.RWMutex
	items []T
}

// NewMemoryCollection creates an empty collection.
func NewMemoryCollection[T Record]() *MemoryCollection[T] {
	return &MemoryCollection[T]{}
}

func (m *MemoryCollection[T]) List(_ context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *MemoryCollection[T]) Get(_ context.Context, id string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if idx := m.indexOf(id); idx >= 0 {
		return m.items[idx], nil
	}
	var zero T
	return zero, ErrNotFound
}

func (m *MemoryCollection[T]) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items), nil
}

func (m *MemoryCollection[T]) Create(_ context.Context, rec T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.indexOf(rec.RecordID()) >= 0 {
		var zero T
		return zero, fmt.Errorf("%w: id %s", ErrDuplicateKey, rec.RecordID())
	}
	m.items = append(m.items, rec)
	return rec, nil
}

func (m *MemoryCollection[T]) Modify(_ context.Context, id string, fn func(*T) error) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	idx := m.indexOf(id)
	if idx < 0 {
		return zero, ErrNotFound
	}
	current := m.items[idx]
	if err := fn(&current); err != nil {
		return zero, err
	}
	m.items[idx] = current
	return current, nil
}

func (m *MemoryCollection[T]) Delete(_ context.Context, id string) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	idx := m.indexOf(id)
	if idx < 0 {
		return zero, ErrNotFound
	}
	removed := m.items[idx]
	m.items = append(m.items[:idx], m.items[idx+1:]...)
	return removed, nil
}

// indexOf must be called with the lock held.
func (m *MemoryCollection[T]) indexOf(id string) int {
	for i := range m.items {
		if m.items[i].RecordID() == id {
			return i
		}
	}
	return -1
}
