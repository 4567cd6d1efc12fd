package registry

import (
	"container/list"
	"context"
	"sync"
)

// Memory is a thread-safe in-process set of taken slugs.
// With a positive capacity the least recently claimed slugs are forgotten
// once the set is full.
type Memory struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
}

// NewMemory creates a set pre-populated with taken slugs.
// A capacity <= 0 keeps every slug.
func NewMemory(capacity int, taken ...string) *Memory {
	m := &Memory{
		capacity: capacity,
		items:    make(map[string]*list.Element, len(taken)),
		order:    list.New(),
	}
	m.Add(taken...)
	return m
}

// Claim is a slug.Predicate that accepts a free candidate and marks it taken
// in the same step, so concurrent generators never receive the same slug.
func (m *Memory) Claim(_ context.Context, candidate string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[candidate]; ok {
		return false, nil
	}
	m.put(candidate)
	return true, nil
}

// Available is a slug.Predicate that accepts candidates not in the set
// without reserving them.
func (m *Memory) Available(_ context.Context, candidate string) (bool, error) {
	return !m.Contains(candidate), nil
}

// Add marks slugs as taken.
func (m *Memory) Add(slugs ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range slugs {
		if elem, ok := m.items[s]; ok {
			m.order.MoveToFront(elem)
			continue
		}
		m.put(s)
	}
}

// Release frees a slug. It reports whether the slug was taken.
func (m *Memory) Release(slug string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.items[slug]
	if !ok {
		return false
	}
	m.order.Remove(elem)
	delete(m.items, slug)
	return true
}

// Contains reports whether a slug is taken.
func (m *Memory) Contains(slug string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[slug]
	return ok
}

// Len returns the number of taken slugs.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

// Must be called with lock held.
func (m *Memory) put(slug string) {
	m.items[slug] = m.order.PushFront(slug)
	if m.capacity > 0 && m.order.Len() > m.capacity {
		oldest := m.order.Back()
		m.order.Remove(oldest)
		delete(m.items, oldest.Value.(string))
	}
}
