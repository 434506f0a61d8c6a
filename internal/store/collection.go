package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// collection is a mutex-guarded ordered slice, most recent first.
// Ids handed out by newID are never handed out again, even after deletion.
type collection[T any] struct {
	mu      sync.RWMutex
	items   []T
	issued  map[string]struct{}
	idOf    func(T) string
	latency time.Duration
}

func newCollection[T any](idOf func(T) string, latency time.Duration, seed []T) *collection[T] {
	c := &collection[T]{
		items:   append([]T(nil), seed...),
		issued:  make(map[string]struct{}, len(seed)),
		idOf:    idOf,
		latency: latency,
	}
	for _, v := range seed {
		c.issued[idOf(v)] = struct{}{}
	}
	return c
}

func (c *collection[T]) wait(ctx context.Context) error {
	if c.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(c.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []T{}
	for _, v := range c.items {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

func (c *collection[T]) find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, v := range c.items {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) newIDLocked() string {
	for {
		id := uuid.NewString()
		if _, dup := c.issued[id]; !dup {
			c.issued[id] = struct{}{}
			return id
		}
	}
}

// insert prepends the value built for a fresh id. check runs under the same
// lock, so uniqueness rules cannot race with the insert.
func (c *collection[T]) insert(check func(items []T) error, build func(id string) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if check != nil {
		if err := check(c.items); err != nil {
			var zero T
			return zero, err
		}
	}
	v := build(c.newIDLocked())
	c.items = append([]T{v}, c.items...)
	return v, nil
}

// update replaces the entry with the given id by fn's result.
// ok is false when no entry has that id.
func (c *collection[T]) update(id string, fn func(cur T, items []T) (T, error)) (v T, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, cur := range c.items {
		if c.idOf(cur) != id {
			continue
		}
		next, err := fn(cur, c.items)
		if err != nil {
			return cur, true, err
		}
		c.items[i] = next
		return next, true, nil
	}
	return v, false, nil
}

func (c *collection[T]) updateWhere(pred func(T) bool, fn func(T) T) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	changed := []T{}
	for i, cur := range c.items {
		if pred(cur) {
			c.items[i] = fn(cur)
			changed = append(changed, c.items[i])
		}
	}
	return changed
}

func (c *collection[T]) removeWhere(pred func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0:0]
	for _, v := range c.items {
		if !pred(v) {
			kept = append(kept, v)
		}
	}
	n := len(c.items) - len(kept)
	c.items = kept
	return n
}

func (c *collection[T]) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
