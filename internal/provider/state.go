// Package provider keeps the session's view of each resource in memory on
// top of the gateway, and applies mutations to that view only after the
// gateway accepted them.
package provider

import (
	"context"
	"sync"
)

// State is the load state of a provider.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Error is returned by every provider operation that failed.
type Error struct {
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// fail builds an Error whose message is the underlying one, or def when it is empty.
func fail(op, def string, err error) *Error {
	msg := def
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &Error{Op: op, Message: msg, Err: err}
}

// cache is the list held by a provider plus its load state.
type cache[T any] struct {
	mu      sync.RWMutex
	items   []T
	state   State
	message string
	idOf    func(T) string
}

func newCache[T any](idOf func(T) string) *cache[T] {
	return &cache[T]{idOf: idOf}
}

// Items returns a copy of the cached list.
func (c *cache[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *cache[T]) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Message is the last load failure, empty unless State is StateError.
func (c *cache[T]) Message() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.message
}

// Reset empties the cache and returns it to idle.
func (c *cache[T]) Reset() {
	c.mu.Lock()
	c.items = nil
	c.state = StateIdle
	c.message = ""
	c.mu.Unlock()
}

func (c *cache[T]) load(ctx context.Context, op, def string, fetch func(context.Context) ([]T, error)) error {
	c.mu.Lock()
	c.state = StateLoading
	c.message = ""
	c.mu.Unlock()

	items, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		pe := fail(op, def, err)
		c.state = StateError
		c.message = pe.Message
		return pe
	}
	c.items = items
	c.state = StateReady
	return nil
}

func (c *cache[T]) prepend(v T) {
	c.mu.Lock()
	c.items = append([]T{v}, c.items...)
	c.mu.Unlock()
}

func (c *cache[T]) replace(v T) {
	id := c.idOf(v)
	c.mu.Lock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = v
		}
	}
	c.mu.Unlock()
}

func (c *cache[T]) remove(id string) {
	c.removeWhere(func(v T) bool { return c.idOf(v) == id })
}

func (c *cache[T]) removeWhere(match func(T) bool) {
	c.mu.Lock()
	kept := c.items[:0:0]
	for _, v := range c.items {
		if !match(v) {
			kept = append(kept, v)
		}
	}
	c.items = kept
	c.mu.Unlock()
}

func (c *cache[T]) mapWhere(match func(T) bool, fn func(T) T) {
	c.mu.Lock()
	for i, v := range c.items {
		if match(v) {
			c.items[i] = fn(v)
		}
	}
	c.mu.Unlock()
}

func (c *cache[T]) find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, v := range c.items {
		if match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (c *cache[T]) filter(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, v := range c.items {
		if match(v) {
			out = append(out, v)
		}
	}
	return out
}
