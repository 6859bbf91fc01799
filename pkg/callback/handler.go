// Package callback defines the generic callback-handling capability the
// context tree composes over: a Handler processes an arbitrary callback and
// reports whether it was handled, and a small set of concrete handlers
// (Composite, Registry) cover ordered fan-out and value resolution.
package callback

import "sync"

// Handler processes a callback and reports whether it was handled.
//
// greedy asks the handler to keep offering the callback to further
// candidates even after one has handled it, aggregating the result.
// composer is the handler the dispatch originated from, so nested handling
// can re-enter the full chain; implementations must tolerate nil.
type Handler interface {
	Handle(callback any, greedy bool, composer Handler) bool
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(callback any, greedy bool, composer Handler) bool

// Handle invokes the function.
func (f HandlerFunc) Handle(callback any, greedy bool, composer Handler) bool {
	return f(callback, greedy, composer)
}

// Composite fans a callback out to an ordered list of handlers. With greedy
// false it stops at the first handler that reports handled; with greedy true
// it offers the callback to every handler and reports whether any handled
// it. Safe for concurrent use; a handler added during a dispatch is seen
// only by later dispatches.
type Composite struct {
	mu       sync.RWMutex
	handlers []Handler
}

// NewComposite creates a composite over the given handlers, in order.
func NewComposite(handlers ...Handler) *Composite {
	c := &Composite{}
	c.Add(handlers...)
	return c
}

// Add appends handlers to the end of the chain, skipping nils.
func (c *Composite) Add(handlers ...Handler) *Composite {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, h := range handlers {
		if h != nil {
			c.handlers = append(c.handlers, h)
		}
	}
	return c
}

// Handle dispatches the callback across the chain.
func (c *Composite) Handle(callback any, greedy bool, composer Handler) bool {
	c.mu.RLock()
	snapshot := make([]Handler, len(c.handlers))
	copy(snapshot, c.handlers)
	c.mu.RUnlock()

	handled := false
	for _, h := range snapshot {
		if h.Handle(callback, greedy, composer) {
			if !greedy {
				return true
			}
			handled = true
		}
	}
	return handled
}

// Composition wraps a callback dispatched internally on behalf of another
// handler. Axis-scoping views pass compositions through untouched so that
// bookkeeping traffic never re-arms a traversal.
type Composition struct {
	callback any
}

// NewComposition wraps callback for internal dispatch.
func NewComposition(callback any) *Composition {
	return &Composition{callback: callback}
}

// Callback returns the wrapped callback.
func (c *Composition) Callback() any {
	return c.callback
}
