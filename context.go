package canopy

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/canopy/internal/logging"
	"github.com/aretw0/canopy/pkg/callback"
)

// State is the lifecycle stage of a Context. It only ever moves forward:
// Active -> Ending -> Ended.
type State int

const (
	// StateActive means the context accepts children, stores, observers and
	// dispatch.
	StateActive State = iota
	// StateEnding means the end sequence is in flight: ending observers have
	// been notified and children are being unwound.
	StateEnding
	// StateEnded means the end sequence completed. The context is inert.
	StateEnded
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateEnding:
		return "ending"
	case StateEnded:
		return "ended"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Context is a node in a tree of lifetime-bounded scopes. It parents child
// contexts, stores values resolvable through the callback protocol, routes
// callbacks along traversal axes, and notifies observers when it or its
// children end.
//
// A Context is safe for concurrent use. Axis selection is scoped to each
// HandleAxis call, so concurrent dispatches with different axes on the same
// node are independent.
type Context struct {
	id        uuid.UUID
	createdAt time.Time
	parent    *Context
	logger    *slog.Logger

	handlers *callback.Composite
	registry *callback.Registry

	mu            sync.Mutex
	state         State
	endClaimed    bool
	children      []*Context
	subscriptions []*subscription
}

// Option configures a root Context.
type Option func(*Context)

// WithLogger sets a structured logger for the context tree. Children inherit
// it. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHandlers seeds the context's local handler chain.
func WithHandlers(handlers ...callback.Handler) Option {
	return func(c *Context) {
		c.handlers.Add(handlers...)
	}
}

// New creates a root context.
func New(opts ...Option) *Context {
	c := &Context{
		id:        uuid.New(),
		createdAt: time.Now(),
		logger:    logging.NewNop(),
		handlers:  callback.NewComposite(),
		registry:  callback.NewRegistry(),
		state:     StateActive,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the context's unique identifier.
func (c *Context) ID() uuid.UUID {
	return c.id
}

// CreatedAt returns the construction time.
func (c *Context) CreatedAt() time.Time {
	return c.createdAt
}

// State returns the current lifecycle stage.
func (c *Context) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Parent returns the owning context, or nil for a root.
func (c *Context) Parent() *Context {
	return c.parent
}

// Children returns a copy of the current child list, in creation order.
func (c *Context) Children() []*Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Context, len(c.children))
	copy(out, c.children)
	return out
}

// Root walks parent links to the top of the tree.
func (c *Context) Root() *Context {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// NewChild creates a context parented to c. It fails with ErrNotActive
// unless c is active.
func (c *Context) NewChild() (*Context, error) {
	c.mu.Lock()
	if c.state != StateActive {
		c.mu.Unlock()
		return nil, fmt.Errorf("new child: %w", ErrNotActive)
	}
	child := &Context{
		id:        uuid.New(),
		createdAt: time.Now(),
		parent:    c,
		logger:    c.logger,
		handlers:  callback.NewComposite(),
		registry:  callback.NewRegistry(),
		state:     StateActive,
	}
	c.children = append(c.children, child)
	c.mu.Unlock()

	c.logger.Debug("child context created",
		"context_id", c.id,
		"child_id", child.id,
	)
	return child, nil
}

// MustNewChild is NewChild panicking on failure, for construction code that
// has already checked the parent is active.
func (c *Context) MustNewChild() *Context {
	child, err := c.NewChild()
	if err != nil {
		panic(err)
	}
	return child
}

// Store registers values with the context-scoped registry so resolutions
// dispatched through c (or its descendants, along the parent chain) can find
// them. Nil values are skipped. Once the context has ended Store is a no-op.
// Returns c for chaining.
func (c *Context) Store(values ...any) *Context {
	if c.State() == StateEnded {
		return c
	}
	c.registry.Register(values...)
	return c
}

// AddHandlers appends handlers to the context's local chain. Returns c for
// chaining.
func (c *Context) AddHandlers(handlers ...callback.Handler) *Context {
	c.handlers.Add(handlers...)
	return c
}

// Observe subscribes an observer to lifecycle notifications. It fails with
// ErrNotActive unless c is active; a nil observer is a no-op. The returned
// unsubscribe removes this exact subscription; it never fails, even when
// called twice or after the context has ended.
func (c *Context) Observe(observer Observer) (func(), error) {
	c.mu.Lock()
	if c.state != StateActive {
		c.mu.Unlock()
		return nil, fmt.Errorf("observe: %w", ErrNotActive)
	}
	if observer == nil {
		c.mu.Unlock()
		return func() {}, nil
	}
	sub := &subscription{observer: observer}
	c.subscriptions = append(c.subscriptions, sub)
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subscriptions {
			if s == sub {
				c.subscriptions = append(c.subscriptions[:i], c.subscriptions[i+1:]...)
				return
			}
		}
	}, nil
}

// Unwind ends every current child, from a snapshot taken before iteration so
// removals during the sweep cannot skip or double-process an entry. The
// context itself stays as it is. Returns c.
func (c *Context) Unwind() *Context {
	for _, child := range c.Children() {
		child.End()
	}
	return c
}

// UnwindToRoot walks to the root of the tree, unwinds it (the root itself is
// not ended), and returns it.
func (c *Context) UnwindToRoot() *Context {
	return c.Root().Unwind()
}

// End finishes the context: observers subscribed at this moment are notified
// ContextEnding, every child is ended depth-first, and the same observers
// are notified ContextEnded. For a non-root context the parent's observers
// additionally see ChildContextEnding before the child leaves the parent's
// child list and ChildContextEnded once it has fully ended.
//
// End on a context that is already ending or ended is a safe no-op. The
// whole sequence runs exactly once even under concurrent callers.
func (c *Context) End() {
	c.mu.Lock()
	if c.state != StateActive || c.endClaimed {
		c.mu.Unlock()
		return
	}
	c.endClaimed = true
	c.mu.Unlock()

	if c.parent == nil {
		c.endSelf()
		return
	}

	p := c.parent
	p.mu.Lock()
	attached := false
	for _, child := range p.children {
		if child == c {
			attached = true
			break
		}
	}
	if !attached {
		// A child is only detached by its own end sequence, so a missing
		// entry means another end already ran.
		p.mu.Unlock()
		return
	}
	parentObservers := p.snapshotObserversLocked()
	p.mu.Unlock()

	parentObservers.childContextEnding(c)
	p.removeChild(c)
	c.endSelf()
	parentObservers.childContextEnded(c)
}

// endSelf runs the base end sequence: snapshot observers, Ending, notify,
// unwind children, Ended, notify, clear observers. The observer snapshot is
// taken before unwinding so observers present at the start of ending are the
// ones notified even if the unwind mutates the subscription list.
func (c *Context) endSelf() {
	c.mu.Lock()
	observers := c.snapshotObserversLocked()
	c.state = StateEnding
	c.mu.Unlock()

	c.logger.Debug("context ending", "context_id", c.id)
	observers.contextEnding(c)

	c.Unwind()

	c.mu.Lock()
	c.state = StateEnded
	c.mu.Unlock()

	observers.contextEnded(c)
	c.logger.Debug("context ended", "context_id", c.id)

	c.mu.Lock()
	c.subscriptions = nil
	c.mu.Unlock()
}

// Close ends the context and always returns nil, satisfying io.Closer so a
// context tree composes with the usual resource handling.
func (c *Context) Close() error {
	c.End()
	return nil
}

func (c *Context) snapshotObserversLocked() notifier {
	snapshot := make(notifier, len(c.subscriptions))
	for i, s := range c.subscriptions {
		snapshot[i] = s.observer
	}
	return snapshot
}

func (c *Context) removeChild(child *Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, cc := range c.children {
		if cc == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}
