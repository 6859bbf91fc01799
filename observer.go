package canopy

// Observer receives lifecycle notifications from a context it subscribed to
// via Observe.
//
// ContextEnding/ContextEnded fire around the subscribed context's own end
// sequence. ChildContextEnding/ChildContextEnded fire around the end of a
// direct child of the subscribed context, with the child as the argument.
//
// Observer methods are invoked synchronously during End. A panicking
// observer propagates to the End caller and aborts the remaining
// notifications of that pass; nothing is swallowed.
type Observer interface {
	ContextEnding(ctx *Context)
	ContextEnded(ctx *Context)
	ChildContextEnding(child *Context)
	ChildContextEnded(child *Context)
}

// ObserverBase is a no-op Observer for embedding, so implementations only
// spell out the notifications they care about.
type ObserverBase struct{}

func (ObserverBase) ContextEnding(*Context)      {}
func (ObserverBase) ContextEnded(*Context)       {}
func (ObserverBase) ChildContextEnding(*Context) {}
func (ObserverBase) ChildContextEnded(*Context)  {}

// subscription is the token identity behind an Observe call. Unsubscribing
// removes this exact token, which keeps unsubscribe idempotent even when the
// same observer value was subscribed twice.
type subscription struct {
	observer Observer
}

// notifier is a frozen snapshot of subscribed observers, fanning a lifecycle
// event out in subscription order. Snapshotting makes subscribe/unsubscribe
// during a notification pass affect only later passes.
type notifier []Observer

func (n notifier) contextEnding(ctx *Context) {
	for _, o := range n {
		o.ContextEnding(ctx)
	}
}

func (n notifier) contextEnded(ctx *Context) {
	for _, o := range n {
		o.ContextEnded(ctx)
	}
}

func (n notifier) childContextEnding(child *Context) {
	for _, o := range n {
		o.ChildContextEnding(child)
	}
}

func (n notifier) childContextEnded(child *Context) {
	for _, o := range n {
		o.ChildContextEnded(child)
	}
}
