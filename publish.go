package canopy

import "github.com/aretw0/canopy/pkg/callback"

// Contextual is anything that can name its enclosing context. AxisScope
// implements it; application handlers that live inside a context usually
// should too, so Publish can find their scope.
type Contextual interface {
	Context() *Context
}

// ResolveContext finds the nearest enclosing context reachable from a
// handler: the handler itself if it is a *Context, its Contextual context,
// or whatever a *Context resolution through the handler chain yields.
// Returns nil when no context is reachable.
func ResolveContext(h callback.Handler) *Context {
	switch t := h.(type) {
	case nil:
		return nil
	case *Context:
		return t
	case Contextual:
		return t.Context()
	}
	if ctx, ok := callback.Resolve[*Context](h); ok {
		return ctx
	}
	return nil
}

// Publish broadcasts a callback to every willing handler in the scope of h:
// the nearest enclosing context and all of its descendants. When no context
// is reachable the callback is dispatched greedily on h itself. Reports
// whether anyone handled it.
func Publish(h callback.Handler, cb any) bool {
	if ctx := ResolveContext(h); ctx != nil {
		return ctx.ToSelfOrDescendants().Handle(cb, true, nil)
	}
	if h == nil {
		return false
	}
	return h.Handle(cb, true, nil)
}

// PublishFromRoot is Publish scoped to the whole tree: the broadcast starts
// at the root of the resolved context.
func PublishFromRoot(h callback.Handler, cb any) bool {
	if ctx := ResolveContext(h); ctx != nil {
		return ctx.Root().ToSelfOrDescendants().Handle(cb, true, nil)
	}
	if h == nil {
		return false
	}
	return h.Handle(cb, true, nil)
}
