package canopy

import (
	"fmt"

	"github.com/aretw0/canopy/pkg/callback"
	"github.com/aretw0/canopy/pkg/traversal"
)

// Handle dispatches a callback through the context: the context handles
// locally (stored values, then the local handler chain), and if that did
// not settle the callback — it was unhandled, or the dispatch is greedy —
// the parent chain is consulted and the results are OR-ed.
//
// A nil composer defaults to the context itself.
func (c *Context) Handle(cb any, greedy bool, composer callback.Handler) bool {
	if composer == nil {
		composer = c
	}

	handled := c.handleLocal(cb, greedy, composer)
	if handled && !greedy {
		return true
	}
	if c.parent != nil {
		handled = c.parent.Handle(cb, greedy, composer) || handled
	}
	return handled
}

// HandleAxis dispatches a callback along axis for exactly this call. Self
// restricts the dispatch to local handling only. Any other axis traverses
// the tree from this node: the node itself handles locally, every other
// visited node handles restricted to Self so it cannot re-expand the axis.
// Traversal stops at the first handler once a non-greedy dispatch is
// handled.
//
// The axis is scoped to the call, never stored on the node, so concurrent
// dispatches with different axes on the same context are independent.
// HandleAxis panics if axis is not a recognized traversal axis.
func (c *Context) HandleAxis(axis traversal.Axis, cb any, greedy bool, composer callback.Handler) bool {
	if !axis.Valid() {
		panic(fmt.Sprintf("canopy: invalid traversal axis %v", axis))
	}
	if composer == nil {
		composer = c
	}

	if axis == traversal.Self {
		return c.handleLocal(cb, greedy, composer)
	}

	handled := false
	traversal.Traverse(axis, c, func(node *Context) bool {
		if node == c {
			handled = node.handleLocal(cb, greedy, composer) || handled
		} else {
			handled = node.HandleAxis(traversal.Self, cb, greedy, composer) || handled
		}
		return !handled || greedy
	})
	return handled
}

// handleLocal is the one-shot base handling of a single node: compositions
// are unwrapped, resolutions are answered with the context itself and its
// stored values, and whatever remains is offered to the local handler chain.
func (c *Context) handleLocal(cb any, greedy bool, composer callback.Handler) bool {
	target := cb
	if comp, ok := cb.(*callback.Composition); ok {
		target = comp.Callback()
	}

	handled := false
	if res, ok := target.(*callback.Resolution); ok {
		if res.Offer(c) {
			if !greedy {
				return true
			}
			handled = true
		}
		if c.registry.Handle(res, greedy, composer) {
			if !greedy {
				return true
			}
			handled = true
		}
	}
	if c.handlers.Handle(target, greedy, composer) {
		handled = true
	}
	return handled
}
