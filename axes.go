package canopy

import (
	"fmt"

	"github.com/aretw0/canopy/pkg/callback"
	"github.com/aretw0/canopy/pkg/traversal"
)

// AxisScope is a transient view of a context that forces dispatch along a
// fixed axis: every Handle call runs exactly one pass of HandleAxis on the
// underlying context. Composition callbacks pass straight through so
// internal bookkeeping never triggers a traversal. The view carries no
// state of its own beyond the axis; it never mutates the underlying
// context.
type AxisScope struct {
	context *Context
	axis    traversal.Axis
}

// Handle dispatches the callback along the scoped axis.
func (s *AxisScope) Handle(cb any, greedy bool, composer callback.Handler) bool {
	if _, ok := cb.(*callback.Composition); ok {
		return s.context.Handle(cb, greedy, composer)
	}
	return s.context.HandleAxis(s.axis, cb, greedy, composer)
}

// Context returns the underlying context.
func (s *AxisScope) Context() *Context {
	return s.context
}

// Axis returns the forced axis.
func (s *AxisScope) Axis() traversal.Axis {
	return s.axis
}

// Equal reports whether other is this view, another view over the same
// underlying context, or the underlying context itself.
func (s *AxisScope) Equal(other any) bool {
	switch o := other.(type) {
	case *AxisScope:
		return o == s || o.context == s.context
	case *Context:
		return o == s.context
	default:
		return false
	}
}

// Along returns a view of c that dispatches along axis. It panics if axis is
// not a recognized traversal axis.
func (c *Context) Along(axis traversal.Axis) *AxisScope {
	if !axis.Valid() {
		panic(fmt.Sprintf("canopy: invalid traversal axis %v", axis))
	}
	return &AxisScope{context: c, axis: axis}
}

// ToSelf scopes dispatch to this context only.
func (c *Context) ToSelf() *AxisScope { return c.Along(traversal.Self) }

// ToRoot scopes dispatch to the tree root only.
func (c *Context) ToRoot() *AxisScope { return c.Along(traversal.Root) }

// ToChildren scopes dispatch to the direct children.
func (c *Context) ToChildren() *AxisScope { return c.Along(traversal.Child) }

// ToSiblings scopes dispatch to the siblings.
func (c *Context) ToSiblings() *AxisScope { return c.Along(traversal.Sibling) }

// ToAncestors scopes dispatch to the ancestors, nearest first.
func (c *Context) ToAncestors() *AxisScope { return c.Along(traversal.Ancestor) }

// ToDescendants scopes dispatch to the subtree below, level order.
func (c *Context) ToDescendants() *AxisScope { return c.Along(traversal.Descendant) }

// ToDescendantsReverse scopes dispatch to the subtree below, deepest level
// first.
func (c *Context) ToDescendantsReverse() *AxisScope { return c.Along(traversal.DescendantReverse) }

// ToSelfOrChildren scopes dispatch to this context, then its children.
func (c *Context) ToSelfOrChildren() *AxisScope { return c.Along(traversal.SelfOrChild) }

// ToSelfOrSiblings scopes dispatch to this context, then its siblings.
func (c *Context) ToSelfOrSiblings() *AxisScope { return c.Along(traversal.SelfOrSibling) }

// ToSelfOrAncestors scopes dispatch to this context, then its ancestors.
func (c *Context) ToSelfOrAncestors() *AxisScope { return c.Along(traversal.SelfOrAncestor) }

// ToSelfOrDescendants scopes dispatch to this context, then its subtree in
// level order.
func (c *Context) ToSelfOrDescendants() *AxisScope { return c.Along(traversal.SelfOrDescendant) }

// ToSelfOrDescendantsReverse scopes dispatch to the subtree deepest level
// first, then this context.
func (c *Context) ToSelfOrDescendantsReverse() *AxisScope {
	return c.Along(traversal.SelfOrDescendantReverse)
}

// ToSelfSiblingsOrAncestors scopes dispatch to this context, its siblings,
// then its ancestors.
func (c *Context) ToSelfSiblingsOrAncestors() *AxisScope {
	return c.Along(traversal.SelfSiblingOrAncestor)
}
