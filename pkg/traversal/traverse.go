// Package traversal walks context trees along named axes.
//
// It is deliberately generic: any node type exposing Parent and Children can
// be traversed, so adapters (and tests) can walk their own structures with
// the same ordering guarantees the core relies on.
package traversal

import "fmt"

// Node is the tree shape Traverse operates on. Parent returns the zero value
// for a root. Trees are acyclic by construction; Traverse performs no cycle
// detection.
type Node[T comparable] interface {
	comparable
	Parent() T
	Children() []T
}

// Visitor is invoked once per visited node. Returning false stops the walk
// immediately.
type Visitor[T any] func(node T) bool

// Traverse visits the nodes reachable from start along axis, in the order
// documented on each Axis constant, invoking visit per node. It returns
// false if the visitor stopped the walk early, true otherwise.
//
// Traverse panics if axis is not a recognized value.
func Traverse[T Node[T]](axis Axis, start T, visit Visitor[T]) bool {
	switch axis {
	case Self:
		return visit(start)
	case Root:
		return visit(rootOf(start))
	case Child:
		return visitAll(start.Children(), visit)
	case Sibling:
		return visitSiblings(start, visit)
	case Ancestor:
		return visitAncestors(start, visit)
	case Descendant:
		return visitLevels(levels(start), visit)
	case DescendantReverse:
		return visitLevelsReverse(levels(start), visit)
	case SelfOrChild:
		return visit(start) && visitAll(start.Children(), visit)
	case SelfOrSibling:
		return visit(start) && visitSiblings(start, visit)
	case SelfOrAncestor:
		return visit(start) && visitAncestors(start, visit)
	case SelfOrDescendant:
		return visit(start) && visitLevels(levels(start), visit)
	case SelfOrDescendantReverse:
		return visitLevelsReverse(levels(start), visit) && visit(start)
	case SelfSiblingOrAncestor:
		return visit(start) && visitSiblings(start, visit) && visitAncestors(start, visit)
	default:
		panic(fmt.Sprintf("traversal: invalid axis %v", axis))
	}
}

func rootOf[T Node[T]](n T) T {
	var zero T
	for {
		p := n.Parent()
		if p == zero {
			return n
		}
		n = p
	}
}

func visitAll[T Node[T]](nodes []T, visit Visitor[T]) bool {
	for _, n := range nodes {
		if !visit(n) {
			return false
		}
	}
	return true
}

func visitSiblings[T Node[T]](n T, visit Visitor[T]) bool {
	var zero T
	p := n.Parent()
	if p == zero {
		return true
	}
	for _, sibling := range p.Children() {
		if sibling == n {
			continue
		}
		if !visit(sibling) {
			return false
		}
	}
	return true
}

func visitAncestors[T Node[T]](n T, visit Visitor[T]) bool {
	var zero T
	for p := n.Parent(); p != zero; p = p.Parent() {
		if !visit(p) {
			return false
		}
	}
	return true
}

// levels collects the subtree below n (excluding n) as breadth-first
// levels. A snapshot is taken level by level, so mutation of the tree by a
// visitor cannot corrupt the walk already in flight.
func levels[T Node[T]](n T) [][]T {
	var all [][]T
	current := n.Children()
	for len(current) > 0 {
		level := make([]T, len(current))
		copy(level, current)
		all = append(all, level)
		var next []T
		for _, c := range level {
			next = append(next, c.Children()...)
		}
		current = next
	}
	return all
}

func visitLevels[T Node[T]](all [][]T, visit Visitor[T]) bool {
	for _, level := range all {
		if !visitAll(level, visit) {
			return false
		}
	}
	return true
}

// visitLevelsReverse walks the deepest level first; nodes within a level
// keep their insertion order.
func visitLevelsReverse[T Node[T]](all [][]T, visit Visitor[T]) bool {
	for i := len(all) - 1; i >= 0; i-- {
		if !visitAll(all[i], visit) {
			return false
		}
	}
	return true
}
