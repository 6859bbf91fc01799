package traversal

import "fmt"

// Axis names a direction over a context tree. Dispatch along an axis visits
// the nodes reachable from a starting node in the order documented on
// Traverse.
type Axis int

const (
	// Self visits only the starting node.
	Self Axis = iota
	// Root visits only the tree root of the starting node.
	Root
	// Child visits the direct children of the starting node, in insertion
	// order.
	Child
	// Sibling visits the other children of the starting node's parent, in
	// insertion order.
	Sibling
	// Ancestor visits the parent, then the grandparent, up to the root.
	Ancestor
	// Descendant visits the subtree below the starting node in level order.
	Descendant
	// DescendantReverse visits the subtree below the starting node deepest
	// level first.
	DescendantReverse
	// SelfOrChild visits the starting node, then its direct children.
	SelfOrChild
	// SelfOrSibling visits the starting node, then its siblings.
	SelfOrSibling
	// SelfOrAncestor visits the starting node, then its ancestors.
	SelfOrAncestor
	// SelfOrDescendant visits the starting node, then its subtree in level
	// order.
	SelfOrDescendant
	// SelfOrDescendantReverse visits the subtree deepest level first, then
	// the starting node.
	SelfOrDescendantReverse
	// SelfSiblingOrAncestor visits the starting node, then its siblings,
	// then its ancestors.
	SelfSiblingOrAncestor
)

// Valid reports whether a is a recognized traversal axis.
func (a Axis) Valid() bool {
	return a >= Self && a <= SelfSiblingOrAncestor
}

var axisNames = [...]string{
	Self:                    "self",
	Root:                    "root",
	Child:                   "child",
	Sibling:                 "sibling",
	Ancestor:                "ancestor",
	Descendant:              "descendant",
	DescendantReverse:       "descendant-reverse",
	SelfOrChild:             "self-or-child",
	SelfOrSibling:           "self-or-sibling",
	SelfOrAncestor:          "self-or-ancestor",
	SelfOrDescendant:        "self-or-descendant",
	SelfOrDescendantReverse: "self-or-descendant-reverse",
	SelfSiblingOrAncestor:   "self-sibling-or-ancestor",
}

// String returns the canonical axis name.
func (a Axis) String() string {
	if a.Valid() {
		return axisNames[a]
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Axes lists every recognized axis in declaration order.
func Axes() []Axis {
	axes := make([]Axis, 0, len(axisNames))
	for a := Self; a <= SelfSiblingOrAncestor; a++ {
		axes = append(axes, a)
	}
	return axes
}
