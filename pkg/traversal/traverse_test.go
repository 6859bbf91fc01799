package traversal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy/pkg/traversal"
)

type node struct {
	name     string
	parent   *node
	children []*node
}

func (n *node) Parent() *node     { return n.parent }
func (n *node) Children() []*node { return n.children }

func (n *node) child(name string) *node {
	c := &node{name: name, parent: n}
	n.children = append(n.children, c)
	return c
}

// buildTree returns the named nodes of:
//
//	r
//	├── a
//	│   ├── d
//	│   │   └── g
//	│   └── e
//	├── b
//	└── c
//	    └── f
func buildTree() map[string]*node {
	r := &node{name: "r"}
	a := r.child("a")
	b := r.child("b")
	c := r.child("c")
	d := a.child("d")
	e := a.child("e")
	f := c.child("f")
	g := d.child("g")
	return map[string]*node{
		"r": r, "a": a, "b": b, "c": c, "d": d, "e": e, "f": f, "g": g,
	}
}

func visited(axis traversal.Axis, start *node) []string {
	var names []string
	traversal.Traverse(axis, start, func(n *node) bool {
		names = append(names, n.name)
		return true
	})
	return names
}

func TestTraverse_Orders(t *testing.T) {
	nodes := buildTree()

	cases := []struct {
		axis  traversal.Axis
		start string
		want  []string
	}{
		{traversal.Self, "a", []string{"a"}},
		{traversal.Root, "g", []string{"r"}},
		{traversal.Root, "r", []string{"r"}},
		{traversal.Child, "a", []string{"d", "e"}},
		{traversal.Child, "b", nil},
		{traversal.Sibling, "a", []string{"b", "c"}},
		{traversal.Sibling, "r", nil},
		{traversal.Ancestor, "g", []string{"d", "a", "r"}},
		{traversal.Descendant, "r", []string{"a", "b", "c", "d", "e", "f", "g"}},
		{traversal.Descendant, "b", nil},
		{traversal.DescendantReverse, "r", []string{"g", "d", "e", "f", "a", "b", "c"}},
		{traversal.SelfOrChild, "a", []string{"a", "d", "e"}},
		{traversal.SelfOrSibling, "a", []string{"a", "b", "c"}},
		{traversal.SelfOrAncestor, "g", []string{"g", "d", "a", "r"}},
		{traversal.SelfOrDescendant, "r", []string{"r", "a", "b", "c", "d", "e", "f", "g"}},
		{traversal.SelfOrDescendantReverse, "r", []string{"g", "d", "e", "f", "a", "b", "c", "r"}},
		{traversal.SelfSiblingOrAncestor, "d", []string{"d", "e", "a", "r"}},
	}

	for _, tc := range cases {
		t.Run(tc.axis.String()+"/"+tc.start, func(t *testing.T) {
			assert.Equal(t, tc.want, visited(tc.axis, nodes[tc.start]))
		})
	}
}

func TestTraverse_EarlyTermination(t *testing.T) {
	nodes := buildTree()

	var names []string
	completed := traversal.Traverse(traversal.SelfOrDescendant, nodes["r"], func(n *node) bool {
		names = append(names, n.name)
		return n.name != "b"
	})

	require.False(t, completed)
	assert.Equal(t, []string{"r", "a", "b"}, names)
}

func TestTraverse_InvalidAxisPanics(t *testing.T) {
	nodes := buildTree()
	require.Panics(t, func() {
		traversal.Traverse(traversal.Axis(99), nodes["r"], func(*node) bool { return true })
	})
}

func TestAxis_Valid(t *testing.T) {
	for _, axis := range traversal.Axes() {
		assert.True(t, axis.Valid(), axis.String())
	}
	assert.False(t, traversal.Axis(-1).Valid())
	assert.False(t, traversal.Axis(99).Valid())
}

func TestAxis_String(t *testing.T) {
	assert.Equal(t, "self", traversal.Self.String())
	assert.Equal(t, "self-or-descendant", traversal.SelfOrDescendant.String())
	assert.Equal(t, "Axis(99)", traversal.Axis(99).String())
}
