// Package orderedmap is a key-ordered map built on top of [rbtree]: the
// generic, owning, key/value container that mikenye-gotrees' own rbtree
// package provides directly over its bst.Tree. Here the same shape —
// LessFunc, a New constructor, Insert/Delete/Search, Min/Max,
// Successor/Predecessor, a drawn String() — sits over an intrusive core
// instead of a sentinel-based one, with Node boxing the key and value the
// owning tree used to store inline.
package orderedmap

import (
	"fmt"
	"strings"

	"github.com/go-rbtree/rbtree/rbtree"
)

// LessFunc defines the ordering of keys in a [Map]. It must be a strict
// weak ordering: for any a, b, at most one of less(a,b) and less(b,a) may
// hold, and it must be transitive.
type LessFunc[K any] func(a, b K) bool

// TraversalFunc is called once per node during [Map.TraverseInOrder].
// Returning false stops the traversal early.
type TraversalFunc[K, V any] func(n *Node[K, V]) bool

// Node is one key/value entry in a [Map]. hdr must stay the first field —
// [rbtree.Entry] recovers *Node from the *rbtree.Node the tree operates on.
type Node[K, V any] struct {
	hdr   rbtree.Node
	key   K
	value V
}

// Key returns the node's key.
func (n *Node[K, V]) Key() K { return n.key }

// Value returns the node's value.
func (n *Node[K, V]) Value() V { return n.value }

// SetValue updates the node's value in place. This never affects sort
// order (the key is immutable once inserted), so it needs no rebalancing.
func (n *Node[K, V]) SetValue(v V) { n.value = v }

// Color reports the node's current Red-Black colour, mirroring the
// teacher's Tree.Metadata colour accessor.
func (n *Node[K, V]) Color() rbtree.Color { return rbtree.NodeColor(&n.hdr) }

func (n *Node[K, V]) String() string {
	return fmt.Sprintf("%v: %v", n.key, n.value)
}

// Map is a key-ordered map: like a standard map, but Min, Max,
// Successor/Predecessor walks, and an in-order traversal are all
// available, at the cost of O(log n) rather than O(1) lookups.
//
// A zero Map is not usable; construct one with [New].
type Map[K, V any] struct {
	root rbtree.CachedRoot
	less LessFunc[K]
	size int
}

// New constructs an empty Map ordered by less.
func New[K, V any](less LessFunc[K]) *Map[K, V] {
	return &Map[K, V]{less: less}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.size }

func (m *Map[K, V]) entry(n *rbtree.Node) *Node[K, V] {
	return rbtree.Entry[Node[K, V]](n)
}

func (m *Map[K, V]) compareKey(key K) rbtree.CompareFunc {
	return func(cand *rbtree.Node) int {
		c := m.entry(cand).key
		switch {
		case m.less(key, c):
			return -1
		case m.less(c, key):
			return 1
		default:
			return 0
		}
	}
}

// Insert adds key/value to the map, returning the new node and true. If
// key is already present, Insert leaves the existing entry untouched and
// returns it along with false — callers that want an upsert should check
// the bool and call [Node.SetValue] themselves.
func (m *Map[K, V]) Insert(key K, value V) (*Node[K, V], bool) {
	n := &Node[K, V]{key: key, value: value}
	if existing := rbtree.FindAddCached(&n.hdr, &m.root, m.compareKey(key)); existing != nil {
		return m.entry(existing), false
	}
	m.size++
	return n, true
}

// Delete removes n from the map. n must have come from this Map (via
// Insert, Search, or a traversal/navigation method) and must not already
// have been deleted.
func (m *Map[K, V]) Delete(n *Node[K, V]) {
	rbtree.EraseCached(&n.hdr, &m.root)
	m.size--
}

// Search looks up key, returning its node and true, or (nil, false).
func (m *Map[K, V]) Search(key K) (*Node[K, V], bool) {
	n := rbtree.Find(&m.root.Root, m.compareKey(key))
	if n == nil {
		return nil, false
	}
	return m.entry(n), true
}

// Min returns the entry with the smallest key, or nil if the map is empty.
// O(1): backed by the tree's cached leftmost node.
func (m *Map[K, V]) Min() *Node[K, V] {
	if n := m.root.Leftmost(); n != nil {
		return m.entry(n)
	}
	return nil
}

// Max returns the entry with the largest key, or nil if the map is empty.
func (m *Map[K, V]) Max() *Node[K, V] {
	if n := rbtree.Last(&m.root.Root); n != nil {
		return m.entry(n)
	}
	return nil
}

// Successor returns the entry with the next-largest key after n, or nil
// if n holds the largest key in the map.
func (m *Map[K, V]) Successor(n *Node[K, V]) *Node[K, V] {
	if next := rbtree.Next(&n.hdr); next != nil {
		return m.entry(next)
	}
	return nil
}

// Predecessor returns the entry with the next-smallest key before n, or
// nil if n holds the smallest key in the map.
func (m *Map[K, V]) Predecessor(n *Node[K, V]) *Node[K, V] {
	if prev := rbtree.Prev(&n.hdr); prev != nil {
		return m.entry(prev)
	}
	return nil
}

// TraverseInOrder visits every entry from smallest to largest key, calling
// f on each. It stops early if f returns false.
func (m *Map[K, V]) TraverseInOrder(f TraversalFunc[K, V]) {
	for n := m.Min(); n != nil; n = m.Successor(n) {
		if !f(n) {
			return
		}
	}
}

const (
	connectorLeft     = "┌── "
	connectorRight    = "└── "
	connectorVertical = "│   "
	connectorSpace    = "    "
)

// String draws the map's tree shape, one node per line, using the same
// box-drawing layout as mikenye-gotrees' bst.Tree.String: a node's depth
// controls its indentation, and a vertical bar is kept alive at a given
// depth for as long as a later sibling at that depth is still to come.
func (m *Map[K, V]) String() string {
	root := m.root.Node()
	if root == nil {
		return "Empty Tree"
	}

	var sb strings.Builder
	verticalAt := make(map[int]bool)

	var depthOf func(n *rbtree.Node) int
	depthOf = func(n *rbtree.Node) int {
		d := 0
		for p := rbtree.Parent(n); p != nil; p = rbtree.Parent(p) {
			d++
		}
		return d
	}

	m.TraverseInOrder(func(node *Node[K, V]) bool {
		n := &node.hdr
		depth := depthOf(n)

		for j := 0; j < depth-1; j++ {
			if verticalAt[j+1] {
				sb.WriteString(connectorVertical)
			} else {
				sb.WriteString(connectorSpace)
			}
		}

		parent := rbtree.Parent(n)
		if parent != nil && rbtree.Left(parent) == n {
			sb.WriteString(connectorLeft)
		} else if parent != nil && rbtree.Right(parent) == n {
			sb.WriteString(connectorRight)
		}

		sb.WriteString(node.String())
		sb.WriteString("\n")

		if parent != nil && rbtree.Left(parent) == n {
			verticalAt[depth] = true
		}
		if parent != nil && rbtree.Right(parent) == n {
			verticalAt[depth] = false
		}
		if rbtree.Right(n) != nil {
			verticalAt[depth+1] = true
		} else {
			verticalAt[depth+1] = false
		}

		return true
	})

	return sb.String()
}
