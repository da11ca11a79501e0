package rbtree

import (
	"sync/atomic"
	"unsafe"
)

// Color is the colour bit of a [Node]. A nil *Node is conceptually Black —
// every colour query in this package treats a nil child as black without
// ever dereferencing it.
type Color uint8

const (
	Red Color = iota
	Black
)

// Node is the intrusive tree header. Embed it as the first field of the
// caller's record:
//
//	type item struct {
//		hdr rbtree.Node
//		key int
//	}
//
// It must be the first field so that [Entry] can recover the owning record
// from a *Node. A zero Node is not attached to any tree; it becomes valid
// once passed through [LinkNode] (or one of the Add/FindAdd helpers) followed
// by a colour fix-up.
//
// child pointers are stored behind atomic.Pointer so that a concurrent
// lockless reader (see the package doc's Reader contract) observes child
// updates in a well-defined order during a rotation. The parent+colour word
// carries no such guarantee — readers must not depend on it, matching
// chx-rbtree's note that "[s]tores to __rb_parent_color are not important
// for simple lookups".
type Node struct {
	parent *Node
	color  Color
	left   atomic.Pointer[Node]
	right  atomic.Pointer[Node]
}

// Root holds the root of a tree, or nil for an empty tree.
type Root struct {
	node atomic.Pointer[Node]
}

// Empty reports whether the tree is empty (chx-rbtree's RB_EMPTY_ROOT).
func (r *Root) Empty() bool {
	return r.node.Load() == nil
}

// Node returns the current root node, or nil if the tree is empty.
func (r *Root) Node() *Node {
	return r.node.Load()
}

// CachedRoot is a Root augmented with an O(1) handle on the smallest node
// ("leftmost-cached" in spec terms). Insert*Cached and Erase*Cached keep
// Leftmost() current; it must not be written to directly.
type CachedRoot struct {
	Root
	leftmost *Node
}

// Leftmost returns the smallest node in the tree in O(1), or nil if empty.
func (r *CachedRoot) Leftmost() *Node {
	return r.leftmost
}

// Empty reports whether n has been cleared ([Node.Clear]) and is therefore
// known not to be linked into any tree (chx-rbtree's RB_EMPTY_NODE).
func (n *Node) Empty() bool {
	return n.parent == n
}

// Clear marks n as not linked into any tree, by making it its own parent.
// A cleared node must not be passed to Erase, Replace, or navigation
// functions other than Empty.
func (n *Node) Clear() {
	n.parent = n
}

// requireLinked panics if node is known not to be linked into any tree.
// Erase and Replace document this as a programmer contract; a node that
// was explicitly [Node.Clear]'d fails it immediately instead of corrupting
// the tree silently. It cannot catch every violation: a zero-value Node
// that was never linked or cleared has a nil parent, not a self parent, so
// it still passes this check (matching chx-rbtree, where RB_EMPTY_NODE
// requires an explicit RB_CLEAR_NODE call first); and a node that was
// erased without being cleared or relinked afterward also still reports
// Empty() == false. Both remain unspecified behavior per §7.
func requireLinked(node *Node, op string) {
	if node.Empty() {
		panic("rbtree: " + op + " called on a node that is not linked into any tree")
	}
}

// Entry recovers the record embedding n as its first field. T must be the
// concrete caller type that embeds Node as field zero; calling Entry with
// any other T is undefined behavior. This is the Go analogue of C's
// container_of/chx_rb_entry, simplified to first-field embedding because Go
// has no offsetof-based macro layer to generalize it further.
func Entry[T any](n *Node) *T {
	if n == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(n))
}

// Left returns n's left child, or nil.
func Left(n *Node) *Node { return left(n) }

// Right returns n's right child, or nil.
func Right(n *Node) *Node { return right(n) }

// Parent returns n's parent, or nil if n is a root (or unlinked).
func Parent(n *Node) *Node { return parentOf(n) }

// NodeColor returns n's colour. A nil node is conceptually black; NodeColor
// panics on a nil n to avoid silently reporting a colour for "no node" —
// unlike the package-internal colour checks, which all treat nil as black
// on purpose, here it almost always indicates a bug in the caller rather
// than a legitimate "what colour is this nil child" question.
func NodeColor(n *Node) Color {
	if n == nil {
		panic("rbtree: NodeColor called with a nil node")
	}
	return n.color
}

func isRed(n *Node) bool {
	return n != nil && n.color == Red
}

func isBlack(n *Node) bool {
	return n == nil || n.color == Black
}

func parentOf(n *Node) *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

func colorOf(n *Node) Color {
	if n == nil {
		return Black
	}
	return n.color
}

// setParent replaces n's parent, preserving its colour.
func setParent(n, p *Node) {
	n.parent = p
}

// setParentColor replaces both n's parent and colour in one step.
func setParentColor(n, p *Node, c Color) {
	n.parent = p
	n.color = c
}

// setBlack sets n black without touching its parent.
func setBlack(n *Node) {
	if n != nil {
		n.color = Black
	}
}

// setColor sets n's colour without touching its parent, tolerating a nil
// node (a nil child is always black and recolouring it is a no-op).
func setColor(n *Node, c Color) {
	if n != nil {
		n.color = c
	}
}

func left(n *Node) *Node {
	if n == nil {
		return nil
	}
	return n.left.Load()
}

func right(n *Node) *Node {
	if n == nil {
		return nil
	}
	return n.right.Load()
}

func setLeft(n, child *Node) {
	n.left.Store(child)
}

func setRight(n, child *Node) {
	n.right.Store(child)
}

// changeChild repoints whichever of parent's children equals old so that it
// equals newNode instead, or updates root if parent is nil (old was root).
// The write is publication-ordered: a reader that observes newNode at the
// child slot also observes whatever newNode needed published first.
func changeChild(old, newNode, parent *Node, root *Root) {
	if parent != nil {
		if left(parent) == old {
			setLeft(parent, newNode)
		} else {
			setRight(parent, newNode)
		}
	} else {
		root.node.Store(newNode)
	}
}

// changeChildRCU is identical to changeChild. In chx-rbtree's own userland
// build, rcu_assign_pointer is a plain WRITE_ONCE — Go's sync/atomic store
// is already at least that strong, so there is nothing weaker to fall back
// to for the non-RCU path. Kept as a distinct entry point to mirror the
// spec's plain/lockless-read-friendly API split at call sites.
func changeChildRCU(old, newNode, parent *Node, root *Root) {
	changeChild(old, newNode, parent, root)
}
