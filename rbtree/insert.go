package rbtree

// LinkNode attaches node as a fresh red leaf at the slot the caller found by
// its own descent: parent is the would-be parent (nil if the tree is
// empty), and link is called with node to actually store it — typically
// closing over root, or over whichever of parent's two children the caller
// descended through. LinkNode only wires node in; it does not rebalance.
// Callers must follow it with InsertColor (or InsertAugmented) before the
// tree is queried again.
func LinkNode(node, parent *Node, link func(*Node)) {
	node.parent = parent
	node.color = Red
	node.left.Store(nil)
	node.right.Store(nil)
	link(node)
}

// LinkNodeRCU is identical to LinkNode. It exists as a distinct entry point
// so write-path code can mark, at the call site, that the link is being
// published for a concurrent lockless reader — mirroring chx-rbtree's
// chx_rb_link_node_rcu, which in its own userland build is byte-identical
// to chx_rb_link_node.
func LinkNodeRCU(node, parent *Node, link func(*Node)) {
	LinkNode(node, parent, link)
}

// InsertColor restores the Red-Black invariants after LinkNode has attached
// node as a red leaf. It must be called exactly once per link, before any
// other tree operation touches the affected path.
func InsertColor(node *Node, root *Root) {
	insertFixup(node, root, noopCallbacks)
}

// InsertColorCached is InsertColor for a [CachedRoot]. newLeft must be true
// iff node is now the smallest node in the tree (the caller's descent loop
// already knows this — it never took a right branch).
func InsertColorCached(node *Node, root *CachedRoot, newLeft bool) {
	if newLeft {
		root.leftmost = node
	}
	insertFixup(node, &root.Root, noopCallbacks)
}

// InsertAugmented is InsertColor for an augmented tree: augment.Rotate is
// invoked on every rotation performed while restoring the invariants. The
// caller is responsible for having already propagated the new node's
// contribution to the augmented summary up to the root before calling this
// (the fix-up only re-derives summaries that rotations disturb, it does not
// seed the new leaf's own contribution).
func InsertAugmented(node *Node, root *Root, augment Callbacks) {
	insertFixup(node, root, augment)
}

// InsertAugmentedCached combines InsertColorCached and InsertAugmented.
func InsertAugmentedCached(node *Node, root *CachedRoot, newLeft bool, augment Callbacks) {
	if newLeft {
		root.leftmost = node
	}
	insertFixup(node, &root.Root, augment)
}

// insertFixup restores the Red-Black invariants after a red leaf has been
// linked in. Loop invariant: node is red. Cases (mirrored for the
// parent-is-right-child side):
//
//  1. Uncle is red: recolour parent, uncle black and grandparent red, then
//     continue from the grandparent — it may now violate invariant 2 or 4
//     itself.
//  2. Uncle is black and node is parent's right child: rotate left at
//     parent, relabel (node, parent) = (parent, node), fall through to
//     Case 3.
//  3. Uncle is black and node is parent's left child: rotate right at
//     grandparent, colour the (old) parent black and the (old) grandparent
//     red. Done.
//
// Terminates in O(log n) recolourings and at most two rotations: the root
// is strictly closer on every Case 1 continuation, and Cases 2/3 always
// terminate the loop.
func insertFixup(node *Node, root *Root, augment Callbacks) {
	for isRed(parentOf(node)) {
		parent := parentOf(node)
		gp := parentOf(parent)

		if parent == left(gp) {
			uncle := right(gp)
			if isRed(uncle) {
				setBlack(parent)
				setBlack(uncle)
				setColor(gp, Red)
				node = gp
				continue
			}
			if node == right(parent) {
				node = parent
				rotateLeft(node, root, augment)
			}
			setBlack(parentOf(node))
			setColor(parentOf(parentOf(node)), Red)
			rotateRight(parentOf(parentOf(node)), root, augment)
			break
		}

		uncle := left(gp)
		if isRed(uncle) {
			setBlack(parent)
			setBlack(uncle)
			setColor(gp, Red)
			node = gp
			continue
		}
		if node == left(parent) {
			node = parent
			rotateRight(node, root, augment)
		}
		setBlack(parentOf(node))
		setColor(parentOf(parentOf(node)), Red)
		rotateLeft(parentOf(parentOf(node)), root, augment)
		break
	}
	setBlack(root.Node())
}
