package rbtree

// Erase removes node from the tree, restoring the Red-Black invariants.
// node must currently be linked into the tree identified by root; Erase
// panics if node.Empty() reports it is not linked — a node that was
// explicitly [Node.Clear]'d. This does not cover every case: a freshly
// zero-valued node that was never linked or cleared still has Empty() ==
// false (its parent is nil, not self), and Erase does not clear node
// itself, so calling Erase twice in a row on the same node without an
// intervening Clear or relink also still passes the check. Both remain
// unspecified behavior per §7's error-handling model (there is nothing
// recoverable to report once the shape is already corrupted). After Erase
// returns, node is no longer reachable from root and the caller may reuse
// or free its storage; node itself is left with a stale shape and must be
// [Node.Clear]'d or relinked before any other tree operation touches it.
func Erase(node *Node, root *Root) {
	requireLinked(node, "Erase")
	EraseAugmented(node, root, noopCallbacks)
}

// EraseCached is Erase for a [CachedRoot]: if node was the cached leftmost
// node, the cache is advanced to [Next](node) before the structural splice
// — computed while node is still properly linked, exactly as the splice
// requires.
func EraseCached(node *Node, root *CachedRoot) {
	requireLinked(node, "EraseCached")
	if root.leftmost == node {
		root.leftmost = Next(node)
	}
	Erase(node, &root.Root)
}

// EraseAugmented is Erase for an augmented tree.
func EraseAugmented(node *Node, root *Root, augment Callbacks) {
	requireLinked(node, "EraseAugmented")
	parent, needsFixup := eraseAugmented(node, root, augment)
	if needsFixup {
		eraseFixup(nil, parent, root, augment)
	}
}

// EraseAugmentedCached combines EraseCached and EraseAugmented.
func EraseAugmentedCached(node *Node, root *CachedRoot, augment Callbacks) {
	requireLinked(node, "EraseAugmentedCached")
	if root.leftmost == node {
		root.leftmost = Next(node)
	}
	EraseAugmented(node, &root.Root, augment)
}

// eraseAugmented performs the structural splice described in spec §4.4 and
// reports whether the colour fix-up must run, and if so at which (parent,
// nil-or-surviving-node) entry point. It never runs the fix-up loop itself
// — that's eraseFixup's job — so callers that already know the removed
// node (or its surviving child) was red can skip straight past it, which is
// exactly what EraseAugmented does by checking needsFixup.
func eraseAugmented(node *Node, root *Root, augment Callbacks) (fixupParent *Node, needsFixup bool) {
	child := right(node)
	l := left(node)
	origParent := node.parent
	origColor := node.color

	var propagateFrom *Node

	switch {
	case l == nil:
		// At most one child (the right one). If there is one it must be
		// red (invariant 5) and node must be black (invariant 4), so it
		// can simply absorb node's parent-and-colour word and no fix-up
		// is needed; otherwise a fix-up is needed iff node was black.
		changeChild(node, child, origParent, root)
		if child != nil {
			setParentColor(child, origParent, origColor)
		} else {
			needsFixup = origColor == Black
			fixupParent = origParent
		}
		propagateFrom = origParent

	case child == nil:
		// Exactly one child, the left one; mirror of the above.
		setParentColor(l, origParent, origColor)
		changeChild(node, l, origParent, root)
		propagateFrom = origParent

	default:
		// Two children: splice in the in-order successor (leftmost of
		// node's right subtree).
		successor := child
		var splicedParent *Node
		var child2 *Node

		if leftOfSuccessor := left(successor); leftOfSuccessor == nil {
			// successor is node's direct right child: it simply rises
			// into node's place, keeping node's whole right subtree.
			splicedParent = successor
			child2 = right(successor)
			augment.Copy(node, successor)
		} else {
			tmp := leftOfSuccessor
			for {
				splicedParent = successor
				successor = tmp
				tmp = left(tmp)
				if tmp == nil {
					break
				}
			}
			child2 = right(successor)
			setLeft(splicedParent, child2)
			setRight(successor, child)
			setParent(child, successor)

			augment.Copy(node, successor)
			augment.Propagate(splicedParent, successor)
		}

		setLeft(successor, l)
		setParent(l, successor)

		changeChild(node, successor, origParent, root)

		if child2 != nil {
			setParentColor(child2, splicedParent, Black)
		} else {
			needsFixup = colorOf(successor) == Black
			fixupParent = splicedParent
		}
		setParentColor(successor, origParent, origColor)
		propagateFrom = successor
	}

	augment.Propagate(propagateFrom, nil)
	return fixupParent, needsFixup
}

// eraseFixup restores the Red-Black invariants starting from a "doubly
// black" position: parent is non-nil, node (possibly nil) is the surviving
// side that lost a black level. Mirrored for the "node is parent's left
// child" side below; sibling := parent's other child.
//
//  1. Sibling is red: recolour sibling black, parent red, rotate at parent
//     so the new sibling is the old sibling's (black) near child. Continue
//     with the updated sibling.
//  2. Both of sibling's children are black (or nil): paint sibling red.
//     This fixes the subtree rooted at parent but shifts the deficit up to
//     parent itself, unless parent was red, in which case recolouring it
//     black absorbs the deficit and we're done.
//  3. Sibling's far child is black and its near child is red: rotate at
//     sibling to turn this into Case 4 with a new sibling.
//  4. Sibling's far child is red: rotate at parent; sibling inherits
//     parent's colour, parent and the far child become black. Done.
//
// Terminates in O(log n) Case 2 continuations and at most three rotations.
func eraseFixup(node, parent *Node, root *Root, augment Callbacks) {
	for parent != nil && isBlack(node) {
		if node == left(parent) {
			sibling := right(parent)
			if isRed(sibling) {
				setBlack(sibling)
				setColor(parent, Red)
				rotateLeft(parent, root, augment)
				sibling = right(parent)
			}
			if isBlack(left(sibling)) && isBlack(right(sibling)) {
				setColor(sibling, Red)
				node = parent
				parent = parentOf(node)
				continue
			}
			if isBlack(right(sibling)) {
				setBlack(left(sibling))
				setColor(sibling, Red)
				rotateRight(sibling, root, augment)
				sibling = right(parent)
			}
			setColor(sibling, colorOf(parent))
			setBlack(parent)
			setBlack(right(sibling))
			rotateLeft(parent, root, augment)
			node = root.Node()
			parent = nil
		} else {
			sibling := left(parent)
			if isRed(sibling) {
				setBlack(sibling)
				setColor(parent, Red)
				rotateRight(parent, root, augment)
				sibling = left(parent)
			}
			if isBlack(right(sibling)) && isBlack(left(sibling)) {
				setColor(sibling, Red)
				node = parent
				parent = parentOf(node)
				continue
			}
			if isBlack(left(sibling)) {
				setBlack(right(sibling))
				setColor(sibling, Red)
				rotateLeft(sibling, root, augment)
				sibling = left(parent)
			}
			setColor(sibling, colorOf(parent))
			setBlack(parent)
			setBlack(left(sibling))
			rotateRight(parent, root, augment)
			node = root.Node()
			parent = nil
		}
	}
	setBlack(node)
}
