package rbtree

// CompareFunc compares a caller-held search key against node, returning a
// value whose sign matches the convention of strcmp/bytes.Compare: negative
// if the key sorts before node, positive if after, zero on a match. The
// search key itself isn't part of this package's API — callers close over
// it, e.g. `func(n *Node) int { return cmp.Compare(key, Entry[item](n).key) }`.
type CompareFunc func(node *Node) int

// LessFunc reports whether a sorts strictly before b, for descending the
// tree while inserting a new node whose key is not yet linked anywhere.
type LessFunc func(a, b *Node) bool

// Find descends root looking for a node with cmp(node) == 0, returning the
// first one found or nil. If the tree holds duplicate keys, the match
// returned is unspecified among them; use [FindFirst] for a deterministic
// leftmost match.
func Find(root *Root, cmp CompareFunc) *Node {
	node := root.Node()
	for node != nil {
		c := cmp(node)
		switch {
		case c < 0:
			node = left(node)
		case c > 0:
			node = right(node)
		default:
			return node
		}
	}
	return nil
}

// FindRCU is Find for the lockless-read-friendly entry points. Find never
// writes, so there is nothing additional to guarantee; FindRCU exists only
// so call sites can say, explicitly, "this descent may run concurrently
// with a *_rcu writer".
func FindRCU(root *Root, cmp CompareFunc) *Node {
	return Find(root, cmp)
}

// FindFirst descends root for the leftmost node with cmp(node) == 0: the
// first in-order among any duplicates. Returns nil if none match.
func FindFirst(root *Root, cmp CompareFunc) *Node {
	node := root.Node()
	var match *Node
	for node != nil {
		c := cmp(node)
		if c <= 0 {
			if c == 0 {
				match = node
			}
			node = left(node)
		} else {
			node = right(node)
		}
	}
	return match
}

// NextMatch returns the in-order successor of node if it also satisfies
// cmp(successor) == 0, or nil otherwise. Paired with [FindFirst], this
// walks every node with a given key in order:
//
//	for n := rbtree.FindFirst(root, cmp); n != nil; n = rbtree.NextMatch(n, cmp) { ... }
func NextMatch(node *Node, cmp CompareFunc) *Node {
	node = Next(node)
	if node != nil && cmp(node) != 0 {
		return nil
	}
	return node
}

// descend walks from root looking for where node would land, calling less
// to decide at each step. It returns the would-be parent (nil if the tree
// is empty), whether node belongs as that parent's left child, and whether
// the descent never once turned right — meaning node, once linked, becomes
// the new overall leftmost node.
func descend(root *Root, node *Node, less LessFunc) (parent *Node, goLeft, leftmost bool) {
	link := root.Node()
	leftmost = true
	for link != nil {
		parent = link
		if less(node, link) {
			goLeft = true
			link = left(link)
		} else {
			goLeft = false
			leftmost = false
			link = right(link)
		}
	}
	return parent, goLeft, leftmost
}

func linkAt(root *Root, node, parent *Node, goLeft bool) {
	LinkNode(node, parent, func(n *Node) {
		switch {
		case parent == nil:
			root.node.Store(n)
		case goLeft:
			setLeft(parent, n)
		default:
			setRight(parent, n)
		}
	})
}

// Add links node into the tree in sorted order (allowing duplicate keys —
// a node for which neither less(a,b) nor less(b,a) holds lands to the
// right of any existing equal nodes) and restores the invariants.
func Add(node *Node, root *Root, less LessFunc) {
	parent, goLeft, _ := descend(root, node, less)
	linkAt(root, node, parent, goLeft)
	InsertColor(node, root)
}

// AddCached is Add for a [CachedRoot].
func AddCached(node *Node, root *CachedRoot, less LessFunc) {
	parent, goLeft, leftmost := descend(&root.Root, node, less)
	linkAt(&root.Root, node, parent, goLeft)
	InsertColorCached(node, root, leftmost)
}

// FindAdd looks for a node with cmp(node) == 0. If one exists it is
// returned immediately and node is left unlinked — the caller decides how
// to handle the collision (e.g. update the existing node's payload). If
// none exists, node is linked into its sorted position, the invariants are
// restored, and FindAdd returns nil.
func FindAdd(node *Node, root *Root, cmp CompareFunc) *Node {
	parent, goLeft, _, match := findAddDescend(root.Node(), cmp)
	if match != nil {
		return match
	}
	linkAt(root, node, parent, goLeft)
	InsertColor(node, root)
	return nil
}

// FindAddCached is FindAdd for a [CachedRoot].
func FindAddCached(node *Node, root *CachedRoot, cmp CompareFunc) *Node {
	parent, goLeft, leftmost, match := findAddDescend(root.Node(), cmp)
	if match != nil {
		return match
	}
	linkAt(&root.Root, node, parent, goLeft)
	InsertColorCached(node, root, leftmost)
	return nil
}

func findAddDescend(link *Node, cmp CompareFunc) (parent *Node, goLeft, leftmost bool, match *Node) {
	leftmost = true
	for link != nil {
		c := cmp(link)
		parent = link
		switch {
		case c < 0:
			goLeft = true
			link = left(link)
		case c > 0:
			goLeft = false
			leftmost = false
			link = right(link)
		default:
			return nil, false, false, link
		}
	}
	return parent, goLeft, leftmost, nil
}

// FindAddRCU is FindAdd for the lockless-read-friendly entry points: it
// exists as a distinct name so write-path code documents, at the call
// site, that a concurrent reader may be walking the tree concurrently with
// this call. The underlying link step already goes through the
// publication-ordered child-pointer stores LinkNode always uses, so there
// is no additional work to do here.
func FindAddRCU(node *Node, root *Root, cmp CompareFunc) *Node {
	return FindAdd(node, root, cmp)
}
