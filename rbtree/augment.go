package rbtree

import "cmp"

// Callbacks lets a caller maintain a per-subtree summary that stays
// consistent with the tree's shape through every rotation and every
// structural change along an erase path. Use [MaxAugment] to build one for
// the common "subtree maximum" summary, or construct one directly for
// anything else (subtree size, interval upper bound, ...). Pass
// [NoopCallbacks] for an unaugmented tree.
type Callbacks struct {
	// Propagate recomputes summaries walking from node toward the root,
	// stopping as soon as a level's summary is unchanged (a stable
	// fixed-point) or node equals stop (typically nil, meaning "the
	// root").
	Propagate func(node, stop *Node)
	// Copy unconditionally copies the summary from old to newNode. Used
	// when the shape has moved a node without recomputing — the erase
	// splice grafting the in-order successor into a removed node's place.
	Copy func(old, newNode *Node)
	// Rotate is called at every rotation: newNode adopts old's summary (it
	// now roots the subtree old used to root), and old's summary is then
	// recomputed from its new, smaller set of children.
	Rotate func(old, newNode *Node)
}

func noopHook(*Node, *Node) {}

// noopCallbacks is the zero-overhead callback triple used by the
// unaugmented entry points (InsertColor, Erase, Add, ...).
var noopCallbacks = Callbacks{Propagate: noopHook, Copy: noopHook, Rotate: noopHook}

// NoopCallbacks returns the no-op callback triple, for callers that want to
// pass an explicit Callbacks value to an Augmented* entry point without
// actually augmenting anything.
func NoopCallbacks() Callbacks {
	return noopCallbacks
}

// MaxAugment builds the canonical "subtree maximum" augmentation described
// in the Augmentation interface design: the summary stored at each node is
// the maximum of its own scalar and the summaries already stored at its
// children.
//
//	valueOf(n) — the per-node scalar to maximize over.
//	get(n)     — read back the summary previously stored at n.
//	set(n, v)  — store the summary at n.
//
// get/set read and write a field in the caller's record, recovered from n
// with [Entry] if needed; valueOf, get and set must never be called with a
// nil node (MaxAugment never does).
func MaxAugment[T cmp.Ordered](valueOf func(*Node) T, get func(*Node) T, set func(n *Node, v T)) Callbacks {
	// compute recomputes n's summary from valueOf(n) and its children's
	// stored summaries, and reports whether the stored value changed.
	compute := func(n *Node) bool {
		max := valueOf(n)
		if c := left(n); c != nil {
			if v := get(c); v > max {
				max = v
			}
		}
		if c := right(n); c != nil {
			if v := get(c); v > max {
				max = v
			}
		}
		if get(n) == max {
			return false
		}
		set(n, max)
		return true
	}

	return Callbacks{
		Propagate: func(node, stop *Node) {
			for node != stop {
				if !compute(node) {
					return
				}
				node = parentOf(node)
			}
		},
		Copy: func(old, newNode *Node) {
			set(newNode, get(old))
		},
		Rotate: func(old, newNode *Node) {
			set(newNode, get(old))
			compute(old)
		},
	}
}
