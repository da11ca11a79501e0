package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstLastEmpty(t *testing.T) {
	var root Root
	assert.Nil(t, First(&root))
	assert.Nil(t, Last(&root))
	assert.True(t, root.Empty())
}

func TestFirstLastSingleNode(t *testing.T) {
	var root Root
	n := newItem(42)
	Add(&n.hdr, &root, itemLess)

	require.Same(t, &n.hdr, First(&root))
	require.Same(t, &n.hdr, Last(&root))
	assert.Nil(t, Next(&n.hdr))
	assert.Nil(t, Prev(&n.hdr))
}

func TestNextPrev_WalkWholeTree(t *testing.T) {
	var root Root
	keys := []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90}
	insertKeys(&root, keys)

	var forward []int
	for n := First(&root); n != nil; n = Next(n) {
		forward = append(forward, Entry[item](n).key)
	}
	assert.Equal(t, keys, forward)

	var backward []int
	for n := Last(&root); n != nil; n = Prev(n) {
		backward = append(backward, Entry[item](n).key)
	}
	assert.Equal(t, []int{90, 80, 70, 60, 50, 40, 30, 20, 10, 0}, backward)
}

func TestPostorderEach_VisitsChildrenBeforeParent(t *testing.T) {
	var root Root
	insertKeys(&root, []int{5, 2, 8, 1, 3, 7, 9, 4, 6})

	visited := make(map[*Node]bool)
	var count int
	PostorderEach(&root, func(n *Node) {
		count++
		if l := left(n); l != nil {
			require.True(t, visited[l], "left child must be visited before its parent")
		}
		if r := right(n); r != nil {
			require.True(t, visited[r], "right child must be visited before its parent")
		}
		visited[n] = true
	})
	assert.Equal(t, 9, count)
}

func TestPostorderEach_SafeDuringDestruction(t *testing.T) {
	// The defining property of postorder here: a visit callback may free
	// node (by dropping every reference to it) without disturbing the
	// traversal, because NextPostorder is computed before visit runs.
	var root Root
	insertKeys(&root, []int{5, 2, 8, 1, 3, 7, 9, 4, 6})

	var count int
	PostorderEach(&root, func(n *Node) {
		count++
		n.left.Store(nil)
		n.right.Store(nil)
	})
	assert.Equal(t, 9, count)
}
