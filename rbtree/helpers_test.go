package rbtree

import (
	"cmp"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// item is the record embedded with a Node in every test in this package,
// mirroring mikenye-gotrees' use of a concrete int-keyed tree in its own
// tests rather than exercising the generic machinery abstractly.
type item struct {
	hdr Node
	key int
}

func newItem(key int) *item {
	return &item{key: key}
}

func itemLess(a, b *Node) bool {
	return Entry[item](a).key < Entry[item](b).key
}

func keyCmp(key int) CompareFunc {
	return func(n *Node) int {
		return cmp.Compare(key, Entry[item](n).key)
	}
}

// insertKeys inserts keys (in order) into root via Add, returning the
// created nodes keyed by their int key for later lookup.
func insertKeys(root *Root, keys []int) map[int]*item {
	nodes := make(map[int]*item, len(keys))
	for _, k := range keys {
		n := newItem(k)
		Add(&n.hdr, root, itemLess)
		nodes[k] = n
	}
	return nodes
}

func insertKeysCached(root *CachedRoot, keys []int) map[int]*item {
	nodes := make(map[int]*item, len(keys))
	for _, k := range keys {
		n := newItem(k)
		AddCached(&n.hdr, root, itemLess)
		nodes[k] = n
	}
	return nodes
}

// inOrderKeys walks root with First/Next and returns the keys in order —
// exactly the traversal invariant 8 is stated in terms of.
func inOrderKeys(root *Root) []int {
	var out []int
	for n := First(root); n != nil; n = Next(n) {
		out = append(out, Entry[item](n).key)
	}
	return out
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	l, r := height(left(n)), height(right(n))
	if l > r {
		return l + 1
	}
	return r + 1
}

func requireValid(t *testing.T, root *Root) {
	t.Helper()
	require.NoError(t, Check(root, itemLess))
}

func randomKeys(seed int64, n, max int) []int {
	r := rand.New(rand.NewSource(seed))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.Intn(max)
	}
	return keys
}
