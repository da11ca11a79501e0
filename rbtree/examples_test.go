package rbtree_test

import (
	"cmp"
	"fmt"

	"github.com/go-rbtree/rbtree/rbtree"
)

// item is the record embedded with a Node in these examples — the same
// int-key/string-value shape the teacher's own package examples use.
type item struct {
	hdr   rbtree.Node
	key   int
	value string
}

func itemLess(a, b *rbtree.Node) bool {
	return rbtree.Entry[item](a).key < rbtree.Entry[item](b).key
}

func itemCmp(key int) rbtree.CompareFunc {
	return func(n *rbtree.Node) int {
		return cmp.Compare(key, rbtree.Entry[item](n).key)
	}
}

func colorName(n *rbtree.Node) string {
	if rbtree.NodeColor(n) == rbtree.Red {
		return "red"
	}
	return "black"
}

// ExampleAdd inserts keys 0 through 10 in ascending order and walks them
// back out with First/Next, printing each node's colour alongside its
// value.
func ExampleAdd() {
	values := []string{
		"zero", "one", "two", "three", "four", "five",
		"six", "seven", "eight", "nine", "ten",
	}

	var root rbtree.Root
	for key, value := range values {
		n := &item{key: key, value: value}
		rbtree.Add(&n.hdr, &root, itemLess)
	}

	for n := rbtree.First(&root); n != nil; n = rbtree.Next(n) {
		it := rbtree.Entry[item](n)
		fmt.Printf("key %d has value %s (color: %s)\n", it.key, it.value, colorName(n))
	}

	// Output:
	// key 0 has value zero (color: black)
	// key 1 has value one (color: black)
	// key 2 has value two (color: black)
	// key 3 has value three (color: black)
	// key 4 has value four (color: black)
	// key 5 has value five (color: black)
	// key 6 has value six (color: black)
	// key 7 has value seven (color: red)
	// key 8 has value eight (color: red)
	// key 9 has value nine (color: black)
	// key 10 has value ten (color: red)
}

// ExampleErase removes the odd-keyed nodes and walks the survivors,
// mirroring the teacher's ExampleTree_Delete.
func ExampleErase() {
	values := []string{
		"zero", "one", "two", "three", "four", "five",
		"six", "seven", "eight", "nine", "ten",
	}

	var root rbtree.Root
	nodes := make([]*item, len(values))
	for key, value := range values {
		n := &item{key: key, value: value}
		rbtree.Add(&n.hdr, &root, itemLess)
		nodes[key] = n
	}

	for key := 1; key < len(values); key += 2 {
		rbtree.Erase(&nodes[key].hdr, &root)
	}

	for n := rbtree.First(&root); n != nil; n = rbtree.Next(n) {
		it := rbtree.Entry[item](n)
		fmt.Printf("%d %s\n", it.key, it.value)
	}

	// Output:
	// 0 zero
	// 2 two
	// 4 four
	// 6 six
	// 8 eight
	// 10 ten
}

// ExampleFindAdd demonstrates insert-unless-present semantics: the second
// FindAdd call for an already-present key returns the first node instead
// of linking a duplicate.
func ExampleFindAdd() {
	var root rbtree.Root

	first := &item{key: 10, value: "first"}
	if existing := rbtree.FindAdd(&first.hdr, &root, itemCmp(10)); existing == nil {
		fmt.Println("10 inserted")
	}

	second := &item{key: 10, value: "second"}
	if existing := rbtree.FindAdd(&second.hdr, &root, itemCmp(10)); existing != nil {
		fmt.Println("10 already present with value", rbtree.Entry[item](existing).value)
	}

	// Output:
	// 10 inserted
	// 10 already present with value first
}
