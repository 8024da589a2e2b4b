package iterator

import (
	"iter"

	"github.com/google/btree"
)

// Ascend walks the tree in ascending order. the tree must not be modified
// while iterating. Close releases the walk if it is abandoned early.
func Ascend[T any](tree *btree.BTreeG[T]) *pulled[T] {
	return Pull(ascending(tree))
}

func ascending[T any](tree *btree.BTreeG[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		tree.Ascend(func(item T) bool {
			return yield(item)
		})
	}
}
