package iterator

import (
	"github.com/benbjohnson/immutable"
)

// Entry is a key value pair produced by Sorted.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Sorted iterates over the entries of m in key order. supports Rewind.
func Sorted[K, V any](m *immutable.SortedMap[K, V]) *sorted[K, V] {
	return &sorted[K, V]{m: m, i: m.Iterator()}
}

type sorted[K, V any] struct {
	m   *immutable.SortedMap[K, V]
	i   *immutable.SortedMapIterator[K, V]
	cur Entry[K, V]
}

func (t *sorted[K, V]) Next() bool {
	k, v, ok := t.i.Next()
	if !ok {
		return false
	}

	t.cur = Entry[K, V]{Key: k, Value: v}
	return true
}

func (t *sorted[K, V]) At() Entry[K, V] {
	return t.cur
}

func (t *sorted[K, V]) Err() error {
	return nil
}

func (t *sorted[K, V]) Rewind() error {
	t.i.First()
	return nil
}

// Comparer builds an immutable.Comparer from a less function.
func Comparer[K any](less func(l, r K) bool) immutable.Comparer[K] {
	return comparer[K]{less: less}
}

type comparer[K any] struct {
	less func(l, r K) bool
}

func (t comparer[K]) Compare(i, j K) int {
	if t.less(i, j) {
		return -1
	} else if t.less(j, i) {
		return 1
	} else {
		return 0
	}
}
