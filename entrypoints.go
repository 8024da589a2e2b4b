package prefetch

import (
	"iter"

	missingiter "github.com/anacrolix/missinggo/iter"

	"github.com/james-lawrence/prefetch/iterator"
)

// FromSeq prefetches the first element of a range over func sequence.
// Close releases the sequence if iteration is abandoned.
func FromSeq[T any](seq iter.Seq[T], options ...Option) (*Iterator[T], error) {
	return New[T](iterator.Pull(seq), options...)
}

// Cast imposes T on each element of it before prefetching, a first element
// of the wrong type fails here with ErrTypeMismatch.
func Cast[T any](it iterator.Iterator[any], options ...Option) (*Iterator[T], error) {
	return New[T](iterator.Cast[T](it), options...)
}

// Untyped is Cast for missinggo iterators.
func Untyped[T any](it missingiter.Iterator, options ...Option) (*Iterator[T], error) {
	return Cast[T](iterator.FromUntyped(it), options...)
}

// Any prefetches an untyped iterator without imposing a type.
func Any(it missingiter.Iterator, options ...Option) (*Iterator[any], error) {
	return Untyped[any](it, options...)
}
