package prefetch

import (
	"iter"

	"github.com/james-lawrence/prefetch/internal/langx"
	"github.com/james-lawrence/prefetch/iterator"
)

// Sequence is a reusable view that prefetches every iterator it hands out.
// it holds no iteration state of its own.
type Sequence[T any] struct {
	open   func() (iterator.Iterator[T], error)
	option Option
}

// NewSequence builds a sequence whose iterators are produced by open.
func NewSequence[T any](open func() (iterator.Iterator[T], error), options ...Option) Sequence[T] {
	return Sequence[T]{open: open, option: langx.Compose(options...)}
}

// SliceSequence iterates over s.
func SliceSequence[T any](s []T, options ...Option) Sequence[T] {
	return NewSequence(func() (iterator.Iterator[T], error) {
		return iterator.Slice(s), nil
	}, options...)
}

// SeqSequence pulls a fresh run of seq for every iterator.
func SeqSequence[T any](seq iter.Seq[T], options ...Option) Sequence[T] {
	return NewSequence(func() (iterator.Iterator[T], error) {
		return iterator.Pull(seq), nil
	}, options...)
}

// Iter opens a fresh source and prefetches its first element. the eager
// step's cost is paid here, once per call.
func (t Sequence[T]) Iter() (*Iterator[T], error) {
	src, err := t.open()
	if err != nil {
		return nil, err
	}

	return New(src, t.option)
}
