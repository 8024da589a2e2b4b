package iterator

import (
	"iter"
)

// Pull converts a range over func sequence into a pull iterator.
// seq is not invoked until the first call to Next. Close must be called
// if iteration is abandoned early to release the sequence.
func Pull[T any](seq iter.Seq[T]) *pulled[T] {
	return &pulled[T]{seq: seq}
}

type pulled[T any] struct {
	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()
	v    T
}

func (t *pulled[T]) Next() bool {
	var ok bool

	if t.next == nil {
		t.next, t.stop = iter.Pull(t.seq)
	}

	if t.v, ok = t.next(); !ok {
		t.Close()
	}

	return ok
}

func (t *pulled[T]) At() T {
	return t.v
}

func (t *pulled[T]) Err() error {
	return nil
}

// Rewind discards the current pull and starts the sequence over on the next call to Next.
func (t *pulled[T]) Rewind() error {
	t.Close()
	t.next, t.stop = nil, nil
	return nil
}

func (t *pulled[T]) Close() error {
	if t.stop != nil {
		t.stop()
	}

	return nil
}

// Values exposes the remainder of an iterator as a range over func sequence.
// Err should be checked once the range completes.
func Values[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.At()) {
				return
			}
		}
	}
}

// Collect drains the iterator.
func Collect[T any](it Iterator[T]) (s []T, err error) {
	for it.Next() {
		s = append(s, it.At())
	}

	return s, it.Err()
}

// Take drains at most n elements from the iterator.
func Take[T any](it Iterator[T], n int) (s []T, err error) {
	for i := 0; i < n && it.Next(); i++ {
		s = append(s, it.At())
	}

	return s, it.Err()
}
