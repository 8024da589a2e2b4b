package iterator

import (
	g "github.com/anacrolix/generics"
)

// FromFunc iterates by invoking f until it returns a None.
// The value is stored after each Next so At can be called repeatedly.
func FromFunc[T any](f func() g.Option[T]) *fromFunc[T] {
	return &fromFunc[T]{f: f}
}

type fromFunc[T any] struct {
	v g.Option[T]
	f func() g.Option[T]
}

func (t *fromFunc[T]) Next() bool {
	t.v = t.f()
	return t.v.Ok
}

func (t *fromFunc[T]) At() T {
	return t.v.Value
}

func (t *fromFunc[T]) Err() error {
	return nil
}
