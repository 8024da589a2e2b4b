package iterator

import (
	"reflect"

	missingiter "github.com/anacrolix/missinggo/iter"

	"github.com/james-lawrence/prefetch/internal/errorsx"
	"github.com/james-lawrence/prefetch/internal/langx"
)

// FromUntyped adapts a dynamically typed iterator. Close stops it.
func FromUntyped(it missingiter.Iterator) *untyped {
	return &untyped{it: it}
}

type untyped struct {
	it missingiter.Iterator
}

func (t *untyped) Next() bool {
	return t.it.Next()
}

func (t *untyped) At() any {
	return t.it.Value()
}

func (t *untyped) Err() error {
	return nil
}

func (t *untyped) Close() error {
	t.it.Stop()
	return nil
}

// Cast imposes the element type T on it. each element is checked when it is
// produced, a mismatch ends iteration with an error wrapping ErrTypeMismatch.
// nil elements are accepted when T is nilable.
// Rewind and Close are forwarded to it.
func Cast[T any](it Iterator[any]) *cast[T] {
	return &cast[T]{it: it}
}

type cast[T any] struct {
	it  Iterator[any]
	cur T
	err error
}

func (t *cast[T]) Next() bool {
	if t.err != nil || !t.it.Next() {
		return false
	}

	var zero T
	v := t.it.At()
	if v == nil && langx.Nilable[T]() {
		t.cur = zero
		return true
	}

	cur, ok := v.(T)
	if !ok {
		t.err = errorsx.Errorf("%T is not %s: %w", v, reflect.TypeFor[T](), ErrTypeMismatch)
		return false
	}

	t.cur = cur
	return true
}

func (t *cast[T]) At() T {
	return t.cur
}

func (t *cast[T]) Err() error {
	if t.err != nil {
		return t.err
	}

	return t.it.Err()
}

func (t *cast[T]) Rewind() error {
	if err := Rewind(t.it); err != nil {
		return err
	}

	t.err = nil
	return nil
}

func (t *cast[T]) Close() error {
	return Close(t.it)
}
