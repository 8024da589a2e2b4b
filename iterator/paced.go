package iterator

import (
	"context"

	"golang.org/x/time/rate"
)

// Paced waits on the limiter before every advance of it. a failed wait ends
// iteration with the wait's error. Rewind and Close are forwarded to it.
func Paced[T any](ctx context.Context, it Iterator[T], l *rate.Limiter) *paced[T] {
	return &paced[T]{ctx: ctx, it: it, l: l}
}

type paced[T any] struct {
	ctx context.Context
	it  Iterator[T]
	l   *rate.Limiter
	err error
}

func (t *paced[T]) Next() bool {
	if t.err != nil {
		return false
	}

	if t.err = t.l.Wait(t.ctx); t.err != nil {
		return false
	}

	return t.it.Next()
}

func (t *paced[T]) At() T {
	return t.it.At()
}

func (t *paced[T]) Err() error {
	if t.err != nil {
		return t.err
	}

	return t.it.Err()
}

func (t *paced[T]) Rewind() error {
	if err := Rewind(t.it); err != nil {
		return err
	}

	t.err = nil
	return nil
}

func (t *paced[T]) Close() error {
	return Close(t.it)
}
