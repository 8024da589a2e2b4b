package iterator

import "golang.org/x/exp/constraints"

// Count is an unbounded iterator yielding start, start+step, start+2*step, ...
// wraps around on overflow.
func Count[T constraints.Integer](start, step T) *counter[T] {
	return &counter[T]{start: start, step: step}
}

type counter[T constraints.Integer] struct {
	start   T
	step    T
	cur     T
	started bool
}

func (t *counter[T]) Next() bool {
	if !t.started {
		t.started = true
		t.cur = t.start
		return true
	}

	t.cur += t.step
	return true
}

func (t *counter[T]) At() T {
	return t.cur
}

func (t *counter[T]) Err() error {
	return nil
}

func (t *counter[T]) Rewind() error {
	t.started = false
	return nil
}
