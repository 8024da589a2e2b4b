package iterator

// Slice iterates over the elements of s. supports Rewind.
func Slice[T any](s []T) *slice[T] {
	return &slice[T]{s: s, cur: -1}
}

type slice[T any] struct {
	s   []T
	cur int
}

func (t *slice[T]) Next() bool {
	if t.cur+1 >= len(t.s) {
		t.cur = len(t.s)
		return false
	}

	t.cur++
	return true
}

func (t *slice[T]) At() T {
	return t.s[t.cur]
}

func (t *slice[T]) Err() error {
	return nil
}

func (t *slice[T]) Remaining() int {
	return max(0, len(t.s)-(t.cur+1))
}

func (t *slice[T]) Rewind() error {
	t.cur = -1
	return nil
}

func (t *slice[T]) Close() error {
	return nil
}
