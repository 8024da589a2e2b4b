package prefetch

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/james-lawrence/prefetch/internal/errorsx"
	"github.com/james-lawrence/prefetch/iterator"
)

// tracker records the side effects of the instrumented sources below.
// position -1 is untouched, -2 is exhausted.
type tracker struct {
	position int
	first    int
	second   int
}

func newTracker() *tracker {
	return &tracker{position: -1}
}

func (t *tracker) require(tb testing.TB, position, first, second int) {
	tb.Helper()
	require.Equal(tb, position, t.position, "position")
	require.Equal(tb, first, t.first, "first step")
	require.Equal(tb, second, t.second, "second step")
}

type source struct {
	name     string
	infinite bool
	open     func(*tracker) iterator.Iterator[int]
}

func finiteGenerator(tr *tracker) iterator.Iterator[int] {
	return iterator.Pull(func(yield func(int) bool) {
		tr.first++
		tr.position = 0
		if !yield(10) {
			return
		}

		tr.second++
		tr.position = 1
		if !yield(20) {
			return
		}

		tr.position = 2
		if !yield(30) {
			return
		}

		tr.position = 3
		if !yield(40) {
			return
		}

		tr.position = -2
	})
}

func infiniteGenerator(tr *tracker) iterator.Iterator[int] {
	return iterator.Pull(func(yield func(int) bool) {
		tr.first++
		tr.position = 0
		for {
			if !yield((tr.position + 1) * 10) {
				return
			}

			if tr.position == 0 {
				tr.second++
			}
			tr.position++
		}
	})
}

// filtered tracks state from the values flowing through a map and filter.
func filtered(tr *tracker) iterator.Iterator[int] {
	return iterator.Pull(func(yield func(int) bool) {
		for _, v := range []int{10, 20, 30, 40, 50} {
			tr.position++
			if v == 10 {
				tr.position = 0
				tr.first++
			}
			if v == 20 {
				tr.second++
			}
			if v == 50 {
				tr.position = -2
			}

			if v > 5 && v < 45 && !yield(v) {
				return
			}
		}
	})
}

// manual is a hand written state machine that supports Rewind.
type manual struct {
	tr     *tracker
	err    error
	closed int
}

func (t *manual) Next() bool {
	switch t.tr.position {
	case -1:
		t.tr.first++
		t.tr.position = 0
		return true
	case 0:
		t.tr.second++
		t.tr.position = 1
		return true
	case 1, 2:
		t.tr.position++
		return true
	case 3:
		t.tr.position = -2
		return false
	default:
		t.err = errorsx.Errorf("advanced past the end: %d", t.tr.position)
		return false
	}
}

func (t *manual) At() int {
	return (t.tr.position + 1) * 10
}

func (t *manual) Err() error {
	return t.err
}

func (t *manual) Rewind() error {
	t.tr.position = -1
	t.err = nil
	return nil
}

func (t *manual) Close() error {
	t.closed++
	return nil
}

func finiteSources() []source {
	return []source{
		{name: "finite generator", open: finiteGenerator},
		{name: "manual state machine", open: func(tr *tracker) iterator.Iterator[int] { return &manual{tr: tr} }},
		{name: "value based filter", open: filtered},
	}
}

func allSources() []source {
	return append(finiteSources(), source{name: "infinite generator", infinite: true, open: infiniteGenerator})
}

// counting records calls made against the wrapped iterator.
type counting[T any] struct {
	iterator.Iterator[T]
	nexts  int
	ats    int
	errs   int
	closes int
}

func (t *counting[T]) Next() bool {
	t.nexts++
	return t.Iterator.Next()
}

func (t *counting[T]) At() T {
	t.ats++
	return t.Iterator.At()
}

func (t *counting[T]) Err() error {
	t.errs++
	return t.Iterator.Err()
}

func (t *counting[T]) Close() error {
	t.closes++
	return iterator.Close(t.Iterator)
}

// failing produces n elements then fails with cause.
type failing struct {
	n      int
	cur    int
	cause  error
	err    error
	closed int
}

func (t *failing) Next() bool {
	if t.cur >= t.n {
		t.err = t.cause
		return false
	}

	t.cur++
	return true
}

func (t *failing) At() int {
	return t.cur
}

func (t *failing) Err() error {
	return t.err
}

func (t *failing) Close() error {
	t.closed++
	return nil
}

type captureLogger struct {
	captured []string
}

func (t *captureLogger) Println(v ...any) {
	t.captured = append(t.captured, strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (t *captureLogger) Printf(format string, v ...any) {
	t.captured = append(t.captured, fmt.Sprintf(format, v...))
}

func (t *captureLogger) Print(v ...any) {
	t.captured = append(t.captured, fmt.Sprint(v...))
}
