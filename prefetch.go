// Package prefetch starts pull iterators eagerly.
//
// New advances the source once, immediately, and holds onto the result. The
// first Next/At pair replays it and every call after that goes straight to the
// source, so only the first unit of work moves. Iteration stays lazy afterwards,
// unbounded sources included.
//
// Construction is not free: New performs the source's first step before it
// returns, and returns that step's failure.
//
// At called before the first Next returns the prefetched value. The pull
// protocol leaves that read undefined, this package defines it.
package prefetch

import (
	"context"
	"iter"

	g "github.com/anacrolix/generics"

	"github.com/james-lawrence/prefetch/internal/errorsx"
	"github.com/james-lawrence/prefetch/internal/iterx"
	"github.com/james-lawrence/prefetch/internal/langx"
	"github.com/james-lawrence/prefetch/iterator"
)

var (
	_ iterator.RewindableIterator[int] = (*Iterator[int])(nil)
	_ iterx.Seq[int]                   = (*Iterator[int])(nil)
)

// Phase counts the Next calls since construction or the last Rewind.
type Phase uint8

const (
	NotStarted    Phase = iota // no Next yet, the prefetched value is pending.
	FirstReadDone              // first Next answered from the prefetch.
	Advanced                   // delegating to the source.
)

func (t Phase) String() string {
	switch t {
	case NotStarted:
		return "not started"
	case FirstReadDone:
		return "first read done"
	case Advanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// Iterator replays an eagerly fetched first element, then delegates to the
// source. It owns the source, Close releases it.
// Not safe for concurrent use.
type Iterator[T any] struct {
	options
	src        iterator.Iterator[T]
	prefetched g.Option[T]
	phase      Phase
	cause      error
	closed     bool
}

// New takes ownership of src and advances it once before returning.
// if that advance fails, src is closed and the failure is returned.
func New[T any](src iterator.Iterator[T], options ...Option) (_ *Iterator[T], err error) {
	it := &Iterator[T]{
		options: langx.Clone(defaults(), options...),
		src:     src,
	}

	if err = it.prefetch(); err != nil {
		return nil, errorsx.Compact(errorsx.WithStack(err), it.Close())
	}

	return it, nil
}

func (t *Iterator[T]) prefetch() error {
	t.log.Println("prefetch initiated")
	defer t.log.Println("prefetch completed")

	t.phase = NotStarted
	t.prefetched = g.None[T]()
	t.cause = nil

	if t.src.Next() {
		t.prefetched = g.Some(t.src.At())
		return nil
	}

	t.cause = t.src.Err()
	return t.cause
}

// Next reports the prefetched result on the first call and advances the
// source on every call after it. an exhausted prefetch is not retried.
func (t *Iterator[T]) Next() bool {
	switch {
	case t.phase == Advanced && !t.closed:
		return t.src.Next()
	case t.closed:
		return false
	case t.phase == FirstReadDone:
		if !t.prefetched.Ok {
			return false
		}

		t.phase = Advanced
		t.prefetched = g.None[T]()
		return t.src.Next()
	default:
		t.phase = FirstReadDone
		return t.prefetched.Ok
	}
}

// At returns the current value. repeated calls return the same value and
// never advance anything. the zero value once closed.
func (t *Iterator[T]) At() (zero T) {
	if t.closed {
		return zero
	}

	if t.phase == Advanced {
		return t.src.At()
	}

	return t.prefetched.Value
}

// Err returns the eager step's failure until delegation begins, the source's
// failure afterwards. ErrClosed once closed.
func (t *Iterator[T]) Err() error {
	if t.closed {
		return iterator.ErrClosed
	}

	if t.phase == Advanced {
		return t.src.Err()
	}

	return t.cause
}

// Phase of the iterator.
func (t *Iterator[T]) Phase() Phase {
	return t.phase
}

// Rewind restarts the source and performs the eager step again. sources that
// cannot restart return ErrRewindUnsupported, nothing is emulated.
func (t *Iterator[T]) Rewind() error {
	if t.closed {
		return iterator.ErrClosed
	}

	if err := iterator.Rewind(t.src); err != nil {
		return err
	}

	return t.prefetch()
}

// Close releases the source. only the first call has an effect.
func (t *Iterator[T]) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	if err := iterator.Close(t.src); err != nil {
		t.log.Println("close failed", err)
		return err
	}

	return nil
}

// Each ranges over the remaining elements until the source is exhausted or
// ctx is done. check Err afterwards.
func (t *Iterator[T]) Each(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if !t.Next() || !yield(t.At()) {
				return
			}
		}
	}
}
