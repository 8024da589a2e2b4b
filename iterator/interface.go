// Package iterator defines the pull based iteration capability and a set of
// sources implementing it.
//
// Usage follows the two phase protocol:
//
//	for it.Next() {
//		v := it.At()
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
//
// Rewinding and releasing resources are optional capabilities, discovered
// with Rewind and Close.
package iterator

import (
	"io"

	"github.com/james-lawrence/prefetch/internal/errorsx"
	"github.com/james-lawrence/prefetch/internal/iox"
)

const (
	ErrRewindUnsupported = errorsx.String("iterator does not support rewind")
	ErrTypeMismatch      = errorsx.String("element type mismatch")
	ErrClosed            = errorsx.String("iterator closed")
)

type Iterator[T any] interface {
	// Next advances to the next value, returns false when iteration ended.
	Next() bool
	// At returns the current value, only valid after Next returned true.
	At() T
	// Err returns the failure that ended iteration, nil on exhaustion.
	Err() error
}

type Rewinder interface {
	Rewind() error
}

type CloseableIterator[T any] interface {
	Iterator[T]
	io.Closer
}

type RewindableIterator[T any] interface {
	CloseableIterator[T]
	Rewinder
}

// Rewind restarts the iterator if it supports it, otherwise returns ErrRewindUnsupported.
func Rewind(it any) error {
	if r, ok := it.(Rewinder); ok {
		return r.Rewind()
	}

	return ErrRewindUnsupported
}

// Close releases the iterator's resources if it holds any.
func Close(it any) error {
	if c, ok := it.(io.Closer); ok {
		return iox.MaybeClose(c)
	}

	return nil
}
