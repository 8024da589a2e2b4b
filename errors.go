package prefetch

import (
	"github.com/james-lawrence/prefetch/iterator"
)

const (
	// ErrRewindUnsupported is returned by Rewind when the underlying iterator cannot restart.
	ErrRewindUnsupported = iterator.ErrRewindUnsupported
	// ErrTypeMismatch is wrapped by the failure of an untyped element that does not conform.
	ErrTypeMismatch = iterator.ErrTypeMismatch
)
