package iox

import (
	"io"
	"os"

	"github.com/james-lawrence/prefetch/internal/errorsx"
)

// MaybeClose closes c unless it is nil.
func MaybeClose(c io.Closer) error {
	if c == nil || c == (*os.File)(nil) {
		return nil
	}

	return c.Close()
}

// CloseAll closes every closer, returning the first failure.
func CloseAll(closers ...func() error) (err error) {
	for _, fn := range closers {
		err = errorsx.Compact(err, fn())
	}
	return err
}
