package iterator

import (
	"bytes"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/james-lawrence/prefetch/internal/errorsx"
	"github.com/james-lawrence/prefetch/internal/iox"
)

// Lines iterates over the lines of the file at path, without the trailing
// newline. the file is memory mapped and held open until Close.
func Lines(path string) (_ *lines, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errorsx.Wrapf(err, "open %s", path)
	}

	info, err := f.Stat()
	if err != nil {
		return nil, errorsx.Compact(errorsx.Wrapf(err, "stat %s", path), f.Close())
	}

	// empty files cannot be mapped.
	if info.Size() == 0 {
		return &lines{f: f}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errorsx.Compact(errorsx.Wrapf(err, "mmap %s", path), f.Close())
	}

	return &lines{f: f, data: m}, nil
}

type lines struct {
	f      *os.File
	data   mmap.MMap
	offset int
	cur    string
	err    error
	closed bool
}

func (t *lines) Next() bool {
	if t.closed {
		t.err = ErrClosed
		return false
	}

	if t.offset >= len(t.data) {
		return false
	}

	rest := t.data[t.offset:]
	idx := bytes.IndexByte(rest, '\n')
	if idx < 0 {
		t.cur = string(bytes.TrimSuffix(rest, []byte{'\r'}))
		t.offset = len(t.data)
		return true
	}

	t.cur = string(bytes.TrimSuffix(rest[:idx], []byte{'\r'}))
	t.offset += idx + 1
	return true
}

func (t *lines) At() string {
	return t.cur
}

func (t *lines) Err() error {
	return t.err
}

func (t *lines) Rewind() error {
	if t.closed {
		return ErrClosed
	}

	t.offset = 0
	t.err = nil
	return nil
}

func (t *lines) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	return iox.CloseAll(t.unmap, t.f.Close)
}

func (t *lines) unmap() error {
	if t.data == nil {
		return nil
	}

	return t.data.Unmap()
}
