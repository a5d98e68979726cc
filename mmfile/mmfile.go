// Package mmfile provides a read-only, memory-mapped view of a file.
//
// On unix platforms the file contents are mapped into the address space;
// elsewhere the file is read into memory so the API behaves identically.
// The view is valid until Close; accessing a closed file fails rather than
// faulting.
package mmfile

import (
	"github.com/wippyai/typekit/errors"
)

// File is a read-only byte view over a file's contents.
type File struct {
	data   []byte
	path   string
	mapped bool
	closed bool
}

// Path returns the path the file was opened from.
func (f *File) Path() string {
	return f.path
}

// IsOpen reports whether the view is still valid.
func (f *File) IsOpen() bool {
	return !f.closed
}

// Len returns the file size in bytes; zero after Close.
func (f *File) Len() int {
	if f.closed {
		return 0
	}
	return len(f.data)
}

// Bytes returns the file contents. The slice is only valid until Close; it
// is nil after Close.
func (f *File) Bytes() []byte {
	if f.closed {
		return nil
	}
	return f.data
}

// At returns the byte at position i.
func (f *File) At(i int) (byte, error) {
	if f.closed {
		return 0, errors.Closed(errors.OpMap, "file")
	}
	if i < 0 || i >= len(f.data) {
		return 0, errors.OutOfBounds(errors.OpMap, i, len(f.data))
	}
	return f.data[i], nil
}

// Close releases the mapping. Close is idempotent; only the first call can
// return an error.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	data := f.data
	f.data = nil
	if !f.mapped {
		return nil
	}
	f.mapped = false
	return f.unmap(data)
}
