//go:build !unix

package mmfile

import (
	"os"

	"github.com/wippyai/typekit/errors"
)

// Open reads path into memory. Platforms without mmap support get a
// buffered view with identical semantics.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.OpMap, errors.KindNotFound, err, "read "+path)
	}
	return &File{data: data, path: path}, nil
}

func (f *File) unmap(data []byte) error {
	return nil
}
