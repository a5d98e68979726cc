//go:build unix

package mmfile

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/wippyai/typekit/errors"
)

// Open maps path read-only. Empty files yield an empty view without a
// mapping, since mmap rejects zero-length regions.
func Open(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.OpMap, errors.KindNotFound, err, "open "+path)
	}
	defer fd.Close()

	info, err := fd.Stat()
	if err != nil {
		return nil, errors.Wrap(errors.OpMap, errors.KindInvalidInput, err, "stat "+path)
	}
	size := info.Size()
	if size == 0 {
		return &File{path: path}, nil
	}
	if size != int64(int(size)) {
		return nil, errors.Overflow(errors.OpMap, size, "int")
	}

	data, err := unix.Mmap(int(fd.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrap(errors.OpMap, errors.KindInvalidInput, err, "mmap "+path)
	}
	return &File{data: data, path: path, mapped: true}, nil
}

func (f *File) unmap(data []byte) error {
	if err := unix.Munmap(data); err != nil {
		return errors.Wrap(errors.OpMap, errors.KindInvalidInput, err, "munmap "+f.path)
	}
	return nil
}
