//go:build unix

package source

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapFile maps size bytes of f read-only and hints sequential access.
func mapFile(f *os.File, size int) ([]byte, func() error, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	// Madvise is only a readahead hint; the mapping is valid whether or not
	// the kernel accepts it.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
	return data, func() error { return unix.Munmap(data) }, nil
}
