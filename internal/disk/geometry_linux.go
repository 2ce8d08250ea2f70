//go:build linux

package disk

import (
	"os"

	"golang.org/x/sys/unix"
)

func deviceBlockSize(f *os.File) (uint64, error) {
	size, err := unix.IoctlGetUint32(int(f.Fd()), unix.BLKSSZGET)
	if err != nil {
		return 0, err
	}
	return uint64(size), nil
}

func deviceSize(f *os.File) (uint64, error) {
	size, err := unix.IoctlGetInt(int(f.Fd()), unix.BLKGETSIZE64)
	if err != nil {
		return 0, err
	}
	return uint64(size), nil
}

func rescanDevice(f *os.File) error {
	_, err := unix.IoctlRetInt(int(f.Fd()), unix.BLKRRPART)
	return err
}
