//go:build !linux

package disk

import (
	"errors"
	"os"
)

var errUnsupported = errors.New("disk: block device geometry queries are only supported on linux")

func deviceBlockSize(*os.File) (uint64, error) {
	return 0, errUnsupported
}

func deviceSize(*os.File) (uint64, error) {
	return 0, errUnsupported
}

func rescanDevice(*os.File) error {
	return nil
}
