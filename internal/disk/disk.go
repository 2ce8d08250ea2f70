// Copyright (c) 2025 Gabriel Peart
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package disk opens raw block devices and disk images and resolves
// their geometry.
package disk

import (
	"fmt"
	"os"
)

// DefaultBlockSize is assumed for disk images, where the kernel cannot
// report a logical block size.
const DefaultBlockSize = 512

// Info is an open block device or disk image.
type Info struct {
	Path      string
	File      *os.File
	BlockSize uint64
	Blocks    uint64 // total addressable bytes / BlockSize
	IsDevice  bool
}

// Open opens path for read-write and resolves its geometry. Block
// devices are queried through the kernel; regular files fall back to
// their stat size and DefaultBlockSize so images are handled the same
// way as real devices.
func Open(path string) (*Info, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	info := &Info{Path: path, File: f}
	if fi.Mode()&os.ModeDevice != 0 {
		info.IsDevice = true
		blockSize, err := deviceBlockSize(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("querying block size of %s: %w", path, err)
		}
		totalBytes, err := deviceSize(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("querying size of %s: %w", path, err)
		}
		info.BlockSize = blockSize
		info.Blocks = totalBytes / blockSize
		return info, nil
	}

	info.BlockSize = DefaultBlockSize
	info.Blocks = uint64(fi.Size()) / DefaultBlockSize
	return info, nil
}

// Close releases the underlying handle.
func (i *Info) Close() error {
	return i.File.Close()
}

// Rescan asks the kernel to re-read the partition table so subsequent
// I/O sees the updated layout. It is a no-op for disk images.
func (i *Info) Rescan() error {
	if !i.IsDevice {
		return nil
	}
	return rescanDevice(i.File)
}
