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

// Package gpt maintains an in-memory view of a device's GUID Partition
// Table as a fixed array of positional entry slots. The on-disk format
// itself (headers, CRCs, protective MBR) is delegated to
// github.com/diskfs/go-diskfs.
package gpt

import (
	"errors"
	"fmt"

	diskfsgpt "github.com/diskfs/go-diskfs/partition/gpt"
	"github.com/diskfs/go-diskfs/util"

	"github.com/gabrielPeart/magenta/pkg/guid"
)

// NumPartitions is the capacity of the partition entry array.
const NumPartitions = 128

var (
	// ErrInvalidTable is returned by mutations attempted before a table
	// has been loaded or materialized.
	ErrInvalidTable = errors.New("gpt: partition table is not valid")
	// ErrTableFull is returned by AddPartition when no slot is free.
	ErrTableFull = errors.New("gpt: no free partition slots")
	// ErrNotFound is returned by RemovePartition for an unknown GUID.
	ErrNotFound = errors.New("gpt: partition not found")
)

// Partition is a single occupied entry slot.
type Partition struct {
	Name  [NameLength]uint16
	Type  guid.GUID
	ID    guid.GUID
	First uint64 // first block, inclusive
	Last  uint64 // last block, inclusive
	Flags uint64
}

// Blocks returns the number of blocks the entry covers.
func (p *Partition) Blocks() uint64 {
	return p.Last - p.First + 1
}

// Device is the partition table of one open device.
type Device struct {
	// Valid is false until a table has been read from the device or a
	// fresh one has been written back with Sync.
	Valid bool
	// Partitions is a positional slot array. A slot index is not a
	// stable identifier: removals leave gaps until the next load.
	Partitions [NumPartitions]*Partition

	f         util.File
	blockSize uint64
	blocks    uint64
	diskGUID  string
}

// InitDevice loads the partition table of a device with the given
// geometry. A device without a readable GPT is a normal state: the
// returned Device is marked invalid and stays empty until the first
// Sync materializes a fresh table.
func InitDevice(f util.File, blockSize, blocks uint64) (*Device, error) {
	if blockSize == 0 || blocks == 0 {
		return nil, fmt.Errorf("gpt: device has no geometry (blocksize=%d blocks=%d)", blockSize, blocks)
	}
	d := &Device{f: f, blockSize: blockSize, blocks: blocks}

	t, err := diskfsgpt.Read(f, int(blockSize), int(blockSize))
	if err != nil {
		return d, nil
	}

	slot := 0
	for _, p := range t.Partitions {
		if p == nil || p.Type == diskfsgpt.Unused {
			continue
		}
		if slot == NumPartitions {
			break
		}
		entry, err := entryFromTable(p)
		if err != nil {
			return nil, err
		}
		d.Partitions[slot] = entry
		slot++
	}
	d.diskGUID = t.GUID
	d.Valid = true
	return d, nil
}

// AddPartition creates an entry covering blocks [first, first+count-1]
// in the first free slot. The range must lie inside the usable region
// and not overlap any occupied slot.
func (d *Device) AddPartition(name string, typ, id guid.GUID, first, count, flags uint64) error {
	if !d.Valid {
		return ErrInvalidTable
	}
	if count == 0 {
		return fmt.Errorf("gpt: partition %q has zero blocks", name)
	}
	if id.IsZero() {
		return fmt.Errorf("gpt: partition %q has a zero GUID", name)
	}
	last := first + count - 1
	if last < first {
		return fmt.Errorf("gpt: block range 0x%x+0x%x overflows", first, count)
	}
	lo, hi := d.usableRange()
	if first < lo || last > hi {
		return fmt.Errorf("gpt: blocks 0x%x..0x%x outside usable range 0x%x..0x%x", first, last, lo, hi)
	}

	slot := -1
	for i, p := range d.Partitions {
		if p == nil {
			if slot < 0 {
				slot = i
			}
			continue
		}
		if p.ID == id {
			return fmt.Errorf("gpt: partition GUID %s already in use", id)
		}
		if first <= p.Last && p.First <= last {
			return fmt.Errorf("gpt: blocks 0x%x..0x%x overlap partition %q (0x%x..0x%x)",
				first, last, DecodeName(p.Name), p.First, p.Last)
		}
	}
	if slot < 0 {
		return ErrTableFull
	}

	d.Partitions[slot] = &Partition{
		Name:  EncodeName(name),
		Type:  typ,
		ID:    id,
		First: first,
		Last:  last,
		Flags: flags,
	}
	return nil
}

// RemovePartition empties the slot holding the entry with the given
// unique GUID. The slot array is not compacted.
func (d *Device) RemovePartition(id guid.GUID) error {
	if !d.Valid {
		return ErrInvalidTable
	}
	for i, p := range d.Partitions {
		if p != nil && p.ID == id {
			d.Partitions[i] = nil
			return nil
		}
	}
	return ErrNotFound
}

// Sync durably writes the table, protective MBR and CRCs included, to
// the device. Syncing an invalid Device writes a fresh empty table and
// marks it valid; the disk GUID is kept across loads and generated for
// a fresh table.
func (d *Device) Sync() error {
	t := &diskfsgpt.Table{
		LogicalSectorSize:  int(d.blockSize),
		PhysicalSectorSize: int(d.blockSize),
		ProtectiveMBR:      true,
		GUID:               d.diskGUID,
	}
	for _, p := range d.Partitions {
		if p == nil {
			continue
		}
		t.Partitions = append(t.Partitions, &diskfsgpt.Partition{
			Start:      p.First,
			End:        p.Last,
			Size:       p.Blocks() * d.blockSize,
			Type:       diskfsgpt.Type(p.Type.String()),
			GUID:       p.ID.String(),
			Name:       nameString(p.Name),
			Attributes: p.Flags,
		})
	}
	if err := t.Write(d.f, int64(d.blocks*d.blockSize)); err != nil {
		return fmt.Errorf("gpt: writing table: %w", err)
	}
	d.diskGUID = t.GUID
	d.Valid = true
	return nil
}

// usableRange returns the first and last block available for partition
// data: everything between the primary header plus entry array and
// their secondary copies at the end of the device.
func (d *Device) usableRange() (lo, hi uint64) {
	entrySectors := NumPartitions * uint64(diskfsgpt.PartitionEntrySize) / d.blockSize
	lo = 2 + entrySectors
	if d.blocks < 2*lo {
		return 0, 0
	}
	return lo, d.blocks - 1 - entrySectors
}

func entryFromTable(p *diskfsgpt.Partition) (*Partition, error) {
	typ, err := guid.Parse(string(p.Type))
	if err != nil {
		return nil, fmt.Errorf("gpt: partition type: %w", err)
	}
	id, err := guid.Parse(p.GUID)
	if err != nil {
		return nil, fmt.Errorf("gpt: partition id: %w", err)
	}
	return &Partition{
		Name:  EncodeName(p.Name),
		Type:  typ,
		ID:    id,
		First: p.Start,
		Last:  p.End,
		Flags: p.Attributes,
	}, nil
}
