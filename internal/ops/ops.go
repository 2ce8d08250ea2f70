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

// Package ops implements the partition table operations behind the
// command-line verbs: dumping the table, adding a partition over a
// block range, and removing the partition at a slot index.
package ops

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/gabrielPeart/magenta/internal/confirm"
	"github.com/gabrielPeart/magenta/internal/disk"
	"github.com/gabrielPeart/magenta/internal/gpt"
	"github.com/gabrielPeart/magenta/pkg/guid"
	fmtutil "github.com/gabrielPeart/magenta/pkg/util/format"
)

// Ops executes partition table commands against one device at a time.
type Ops struct {
	out  io.Writer
	log  *slog.Logger
	gate confirm.Confirmer
}

func New(out io.Writer, log *slog.Logger, gate confirm.Confirmer) *Ops {
	return &Ops{out: out, log: log, gate: gate}
}

// session owns the open device handle and the loaded table for the
// duration of one command.
type session struct {
	dev   *disk.Info
	table *gpt.Device
}

func (s *session) close() {
	s.dev.Close()
}

// openSession opens the device and loads its partition table. When
// warn is set, the confirmation gate runs before the device is even
// opened; declining aborts with no side effects.
func (o *Ops) openSession(path string, warn bool) (*session, error) {
	if warn {
		prompt := fmt.Sprintf("Using %s... <enter> to continue, any other key to cancel", path)
		if !o.gate.Confirm(prompt) {
			return nil, confirm.ErrDeclined
		}
	}

	dev, err := disk.Open(path)
	if err != nil {
		return nil, err
	}
	o.log.Info("device opened", "path", path, "blocksize", dev.BlockSize, "blocks", dev.Blocks)

	table, err := gpt.InitDevice(dev.File, dev.BlockSize, dev.Blocks)
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("initializing partition table: %w", err)
	}
	return &session{dev: dev, table: table}, nil
}

// commit makes the in-memory table durable, then asks the kernel to
// re-read the partition layout. The write-back must succeed before the
// rescan is issued; a failed rescan is logged but not fatal.
func (o *Ops) commit(s *session) error {
	o.log.Info("committing partition table", "path", s.dev.Path)
	if err := s.table.Sync(); err != nil {
		return err
	}
	if err := s.dev.Rescan(); err != nil {
		o.log.Warn("partition rescan failed", "err", err)
	}
	return nil
}

// Dump lists the partition table, iterating slots in order and
// stopping at the first empty one.
func (o *Ops) Dump(path string) error {
	s, err := o.openSession(path, false)
	if err != nil {
		return err
	}
	defer s.close()

	if !s.table.Valid {
		fmt.Fprintln(o.out, "No valid GPT found")
		return nil
	}

	fmt.Fprintln(o.out, "Partition table is valid")
	w := tabwriter.NewWriter(o.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tFIRST\tLAST\tBLOCKS\tSIZE\tGUID")
	n := 0
	for _, p := range s.table.Partitions {
		if p == nil {
			break
		}
		fmt.Fprintf(w, "%d\t%s\t0x%x\t0x%x\t0x%x\t%s\t%s\n",
			n, gpt.DecodeName(p.Name), p.First, p.Last, p.Blocks(),
			fmtutil.FormatBytes(p.Blocks()*s.dev.BlockSize), p.ID)
		n++
	}
	w.Flush()
	fmt.Fprintf(o.out, "Total: %d partitions\n", n)
	return nil
}

// Add creates a partition covering blocks [offset, offset+blocks-1].
// On a device without a valid GPT an empty table is committed first,
// so add can bootstrap a blank device.
func (o *Ops) Add(path string, offset, blocks uint64, name string) error {
	s, err := o.openSession(path, true)
	if err != nil {
		return err
	}
	defer s.close()

	if !s.table.Valid {
		o.log.Info("no valid GPT found, materializing a fresh table", "path", path)
		if err := o.commit(s); err != nil {
			return err
		}
	}

	id, err := guid.New()
	if err != nil {
		return err
	}
	if err := s.table.AddPartition(name, markerType(), id, offset, blocks, 0); err != nil {
		return err
	}

	fmt.Fprintf(o.out, "add partition: name=%s offset=0x%x blocks=0x%x\n", name, offset, blocks)
	return o.commit(s)
}

// Remove deletes the partition at slot n. An index outside the table,
// or one pointing at an empty slot, is a silent no-op: nothing is
// printed, nothing is written, and the command still succeeds.
func (o *Ops) Remove(path string, n int) error {
	s, err := o.openSession(path, true)
	if err != nil {
		return err
	}
	defer s.close()

	if n < 0 || n >= gpt.NumPartitions {
		return nil
	}
	p := s.table.Partitions[n]
	if p == nil {
		return nil
	}

	if err := s.table.RemovePartition(p.ID); err != nil {
		return err
	}
	fmt.Fprintf(o.out, "remove partition: n=%d name=%s\n", n, gpt.DecodeName(p.Name))
	return o.commit(s)
}

// markerType is the type GUID stamped on every partition this tool
// creates: all 0xFF bytes, deliberately outside any registered type.
func markerType() guid.GUID {
	var g guid.GUID
	for i := range g {
		g[i] = 0xff
	}
	return g
}
