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

// Package confirm gates mutating operations on explicit user approval.
package confirm

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrDeclined is returned when the user cancels a mutating operation.
var ErrDeclined = errors.New("operation cancelled")

// Confirmer decides whether a mutating operation may proceed.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Auto approves every operation. It backs the --yes flag for
// non-interactive use.
type Auto struct{}

// Confirm always reports true.
func (Auto) Confirm(string) bool {
	return true
}

// KeyConfirmer prints the prompt and blocks until a single byte is
// read from its input: a line feed confirms, any other byte or a read
// error cancels.
type KeyConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// NewKeyConfirmer returns a KeyConfirmer wired to stdin and stdout.
func NewKeyConfirmer() *KeyConfirmer {
	return &KeyConfirmer{In: os.Stdin, Out: os.Stdout}
}

func (k *KeyConfirmer) Confirm(prompt string) bool {
	fmt.Fprintln(k.Out, prompt)
	var b [1]byte
	for {
		n, err := k.In.Read(b[:])
		if err != nil {
			return false
		}
		if n == 1 {
			return b[0] == '\n'
		}
	}
}
