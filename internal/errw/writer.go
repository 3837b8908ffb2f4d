// This file is part of lc3 - https://github.com/lc3kit/lc3
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errw holds small internal helpers shared by the cmd/lc3 drivers.
package errw

import (
	"io"

	"github.com/pkg/errors"
)

// Writer wraps an io.Writer to latch the first write error: once set, every
// subsequent Write is a no-op that returns the same error. This lets a
// driver chain a run of unconditional writes (a symbol-table dump, a
// disassembly listing) and check err once at the end instead of after each
// call.
type Writer struct {
	w   io.Writer
	Err error
}

// New returns a Writer wrapping w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err := w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}
