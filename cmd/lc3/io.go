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

package main

import (
	"bufio"
	"io"
)

// termInput adapts a raw-mode terminal file descriptor to vm.Input. A
// background goroutine feeds bytes into a buffered channel so that KeyReady
// can answer without blocking, matching the semantics KBSR polling needs. A
// one-byte lookahead lets KeyReady peek the channel without losing the byte
// for the following GetChar.
type termInput struct {
	ch        chan byte
	lookahead []byte
}

// newTermInput starts reading r in the background and returns a termInput
// that surfaces those bytes to GetChar/KeyReady.
func newTermInput(r io.Reader) *termInput {
	t := &termInput{ch: make(chan byte, 256)}
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				t.ch <- buf[0]
			}
			if err != nil {
				close(t.ch)
				return
			}
		}
	}()
	return t
}

func (t *termInput) KeyReady() bool {
	if len(t.lookahead) > 0 {
		return true
	}
	select {
	case b, ok := <-t.ch:
		if !ok {
			return false
		}
		t.lookahead = append(t.lookahead, b)
		return true
	default:
		return false
	}
}

func (t *termInput) GetChar() (byte, error) {
	if len(t.lookahead) > 0 {
		b := t.lookahead[0]
		t.lookahead = t.lookahead[1:]
		return b, nil
	}
	b, ok := <-t.ch
	if !ok {
		return 0, io.EOF
	}
	return b, nil
}

// lineInput is the fallback keyboard collaborator used when raw mode isn't
// available: it serves bytes from r one at a time. KeyReady always reports
// true, since without raw mode there is no way to poll the underlying
// reader without consuming from it.
type lineInput struct {
	r *bufio.Reader
}

func newLineInput(r io.Reader) *lineInput {
	return &lineInput{r: bufio.NewReader(r)}
}

func (l *lineInput) KeyReady() bool { return true }

func (l *lineInput) GetChar() (byte, error) {
	return l.r.ReadByte()
}
