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

package vm

import "testing"

func TestTrapOUT(t *testing.T) {
	out := &BufferOutput{}
	i, err := New(WithOutput(out))
	if err != nil {
		t.Fatal(err)
	}
	i.setReg(R0, 'A')
	if err := i.trap(TrapOUT); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "A" {
		t.Fatalf("output = %q, want %q", got, "A")
	}
}

func TestTrapPUTS(t *testing.T) {
	out := &BufferOutput{}
	i, err := New(WithOutput(out))
	if err != nil {
		t.Fatal(err)
	}
	for n, c := range "Hi!" {
		i.SetMem(Word(0x4000+n), Word(c))
	}
	i.SetMem(0x4003, 0)
	i.setReg(R0, 0x4000)
	if err := i.trap(TrapPUTS); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "Hi!" {
		t.Fatalf("output = %q, want %q", got, "Hi!")
	}
}

func TestTrapPUTSPSkipsZeroHighByte(t *testing.T) {
	out := &BufferOutput{}
	i, err := New(WithOutput(out))
	if err != nil {
		t.Fatal(err)
	}
	// "Hi" packed two chars per word, "!" alone with a zero high byte, then
	// a terminating zero word.
	i.SetMem(0x4000, Word('H')|Word('i')<<8)
	i.SetMem(0x4001, Word('!'))
	i.SetMem(0x4002, 0)
	i.setReg(R0, 0x4000)
	if err := i.trap(TrapPUTSP); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "Hi!" {
		t.Fatalf("output = %q, want %q", got, "Hi!")
	}
}

func TestTrapGETC(t *testing.T) {
	i, err := New(WithInput(NewBufferInput("x")))
	if err != nil {
		t.Fatal(err)
	}
	if err := i.trap(TrapGETC); err != nil {
		t.Fatal(err)
	}
	if got := i.Reg(R0); got != 'x' {
		t.Fatalf("R0 = %#x, want 'x'", got)
	}
}

func TestTrapINPromptsEchoesAndReads(t *testing.T) {
	out := &BufferOutput{}
	i, err := New(WithOutput(out), WithInput(NewBufferInput("q")))
	if err != nil {
		t.Fatal(err)
	}
	if err := i.trap(TrapIN); err != nil {
		t.Fatal(err)
	}
	if got := i.Reg(R0); got != 'q' {
		t.Fatalf("R0 = %#x, want 'q'", got)
	}
	if got := out.String(); got != "Enter a character: q" {
		t.Fatalf("output = %q, want %q", got, "Enter a character: q")
	}
}

func TestTrapHALT(t *testing.T) {
	diag := &BufferOutput{}
	i, err := New(WithDiagnostic(diag))
	if err != nil {
		t.Fatal(err)
	}
	if err := i.trap(TrapHALT); err != nil {
		t.Fatal(err)
	}
	if i.running {
		t.Fatal("expected running flag to be cleared")
	}
	if got := diag.String(); got != "-- RESET --\n-- HALT --\n" {
		t.Fatalf("diagnostic = %q, want %q", got, "-- RESET --\n-- HALT --\n")
	}
}

func TestKeyboardPolling(t *testing.T) {
	i, err := New(WithInput(NewBufferInput("z")))
	if err != nil {
		t.Fatal(err)
	}
	if got := i.Mem(KBSR); got != 0x8000 {
		t.Fatalf("KBSR = %#x, want 0x8000", got)
	}
	if got := i.Mem(KBDR); got != 'z' {
		t.Fatalf("KBDR = %#x, want 'z'", got)
	}
	if got := i.Mem(KBSR); got != 0 {
		t.Fatalf("KBSR after drain = %#x, want 0", got)
	}
}
