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

func TestSignExtend(t *testing.T) {
	cases := []struct {
		v    Word
		bits uint
		want Word
	}{
		{0x0F, 5, 0x0F},        // 01111, positive
		{0x1F, 5, 0xFFFF},      // 11111 -> -1
		{0x10, 5, 0xFFF0},      // 10000 -> -16
		{0x3F, 6, 0xFFFF},      // all-ones 6-bit -> -1
		{0x20, 6, 0xFFE0},      // 100000 -> -32
		{0x1FF, 9, 0xFFFF},     // all-ones 9-bit -> -1
		{0x100, 9, 0xFF00},     // -256
		{0x7FF, 11, 0xFFFF},    // all-ones 11-bit -> -1
		{0x400, 11, 0xFC00},    // -1024
		{0x000, 9, 0x0000},
	}
	for _, c := range cases {
		if got := signExtend(c.v, c.bits); got != c.want {
			t.Errorf("signExtend(%#x, %d) = %#x, want %#x", c.v, c.bits, got, c.want)
		}
	}
}

func newTestInstance(t *testing.T) *Instance {
	t.Helper()
	i, err := New()
	if err != nil {
		t.Fatal(err)
	}
	return i
}

func TestExecADDRegister(t *testing.T) {
	i := newTestInstance(t)
	i.setReg(R1, 2)
	i.setReg(R2, 3)
	// ADD R0, R1, R2
	if err := i.execute(Word(OpADD)<<12 | 0<<9 | 1<<6 | 2); err != nil {
		t.Fatal(err)
	}
	if got := i.Reg(R0); got != 5 {
		t.Fatalf("R0 = %d, want 5", got)
	}
	if got := i.Reg(RCOND); got != CondPOS {
		t.Fatalf("COND = %#x, want POS", got)
	}
}

func TestExecADDImmediateNegative(t *testing.T) {
	i := newTestInstance(t)
	i.setReg(R1, 3)
	// ADD R0, R1, #-5  (imm5 = 0x1B)
	instr := Word(OpADD)<<12 | 0<<9 | 1<<6 | 1<<5 | 0x1B
	if err := i.execute(instr); err != nil {
		t.Fatal(err)
	}
	if got := i.Reg(R0); got != 0xFFFE { // 3-5 = -2
		t.Fatalf("R0 = %#x, want 0xFFFE", got)
	}
	if got := i.Reg(RCOND); got != CondNEG {
		t.Fatalf("COND = %#x, want NEG", got)
	}
}

func TestExecANDImmediateZero(t *testing.T) {
	i := newTestInstance(t)
	i.setReg(R1, 0xFFFF)
	// AND R2, R1, #0
	instr := Word(OpAND)<<12 | 2<<9 | 1<<6 | 1<<5 | 0
	if err := i.execute(instr); err != nil {
		t.Fatal(err)
	}
	if got := i.Reg(R2); got != 0 {
		t.Fatalf("R2 = %#x, want 0", got)
	}
	if got := i.Reg(RCOND); got != CondZRO {
		t.Fatalf("COND = %#x, want ZRO", got)
	}
}

func TestExecNOT(t *testing.T) {
	i := newTestInstance(t)
	i.setReg(R1, 0x00FF)
	instr := Word(OpNOT)<<12 | 0<<9 | 1<<6 | 0x3F
	if err := i.execute(instr); err != nil {
		t.Fatal(err)
	}
	if got := i.Reg(R0); got != 0xFF00 {
		t.Fatalf("R0 = %#x, want 0xFF00", got)
	}
}

func TestExecLDAndST(t *testing.T) {
	i := newTestInstance(t)
	i.setReg(RPC, 0x3000)
	i.SetMem(0x3005, 0x1234) // PC (already post-fetch-increment) + offset 5
	// LD R0, #5
	if err := i.execute(Word(OpLD)<<12 | 0<<9 | 5); err != nil {
		t.Fatal(err)
	}
	if got := i.Reg(R0); got != 0x1234 {
		t.Fatalf("R0 = %#x, want 0x1234", got)
	}

	i.setReg(RPC, 0x3000)
	i.setReg(R1, 0xBEEF)
	// ST R1, #5
	if err := i.execute(Word(OpST)<<12 | 1<<9 | 5); err != nil {
		t.Fatal(err)
	}
	if got := i.Mem(0x3005); got != 0xBEEF {
		t.Fatalf("mem[0x3005] = %#x, want 0xBEEF", got)
	}
}

func TestExecSTIWritesThrough(t *testing.T) {
	i := newTestInstance(t)
	i.setReg(RPC, 0x3000)
	i.SetMem(0x3005, 0x4000) // pointer stored at PC+5
	i.setReg(R2, 0xCAFE)
	// STI R2, #5
	if err := i.execute(Word(OpSTI)<<12 | 2<<9 | 5); err != nil {
		t.Fatal(err)
	}
	if got := i.Mem(0x4000); got != 0xCAFE {
		t.Fatalf("mem[0x4000] = %#x, want 0xCAFE", got)
	}
}

func TestExecJSRAndJMP(t *testing.T) {
	i := newTestInstance(t)
	i.setReg(RPC, 0x3000)
	// JSR #10 (PCoffset11 = 10, long flag set)
	if err := i.execute(Word(OpJSR)<<12 | 1<<11 | 10); err != nil {
		t.Fatal(err)
	}
	if got := i.Reg(RPC); got != 0x300A {
		t.Fatalf("PC = %#x, want 0x300A", got)
	}
	if got := i.Reg(R7); got != 0x3000 {
		t.Fatalf("R7 = %#x, want 0x3000 (return address)", got)
	}

	i.setReg(R3, 0x5000)
	// JMP R3
	if err := i.execute(Word(OpJMP)<<12 | 3<<6); err != nil {
		t.Fatal(err)
	}
	if got := i.Reg(RPC); got != 0x5000 {
		t.Fatalf("PC = %#x, want 0x5000", got)
	}
}

func TestExecBadOpcode(t *testing.T) {
	i := newTestInstance(t)
	for _, op := range []Word{OpRTI, OpRES} {
		if err := i.execute(op << 12); err != ErrBadOpcode {
			t.Fatalf("opcode %#x: got %v, want ErrBadOpcode", op, err)
		}
	}
}
