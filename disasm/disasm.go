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

// Package disasm renders a single LC-3 instruction word back to its
// mnemonic assembly form, for the memory panel of cmd/lc3's debugger and for ad-hoc inspection of object images.
package disasm

import (
	"bytes"
	"fmt"

	"github.com/lc3kit/lc3/vm"
)

var trapNames = map[vm.Word]string{
	vm.TrapGETC:  "GETC",
	vm.TrapOUT:   "OUT",
	vm.TrapPUTS:  "PUTS",
	vm.TrapIN:    "IN",
	vm.TrapPUTSP: "PUTSP",
	vm.TrapHALT:  "HALT",
}

func signExtend(v uint16, bits uint) int32 {
	v &= 1<<bits - 1
	if v&(1<<(bits-1)) != 0 {
		return int32(v) - int32(1<<bits)
	}
	return int32(v)
}

// Decode renders word as a single line of LC-3 assembly, using the
// assembler package's mnemonics. PC-relative operands are printed as
// signed offsets ("#n") from the incremented PC, whereas the assembler
// reads a numeric target as an absolute address. RTI and RES disassemble
// as "???"; a TRAP with a vector other than the six named ones prints as
// "TRAP xNN".
func Decode(word uint16) string {
	var b bytes.Buffer
	op := vm.Word(word >> 12)
	switch op {
	case vm.OpADD, vm.OpAND:
		mnemonic := "ADD"
		if op == vm.OpAND {
			mnemonic = "AND"
		}
		dr, sr1 := (word>>9)&0x7, (word>>6)&0x7
		if word&0x20 != 0 {
			fmt.Fprintf(&b, "%s R%d, R%d, #%d", mnemonic, dr, sr1, signExtend(word&0x1F, 5))
		} else {
			fmt.Fprintf(&b, "%s R%d, R%d, R%d", mnemonic, dr, sr1, word&0x7)
		}
	case vm.OpNOT:
		fmt.Fprintf(&b, "NOT R%d, R%d", (word>>9)&0x7, (word>>6)&0x7)
	case vm.OpBR:
		n, z, p := word&0x0800 != 0, word&0x0400 != 0, word&0x0200 != 0
		mnemonic := "BR"
		switch {
		case n && z && p, !n && !z && !p:
			mnemonic = "BRnzp"
		case n && z:
			mnemonic = "BRnz"
		case n && p:
			mnemonic = "BRnp"
		case z && p:
			mnemonic = "BRzp"
		case n:
			mnemonic = "BRn"
		case z:
			mnemonic = "BRz"
		case p:
			mnemonic = "BRp"
		}
		fmt.Fprintf(&b, "%s #%d", mnemonic, signExtend(word&0x1FF, 9))
	case vm.OpJMP:
		baseR := (word >> 6) & 0x7
		if baseR == 7 {
			b.WriteString("RET")
		} else {
			fmt.Fprintf(&b, "JMP R%d", baseR)
		}
	case vm.OpJSR:
		if word&0x0800 != 0 {
			fmt.Fprintf(&b, "JSR #%d", signExtend(word&0x7FF, 11))
		} else {
			fmt.Fprintf(&b, "JSRR R%d", (word>>6)&0x7)
		}
	case vm.OpLD:
		fmt.Fprintf(&b, "LD R%d, #%d", (word>>9)&0x7, signExtend(word&0x1FF, 9))
	case vm.OpLDI:
		fmt.Fprintf(&b, "LDI R%d, #%d", (word>>9)&0x7, signExtend(word&0x1FF, 9))
	case vm.OpLEA:
		fmt.Fprintf(&b, "LEA R%d, #%d", (word>>9)&0x7, signExtend(word&0x1FF, 9))
	case vm.OpST:
		fmt.Fprintf(&b, "ST R%d, #%d", (word>>9)&0x7, signExtend(word&0x1FF, 9))
	case vm.OpSTI:
		fmt.Fprintf(&b, "STI R%d, #%d", (word>>9)&0x7, signExtend(word&0x1FF, 9))
	case vm.OpLDR:
		fmt.Fprintf(&b, "LDR R%d, R%d, #%d", (word>>9)&0x7, (word>>6)&0x7, signExtend(word&0x3F, 6))
	case vm.OpSTR:
		fmt.Fprintf(&b, "STR R%d, R%d, #%d", (word>>9)&0x7, (word>>6)&0x7, signExtend(word&0x3F, 6))
	case vm.OpTRAP:
		vect := vm.Word(word & 0xFF)
		if name, ok := trapNames[vect]; ok {
			b.WriteString(name)
		} else {
			fmt.Fprintf(&b, "TRAP x%02X", vect)
		}
	case vm.OpRTI, vm.OpRES:
		b.WriteString("???")
	default:
		b.WriteString("???")
	}
	return b.String()
}
