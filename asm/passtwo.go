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

package asm

import (
	"encoding/binary"

	"github.com/lc3kit/lc3/vm"
)

// passTwo walks the lines recorded by passOne and emits the big-endian
// object image: a two-byte origin followed by one big-endian word per
// instruction or directive datum.
func passTwo(prog *program) ([]byte, error) {
	if !prog.hasOrigin {
		return nil, asmErrorf(0, "missing .ORIG directive")
	}
	var words []uint16
	for _, line := range prog.lines {
		if line.Mnemonic == ".END" {
			break
		}
		ws, err := encodeLine(line, prog.symtab)
		if err != nil {
			return nil, err
		}
		words = append(words, ws...)
	}
	buf := make([]byte, 2+2*len(words))
	binary.BigEndian.PutUint16(buf[0:2], prog.origin)
	for n, w := range words {
		binary.BigEndian.PutUint16(buf[2+2*n:4+2*n], w)
	}
	return buf, nil
}

func encodeLine(line *Line, symtab *SymbolTable) ([]uint16, error) {
	if line.IsDirective {
		return encodeDirective(line, symtab)
	}
	w, err := encodeInstruction(line, symtab)
	if err != nil {
		return nil, err
	}
	return []uint16{w}, nil
}

func encodeDirective(line *Line, symtab *SymbolTable) ([]uint16, error) {
	switch line.Mnemonic {
	case ".FILL":
		// The argument may be a constant or a label, in which case the word
		// is the label's address.
		v, err := resolveAddr(line.Operands[0], symtab, line.LineNo)
		if err != nil {
			return nil, err
		}
		return []uint16{v}, nil
	case ".BLKW":
		n, err := requireConst(line.Operands[0], line.LineNo, ".BLKW")
		if err != nil {
			return nil, err
		}
		return make([]uint16, n), nil
	case ".STRINGZ":
		s := line.Operands[0].Str
		words := make([]uint16, 0, len(s)+1)
		for i := 0; i < len(s); i++ {
			words = append(words, uint16(s[i]))
		}
		words = append(words, 0)
		return words, nil
	default:
		return nil, asmErrorf(line.LineNo, "unsupported directive %q", line.Mnemonic)
	}
}

func encodeInstruction(line *Line, symtab *SymbolTable) (uint16, error) {
	ops := line.Operands
	ln := line.LineNo

	switch line.Mnemonic {
	case "ADD", "AND":
		if len(ops) != 3 || ops[0].Kind != OperandReg || ops[1].Kind != OperandReg {
			return 0, asmErrorf(ln, "%s: expected DR, SR1, SR2|imm5", line.Mnemonic)
		}
		op := uint16(vm.OpADD)
		if line.Mnemonic == "AND" {
			op = uint16(vm.OpAND)
		}
		base := op<<12 | uint16(ops[0].Reg)<<9 | uint16(ops[1].Reg)<<6
		if ops[2].Kind == OperandReg {
			return base | uint16(ops[2].Reg), nil
		}
		imm, err := fitField(ops[2].Const, 5, ln, "imm5")
		if err != nil {
			return 0, err
		}
		return base | 1<<5 | imm, nil

	case "NOT":
		if len(ops) != 2 || ops[0].Kind != OperandReg || ops[1].Kind != OperandReg {
			return 0, asmErrorf(ln, "NOT: expected DR, SR")
		}
		return uint16(vm.OpNOT)<<12 | uint16(ops[0].Reg)<<9 | uint16(ops[1].Reg)<<6 | 0x3F, nil

	case "RTI":
		return uint16(vm.OpRTI) << 12, nil

	case "JMP":
		if len(ops) != 1 || ops[0].Kind != OperandReg {
			return 0, asmErrorf(ln, "JMP: expected a base register")
		}
		return uint16(vm.OpJMP)<<12 | uint16(ops[0].Reg)<<6, nil

	case "RET":
		if len(ops) != 0 {
			return 0, asmErrorf(ln, "RET: takes no operands")
		}
		return uint16(vm.OpJMP)<<12 | 7<<6, nil

	case "JSR":
		if len(ops) != 1 {
			return 0, asmErrorf(ln, "JSR: expected a target")
		}
		target, err := resolveAddr(ops[0], symtab, ln)
		if err != nil {
			return 0, err
		}
		off := pcOffset(target, line.LC, 11)
		return uint16(vm.OpJSR)<<12 | 1<<11 | off, nil

	case "JSRR":
		if len(ops) != 1 || ops[0].Kind != OperandReg {
			return 0, asmErrorf(ln, "JSRR: expected a base register")
		}
		return uint16(vm.OpJSR)<<12 | uint16(ops[0].Reg)<<6, nil

	case "LD", "LDI", "LEA":
		if len(ops) != 2 || ops[0].Kind != OperandReg {
			return 0, asmErrorf(ln, "%s: expected DR, label|const", line.Mnemonic)
		}
		target, err := resolveAddr(ops[1], symtab, ln)
		if err != nil {
			return 0, err
		}
		off := pcOffset(target, line.LC, 9)
		return uint16(opcodeFor(line.Mnemonic))<<12 | uint16(ops[0].Reg)<<9 | off, nil

	case "ST", "STI":
		if len(ops) != 2 || ops[0].Kind != OperandReg {
			return 0, asmErrorf(ln, "%s: expected SR, label|const", line.Mnemonic)
		}
		target, err := resolveAddr(ops[1], symtab, ln)
		if err != nil {
			return 0, err
		}
		off := pcOffset(target, line.LC, 9)
		return uint16(opcodeFor(line.Mnemonic))<<12 | uint16(ops[0].Reg)<<9 | off, nil

	case "LDR", "STR":
		if len(ops) != 3 || ops[0].Kind != OperandReg || ops[1].Kind != OperandReg || ops[2].Kind != OperandConst {
			return 0, asmErrorf(ln, "%s: expected DR|SR, BaseR, offset6", line.Mnemonic)
		}
		off, err := fitField(ops[2].Const, 6, ln, "offset6")
		if err != nil {
			return 0, err
		}
		return uint16(opcodeFor(line.Mnemonic))<<12 | uint16(ops[0].Reg)<<9 | uint16(ops[1].Reg)<<6 | off, nil

	case "TRAP":
		if len(ops) != 1 || ops[0].Kind != OperandConst {
			return 0, asmErrorf(ln, "TRAP: expected a trap vector")
		}
		if ops[0].Const < 0 || ops[0].Const > 0xFF {
			return 0, asmErrorf(ln, "TRAP: vector %d out of range", ops[0].Const)
		}
		return uint16(vm.OpTRAP)<<12 | uint16(ops[0].Const), nil

	default:
		if vect, ok := trapVectors[line.Mnemonic]; ok {
			if len(ops) != 0 {
				return 0, asmErrorf(ln, "%s: takes no operands", line.Mnemonic)
			}
			return uint16(vm.OpTRAP)<<12 | uint16(vect), nil
		}
		if flags, ok := brFlags[line.Mnemonic]; ok {
			if len(ops) != 1 {
				return 0, asmErrorf(ln, "%s: expected a target", line.Mnemonic)
			}
			target, err := resolveAddr(ops[0], symtab, ln)
			if err != nil {
				return 0, err
			}
			off := pcOffset(target, line.LC, 9)
			var nzp uint16
			if flags[0] {
				nzp |= 1 << 11
			}
			if flags[1] {
				nzp |= 1 << 10
			}
			if flags[2] {
				nzp |= 1 << 9
			}
			return uint16(vm.OpBR)<<12 | nzp | off, nil
		}
		return 0, asmErrorf(ln, "unsupported mnemonic %q", line.Mnemonic)
	}
}

func opcodeFor(mnemonic string) vm.Word {
	switch mnemonic {
	case "LD":
		return vm.OpLD
	case "LDI":
		return vm.OpLDI
	case "LEA":
		return vm.OpLEA
	case "ST":
		return vm.OpST
	case "STI":
		return vm.OpSTI
	case "LDR":
		return vm.OpLDR
	case "STR":
		return vm.OpSTR
	}
	panic("asm: opcodeFor: unreachable mnemonic " + mnemonic)
}

// resolveAddr resolves an operand that names a target address: either a
// literal constant or a label looked up in the completed symbol table.
func resolveAddr(op Operand, symtab *SymbolTable, lineNo int) (uint16, error) {
	switch op.Kind {
	case OperandConst:
		return uint16(op.Const), nil
	case OperandLabel:
		addr, ok := symtab.Lookup(op.Label)
		if !ok {
			return 0, asmErrorf(lineNo, "undefined label %q", op.Label)
		}
		return addr, nil
	default:
		return 0, asmErrorf(lineNo, "expected a label or constant")
	}
}

// pcOffset computes (target - lc) masked to the given field width, the
// dialect's signed PC-relative encoding. Unlike fitField, it never range
// checks: a PC-relative field is a plain mask of the subtraction, not a
// guarded immediate.
func pcOffset(target, lc uint16, bits uint) uint16 {
	mask := uint16(1)<<bits - 1
	return uint16(int32(target)-int32(lc)) & mask
}

// fitField masks v to bits after checking it fits the field's two's
// complement range; imm5 and offset6 are rejected (not wrapped) on
// overflow, per the dialect's field-width-overflow error.
func fitField(v int32, bits uint, lineNo int, field string) (uint16, error) {
	lo := -(int32(1) << (bits - 1))
	hi := int32(1)<<(bits-1) - 1
	if v < lo || v > hi {
		return 0, asmErrorf(lineNo, "%s: value %d does not fit in %d bits", field, v, bits)
	}
	return uint16(v) & (uint16(1)<<bits - 1), nil
}
