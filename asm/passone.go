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

import "strings"

// program is the result of pass one: the complete symbol table and the
// ordered, LC-annotated lines pass two will encode.
type program struct {
	lines     []*Line
	origin    uint16
	hasOrigin bool
	symtab    *SymbolTable
}

// passOne lexes every line, builds the complete symbol table, and records
// the location counter in effect after each line. It stops at .END, per
// the dialect's rule that no further lines are processed.
func passOne(src string) (*program, error) {
	prog := &program{symtab: newSymbolTable()}
	var lc uint32

	lineNo := 0
	for _, raw := range strings.Split(src, "\n") {
		lineNo++
		line, err := lexLine(raw, lineNo)
		if err != nil {
			return nil, err
		}
		if line == nil {
			continue
		}
		if line.Label != "" {
			prog.symtab.define(line.Label, uint16(lc))
		}
		if line.Mnemonic == "" {
			continue
		}

		switch line.Mnemonic {
		case ".ORIG":
			v, err := requireConst(line.Operands[0], lineNo, ".ORIG")
			if err != nil {
				return nil, err
			}
			lc = uint32(uint16(v))
			prog.origin = uint16(v)
			prog.hasOrigin = true
			continue
		case ".END":
			line.LC = uint16(lc)
			prog.lines = append(prog.lines, line)
			return prog, nil
		case ".FILL":
			lc++
		case ".BLKW":
			n, err := requireConst(line.Operands[0], lineNo, ".BLKW")
			if err != nil {
				return nil, err
			}
			if n < 0 {
				return nil, asmErrorf(lineNo, ".BLKW: negative count %d", n)
			}
			lc += uint32(n)
		case ".STRINGZ":
			lc += uint32(len(line.Operands[0].Str)) + 1
		default:
			lc++
		}
		line.LC = uint16(lc)
		prog.lines = append(prog.lines, line)
	}
	return prog, nil
}

func requireConst(op Operand, lineNo int, context string) (int32, error) {
	if op.Kind != OperandConst {
		return 0, asmErrorf(lineNo, "%s: expected a constant argument", context)
	}
	return op.Const, nil
}
