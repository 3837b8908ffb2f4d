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

import "github.com/lc3kit/lc3/vm"

// OperandKind classifies a single operand or directive argument token.
type OperandKind int

const (
	OperandReg OperandKind = iota
	OperandConst
	OperandLabel
	OperandStr
)

// Operand is one lexed operand: a register, a numeric constant, a label
// reference, or (for .STRINGZ) a decoded string literal.
type Operand struct {
	Kind  OperandKind
	Reg   int
	Const int32
	Label string
	Str   string
}

// Line is the lexer's output for one non-empty source line: an optional
// label, a driving mnemonic (opcode or directive), and its operands.
type Line struct {
	LineNo      int
	Label       string
	Mnemonic    string // canonicalized upper case; empty for a label-only line
	IsDirective bool
	Operands    []Operand

	// LC is the location counter in effect immediately after this line,
	// the value PC-relative fields are computed against in pass two.
	LC uint16
}

var directives = map[string]bool{
	".ORIG":    true,
	".END":     true,
	".FILL":    true,
	".BLKW":    true,
	".STRINGZ": true,
}

// brFlags maps each BR mnemonic spelling to its n/z/p condition bits. Bare
// BR is equivalent to BRnzp.
var brFlags = map[string][3]bool{
	"BR":    {true, true, true},
	"BRN":   {true, false, false},
	"BRZ":   {false, true, false},
	"BRP":   {false, false, true},
	"BRNZ":  {true, true, false},
	"BRNP":  {true, false, true},
	"BRZP":  {false, true, true},
	"BRNZP": {true, true, true},
}

// trapVectors maps the six trap mnemonics (sugar for TRAP n) to their
// vectors, shared with the vm package so the two never drift apart.
var trapVectors = map[string]vm.Word{
	"GETC":  vm.TrapGETC,
	"OUT":   vm.TrapOUT,
	"PUTS":  vm.TrapPUTS,
	"IN":    vm.TrapIN,
	"PUTSP": vm.TrapPUTSP,
	"HALT":  vm.TrapHALT,
}

var plainOpcodes = map[string]bool{
	"ADD": true, "AND": true, "NOT": true,
	"JMP": true, "RET": true, "JSR": true, "JSRR": true,
	"LD": true, "LDI": true, "LDR": true, "LEA": true,
	"ST": true, "STI": true, "STR": true,
	"TRAP": true, "RTI": true,
}

// isMnemonic reports whether s (already upper-cased) names an opcode: a
// plain opcode, a BR variant, or one of the trap-mnemonic aliases.
func isMnemonic(s string) bool {
	if plainOpcodes[s] {
		return true
	}
	if _, ok := brFlags[s]; ok {
		return true
	}
	if _, ok := trapVectors[s]; ok {
		return true
	}
	return false
}

func isDirective(s string) bool {
	return directives[s]
}
