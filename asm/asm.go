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

// Package asm implements a two-pass assembler for the LC-3 assembly
// dialect: a line-oriented lexer, a location-counting and symbol-building
// first pass, and an encoding second pass that emits a big-endian object
// image.
//
// Assemble is pure: given the same source text it always produces the
// same symbol table and object bytes, with no I/O and no global state.
// Assembly is fail-fast — the first error detected anywhere in the source
// aborts the call and no partial object is returned.
package asm

// Assemble translates LC-3 assembly source into a symbol table and a
// big-endian object image: two bytes of origin followed by the assembled
// words. It fails on the first detected ErrAsm: an overlong
// line, an unknown mnemonic or directive, a malformed directive argument,
// an operand-field overflow, or a reference to an undefined label.
func Assemble(source string) (*SymbolTable, []byte, error) {
	prog, err := passOne(source)
	if err != nil {
		return nil, nil, err
	}
	obj, err := passTwo(prog)
	if err != nil {
		return nil, nil, err
	}
	return prog.symtab, obj, nil
}
