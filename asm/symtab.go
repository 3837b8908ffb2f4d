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
	"fmt"
	"io"
)

// SymbolTable maps label names to their assembled address, preserving
// insertion (first-definition) order for Dump.
type SymbolTable struct {
	order []string
	addr  map[string]uint16
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{addr: make(map[string]uint16)}
}

// define records or updates a label's address. Redefinition overwrites the
// address but does not disturb the label's original position in Names.
func (t *SymbolTable) define(name string, addr uint16) {
	if _, ok := t.addr[name]; !ok {
		t.order = append(t.order, name)
	}
	t.addr[name] = addr
}

// Lookup returns the address assigned to name and whether it was defined.
func (t *SymbolTable) Lookup(name string) (uint16, bool) {
	a, ok := t.addr[name]
	return a, ok
}

// Names returns the defined labels in insertion order.
func (t *SymbolTable) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Dump writes the fixed symbol-table listing format: a four-line header
// followed by one line per symbol in insertion order, each "//\t", the
// name left-justified to 16 columns, two spaces, and the address in
// uppercase hex with no "0x" prefix or leading zeros.
func (t *SymbolTable) Dump(w io.Writer) error {
	header := "// Symbol table\n" +
		"// Scope level 0:\n" +
		"//\tSymbol Name       Page Address\n" +
		"//\t----------------  ------------\n"
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	for _, name := range t.order {
		line := fmt.Sprintf("//\t%-16s  %X\n", name, t.addr[name])
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
