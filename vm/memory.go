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

// MemSize is the number of addressable 16-bit cells: the full 0x0000..0xFFFF
// range.
const MemSize = 1 << 16

// Memory-mapped keyboard device registers.
const (
	KBSR Word = 0xFE00
	KBDR Word = 0xFE02
)

// Memory abstracts the VM's 65536-cell address space. Reading KBSR is
// observational: a conforming implementation may poll an input device as a
// side effect of the read, which is why this is an interface with a mutable
// Read method rather than a plain array index.
type Memory interface {
	Read(addr Word) Word
	Write(addr Word, v Word)
}

// arrayMemory is the default in-memory Memory backend. It special-cases
// reads of KBSR to poll an attached keyboard collaborator; every other
// address is a plain array cell.
type arrayMemory struct {
	cells [MemSize]Word
	kbd   Input
}

func newArrayMemory() *arrayMemory {
	return &arrayMemory{}
}

func (m *arrayMemory) Read(addr Word) Word {
	if addr == KBSR {
		if m.kbd != nil && m.kbd.KeyReady() {
			b, err := m.kbd.GetChar()
			if err == nil {
				m.cells[KBSR] = 0x8000
				m.cells[KBDR] = Word(b)
				return m.cells[KBSR]
			}
		}
		m.cells[KBSR] = 0
		return m.cells[KBSR]
	}
	return m.cells[addr]
}

func (m *arrayMemory) Write(addr Word, v Word) {
	m.cells[addr] = v
}
