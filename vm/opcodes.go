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

// Word is the raw 16-bit type stored in a memory location or register. All
// arithmetic on Word wraps modulo 2^16 by virtue of Go's unsigned integer
// semantics.
type Word uint16

// LC-3 opcodes, encoded in the top 4 bits of an instruction word.
const (
	OpBR   Word = 0x0
	OpADD  Word = 0x1
	OpLD   Word = 0x2
	OpST   Word = 0x3
	OpJSR  Word = 0x4
	OpAND  Word = 0x5
	OpLDR  Word = 0x6
	OpSTR  Word = 0x7
	OpRTI  Word = 0x8
	OpNOT  Word = 0x9
	OpLDI  Word = 0xA
	OpSTI  Word = 0xB
	OpJMP  Word = 0xC
	OpRES  Word = 0xD
	OpLEA  Word = 0xE
	OpTRAP Word = 0xF
)

// Trap vectors for the six defined LC-3 system calls.
const (
	TrapGETC  Word = 0x20
	TrapOUT   Word = 0x21
	TrapPUTS  Word = 0x22
	TrapIN    Word = 0x23
	TrapPUTSP Word = 0x24
	TrapHALT  Word = 0x25
)

// Condition flags. COND always carries exactly one of these.
const (
	CondPOS Word = 1 << 0
	CondZRO Word = 1 << 1
	CondNEG Word = 1 << 2
)

// signExtend sign-extends the low `bits` bits of v to a full 16-bit Word.
func signExtend(v Word, bits uint) Word {
	v &= (1 << bits) - 1
	if v&(1<<(bits-1)) != 0 {
		return v | (^Word(0) << bits)
	}
	return v
}
