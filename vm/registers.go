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

// Register identifies one of the ten register-file slots. The ordering
// matches the trace snapshot layout required by the trace buffer:
// [R0,R1,R2,R3,R4,R5,R6,R7,PC,COND].
type Register int

const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	RPC
	RCOND
	registerCount
)

// Reg returns the current value of register r.
func (i *Instance) Reg(r Register) Word {
	return i.reg[r]
}

// setReg is the sole write path to the register file: every assignment
// takes the stored value modulo 2^16, which the Word type already enforces.
func (i *Instance) setReg(r Register, v Word) {
	i.reg[r] = v
}

// updateFlags sets COND from the sign/zero of the value in register r, as
// required after any instruction that designates a destination register.
func (i *Instance) updateFlags(r Register) {
	switch v := i.reg[r]; {
	case v == 0:
		i.setReg(RCOND, CondZRO)
	case v&0x8000 != 0:
		i.setReg(RCOND, CondNEG)
	default:
		i.setReg(RCOND, CondPOS)
	}
}
