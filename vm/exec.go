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

// execute decodes and runs a single fetched instruction word. PC has
// already been incremented past it by the caller (Step).
func (i *Instance) execute(instr Word) error {
	op := instr >> 12
	switch op {
	case OpADD:
		return i.execAddAnd(instr, false)
	case OpAND:
		return i.execAddAnd(instr, true)
	case OpNOT:
		dr := Register((instr >> 9) & 0x7)
		sr := Register((instr >> 6) & 0x7)
		i.setReg(dr, ^i.reg[sr])
		i.updateFlags(dr)
	case OpBR:
		i.execBR(instr)
	case OpJMP:
		baseR := Register((instr >> 6) & 0x7)
		i.setReg(RPC, i.reg[baseR])
	case OpJSR:
		i.execJSR(instr)
	case OpLD:
		dr := Register((instr >> 9) & 0x7)
		addr := i.reg[RPC] + signExtend(instr&0x1FF, 9)
		i.setReg(dr, i.mem.Read(addr))
		i.updateFlags(dr)
	case OpLDI:
		dr := Register((instr >> 9) & 0x7)
		addr := i.reg[RPC] + signExtend(instr&0x1FF, 9)
		i.setReg(dr, i.mem.Read(i.mem.Read(addr)))
		i.updateFlags(dr)
	case OpLDR:
		dr := Register((instr >> 9) & 0x7)
		baseR := Register((instr >> 6) & 0x7)
		addr := i.reg[baseR] + signExtend(instr&0x3F, 6)
		i.setReg(dr, i.mem.Read(addr))
		i.updateFlags(dr)
	case OpLEA:
		dr := Register((instr >> 9) & 0x7)
		addr := i.reg[RPC] + signExtend(instr&0x1FF, 9)
		i.setReg(dr, addr)
		i.updateFlags(dr)
	case OpST:
		sr := Register((instr >> 9) & 0x7)
		addr := i.reg[RPC] + signExtend(instr&0x1FF, 9)
		i.mem.Write(addr, i.reg[sr])
	case OpSTI:
		sr := Register((instr >> 9) & 0x7)
		addr := i.reg[RPC] + signExtend(instr&0x1FF, 9)
		i.mem.Write(i.mem.Read(addr), i.reg[sr])
	case OpSTR:
		sr := Register((instr >> 9) & 0x7)
		baseR := Register((instr >> 6) & 0x7)
		addr := i.reg[baseR] + signExtend(instr&0x3F, 6)
		i.mem.Write(addr, i.reg[sr])
	case OpTRAP:
		i.setReg(R7, i.reg[RPC])
		return i.trap(instr & 0xFF)
	case OpRTI, OpRES:
		return ErrBadOpcode
	default:
		return ErrBadOpcode
	}
	return nil
}

// execAddAnd implements ADD (+) when isAnd is false and AND (&) when
// isAnd is true; the two opcodes share every bit of encoding and execution
// apart from the operator applied to the two operands.
func (i *Instance) execAddAnd(instr Word, isAnd bool) error {
	dr := Register((instr >> 9) & 0x7)
	sr1 := Register((instr >> 6) & 0x7)
	var rhs Word
	if instr&0x20 != 0 {
		rhs = signExtend(instr&0x1F, 5)
	} else {
		rhs = i.reg[Register(instr&0x7)]
	}
	if isAnd {
		i.setReg(dr, i.reg[sr1]&rhs)
	} else {
		i.setReg(dr, i.reg[sr1]+rhs)
	}
	i.updateFlags(dr)
	return nil
}

func (i *Instance) execBR(instr Word) {
	n := instr&0x0800 != 0
	z := instr&0x0400 != 0
	p := instr&0x0200 != 0
	cond := i.reg[RCOND]
	take := (n && cond == CondNEG) || (z && cond == CondZRO) || (p && cond == CondPOS)
	if take {
		i.setReg(RPC, i.reg[RPC]+signExtend(instr&0x1FF, 9))
	}
}

func (i *Instance) execJSR(instr Word) {
	ret := i.reg[RPC]
	if instr&0x0800 != 0 {
		i.setReg(RPC, ret+signExtend(instr&0x7FF, 11))
	} else {
		baseR := Register((instr >> 6) & 0x7)
		i.setReg(RPC, i.reg[baseR])
	}
	i.setReg(R7, ret)
}
