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

// Reset clears the register file, sets PC = 0x3000 and COND = POS, raises
// the running flag, clears the trace buffer, and emits "-- RESET --" on the
// diagnostic sink. Memory is left untouched.
func (i *Instance) Reset() {
	for r := Register(0); r < registerCount; r++ {
		i.reg[r] = 0
	}
	i.setReg(RPC, 0x3000)
	i.setReg(RCOND, CondPOS)
	i.running = true
	i.trace = i.trace[:0]
	i.diagnostic.WriteString("-- RESET --\n")
}

// Step executes a single instruction. If the VM is not running, it emits
// "-- HALTED --" on the diagnostic sink and returns nil without touching
// any state.
func (i *Instance) Step() error {
	if !i.running {
		return i.diagnostic.WriteString("-- HALTED --\n")
	}
	if i.tracing {
		var snap [registerCount]Word
		copy(snap[:], i.reg[:])
		i.trace = append(i.trace, snap)
	}
	pc := i.reg[RPC]
	instr := i.mem.Read(pc)
	i.setReg(RPC, pc+1)
	return i.execute(instr)
}

// Continue repeatedly calls Step until the running flag clears or an
// instruction fails. If the VM is already halted, it emits "-- HALTED --"
// once and returns, exactly like Step.
func (i *Instance) Continue() error {
	if !i.running {
		return i.diagnostic.WriteString("-- HALTED --\n")
	}
	for i.running {
		if err := i.Step(); err != nil {
			return err
		}
	}
	return nil
}
