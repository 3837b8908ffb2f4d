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

// trap dispatches one of the six defined trap vectors. R7 has already been
// set to the return address by the caller (execute).
func (i *Instance) trap(vect Word) error {
	switch vect {
	case TrapGETC:
		return i.trapGETC()
	case TrapOUT:
		return i.trapOUT()
	case TrapPUTS:
		return i.trapPUTS()
	case TrapIN:
		return i.trapIN()
	case TrapPUTSP:
		return i.trapPUTSP()
	case TrapHALT:
		return i.trapHALT()
	default:
		return ErrBadOpcode
	}
}

// trapGETC reads one character from the input collaborator into R0,
// without echoing it. If no input is attached, or the input is exhausted,
// R0 is left at zero.
func (i *Instance) trapGETC() error {
	if i.input == nil {
		i.setReg(R0, 0)
		return nil
	}
	b, err := i.input.GetChar()
	if err != nil {
		i.setReg(R0, 0)
		return nil
	}
	i.setReg(R0, Word(b))
	return nil
}

// trapOUT writes the low byte of R0 to the output sink.
func (i *Instance) trapOUT() error {
	return i.output.WriteString(string(rune(i.reg[R0] & 0xFF)))
}

// trapPUTS writes a NUL-terminated string of one character per memory word,
// starting at the address in R0.
func (i *Instance) trapPUTS() error {
	addr := i.reg[R0]
	var sb []rune
	for {
		w := i.mem.Read(addr)
		if w == 0 {
			break
		}
		sb = append(sb, rune(w&0xFF))
		addr++
	}
	return i.output.WriteString(string(sb))
}

// trapIN prompts for and reads a single character from the input
// collaborator, echoes it to the output sink, and stores it in R0. Unlike
// the documented reference behavior, the character is read from the VM's
// own input collaborator rather than from the process's real stdin.
func (i *Instance) trapIN() error {
	if err := i.output.WriteString("Enter a character: "); err != nil {
		return err
	}
	if i.input == nil {
		i.setReg(R0, 0)
		return nil
	}
	b, err := i.input.GetChar()
	if err != nil {
		i.setReg(R0, 0)
		return nil
	}
	i.setReg(R0, Word(b))
	return i.output.WriteString(string(rune(b)))
}

// trapPUTSP writes a NUL-terminated string packed two characters per memory
// word (low byte first, high byte second), stopping at the first
// all-zero word. A word whose low byte is non-zero but whose high byte is
// zero contributes only its low byte.
func (i *Instance) trapPUTSP() error {
	addr := i.reg[R0]
	var sb []rune
	for {
		w := i.mem.Read(addr)
		if w == 0 {
			break
		}
		lo := w & 0xFF
		hi := (w >> 8) & 0xFF
		sb = append(sb, rune(lo))
		if hi != 0 {
			sb = append(sb, rune(hi))
		}
		addr++
	}
	return i.output.WriteString(string(sb))
}

// trapHALT emits the "-- HALT --" diagnostic line and clears the running
// flag.
func (i *Instance) trapHALT() error {
	i.running = false
	return i.diagnostic.WriteString("-- HALT --\n")
}
