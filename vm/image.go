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

import "encoding/binary"

// LoadBinary parses a big-endian LC-3 object image (two bytes of origin
// followed by contiguous big-endian words) and writes the payload to memory
// starting at the origin.
//
// It fails with ErrOddImageSize if len(data) is odd (including a data slice
// shorter than the two-byte origin header) and ErrImageTooLarge if the
// payload is longer than 0xFFFF-origin words, so the highest address a load
// can fill is 0xFFFE. Both checks run before the first write, so a failed
// load leaves memory untouched.
func (i *Instance) LoadBinary(data []byte) error {
	if len(data) < 2 || len(data)%2 != 0 {
		return ErrOddImageSize
	}
	origin := Word(binary.BigEndian.Uint16(data[:2]))
	payload := data[2:]
	nWords := len(payload) / 2
	if nWords > 0xFFFF-int(origin) {
		return ErrImageTooLarge
	}
	for n := 0; n < nWords; n++ {
		v := binary.BigEndian.Uint16(payload[n*2 : n*2+2])
		i.mem.Write(origin+Word(n), Word(v))
	}
	return nil
}

// Mem returns the current value stored at addr. It is primarily useful for
// test harnesses and debugger front-ends; ordinary programs interact with
// memory only through the fetch-decode-execute loop.
func (i *Instance) Mem(addr Word) Word {
	return i.mem.Read(addr)
}

// SetMem writes v to addr, bypassing instruction execution. Useful for
// poking memory from tests and debugger front-ends.
func (i *Instance) SetMem(addr, v Word) {
	i.mem.Write(addr, v)
}
