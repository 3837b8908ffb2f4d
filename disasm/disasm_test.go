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

package disasm_test

import (
	"testing"

	"github.com/lc3kit/lc3/disasm"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		word uint16
		want string
	}{
		{0x5260, "AND R1, R1, #0"},
		{0xE005, "LEA R0, #5"},
		{0xF022, "PUTS"},
		{0x1261, "ADD R1, R1, #1"},
		{0x167B, "ADD R3, R1, #-5"},
		{0x0BFB, "BRnp #-5"},
		{0xF025, "HALT"},
		{0x9240, "NOT R1, R1"},
		{0xC0C0, "JMP R3"},
		{0xC1C0, "RET"},
		{0x8000, "???"},
		{0xD000, "???"},
	}
	for _, c := range cases {
		if got := disasm.Decode(c.word); got != c.want {
			t.Errorf("Decode(%#04x) = %q, want %q", c.word, got, c.want)
		}
	}
}
