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

import "testing"

func TestClassifyOperand(t *testing.T) {
	cases := []struct {
		tok  string
		kind OperandKind
	}{
		{"R0", OperandReg},
		{"r7", OperandReg},
		{"#10", OperandConst},
		{"#-3", OperandConst},
		{"x3000", OperandConst},
		{"xA", OperandConst},
		{"b101", OperandConst},
		{"FOO", OperandLabel},
		{"buffer", OperandLabel}, // starts with 'b' but not valid binary digits
	}
	for _, c := range cases {
		op, err := classifyOperand(c.tok, 1, false)
		if err != nil {
			t.Errorf("classifyOperand(%q): %v", c.tok, err)
			continue
		}
		if op.Kind != c.kind {
			t.Errorf("classifyOperand(%q).Kind = %v, want %v", c.tok, op.Kind, c.kind)
		}
	}
}

func TestClassifyOperandValues(t *testing.T) {
	op, err := classifyOperand("#-3", 1, false)
	if err != nil || op.Const != -3 {
		t.Fatalf("got %+v, %v, want Const=-3", op, err)
	}
	op, err = classifyOperand("x3000", 1, false)
	if err != nil || op.Const != 0x3000 {
		t.Fatalf("got %+v, %v, want Const=0x3000", op, err)
	}
	op, err = classifyOperand("b101", 1, false)
	if err != nil || op.Const != 5 {
		t.Fatalf("got %+v, %v, want Const=5", op, err)
	}
}

func TestLexLineStripsCommentsAndTabs(t *testing.T) {
	line, err := lexLine("\tADD\tR0, R1, R2\t; add them up", 1)
	if err != nil {
		t.Fatal(err)
	}
	if line.Mnemonic != "ADD" || len(line.Operands) != 3 {
		t.Fatalf("got %+v", line)
	}
}

func TestLexLineBlank(t *testing.T) {
	for _, s := range []string{"", "   ", "; just a comment"} {
		line, err := lexLine(s, 1)
		if err != nil || line != nil {
			t.Fatalf("lexLine(%q) = %+v, %v, want nil, nil", s, line, err)
		}
	}
}

func TestLexLineLabelWithInstruction(t *testing.T) {
	line, err := lexLine("LOOP ADD R0, R0, #1", 1)
	if err != nil {
		t.Fatal(err)
	}
	if line.Label != "LOOP" || line.Mnemonic != "ADD" {
		t.Fatalf("got %+v", line)
	}
}

func TestLexLineUnknownMnemonic(t *testing.T) {
	if _, err := lexLine("FROBNICATE R0", 1); err == nil {
		t.Fatal("expected an error for an unknown mnemonic")
	}
}

func TestLexLineUnknownDirective(t *testing.T) {
	if _, err := lexLine(".FROB 3", 1); err == nil {
		t.Fatal("expected an error for an unknown directive")
	}
}

func TestDecodeQuotedStringEscapes(t *testing.T) {
	s, err := decodeQuotedString(`"a\nb\tc\ed"`, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := "a\nb\tc\x1bd"
	if s != want {
		t.Fatalf("got %q, want %q", s, want)
	}
}

func TestFitField(t *testing.T) {
	if _, err := fitField(15, 5, 1, "imm5"); err != nil {
		t.Errorf("fitField(15,5): %v", err)
	}
	if _, err := fitField(-16, 5, 1, "imm5"); err != nil {
		t.Errorf("fitField(-16,5): %v", err)
	}
	if _, err := fitField(16, 5, 1, "imm5"); err == nil {
		t.Error("fitField(16,5): expected overflow error")
	}
	if _, err := fitField(-17, 5, 1, "imm5"); err == nil {
		t.Error("fitField(-17,5): expected overflow error")
	}
}
