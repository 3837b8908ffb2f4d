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
	"strconv"
	"strings"
)

const maxLineLength = 4096

// lexLine tokenizes one physical source line. It returns (nil, nil) for a
// blank or comment-only line.
func lexLine(raw string, lineNo int) (*Line, error) {
	if len(raw) > maxLineLength {
		return nil, asmErrorf(lineNo, "line exceeds %d characters", maxLineLength)
	}
	text := stripComment(raw)
	text = strings.ReplaceAll(text, "\t", " ")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	line := &Line{LineNo: lineNo}
	first, rest := splitFirstToken(text)
	upper := strings.ToUpper(first)
	// A leading token that is neither a mnemonic nor a directive is a label,
	// but a dot-leading token is always a directive (a bad one, below, if it
	// isn't recognized) since labels cannot start with '.'.
	if !isMnemonic(upper) && !isDirective(upper) && !strings.HasPrefix(first, ".") {
		line.Label = first
		first, rest = splitFirstToken(rest)
		upper = strings.ToUpper(first)
	}
	if first == "" {
		return line, nil
	}

	if strings.HasPrefix(first, ".") {
		line.IsDirective = true
		line.Mnemonic = upper
		if !isDirective(upper) {
			return nil, asmErrorf(lineNo, "unknown directive %q", first)
		}
		ops, err := lexDirectiveArg(upper, rest, lineNo)
		if err != nil {
			return nil, err
		}
		line.Operands = ops
		return line, nil
	}

	if !isMnemonic(upper) {
		return nil, asmErrorf(lineNo, "unknown mnemonic %q", first)
	}
	line.Mnemonic = upper
	ops, err := lexOperands(rest, lineNo)
	if err != nil {
		return nil, err
	}
	line.Operands = ops
	return line, nil
}

// stripComment discards everything from the first ';' onward.
func stripComment(s string) string {
	if idx := strings.IndexByte(s, ';'); idx >= 0 {
		return s[:idx]
	}
	return s
}

// splitFirstToken splits s at the first run of whitespace, returning the
// leading token and the (trimmed) remainder.
func splitFirstToken(s string) (string, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ""
	}
	idx := strings.IndexFunc(s, func(r rune) bool { return r == ' ' })
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx:])
}

// lexOperands splits a comma-separated operand list and classifies each
// token per the operand rules in the dialect: REG, decimal/hex/binary
// constant, or label reference.
func lexOperands(s string, lineNo int) ([]Operand, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ops := make([]Operand, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, asmErrorf(lineNo, "empty operand")
		}
		op, err := classifyOperand(p, lineNo, false)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// classifyOperand recognizes REG, #decimal, xHEX, bBINARY, or (falling
// through) a label reference. When allowBareDecimal is true (directive
// arguments only) a bare decimal integer is also accepted as a constant.
func classifyOperand(tok string, lineNo int, allowBareDecimal bool) (Operand, error) {
	if r, ok := parseRegister(tok); ok {
		return Operand{Kind: OperandReg, Reg: r}, nil
	}
	if strings.HasPrefix(tok, "#") {
		v, err := strconv.ParseInt(tok[1:], 10, 32)
		if err != nil {
			return Operand{}, asmErrorf(lineNo, "invalid decimal constant %q", tok)
		}
		return Operand{Kind: OperandConst, Const: int32(v)}, nil
	}
	if v, ok := parsePrefixedInt(tok, 'x', 16); ok {
		return Operand{Kind: OperandConst, Const: v}, nil
	}
	if v, ok := parsePrefixedInt(tok, 'b', 2); ok {
		return Operand{Kind: OperandConst, Const: v}, nil
	}
	if allowBareDecimal {
		if v, err := strconv.ParseInt(tok, 10, 32); err == nil {
			return Operand{Kind: OperandConst, Const: int32(v)}, nil
		}
	}
	return Operand{Kind: OperandLabel, Label: tok}, nil
}

func parseRegister(tok string) (int, bool) {
	if len(tok) != 2 {
		return 0, false
	}
	if tok[0] != 'R' && tok[0] != 'r' {
		return 0, false
	}
	if tok[1] < '0' || tok[1] > '7' {
		return 0, false
	}
	return int(tok[1] - '0'), true
}

// parsePrefixedInt parses tok as prefix followed by digits in the given
// base (e.g. 'x' + base 16, 'b' + base 2), allowing a leading '-'. It
// reports ok=false (rather than an error) so the caller can fall back to
// treating tok as a label, since labels may legitimately start with 'x' or
// 'b'.
func parsePrefixedInt(tok string, prefix byte, base int) (int32, bool) {
	if len(tok) < 2 {
		return 0, false
	}
	neg := false
	body := tok
	if body[0] == '-' {
		neg = true
		body = body[1:]
	}
	if len(body) < 2 || (body[0] != prefix && body[0] != prefix-('a'-'A')) {
		return 0, false
	}
	digits := body[1:]
	v, err := strconv.ParseInt(digits, base, 32)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return int32(v), true
}

// lexDirectiveArg tokenizes the argument of a directive. .END takes none;
// .STRINGZ takes a single quoted string with escapes decoded; the rest
// take a single operand token, with a bare decimal integer also accepted.
func lexDirectiveArg(mnemonic, text string, lineNo int) ([]Operand, error) {
	text = strings.TrimSpace(text)
	switch mnemonic {
	case ".END":
		return nil, nil
	case ".STRINGZ":
		s, err := decodeQuotedString(text, lineNo)
		if err != nil {
			return nil, err
		}
		return []Operand{{Kind: OperandStr, Str: s}}, nil
	default:
		if text == "" {
			return nil, asmErrorf(lineNo, "%s: missing argument", mnemonic)
		}
		op, err := classifyOperand(text, lineNo, true)
		if err != nil {
			return nil, err
		}
		return []Operand{op}, nil
	}
}

// decodeQuotedString strips a leading/trailing '"' or '\'' pair and decodes
// the \n, \t, \e escapes.
func decodeQuotedString(text string, lineNo int) (string, error) {
	if len(text) < 2 {
		return "", asmErrorf(lineNo, "malformed string literal %q", text)
	}
	quote := text[0]
	if (quote != '"' && quote != '\'') || text[len(text)-1] != quote {
		return "", asmErrorf(lineNo, "malformed string literal %q", text)
	}
	body := text[1 : len(text)-1]
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i == len(body)-1 {
			sb.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'e':
			sb.WriteByte(0x1B)
		default:
			sb.WriteByte(body[i])
		}
	}
	return sb.String(), nil
}
