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

import "fmt"

// ErrAsm is the single failure kind surfaced by Assemble. Assembly is
// fail-fast: the first detected error aborts the call and no partial
// object is returned.
type ErrAsm struct {
	Line int
	Msg  string
}

func (e *ErrAsm) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func asmErrorf(line int, format string, args ...interface{}) error {
	return &ErrAsm{Line: line, Msg: fmt.Sprintf(format, args...)}
}
