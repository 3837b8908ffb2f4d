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

import "errors"

// Fatal error kinds surfaced by LoadBinary and instruction execution. These
// are plain sentinel errors (not wrapped in github.com/pkg/errors) so that
// callers can compare them with errors.Is without taking a dependency on
// that package through this core's public contract; cmd/lc3 wraps them with
// call-site context using pkg/errors at the driver layer.
var (
	// ErrImageTooLarge is returned by LoadBinary when the payload is longer
	// than 0xFFFF-origin words.
	ErrImageTooLarge = errors.New("lc3: image too large for origin")
	// ErrOddImageSize is returned by LoadBinary when the object image has an
	// odd number of bytes.
	ErrOddImageSize = errors.New("lc3: image has odd byte length")
	// ErrBadOpcode is returned by Step/Continue when the fetched instruction
	// decodes to RTI, RES, or any value outside the 15 defined opcodes.
	ErrBadOpcode = errors.New("lc3: bad opcode")
)
