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

package vm_test

import (
	"fmt"

	"github.com/lc3kit/lc3/asm"
	"github.com/lc3kit/lc3/vm"
)

// Shows how to assemble a small program, load the object image into a fresh
// VM, and run it to completion.
func ExampleInstance_Continue() {
	_, obj, err := asm.Assemble(`
.ORIG x3000
	LEA R0, MSG
	PUTS
	HALT
MSG	.STRINGZ "hi\n"
.END
`)
	if err != nil {
		panic(err)
	}

	out := &vm.BufferOutput{}
	i, err := vm.New(vm.WithOutput(out))
	if err == nil {
		err = i.LoadBinary(obj)
	}
	if err == nil {
		err = i.Continue()
	}
	if err != nil {
		panic(err)
	}

	fmt.Print(out.String())
	// Output:
	// hi
}
