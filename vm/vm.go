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

// Option configures an Instance at construction time.
type Option func(*Instance) error

// WithMemory overrides the default in-memory backend. Mostly useful for
// tests that want to observe or seed memory directly; production callers
// should rely on the default backend and LoadBinary.
func WithMemory(m Memory) Option {
	return func(i *Instance) error { i.mem = m; return nil }
}

// WithInput attaches the keyboard collaborator consumed by GETC, IN, and by
// reads of the KBSR memory-mapped register.
func WithInput(in Input) Option {
	return func(i *Instance) error { i.input = in; return nil }
}

// WithOutput attaches the program output sink consumed by OUT, PUTS, and
// PUTSP.
func WithOutput(out Output) Option {
	return func(i *Instance) error { i.output = out; return nil }
}

// WithDiagnostic attaches the diagnostic sink used for the fixed
// "-- RESET --", "-- HALT --" and "-- HALTED --" lines.
func WithDiagnostic(out Output) Option {
	return func(i *Instance) error { i.diagnostic = out; return nil }
}

// WithTrace enables or disables per-step register tracing.
func WithTrace(enabled bool) Option {
	return func(i *Instance) error { i.tracing = enabled; return nil }
}

// Instance is a single LC-3 virtual machine: memory, registers, condition
// flags, a running flag, an output sink, and an optional trace buffer.
type Instance struct {
	mem Memory
	reg [registerCount]Word

	running bool

	tracing bool
	trace   [][registerCount]Word

	input      Input
	output     Output
	diagnostic Output
}

// New constructs a VM instance, applies opts, and resets it to its initial
// state (PC = 0x3000, COND = POS, running, empty trace).
func New(opts ...Option) (*Instance, error) {
	i := &Instance{
		mem:        newArrayMemory(),
		output:     discardOutput{},
		diagnostic: discardOutput{},
	}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	if am, ok := i.mem.(*arrayMemory); ok {
		am.kbd = i.input
	}
	i.Reset()
	return i, nil
}

// Running reports whether the VM is currently executing (false once HALT
// has run, until the next Reset).
func (i *Instance) Running() bool {
	return i.running
}

// Trace returns the recorded register snapshots, one per executed step,
// taken immediately before each instruction fetch. Each snapshot has the
// layout [R0,R1,R2,R3,R4,R5,R6,R7,PC,COND]. The returned slice is empty
// unless tracing was enabled with WithTrace.
func (i *Instance) Trace() [][10]Word {
	return i.trace
}
