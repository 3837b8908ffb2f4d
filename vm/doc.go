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

// Package vm implements the LC-3 virtual machine: a 16-bit word-addressed
// memory, a ten-slot register file, condition flags, and a fetch-decode-
// execute loop covering all fifteen LC-3 opcodes and the six trap routines.
//
// An Instance is constructed with New and a set of Options, loaded with
// LoadBinary, and driven with Step or Continue. The VM itself performs no
// I/O beyond the Input/Output/Diagnostic collaborators supplied at
// construction time: reading a file, switching a terminal to raw mode, and
// parsing command line flags are all concerns of the cmd/lc3 driver, not of
// this package.
//
// For all intents and purposes, the VM behaves according to the LC-3
// Instruction Set Architecture reference manual. RTI and RES are treated as
// undefined opcodes, matching user-mode execution: the reference ISA only
// permits RTI from supervisor mode, which this VM does not model.
package vm
