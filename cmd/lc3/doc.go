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

// The lc3 command line tool assembles and runs LC-3 programs.
//
// Usage:
//
//	lc3 assemble <file.asm> [-o file.obj] [--symtab]
//	lc3 run <file.obj> [--noraw] [--trace]
//	lc3 debug <file.obj> [--noraw]
//
// assemble reads LC-3 assembly source and writes a big-endian object image.
// By default the output name is the input name with its extension replaced
// by ".obj"; -o overrides it. --symtab additionally writes a ".sym" listing
// of the symbol table next to the object file.
//
// run loads an object image and executes it to completion, wiring stdin and
// stdout to the GETC/OUT/PUTS/IN/PUTSP traps. Unless --noraw is given, the
// terminal is switched to raw mode for the duration of the run so keypresses
// reach GETC/IN unbuffered and the KBSR polls correctly.
//
// debug loads an object image into a text-mode debugger: register, memory,
// and instruction-trace panels driven by the VM's Step/trace-buffer
// contract, with a command line for stepping, continuing, and setting
// breakpoints.
package main
