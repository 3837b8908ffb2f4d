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

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lc3kit/lc3/asm"
	"github.com/lc3kit/lc3/internal/errw"
)

func newAssembleCmd() *cobra.Command {
	var outName string
	var dumpSymtab bool

	cmd := &cobra.Command{
		Use:   "assemble <file.asm>",
		Short: "Assemble an LC-3 source file into a big-endian object image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssemble(args[0], outName, dumpSymtab)
		},
	}
	cmd.Flags().StringVarP(&outName, "output", "o", "", "object file name (default: input name with a .obj extension)")
	cmd.Flags().BoolVar(&dumpSymtab, "symtab", false, "also write a .sym symbol table listing next to the object file")
	return cmd
}

func runAssemble(srcName, outName string, dumpSymtab bool) error {
	src, err := os.ReadFile(srcName)
	if err != nil {
		return errors.Wrap(err, "read source file")
	}
	symtab, obj, err := asm.Assemble(string(src))
	if err != nil {
		return errors.Wrap(err, "assemble")
	}
	if outName == "" {
		outName = withExt(srcName, ".obj")
	}
	if err := os.WriteFile(outName, obj, 0o644); err != nil {
		return errors.Wrap(err, "write object file")
	}
	if !dumpSymtab {
		return nil
	}
	f, err := os.Create(withExt(outName, ".sym"))
	if err != nil {
		return errors.Wrap(err, "create symbol table file")
	}
	defer f.Close()
	w := errw.New(f)
	if err := symtab.Dump(w); err != nil {
		return errors.Wrap(err, "write symbol table")
	}
	if w.Err != nil {
		return errors.Wrap(w.Err, "write symbol table")
	}
	return nil
}

// withExt replaces name's extension with ext.
func withExt(name, ext string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}
