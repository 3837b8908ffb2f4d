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
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lc3kit/lc3/vm"
)

func newRunCmd() *cobra.Command {
	var noRaw bool
	var trace bool

	cmd := &cobra.Command{
		Use:   "run <file.obj>",
		Short: "Load and execute an LC-3 object image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImage(args[0], noRaw, trace)
		},
	}
	cmd.Flags().BoolVar(&noRaw, "noraw", false, "disable raw terminal input")
	cmd.Flags().BoolVar(&trace, "trace", false, "print a register trace to stderr after the run")
	return cmd
}

func runImage(path string, noRaw, trace bool) error {
	img, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read object file")
	}

	input, teardown := setupKeyboard(noRaw)
	if teardown != nil {
		defer teardown()
	}

	i, err := vm.New(
		vm.WithInput(input),
		vm.WithOutput(vm.NewOutput(os.Stdout)),
		vm.WithDiagnostic(vm.NewOutput(os.Stderr)),
		vm.WithTrace(trace),
	)
	if err != nil {
		return errors.Wrap(err, "create VM")
	}
	if err := i.LoadBinary(img); err != nil {
		return errors.Wrap(err, "load object image")
	}
	if err := i.Continue(); err != nil {
		return errors.Wrap(err, "run")
	}
	if trace {
		printTrace(os.Stderr, i.Trace())
	}
	return nil
}

// setupKeyboard tries to put the terminal in raw mode and returns a
// matching vm.Input collaborator. If raw mode is unavailable or disabled,
// it falls back to buffered line input and a nil teardown.
func setupKeyboard(noRaw bool) (vm.Input, func()) {
	if !noRaw {
		if teardown, err := setRawIO(); err == nil {
			return newTermInput(os.Stdin), teardown
		}
	}
	return newLineInput(os.Stdin), nil
}

func printTrace(w *os.File, trace [][10]vm.Word) {
	names := [10]string{"R0", "R1", "R2", "R3", "R4", "R5", "R6", "R7", "PC", "COND"}
	for n, snap := range trace {
		fmt.Fprintf(w, "%4d:", n)
		for k, v := range snap {
			fmt.Fprintf(w, " %s=%04X", names[k], v)
		}
		fmt.Fprintln(w)
	}
}
