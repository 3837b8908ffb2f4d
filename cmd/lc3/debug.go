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
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"

	"github.com/lc3kit/lc3/disasm"
	"github.com/lc3kit/lc3/vm"
)

func newDebugCmd() *cobra.Command {
	var noRaw bool

	cmd := &cobra.Command{
		Use:   "debug <file.obj>",
		Short: "Load an object image into a text-mode debugger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDebugger(args[0], noRaw)
		},
	}
	cmd.Flags().BoolVar(&noRaw, "noraw", false, "disable raw terminal input")
	return cmd
}

func runDebugger(path string, noRaw bool) error {
	img, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read object file")
	}

	input, teardown := setupKeyboard(noRaw)
	if teardown != nil {
		defer teardown()
	}

	diag := &bufferedOutput{}
	i, err := vm.New(
		vm.WithInput(input),
		vm.WithOutput(vm.NewOutput(os.Stdout)),
		vm.WithDiagnostic(diag),
		vm.WithTrace(true),
	)
	if err != nil {
		return errors.Wrap(err, "create VM")
	}
	if err := i.LoadBinary(img); err != nil {
		return errors.Wrap(err, "load object image")
	}

	d := newDebugger(i, diag)
	return newTUI(d).Run()
}

// bufferedOutput collects diagnostic lines so the debugger's output panel
// can display them alongside command results.
type bufferedOutput struct {
	lines []string
}

func (b *bufferedOutput) WriteString(s string) error {
	b.lines = append(b.lines, strings.Split(strings.TrimRight(s, "\n"), "\n")...)
	return nil
}

func (b *bufferedOutput) drain() string {
	s := strings.Join(b.lines, "\n")
	b.lines = b.lines[:0]
	return s
}

// debugger holds the VM under inspection plus the session state a command
// line needs: breakpoints and the address the memory panel is scrolled to.
type debugger struct {
	vm          *vm.Instance
	diag        *bufferedOutput
	breakpoints map[vm.Word]bool
	memAddr     vm.Word
}

func newDebugger(i *vm.Instance, diag *bufferedOutput) *debugger {
	return &debugger{vm: i, diag: diag, breakpoints: map[vm.Word]bool{}}
}

// execute runs one debugger command and returns the text to show in the
// output panel.
func (d *debugger) execute(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	switch strings.ToLower(fields[0]) {
	case "step", "s":
		if err := d.vm.Step(); err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		return d.diag.drain()
	case "continue", "c":
		first := true
		for d.vm.Running() {
			if !first && d.breakpoints[d.vm.Reg(vm.RPC)] {
				return "stopped at breakpoint x" + hex4(uint16(d.vm.Reg(vm.RPC)))
			}
			first = false
			if err := d.vm.Step(); err != nil {
				return fmt.Sprintf("error: %v", err)
			}
		}
		return d.diag.drain()
	case "break", "b":
		if len(fields) != 2 {
			return "usage: break <addr>"
		}
		addr, err := parseAddr(fields[1])
		if err != nil {
			return err.Error()
		}
		d.breakpoints[addr] = true
		return "breakpoint set at x" + hex4(uint16(addr))
	case "mem", "m":
		if len(fields) == 2 {
			addr, err := parseAddr(fields[1])
			if err != nil {
				return err.Error()
			}
			d.memAddr = addr
		}
		return ""
	case "quit", "q":
		return "quit"
	default:
		return "unknown command: " + fields[0]
	}
}

func parseAddr(s string) (vm.Word, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "x")
	n, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, errors.Wrapf(err, "bad address %q", s)
	}
	return vm.Word(n), nil
}

func hex4(v uint16) string {
	return fmt.Sprintf("%04X", v)
}

// tui is the text-mode debugger front end: register, memory, and
// instruction-trace panels plus a command line, driven by the VM's
// Step/Continue and trace-buffer contract.
type tui struct {
	d *debugger

	app          *tview.Application
	registerView *tview.TextView
	memoryView   *tview.TextView
	traceView    *tview.TextView
	outputView   *tview.TextView
	commandInput *tview.InputField
}

func newTUI(d *debugger) *tui {
	t := &tui{d: d, app: tview.NewApplication()}
	t.build()
	return t
}

func (t *tui) build() {
	t.registerView = tview.NewTextView().SetDynamicColors(true)
	t.registerView.SetBorder(true).SetTitle(" Registers ")

	t.memoryView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.memoryView.SetBorder(true).SetTitle(" Memory ")

	t.traceView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.traceView.SetBorder(true).SetTitle(" Trace ")

	t.outputView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.outputView.SetBorder(true).SetTitle(" Output ")

	t.commandInput = tview.NewInputField().SetLabel("> ")
	t.commandInput.SetBorder(true).SetTitle(" Command (step/continue/break <addr>/mem <addr>/quit) ")
	t.commandInput.SetDoneFunc(t.onCommand)

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.registerView, 8, 0, false).
		AddItem(t.memoryView, 0, 1, false)

	top := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(t.traceView, 0, 1, false).
		AddItem(right, 0, 1, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 0, 4, false).
		AddItem(t.outputView, 6, 0, false).
		AddItem(t.commandInput, 3, 0, true)

	t.app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		switch ev.Key() {
		case tcell.KeyF5:
			t.runCommand("continue")
			return nil
		case tcell.KeyF11:
			t.runCommand("step")
			return nil
		case tcell.KeyCtrlC:
			t.app.Stop()
			return nil
		}
		return ev
	})

	t.app.SetRoot(root, true).SetFocus(t.commandInput)
}

func (t *tui) onCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	cmd := t.commandInput.GetText()
	t.commandInput.SetText("")
	if cmd != "" {
		t.runCommand(cmd)
	}
}

func (t *tui) runCommand(cmd string) {
	result := t.d.execute(cmd)
	if result == "quit" {
		t.app.Stop()
		return
	}
	if result != "" {
		fmt.Fprintln(t.outputView, result)
	}
	t.refresh()
}

func (t *tui) refresh() {
	i := t.d.vm
	var b strings.Builder
	for r := vm.R0; r <= vm.R7; r++ {
		fmt.Fprintf(&b, "R%d: x%s  ", r, hex4(uint16(i.Reg(r))))
		if r%4 == 3 {
			b.WriteByte('\n')
		}
	}
	fmt.Fprintf(&b, "\nPC: x%s  COND: x%s\n", hex4(uint16(i.Reg(vm.RPC))), hex4(uint16(i.Reg(vm.RCOND))))
	t.registerView.SetText(b.String())

	b.Reset()
	base := t.d.memAddr
	if base == 0 {
		base = i.Reg(vm.RPC)
	}
	for n := vm.Word(0); n < 16; n++ {
		addr := base + n
		word := i.Mem(addr)
		fmt.Fprintf(&b, "x%s: x%s  %s\n", hex4(uint16(addr)), hex4(uint16(word)), disasm.Decode(uint16(word)))
	}
	t.memoryView.SetText(b.String())

	b.Reset()
	trace := i.Trace()
	start := 0
	if len(trace) > 32 {
		start = len(trace) - 32
	}
	for n := start; n < len(trace); n++ {
		fmt.Fprintf(&b, "%4d: PC=x%s\n", n, hex4(uint16(trace[n][8])))
	}
	t.traceView.SetText(b.String())

	t.app.Draw()
}

func (t *tui) Run() error {
	t.refresh()
	fmt.Fprintln(t.outputView, "LC-3 debugger. F11 to step, F5 to continue, Ctrl-C to quit.")
	return t.app.Run()
}
