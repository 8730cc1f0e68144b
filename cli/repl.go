// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/armswd/swdprobe/coredebug"
	"github.com/armswd/swdprobe/loader"
	"github.com/armswd/swdprobe/memap"
	"github.com/armswd/swdprobe/swd"
)

// REPL is the command surface: it owns the whole stack below it
// (link, MEM-AP port, core-debug controller, loader) and dispatches text
// commands against them.
type REPL struct {
	Link      *swd.Link
	Port      *memap.Port
	Control   *coredebug.Controller
	Loader    *loader.Loader
	Sleep     swd.Sleeper
	SettleMs  uint32
	Indicator Indicator
	Log       *logrus.Logger

	trace    bool
	commands map[string]*command
	out      io.Writer // valid only while dispatch is running a handler
}

// NewREPL wires a REPL over an already-constructed stack. indicator may be
// nil, in which case activity reporting is a no-op.
func NewREPL(link *swd.Link, port *memap.Port, control *coredebug.Controller, ld *loader.Loader, sleep swd.Sleeper, settleMs uint32, log *logrus.Logger, indicator Indicator) *REPL {
	if indicator == nil {
		indicator = NullIndicator{}
	}
	return &REPL{
		Link:      link,
		Port:      port,
		Control:   control,
		Loader:    ld,
		Sleep:     sleep,
		SettleMs:  settleMs,
		Indicator: indicator,
		Log:       log,
		commands:  buildCommandTable(),
	}
}

// Run reads whitespace-separated commands from in, one per line, until in
// is exhausted (EOF) or a read error occurs. No command failure stops the
// loop: errors are printed to out and the REPL keeps reading.
func (r *REPL) Run(in io.Reader, out io.Writer) error {
	r.Indicator.Ready()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		r.dispatch(line, out)
	}
	return scanner.Err()
}

func (r *REPL) dispatch(line string, out io.Writer) {
	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])
	args := fields[1:]

	cmd, ok := r.commands[name]
	if !ok {
		fmt.Fprintf(out, "\033[31munknown command %q (try \"help\")\033[0m\n", name)
		return
	}
	if cmd.arity >= 0 && len(args) != cmd.arity {
		fmt.Fprintf(out, "\033[31musage: %s\033[0m\n", cmd.usage)
		return
	}

	r.Indicator.Busy(true)
	defer r.Indicator.Busy(false)

	r.out = out
	err := cmd.handler(r, args)
	r.out = nil

	if err != nil {
		fmt.Fprintf(out, "\033[31merror: %v\033[0m\n", err)
		if r.Log != nil {
			r.Log.WithError(err).Debug("command failed")
		}
	}
}
