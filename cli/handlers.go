// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/armswd/swdprobe/coredebug"
	"github.com/armswd/swdprobe/images"
)

func (r *REPL) cmdHelp(args []string) error {
	for _, line := range helpLines(r.commands) {
		fmt.Fprintln(r.out, line)
	}
	return nil
}

func (r *REPL) cmdInit(args []string) error {
	r.Link.InitializeSWD(r.Sleep, r.SettleMs)
	idcode, err := r.Link.SetupDPAndMemAP(r.Sleep, r.SettleMs)
	if err != nil {
		return err
	}
	r.Port.Reset()
	fmt.Fprintf(r.out, "IDCODE: 0x%08x\n", idcode)
	return nil
}

func (r *REPL) cmdStatus(args []string) error {
	status, err := r.Control.Status()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "%s (DHCSR: 0x%08x)\n", status.State, status.DHCSR)
	return nil
}

func (r *REPL) cmdHalt(args []string) error {
	return r.Control.Halt()
}

func (r *REPL) cmdContinue(args []string) error {
	return r.Control.Continue()
}

func (r *REPL) cmdReset(args []string) error {
	return r.Control.ResetHalt()
}

func (r *REPL) cmdStep(args []string) error {
	if err := r.Control.Step(); err != nil {
		return err
	}
	pc, err := r.Control.ReadRegister(coredebug.PC)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "PC: 0x%08x\n", pc)
	return nil
}

func (r *REPL) cmdPC(args []string) error {
	pc, err := r.Control.ReadRegister(coredebug.PC)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "PC: 0x%08x\n", pc)
	return nil
}

func (r *REPL) cmdLoad(args []string) error {
	img, err := images.Lookup(args[0])
	if err != nil {
		return err
	}
	if err := r.Loader.Load(img); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "loaded %q: %d bytes, entry 0x%08x\n", args[0], len(img.Bytes), img.EntryPC)
	return nil
}

func (r *REPL) cmdSet(args []string) error {
	addr, err := parseHex32(args[0])
	if err != nil {
		return err
	}
	value, err := parseHex32(args[1])
	if err != nil {
		return err
	}
	return r.Port.Write32(addr, value)
}

func (r *REPL) cmdRead(args []string) error {
	tok := args[0]
	if strings.HasPrefix(tok, "$") {
		reg, err := parseRegName(tok[1:])
		if err != nil {
			return err
		}
		v, err := r.Control.ReadRegister(reg)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "%s: 0x%08x\n", reg, v)
		return nil
	}
	addr, err := parseHex32(tok)
	if err != nil {
		return err
	}
	v, err := r.Port.Read32(addr)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "0x%08x: 0x%08x\n", addr, v)
	return nil
}

func (r *REPL) cmdTrace(args []string) error {
	switch strings.ToLower(args[0]) {
	case "on":
		r.trace = true
		if r.Log != nil {
			r.Log.SetLevel(logrus.DebugLevel)
		}
	case "off":
		r.trace = false
		if r.Log != nil {
			r.Log.SetLevel(logrus.InfoLevel)
		}
	default:
		return fmt.Errorf("cli: trace expects \"on\" or \"off\", got %q", args[0])
	}
	return nil
}
