// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/armswd/swdprobe/coredebug"
	"github.com/armswd/swdprobe/internal/swdtest"
	"github.com/armswd/swdprobe/loader"
	"github.com/armswd/swdprobe/memap"
	"github.com/armswd/swdprobe/swd"
)

func newTestREPL(target *swdtest.Target) *REPL {
	link := swd.NewLink(target, target, 1)
	port := memap.NewPort(link)
	control := coredebug.NewController(port, link, target)
	ld := loader.NewLoader(port, control)
	return NewREPL(link, port, control, ld, target, 1, nil, nil)
}

func runLines(r *REPL, lines ...string) string {
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	_ = r.Run(in, &out)
	return out.String()
}

func TestHelpListsEveryCommand(t *testing.T) {
	r := newTestREPL(swdtest.NewTarget())
	out := runLines(r, "help")
	for _, name := range []string{"help", "init", "status", "halt", "continue", "reset", "step", "pc", "load", "set", "read", "trace"} {
		if !strings.Contains(out, name) {
			t.Errorf("help output missing command %q:\n%s", name, out)
		}
	}
}

func TestUnknownCommandReported(t *testing.T) {
	r := newTestREPL(swdtest.NewTarget())
	out := runLines(r, "frobnicate")
	if !strings.Contains(out, "unknown command") {
		t.Fatalf("expected unknown-command message, got:\n%s", out)
	}
}

func TestSetAndReadRoundTrip(t *testing.T) {
	r := newTestREPL(swdtest.NewTarget())
	out := runLines(r, "set 0x20000000 0xDEADBEEF", "read 0x20000000")
	if !strings.Contains(out, "0x20000000: 0xdeadbeef") {
		t.Fatalf("set/read round trip failed, got:\n%s", out)
	}
}

func TestReadRejectsBadHexLiteral(t *testing.T) {
	r := newTestREPL(swdtest.NewTarget())
	out := runLines(r, "read 0x123")
	if !strings.Contains(out, "error:") {
		t.Fatalf("expected error for malformed hex literal, got:\n%s", out)
	}
}

func TestHaltThenStatusReportsHalted(t *testing.T) {
	r := newTestREPL(swdtest.NewTarget())
	out := runLines(r, "halt", "status")
	if !strings.Contains(out, "halted") {
		t.Fatalf("expected halted status, got:\n%s", out)
	}
}

func TestReadRegisterByName(t *testing.T) {
	target := swdtest.NewTarget()
	r := newTestREPL(target)
	out := runLines(r, "read $pc")
	if !strings.Contains(out, "pc: 0x") {
		t.Fatalf("expected register read output, got:\n%s", out)
	}
}

func TestLoadUnknownNameDefaultsToSimple(t *testing.T) {
	r := newTestREPL(swdtest.NewTarget())
	out := runLines(r, "load bogus")
	if !strings.Contains(out, "loaded \"bogus\"") {
		t.Fatalf("expected load to succeed via the default fallback, got:\n%s", out)
	}
}

func TestSetWrongArityReportsUsage(t *testing.T) {
	r := newTestREPL(swdtest.NewTarget())
	out := runLines(r, "set 0x20000000")
	if !strings.Contains(out, "usage:") {
		t.Fatalf("expected usage message for wrong arity, got:\n%s", out)
	}
}

func TestTraceTogglesWithoutError(t *testing.T) {
	r := newTestREPL(swdtest.NewTarget())
	out := runLines(r, "trace on", "trace off")
	if strings.Contains(out, "error:") {
		t.Fatalf("trace on/off should not error, got:\n%s", out)
	}
}
