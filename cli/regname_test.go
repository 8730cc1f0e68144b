// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cli

import (
	"strconv"
	"testing"

	"github.com/armswd/swdprobe/coredebug"
)

func TestParseRegNameGeneralPurpose(t *testing.T) {
	for n := 0; n <= 15; n++ {
		r, err := parseRegName("r" + strconv.Itoa(n))
		if err != nil {
			t.Fatalf("parseRegName(r%d): %v", n, err)
		}
		if r != coredebug.Reg(n) {
			t.Fatalf("parseRegName(r%d) = %v, want %d", n, r, n)
		}
	}
}

func TestParseRegNameFloatingPoint(t *testing.T) {
	r, err := parseRegName("S7")
	if err != nil {
		t.Fatalf("parseRegName(S7): %v", err)
	}
	if r != coredebug.FReg(7) {
		t.Fatalf("parseRegName(S7) = %v, want FReg(7)", r)
	}
}

func TestParseRegNameNamedAliasesCaseInsensitive(t *testing.T) {
	cases := map[string]coredebug.Reg{
		"SP": coredebug.SP, "lr": coredebug.LR, "Pc": coredebug.PC,
		"XPSR": coredebug.XPSR, "msp": coredebug.MSP, "PSP": coredebug.PSP,
		"Control": coredebug.CONTROL, "FAULTMASK": coredebug.FAULTMASK,
		"basepri": coredebug.BASEPRI, "PRIMASK": coredebug.PRIMASK,
		"fpcsr": coredebug.FPCSR,
	}
	for name, want := range cases {
		got, err := parseRegName(name)
		if err != nil {
			t.Fatalf("parseRegName(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("parseRegName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseRegNameRejectsOutOfRange(t *testing.T) {
	for _, name := range []string{"r16", "r99", "s32", "bogus"} {
		if _, err := parseRegName(name); err == nil {
			t.Fatalf("parseRegName(%q): expected error, got nil", name)
		}
	}
}
