// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/armswd/swdprobe/coredebug"
)

var namedRegs = map[string]coredebug.Reg{
	"sp":        coredebug.SP,
	"lr":        coredebug.LR,
	"pc":        coredebug.PC,
	"xpsr":      coredebug.XPSR,
	"msp":       coredebug.MSP,
	"psp":       coredebug.PSP,
	"control":   coredebug.CONTROL,
	"faultmask": coredebug.FAULTMASK,
	"basepri":   coredebug.BASEPRI,
	"primask":   coredebug.PRIMASK,
	"fpcsr":     coredebug.FPCSR,
}

// parseRegName parses a register name (without the leading '$'): r0-r15,
// s0-s31, or one of the named core aliases (sp/lr/pc/xpsr/msp/psp/control/
// faultmask/basepri/primask/fpcsr), case-insensitive.
func parseRegName(name string) (coredebug.Reg, error) {
	lower := strings.ToLower(name)
	if r, ok := namedRegs[lower]; ok {
		return r, nil
	}
	if len(lower) >= 2 && lower[0] == 'r' {
		n, err := strconv.Atoi(lower[1:])
		if err == nil && n >= 0 && n <= 15 {
			return coredebug.Reg(n), nil
		}
	}
	if len(lower) >= 2 && lower[0] == 's' {
		n, err := strconv.Atoi(lower[1:])
		if err == nil && n >= 0 && n <= 31 {
			return coredebug.FReg(n), nil
		}
	}
	return 0, fmt.Errorf("cli: unknown register %q", name)
}
