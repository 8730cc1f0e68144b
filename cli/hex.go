// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseHex32 parses a hex literal: must begin with "0x" and encode exactly
// 8 hex digits.
func parseHex32(tok string) (uint32, error) {
	if !strings.HasPrefix(tok, "0x") && !strings.HasPrefix(tok, "0X") {
		return 0, fmt.Errorf("cli: %q is not a hex literal (want 0x followed by 8 hex digits)", tok)
	}
	digits := tok[2:]
	if len(digits) != 8 {
		return 0, fmt.Errorf("cli: %q does not encode exactly 8 hex digits", tok)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("cli: %q is not valid hex: %w", tok, err)
	}
	return uint32(v), nil
}
