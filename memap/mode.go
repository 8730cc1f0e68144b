// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package memap

// IncrementMode is the MEM-AP TAR auto-increment setting this port tracks
// as a sticky, host-side bit.
type IncrementMode int

const (
	// IncrementOff disables TAR auto-increment: every DRW access targets
	// whatever TAR currently holds.
	IncrementOff IncrementMode = iota
	// IncrementSingle advances TAR by the access size (4 bytes, this port
	// only ever does 32-bit accesses) after every DRW access.
	IncrementSingle
)

// CSW bit assignments this port writes; kept local to avoid a second set of
// magic numbers alongside the swd package's DP/AP address constants.
const (
	cswSize32Bits    uint32 = 0x00000002
	cswAutoIncSingle uint32 = 0x00000010
	cswPrivileged    uint32 = 0x22000000
)

// cswFor computes the CSW value for the given increment mode: privileged
// debug access, 32-bit size, plus the auto-increment bit when requested.
// This single function is the one place the mode is turned into a CSW
// value.
func cswFor(mode IncrementMode) uint32 {
	v := cswPrivileged | cswSize32Bits
	if mode == IncrementSingle {
		v |= cswAutoIncSingle
	}
	return v
}

// shadow is the host-side {CSW, TAR, mode} cache. It is
// invalidated on every swd.Link re-init so the first access after a
// reconnect always rewrites CSW and TAR rather than trusting stale state.
type shadow struct {
	valid bool
	csw   uint32
	tar   uint32
	mode  IncrementMode
}

func (s *shadow) invalidate() {
	*s = shadow{}
}
