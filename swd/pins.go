// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package swd

// Pins is the host-side bit-bang contract required from the platform.
//
// Implementations drive SWCLK/SWDIO directly; every level change must take
// effect before the next Sleeper.SleepMicros call returns. DataDirIn may be
// entered regardless of the last driven level on SWDIO.
type Pins interface {
	// SetClock drives SWCLK high (true) or low (false).
	SetClock(level bool)
	// SetData drives SWDIO high (true) or low (false). Only valid while the
	// pin is in the output direction.
	SetData(level bool)
	// DataDirOut switches SWDIO to host-driven (output).
	DataDirOut()
	// DataDirIn switches SWDIO to target-driven (input).
	DataDirIn()
	// SampleData reads the current level of SWDIO. Only valid while the pin
	// is in the input direction.
	SampleData() bool
}

// Sleeper is the microsecond/millisecond sleep contract required from the
// platform. Both sleeps are mandatory for protocol timing, not optional
// pacing: they establish SWD half-cycle width and give the target time to
// latch DHCSR.S_REGRDY.
type Sleeper interface {
	SleepMicros(us uint32)
	SleepMillis(ms uint32)
}
