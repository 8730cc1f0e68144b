// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package transport

import (
	"time"

	"github.com/armswd/swdprobe/swd"
)

var _ swd.Sleeper = RealSleeper{}

// RealSleeper implements swd.Sleeper over time.Sleep. No library in the
// example pack wraps OS sleep primitives with anything beyond the standard
// library, so this stays on time.Sleep rather than reaching for a
// third-party scheduler.
type RealSleeper struct{}

func (RealSleeper) SleepMicros(us uint32) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}

func (RealSleeper) SleepMillis(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
