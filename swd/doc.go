// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package swd implements the bit-exact ARM Serial Wire Debug wire protocol:
// request framing, turnaround discipline, and ACK decoding over two
// bit-banged GPIO lines (SWCLK/SWDIO).
//
// Package swd owns the only two shared resources in the whole probe, the
// clock and data lines, and the single BusDir state machine that tracks
// which side is driving SWDIO. Higher layers (memap, coredebug, loader)
// never talk to the wire directly; they call Link.ReadDP/WriteDP/ReadAP/
// WriteAP.
package swd
