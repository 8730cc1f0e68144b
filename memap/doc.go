// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package memap implements the MEM-AP memory port: CSW/TAR/DRW-mediated
// reads and writes of target memory, with posted-read handling via RDBUFF,
// a host-side shadow of {CSW, TAR, mode} that skips redundant register
// writes, and the 1 KiB TAR auto-increment boundary.
//
// Only this package's Read32, Write32, ReadStream32 and WriteStream32 touch
// DRW: no caller outside this package ever sees a raw AP read, which keeps
// the "read twice to flush RDBUFF" posted-read handling in one place.
package memap
