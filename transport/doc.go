// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package transport adapts two periph.io/x/conn/v3/gpio.PinIO pins — one
// for SWCLK, one for SWDIO — into the swd.Pins contract. The adapter
// is shared by every backend (gpiopin, ftdi): whatever exposes its two
// lines as gpio.PinIO gets SWD bit-banging for free.
package transport
