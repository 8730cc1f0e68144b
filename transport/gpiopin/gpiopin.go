// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gpiopin is the native-header pin-driver backend: it resolves two pin
// names through periph's gpioreg (populated by whatever platform driver
// host.Init() registers — sysfs, allwinner, nanopi, orangepi, ...) and
// drives them directly.
package gpiopin

import (
	"fmt"

	"periph.io/x/conn/v3/gpio/gpioreg"

	"github.com/armswd/swdprobe/transport"
)

// Open resolves swclkName/swdioName via gpioreg.ByName and wraps them in a
// transport.PinPair. Callers must have already run host.Init() (or
// registered drivers directly) so the named pins exist in gpioreg.
func Open(swclkName, swdioName string) (*transport.PinPair, error) {
	clk := gpioreg.ByName(swclkName)
	if clk == nil {
		return nil, fmt.Errorf("gpiopin: unknown pin %q", swclkName)
	}
	dio := gpioreg.ByName(swdioName)
	if dio == nil {
		return nil, fmt.Errorf("gpiopin: unknown pin %q", swdioName)
	}
	return transport.NewPinPair(clk, dio)
}
