// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ftdi is the FTDI MPSSE pin-driver backend: it opens an FT232H/FT232R
// over USB via periph.io/x/host/v3/ftdi (which talks to the device through
// periph.io/x/d2xx) and drives two of its GPIO header pins as SWCLK/SWDIO.
package ftdi

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	swdftdi "periph.io/x/host/v3/ftdi"

	"github.com/armswd/swdprobe/transport"
)

// Open picks the deviceIndex'th FTDI device enumerated by host.Init() and
// wires its header pins at clkBit/dioBit as SWCLK/SWDIO.
func Open(deviceIndex int, clkBit, dioBit uint) (*transport.PinPair, error) {
	devs := swdftdi.All()
	if deviceIndex < 0 || deviceIndex >= len(devs) {
		return nil, fmt.Errorf("ftdi: device index %d out of range (%d found)", deviceIndex, len(devs))
	}
	header := devs[deviceIndex].Header()
	clk, err := headerPin(header, clkBit)
	if err != nil {
		return nil, fmt.Errorf("ftdi: SWCLK: %w", err)
	}
	dio, err := headerPin(header, dioBit)
	if err != nil {
		return nil, fmt.Errorf("ftdi: SWDIO: %w", err)
	}
	return transport.NewPinPair(clk, dio)
}

func headerPin(header []gpio.PinIO, bit uint) (gpio.PinIO, error) {
	if int(bit) >= len(header) {
		return nil, fmt.Errorf("bit %d out of range (header has %d pins)", bit, len(header))
	}
	return header[bit], nil
}
