// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package transport

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"

	"github.com/armswd/swdprobe/swd"
)

var _ swd.Pins = (*PinPair)(nil)

// PinPair implements swd.Pins over two periph gpio.PinIO lines. SWDIO's
// direction is flipped between Out and In as the SWD turnaround discipline
// requires; SWCLK is always an output.
type PinPair struct {
	clk  gpio.PinIO
	dio  gpio.PinIO
	last gpio.Level // last level driven on dio while an output, re-driven by DataDirOut
}

// NewPinPair builds a PinPair, driving both pins to their idle SWD state:
// SWCLK high, SWDIO output high.
func NewPinPair(clk, dio gpio.PinIO) (*PinPair, error) {
	if err := clk.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("transport: init SWCLK: %w", err)
	}
	if err := dio.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("transport: init SWDIO: %w", err)
	}
	return &PinPair{clk: clk, dio: dio, last: gpio.High}, nil
}

// SetClock drives SWCLK.
func (p *PinPair) SetClock(level bool) {
	_ = p.clk.Out(gpio.Level(level))
}

// SetData drives SWDIO. Only meaningful while SWDIO is an output.
func (p *PinPair) SetData(level bool) {
	p.last = gpio.Level(level)
	_ = p.dio.Out(p.last)
}

// DataDirOut takes SWDIO back from the target, re-driving the last level
// this host held so the line doesn't glitch.
func (p *PinPair) DataDirOut() {
	_ = p.dio.Out(p.last)
}

// DataDirIn releases SWDIO for the target to drive.
func (p *PinPair) DataDirIn() {
	_ = p.dio.In(gpio.PullNoChange, gpio.NoEdge)
}

// SampleData reads the current SWDIO level.
func (p *PinPair) SampleData() bool {
	return p.dio.Read() == gpio.High
}
