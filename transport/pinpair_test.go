// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package transport

import (
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
)

// fakePin is a minimal gpio.PinIO fake: enough to drive and observe PinPair
// without any real hardware.
type fakePin struct {
	name  string
	level gpio.Level
	dir   string // "out" or "in"
}

func (f *fakePin) String() string                        { return f.name }
func (f *fakePin) Halt() error                            { return nil }
func (f *fakePin) Name() string                           { return f.name }
func (f *fakePin) Number() int                            { return 0 }
func (f *fakePin) Function() string                       { return string(f.Func()) }
func (f *fakePin) Func() pin.Func                         { return pin.Func(f.dir) }
func (f *fakePin) SupportedFuncs() []pin.Func             { return nil }
func (f *fakePin) SetFunc(pin.Func) error                 { return nil }
func (f *fakePin) Pull() gpio.Pull                        { return gpio.PullNoChange }
func (f *fakePin) DefaultPull() gpio.Pull                 { return gpio.PullNoChange }
func (f *fakePin) PWM(gpio.Duty, physic.Frequency) error  { return nil }

func (f *fakePin) In(gpio.Pull, gpio.Edge) error {
	f.dir = "in"
	return nil
}

func (f *fakePin) Out(l gpio.Level) error {
	f.dir = "out"
	f.level = l
	return nil
}

func (f *fakePin) Read() gpio.Level {
	return f.level
}

func newFakePair() (*fakePin, *fakePin) {
	return &fakePin{name: "clk"}, &fakePin{name: "dio"}
}

func TestNewPinPairDrivesIdleLevels(t *testing.T) {
	clk, dio := newFakePair()
	if _, err := NewPinPair(clk, dio); err != nil {
		t.Fatalf("NewPinPair: %v", err)
	}
	if clk.dir != "out" || clk.level != gpio.High {
		t.Fatalf("SWCLK not idle-high output: dir=%s level=%v", clk.dir, clk.level)
	}
	if dio.dir != "out" || dio.level != gpio.High {
		t.Fatalf("SWDIO not idle-high output: dir=%s level=%v", dio.dir, dio.level)
	}
}

func TestSetClockDrivesLine(t *testing.T) {
	clk, dio := newFakePair()
	p, err := NewPinPair(clk, dio)
	if err != nil {
		t.Fatalf("NewPinPair: %v", err)
	}
	p.SetClock(false)
	if clk.level != gpio.Low {
		t.Fatalf("SetClock(false): clk level = %v, want Low", clk.level)
	}
	p.SetClock(true)
	if clk.level != gpio.High {
		t.Fatalf("SetClock(true): clk level = %v, want High", clk.level)
	}
}

func TestDataDirInOutRoundTrip(t *testing.T) {
	clk, dio := newFakePair()
	p, err := NewPinPair(clk, dio)
	if err != nil {
		t.Fatalf("NewPinPair: %v", err)
	}
	p.SetData(false)
	if dio.dir != "out" || dio.level != gpio.Low {
		t.Fatalf("SetData(false): dio = dir=%s level=%v", dio.dir, dio.level)
	}

	p.DataDirIn()
	if dio.dir != "in" {
		t.Fatalf("DataDirIn: dio.dir = %s, want in", dio.dir)
	}
	dio.level = gpio.High
	if !p.SampleData() {
		t.Fatalf("SampleData() = false, want true")
	}

	// DataDirOut must re-drive the last level this host held, not glitch to
	// whatever the target left the line at while it was an input.
	p.DataDirOut()
	if dio.dir != "out" || dio.level != gpio.Low {
		t.Fatalf("DataDirOut did not restore last driven level: dir=%s level=%v", dio.dir, dio.level)
	}
}

func TestSampleDataReflectsLine(t *testing.T) {
	clk, dio := newFakePair()
	p, err := NewPinPair(clk, dio)
	if err != nil {
		t.Fatalf("NewPinPair: %v", err)
	}
	p.DataDirIn()
	dio.level = gpio.Low
	if p.SampleData() {
		t.Fatalf("SampleData() = true, want false")
	}
	dio.level = gpio.High
	if !p.SampleData() {
		t.Fatalf("SampleData() = false, want true")
	}
}
