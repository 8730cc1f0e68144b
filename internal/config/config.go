// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package config loads the probe's pin/timing/transport settings from an
// INI file, the way a host application configures hardware bring-up
// parameters that don't belong hard-coded alongside protocol logic.
package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Transport selects which pin-driver backend cmd/swdprobe wires up.
type Transport string

const (
	TransportGPIO Transport = "gpio"
	TransportFTDI Transport = "ftdi"
)

// Config is the probe's full runtime configuration.
type Config struct {
	Transport Transport

	// GPIO backend settings (periph pin names, e.g. "GPIO24").
	SWCLKPin string
	SWDIOPin string

	// FTDI backend settings.
	FTDIDevice int
	SWCLKBit   uint
	SWDIOBit   uint

	// Protocol timing: ClockDelayUs is the bit-pipe half-cycle width in
	// microseconds, SettleMs is the inter-step delay during link bring-up.
	ClockDelayUs uint32
	SettleMs     uint32

	// Optional bring-up collaborators.
	LEDPin    string
	ButtonPin string

	Trace bool
}

// Default returns the configuration used when no file is given: GPIO
// transport, a 100 µs clock delay, and no LED/button.
func Default() Config {
	return Config{
		Transport:    TransportGPIO,
		SWCLKPin:     "GPIO24",
		SWDIOPin:     "GPIO25",
		ClockDelayUs: 100,
		SettleMs:     10,
	}
}

// Load reads path as an INI file and overlays it onto Default(). Missing
// keys keep their default value; an unreadable or malformed file is a hard
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	sec := f.Section("transport")
	cfg.Transport = Transport(sec.Key("kind").MustString(string(cfg.Transport)))
	cfg.SWCLKPin = sec.Key("swclk_pin").MustString(cfg.SWCLKPin)
	cfg.SWDIOPin = sec.Key("swdio_pin").MustString(cfg.SWDIOPin)
	cfg.FTDIDevice = sec.Key("ftdi_device").MustInt(cfg.FTDIDevice)
	cfg.SWCLKBit = uint(sec.Key("swclk_bit").MustUint(uint(cfg.SWCLKBit)))
	cfg.SWDIOBit = uint(sec.Key("swdio_bit").MustUint(uint(cfg.SWDIOBit)))

	timing := f.Section("timing")
	cfg.ClockDelayUs = uint32(timing.Key("clock_delay_us").MustUint(uint(cfg.ClockDelayUs)))
	cfg.SettleMs = uint32(timing.Key("settle_ms").MustUint(uint(cfg.SettleMs)))

	indicators := f.Section("indicators")
	cfg.LEDPin = indicators.Key("led_pin").MustString("")
	cfg.ButtonPin = indicators.Key("button_pin").MustString("")

	cfg.Trace = f.Section("").Key("trace").MustBool(false)

	if cfg.Transport != TransportGPIO && cfg.Transport != TransportFTDI {
		return Config{}, fmt.Errorf("config: unknown transport %q", cfg.Transport)
	}
	return cfg, nil
}
