// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Command swdprobe is a host-side ARM SWD debug probe: it bit-bangs two
// GPIO (or FTDI MPSSE) pins to talk ADIv5 SWD to a Cortex-M target, and
// exposes a line-oriented REPL for halt/continue/step/memory access.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	swdhost "periph.io/x/host/v3"

	"github.com/armswd/swdprobe/cli"
	"github.com/armswd/swdprobe/coredebug"
	"github.com/armswd/swdprobe/internal/config"
	"github.com/armswd/swdprobe/internal/logctx"
	"github.com/armswd/swdprobe/loader"
	"github.com/armswd/swdprobe/memap"
	"github.com/armswd/swdprobe/swd"
	"github.com/armswd/swdprobe/transport"
	"github.com/armswd/swdprobe/transport/ftdi"
	"github.com/armswd/swdprobe/transport/gpiopin"
)

func main() {
	configPath := flag.String("config", "", "path to an INI config file (defaults built in if unset)")
	trace := flag.Bool("trace", false, "enable debug-level logging")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *trace {
		cfg.Trace = true
	}

	log := logctx.New(cfg.Trace)

	if _, err := swdhost.Init(); err != nil {
		log.WithError(err).Fatal("driver bring-up failed")
	}

	pins, err := openTransport(cfg)
	if err != nil {
		log.WithError(err).Fatal("transport open failed")
	}

	if cfg.ButtonPin != "" {
		waitForButton(cfg.ButtonPin, log)
	}

	sleep := transport.RealSleeper{}
	link := swd.NewLink(pins, sleep, cfg.ClockDelayUs)
	port := memap.NewPort(link)
	control := coredebug.NewController(port, link, sleep)
	ld := loader.NewLoader(port, control)

	indicator := buildIndicator(cfg, log)

	repl := cli.NewREPL(link, port, control, ld, sleep, cfg.SettleMs, log, indicator)
	if err := repl.Run(os.Stdin, os.Stdout); err != nil {
		log.WithError(err).Error("REPL terminated")
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func openTransport(cfg config.Config) (*transport.PinPair, error) {
	switch cfg.Transport {
	case config.TransportFTDI:
		return ftdi.Open(cfg.FTDIDevice, cfg.SWCLKBit, cfg.SWDIOBit)
	default:
		return gpiopin.Open(cfg.SWCLKPin, cfg.SWDIOPin)
	}
}

// buildIndicator wires the optional LED activity indicator. A missing or
// unusable pin name just yields cli.NullIndicator rather than failing
// startup over a cosmetic feature.
func buildIndicator(cfg config.Config, log *logrus.Logger) cli.Indicator {
	if cfg.LEDPin == "" {
		return cli.NullIndicator{}
	}
	led := gpioreg.ByName(cfg.LEDPin)
	if led == nil {
		log.WithField("pin", cfg.LEDPin).Warn("configured LED pin not found; indicator disabled")
		return cli.NullIndicator{}
	}
	if err := led.Out(gpio.Low); err != nil {
		log.WithError(err).Warn("LED pin init failed; indicator disabled")
		return cli.NullIndicator{}
	}
	return &ledIndicator{led: led}
}

type ledIndicator struct {
	led gpio.PinIO
}

func (l *ledIndicator) Ready() {
	_ = l.led.Out(gpio.High)
}

func (l *ledIndicator) Busy(active bool) {
	_ = l.led.Out(gpio.Level(active))
}

// waitForButton blocks until the named pin reads High, polling rather than
// arming an edge callback — this runs once at startup, not on a hot path.
func waitForButton(name string, log *logrus.Logger) {
	btn := gpioreg.ByName(name)
	if btn == nil {
		log.WithField("pin", name).Warn("configured button pin not found; skipping start trigger")
		return
	}
	if err := btn.In(gpio.PullDown, gpio.NoEdge); err != nil {
		log.WithError(err).Warn("button pin init failed; skipping start trigger")
		return
	}
	log.Info("waiting for start button")
	for btn.Read() != gpio.High {
		time.Sleep(10 * time.Millisecond)
	}
}
