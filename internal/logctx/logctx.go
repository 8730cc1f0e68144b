// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package logctx wires up the probe's structured logger. Every package in
// this module logs through a *logrus.Logger passed in at construction time
// rather than the global logrus instance, so tests can swap in a silent one.
package logctx

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the logger the command-line entrypoint passes down to the
// transport, link, and REPL layers. trace enables debug-level logging,
// toggleable at runtime via the "trace on"/"trace off" REPL command.
func New(trace bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if trace {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

// Silent returns a logger that discards everything, for tests and for any
// caller that wants the probe's internals to stay quiet.
func Silent() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(nopWriter{})
	return log
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
