// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cli

// Indicator models optional button/LED bring-up: a seam so cmd/swdprobe can
// wire a real GPIO pin without the REPL knowing about hardware at all.
type Indicator interface {
	// Ready reports the probe is initialized and waiting for commands.
	Ready()
	// Busy reports whether a transaction is in flight.
	Busy(active bool)
}

// NullIndicator is a no-op Indicator used when no LED/button is configured.
type NullIndicator struct{}

func (NullIndicator) Ready()      {}
func (NullIndicator) Busy(bool) {}
