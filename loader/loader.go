// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package loader

import (
	"fmt"

	"github.com/armswd/swdprobe/coredebug"
	"github.com/armswd/swdprobe/memap"
)

// RAMWindow is the base address every image is loaded to: the start of
// target SRAM.
const RAMWindow = RAMBase

// Loader implements the bulk RAM load + verify + execution bring-up
// sequence; the core is left halted at the image's entry point.
type Loader struct {
	port    *memap.Port
	control *coredebug.Controller
}

// NewLoader builds a Loader over an already set-up memap.Port and
// coredebug.Controller.
func NewLoader(port *memap.Port, control *coredebug.Controller) *Loader {
	return &Loader{port: port, control: control}
}

// Load halts the core, write-streams the image to RAMWindow, verifies it by
// reading it back, reset-halts, then brings up execution at
// img.EntryPC/img.InitialMSP with the vector table relocated to
// img.VTORBase.
func (l *Loader) Load(img Image) error {
	words, err := img.words()
	if err != nil {
		return err
	}

	if err := l.control.Halt(); err != nil {
		return fmt.Errorf("loader: load: %w", err)
	}

	if err := l.port.WriteStream32(RAMWindow, words); err != nil {
		return fmt.Errorf("loader: load: write image: %w", err)
	}

	readBack, err := l.port.ReadStream32(RAMWindow, len(words))
	if err != nil {
		return fmt.Errorf("loader: load: verify: %w", err)
	}
	for i, want := range words {
		if readBack[i] != want {
			return &VerificationMismatchError{Index: i, Want: want, Got: readBack[i]}
		}
	}

	if err := l.control.ResetHalt(); err != nil {
		return fmt.Errorf("loader: load: %w", err)
	}

	vtor := img.VTORBase
	if vtor == 0 {
		vtor = RAMWindow
	}
	if err := l.control.InitExecution(img.EntryPC, img.InitialMSP, vtor); err != nil {
		return fmt.Errorf("loader: load: %w", err)
	}
	return nil
}
