// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package images

import "github.com/armswd/swdprobe/loader"

// Each stub image is a minimal Cortex-M vector table (initial MSP, reset
// vector with the Thumb bit set) followed by code ending in one infinite-loop
// instruction (Thumb "b ." = 0xE7FE) padded with a NOP (0xBF00) to fill the
// word; blink has one word of NOPs before the loop. They
// exist only so "load blink"/"load simple" have something real to stream
// and verify; pre-baked binary blobs are out of scope here.
var (
	simpleBytes = []byte{
		0x00, 0x40, 0x00, 0x20, // word0: MSP = 0x20004000
		0x09, 0x00, 0x00, 0x20, // word1: PC  = 0x20000009 (code at +8, thumb)
		0xFE, 0xE7, 0x00, 0xBF, // word2: b . ; nop
	}

	blinkBytes = []byte{
		0x00, 0x40, 0x00, 0x20, // word0: MSP = 0x20004000
		0x09, 0x00, 0x00, 0x20, // word1: PC  = 0x20000009
		0x00, 0xBF, 0x00, 0xBF, // word2: nop; nop (placeholder toggle loop)
		0xFE, 0xE7, 0x00, 0xBF, // word3: b . ; nop
	}
)

// Lookup resolves a "load <name>" argument to a built-in Image, defaulting
// to "simple" for any unrecognized name.
func Lookup(name string) (loader.Image, error) {
	switch name {
	case "blink":
		return loader.NewImageFromVectorTable(blinkBytes)
	case "simple":
		return loader.NewImageFromVectorTable(simpleBytes)
	default:
		return loader.NewImageFromVectorTable(simpleBytes)
	}
}

// Names lists the built-in image names, for help text.
func Names() []string {
	return []string{"blink", "simple"}
}
