// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package loader implements the bulk RAM loader: halt, stream an image
// into target SRAM, verify by reading it back, reset-halt, then bring up
// execution at the image's entry point.
package loader
