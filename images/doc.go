// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package images holds the tiny built-in stub payloads the "load <name>"
// command resolves a name to. Pre-baked target payload blobs are out of
// scope for the core; this package supplies the minimum needed
// to exercise loader.Loader end to end without an external asset pipeline.
package images
