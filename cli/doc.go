// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package cli is the command surface: it maps whitespace-separated
// text commands read from any io.Reader to the link bring-up, core-debug,
// and loader operations, and writes diagnostics to any io.Writer. No
// command failure exits the REPL; errors are reported and the loop
// continues.
package cli
