// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package coredebug implements the Cortex-M core-debug controller:
// halt/continue/reset-halt/step over DHCSR, core-register access via
// DCRSR/DCRDR, and execution bring-up (PC/MSP/VTOR) on top of a memap.Port.
package coredebug
