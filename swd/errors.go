// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package swd

import (
	"errors"
	"fmt"
)

// WaitAckError reports a target WAIT response. Link returns it for every
// WAIT ack; the MEM-AP port (memap package) retries its reads locally and
// passes this on once its cap is exceeded. Writes are not retried.
type WaitAckError struct {
	Op string
}

func (e *WaitAckError) Error() string {
	return fmt.Sprintf("swd: %s: target WAIT", e.Op)
}

// FaultAckError reports a target FAULT response. FAULT is sticky in
// CTRL/STAT and is never retried automatically.
type FaultAckError struct {
	Op string
}

func (e *FaultAckError) Error() string {
	return fmt.Sprintf("swd: %s: target FAULT", e.Op)
}

// ProtocolError reports an ACK that decoded to a value other than OK/WAIT/
// FAULT, or another framing-level violation.
type ProtocolError struct {
	Op   string
	Ack  Ack
	Note string
}

func (e *ProtocolError) Error() string {
	if e.Note != "" {
		return fmt.Sprintf("swd: %s: protocol error: %s", e.Op, e.Note)
	}
	return fmt.Sprintf("swd: %s: protocol error: unexpected ack %s", e.Op, e.Ack)
}

// AckError wraps the three kinds above in one error, matching the ack the
// target actually sent. Use errors.As to recover the concrete type, or
// AckOf to pull the raw Ack back out regardless of kind.
func AckError(op string, ack Ack) error {
	switch ack {
	case AckOK:
		return nil
	case AckWait:
		return &WaitAckError{Op: op}
	case AckFault:
		return &FaultAckError{Op: op}
	default:
		return &ProtocolError{Op: op, Ack: ack}
	}
}

// AckOf extracts the Ack carried by an error produced by AckError, if any.
func AckOf(err error) (Ack, bool) {
	var w *WaitAckError
	if errors.As(err, &w) {
		return AckWait, true
	}
	var f *FaultAckError
	if errors.As(err, &f) {
		return AckFault, true
	}
	var p *ProtocolError
	if errors.As(err, &p) {
		return p.Ack, true
	}
	return 0, false
}
