// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package swd

import "fmt"

// Ack is the 3-bit SWD transaction response, decoded into a tagged variant
// instead of the firmware's raw uint8_t so callers pattern-match OK/WAIT/
// FAULT instead of comparing magic numbers.
type Ack uint8

const (
	// AckOK is ack 0b001: the transaction completed.
	AckOK Ack = 0b001
	// AckWait is ack 0b010: the target is not ready; retryable.
	AckWait Ack = 0b010
	// AckFault is ack 0b100: the target signalled a sticky fault; never
	// retried automatically.
	AckFault Ack = 0b100
)

// String implements fmt.Stringer.
func (a Ack) String() string {
	switch a {
	case AckOK:
		return "OK"
	case AckWait:
		return "WAIT"
	case AckFault:
		return "FAULT"
	default:
		return fmt.Sprintf("PROTOCOL(0x%x)", uint8(a))
	}
}

// Valid reports whether a decodes to one of the three SWD-defined values.
func (a Ack) Valid() bool {
	switch a {
	case AckOK, AckWait, AckFault:
		return true
	default:
		return false
	}
}

// decodeAck turns the 3 bits sampled off the wire into an Ack, preserving
// any out-of-band value as Ack itself so ProtocolError can report it.
func decodeAck(bits uint32) Ack {
	return Ack(bits & 0x7)
}
