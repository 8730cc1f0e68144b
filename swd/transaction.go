// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package swd

// Link is the wire-level SWD driver: it owns the bit pipe and the bus
// direction state machine, and exposes exactly four primitives (ReadDP,
// WriteDP, ReadAP, WriteAP) to every higher layer. Nothing above Link ever
// touches SWCLK/SWDIO directly.
type Link struct {
	bp *bitPipe
}

// NewLink builds a Link over the given pin contract. clockDelayUs is the
// CLOCK_DELAY half-cycle width in microseconds.
func NewLink(pins Pins, sleep Sleeper, clockDelayUs uint32) *Link {
	return &Link{bp: newBitPipe(pins, sleep, clockDelayUs)}
}

// idle leaves the bus host-driven with SWDIO high, the required state on
// every successful transaction exit.
func (l *Link) idle() {
	l.bp.setDir(hostDrives)
	l.bp.pins.SetData(true)
}

// readTransaction runs one SWD read sequence (header, turnaround, ack,
// data, parity) for either AP or DP.
func (l *Link) readTransaction(op string, apnDP bool, a uint8) (uint32, error) {
	h := newHeader(apnDP, true, a)
	l.bp.setDir(hostDrives)
	l.bp.writeBits(uint32(h.encode()), 8, msbFirst)

	l.bp.setDir(targetDrives)
	l.bp.clocks(1) // turnaround: host -> target

	ack := decodeAck(l.bp.readBits(3))
	if ack != AckOK {
		if ack == AckWait {
			l.bp.clocks(1) // preserve wire alignment on WAIT
		}
		l.idle()
		return 0, AckError(op, ack)
	}

	data := l.bp.readBits(32)
	_ = l.bp.readBits(1) // parity, not checked
	l.bp.clocks(1)       // unused parity-pulse slot
	l.idle()
	return data, nil
}

// writeTransaction runs one SWD write sequence (header, turnaround, ack,
// data, parity) for either AP or DP.
func (l *Link) writeTransaction(op string, apnDP bool, a uint8, data uint32) error {
	h := newHeader(apnDP, false, a)
	l.bp.setDir(hostDrives)
	l.bp.writeBits(uint32(h.encode()), 8, msbFirst)

	l.bp.setDir(targetDrives)
	l.bp.clocks(1) // turnaround: host -> target

	ack := decodeAck(l.bp.readBits(3))
	if ack != AckOK {
		l.bp.clocks(1) // turnaround back to host is still required
		l.idle()
		return AckError(op, ack)
	}

	l.bp.clocks(1) // turnaround: target -> host
	l.bp.setDir(hostDrives)
	l.bp.writeBits(data, 32, lsbFirst)
	l.bp.writeBits(uint32(dataParity(data)), 1, lsbFirst)
	l.idle()
	return nil
}

// ReadDP issues a DP read at address a (one of DPIdCode, DPCtrlStat,
// DPRdBuff).
func (l *Link) ReadDP(a uint8) (uint32, error) {
	return l.readTransaction("read DP", false, a)
}

// WriteDP issues a DP write at address a (one of DPAbort, DPSelect,
// DPCtrlStat).
func (l *Link) WriteDP(a uint8, data uint32) error {
	return l.writeTransaction("write DP", false, a, data)
}

// ReadAP issues an AP read at address a (one of APCsw, APTar, APDrw). The
// result is the posted-read value from the *previous* AP-read, per ARM
// ADIv5; callers needing the current value must follow with ReadDP(DPRdBuff).
func (l *Link) ReadAP(a uint8) (uint32, error) {
	return l.readTransaction("read AP", true, a)
}

// WriteAP issues an AP write at address a (one of APCsw, APTar, APDrw).
func (l *Link) WriteAP(a uint8, data uint32) error {
	return l.writeTransaction("write AP", true, a, data)
}
