// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package swd

import "fmt"

// resetClocks is the minimum clock count for a reset-DP sequence.
const resetClocks = 50

// lineResetClocks is the clock count for the line-reset sequence.
const lineResetClocks = 12

// InitError names the failing step of link bring-up.
type InitError struct {
	Step string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("swd: link init failed at %s: %v", e.Step, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// ResetDP emits >= 50 clocks with SWDIO held high.
func (l *Link) ResetDP() {
	l.bp.setDir(hostDrives)
	l.bp.pins.SetData(true)
	l.bp.clocks(resetClocks)
}

// jtagToSWD emits the 16-bit JTAG->SWD magic sequence, LSB-first.
func (l *Link) jtagToSWD() {
	l.bp.setDir(hostDrives)
	l.bp.writeBits(jtagToSWDMagic, 16, lsbFirst)
}

// LineReset drives SWDIO low and emits 12 clocks.
func (l *Link) LineReset() {
	l.bp.setDir(hostDrives)
	l.bp.pins.SetData(false)
	l.bp.clocks(lineResetClocks)
}

// InitializeSWD drives the JTAG->SWD switch sequence and line reset, raw
// enough to silence a JTAG-DP and bring up an SWD-DP.
// It never fails: there is nothing on the wire to ACK yet.
func (l *Link) InitializeSWD(sleep Sleeper, settleMs uint32) {
	l.ResetDP()
	sleep.SleepMillis(settleMs)

	l.jtagToSWD()
	sleep.SleepMillis(settleMs)

	l.ResetDP()
	sleep.SleepMillis(settleMs)

	l.LineReset()
	sleep.SleepMillis(settleMs)
}

// SetupDPAndMemAP reads IDCODE, powers up the debug system, and configures
// the default MEM-AP. Returns the IDCODE so callers can log/verify it. Any
// non-OK ACK aborts with *InitError naming the step.
func (l *Link) SetupDPAndMemAP(sleep Sleeper, settleMs uint32) (idcode uint32, err error) {
	idcode, err = l.ReadDP(DPIdCode)
	if err != nil {
		return 0, &InitError{Step: "read IDCODE", Err: err}
	}
	sleep.SleepMillis(settleMs)

	if err = l.WriteDP(DPCtrlStat, CtrlStatCSysPwrUpReq|CtrlStatCDbgPwrUpReq); err != nil {
		return idcode, &InitError{Step: "write CTRL/STAT", Err: err}
	}
	sleep.SleepMillis(settleMs)

	ctrlStat, err := l.ReadDP(DPCtrlStat)
	if err != nil {
		return idcode, &InitError{Step: "read CTRL/STAT", Err: err}
	}
	const wantAck = CtrlStatCSysPwrUpAck | CtrlStatCDbgPwrUpAck
	if ctrlStat&wantAck != wantAck {
		return idcode, &InitError{Step: "read CTRL/STAT", Err: fmt.Errorf("power-up not acknowledged: CTRL/STAT=0x%08x", ctrlStat)}
	}
	sleep.SleepMillis(settleMs)

	if err = l.WriteDP(DPSelect, 0x00000000); err != nil {
		return idcode, &InitError{Step: "write SELECT", Err: err}
	}
	sleep.SleepMillis(settleMs)

	if err = l.WriteAP(APCsw, cswPrivilegedDebug|cswSize32); err != nil {
		return idcode, &InitError{Step: "write CSW", Err: err}
	}
	sleep.SleepMillis(settleMs)

	return idcode, nil
}

// ClearAbort writes the DP ABORT register to clear the sticky error flags
// left behind by a FAULT ack.
func (l *Link) ClearAbort() error {
	return l.WriteDP(DPAbort, AbortStkErrClr|AbortStkCmpClr|AbortWDErrClr|AbortOrunErrClr)
}
