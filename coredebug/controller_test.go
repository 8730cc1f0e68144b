// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package coredebug

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/armswd/swdprobe/internal/swdtest"
	"github.com/armswd/swdprobe/memap"
	"github.com/armswd/swdprobe/swd"
)

func newTestController(target *swdtest.Target) *Controller {
	link := swd.NewLink(target, target, 1)
	port := memap.NewPort(link)
	return NewController(port, link, target)
}

// TestHalt writes DHCSR=0xA05F0003 and checks that a subsequent DHCSR
// read reports S_HALT set.
func TestHalt(t *testing.T) {
	target := swdtest.NewTarget()
	c := newTestController(target)

	require.NoError(t, c.Halt())
	require.Equal(t, uint32(dhcsrSHalt|dhcsrCDebugEn|dhcsrCHalt), target.Memory[addrDHCSR])
}

func TestContinue(t *testing.T) {
	target := swdtest.NewTarget()
	c := newTestController(target)

	require.NoError(t, c.Continue())
	st, err := c.Status()
	require.NoError(t, err)
	require.Equal(t, Running, st.State)
}

func TestResetHalt(t *testing.T) {
	target := swdtest.NewTarget()
	target.Memory[addrDHCSR] = dhcsrSHalt
	c := newTestController(target)

	require.NoError(t, c.ResetHalt())
	require.Equal(t, uint32(demcrVCCoreReset), target.Memory[addrDEMCR])
	require.Equal(t, uint32(aircrSysResetReq), target.Memory[addrAIRCR])
}

func TestStep(t *testing.T) {
	target := swdtest.NewTarget()
	c := newTestController(target)

	require.NoError(t, c.Step())
}

func TestStatusReportsLockup(t *testing.T) {
	target := swdtest.NewTarget()
	target.Memory[addrDHCSR] = dhcsrSLockUp
	c := newTestController(target)

	st, err := c.Status()
	require.NoError(t, err)
	require.Equal(t, Locked, st.State)

	require.Error(t, c.Halt())
}

func TestReadWriteRegisterRoundTrip(t *testing.T) {
	target := swdtest.NewTarget()
	c := newTestController(target)

	require.NoError(t, c.WriteRegister(PC, 0x20000041))
	require.Equal(t, uint32(PC)|dcrsrWrite, target.Memory[addrDCRSR])
	require.Equal(t, uint32(0x20000041), target.Memory[addrDCRDR])

	// Simulate the core having latched r5 into DCRDR for a register read.
	target.Memory[addrDCRDR] = 0xABCDEF01
	v, err := c.ReadRegister(R5)
	require.NoError(t, err)
	require.Equal(t, uint32(0xABCDEF01), v)
	require.Equal(t, uint32(R5), target.Memory[addrDCRSR])
}

func TestInitExecution(t *testing.T) {
	target := swdtest.NewTarget()
	c := newTestController(target)

	require.NoError(t, c.InitExecution(0x20000041, 0x20004000, 0x20000000))
	require.Equal(t, uint32(0x20000000), target.Memory[addrVTOR])
}

// TestHaltClearsAbortOnFault exercises the supplemented ClearAbort-on-FAULT
// behavior: a FAULT ack during halt triggers exactly one ABORT
// write, and the original error still surfaces to the caller.
func TestHaltClearsAbortOnFault(t *testing.T) {
	target := swdtest.NewTarget()
	target.ForceAck(true, swd.APDrw, 0b100) // FAULT on the DHCSR write's DRW access
	c := newTestController(target)

	err := c.Halt()
	require.Error(t, err)
	ack, ok := swd.AckOf(err)
	require.True(t, ok)
	require.Equal(t, swd.AckFault, ack)

	var abortWrites int
	for _, a := range target.Log {
		if !a.APnDP && !a.RnW && a.A == swd.DPAbort {
			abortWrites++
		}
	}
	require.Equal(t, 1, abortWrites)
}
