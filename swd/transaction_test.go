// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package swd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/armswd/swdprobe/internal/swdtest"
)

func TestReadDPIdCode(t *testing.T) {
	target := swdtest.NewTarget()
	link := NewLink(target, target, 1)

	v, err := link.ReadDP(DPIdCode)
	require.NoError(t, err)
	require.Equal(t, target.IDCode, v)
}

func TestWriteThenReadAPMemory(t *testing.T) {
	target := swdtest.NewTarget()
	link := NewLink(target, target, 1)

	require.NoError(t, link.WriteAP(APCsw, 0x22000002))
	require.NoError(t, link.WriteAP(APTar, 0x20000000))
	require.NoError(t, link.WriteAP(APDrw, 0xDEADBEEF))

	require.Equal(t, uint32(0xDEADBEEF), target.Memory[0x20000000])
}

// TestPostedReadLaw checks that mem_read(A); mem_read(B) returns value@A
// for the first call and value@B for the second, using the canonical
// discard-then-RDBUFF sequence.
func TestPostedReadLaw(t *testing.T) {
	target := swdtest.NewTarget()
	target.Memory[0x1000] = 0x11111111
	target.Memory[0x2000] = 0x22222222
	link := NewLink(target, target, 1)

	require.NoError(t, link.WriteAP(APCsw, 0x22000002))

	readAt := func(addr uint32) uint32 {
		require.NoError(t, link.WriteAP(APTar, addr))
		_, err := link.ReadAP(APDrw) // discard: returns previous latch
		require.NoError(t, err)
		v, err := link.ReadDP(DPRdBuff)
		require.NoError(t, err)
		return v
	}

	require.Equal(t, uint32(0x11111111), readAt(0x1000))
	require.Equal(t, uint32(0x22222222), readAt(0x2000))
}

// TestTurnaroundInvariant checks that a read answered with a WAIT ack emits
// exactly one extra clock beyond header+turnaround+ack.
func TestTurnaroundInvariant(t *testing.T) {
	target := swdtest.NewTarget()
	target.ForceAck(true, APDrw, 0b010) // WAIT on first AP-DRW access
	link := NewLink(target, target, 1)

	before := target.EdgeCount
	_, err := link.ReadAP(APDrw)
	require.Error(t, err)
	var waitErr *WaitAckError
	require.ErrorAs(t, err, &waitErr)

	got := target.EdgeCount - before
	want := 8 + 1 + 3 + 1 // header + turnaround + ack + extra(WAIT)
	require.Equal(t, want, got)
}

func TestFaultAckSurfacedImmediately(t *testing.T) {
	target := swdtest.NewTarget()
	target.ForceAck(false, DPCtrlStat, 0b100) // FAULT on CTRL/STAT write
	link := NewLink(target, target, 1)

	err := link.WriteDP(DPCtrlStat, 0x50000000)
	require.Error(t, err)
	var faultErr *FaultAckError
	require.ErrorAs(t, err, &faultErr)
}

func TestClearAbort(t *testing.T) {
	target := swdtest.NewTarget()
	link := NewLink(target, target, 1)
	require.NoError(t, link.ClearAbort())
}
