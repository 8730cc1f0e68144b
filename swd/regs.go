// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package swd

// DP register addresses (A[3:2]). The DPBANKSEL
// field last written into SELECT governs what A=01/A=10 mean; this probe
// only ever uses the values below.
const (
	DPIdCode   uint8 = 0b00 // read: IDCODE
	DPAbort    uint8 = 0b00 // write: ABORT
	DPSelect   uint8 = 0b01 // write: SELECT
	DPCtrlStat uint8 = 0b10 // read/write: CTRL/STAT (bank 0)
	DPRdBuff   uint8 = 0b11 // read: RDBUFF (posted-read flush)
)

// MEM-AP register addresses within the currently selected AP bank.
const (
	APCsw uint8 = 0b00
	APTar uint8 = 0b10
	APDrw uint8 = 0b11
)

// CTRL/STAT and ABORT bits used during link bring-up and fault recovery.
const (
	CtrlStatCSysPwrUpReq = 1 << 30
	CtrlStatCSysPwrUpAck = 1 << 31
	CtrlStatCDbgPwrUpReq = 1 << 28
	CtrlStatCDbgPwrUpAck = 1 << 29

	AbortStkErrClr  = 1 << 2
	AbortStkCmpClr  = 1 << 1
	AbortWDErrClr   = 1 << 3
	AbortOrunErrClr = 1 << 4
)

// JTAG-to-SWD magic switch sequence, LSB-first, 16 bits.
const jtagToSWDMagic uint32 = 0xE79E

// Initial MEM-AP CSW values: 32-bit access, auto-increment off vs. single.
const (
	cswSize32          uint32 = 0x00000002
	cswAddrIncSingle   uint32 = 0x00000010
	cswPrivilegedDebug uint32 = 0x22000000
)
