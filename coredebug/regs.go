// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package coredebug

import "fmt"

// Cortex-M core-debug and system-control register addresses.
const (
	addrDHCSR uint32 = 0xE000EDF0
	addrDCRSR uint32 = 0xE000EDF4
	addrDCRDR uint32 = 0xE000EDF8
	addrDEMCR uint32 = 0xE000EDFC
	addrVTOR  uint32 = 0xE000ED08
	addrAIRCR uint32 = 0xE000ED0C
)

// DHCSR requires this key in bits [31:16] on every write; writes without it
// are silently dropped by the target.
const dhcsrKey uint32 = 0xA05F << 16

// DHCSR control bits (low halfword) and status bits (high halfword).
const (
	dhcsrCDebugEn uint32 = 1 << 0
	dhcsrCHalt    uint32 = 1 << 1
	dhcsrCStep    uint32 = 1 << 2

	dhcsrSRegRdy uint32 = 1 << 16
	dhcsrSHalt   uint32 = 1 << 17
	dhcsrSSleep  uint32 = 1 << 18
	dhcsrSLockUp uint32 = 1 << 19
)

const demcrVCCoreReset uint32 = 1 << 0

// AIRCR reset value: 0x0AFA in [31:16], SYSRESETREQ (bit 2) set.
const aircrSysResetReq uint32 = 0x0AFA0004

// dcrsrWrite is OR'd into DCRSR's register-select field to mark a
// register-write (REGWnR) rather than a register-read.
const dcrsrWrite uint32 = 1 << 16

// Reg is a core-debug register selector: the general-purpose indexes 0-15
// plus the named Cortex-M core register aliases.
type Reg uint8

const (
	R0 Reg = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	SP   Reg = 0x0D
	LR   Reg = 0x0E
	PC   Reg = 0x0F
	XPSR Reg = 0x10
	MSP  Reg = 0x11
	PSP  Reg = 0x12
	// CONTROL/FAULTMASK/BASEPRI/PRIMASK share one packed 32-bit register.
	CONTROL   Reg = 0x14
	FAULTMASK Reg = 0x14
	BASEPRI   Reg = 0x14
	PRIMASK   Reg = 0x14
	FPCSR     Reg = 0x21
)

const fpRegBase Reg = 0x40 // S0..S31 accessed through the FP class, offset from here

// FReg returns the Reg selector for floating-point register n (S0..S31).
func FReg(n int) Reg {
	return fpRegBase + Reg(n)
}

var regNames = map[Reg]string{
	SP: "sp", LR: "lr", PC: "pc", XPSR: "xpsr", MSP: "msp", PSP: "psp",
	CONTROL: "control/faultmask/basepri/primask", FPCSR: "fpcsr",
}

func (r Reg) String() string {
	if name, ok := regNames[r]; ok {
		return name
	}
	if r < 16 {
		return fmt.Sprintf("r%d", uint8(r))
	}
	if r >= fpRegBase && r < fpRegBase+32 {
		return fmt.Sprintf("s%d", uint8(r-fpRegBase))
	}
	return fmt.Sprintf("reg(0x%02x)", uint8(r))
}
