// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package coredebug

import (
	"fmt"

	"github.com/armswd/swdprobe/memap"
	"github.com/armswd/swdprobe/swd"
)

// State is the observable core state, derived from DHCSR bits.
type State int

const (
	Running State = iota
	Halted
	Sleeping
	Locked
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Sleeping:
		return "sleeping"
	case Locked:
		return "locked"
	default:
		return "unknown"
	}
}

// Status is a snapshot of DHCSR: the derived State plus the raw register,
// returned by Controller.Status for the "status"/"d" command.
type Status struct {
	State State
	DHCSR uint32
}

// Controller is the Cortex-M core-debug controller: halt/continue/
// reset-halt/step over DHCSR, core-register access via DCRSR/DCRDR, and
// execution bring-up on top of a memap.Port.
//
// Once a DHCSR read reports S_LOCKUP, Halt, Continue and Step return an
// error without touching the target. Only ResetHalt clears that state;
// re-running link bring-up (swd.Link, memap.Port.Reset) does not.
type Controller struct {
	port   *memap.Port
	link   *swd.Link
	sleep  swd.Sleeper
	locked bool

	// regPollDelayUs is the delay observed between a DCRSR register-select
	// write and the DCRDR read/write that follows, standing in for polling
	// DHCSR.S_REGRDY: in practice a short delay suffices for this target.
	regPollDelayUs uint32
}

// NewController builds a Controller. link is used only to clear the DP
// ABORT register after a FAULT ack.
func NewController(port *memap.Port, link *swd.Link, sleep swd.Sleeper) *Controller {
	return &Controller{port: port, link: link, sleep: sleep, regPollDelayUs: 10}
}

// clearAbortOnFault calls swd.Link.ClearAbort once when err carries a FAULT
// ack, then returns err unchanged.
func (c *Controller) clearAbortOnFault(err error) error {
	if ack, ok := swd.AckOf(err); ok && ack == swd.AckFault {
		_ = c.link.ClearAbort()
	}
	return err
}

func (c *Controller) readDHCSR() (uint32, error) {
	v, err := c.port.Read32(addrDHCSR)
	return v, c.clearAbortOnFault(err)
}

func (c *Controller) writeDHCSR(bits uint32) error {
	return c.clearAbortOnFault(c.port.Write32(addrDHCSR, dhcsrKey|bits))
}

func stateFromDHCSR(v uint32) State {
	switch {
	case v&dhcsrSLockUp != 0:
		return Locked
	case v&dhcsrSSleep != 0:
		return Sleeping
	case v&dhcsrSHalt != 0:
		return Halted
	default:
		return Running
	}
}

// Status reads DHCSR and reports the derived state.
func (c *Controller) Status() (Status, error) {
	v, err := c.readDHCSR()
	if err != nil {
		return Status{}, fmt.Errorf("coredebug: status: %w", err)
	}
	st := stateFromDHCSR(v)
	if st == Locked {
		c.locked = true
	}
	return Status{State: st, DHCSR: v}, nil
}

func (c *Controller) checkLocked() error {
	if c.locked {
		return fmt.Errorf("coredebug: core is locked up, reset-halt required")
	}
	return nil
}

// Halt requests C_DEBUGEN|C_HALT and confirms S_HALT is set afterward.
func (c *Controller) Halt() error {
	if err := c.checkLocked(); err != nil {
		return err
	}
	if err := c.writeDHCSR(dhcsrCDebugEn | dhcsrCHalt); err != nil {
		return fmt.Errorf("coredebug: halt: %w", err)
	}
	v, err := c.readDHCSR()
	if err != nil {
		return fmt.Errorf("coredebug: halt: confirm: %w", err)
	}
	if v&dhcsrSLockUp != 0 {
		c.locked = true
		return fmt.Errorf("coredebug: halt: core locked up")
	}
	if v&dhcsrSHalt == 0 {
		return fmt.Errorf("coredebug: halt: S_HALT not set after halt request")
	}
	return nil
}

// Continue clears C_HALT and confirms S_HALT cleared.
// Only valid from HALTED.
func (c *Controller) Continue() error {
	if err := c.checkLocked(); err != nil {
		return err
	}
	if err := c.writeDHCSR(dhcsrCDebugEn); err != nil {
		return fmt.Errorf("coredebug: continue: %w", err)
	}
	v, err := c.readDHCSR()
	if err != nil {
		return fmt.Errorf("coredebug: continue: confirm: %w", err)
	}
	if v&dhcsrSHalt != 0 {
		return fmt.Errorf("coredebug: continue: S_HALT still set")
	}
	return nil
}

// ResetHalt enables halt-on-reset via DEMCR.VC_CORERESET, then issues a
// system reset through AIRCR, leaving the core HALTED. Valid from any state, including LOCKED: a reset can itself
// recover a lockup.
func (c *Controller) ResetHalt() error {
	if err := c.port.Write32(addrDEMCR, demcrVCCoreReset); err != nil {
		return fmt.Errorf("coredebug: reset-halt: enable VC_CORERESET: %w", err)
	}
	if err := c.port.Write32(addrAIRCR, aircrSysResetReq); err != nil {
		return fmt.Errorf("coredebug: reset-halt: write AIRCR: %w", err)
	}
	c.locked = false
	v, err := c.readDHCSR()
	if err != nil {
		return fmt.Errorf("coredebug: reset-halt: confirm: %w", err)
	}
	if v&dhcsrSHalt == 0 {
		return fmt.Errorf("coredebug: reset-halt: S_HALT not set after reset")
	}
	return nil
}

// Step executes one instruction while halted. Only valid
// from HALTED.
func (c *Controller) Step() error {
	if err := c.checkLocked(); err != nil {
		return err
	}
	if err := c.writeDHCSR(dhcsrCDebugEn | dhcsrCStep); err != nil {
		return fmt.Errorf("coredebug: step: %w", err)
	}
	v, err := c.readDHCSR()
	if err != nil {
		return fmt.Errorf("coredebug: step: confirm: %w", err)
	}
	if v&dhcsrSHalt == 0 {
		return fmt.Errorf("coredebug: step: S_HALT not set after step")
	}
	return nil
}

// ReadRegister reads core register r via the DCRSR/DCRDR protocol: write
// DCRSR=r (REGWnR=0), wait a fixed delay for S_REGRDY to latch (the bit is
// not polled), then read DCRDR.
func (c *Controller) ReadRegister(r Reg) (uint32, error) {
	if err := c.port.Write32(addrDCRSR, uint32(r)); err != nil {
		return 0, fmt.Errorf("coredebug: read %s: write DCRSR: %w", r, err)
	}
	c.sleep.SleepMicros(c.regPollDelayUs)
	v, err := c.port.Read32(addrDCRDR)
	if err != nil {
		return 0, fmt.Errorf("coredebug: read %s: read DCRDR: %w", r, err)
	}
	return v, nil
}

// WriteRegister writes value into core register r: write DCRDR=value, then
// DCRSR=r|REGWnR, then wait a fixed delay for S_REGRDY to latch (the bit is
// not polled).
func (c *Controller) WriteRegister(r Reg, value uint32) error {
	if err := c.port.Write32(addrDCRDR, value); err != nil {
		return fmt.Errorf("coredebug: write %s: write DCRDR: %w", r, err)
	}
	if err := c.port.Write32(addrDCRSR, uint32(r)|dcrsrWrite); err != nil {
		return fmt.Errorf("coredebug: write %s: write DCRSR: %w", r, err)
	}
	c.sleep.SleepMicros(c.regPollDelayUs)
	return nil
}

// InitExecution writes PC and MSP through the register-write protocol, then
// relocates VTOR to base. Callers supply pc/msp/vtorBase explicitly: they
// are properties of the loaded image, not of this protocol.
func (c *Controller) InitExecution(pc, msp, vtorBase uint32) error {
	if err := c.WriteRegister(PC, pc); err != nil {
		return fmt.Errorf("coredebug: init execution: %w", err)
	}
	if err := c.WriteRegister(MSP, msp); err != nil {
		return fmt.Errorf("coredebug: init execution: %w", err)
	}
	if err := c.port.Write32(addrVTOR, vtorBase); err != nil {
		return fmt.Errorf("coredebug: init execution: write VTOR: %w", err)
	}
	return nil
}
