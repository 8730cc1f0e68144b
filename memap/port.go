// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package memap

import (
	"fmt"

	"github.com/armswd/swdprobe/swd"
)

// maxWaitRetries bounds the WAIT retry loop at the posted-read site: a
// fixed small cap, never unbounded.
const maxWaitRetries = 5

// tarWindow is the MEM-AP auto-increment window size: 1 KiB.
const tarWindow = 0x400

// Port is the MEM-AP memory port: CSW/TAR/DRW-mediated memory access
// with posted-read handling, a host-side register shadow, and 1 KiB
// auto-increment window tracking.
type Port struct {
	link *swd.Link
	sh   shadow
}

// NewPort builds a Port over an already-initialized swd.Link.
func NewPort(link *swd.Link) *Port {
	return &Port{link: link}
}

// Reset invalidates the host-side shadow. Call after every swd.Link
// re-init: the MEM-AP's actual CSW/TAR state is unknown until rewritten.
func (p *Port) Reset() {
	p.sh.invalidate()
}

func windowOf(addr uint32) uint32 {
	return addr &^ (tarWindow - 1)
}

// ensureMode writes CSW only if the shadow disagrees with the requested
// mode, omitting the redundant write when the shadow already matches.
func (p *Port) ensureMode(mode IncrementMode) error {
	want := cswFor(mode)
	if p.sh.valid && p.sh.csw == want && p.sh.mode == mode {
		return nil
	}
	if err := p.link.WriteAP(swd.APCsw, want); err != nil {
		return fmt.Errorf("memap: write CSW: %w", err)
	}
	p.sh.valid = true
	p.sh.csw = want
	p.sh.mode = mode
	return nil
}

// setTAR writes TAR unconditionally and records addr in the shadow; the
// 1 KiB window tracking lives in the stream loops. Unlike CSW, TAR is written once per stream start and again
// at every auto-increment window boundary, so there's no point shadowing
// "did we already write this value" here.
func (p *Port) setTAR(addr uint32) error {
	if err := p.link.WriteAP(swd.APTar, addr); err != nil {
		return fmt.Errorf("memap: write TAR: %w", err)
	}
	p.sh.tar = addr
	return nil
}

// retryOnWait re-issues op up to maxWaitRetries times while it keeps
// returning AckWait, surfacing *swd.WaitAckError once the cap is exceeded.
func retryOnWait(op func() (uint32, error)) (uint32, error) {
	var lastErr error
	for i := 0; i <= maxWaitRetries; i++ {
		v, err := op()
		if err == nil {
			return v, nil
		}
		lastErr = err
		if ack, ok := swd.AckOf(err); !ok || ack != swd.AckWait {
			return 0, err
		}
	}
	return 0, lastErr
}

// Read32 reads one 32-bit word from target memory at addr, handling the
// posted-read skew internally: callers never see a raw AP-DRW read.
func (p *Port) Read32(addr uint32) (uint32, error) {
	if err := p.ensureMode(IncrementOff); err != nil {
		return 0, err
	}
	if err := p.setTAR(addr); err != nil {
		return 0, err
	}

	if _, err := retryOnWait(func() (uint32, error) { return p.link.ReadAP(swd.APDrw) }); err != nil {
		return 0, fmt.Errorf("memap: read32 0x%08x: initiate: %w", addr, err)
	}
	v, err := retryOnWait(func() (uint32, error) { return p.link.ReadDP(swd.DPRdBuff) })
	if err != nil {
		return 0, fmt.Errorf("memap: read32 0x%08x: RDBUFF: %w", addr, err)
	}
	return v, nil
}

// Write32 writes a 32-bit word to target memory at addr.
func (p *Port) Write32(addr, value uint32) error {
	if err := p.ensureMode(IncrementOff); err != nil {
		return err
	}
	if err := p.setTAR(addr); err != nil {
		return err
	}
	if err := p.link.WriteAP(swd.APDrw, value); err != nil {
		return fmt.Errorf("memap: write32 0x%08x: %w", addr, err)
	}
	return nil
}

// WriteStream32 writes words starting at base, using TAR auto-increment and
// re-issuing TAR whenever the next address crosses a 1 KiB window boundary.
func (p *Port) WriteStream32(base uint32, words []uint32) error {
	if len(words) == 0 {
		return nil
	}
	if err := p.ensureMode(IncrementSingle); err != nil {
		return err
	}
	if err := p.setTAR(base); err != nil {
		return err
	}

	window := windowOf(base)
	addr := base
	for i, w := range words {
		if windowOf(addr) != window {
			if err := p.setTAR(addr); err != nil {
				return err
			}
			window = windowOf(addr)
		}
		if err := p.link.WriteAP(swd.APDrw, w); err != nil {
			return fmt.Errorf("memap: write_stream word %d at 0x%08x: %w", i, addr, err)
		}
		addr += 4
	}
	return nil
}

// ReadStream32 reads n words starting at base, symmetric to WriteStream32
// with the posted-read skew: the first DRW read is discarded, subsequent
// DRW reads return the previous address's value, and the final value comes
// from RDBUFF.
func (p *Port) ReadStream32(base uint32, n int) ([]uint32, error) {
	if n <= 0 {
		return nil, nil
	}
	if err := p.ensureMode(IncrementSingle); err != nil {
		return nil, err
	}
	if err := p.setTAR(base); err != nil {
		return nil, err
	}

	results := make([]uint32, n)
	window := windowOf(base)

	if _, err := retryOnWait(func() (uint32, error) { return p.link.ReadAP(swd.APDrw) }); err != nil {
		return nil, fmt.Errorf("memap: read_stream: initiate base 0x%08x: %w", base, err)
	}

	addr := base + 4
	for i := 0; i < n-1; i++ {
		if windowOf(addr) != window {
			if err := p.setTAR(addr); err != nil {
				return nil, err
			}
			window = windowOf(addr)
		}
		v, err := retryOnWait(func() (uint32, error) { return p.link.ReadAP(swd.APDrw) })
		if err != nil {
			return nil, fmt.Errorf("memap: read_stream word %d: %w", i, err)
		}
		results[i] = v
		addr += 4
	}

	v, err := retryOnWait(func() (uint32, error) { return p.link.ReadDP(swd.DPRdBuff) })
	if err != nil {
		return nil, fmt.Errorf("memap: read_stream: final RDBUFF: %w", err)
	}
	results[n-1] = v
	return results, nil
}
