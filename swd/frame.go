// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package swd

import "math/bits"

// header8 is the 8-bit SWD request header, bit layout MSB first:
//
//	start=1 | APnDP | RnW | A[0] | A[1] | parity | stop=0 | park=1
type header8 struct {
	apnDP  bool
	rnw    bool
	a      uint8 // 2 bits
	parity uint8 // 1 bit
}

// newHeader builds the header for one AP/DP register access. It never
// touches the wire; the caller emits the result MSB-first via a bitPipe.
func newHeader(apnDP, rnw bool, a uint8) header8 {
	a &= 0x3
	p := boolBit(apnDP) ^ boolBit(rnw) ^ (a & 1) ^ ((a >> 1) & 1)
	return header8{apnDP: apnDP, rnw: rnw, a: a, parity: p & 1}
}

// encode packs the header into the 8-bit wire byte, MSB first: start,
// APnDP, RnW, A[0], A[1], parity, stop, park.
func (h header8) encode() byte {
	var b byte
	b |= 1 << 7 // start
	b |= boolByte(h.apnDP) << 6
	b |= boolByte(h.rnw) << 5
	b |= (h.a & 1) << 4
	b |= ((h.a >> 1) & 1) << 3
	b |= (h.parity & 1) << 2
	b |= 0 << 1 // stop
	b |= 1 << 0 // park
	return b
}

func boolBit(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// dataParity returns the even parity of a 32-bit data word: popcount(x) mod
// 2. Used to generate the data-phase parity bit on writes; the parity bit
// of a read is not checked.
func dataParity(x uint32) uint8 {
	return uint8(bits.OnesCount32(x) & 1)
}
