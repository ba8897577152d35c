// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty

import (
	"math/bits"
	"sync"

	"github.com/bitmark-inc/powcheck/blockdigest"
	"github.com/bitmark-inc/powcheck/fault"
)

// MaximumBits - largest possible target, an all zero digest
const MaximumBits = 8 * blockdigest.Length

// Mask - the first N bits of a 256 bit value set to one
type Mask struct {
	bits  int
	width int // leading bytes containing set bits
	mask  [blockdigest.Length]byte
}

// NewMask - create a mask for n leading bits
func NewMask(n int) (*Mask, error) {
	if n < 0 || n > MaximumBits {
		return nil, fault.ErrInvalidTarget
	}

	m := &Mask{
		bits:  n,
		width: (n + 7) / 8,
	}
	for i := 0; i < n/8; i += 1 {
		m.mask[i] = 0xff
	}
	if partial := n % 8; 0 != partial {
		m.mask[n/8] = byte(0xff << uint(8-partial))
	}
	return m, nil
}

// Bits - number of leading bits covered
func (m *Mask) Bits() int {
	return m.bits
}

// Bytes - the full 32 byte mask
func (m *Mask) Bytes() [blockdigest.Length]byte {
	return m.mask
}

// Test - true if every masked bit of a big endian value is zero
func (m *Mask) Test(bigEndian [blockdigest.Length]byte) bool {
	for i := 0; i < m.width; i += 1 {
		if 0 != bigEndian[i]&m.mask[i] {
			return false
		}
	}
	return true
}

// Evaluator - tests digests against leading zero bit targets
//
// masks are built on first use and kept for the life of the evaluator
type Evaluator struct {
	sync.RWMutex
	masks [MaximumBits + 1]*Mask
}

// NewEvaluator - create an evaluator with an empty mask table
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Mask - fetch the mask for n bits, creating it if necessary
func (evaluator *Evaluator) Mask(n int) (*Mask, error) {
	if n < 0 || n > MaximumBits {
		return nil, fault.ErrInvalidTarget
	}

	evaluator.RLock()
	m := evaluator.masks[n]
	evaluator.RUnlock()
	if nil != m {
		return m, nil
	}

	evaluator.Lock()
	defer evaluator.Unlock()

	// another caller may have built it while unlocked
	if m := evaluator.masks[n]; nil != m {
		return m, nil
	}
	m, err := NewMask(n)
	if nil != err {
		return nil, err
	}
	evaluator.masks[n] = m
	return m, nil
}

// Cached - number of masks currently held
func (evaluator *Evaluator) Cached() int {
	evaluator.RLock()
	defer evaluator.RUnlock()

	count := 0
	for _, m := range evaluator.masks {
		if nil != m {
			count += 1
		}
	}
	return count
}

// Passes - check that the big endian digest has at least n leading zero bits
func (evaluator *Evaluator) Passes(digest blockdigest.Digest, n int) (bool, error) {
	m, err := evaluator.Mask(n)
	if nil != err {
		return false, err
	}
	return m.Test(digest.Reversed()), nil
}

// LeadingZeroBits - count the leading zero bits of the big endian digest
func LeadingZeroBits(digest blockdigest.Digest) int {
	count := 0
	for _, b := range digest.Reversed() {
		if 0 != b {
			return count + bits.LeadingZeros8(b)
		}
		count += 8
	}
	return count
}
