// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - 64 bit values shared between search workers
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned integer that is only accessed atomically
type Counter uint64

// Add - add n to a counter, returns new value
func (ic *Counter) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(ic), n)
}

// Store - overwrite the value
func (ic *Counter) Store(n uint64) {
	atomic.StoreUint64((*uint64)(ic), n)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}

// Raise - set the value to n if n is larger, returns true if changed
func (ic *Counter) Raise(n uint64) bool {
	for {
		current := ic.Uint64()
		if n <= current {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(ic), current, n) {
			return true
		}
	}
}

// Lower - set the value to n if n is smaller, returns true if changed
func (ic *Counter) Lower(n uint64) bool {
	for {
		current := ic.Uint64()
		if n >= current {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(ic), current, n) {
			return true
		}
	}
}
