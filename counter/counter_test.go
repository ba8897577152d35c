// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"math"
	"sync"
	"testing"

	"github.com/bitmark-inc/powcheck/counter"
)

func TestAdd(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Add(4096)
	c1.Add(3)

	if 4099 != c1.Uint64() {
		t.Errorf("counter is not 4099 after adding: %d", c1.Uint64())
	}

	c1.Store(7)
	if 7 != c1.Uint64() {
		t.Errorf("counter is not 7 after store: %d", c1.Uint64())
	}
}

func TestRaiseLower(t *testing.T) {

	var c1 counter.Counter

	if !c1.Raise(10) {
		t.Error("raise from zero did not change")
	}
	if c1.Raise(5) {
		t.Errorf("raise to smaller value changed: %d", c1.Uint64())
	}
	if 10 != c1.Uint64() {
		t.Errorf("counter is not 10: %d", c1.Uint64())
	}

	c1.Store(math.MaxUint64)
	if !c1.Lower(99) {
		t.Error("lower from maximum did not change")
	}
	if c1.Lower(100) {
		t.Errorf("lower to larger value changed: %d", c1.Uint64())
	}
	if 99 != c1.Uint64() {
		t.Errorf("counter is not 99: %d", c1.Uint64())
	}
}

// concurrent updates keep the minimum and the total
func TestConcurrent(t *testing.T) {

	var total counter.Counter
	var lowest counter.Counter
	lowest.Store(math.MaxUint64)

	var wg sync.WaitGroup
	for i := 0; i < 16; i += 1 {
		wg.Add(1)
		go func(n uint64) {
			defer wg.Done()
			for j := uint64(0); j < 1000; j += 1 {
				total.Add(1)
				lowest.Lower(n*1000 + j)
			}
		}(uint64(i))
	}
	wg.Wait()

	if 16000 != total.Uint64() {
		t.Errorf("total is not 16000: %d", total.Uint64())
	}
	if 0 != lowest.Uint64() {
		t.Errorf("lowest is not 0: %d", lowest.Uint64())
	}
}
