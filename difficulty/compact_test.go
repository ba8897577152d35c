// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/powcheck/difficulty"
)

func TestCompactToTarget(t *testing.T) {
	tests := []struct {
		compact  uint32
		expected string
	}{
		{difficulty.OneBits, "00000000ffff0000000000000000000000000000000000000000000000000000"},
		{0x19015f53, "00000000000000015f5300000000000000000000000000000000000000000000"},
	}

	for i, item := range tests {
		target := difficulty.CompactToTarget(item.compact)
		assert.Equal(t, item.expected, fmt.Sprintf("%064x", target), "%d: wrong target", i)
	}
}

func TestMeetsCompact(t *testing.T) {
	d := bigEndian(t, "0000000000000000e067a478024addfecdc93628978aa52d91fabd4292982a50")
	assert.True(t, difficulty.MeetsCompact(d, 0x19015f53), "block 286819 digest above its target")
	assert.False(t, difficulty.MeetsCompact(d, 0x1800ffff), "digest below a smaller target")
	assert.False(t, difficulty.MeetsCompact(d, 0), "zero target met")
}

func TestCompactLeadingZeroBits(t *testing.T) {
	assert.Equal(t, 32, difficulty.CompactLeadingZeroBits(difficulty.OneBits), "difficulty one")
	assert.Equal(t, 63, difficulty.CompactLeadingZeroBits(0x19015f53), "block 286819")
	assert.Equal(t, difficulty.MaximumBits, difficulty.CompactLeadingZeroBits(0), "zero target")
}

func TestDifficulty(t *testing.T) {
	assert.Equal(t, 1.0, difficulty.Difficulty(difficulty.OneBits), "difficulty one")
	assert.InDelta(t, 3129573174.52, difficulty.Difficulty(0x19015f53), 0.01, "block 286819")
	assert.Equal(t, 0.0, difficulty.Difficulty(0), "zero target")
}
