// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty

import (
	"math/big"

	"github.com/btcsuite/btcd/blockchain"

	"github.com/bitmark-inc/powcheck/blockdigest"
)

// OneBits - compact form of the difficulty 1 target
const OneBits = 0x1d00ffff

// CompactToTarget - decode the compact "bits" field: the high byte is
// a base 256 exponent, the low three bytes a signed mantissa
//
//   https://en.bitcoin.it/wiki/Difficulty
func CompactToTarget(compact uint32) *big.Int {
	return blockchain.CompactToBig(compact)
}

// MeetsCompact - true if the big endian digest is not above the
// decoded compact target
func MeetsCompact(digest blockdigest.Digest, compact uint32) bool {
	target := CompactToTarget(compact)
	if target.Sign() <= 0 {
		return false
	}
	return digest.Cmp(target) <= 0
}

// CompactLeadingZeroBits - leading zero bits of the decoded target,
// the nearest leading zero bit target that the compact value implies
func CompactLeadingZeroBits(compact uint32) int {
	target := CompactToTarget(compact)
	if target.Sign() <= 0 {
		return MaximumBits
	}
	n := MaximumBits - target.BitLen()
	if n < 0 {
		return 0
	}
	return n
}

// Difficulty - the ratio of the difficulty 1 target to the decoded target
func Difficulty(compact uint32) float64 {
	target := CompactToTarget(compact)
	if target.Sign() <= 0 {
		return 0
	}
	ratio := new(big.Float).SetInt(CompactToTarget(OneBits))
	ratio.Quo(ratio, new(big.Float).SetInt(target))
	result, _ := ratio.Float64()
	return result
}
