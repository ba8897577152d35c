// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdigest_test

import (
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/powcheck/blockdigest"
	"github.com/bitmark-inc/powcheck/fault"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name     string
		expected blockdigest.Strategy
		err      error
	}{
		{"", blockdigest.FullHash, nil},
		{"full", blockdigest.FullHash, nil},
		{" Midstate ", blockdigest.MidstateHash, nil},
		{"argon2", blockdigest.FullHash, fault.ErrInvalidStrategy},
	}

	for i, item := range tests {
		s, err := blockdigest.ParseStrategy(item.name)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Equal(t, item.expected, s, "%d: wrong strategy", i)
	}

	assert.Equal(t, "full", blockdigest.FullHash.String(), "wrong name")
	assert.Equal(t, "midstate", blockdigest.MidstateHash.String(), "wrong name")
}

// both strategies must produce identical digests
func TestStrategiesAgree(t *testing.T) {
	block, err := hex.DecodeString(leBlock286819)
	if nil != err {
		t.Fatalf("hex decode string error: %s", err)
	}
	prefix := block[:76]

	full := blockdigest.FullHash.NewHasher(prefix)
	midstate := blockdigest.MidstateHash.NewHasher(prefix)

	header := make([]byte, 80)
	copy(header, prefix)
	for nonce := uint32(0); nonce < 500; nonce += 1 {
		binary.LittleEndian.PutUint32(header[76:], nonce)
		expected := blockdigest.NewDigest(header)

		if d := full.Digest(header); d != expected {
			t.Fatalf("nonce: %d  full: %s  expected: %s", nonce, d, expected)
		}
		if d := midstate.Digest(header); d != expected {
			t.Fatalf("nonce: %d  midstate: %s  expected: %s", nonce, d, expected)
		}
	}

	// the real nonce
	d := midstate.Digest(block)
	assert.Equal(t, "0000000000000000e067a478024addfecdc93628978aa52d91fabd4292982a50", d.String(), "wrong midstate digest")
}

// a header that does not share the prefix is still hashed correctly
func TestMidstateOtherHeader(t *testing.T) {
	block, err := hex.DecodeString(leBlock286819)
	if nil != err {
		t.Fatalf("hex decode string error: %s", err)
	}

	h := blockdigest.MidstateHash.NewHasher(make([]byte, 76))

	assert.Equal(t, blockdigest.NewDigest(block), h.Digest(block), "different prefix")
	assert.Equal(t, blockdigest.NewDigest(nil), h.Digest(nil), "empty header")
	assert.Equal(t, blockdigest.NewDigest(block[:10]), h.Digest(block[:10]), "short header")
}

// a prefix shorter than one block gives a full hasher
func TestMidstateShortPrefix(t *testing.T) {
	h := blockdigest.MidstateHash.NewHasher([]byte("short"))
	data := []byte("short prefix data")
	assert.Equal(t, blockdigest.NewDigest(data), h.Digest(data), "short prefix")
}
