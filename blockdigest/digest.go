// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdigest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/bitmark-inc/powcheck/fault"
)

// number of bytes in the digest
const Length = sha256.Size

// BlockSize - SHA-256 compression block size
const BlockSize = sha256.BlockSize

// Digest - type for a digest
// stored as little endian byte array
// represented as big endian hex value for print
// represented as little endian hex text for JSON encoding
type Digest [Length]byte

// NewDigest - create a digest from a byte slice: SHA256(SHA256(record))
func NewDigest(record []byte) Digest {
	first := sha256.Sum256(record)
	return Digest(sha256.Sum256(first[:]))
}

// Cmp - compare the big endian value of the digest with a 256 bit integer
func (digest Digest) Cmp(target *big.Int) int {
	bigEndian := digest.Reversed()
	result := new(big.Int)
	return result.SetBytes(bigEndian[:]).Cmp(target)
}

// Reversed - return a reversed byte order copy of a digest,
// i.e. its big endian display form
func (digest Digest) Reversed() [Length]byte {
	var result [Length]byte
	for i := 0; i < Length; i += 1 {
		result[i] = digest[Length-1-i]
	}
	return result
}

// IsZero - true if every byte is zero
func (digest Digest) IsZero() bool {
	return Digest{} == digest
}

// convert a binary digest to hex string for use by the fmt package (for %s)
//
// the stored version is in little endian, but the output string is big endian
func (digest Digest) String() string {
	r := digest.Reversed()
	return hex.EncodeToString(r[:])
}

// GoString - convert a binary digest to big endian hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA256d:" + digest.String() + ">"
}

// Scan - convert a big endian hex representation to a digest for use by the format package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	buffer := make([]byte, hex.DecodedLen(len(token)))
	byteCount, err := hex.Decode(buffer, token)
	if nil != err {
		return err
	}
	if Length != byteCount {
		return fault.ErrInvalidFieldLength
	}

	for i, v := range buffer[:byteCount] {
		digest[Length-1-i] = v
	}
	return nil
}

// MarshalText - convert digest to little endian hex text
func (digest Digest) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(digest))
	buffer := make([]byte, size)
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert little endian hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	return DigestFromBytes(digest, buffer[:byteCount])
}

// DigestFromBytes - convert and validate little endian binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidFieldLength
	}
	copy(digest[:], buffer)
	return nil
}
