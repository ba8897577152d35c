// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/bitmark-inc/powcheck/fault"
)

// NonceType - type for nonce
type NonceType uint32

// MarshalJSON - convert a nonce to little endian hex for JSON
func (nonce NonceType) MarshalJSON() ([]byte, error) {

	bits := make([]byte, NonceSize)
	binary.LittleEndian.PutUint32(bits, uint32(nonce))

	size := 2 + hex.EncodedLen(len(bits))
	buffer := make([]byte, size)
	buffer[0] = '"'
	buffer[size-1] = '"'
	hex.Encode(buffer[1:], bits)
	return buffer, nil
}

// UnmarshalJSON - convert a nonce little endian hex string to nonce value
func (nonce *NonceType) UnmarshalJSON(s []byte) error {
	// length = '"' + characters + '"'
	last := len(s) - 1
	if last < 1 || '"' != s[0] || '"' != s[last] {
		return fault.ErrInvalidNonce
	}

	b := s[1:last]

	buffer := make([]byte, hex.DecodedLen(len(b)))
	byteCount, err := hex.Decode(buffer, b)
	if nil != err {
		return err
	}
	if NonceSize != byteCount {
		return fault.ErrInvalidNonce
	}
	*nonce = NonceType(binary.LittleEndian.Uint32(buffer))
	return nil
}
