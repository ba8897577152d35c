// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdigest

import (
	"crypto/sha256"
	"encoding"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"io"

	"github.com/bitmark-inc/powcheck/fault"
)

// number of 32 bit words in the SHA-256 chaining state
const StateWords = 8

// layout of crypto/sha256 marshalled state: magic, then the chaining
// words as big endian, then the pending block and the length
const (
	stateMagic  = "sha\x03"
	stateOffset = len(stateMagic)
)

// Midstate - SHA-256 chaining state after a whole number of blocks
type Midstate struct {
	words  [StateWords]uint32
	blocks int
}

// NewMidstate - compute the state after hashing data, which must be
// a whole number of 64 byte blocks
func NewMidstate(data []byte) (*Midstate, error) {
	if 0 != len(data)%BlockSize {
		return nil, fault.ErrInvalidMidstateLength
	}

	s := sha256.New()
	s.Write(data)
	return midstateOf(s, len(data)/BlockSize)
}

// ReadMidstate - hash a stream block by block returning the state
// after block number lastBlock (zero based), or after the last full
// block if lastBlock is negative; a trailing partial block is ignored
func ReadMidstate(r io.Reader, lastBlock int) (*Midstate, error) {
	s := sha256.New()
	block := make([]byte, BlockSize)
	n := 0
	for {
		if lastBlock >= 0 && n > lastBlock {
			break
		}
		_, err := io.ReadFull(r, block)
		if io.EOF == err || io.ErrUnexpectedEOF == err {
			if lastBlock >= 0 {
				return nil, fault.ErrShortMidstateStream
			}
			break
		}
		if nil != err {
			return nil, err
		}
		s.Write(block)
		n += 1
	}
	return midstateOf(s, n)
}

func midstateOf(s hash.Hash, blocks int) (*Midstate, error) {
	m, ok := s.(encoding.BinaryMarshaler)
	if !ok {
		return nil, fault.ErrUnsupportedHashState
	}
	state, err := m.MarshalBinary()
	if nil != err {
		return nil, err
	}
	if len(state) < stateOffset+4*StateWords || stateMagic != string(state[:stateOffset]) {
		return nil, fault.ErrUnsupportedHashState
	}

	midstate := &Midstate{
		blocks: blocks,
	}
	for i := 0; i < StateWords; i += 1 {
		midstate.words[i] = binary.BigEndian.Uint32(state[stateOffset+4*i:])
	}
	return midstate, nil
}

// Blocks - number of 64 byte blocks included in the state
func (m *Midstate) Blocks() int {
	return m.blocks
}

// Words - the chaining words H0..H7
func (m *Midstate) Words() [StateWords]uint32 {
	return m.words
}

// Bytes - state as bytes, each word little endian (native layout)
// or big endian if byteSwap is set
func (m *Midstate) Bytes(byteSwap bool) []byte {
	buffer := make([]byte, 4*StateWords)
	for i, w := range m.words {
		if byteSwap {
			binary.BigEndian.PutUint32(buffer[4*i:], w)
		} else {
			binary.LittleEndian.PutUint32(buffer[4*i:], w)
		}
	}
	return buffer
}

// Hex - state as hex text
func (m *Midstate) Hex(byteSwap bool) string {
	return hex.EncodeToString(m.Bytes(byteSwap))
}

// Base64 - state as standard base64 text
func (m *Midstate) Base64(byteSwap bool) string {
	return base64.StdEncoding.EncodeToString(m.Bytes(byteSwap))
}
