// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdigest

import (
	"bytes"
	"crypto/sha256"
	"encoding"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/powcheck/fault"
)

// Hasher - computes the digest of a complete header
//
// every implementation must return exactly NewDigest(header)
type Hasher interface {
	Digest(header []byte) Digest
}

// Strategy - selects how a Hasher computes its digests
type Strategy int

// available strategies
const (
	FullHash     Strategy = iota // hash every header from scratch
	MidstateHash                 // resume from the state after the first block of the prefix
)

// ParseStrategy - convert a configuration name into a strategy
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full":
		return FullHash, nil
	case "midstate":
		return MidstateHash, nil
	default:
		return FullHash, fault.ErrInvalidStrategy
	}
}

func (s Strategy) String() string {
	switch s {
	case FullHash:
		return "full"
	case MidstateHash:
		return "midstate"
	default:
		return "*unknown*"
	}
}

// NewHasher - create a hasher for headers that begin with prefix
//
// the prefix only allows precomputation, headers that do not match
// it are still hashed correctly
func (s Strategy) NewHasher(prefix []byte) Hasher {
	if MidstateHash == s && len(prefix) >= BlockSize {
		return newMidstateHasher(prefix[:BlockSize])
	}
	return fullHasher{}
}

type fullHasher struct{}

func (fullHasher) Digest(header []byte) Digest {
	return NewDigest(header)
}

// immutable after creation so it can be shared by several workers
type midstateHasher struct {
	block [BlockSize]byte
	state []byte // marshalled SHA-256 state after block
}

func newMidstateHasher(block []byte) *midstateHasher {
	h := &midstateHasher{}
	copy(h.block[:], block)

	s := sha256.New()
	s.Write(h.block[:])
	state, err := s.(encoding.BinaryMarshaler).MarshalBinary()
	logger.PanicIfError("blockdigest.newMidstateHasher", err)
	h.state = state

	return h
}

func (h *midstateHasher) Digest(header []byte) Digest {
	if len(header) < BlockSize || !bytes.Equal(header[:BlockSize], h.block[:]) {
		return NewDigest(header)
	}

	s := sha256.New()
	err := s.(encoding.BinaryUnmarshaler).UnmarshalBinary(h.state)
	logger.PanicIfError("blockdigest.midstateHasher.Digest", err)
	s.Write(header[BlockSize:])

	var first [Length]byte
	s.Sum(first[:0])
	return Digest(sha256.Sum256(first[:]))
}
