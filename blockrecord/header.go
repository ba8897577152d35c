// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/powcheck/blockdigest"
	"github.com/bitmark-inc/powcheck/fault"
)

// byte sizes for various fields
const (
	VersionSize       = 4                  // Block version number
	PreviousBlockSize = blockdigest.Length // 256-bit double SHA-256 hash of the previous block header
	MerkleRootSize    = blockdigest.Length // 256-bit double SHA-256 hash of the transactions
	TimestampSize     = 4                  // Current timestamp as seconds since 1970-01-01T00:00 UTC
	BitsSize          = 4                  // Current target difficulty in compact format
	NonceSize         = 4                  // 32-bit number
)

// offsets of the fields
const (
	versionOffset       = 0
	previousBlockOffset = versionOffset + VersionSize
	merkleRootOffset    = previousBlockOffset + PreviousBlockSize
	timestampOffset     = merkleRootOffset + MerkleRootSize
	bitsOffset          = timestampOffset + TimestampSize
	nonceOffset         = bitsOffset + BitsSize

	// to set size of header arrays
	PrefixSize = nonceOffset             // bytes before the nonce
	HeaderSize = nonceOffset + NonceSize // total bytes in the header
)

// PackedPrefix - the invariant part of a header, everything except the nonce
type PackedPrefix [PrefixSize]byte

// PackedHeader - a complete header
type PackedHeader [HeaderSize]byte

// Header - the unpacked header structure
type Header struct {
	Version       uint32             `json:"version"`
	PreviousBlock blockdigest.Digest `json:"previousBlock"`
	MerkleRoot    blockdigest.Digest `json:"merkleRoot"`
	Timestamp     uint32             `json:"timestamp"`
	Bits          uint32             `json:"bits"`
	Nonce         NonceType          `json:"nonce"`
}

// Pack - build a prefix from raw field values
//
// the hash fields must already be in wire order and exactly 32 bytes
func Pack(version uint32, previousBlock []byte, merkleRoot []byte, timestamp uint32, bits uint32) (PackedPrefix, error) {
	header := Header{
		Version:   version,
		Timestamp: timestamp,
		Bits:      bits,
	}
	if err := blockdigest.DigestFromBytes(&header.PreviousBlock, previousBlock); nil != err {
		return PackedPrefix{}, err
	}
	if err := blockdigest.DigestFromBytes(&header.MerkleRoot, merkleRoot); nil != err {
		return PackedPrefix{}, err
	}
	return header.Prefix(), nil
}

// Prefix - turn a record into the bytes preceding the nonce
func (header *Header) Prefix() PackedPrefix {
	buffer := PackedPrefix{}

	binary.LittleEndian.PutUint32(buffer[versionOffset:], header.Version)

	// these are in little endian order so can just copy them
	copy(buffer[previousBlockOffset:], header.PreviousBlock[:])
	copy(buffer[merkleRootOffset:], header.MerkleRoot[:])

	binary.LittleEndian.PutUint32(buffer[timestampOffset:], header.Timestamp)
	binary.LittleEndian.PutUint32(buffer[bitsOffset:], header.Bits)

	return buffer
}

// Pack - turn a record into an array of bytes
func (header *Header) Pack() PackedHeader {
	return header.Prefix().WithNonce(header.Nonce)
}

// Unpack - split a buffer into the header fields
//
// the buffer must hold at least the prefix, or the full header when
// hasNonce is set; any further bytes are ignored
func Unpack(buffer []byte, hasNonce bool) (*Header, error) {
	required := PrefixSize
	if hasNonce {
		required = HeaderSize
	}
	if len(buffer) < required {
		return nil, fault.ErrInvalidHeaderLength
	}

	header := &Header{}

	header.Version = binary.LittleEndian.Uint32(buffer[versionOffset:])

	err := blockdigest.DigestFromBytes(&header.PreviousBlock, buffer[previousBlockOffset:merkleRootOffset])
	if nil != err {
		return nil, err
	}

	err = blockdigest.DigestFromBytes(&header.MerkleRoot, buffer[merkleRootOffset:timestampOffset])
	if nil != err {
		return nil, err
	}

	header.Timestamp = binary.LittleEndian.Uint32(buffer[timestampOffset:bitsOffset])
	header.Bits = binary.LittleEndian.Uint32(buffer[bitsOffset:nonceOffset])

	if hasNonce {
		header.Nonce = NonceType(binary.LittleEndian.Uint32(buffer[nonceOffset:]))
	}

	return header, nil
}

// Unpack - turn a packed header back into a record
func (record PackedHeader) Unpack() *Header {
	header, err := Unpack(record[:], true)
	if nil != err {
		// cannot happen: the array is always the full size
		panic(err)
	}
	return header
}

// WithNonce - append a little endian nonce to the prefix
func (prefix PackedPrefix) WithNonce(nonce NonceType) PackedHeader {
	record := PackedHeader{}
	copy(record[:], prefix[:])
	binary.LittleEndian.PutUint32(record[nonceOffset:], uint32(nonce))
	return record
}

// Blocks - split the prefix into SHA-256 input blocks, the last one
// being the partial block that is completed by the nonce
func (prefix PackedPrefix) Blocks() [][]byte {
	blocks := make([][]byte, 0, 2)
	for start := 0; start < PrefixSize; start += blockdigest.BlockSize {
		end := start + blockdigest.BlockSize
		if end > PrefixSize {
			end = PrefixSize
		}
		blocks = append(blocks, prefix[start:end])
	}
	return blocks
}

// Digest - digest for a packed header
func (record PackedHeader) Digest() blockdigest.Digest {
	return blockdigest.NewDigest(record[:])
}
