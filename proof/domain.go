// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/powcheck/fault"
)

// NonceLimit - one past the largest nonce
const NonceLimit = uint64(1) << 32

// Domain - an ordered sequence of candidate nonces
//
// elements are produced on demand so a domain of the full 32 bit
// range costs no memory
type Domain interface {
	Len() uint64
	At(index uint64) uint32
}

// Range - nonces start, start+1, ... end-1
type Range struct {
	start uint64
	end   uint64
}

// NewRange - create the half open range [start, end)
func NewRange(start uint64, end uint64) (*Range, error) {
	if start > end || end > NonceLimit {
		return nil, fault.ErrInvalidNonceRange
	}
	return &Range{
		start: start,
		end:   end,
	}, nil
}

// FullRange - every 32 bit nonce in ascending order
func FullRange() *Range {
	return &Range{
		start: 0,
		end:   NonceLimit,
	}
}

// Len - number of nonces
func (r *Range) Len() uint64 {
	return r.end - r.start
}

// At - nonce at a position
func (r *Range) At(index uint64) uint32 {
	return uint32(r.start + index)
}

// List - an explicit sequence of nonces, tried in the order given
type List []uint32

// Len - number of nonces
func (l List) Len() uint64 {
	return uint64(len(l))
}

// At - nonce at a position
func (l List) At(index uint64) uint32 {
	return l[index]
}

// ParseDomain - convert the command line form of a domain
//
//   ""          the full range
//   "a,b,c"     an explicit list
//   "start:end" a half open range
//   "n"         the single nonce n
//
// numbers may be decimal or 0x prefixed hex
func ParseDomain(s string) (Domain, error) {
	s = strings.TrimSpace(s)

	if "" == s {
		return FullRange(), nil
	}

	if strings.Contains(s, ":") {
		bounds := strings.SplitN(s, ":", 2)
		start, err := parseBound(bounds[0])
		if nil != err {
			return nil, err
		}
		end, err := parseBound(bounds[1])
		if nil != err {
			return nil, err
		}
		r, err := NewRange(start, end)
		if nil != err {
			return nil, err
		}
		return r, nil
	}

	items := strings.Split(s, ",")
	list := make(List, 0, len(items))
	for _, item := range items {
		n, err := ParseNonce(item)
		if nil != err {
			return nil, err
		}
		list = append(list, n)
	}
	return list, nil
}

// ParseNonce - convert a decimal or 0x prefixed hex nonce
func ParseNonce(s string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if nil != err {
		return 0, fault.ErrInvalidNonce
	}
	return uint32(n), nil
}

// range bounds may reach 2^32
func parseBound(s string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if nil != err || n > NonceLimit {
		return 0, fault.ErrInvalidNonceRange
	}
	return n, nil
}

// Iterator - walks a domain from an offset with a fixed stride
type Iterator struct {
	domain Domain
	next   uint64
	stride uint64
}

// Iterate - start a new pass over a domain; a stride of one visits
// every element, a stride of k visits every k-th element starting at
// offset
func Iterate(domain Domain, offset uint64, stride uint64) *Iterator {
	if 0 == stride {
		stride = 1
	}
	return &Iterator{
		domain: domain,
		next:   offset,
		stride: stride,
	}
}

// Next - the next position and nonce, ok is false when exhausted
func (it *Iterator) Next() (index uint64, nonce uint32, ok bool) {
	if it.next >= it.domain.Len() {
		return 0, 0, false
	}
	index = it.next
	nonce = it.domain.At(index)
	it.next += it.stride
	return index, nonce, true
}
