// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package proof - nonce search and verification
//
// A search walks a nonce domain in order and returns the first nonce
// whose header digest meets the leading zero bit target.  Exhausting
// the domain is a normal outcome reported by Result.Found being false.
// The parallel search stripes the domain over several workers and
// still returns the first passing nonce in domain order.
package proof
