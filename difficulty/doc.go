// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package difficulty - leading zero bit targets
//
// A target of N bits is met when the big endian form of a digest
// starts with at least N zero bits.  The compact "bits" header field
// can also be decoded, but only for display: it never decides whether
// a nonce is accepted.
package difficulty
