// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockdigest - implementation block header hashing
//
// using double SHA-256, either hashing each header from scratch or
// resuming from a saved midstate of the invariant first 64 bytes
package blockdigest
