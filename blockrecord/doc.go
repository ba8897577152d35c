// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockrecord - pack and unpack the 80 byte block header
//
// all integer fields are little endian and the hash fields are kept
// in wire order (reversed relative to their display hex)
package blockrecord
