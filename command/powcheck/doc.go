// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// powcheck - verify and search proof of work nonces for block headers
//
//   powcheck verify --case=block.toml --target=64 --nonce=856192328
//   powcheck search --case=block.toml --target=16 --range=0:100000
//   powcheck show --case=block.toml --nonce=39
//   powcheck midstate --input=data.bin --block=0 --format=base64
//
// a case file holds the header fields in TOML, see package casefile;
// "-" or no case file reads the case from standard input
package main
