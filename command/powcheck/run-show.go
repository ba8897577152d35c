// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/powcheck/difficulty"
)

type compactInfo struct {
	Bits            string  `json:"bits"`
	Target          string  `json:"target"`
	Difficulty      float64 `json:"difficulty"`
	LeadingZeroBits int     `json:"leadingZeroBits"`
}

type nonceInfo struct {
	Nonce           uint32 `json:"nonce"`
	Header          string `json:"header"`
	Digest          string `json:"digest"`
	LeadingZeroBits int    `json:"leadingZeroBits"`
	MeetsCompact    bool   `json:"meetsCompact"`
}

type showInfo struct {
	Version       uint32      `json:"version"`
	PreviousBlock string      `json:"previousBlock"`
	MerkleRoot    string      `json:"merkleRoot"`
	Time          uint32      `json:"time"`
	Compact       compactInfo `json:"compact"`
	Prefix        string      `json:"prefix"`
	Blocks        []string    `json:"blocks"`
	Nonce         *nonceInfo  `json:"nonce,omitempty"`
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	cf, prefix, err := loadCase(c)
	if nil != err {
		return err
	}

	info := showInfo{
		Version:       cf.Version,
		PreviousBlock: cf.PreviousBlock.String(),
		MerkleRoot:    cf.MerkleRoot.String(),
		Time:          cf.Time,
		Compact: compactInfo{
			Bits:            fmt.Sprintf("%08x", cf.Bits),
			Target:          fmt.Sprintf("%064x", difficulty.CompactToTarget(cf.Bits)),
			Difficulty:      difficulty.Difficulty(cf.Bits),
			LeadingZeroBits: difficulty.CompactLeadingZeroBits(cf.Bits),
		},
		Prefix: hex.EncodeToString(prefix[:]),
	}

	// the final block is only complete once the nonce is appended
	for _, block := range prefix.Blocks() {
		info.Blocks = append(info.Blocks, hex.EncodeToString(block))
	}

	if "" != c.String("nonce") {
		nonce, err := nonceOption(c)
		if nil != err {
			return err
		}
		record := prefix.WithNonce(nonce)
		digest := m.config.HashStrategy().NewHasher(prefix[:]).Digest(record[:])

		info.Nonce = &nonceInfo{
			Nonce:           uint32(nonce),
			Header:          hex.EncodeToString(record[:]),
			Digest:          digest.String(),
			LeadingZeroBits: difficulty.LeadingZeroBits(digest),
			MeetsCompact:    difficulty.MeetsCompact(digest, cf.Bits),
		}
		m.log.Debugf("nonce: %d  digest: %#v", nonce, digest)
	}

	return printJson(m.w, info)
}

