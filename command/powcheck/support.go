// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/powcheck/blockrecord"
	"github.com/bitmark-inc/powcheck/casefile"
	"github.com/bitmark-inc/powcheck/proof"
)

func loadCase(c *cli.Context) (*casefile.Case, blockrecord.PackedPrefix, error) {
	fileName := c.String("case")
	cf, err := casefile.Load(fileName)
	if nil != err {
		return nil, blockrecord.PackedPrefix{}, fmt.Errorf("case: %q  error: %s", fileName, err)
	}
	return cf, cf.Prefix(), nil
}

// range checking is left to the engine
func targetOption(c *cli.Context) (int, error) {
	if !c.IsSet("target") {
		return 0, fmt.Errorf("target is required")
	}
	return c.Int("target"), nil
}

func nonceOption(c *cli.Context) (blockrecord.NonceType, error) {
	s := c.String("nonce")
	if "" == s {
		return 0, fmt.Errorf("nonce is required")
	}
	n, err := proof.ParseNonce(s)
	if nil != err {
		return 0, err
	}
	return blockrecord.NonceType(n), nil
}
