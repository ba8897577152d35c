// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/powcheck/proof"
)

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	bits, err := targetOption(c)
	if nil != err {
		return err
	}
	nonce, err := nonceOption(c)
	if nil != err {
		return err
	}
	_, prefix, err := loadCase(c)
	if nil != err {
		return err
	}

	engine := proof.New(m.log, m.config.HashStrategy().NewHasher)
	ok, err := engine.Verify(prefix, nonce, bits)
	if nil != err {
		return err
	}
	if !ok {
		return fmt.Errorf("invalid nonce: %d", nonce)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "valid nonce: %d\n", nonce)
	}
	return nil
}
