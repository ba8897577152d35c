// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/powcheck/blockdigest"
	"github.com/bitmark-inc/powcheck/fault"
	"github.com/bitmark-inc/powcheck/proof"
)

func runSearch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	bits, err := targetOption(c)
	if nil != err {
		return err
	}

	domain, err := proof.ParseDomain(c.String("range"))
	if nil != err {
		return err
	}

	strategy := m.config.HashStrategy()
	if s := c.String("strategy"); "" != s {
		strategy, err = blockdigest.ParseStrategy(s)
		if nil != err {
			return err
		}
	}

	workers := m.config.Workers
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}

	_, prefix, err := loadCase(c)
	if nil != err {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m.log.Infof("strategy: %s  workers: %d", strategy, workers)
	engine := proof.New(m.log, strategy.NewHasher)

	var result proof.Result
	if 1 == workers {
		result, err = engine.Search(ctx, prefix, bits, domain)
	} else {
		result, err = engine.SearchParallel(ctx, prefix, bits, domain, workers)
	}
	if nil != err {
		return err
	}

	if c.Bool("json") {
		if err := printJson(m.w, result); nil != err {
			return err
		}
	} else if result.Found {
		fmt.Fprintf(m.w, "%d\n", result.Nonce)
	}

	if !result.Found {
		return fault.ErrNonceNotFound
	}
	return nil
}
