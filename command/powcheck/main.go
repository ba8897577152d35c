// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/powcheck/configuration"
)

type metadata struct {
	config  *configuration.Configuration
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)
	app.Before = setup
	app.After = func(c *cli.Context) error {
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s", err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "powcheck"
	app.Usage = "verify and search block header proof of work"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " log to the console",
		},
	}

	caseFlag := cli.StringFlag{
		Name:  "case, f",
		Value: "-",
		Usage: " TOML case `FILE` (default: stdin)",
	}
	targetFlag := cli.IntFlag{
		Name:  "target, t",
		Value: 0,
		Usage: "*number of leading zero `BITS` [0..256]",
	}

	app.Commands = []cli.Command{
		{
			Name:      "verify",
			Usage:     "check that a nonce meets the target",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				caseFlag,
				targetFlag,
				cli.StringFlag{
					Name:  "nonce, n",
					Value: "",
					Usage: "*nonce to verify `NONCE`",
				},
			},
			Action: runVerify,
		},
		{
			Name:      "search",
			Usage:     "find the first nonce that meets the target",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				caseFlag,
				targetFlag,
				cli.StringFlag{
					Name:  "range, r",
					Value: "",
					Usage: " nonces to try `START:END` or `N,N,...` (default: all)",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Value: 0,
					Usage: " number of search `THREADS` (default: from configuration)",
				},
				cli.StringFlag{
					Name:  "strategy, s",
					Value: "",
					Usage: " digest strategy `NAME` [full|midstate]",
				},
				cli.BoolFlag{
					Name:  "json, j",
					Usage: " print the full result as JSON",
				},
			},
			Action: runSearch,
		},
		{
			Name:      "show",
			Usage:     "print a case as header fields and hash blocks",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				caseFlag,
				cli.StringFlag{
					Name:  "nonce, n",
					Value: "",
					Usage: " also show the digest for `NONCE`",
				},
			},
			Action: runShow,
		},
		{
			Name:      "midstate",
			Usage:     "SHA-256 state after a number of 64 byte blocks",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "input, i",
					Value: "",
					Usage: "+data `FILE` (default: stdin)",
				},
				cli.StringFlag{
					Name:  "case, f",
					Value: "",
					Usage: "+TOML case `FILE`, use the first block of its header",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " output `FILE` (default: stdout)",
				},
				cli.IntFlag{
					Name:  "block, b",
					Value: -1,
					Usage: " state after block `N`, zero based (default: last full block)",
				},
				cli.StringFlag{
					Name:  "format",
					Value: "hex",
					Usage: " output `FORMAT` [hex|base64|bin]",
				},
				cli.BoolFlag{
					Name:  "byte-swap",
					Usage: " output each state word big endian",
				},
			},
			Action: runMidstate,
		},
	}

	return app
}

// read the configuration and start logging
func setup(c *cli.Context) error {
	verbose := c.GlobalBool("verbose")

	config := configuration.Default()
	if fileName := c.GlobalString("config"); "" != fileName {
		var err error
		config, err = configuration.Read(fileName)
		if nil != err {
			return err
		}
	}

	if verbose {
		config.Logging.Console = true
		if nil == config.Logging.Levels {
			config.Logging.Levels = make(map[string]string)
		}
		config.Logging.Levels[logger.DefaultTag] = "info"
	}

	if err := config.MakeLogDirectory(); nil != err {
		return err
	}
	if err := logger.Initialise(config.Logging); nil != err {
		return err
	}

	log := logger.New("powcheck")
	log.Infof("configuration: %+v", config)

	c.App.Metadata["config"] = &metadata{
		config:  config,
		log:     log,
		verbose: verbose,
		e:       c.App.ErrWriter,
		w:       c.App.Writer,
	}
	return nil
}
