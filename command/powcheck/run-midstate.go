// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/powcheck/blockdigest"
	"github.com/bitmark-inc/powcheck/fault"
)

func runMidstate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	block := c.Int("block")
	byteSwap := c.Bool("byte-swap")

	format := c.String("format")
	switch format {
	case "hex", "base64", "bin":
	default:
		return fmt.Errorf("format: %q can only be hex/base64/bin", format)
	}

	inputFile := c.String("input")
	caseFile := c.String("case")
	if "" != inputFile && "" != caseFile {
		return fmt.Errorf("only one of input or case may be given")
	}

	var midstate *blockdigest.Midstate
	var err error
	switch {
	case "" != caseFile:
		// the header's second block holds the nonce so only
		// the first can be precomputed
		if block > 0 {
			return fault.ErrInvalidBlockNumber
		}
		_, prefix, err := loadCase(c)
		if nil != err {
			return err
		}
		midstate, err = blockdigest.NewMidstate(prefix.Blocks()[0])
		if nil != err {
			return err
		}

	case "" == inputFile || "-" == inputFile:
		midstate, err = blockdigest.ReadMidstate(os.Stdin, block)

	default:
		var f *os.File
		f, err = os.Open(inputFile)
		if nil != err {
			return err
		}
		defer f.Close()
		midstate, err = blockdigest.ReadMidstate(f, block)
	}
	if nil != err {
		return err
	}
	m.log.Infof("midstate after %d blocks: %s", midstate.Blocks(), midstate.Hex(true))

	w := m.w
	if outputFile := c.String("output"); "" != outputFile && "-" != outputFile {
		f, err := os.Create(outputFile)
		if nil != err {
			return err
		}
		defer f.Close()
		w = f
	}

	return writeMidstate(w, midstate, format, byteSwap)
}

func writeMidstate(w io.Writer, midstate *blockdigest.Midstate, format string, byteSwap bool) error {
	var err error
	switch format {
	case "base64":
		_, err = fmt.Fprintln(w, midstate.Base64(byteSwap))
	case "bin":
		_, err = w.Write(midstate.Bytes(byteSwap))
	default:
		_, err = fmt.Fprintln(w, midstate.Hex(byteSwap))
	}
	return err
}
