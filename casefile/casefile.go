// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package casefile

import (
	"io"
	"math"
	"os"
	"reflect"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml"

	"github.com/bitmark-inc/powcheck/blockdigest"
	"github.com/bitmark-inc/powcheck/blockrecord"
	"github.com/bitmark-inc/powcheck/fault"
)

const (
	merkleRootKey    = "merkle_root"
	oldMerkleRootKey = "merkel_root"
)

// keys that every case must have
var requiredKeys = []string{
	"version",
	"previous_block",
	merkleRootKey,
	"time",
	"bits",
}

// Case - the header fields of one test case
type Case struct {
	Version       uint32         `mapstructure:"version"`
	PreviousBlock chainhash.Hash `mapstructure:"previous_block"`
	MerkleRoot    chainhash.Hash `mapstructure:"merkle_root"`
	Time          uint32         `mapstructure:"time"`
	Bits          uint32         `mapstructure:"bits"`
}

// Load - read a case file, "" or "-" reads standard input
func Load(fileName string) (*Case, error) {
	if "" == fileName || "-" == fileName {
		return LoadReader(os.Stdin)
	}

	tree, err := toml.LoadFile(fileName)
	if nil != err {
		return nil, err
	}
	return fromTree(tree)
}

// LoadReader - read a case from a stream
func LoadReader(r io.Reader) (*Case, error) {
	tree, err := toml.LoadReader(r)
	if nil != err {
		return nil, err
	}
	return fromTree(tree)
}

func fromTree(tree *toml.Tree) (*Case, error) {
	m := tree.ToMap()

	if value, ok := m[oldMerkleRootKey]; ok {
		if _, ok := m[merkleRootKey]; ok {
			return nil, fault.ErrInvalidCaseValue
		}
		m[merkleRootKey] = value
		delete(m, oldMerkleRootKey)
	}

	for _, key := range requiredKeys {
		if _, ok := m[key]; !ok {
			return nil, fault.ErrMissingCaseField
		}
	}

	// mapstructure flattens hook errors to text, so keep the first one
	var hookError error
	record := func(err error) error {
		if nil == hookError {
			hookError = err
		}
		return err
	}

	c := &Case{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
				if reflect.TypeOf(chainhash.Hash{}) != to {
					return data, nil
				}
				s, ok := data.(string)
				if !ok {
					return nil, record(fault.ErrInvalidCaseValue)
				}
				h, err := hashFromString(s)
				if nil != err {
					return nil, record(err)
				}
				return h, nil
			},
			func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
				if reflect.Uint32 != to.Kind() || reflect.Int64 != from.Kind() {
					return data, nil
				}
				n := data.(int64)
				if n < 0 || n > math.MaxUint32 {
					return nil, record(fault.ErrInvalidCaseValue)
				}
				return data, nil
			},
		),
		ErrorUnused: true,
		Result:      c,
	})
	if nil != err {
		return nil, err
	}

	err = decoder.Decode(m)
	if nil != hookError {
		return nil, hookError
	}
	if nil != err {
		return nil, fault.ErrInvalidCaseValue
	}
	return c, nil
}

// big-endian display hex to wire order
func hashFromString(s string) (chainhash.Hash, error) {
	if chainhash.MaxHashStringSize != len(s) {
		return chainhash.Hash{}, fault.ErrInvalidFieldLength
	}
	h, err := chainhash.NewHashFromStr(s)
	if nil != err {
		return chainhash.Hash{}, fault.ErrInvalidHexString
	}
	return *h, nil
}

// Header - the case as a header without a nonce
func (c *Case) Header() *blockrecord.Header {
	return &blockrecord.Header{
		Version:       c.Version,
		PreviousBlock: blockdigest.Digest(c.PreviousBlock),
		MerkleRoot:    blockdigest.Digest(c.MerkleRoot),
		Timestamp:     c.Time,
		Bits:          c.Bits,
	}
}

// Prefix - the packed 76 byte header prefix
func (c *Case) Prefix() blockrecord.PackedPrefix {
	return c.Header().Prefix()
}
