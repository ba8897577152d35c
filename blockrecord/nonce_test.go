// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/powcheck/blockrecord"
	"github.com/bitmark-inc/powcheck/fault"
)

// test JSON conversion
func TestNonceJSON(t *testing.T) {

	nonces := []struct {
		nonce blockrecord.NonceType
		json  string
	}{
		{0x00000000, `"00000000"`},
		{0x12345678, `"78563412"`},
		{856192328, `"48750833"`},
	}

	for i, item := range nonces {

		buffer, err := json.Marshal(item.nonce)
		if nil != err {
			t.Fatalf("%d: JSON encode error: %s", i, err)
		}
		assert.Equal(t, item.json, string(buffer), "%d: wrong JSON", i)

		var actual blockrecord.NonceType
		err = json.Unmarshal(buffer, &actual)
		if nil != err {
			t.Fatalf("%d: JSON decode error: %s", i, err)
		}

		if actual != item.nonce {
			t.Errorf("%d: JSON actual: %08x  expected: %08x", i, actual, item.nonce)
		}
	}
}

func TestNonceJSONInvalid(t *testing.T) {
	var nonce blockrecord.NonceType

	for i, s := range []string{`"0011"`, `"0011223344"`, `12345678`} {
		err := nonce.UnmarshalJSON([]byte(s))
		assert.Equal(t, fault.ErrInvalidNonce, err, "%d: accepted: %s", i, s)
	}
}
