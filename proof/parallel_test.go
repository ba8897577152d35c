// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof_test

import (
	"context"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/powcheck/blockdigest"
	"github.com/bitmark-inc/powcheck/blockdigest/mocks"
	"github.com/bitmark-inc/powcheck/fault"
	"github.com/bitmark-inc/powcheck/proof"
)

func reversedList(n uint32) proof.List {
	l := make(proof.List, 0, n)
	for i := n; i > 0; i -= 1 {
		l = append(l, i-1)
	}
	return l
}

func TestParallelMatchesSequential(t *testing.T) {
	prefix := zeroPrefix(t)
	engine := newEngine(blockdigest.MidstateHash)

	domains := []proof.Domain{
		mustRange(t, 0, 5000),
		proof.FullRange(),
		reversedList(3000),
		proof.List{1, 2, 3, 16, 8},
		proof.List{1, 2, 3},
	}

	for i, domain := range domains {
		for _, bits := range []int{0, 4, 8, 12} {
			expected, err := engine.Search(context.Background(), prefix, bits, domain)
			if nil != err {
				t.Fatalf("%d: %d bits: search error: %s", i, bits, err)
			}
			for workers := 1; workers <= 8; workers += 1 {
				result, err := engine.SearchParallel(context.Background(), prefix, bits, domain, workers)
				if nil != err {
					t.Fatalf("%d: %d bits: %d workers: error: %s", i, bits, workers, err)
				}
				assert.Equal(t, expected.Found, result.Found, "%d: %d bits: %d workers: wrong found", i, bits, workers)
				assert.Equal(t, expected.Nonce, result.Nonce, "%d: %d bits: %d workers: wrong nonce", i, bits, workers)
				assert.Equal(t, expected.Index, result.Index, "%d: %d bits: %d workers: wrong index", i, bits, workers)
				assert.Equal(t, expected.Digest, result.Digest, "%d: %d bits: %d workers: wrong digest", i, bits, workers)
			}
		}
	}
}

func TestParallelExhausted(t *testing.T) {
	engine := newEngine(blockdigest.FullHash)

	result, err := engine.SearchParallel(context.Background(), zeroPrefix(t), 256, mustRange(t, 0, 2000), 3)
	assert.Nil(t, err, "search error")
	assert.False(t, result.Found, "found with 256 bits")
	assert.Equal(t, uint64(2000), result.Trials, "not every nonce was tried")
}

func TestParallelMoreWorkersThanNonces(t *testing.T) {
	engine := newEngine(blockdigest.FullHash)

	result, err := engine.SearchParallel(context.Background(), zeroPrefix(t), 0, proof.List{77, 78}, 16)
	assert.Nil(t, err, "search error")
	assert.True(t, result.Found, "not found")
	assert.Equal(t, uint64(0), result.Index, "wrong index")
}

func TestParallelEmptyDomain(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	hasher := mocks.NewMockHasher(ctl)
	hasher.EXPECT().Digest(gomock.Any()).Times(0)

	engine := proof.New(logger.New("proof-test"), func(prefix []byte) blockdigest.Hasher {
		return hasher
	})

	result, err := engine.SearchParallel(context.Background(), zeroPrefix(t), 0, proof.List{}, 4)
	assert.Nil(t, err, "search error")
	assert.False(t, result.Found, "found in empty domain")
}

func TestParallelInvalidWorkers(t *testing.T) {
	engine := newEngine(blockdigest.FullHash)

	for _, workers := range []int{0, -3} {
		_, err := engine.SearchParallel(context.Background(), zeroPrefix(t), 4, proof.FullRange(), workers)
		assert.Equal(t, fault.ErrInvalidWorkerCount, err, "%d: wrong error", workers)
	}
}

func TestParallelCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := newEngine(blockdigest.MidstateHash)
	result, err := engine.SearchParallel(ctx, zeroPrefix(t), 256, proof.FullRange(), 4)
	assert.Equal(t, context.Canceled, err, "wrong error")
	assert.False(t, result.Found, "found after cancel")
}
