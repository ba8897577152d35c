// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"context"
	"math"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/powcheck/blockdigest"
	"github.com/bitmark-inc/powcheck/blockrecord"
	"github.com/bitmark-inc/powcheck/counter"
	"github.com/bitmark-inc/powcheck/difficulty"
)

const (
	checkInterval    = 1 << 12          // trials between cancellation and progress checks
	progressInterval = 10 * time.Second // minimum time between progress log lines
)

// HasherFactory - create the digest computation for headers with a given prefix
type HasherFactory func(prefix []byte) blockdigest.Hasher

// Result - outcome of a search
//
// Found is false when the domain was exhausted; the other fields are
// then zero except for Trials
type Result struct {
	Found  bool                  `json:"found"`
	Nonce  blockrecord.NonceType `json:"nonce"`
	Index  uint64                `json:"index"`
	Digest blockdigest.Digest    `json:"digest"`
	Trials uint64                `json:"trials"`
}

// Engine - searches and verifies nonces
type Engine struct {
	log       *logger.L
	hashers   HasherFactory
	evaluator *difficulty.Evaluator
}

// New - create an engine with its own target evaluator
func New(log *logger.L, hashers HasherFactory) *Engine {
	return &Engine{
		log:       log,
		hashers:   hashers,
		evaluator: difficulty.NewEvaluator(),
	}
}

// Evaluate - digest of prefix with nonce and whether it meets the
// target of n leading zero bits
func (engine *Engine) Evaluate(prefix blockrecord.PackedPrefix, nonce blockrecord.NonceType, n int) (blockdigest.Digest, bool, error) {
	mask, err := engine.evaluator.Mask(n)
	if nil != err {
		return blockdigest.Digest{}, false, err
	}

	record := prefix.WithNonce(nonce)
	digest := engine.hashers(prefix[:]).Digest(record[:])
	return digest, mask.Test(digest.Reversed()), nil
}

// Verify - check a single nonce against the target of n leading zero bits
func (engine *Engine) Verify(prefix blockrecord.PackedPrefix, nonce blockrecord.NonceType, n int) (bool, error) {
	digest, ok, err := engine.Evaluate(prefix, nonce, n)
	if nil != err {
		return false, err
	}
	engine.log.Debugf("verify nonce: 0x%08x  digest: %s  pass: %v", nonce, digest, ok)
	return ok, nil
}

// Search - find the first nonce of the domain, in domain order, that
// meets the target of n leading zero bits
func (engine *Engine) Search(ctx context.Context, prefix blockrecord.PackedPrefix, n int, domain Domain) (Result, error) {
	mask, err := engine.evaluator.Mask(n)
	if nil != err {
		return Result{}, err
	}

	if 0 == domain.Len() {
		engine.log.Debug("empty domain")
		return Result{}, nil
	}

	engine.log.Infof("search: %d bits over %d nonces", n, domain.Len())

	s := engine.newScan(prefix, mask)
	result, err := s.run(ctx, Iterate(domain, 0, 1), unbounded)
	result.Trials = s.trials.Uint64()
	if nil != err {
		return result, err
	}
	engine.report(s, result)
	return result, nil
}

// state of one search shared by its workers
type scan struct {
	log      *logger.L
	prefix   blockrecord.PackedPrefix
	mask     *difficulty.Mask
	hasher   blockdigest.Hasher
	limiter  *rate.Limiter
	start    time.Time
	trials   counter.Counter
	maxIndex counter.Counter
}

func (engine *Engine) newScan(prefix blockrecord.PackedPrefix, mask *difficulty.Mask) *scan {
	limiter := rate.NewLimiter(rate.Every(progressInterval), 1)
	limiter.Allow() // nothing to report at the start

	return &scan{
		log:     engine.log,
		prefix:  prefix,
		mask:    mask,
		hasher:  engine.hashers(prefix[:]),
		limiter: limiter,
		start:   time.Now(),
	}
}

func unbounded() uint64 {
	return math.MaxUint64
}

// run - trial nonces from the iterator until one passes, the iterator
// is exhausted or the next index exceeds bound()
func (s *scan) run(ctx context.Context, it *Iterator, bound func() uint64) (Result, error) {
	count := uint64(0)
	reported := uint64(0)
	defer func() {
		s.trials.Add(count - reported)
	}()

	for {
		index, nonce, ok := it.Next()
		if !ok || index > bound() {
			return Result{}, nil
		}

		if 0 == count%checkInterval && 0 != count {
			s.trials.Add(count - reported)
			reported = count
			s.maxIndex.Raise(index)
			select {
			case <-ctx.Done():
				return Result{}, ctx.Err()
			default:
			}
			if s.limiter.Allow() {
				s.log.Infof("progress: trials: %d  index: %d", s.trials.Uint64(), s.maxIndex.Uint64())
			}
		}

		record := s.prefix.WithNonce(blockrecord.NonceType(nonce))
		digest := s.hasher.Digest(record[:])
		count += 1

		if s.mask.Test(digest.Reversed()) {
			return Result{
				Found:  true,
				Nonce:  blockrecord.NonceType(nonce),
				Index:  index,
				Digest: digest,
			}, nil
		}
	}
}

// log the outcome and hash rate
func (engine *Engine) report(s *scan, result Result) {
	elapsed := time.Since(s.start)
	if result.Found {
		engine.log.Infof("found nonce: 0x%08x  index: %d  digest: %s", result.Nonce, result.Index, result.Digest)
	} else {
		engine.log.Info("domain exhausted")
	}
	if elapsed > 0 {
		engine.log.Infof("trials: %d  hash rate: %f H/s", result.Trials, float64(result.Trials)/elapsed.Seconds())
	}
}
