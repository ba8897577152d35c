// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/powcheck/blockrecord"
	"github.com/bitmark-inc/powcheck/counter"
	"github.com/bitmark-inc/powcheck/fault"
)

// SearchParallel - as Search, but the domain is striped over workers
//
// worker w tries the elements at positions w, w+workers, w+2*workers...
// Once any worker passes at position k, the others stop as soon as
// their next position is beyond k, so the result is always the pass
// with the lowest position, the same as a sequential search.
func (engine *Engine) SearchParallel(ctx context.Context, prefix blockrecord.PackedPrefix, n int, domain Domain, workers int) (Result, error) {
	if workers < 1 {
		return Result{}, fault.ErrInvalidWorkerCount
	}

	mask, err := engine.evaluator.Mask(n)
	if nil != err {
		return Result{}, err
	}

	length := domain.Len()
	if 0 == length {
		engine.log.Debug("empty domain")
		return Result{}, nil
	}
	if uint64(workers) > length {
		workers = int(length)
	}

	engine.log.Infof("search: %d bits over %d nonces with %d workers", n, length, workers)

	s := engine.newScan(prefix, mask)

	var best counter.Counter
	best.Store(math.MaxUint64)

	results := make([]Result, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w += 1 {
		w := w
		g.Go(func() error {
			it := Iterate(domain, uint64(w), uint64(workers))
			r, err := s.run(gctx, it, best.Uint64)
			if nil != err {
				return err
			}
			if r.Found {
				best.Lower(r.Index)
				engine.log.Debugf("worker: %d  pass at index: %d", w, r.Index)
			}
			results[w] = r
			return nil
		})
	}
	err = g.Wait()

	result := Result{}
	for _, r := range results {
		if r.Found && (!result.Found || r.Index < result.Index) {
			result = r
		}
	}
	result.Trials = s.trials.Uint64()
	if nil != err {
		return Result{Trials: result.Trials}, err
	}

	engine.report(s, result)
	return result, nil
}
