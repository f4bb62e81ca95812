// stripe.go
//
// Author: blinklv <blinklv@icloud.com>
// Create Time: 2026-10-14
// Maintainer: blinklv <blinklv@icloud.com>
// Last Change: 2026-10-18

package xblock

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Fewest blocks handed to one worker.
const minStripe = 64

// DefaultWorkers is the worker count used when none is configured.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Stripe calls fn over [0, n) split into contiguous ranges [lo, hi), at
// most workers of them running at once. Every index is covered exactly once.
// fn must only write the output slots of its own range.
func Stripe(n, workers int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if limit := n / minStripe; workers > limit {
		workers = limit
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	var (
		g    errgroup.Group
		size = (n + workers - 1) / workers
	)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += size {
		lo, hi := lo, lo+size
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	// fn doesn't fail, Wait only joins.
	g.Wait()
}
