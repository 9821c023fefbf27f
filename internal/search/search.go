// Copyright (c) 2020, The Garble Authors.
// See LICENSE for licensing information.

// Package search decrypts a single block under every key of the cipher.
package search

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/AeonDave/minides/internal/minides"
)

// Record is the plaintext a single key yields.
type Record struct {
	Key       minides.Key
	Plaintext minides.Block
}

// Exhaust decrypts ciphertext under keys 0 through minides.NumKeys-1.
// The records are ordered by key.
func Exhaust(ciphertext minides.Block) []Record {
	records := make([]Record, minides.NumKeys)
	fill(records, 0, ciphertext)
	return records
}

// ExhaustParallel is Exhaust with the key range split into contiguous
// shards, one per worker. Each worker fills its own slice of the result, so
// the records come back in the same order as Exhaust.
//
// A non-positive workers uses GOMAXPROCS.
func ExhaustParallel(ctx context.Context, ciphertext minides.Block, workers int) ([]Record, error) {
	workers = Workers(workers)
	records := make([]Record, minides.NumKeys)

	g, ctx := errgroup.WithContext(ctx)
	for _, s := range shards(minides.NumKeys, workers) {
		s := s // per-iteration copy; go 1.21 loop variables are shared
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fill(records[s.lo:s.hi], minides.Key(s.lo), ciphertext)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("exhaustive search: %w", err)
	}
	return records, nil
}

// Workers resolves a requested worker count to the number actually used.
func Workers(n int) int {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return min(n, minides.NumKeys)
}

type shard struct{ lo, hi int }

// shards splits [0, total) into n ranges whose sizes differ by at most one.
func shards(total, n int) []shard {
	out := make([]shard, 0, n)
	size, rem := total/n, total%n
	lo := 0
	for i := 0; i < n; i++ {
		hi := lo + size
		if i < rem {
			hi++
		}
		out = append(out, shard{lo, hi})
		lo = hi
	}
	return out
}

func fill(dst []Record, first minides.Key, ciphertext minides.Block) {
	for i := range dst {
		k := first + minides.Key(i)
		dst[i] = Record{Key: k, Plaintext: minides.Decrypt(ciphertext, k)}
	}
}
