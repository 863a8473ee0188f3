// Copyright 2024 The Erigon Authors
// (modifications)
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package store

import (
	"context"
	"runtime"
	"time"

	"github.com/erigontech/exprstore/internal/mathutil"
	"github.com/erigontech/exprstore/tag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxHydrateChunksPerTable bounds how many goroutines a single table's fan
// out spawns; GOMAXPROCS is already the natural ceiling for CPU-bound work.
func maxHydrateChunksPerTable() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
}

// chunkedFor runs fn(i) for every i in [0, n) across a bounded number of
// goroutines, propagating the first error.
func chunkedFor(ctx context.Context, n int, fn func(i int) error) error {
	bounds := mathutil.ChunkBounds(n, maxHydrateChunksPerTable())
	g, _ := errgroup.WithContext(ctx)
	for _, b := range bounds {
		start, end := b[0], b[1]
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// HydrateScalarCache forces every node's Poseidon hash, so that a
// subsequent HashExpr/HashCont call for any interned pointer is a cache hit
// rather than a fresh computation. Like the reference implementation, it
// does not mint a ScalarPtr/ScalarContPtr for a cons/fun/thunk/continuation
// table's own top-level pointer here — only for the sub-expressions and
// inner continuations reachable from it; a node's own scalar pointer is
// minted the first time something calls HashExpr/HashCont on it directly.
func (s *Store) HydrateScalarCache(ctx context.Context) error {
	start := time.Now()
	populated := 0
	s.log.Debug("hydrating scalar cache")

	cons := s.tables.cons.all()
	populated += len(cons)
	if err := chunkedFor(ctx, len(cons), func(i int) error {
		_, _ = s.hashPtrs2(cons[i].car, cons[i].cdr)
		return nil
	}); err != nil {
		return err
	}

	syms := s.tables.sym.set.all()
	populated += len(syms)
	if err := chunkedFor(ctx, len(syms), func(i int) error {
		s.hashString(syms[i])
		return nil
	}); err != nil {
		return err
	}

	// Nums are not hashed: a Num is its own hash.

	funs := s.tables.fun.all()
	populated += len(funs)
	if err := chunkedFor(ctx, len(funs), func(i int) error {
		_, _ = s.hashPtrs3(funs[i].arg, funs[i].body, funs[i].closedEnv)
		return nil
	}); err != nil {
		return err
	}

	strs := s.tables.str.set.all()
	populated += len(strs)
	if err := chunkedFor(ctx, len(strs), func(i int) error {
		s.hashString(strs[i])
		return nil
	}); err != nil {
		return err
	}

	thunks := s.tables.thunk.all()
	populated += len(thunks)
	if err := chunkedFor(ctx, len(thunks), func(i int) error {
		if comps, ok := s.GetHashComponentsThunk(thunks[i]); ok {
			s.hash4(comps)
		}
		return nil
	}); err != nil {
		return err
	}

	// Every structured continuation table is keyed by its own raw index;
	// GetHashComponentsCont re-derives the 8-field preimage via FetchCont,
	// recursively warming whatever it references, and hash8 caches the
	// result the same way the reference's chained iterator does.
	contTags := []tag.Cont{
		tag.Simple, tag.Call, tag.Call2, tag.Tail, tag.Lookup, tag.Unop,
		tag.Binop, tag.Binop2, tag.Relop, tag.Relop2, tag.If, tag.LetStar, tag.LetRecStar,
	}
	for _, t := range contTags {
		n := s.contTableLen(t)
		populated += n
		if err := chunkedFor(ctx, n, func(i int) error {
			if comps, ok := s.GetHashComponentsCont(ContPtr{Tag: t, Raw: RawPtr(i)}); ok {
				s.hash8(comps)
			}
			return nil
		}); err != nil {
			return err
		}
	}

	s.log.Debug("scalar cache hydrated",
		zap.Int("populated", populated),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func (s *Store) contTableLen(t tag.Cont) int {
	switch t {
	case tag.Simple:
		return s.tables.simple.len()
	case tag.Call:
		return s.tables.call.len()
	case tag.Call2:
		return s.tables.call2.len()
	case tag.Tail:
		return s.tables.tail.len()
	case tag.Lookup:
		return s.tables.lookup.len()
	case tag.Unop:
		return s.tables.unop.len()
	case tag.Binop:
		return s.tables.binop.len()
	case tag.Binop2:
		return s.tables.binop2.len()
	case tag.Relop:
		return s.tables.relop.len()
	case tag.Relop2:
		return s.tables.relop2.len()
	case tag.If:
		return s.tables.ifs.len()
	case tag.LetStar:
		return s.tables.letStar.len()
	case tag.LetRecStar:
		return s.tables.letRecStar.len()
	default:
		return 0
	}
}
