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

// Package store implements a content-addressed arena for a Lisp-family
// evaluator's expressions and continuations. Every node is interned once,
// reachable by a cheap typed pointer during evaluation and, on demand, by a
// content hash suitable for commitment in a Poseidon-hash-tree proof.
package store

import (
	"github.com/erigontech/exprstore/internal/concurrentmap"
	"github.com/erigontech/exprstore/internal/poseidon"
	"go.uber.org/zap"
)

// wellKnownSyms is the exact preload order: lower-case symbol text that Sym
// upper-cases when NewStore interns it once at construction, so every store built with NewStore shares
// the same raw indices for these slots regardless of what a caller later
// interns. Order matters only in that it fixes each symbol's raw index;
// callers must never assume a specific index, only that GetSym/GetT/GetNil
// resolve correctly.
var wellKnownSyms = []string{
	"nil",
	"t",
	"quote",
	"lambda",
	"_",
	"let*",
	"letrec*",
	"car",
	"cdr",
	"atom",
	"+",
	"-",
	"*",
	"/",
	"=",
	"eq",
	"current-env",
	"if",
	"terminal",
	"dummy",
	"outermost",
	"error",
}

// Store is the expression/continuation arena. All mutating methods are
// safe to call only from a single goroutine at a time; the reverse scalar
// maps and the Poseidon cache are the exception, built to tolerate
// concurrent readers during HydrateScalarCache.
type Store struct {
	tables *tables

	poseidon *poseidon.Constants

	hashCache4 *concurrentmap.Map[[4]scalarKey, scalarVal]
	hashCache6 *concurrentmap.Map[[6]scalarKey, scalarVal]
	hashCache8 *concurrentmap.Map[[8]scalarKey, scalarVal]

	scalarPtrMap     *concurrentmap.Map[ScalarPtr, ExprPtr]
	scalarContPtrMap *concurrentmap.Map[ScalarContPtr, ContPtr]

	log *zap.Logger
}

// NewStore builds an empty store, preloads the well-known symbol set, and
// wires logger for hydration diagnostics. A nil logger is replaced with
// zap.NewNop(), matching the convention that a Store is always safe to
// construct without external configuration (there is no config layer; see
// DESIGN.md).
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		tables:   newTables(),
		poseidon: &poseidon.Constants{},

		hashCache4: concurrentmap.New[[4]scalarKey, scalarVal](),
		hashCache6: concurrentmap.New[[6]scalarKey, scalarVal](),
		hashCache8: concurrentmap.New[[8]scalarKey, scalarVal](),

		scalarPtrMap:     concurrentmap.New[ScalarPtr, ExprPtr](),
		scalarContPtrMap: concurrentmap.New[ScalarContPtr, ContPtr](),

		log: logger,
	}

	for _, name := range wellKnownSyms {
		s.Sym(name)
	}

	return s
}

// These methods provide a more ergonomic means of constructing and
// manipulating expression data; prefer them over the raw InternXxx family
// when assembling literal program fragments in tests or evaluation code.

// Nil returns the canonical NIL pointer.
func (s *Store) Nil() ExprPtr { return s.InternNil() }

// T returns the canonical T pointer.
func (s *Store) T() ExprPtr { return s.Sym("T") }

// Cons interns a pair.
func (s *Store) Cons(car, cdr ExprPtr) ExprPtr { return s.InternCons(car, cdr) }

// List interns a right-folded list terminated by NIL.
func (s *Store) List(elts []ExprPtr) ExprPtr { return s.InternList(elts) }

// NumLit interns a numeric literal from a machine integer.
func (s *Store) NumLit(v int64) ExprPtr { return s.InternNum(NumFromInt64(v)) }

// Sym interns name after upper-casing it, the store's one case convention.
func (s *Store) Sym(name string) ExprPtr { return s.InternSymWithCaseConversion(name) }

// Car returns the head of a Cons (or NIL, for NIL).
func (s *Store) Car(expr ExprPtr) ExprPtr { car, _ := s.CarCdr(expr); return car }

// Cdr returns the tail of a Cons (or NIL, for NIL).
func (s *Store) Cdr(expr ExprPtr) ExprPtr { _, cdr := s.CarCdr(expr); return cdr }

// Logger exposes the store's logger so callers can share its sinks/level
// for their own diagnostics around a Store's lifetime.
func (s *Store) Logger() *zap.Logger { return s.log }
