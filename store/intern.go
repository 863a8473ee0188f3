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
	"strings"

	"github.com/erigontech/exprstore/tag"
	"github.com/pkg/errors"
)

// InternNil interns (or, after the first call, re-resolves) the canonical
// NIL symbol.
func (s *Store) InternNil() ExprPtr { return s.Sym("nil") }

// GetNil returns the canonical NIL pointer without mutating the store. It
// panics if called before NewStore's preload has run, which cannot happen
// through the public API.
func (s *Store) GetNil() ExprPtr { return mustGetSym(s, "nil") }

// GetT returns the canonical T pointer without mutating the store.
func (s *Store) GetT() ExprPtr { return mustGetSym(s, "t") }

// InternCons interns a Cons pair, returning the existing pointer if this
// exact (car, cdr) has been seen before.
func (s *Store) InternCons(car, cdr ExprPtr) ExprPtr {
	idx := s.tables.cons.insertFull(consEntry{car, cdr})
	return ExprPtr{Tag: tag.Cons, Raw: idx}
}

// InternList interns elts as a proper list, right-folding onto NIL; this is
// the canonical way to build a list rather than chaining Cons by hand.
func (s *Store) InternList(elts []ExprPtr) ExprPtr {
	acc := s.Sym("nil")
	for i := len(elts) - 1; i >= 0; i-- {
		acc = s.InternCons(elts[i], acc)
	}
	return acc
}

// convertSymCase is the store's one, fixed case convention for symbols.
func convertSymCase(name string) string {
	return strings.ToUpper(name)
}

// InternSymWithCaseConversion upper-cases name and interns it.
func (s *Store) InternSymWithCaseConversion(name string) ExprPtr {
	return s.InternSym(convertSymCase(name))
}

// InternSym interns name verbatim (no case conversion). NIL is special:
// case-folded to "NIL" it receives the Nil tag rather than Sym, since NIL is
// simultaneously a symbol and the empty-list constant.
func (s *Store) InternSym(name string) ExprPtr {
	t := tag.Sym
	if name == "NIL" {
		t = tag.Nil
	}
	id := s.tables.sym.intern(name)
	return ExprPtr{Tag: t, Raw: id}
}

// GetSym resolves name to its pointer without interning it, optionally
// case-converting first.
func (s *Store) GetSym(name string, convertCase bool) (ExprPtr, bool) {
	if convertCase {
		name = convertSymCase(name)
	}
	t := tag.Sym
	if name == "NIL" {
		t = tag.Nil
	}
	id, ok := s.tables.sym.set.index[name]
	if !ok {
		return ExprPtr{}, false
	}
	return ExprPtr{Tag: t, Raw: id}, true
}

// InternNum interns a numeric literal.
func (s *Store) InternNum(n Num) ExprPtr {
	idx := s.tables.num.insertFull(n)
	return ExprPtr{Tag: tag.Num, Raw: idx}
}

// InternStr interns string text.
func (s *Store) InternStr(text string) ExprPtr {
	id := s.tables.str.intern(text)
	return ExprPtr{Tag: tag.Str, Raw: id}
}

// GetStr resolves text to its pointer without interning it.
func (s *Store) GetStr(text string) (ExprPtr, bool) {
	id, ok := s.tables.str.set.index[text]
	if !ok {
		return ExprPtr{}, false
	}
	return ExprPtr{Tag: tag.Str, Raw: id}, true
}

// InternFun interns a closure. arg must be a Sym pointer; this mirrors the
// reference store's own assertion and is a programmer-error panic, not a
// recoverable condition.
func (s *Store) InternFun(arg, body, closedEnv ExprPtr) ExprPtr {
	if arg.Tag != tag.Sym {
		panic(errors.Errorf("exprstore: InternFun arg must be a symbol, got %s", arg.Tag))
	}
	idx := s.tables.fun.insertFull(funEntry{arg, body, closedEnv})
	return ExprPtr{Tag: tag.Fun, Raw: idx}
}

// InternThunk interns a suspended (value, continuation) pair.
func (s *Store) InternThunk(th Thunk) ExprPtr {
	idx := s.tables.thunk.insertFull(th)
	return ExprPtr{Tag: tag.Thunk, Raw: idx}
}

// CarCdr extracts both the head and tail of a Cons in one call; NIL
// destructures to (NIL, NIL). It panics for any other tag, mirroring the
// reference implementation's "can only extract car_cdr from Cons".
func (s *Store) CarCdr(ptr ExprPtr) (ExprPtr, ExprPtr) {
	switch ptr.Tag {
	case tag.Nil:
		nilPtr := s.GetNil()
		return nilPtr, nilPtr
	case tag.Cons:
		e, ok := s.tables.cons.get(ptr.Raw)
		if !ok {
			panic(ErrCannotCarCdr)
		}
		return e.car, e.cdr
	default:
		panic(ErrCannotCarCdr)
	}
}
