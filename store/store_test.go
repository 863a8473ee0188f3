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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintNum(t *testing.T) {
	s := NewStore(nil)
	n := s.NumLit(5)
	e, ok := s.Fetch(n)
	require.True(t, ok)
	require.Equal(t, "Num(0x5)", e.(ExprNum).Num.String())
}

func TestStoreFetchIsIdempotent(t *testing.T) {
	s := NewStore(nil)
	ptr := s.NumLit(123)
	a, ok := s.Fetch(ptr)
	require.True(t, ok)
	b, ok := s.Fetch(ptr)
	require.True(t, ok)
	require.Equal(t, a, b)
}

func TestConsEquality(t *testing.T) {
	s := NewStore(nil)

	a1, b1 := s.NumLit(123), s.Sym("pumpkin")
	cons1 := s.Cons(a1, b1)

	a2, b2 := s.NumLit(123), s.Sym("pumpkin")
	cons2 := s.Cons(a2, b2)

	require.Equal(t, cons1, cons2)
	require.Equal(t, s.Car(cons1), s.Car(cons2))
	require.Equal(t, s.Cdr(cons1), s.Cdr(cons2))

	car, cdr := s.CarCdr(cons1)
	require.Equal(t, s.Car(cons1), car)
	require.Equal(t, s.Cdr(cons1), cdr)
}

func TestCarCdrOnNilIsNil(t *testing.T) {
	s := NewStore(nil)
	nilPtr := s.Nil()
	car, cdr := s.CarCdr(nilPtr)
	require.Equal(t, nilPtr, car)
	require.Equal(t, nilPtr, cdr)
}

func TestCarCdrPanicsOnNonCons(t *testing.T) {
	s := NewStore(nil)
	require.Panics(t, func() {
		s.CarCdr(s.NumLit(1))
	})
}

func TestSymCaseConversionIdentifiesNil(t *testing.T) {
	s := NewStore(nil)
	lower := s.Sym("nil")
	upper := s.Sym("NIL")
	require.Equal(t, lower, upper)
	require.Equal(t, s.Nil(), lower)
}

func TestInternFunRequiresSymArg(t *testing.T) {
	s := NewStore(nil)
	require.Panics(t, func() {
		s.InternFun(s.NumLit(1), s.Nil(), s.Nil())
	})
}

func TestInternListFoldsOntoNil(t *testing.T) {
	s := NewStore(nil)
	elts := []ExprPtr{s.NumLit(1), s.NumLit(2), s.NumLit(3)}
	list := s.List(elts)

	car, cdr := s.CarCdr(list)
	require.Equal(t, elts[0], car)
	car, cdr = s.CarCdr(cdr)
	require.Equal(t, elts[1], car)
	car, cdr = s.CarCdr(cdr)
	require.Equal(t, elts[2], car)
	require.Equal(t, s.Nil(), cdr)
}
