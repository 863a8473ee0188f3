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
	"testing"

	"github.com/erigontech/exprstore/internal/field"
	"github.com/stretchr/testify/require"
)

func TestHashExprIsDeterministic(t *testing.T) {
	s := NewStore(nil)
	cons := s.Cons(s.NumLit(1), s.Sym("foo"))

	a, ok := s.HashExpr(cons)
	require.True(t, ok)
	b, ok := s.HashExpr(cons)
	require.True(t, ok)
	require.Equal(t, a, b)
}

func TestNumHashIsItsOwnScalar(t *testing.T) {
	s := NewStore(nil)
	n := NumFromUint64(42)
	ptr := s.InternNum(n)

	sp, ok := s.HashExpr(ptr)
	require.True(t, ok)
	require.Equal(t, n.Scalar(), sp.Value())
	require.Equal(t, ptr.TagField(), sp.Tag())
}

func TestHashExprAndFetchScalarRoundTrip(t *testing.T) {
	s := NewStore(nil)
	ptr := s.Cons(s.NumLit(7), s.Nil())

	sp, ok := s.HashExpr(ptr)
	require.True(t, ok)

	back, ok := s.FetchScalar(sp)
	require.True(t, ok)
	require.Equal(t, ptr, back)
}

func TestScalarFromPartsOnlyResolvesKnownPointers(t *testing.T) {
	s := NewStore(nil)
	_, ok := s.ScalarFromParts(field.FromUint64(999), field.FromUint64(999))
	require.False(t, ok)

	ptr := s.NumLit(5)
	sp, ok := s.HashExpr(ptr)
	require.True(t, ok)

	found, ok := s.ScalarFromParts(sp.Tag(), sp.Value())
	require.True(t, ok)
	require.Equal(t, sp, found)
}

func TestHashStringEmptyIsBareLength(t *testing.T) {
	s := NewStore(nil)
	require.Equal(t, field.Zero(), s.hashString(""))
}

func TestHashNilIsHashOfSymNil(t *testing.T) {
	s := NewStore(nil)
	nilHash, ok := s.HashExpr(s.Nil())
	require.True(t, ok)

	symNilHash, ok := s.hashSym(s.GetNil())
	require.True(t, ok)
	require.Equal(t, symNilHash, nilHash)
}

func TestHashContCallPreimageOrdersEnvBeforeArg(t *testing.T) {
	s := NewStore(nil)
	arg := s.NumLit(1)
	env := s.NumLit(2)
	k := s.GetContOutermost()

	call := s.InternContCall(arg, env, k)
	comps, ok := s.GetHashComponentsCont(call)
	require.True(t, ok)

	argHash, ok := s.HashExpr(arg)
	require.True(t, ok)
	envHash, ok := s.HashExpr(env)
	require.True(t, ok)

	require.Equal(t, envHash.Tag(), comps[0])
	require.Equal(t, envHash.Value(), comps[1])
	require.Equal(t, argHash.Tag(), comps[2])
	require.Equal(t, argHash.Value(), comps[3])
}

func TestHydrateScalarCacheThenFetchScalar(t *testing.T) {
	s := NewStore(nil)
	ptrs := []ExprPtr{
		s.NumLit(1),
		s.Sym("hello"),
		s.InternStr("world"),
		s.Cons(s.NumLit(1), s.NumLit(2)),
	}

	require.NoError(t, s.HydrateScalarCache(context.Background()))

	for _, p := range ptrs {
		sp, ok := s.HashExpr(p)
		require.True(t, ok)
		back, ok := s.FetchScalar(sp)
		require.True(t, ok)
		require.Equal(t, p, back)
	}
}

func TestHashConsDiffersFromHashFun(t *testing.T) {
	s := NewStore(nil)
	arg := s.Sym("x")
	cons := s.Cons(arg, s.Nil())
	fun := s.InternFun(arg, s.Nil(), s.Nil())

	consHash, ok := s.HashExpr(cons)
	require.True(t, ok)
	funHash, ok := s.HashExpr(fun)
	require.True(t, ok)

	require.NotEqual(t, consHash.Tag(), funHash.Tag())
}
