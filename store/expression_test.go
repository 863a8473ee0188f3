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

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"
)

func TestFetchFunMatchesInternedFields(t *testing.T) {
	s := NewStore(nil)
	arg := s.Sym("x")
	body := s.Sym("x")
	env := s.Nil()

	ptr := s.InternFun(arg, body, env)
	got, ok := s.Fetch(ptr)
	require.True(t, ok)

	want := ExprFun{Arg: arg, Body: body, ClosedEnv: env}
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatalf("fetched Fun diverges from interned fields: %v", diff)
	}
}

func TestFetchConsMatchesInternedFields(t *testing.T) {
	s := NewStore(nil)
	car, cdr := s.NumLit(1), s.NumLit(2)
	ptr := s.Cons(car, cdr)

	got, ok := s.Fetch(ptr)
	require.True(t, ok)

	want := ExprCons{Car: car, Cdr: cdr}
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatalf("fetched Cons diverges from interned fields: %v", diff)
	}
}

func TestIsKeywordSym(t *testing.T) {
	s := NewStore(nil)
	kw, ok := s.Fetch(s.Sym(":foo"))
	require.True(t, ok)
	require.True(t, IsKeywordSym(kw))

	plain, ok := s.Fetch(s.Sym("foo"))
	require.True(t, ok)
	require.False(t, IsKeywordSym(plain))
}

func TestAsStrAndAsSymStr(t *testing.T) {
	s := NewStore(nil)

	str, ok := s.Fetch(s.InternStr("hi"))
	require.True(t, ok)
	text, ok := AsStr(str)
	require.True(t, ok)
	require.Equal(t, "hi", text)

	sym, ok := s.Fetch(s.Sym("hi"))
	require.True(t, ok)
	name, ok := AsSymStr(sym)
	require.True(t, ok)
	require.Equal(t, "HI", name)
}
