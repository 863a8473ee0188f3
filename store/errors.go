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

import "github.com/pkg/errors"

// ErrMissingWellKnownSym indicates a required preloaded symbol (NIL, T,
// OUTERMOST, ...) is absent; this can only happen if a Store was
// constructed some way other than NewStore.
var ErrMissingWellKnownSym = errors.New("exprstore: missing well-known symbol")

// ErrCannotCarCdr indicates CarCdr was called on a pointer that is neither
// Nil nor Cons.
var ErrCannotCarCdr = errors.New("exprstore: car_cdr only applies to nil or cons")

// mustGetSym panics with a wrapped ErrMissingWellKnownSym if name is absent
// from the store. It is used only for the preload set NewStore guarantees,
// so a panic here indicates programmer error, not user input.
func mustGetSym(s *Store, name string) ExprPtr {
	p, ok := s.GetSym(name, true)
	if !ok {
		panic(errors.Wrapf(ErrMissingWellKnownSym, "symbol %q", name))
	}
	return p
}
