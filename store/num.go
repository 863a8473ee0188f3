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
	"fmt"
	"math/big"

	"github.com/erigontech/exprstore/internal/field"
)

// Num is a numeric runtime value. It carries a single field element: Lurk
// numbers have no separate machine-integer representation at rest, only a
// dual signed/field *view* supplied at construction time via NumFromInt64
// (negative values reduce modulo the field order) or NumFromUint64/NumFromBigInt.
// Numeric equality is field equality, and a Num's hash is that same field
// element (see hashNum in hash.go) — Num is its own digest.
type Num struct {
	scalar field.Element
}

// NumFromUint64 builds a Num from an unsigned machine integer.
func NumFromUint64(v uint64) Num { return Num{field.FromUint64(v)} }

// NumFromInt64 builds a Num from a signed machine integer.
func NumFromInt64(v int64) Num { return Num{field.FromInt64(v)} }

// NumFromBigInt builds a Num from an arbitrary-precision integer, reducing
// modulo the field order.
func NumFromBigInt(v *big.Int) Num { return Num{field.FromBigInt(v)} }

// Scalar performs the "scalar injection": the field element this Num
// represents, identical whether reached via interning or via a later hash.
func (n Num) Scalar() field.Element { return n.scalar }

// String renders the way the reference writer does: "Num(0x<hex>)" using the
// number's canonical big-integer value, not its zero-padded field encoding.
func (n Num) String() string {
	var bi big.Int
	n.scalar.BigInt(&bi)
	return fmt.Sprintf("Num(%#x)", &bi)
}
