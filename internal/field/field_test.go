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

package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromInt64NegativeReducesModFieldOrder(t *testing.T) {
	neg := FromInt64(-1)
	var bi big.Int
	neg.BigInt(&bi)

	want := new(big.Int).Sub(Modulus(), big.NewInt(1))
	require.Equal(t, 0, want.Cmp(&bi))
}

func TestFromUint64RoundTrips(t *testing.T) {
	e := FromUint64(12345)
	var bi big.Int
	e.BigInt(&bi)
	require.Equal(t, int64(12345), bi.Int64())
}

func TestZeroIsAdditiveIdentity(t *testing.T) {
	z := Zero()
	a := FromUint64(7)
	var sum Element
	sum.Add(&a, &z)
	require.Equal(t, a, sum)
}

func TestBytesRoundTripsThroughBigInt(t *testing.T) {
	e := FromUint64(999)
	b := Bytes(&e)

	var back big.Int
	back.SetBytes(b[:])
	var reconstructed Element
	reconstructed.SetBigInt(&back)
	require.Equal(t, e, reconstructed)
}
