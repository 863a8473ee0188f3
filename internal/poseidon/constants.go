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

package poseidon

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/erigontech/exprstore/internal/field"
)

// Params holds the round constants and MDS matrix for one state width.
// Constructing a Params is expensive enough to warrant lazy init and reuse:
// the round constants are derived deterministically from the width so two
// Params built for the same width are always identical, and the MDS matrix
// is a Cauchy matrix built via field inversions.
type Params struct {
	width          int
	fullRounds     int
	partialRounds  int
	roundConstants [][]field.Element // [round][width]
	mds            [][]field.Element // [width][width]
}

// partialRoundCounts mirrors the common real-world Poseidon parameter
// tables, which grow the partial-round count slightly with state width.
var partialRoundCounts = map[int]int{
	4: 56,
	6: 57,
	8: 58,
}

func newParams(width int) *Params {
	fullRounds := 8
	partialRounds := partialRoundCounts[width]
	if partialRounds == 0 {
		partialRounds = 56
	}
	total := fullRounds + partialRounds

	p := &Params{
		width:         width,
		fullRounds:    fullRounds,
		partialRounds: partialRounds,
	}
	p.roundConstants = generateRoundConstants(width, total)
	p.mds = generateCauchyMDS(width)
	return p
}

// generateRoundConstants deterministically expands a width-specific domain
// string through SHA-256 in counter mode, reducing each 32-byte block modulo
// the field order. This plays the role a Grain LFSR plays in reference
// Poseidon implementations: a fixed, reproducible, non-secret constant
// stream, generated once per arity and then memoized (see poseidon.go).
func generateRoundConstants(width, rounds int) [][]field.Element {
	modulus := field.Modulus()
	out := make([][]field.Element, rounds)
	counter := uint64(0)
	for r := 0; r < rounds; r++ {
		row := make([]field.Element, width)
		for c := 0; c < width; c++ {
			row[c] = nextConstant(width, &counter, modulus)
		}
		out[r] = row
	}
	return out
}

func nextConstant(width int, counter *uint64, modulus *big.Int) field.Element {
	h := sha256.New()
	h.Write([]byte("exprstore/poseidon/round-constant"))
	var widthBuf, counterBuf [8]byte
	binary.BigEndian.PutUint64(widthBuf[:], uint64(width))
	binary.BigEndian.PutUint64(counterBuf[:], *counter)
	h.Write(widthBuf[:])
	h.Write(counterBuf[:])
	*counter++

	digest := h.Sum(nil)
	bi := new(big.Int).SetBytes(digest)
	bi.Mod(bi, modulus)
	return field.FromBigInt(bi)
}

// generateCauchyMDS builds a width x width maximum-distance-separable matrix
// via the classic Cauchy construction: M[i][j] = 1 / (x_i - y_j), with x, y
// disjoint sequences. Any two distinct rows/columns of a Cauchy matrix are
// linearly independent, which is exactly the MDS property Poseidon's linear
// layer requires.
func generateCauchyMDS(width int) [][]field.Element {
	xs := make([]field.Element, width)
	ys := make([]field.Element, width)
	for i := 0; i < width; i++ {
		xs[i] = field.FromUint64(uint64(i))
		ys[i] = field.FromUint64(uint64(width + i))
	}

	m := make([][]field.Element, width)
	for i := 0; i < width; i++ {
		row := make([]field.Element, width)
		for j := 0; j < width; j++ {
			var diff, inv field.Element
			diff.Sub(&xs[i], &ys[j])
			inv.Inverse(&diff)
			row[j] = inv
		}
		m[i] = row
	}
	return m
}
