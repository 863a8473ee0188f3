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
	"testing"

	"github.com/erigontech/exprstore/internal/field"
	"github.com/stretchr/testify/require"
)

func TestHash4IsDeterministic(t *testing.T) {
	c := &Constants{}
	var preimage [4]field.Element
	for i := range preimage {
		preimage[i] = field.FromUint64(uint64(i + 1))
	}

	a := c.Hash4(&preimage)
	b := c.Hash4(&preimage)
	require.Equal(t, a, b)
}

func TestHashDiffersAcrossArities(t *testing.T) {
	c := &Constants{}
	var p4 [4]field.Element
	var p8 [8]field.Element

	h4 := c.Hash4(&p4)
	h8 := c.Hash8(&p8)
	require.NotEqual(t, h4, h8)
}

func TestHashSensitiveToPreimage(t *testing.T) {
	c := &Constants{}
	var a, b [6]field.Element
	a[0] = field.FromUint64(1)
	b[0] = field.FromUint64(2)

	require.NotEqual(t, c.Hash6(&a), c.Hash6(&b))
}

func TestConstantsLazyInitIsIdempotent(t *testing.T) {
	c := &Constants{}
	p1 := c.params4()
	p2 := c.params4()
	require.Same(t, p1, p2)
}
