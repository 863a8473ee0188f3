// Copyright 2017 The go-ethereum Authors
// (original work)
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

package mathutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCeilDiv(t *testing.T) {
	require.Equal(t, 0, CeilDiv(10, 0))
	require.Equal(t, 4, CeilDiv(10, 3))
	require.Equal(t, 1, CeilDiv(1, 3))
	require.Equal(t, 0, CeilDiv(0, 3))
}

func TestChunkBoundsCoversEverythingExactlyOnce(t *testing.T) {
	bounds := ChunkBounds(17, 4)
	total := 0
	prevEnd := 0
	for _, b := range bounds {
		require.Equal(t, prevEnd, b[0])
		require.Less(t, b[0], b[1])
		total += b[1] - b[0]
		prevEnd = b[1]
	}
	require.Equal(t, 17, total)
	require.Equal(t, 17, prevEnd)
}

func TestChunkBoundsEmpty(t *testing.T) {
	require.Nil(t, ChunkBounds(0, 4))
}
