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

// Package mathutil carries the one piece of Erigon's math helpers this
// module still needs after trimming down to a single table-splitting
// helper for the hydration driver's parallel fan-out.
package mathutil

// CeilDiv returns ceil(x / y), or 0 if y is 0.
func CeilDiv(x, y int) int {
	if y == 0 {
		return 0
	}
	return (x + y - 1) / y
}

// ChunkBounds splits [0, n) into at most maxChunks contiguous, roughly
// equal half-open ranges, used to bound the number of goroutines the
// hydration driver spawns per table regardless of table size.
func ChunkBounds(n, maxChunks int) [][2]int {
	if n == 0 {
		return nil
	}
	if maxChunks < 1 {
		maxChunks = 1
	}
	chunkSize := CeilDiv(n, maxChunks)
	if chunkSize < 1 {
		chunkSize = 1
	}
	var bounds [][2]int
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		bounds = append(bounds, [2]int{start, end})
	}
	return bounds
}
