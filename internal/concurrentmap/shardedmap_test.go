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

package concurrentmap

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOrComputeFirstWriterWins(t *testing.T) {
	m := New[string, int]()
	var calls int64

	var wg sync.WaitGroup
	results := make([]int, 32)
	for i := 0; i < 32; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = m.LoadOrCompute([]byte("key"), "key", func() int {
				atomic.AddInt64(&calls, 1)
				return 7
			})
		}()
	}
	wg.Wait()

	for _, r := range results {
		require.Equal(t, 7, r)
	}
	require.GreaterOrEqual(t, calls, int64(1))

	v, ok := m.Load([]byte("key"), "key")
	require.True(t, ok)
	require.Equal(t, 7, v)
}

func TestLenCountsAcrossShards(t *testing.T) {
	m := New[string, int]()
	for i := 0; i < 200; i++ {
		k := fmt.Sprintf("k%d", i)
		m.StoreIfAbsent([]byte(k), k, i)
	}
	require.Equal(t, 200, m.Len())
}

func TestStoreIfAbsentKeepsFirstValue(t *testing.T) {
	m := New[string, int]()
	m.StoreIfAbsent([]byte("a"), "a", 1)
	got := m.StoreIfAbsent([]byte("a"), "a", 2)
	require.Equal(t, 1, got)
}
