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

// Package concurrentmap provides a lock-striped concurrent map keyed by any
// comparable type, with the shard chosen from a caller-supplied byte
// encoding of the key. It is the load-bearing data structure behind the
// store's Poseidon memoization cache and its two scalar-pointer reverse
// maps. Every key in those maps is a tuple of field elements whose canonical
// byte encoding picks the shard, so sharding on xxhash of that encoding spreads contention
// the same way Erigon uses xxhash to bucket keys elsewhere in the tree.
package concurrentmap

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const shardCount = 64

// Map is a concurrent get-or-compute map: many readers may race to insert
// the same key, but because every value stored here is a pure function of
// its key (a memoized hash, or a canonical scalar->raw pointer mapping),
// keeping the first writer's value is equivalent to keeping any other's. There is no eviction:
// the store grows monotonically for the life of a session.
type Map[K comparable, V any] struct {
	shards [shardCount]shard[K, V]
}

type shard[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

// New constructs an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	mp := &Map[K, V]{}
	for i := range mp.shards {
		mp.shards[i].m = make(map[K]V)
	}
	return mp
}

func shardFor[K comparable](key []byte, n int) int {
	return int(xxhash.Sum64(key) % uint64(n))
}

// Load returns the value stored for key, if any.
func (m *Map[K, V]) Load(keyBytes []byte, key K) (V, bool) {
	s := &m.shards[shardFor[K](keyBytes, shardCount)]
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

// LoadOrCompute returns the existing value for key if present; otherwise it
// computes one via fn and stores it, returning the winning value. If two
// goroutines race to compute the same key, the second compute's result is
// discarded rather than stored (the first writer wins) since fn is assumed
// pure and both results are equivalent.
func (m *Map[K, V]) LoadOrCompute(keyBytes []byte, key K, fn func() V) V {
	s := &m.shards[shardFor[K](keyBytes, shardCount)]

	s.mu.RLock()
	if v, ok := s.m[key]; ok {
		s.mu.RUnlock()
		return v
	}
	s.mu.RUnlock()

	v := fn()

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.m[key]; ok {
		return existing
	}
	s.m[key] = v
	return v
}

// StoreIfAbsent inserts value for key only if key is not already present,
// returning the value now stored (either the caller's or a prior winner's).
func (m *Map[K, V]) StoreIfAbsent(keyBytes []byte, key K, value V) V {
	return m.LoadOrCompute(keyBytes, key, func() V { return value })
}

// Len returns the total number of entries across all shards.
func (m *Map[K, V]) Len() int {
	total := 0
	for i := range m.shards {
		m.shards[i].mu.RLock()
		total += len(m.shards[i].m)
		m.shards[i].mu.RUnlock()
	}
	return total
}
