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

// indexSet is an insertion-ordered set keyed by a comparable payload tuple.
// Insertion is O(1) expected and returns the dense slot index that becomes a
// pointer's raw component; structurally equal payloads always land on the
// same slot, which is what makes interning canonical.
//
// No wired dependency supplies an insertion-ordered, dense-index generic
// set (indexmap has no Go equivalent among them; hashicorp/golang-lru and
// friends evict, which would break monotonic growth) — see DESIGN.md for
// the hand-rolled justification.
type indexSet[T comparable] struct {
	index  map[T]RawPtr
	values []T
}

func newIndexSet[T comparable]() *indexSet[T] {
	return &indexSet[T]{index: make(map[T]RawPtr)}
}

// insertFull returns the dense index for value, inserting it at the next
// slot if it has not been seen before.
func (s *indexSet[T]) insertFull(value T) RawPtr {
	if idx, ok := s.index[value]; ok {
		return idx
	}
	idx := RawPtr(len(s.values))
	s.values = append(s.values, value)
	s.index[value] = idx
	return idx
}

// get returns the value stored at idx, if any.
func (s *indexSet[T]) get(idx RawPtr) (T, bool) {
	if int(idx) < 0 || int(idx) >= len(s.values) {
		var zero T
		return zero, false
	}
	return s.values[idx], true
}

func (s *indexSet[T]) len() int { return len(s.values) }

// all returns a snapshot slice of every interned value in insertion order,
// used by the hydration driver to fan out per-table work.
func (s *indexSet[T]) all() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}
