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

// stringInterner assigns a dense, never-reused id to each distinct string it
// sees. It backs both the Sym and Str tables: symbols and strings intern
// their text once here and carry the resulting id as their raw pointer.
type stringInterner struct {
	set *indexSet[string]
}

func newStringInterner() *stringInterner {
	return &stringInterner{set: newIndexSet[string]()}
}

// intern returns the id for s, assigning a fresh one if s has not been seen.
func (si *stringInterner) intern(s string) RawPtr {
	return si.set.insertFull(s)
}

// resolve returns the string stored at id, if any. The returned string is
// owned by the interner; callers must not mutate it (Go strings are
// immutable, so this is enforced by the type system rather than convention).
func (si *stringInterner) resolve(id RawPtr) (string, bool) {
	return si.set.get(id)
}

func (si *stringInterner) len() int { return si.set.len() }
