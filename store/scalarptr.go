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

import "github.com/erigontech/exprstore/internal/field"

// ScalarPtr is the content-addressed identity of an expression node: a pair
// (tag-as-field, content-hash). It is the only thing a consumer outside this
// store (a proof witness, a circuit) ever sees — raw pointers never leave.
type ScalarPtr struct {
	tagF, value field.Element
}

func newScalarPtr(tagF, value field.Element) ScalarPtr { return ScalarPtr{tagF, value} }

// Tag returns the tag-as-field component.
func (s ScalarPtr) Tag() field.Element { return s.tagF }

// Value returns the digest component.
func (s ScalarPtr) Value() field.Element { return s.value }

// HashComponents returns [tag, value], the wire form used to build Poseidon
// preimages and as the key for the reverse map.
func (s ScalarPtr) HashComponents() [2]field.Element { return [2]field.Element{s.tagF, s.value} }

func (s ScalarPtr) bytes() [64]byte {
	var out [64]byte
	tb := field.Bytes(&s.tagF)
	vb := field.Bytes(&s.value)
	copy(out[:32], tb[:])
	copy(out[32:], vb[:])
	return out
}

// ScalarContPtr is the continuation analogue of ScalarPtr.
type ScalarContPtr struct {
	tagF, value field.Element
}

func newScalarContPtr(tagF, value field.Element) ScalarContPtr { return ScalarContPtr{tagF, value} }

// Tag returns the tag-as-field component.
func (s ScalarContPtr) Tag() field.Element { return s.tagF }

// Value returns the digest component.
func (s ScalarContPtr) Value() field.Element { return s.value }

// HashComponents returns [tag, value].
func (s ScalarContPtr) HashComponents() [2]field.Element { return [2]field.Element{s.tagF, s.value} }

func (s ScalarContPtr) bytes() [64]byte {
	var out [64]byte
	tb := field.Bytes(&s.tagF)
	vb := field.Bytes(&s.value)
	copy(out[:32], tb[:])
	copy(out[32:], vb[:])
	return out
}
