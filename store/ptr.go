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

import (
	"fmt"

	"github.com/erigontech/exprstore/internal/field"
	"github.com/erigontech/exprstore/tag"
)

// RawPtr is an opaque dense index into one of the store's per-variant
// tables. It carries no tag and is meaningless without one.
type RawPtr uint32

// ExprPtr is a typed pointer to an expression node: a tag identifying which
// table (or pseudo-variant, for Nil) owns the node, paired with a raw index
// into that table. Two ExprPtr values are equal iff both fields match.
type ExprPtr struct {
	Tag tag.Expr
	Raw RawPtr
}

// TagField zero-extends the pointer's tag into the field, the value exposed
// to circuit generation as tag_field.
func (p ExprPtr) TagField() field.Element { return p.Tag.AsField() }

// IsNil reports whether p denotes the symbol NIL.
func (p ExprPtr) IsNil() bool { return p.Tag == tag.Nil }

func (p ExprPtr) String() string { return fmt.Sprintf("ExprPtr(%s, %d)", p.Tag, p.Raw) }

// ContPtr is a typed pointer to a continuation node. It is a distinct Go
// type from ExprPtr (not a union) so the compiler rejects any attempt to
// mix expression and continuation pointers, matching the reference
// implementation's use of two unrelated Rust structs for the same purpose.
type ContPtr struct {
	Tag tag.Cont
	Raw RawPtr
}

// TagField zero-extends the pointer's tag into the field.
func (p ContPtr) TagField() field.Element { return p.Tag.AsField() }

// IsError reports whether p is the first-class Error continuation. This is
// a plain value check, not a failure signal — callers probe it explicitly.
func (p ContPtr) IsError() bool { return p.Tag == tag.Error }

func (p ContPtr) String() string { return fmt.Sprintf("ContPtr(%s, %d)", p.Tag, p.Raw) }
