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

// Package tag defines the shared 16-bit tag namespace used by every pointer
// and opcode in the store: expression tags, continuation tags, and the
// unary/binary/relational operator tags all live in one closed enumeration
// so that a tag value alone is enough to disambiguate which table a raw
// pointer indexes into.
package tag

import "github.com/erigontech/exprstore/internal/field"

// Expr is the tag of an expression pointer.
type Expr uint16

// Expression tag block, base 0x0000.
const (
	Nil Expr = iota
	Cons
	Sym
	Fun
	Num
	Thunk
	Str
)

func (t Expr) String() string {
	switch t {
	case Nil:
		return "Nil"
	case Cons:
		return "Cons"
	case Sym:
		return "Sym"
	case Fun:
		return "Fun"
	case Num:
		return "Num"
	case Thunk:
		return "Thunk"
	case Str:
		return "Str"
	default:
		return "Expr(?)"
	}
}

// AsField zero-extends the tag into a field element.
func (t Expr) AsField() field.Element {
	return field.FromUint64(uint64(t))
}

// Cont is the tag of a continuation pointer.
type Cont uint16

// Continuation tag block, base 0x1000.
const (
	Outermost Cont = 0x1000 + iota
	Simple
	Call
	Call2
	Tail
	Error
	Lookup
	Unop
	Binop
	Binop2
	Relop
	Relop2
	If
	LetStar
	LetRecStar
	Dummy
	Terminal
)

func (t Cont) String() string {
	switch t {
	case Outermost:
		return "Outermost"
	case Simple:
		return "Simple"
	case Call:
		return "Call"
	case Call2:
		return "Call2"
	case Tail:
		return "Tail"
	case Error:
		return "Error"
	case Lookup:
		return "Lookup"
	case Unop:
		return "Unop"
	case Binop:
		return "Binop"
	case Binop2:
		return "Binop2"
	case Relop:
		return "Relop"
	case Relop2:
		return "Relop2"
	case If:
		return "If"
	case LetStar:
		return "LetStar"
	case LetRecStar:
		return "LetRecStar"
	case Dummy:
		return "Dummy"
	case Terminal:
		return "Terminal"
	default:
		return "Cont(?)"
	}
}

// AsField zero-extends the tag into a field element.
func (t Cont) AsField() field.Element {
	return field.FromUint64(uint64(t))
}

// Op1 is a unary operator tag, base 0x2000.
type Op1 uint16

const (
	Car Op1 = 0x2000 + iota
	Cdr
	Atom
)

func (o Op1) String() string {
	switch o {
	case Car:
		return "Car"
	case Cdr:
		return "Cdr"
	case Atom:
		return "Atom"
	default:
		return "Op1(?)"
	}
}

// AsField zero-extends the tag into a field element.
func (o Op1) AsField() field.Element {
	return field.FromUint64(uint64(o))
}

// Op2 is a binary operator tag, base 0x3000.
type Op2 uint16

const (
	Sum Op2 = 0x3000 + iota
	Diff
	Product
	Quotient
	ConsOp
)

func (o Op2) String() string {
	switch o {
	case Sum:
		return "Sum"
	case Diff:
		return "Diff"
	case Product:
		return "Product"
	case Quotient:
		return "Quotient"
	case ConsOp:
		return "Cons"
	default:
		return "Op2(?)"
	}
}

// AsField zero-extends the tag into a field element.
func (o Op2) AsField() field.Element {
	return field.FromUint64(uint64(o))
}

// Rel2 is a relational operator tag, base 0x4000.
type Rel2 uint16

const (
	Equal Rel2 = 0x4000 + iota
	NumEqual
)

func (r Rel2) String() string {
	switch r {
	case Equal:
		return "Equal"
	case NumEqual:
		return "NumEqual"
	default:
		return "Rel2(?)"
	}
}

// AsField zero-extends the tag into a field element.
func (r Rel2) AsField() field.Element {
	return field.FromUint64(uint64(r))
}
