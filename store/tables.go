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

import "github.com/erigontech/exprstore/tag"

type consEntry struct{ car, cdr ExprPtr }
type funEntry struct{ arg, body, closedEnv ExprPtr }

type callEntry struct {
	arg, savedEnv ExprPtr
	cont          ContPtr
}
type tailEntry struct {
	savedEnv ExprPtr
	cont     ContPtr
}
type lookupEntry struct {
	savedEnv ExprPtr
	cont     ContPtr
}
type unopEntry struct {
	op   tag.Op1
	cont ContPtr
}
type binopEntry struct {
	op                     tag.Op2
	savedEnv, unevaledArgs ExprPtr
	cont                   ContPtr
}
type binop2Entry struct {
	op   tag.Op2
	arg1 ExprPtr
	cont ContPtr
}
type relopEntry struct {
	rel                    tag.Rel2
	savedEnv, unevaledArgs ExprPtr
	cont                   ContPtr
}
type relop2Entry struct {
	rel  tag.Rel2
	arg1 ExprPtr
	cont ContPtr
}
type ifEntry struct {
	unevaledArgs ExprPtr
	cont         ContPtr
}
type letEntry struct {
	v, body, savedEnv ExprPtr
	cont              ContPtr
}

// tables holds every per-variant interning table, one indexSet per Cons/Fun/
// Thunk/Num expression shape and one per structured continuation shape. Sym
// and Str use a stringInterner instead, since their payload is raw text
// rather than a pointer tuple. Simple has a table (written only by the
// unexported internContSimple) but, per the reference store, no public
// constructor.
type tables struct {
	cons  *indexSet[consEntry]
	sym   *stringInterner
	num   *indexSet[Num]
	fun   *indexSet[funEntry]
	str   *stringInterner
	thunk *indexSet[Thunk]

	simple     *indexSet[ContPtr]
	call       *indexSet[callEntry]
	call2      *indexSet[callEntry]
	tail       *indexSet[tailEntry]
	lookup     *indexSet[lookupEntry]
	unop       *indexSet[unopEntry]
	binop      *indexSet[binopEntry]
	binop2     *indexSet[binop2Entry]
	relop      *indexSet[relopEntry]
	relop2     *indexSet[relop2Entry]
	ifs        *indexSet[ifEntry]
	letStar    *indexSet[letEntry]
	letRecStar *indexSet[letEntry]
}

func newTables() *tables {
	return &tables{
		cons:  newIndexSet[consEntry](),
		sym:   newStringInterner(),
		num:   newIndexSet[Num](),
		fun:   newIndexSet[funEntry](),
		str:   newStringInterner(),
		thunk: newIndexSet[Thunk](),

		simple:     newIndexSet[ContPtr](),
		call:       newIndexSet[callEntry](),
		call2:      newIndexSet[callEntry](),
		tail:       newIndexSet[tailEntry](),
		lookup:     newIndexSet[lookupEntry](),
		unop:       newIndexSet[unopEntry](),
		binop:      newIndexSet[binopEntry](),
		binop2:     newIndexSet[binop2Entry](),
		relop:      newIndexSet[relopEntry](),
		relop2:     newIndexSet[relop2Entry](),
		ifs:        newIndexSet[ifEntry](),
		letStar:    newIndexSet[letEntry](),
		letRecStar: newIndexSet[letEntry](),
	}
}
