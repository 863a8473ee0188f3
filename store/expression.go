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

// Expression is the materialized payload a Fetch call resolves an ExprPtr
// to. Exactly one of the concrete Expr* types below satisfies it; callers
// switch on the concrete type the way the reference store switches on an
// enum discriminant.
type Expression interface {
	isExpression()
}

// ExprNil is the payload of the canonical NIL symbol.
type ExprNil struct{}

func (ExprNil) isExpression() {}

// ExprCons is a pair: car, then cdr.
type ExprCons struct {
	Car, Cdr ExprPtr
}

func (ExprCons) isExpression() {}

// ExprSym is an interned symbol's text.
type ExprSym struct {
	Name string
}

func (ExprSym) isExpression() {}

// ExprFun is a closure: the (symbol) argument, the body, and the closed-over
// environment.
type ExprFun struct {
	Arg, Body, ClosedEnv ExprPtr
}

func (ExprFun) isExpression() {}

// ExprNum wraps a Num value.
type ExprNum struct {
	Num Num
}

func (ExprNum) isExpression() {}

// ExprStr is an interned string's text.
type ExprStr struct {
	Text string
}

func (ExprStr) isExpression() {}

// ExprThunk wraps a Thunk value.
type ExprThunk struct {
	Thunk Thunk
}

func (ExprThunk) isExpression() {}

// IsKeywordSym reports whether e is a symbol whose name begins with ':'.
func IsKeywordSym(e Expression) bool {
	s, ok := e.(ExprSym)
	return ok && len(s.Name) > 0 && s.Name[0] == ':'
}

// AsStr returns the text of e if it is an ExprStr.
func AsStr(e Expression) (string, bool) {
	s, ok := e.(ExprStr)
	return s.Text, ok
}

// AsSymStr returns the text of e if it is an ExprSym.
func AsSymStr(e Expression) (string, bool) {
	s, ok := e.(ExprSym)
	return s.Name, ok
}

// Thunk is a suspended value paired with the continuation that will resume
// it; it is the representation of a tail call that has not yet unwound.
type Thunk struct {
	Value        ExprPtr
	Continuation ContPtr
}

// Continuation is the materialized payload a FetchCont call resolves a
// ContPtr to.
type Continuation interface {
	isContinuation()
}

type ContOutermost struct{}

func (ContOutermost) isContinuation() {}

// ContSimple wraps an inner continuation with no other state. Per the
// store's own asymmetry (see DESIGN.md), Simple nodes are only ever
// produced internally; there is no public InternCont constructor for it.
type ContSimple struct {
	Cont ContPtr
}

func (ContSimple) isContinuation() {}

// ContCall holds the unevaluated argument and the saved environment.
type ContCall struct {
	Arg, SavedEnv ExprPtr
	Cont          ContPtr
}

func (ContCall) isContinuation() {}

// ContCall2 holds the function and the saved environment.
type ContCall2 struct {
	Fun, SavedEnv ExprPtr
	Cont          ContPtr
}

func (ContCall2) isContinuation() {}

// ContTail holds the saved environment.
type ContTail struct {
	SavedEnv ExprPtr
	Cont     ContPtr
}

func (ContTail) isContinuation() {}

type ContError struct{}

func (ContError) isContinuation() {}

// ContLookup holds the saved environment.
type ContLookup struct {
	SavedEnv ExprPtr
	Cont     ContPtr
}

func (ContLookup) isContinuation() {}

type ContUnop struct {
	Op   tag.Op1
	Cont ContPtr
}

func (ContUnop) isContinuation() {}

// ContBinop holds the saved environment and the unevaluated argument(s).
type ContBinop struct {
	Op           tag.Op2
	SavedEnv     ExprPtr
	UnevaledArgs ExprPtr
	Cont         ContPtr
}

func (ContBinop) isContinuation() {}

// ContBinop2 holds the first (already evaluated) argument.
type ContBinop2 struct {
	Op   tag.Op2
	Arg1 ExprPtr
	Cont ContPtr
}

func (ContBinop2) isContinuation() {}

// ContRelop holds the saved environment and the unevaluated argument(s).
type ContRelop struct {
	Rel          tag.Rel2
	SavedEnv     ExprPtr
	UnevaledArgs ExprPtr
	Cont         ContPtr
}

func (ContRelop) isContinuation() {}

// ContRelop2 holds the first argument.
type ContRelop2 struct {
	Rel  tag.Rel2
	Arg1 ExprPtr
	Cont ContPtr
}

func (ContRelop2) isContinuation() {}

// ContIf holds the unevaluated arguments.
type ContIf struct {
	UnevaledArgs ExprPtr
	Cont         ContPtr
}

func (ContIf) isContinuation() {}

// ContLetStar holds the var, the body, and the saved environment.
type ContLetStar struct {
	Var, Body, SavedEnv ExprPtr
	Cont                ContPtr
}

func (ContLetStar) isContinuation() {}

// ContLetRecStar holds the var, the body, and the saved environment.
type ContLetRecStar struct {
	Var, Body, SavedEnv ExprPtr
	Cont                ContPtr
}

func (ContLetRecStar) isContinuation() {}

type ContDummy struct{}

func (ContDummy) isContinuation() {}

type ContTerminal struct{}

func (ContTerminal) isContinuation() {}
