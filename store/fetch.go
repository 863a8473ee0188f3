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

func (s *Store) fetchSymText(ptr ExprPtr) (string, bool) {
	if ptr.Tag == tag.Nil {
		return "NIL", true
	}
	return s.tables.sym.resolve(ptr.Raw)
}

// Fetch resolves ptr to the Expression it denotes.
func (s *Store) Fetch(ptr ExprPtr) (Expression, bool) {
	switch ptr.Tag {
	case tag.Nil:
		return ExprNil{}, true
	case tag.Cons:
		e, ok := s.tables.cons.get(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ExprCons{Car: e.car, Cdr: e.cdr}, true
	case tag.Sym:
		name, ok := s.tables.sym.resolve(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ExprSym{Name: name}, true
	case tag.Num:
		n, ok := s.tables.num.get(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ExprNum{Num: n}, true
	case tag.Fun:
		e, ok := s.tables.fun.get(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ExprFun{Arg: e.arg, Body: e.body, ClosedEnv: e.closedEnv}, true
	case tag.Thunk:
		th, ok := s.tables.thunk.get(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ExprThunk{Thunk: th}, true
	case tag.Str:
		text, ok := s.tables.str.resolve(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ExprStr{Text: text}, true
	default:
		return nil, false
	}
}

// FetchCont resolves ptr to the Continuation it denotes.
func (s *Store) FetchCont(ptr ContPtr) (Continuation, bool) {
	switch ptr.Tag {
	case tag.Outermost:
		return ContOutermost{}, true
	case tag.Simple:
		e, ok := s.tables.simple.get(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ContSimple{Cont: e}, true
	case tag.Call:
		e, ok := s.tables.call.get(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ContCall{Arg: e.arg, SavedEnv: e.savedEnv, Cont: e.cont}, true
	case tag.Call2:
		e, ok := s.tables.call2.get(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ContCall2{Fun: e.arg, SavedEnv: e.savedEnv, Cont: e.cont}, true
	case tag.Tail:
		e, ok := s.tables.tail.get(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ContTail{SavedEnv: e.savedEnv, Cont: e.cont}, true
	case tag.Error:
		return ContError{}, true
	case tag.Lookup:
		e, ok := s.tables.lookup.get(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ContLookup{SavedEnv: e.savedEnv, Cont: e.cont}, true
	case tag.Unop:
		e, ok := s.tables.unop.get(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ContUnop{Op: e.op, Cont: e.cont}, true
	case tag.Binop:
		e, ok := s.tables.binop.get(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ContBinop{Op: e.op, SavedEnv: e.savedEnv, UnevaledArgs: e.unevaledArgs, Cont: e.cont}, true
	case tag.Binop2:
		e, ok := s.tables.binop2.get(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ContBinop2{Op: e.op, Arg1: e.arg1, Cont: e.cont}, true
	case tag.Relop:
		e, ok := s.tables.relop.get(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ContRelop{Rel: e.rel, SavedEnv: e.savedEnv, UnevaledArgs: e.unevaledArgs, Cont: e.cont}, true
	case tag.Relop2:
		e, ok := s.tables.relop2.get(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ContRelop2{Rel: e.rel, Arg1: e.arg1, Cont: e.cont}, true
	case tag.If:
		e, ok := s.tables.ifs.get(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ContIf{UnevaledArgs: e.unevaledArgs, Cont: e.cont}, true
	case tag.LetStar:
		e, ok := s.tables.letStar.get(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ContLetStar{Var: e.v, Body: e.body, SavedEnv: e.savedEnv, Cont: e.cont}, true
	case tag.LetRecStar:
		e, ok := s.tables.letRecStar.get(ptr.Raw)
		if !ok {
			return nil, false
		}
		return ContLetRecStar{Var: e.v, Body: e.body, SavedEnv: e.savedEnv, Cont: e.cont}, true
	case tag.Dummy:
		return ContDummy{}, true
	case tag.Terminal:
		return ContTerminal{}, true
	default:
		return nil, false
	}
}
