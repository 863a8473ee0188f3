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

// The four terminal continuations are never allocated: they are carried by
// the raw index of their matching preloaded symbol, the same trick the
// reference store uses (ContPtr(ContTag::Outermost, sym_store["OUTERMOST"])).
// There is no table entry and no mutation; constructing one is just
// relabeling an existing raw pointer with a continuation tag.

func (s *Store) InternContOutermost() ContPtr { return s.GetContOutermost() }

func (s *Store) GetContOutermost() ContPtr {
	sym := mustGetSym(s, "outermost")
	return ContPtr{Tag: tag.Outermost, Raw: sym.Raw}
}

func (s *Store) InternContError() ContPtr { return s.GetContError() }

func (s *Store) GetContError() ContPtr {
	sym := mustGetSym(s, "error")
	return ContPtr{Tag: tag.Error, Raw: sym.Raw}
}

func (s *Store) InternContTerminal() ContPtr { return s.GetContTerminal() }

func (s *Store) GetContTerminal() ContPtr {
	sym := mustGetSym(s, "terminal")
	return ContPtr{Tag: tag.Terminal, Raw: sym.Raw}
}

func (s *Store) InternContDummy() ContPtr { return s.GetContDummy() }

func (s *Store) GetContDummy() ContPtr {
	sym := mustGetSym(s, "dummy")
	return ContPtr{Tag: tag.Dummy, Raw: sym.Raw}
}

// internContSimple is unexported and has no caller in this package: the
// Simple table exists (FetchCont, GetHashComponentsCont and hydration all
// read it) but nothing outside the store can add to it, mirroring the
// reference store, which tables Simple but exposes no intern_cont_simple
// constructor.
func (s *Store) internContSimple(inner ContPtr) ContPtr {
	idx := s.tables.simple.insertFull(inner)
	return ContPtr{Tag: tag.Simple, Raw: idx}
}

func (s *Store) InternContCall(arg, savedEnv ExprPtr, k ContPtr) ContPtr {
	idx := s.tables.call.insertFull(callEntry{arg: arg, savedEnv: savedEnv, cont: k})
	return ContPtr{Tag: tag.Call, Raw: idx}
}

func (s *Store) InternContCall2(fun, savedEnv ExprPtr, k ContPtr) ContPtr {
	idx := s.tables.call2.insertFull(callEntry{arg: fun, savedEnv: savedEnv, cont: k})
	return ContPtr{Tag: tag.Call2, Raw: idx}
}

func (s *Store) InternContTail(savedEnv ExprPtr, k ContPtr) ContPtr {
	idx := s.tables.tail.insertFull(tailEntry{savedEnv: savedEnv, cont: k})
	return ContPtr{Tag: tag.Tail, Raw: idx}
}

func (s *Store) InternContLookup(savedEnv ExprPtr, k ContPtr) ContPtr {
	idx := s.tables.lookup.insertFull(lookupEntry{savedEnv: savedEnv, cont: k})
	return ContPtr{Tag: tag.Lookup, Raw: idx}
}

func (s *Store) InternContUnop(op tag.Op1, k ContPtr) ContPtr {
	idx := s.tables.unop.insertFull(unopEntry{op: op, cont: k})
	return ContPtr{Tag: tag.Unop, Raw: idx}
}

func (s *Store) InternContBinop(op tag.Op2, savedEnv, unevaledArgs ExprPtr, k ContPtr) ContPtr {
	idx := s.tables.binop.insertFull(binopEntry{op: op, savedEnv: savedEnv, unevaledArgs: unevaledArgs, cont: k})
	return ContPtr{Tag: tag.Binop, Raw: idx}
}

func (s *Store) InternContBinop2(op tag.Op2, arg1 ExprPtr, k ContPtr) ContPtr {
	idx := s.tables.binop2.insertFull(binop2Entry{op: op, arg1: arg1, cont: k})
	return ContPtr{Tag: tag.Binop2, Raw: idx}
}

func (s *Store) InternContRelop(rel tag.Rel2, savedEnv, unevaledArgs ExprPtr, k ContPtr) ContPtr {
	idx := s.tables.relop.insertFull(relopEntry{rel: rel, savedEnv: savedEnv, unevaledArgs: unevaledArgs, cont: k})
	return ContPtr{Tag: tag.Relop, Raw: idx}
}

func (s *Store) InternContRelop2(rel tag.Rel2, arg1 ExprPtr, k ContPtr) ContPtr {
	idx := s.tables.relop2.insertFull(relop2Entry{rel: rel, arg1: arg1, cont: k})
	return ContPtr{Tag: tag.Relop2, Raw: idx}
}

func (s *Store) InternContIf(unevaledArgs ExprPtr, k ContPtr) ContPtr {
	idx := s.tables.ifs.insertFull(ifEntry{unevaledArgs: unevaledArgs, cont: k})
	return ContPtr{Tag: tag.If, Raw: idx}
}

func (s *Store) InternContLetStar(v, body, savedEnv ExprPtr, k ContPtr) ContPtr {
	idx := s.tables.letStar.insertFull(letEntry{v: v, body: body, savedEnv: savedEnv, cont: k})
	return ContPtr{Tag: tag.LetStar, Raw: idx}
}

func (s *Store) InternContLetRecStar(v, body, savedEnv ExprPtr, k ContPtr) ContPtr {
	idx := s.tables.letRecStar.insertFull(letEntry{v: v, body: body, savedEnv: savedEnv, cont: k})
	return ContPtr{Tag: tag.LetRecStar, Raw: idx}
}
