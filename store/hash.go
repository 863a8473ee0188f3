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
	"github.com/erigontech/exprstore/internal/field"
	"github.com/erigontech/exprstore/tag"
)

type scalarKey = field.Element
type scalarVal = field.Element

func preimageBytes(els []field.Element) []byte {
	out := make([]byte, 0, 32*len(els))
	for i := range els {
		b := field.Bytes(&els[i])
		out = append(out, b[:]...)
	}
	return out
}

func (s *Store) hash4(preimage [4]field.Element) field.Element {
	return s.hashCache4.LoadOrCompute(preimageBytes(preimage[:]), preimage, func() scalarVal {
		return s.poseidon.Hash4(&preimage)
	})
}

func (s *Store) hash6(preimage [6]field.Element) field.Element {
	return s.hashCache6.LoadOrCompute(preimageBytes(preimage[:]), preimage, func() scalarVal {
		return s.poseidon.Hash6(&preimage)
	})
}

func (s *Store) hash8(preimage [8]field.Element) field.Element {
	return s.hashCache8.LoadOrCompute(preimageBytes(preimage[:]), preimage, func() scalarVal {
		return s.poseidon.Hash8(&preimage)
	})
}

// createScalarPtr is the only place ScalarPtrs for ExprPtrs are created, so
// that the reverse map stays populated for every scalar pointer a caller
// could observe.
func (s *Store) createScalarPtr(ptr ExprPtr, hash field.Element) ScalarPtr {
	sp := newScalarPtr(ptr.TagField(), hash)
	b := sp.bytes()
	s.scalarPtrMap.LoadOrCompute(b[:], sp, func() ExprPtr { return ptr })
	return sp
}

// createContScalarPtr is the only place ScalarContPtrs for ContPtrs are
// created.
func (s *Store) createContScalarPtr(ptr ContPtr, hash field.Element) ScalarContPtr {
	sp := newScalarContPtr(ptr.TagField(), hash)
	b := sp.bytes()
	s.scalarContPtrMap.LoadOrCompute(b[:], sp, func() ContPtr { return ptr })
	return sp
}

// ScalarFromParts returns the ScalarPtr (tag, value) iff it has already been
// produced by a prior HashExpr/createScalarPtr call; it never speculatively
// creates an entry.
func (s *Store) ScalarFromParts(tagF, value field.Element) (ScalarPtr, bool) {
	sp := newScalarPtr(tagF, value)
	b := sp.bytes()
	if _, ok := s.scalarPtrMap.Load(b[:], sp); ok {
		return sp, true
	}
	return ScalarPtr{}, false
}

// ScalarFromPartsCont is the continuation analogue of ScalarFromParts.
func (s *Store) ScalarFromPartsCont(tagF, value field.Element) (ScalarContPtr, bool) {
	sp := newScalarContPtr(tagF, value)
	b := sp.bytes()
	if _, ok := s.scalarContPtrMap.Load(b[:], sp); ok {
		return sp, true
	}
	return ScalarContPtr{}, false
}

// FetchScalar resolves a ScalarPtr back to the typed ExprPtr it was created
// from.
func (s *Store) FetchScalar(sp ScalarPtr) (ExprPtr, bool) {
	b := sp.bytes()
	return s.scalarPtrMap.Load(b[:], sp)
}

// FetchScalarCont resolves a ScalarContPtr back to the typed ContPtr it was
// created from.
func (s *Store) FetchScalarCont(sp ScalarContPtr) (ContPtr, bool) {
	b := sp.bytes()
	return s.scalarContPtrMap.Load(b[:], sp)
}

// HashExpr computes (and caches, via the reverse map) the content-addressed
// identity of ptr.
func (s *Store) HashExpr(ptr ExprPtr) (ScalarPtr, bool) {
	switch ptr.Tag {
	case tag.Nil:
		return s.hashNil()
	case tag.Cons:
		return s.hashCons(ptr)
	case tag.Sym:
		return s.hashSym(ptr)
	case tag.Fun:
		return s.hashFun(ptr)
	case tag.Num:
		return s.hashNum(ptr)
	case tag.Str:
		return s.hashStr(ptr)
	case tag.Thunk:
		return s.hashThunk(ptr)
	default:
		return ScalarPtr{}, false
	}
}

func (s *Store) hashNil() (ScalarPtr, bool) {
	return s.hashSym(s.GetNil())
}

func (s *Store) hashSym(ptr ExprPtr) (ScalarPtr, bool) {
	name, ok := s.fetchSymText(ptr)
	if !ok {
		return ScalarPtr{}, false
	}
	return s.createScalarPtr(ptr, s.hashString(name)), true
}

func (s *Store) hashStr(ptr ExprPtr) (ScalarPtr, bool) {
	text, ok := s.tables.str.resolve(ptr.Raw)
	if !ok {
		return ScalarPtr{}, false
	}
	return s.createScalarPtr(ptr, s.hashString(text)), true
}

func (s *Store) hashFun(ptr ExprPtr) (ScalarPtr, bool) {
	e, ok := s.tables.fun.get(ptr.Raw)
	if !ok {
		return ScalarPtr{}, false
	}
	h, ok := s.hashPtrs3(e.arg, e.body, e.closedEnv)
	if !ok {
		return ScalarPtr{}, false
	}
	return s.createScalarPtr(ptr, h), true
}

func (s *Store) hashCons(ptr ExprPtr) (ScalarPtr, bool) {
	e, ok := s.tables.cons.get(ptr.Raw)
	if !ok {
		return ScalarPtr{}, false
	}
	h, ok := s.hashPtrs2(e.car, e.cdr)
	if !ok {
		return ScalarPtr{}, false
	}
	return s.createScalarPtr(ptr, h), true
}

func (s *Store) hashThunk(ptr ExprPtr) (ScalarPtr, bool) {
	th, ok := s.tables.thunk.get(ptr.Raw)
	if !ok {
		return ScalarPtr{}, false
	}
	comps, ok := s.GetHashComponentsThunk(th)
	if !ok {
		return ScalarPtr{}, false
	}
	return s.createScalarPtr(ptr, s.hash4(comps)), true
}

func (s *Store) hashNum(ptr ExprPtr) (ScalarPtr, bool) {
	n, ok := s.tables.num.get(ptr.Raw)
	if !ok {
		return ScalarPtr{}, false
	}
	return s.createScalarPtr(ptr, n.Scalar()), true
}

// hashString implements the variable-length chunk-of-seven Poseidon8
// compression scheme: the running digest x starts as the string's UTF-8
// byte length (matching the reference's s.len()), then folds in up to 7
// runes per round via Hash8(x, runes...). The preimage buffer is allocated
// once and reused across chunks, exactly like the reference's shared
// array: a partial final chunk overwrites only the slots it fills, so any
// leftover slots keep whatever the previous chunk wrote there rather than
// being zeroed. This is a fixed wire format a circuit generator depends on
// and must be reproduced exactly, not merely approximated.
func (s *Store) hashString(str string) field.Element {
	runes := []rune(str)
	x := field.FromUint64(uint64(len(str)))
	var preimage [8]field.Element

	// Chunking over zero runes yields zero chunks (matching a Rust
	// itertools chunks() iterator on an empty source): the running digest
	// is left as the bare length and never folded through Hash8.
	for i := 0; i < len(runes); i += 7 {
		preimage[0] = x
		for j := 0; j < 7 && i+j < len(runes); j++ {
			preimage[1+j] = field.FromUint64(uint64(runes[i+j]))
		}
		x = s.hash8(preimage)
	}
	return x
}

func (s *Store) hashPtrs2(a, b ExprPtr) (field.Element, bool) {
	ha, ok := s.HashExpr(a)
	if !ok {
		return field.Zero(), false
	}
	hb, ok := s.HashExpr(b)
	if !ok {
		return field.Zero(), false
	}
	return s.hashScalarPtrs2(ha, hb), true
}

func (s *Store) hashPtrs3(a, b, c ExprPtr) (field.Element, bool) {
	ha, ok := s.HashExpr(a)
	if !ok {
		return field.Zero(), false
	}
	hb, ok := s.HashExpr(b)
	if !ok {
		return field.Zero(), false
	}
	hc, ok := s.HashExpr(c)
	if !ok {
		return field.Zero(), false
	}
	return s.hashScalarPtrs3(ha, hb, hc), true
}

func (s *Store) hashScalarPtrs2(a, b ScalarPtr) field.Element {
	return s.hash4([4]field.Element{a.Tag(), a.Value(), b.Tag(), b.Value()})
}

func (s *Store) hashScalarPtrs3(a, b, c ScalarPtr) field.Element {
	return s.hash6([6]field.Element{a.Tag(), a.Value(), b.Tag(), b.Value(), c.Tag(), c.Value()})
}

func hashOp1(op tag.Op1) ScalarPtr    { return newScalarPtr(op.AsField(), field.Zero()) }
func hashOp2(op tag.Op2) ScalarPtr    { return newScalarPtr(op.AsField(), field.Zero()) }
func hashRel2(rel tag.Rel2) ScalarPtr { return newScalarPtr(rel.AsField(), field.Zero()) }

// HashCont computes the content-addressed identity of a continuation node.
func (s *Store) HashCont(ptr ContPtr) (ScalarContPtr, bool) {
	comps, ok := s.GetHashComponentsCont(ptr)
	if !ok {
		return ScalarContPtr{}, false
	}
	return s.createContScalarPtr(ptr, s.hash8(comps)), true
}

var zeroPair = [2]field.Element{field.Zero(), field.Zero()}

// GetHashComponentsCont returns the 8-field preimage for ptr's continuation
// hash. Slot layout is a wire contract: which sub-hash lands in which of the
// four 2-field slots must match exactly, including the Call/Call2
// convention of placing the saved environment before the argument/function.
func (s *Store) GetHashComponentsCont(ptr ContPtr) ([8]field.Element, bool) {
	cont, ok := s.FetchCont(ptr)
	if !ok {
		return [8]field.Element{}, false
	}

	var slots [4][2]field.Element
	def := zeroPair

	switch c := cont.(type) {
	case ContOutermost, ContDummy, ContTerminal, ContError:
		slots = [4][2]field.Element{def, def, def, def}
	case ContSimple:
		inner, ok := s.HashCont(c.Cont)
		if !ok {
			return [8]field.Element{}, false
		}
		slots = [4][2]field.Element{inner.HashComponents(), def, def, def}
	case ContCall:
		arg, ok1 := s.HashExpr(c.Arg)
		env, ok2 := s.HashExpr(c.SavedEnv)
		k, ok3 := s.HashCont(c.Cont)
		if !ok1 || !ok2 || !ok3 {
			return [8]field.Element{}, false
		}
		slots = [4][2]field.Element{env.HashComponents(), arg.HashComponents(), k.HashComponents(), def}
	case ContCall2:
		fun, ok1 := s.HashExpr(c.Fun)
		env, ok2 := s.HashExpr(c.SavedEnv)
		k, ok3 := s.HashCont(c.Cont)
		if !ok1 || !ok2 || !ok3 {
			return [8]field.Element{}, false
		}
		slots = [4][2]field.Element{env.HashComponents(), fun.HashComponents(), k.HashComponents(), def}
	case ContTail:
		env, ok1 := s.HashExpr(c.SavedEnv)
		k, ok2 := s.HashCont(c.Cont)
		if !ok1 || !ok2 {
			return [8]field.Element{}, false
		}
		slots = [4][2]field.Element{env.HashComponents(), k.HashComponents(), def, def}
	case ContLookup:
		env, ok1 := s.HashExpr(c.SavedEnv)
		k, ok2 := s.HashCont(c.Cont)
		if !ok1 || !ok2 {
			return [8]field.Element{}, false
		}
		slots = [4][2]field.Element{env.HashComponents(), k.HashComponents(), def, def}
	case ContUnop:
		op := hashOp1(c.Op)
		k, ok := s.HashCont(c.Cont)
		if !ok {
			return [8]field.Element{}, false
		}
		slots = [4][2]field.Element{op.HashComponents(), k.HashComponents(), def, def}
	case ContBinop:
		op := hashOp2(c.Op)
		env, ok1 := s.HashExpr(c.SavedEnv)
		args, ok2 := s.HashExpr(c.UnevaledArgs)
		k, ok3 := s.HashCont(c.Cont)
		if !ok1 || !ok2 || !ok3 {
			return [8]field.Element{}, false
		}
		slots = [4][2]field.Element{op.HashComponents(), env.HashComponents(), args.HashComponents(), k.HashComponents()}
	case ContBinop2:
		op := hashOp2(c.Op)
		arg1, ok1 := s.HashExpr(c.Arg1)
		k, ok2 := s.HashCont(c.Cont)
		if !ok1 || !ok2 {
			return [8]field.Element{}, false
		}
		slots = [4][2]field.Element{op.HashComponents(), arg1.HashComponents(), k.HashComponents(), def}
	case ContRelop:
		rel := hashRel2(c.Rel)
		env, ok1 := s.HashExpr(c.SavedEnv)
		args, ok2 := s.HashExpr(c.UnevaledArgs)
		k, ok3 := s.HashCont(c.Cont)
		if !ok1 || !ok2 || !ok3 {
			return [8]field.Element{}, false
		}
		slots = [4][2]field.Element{rel.HashComponents(), env.HashComponents(), args.HashComponents(), k.HashComponents()}
	case ContRelop2:
		rel := hashRel2(c.Rel)
		arg1, ok1 := s.HashExpr(c.Arg1)
		k, ok2 := s.HashCont(c.Cont)
		if !ok1 || !ok2 {
			return [8]field.Element{}, false
		}
		slots = [4][2]field.Element{rel.HashComponents(), arg1.HashComponents(), k.HashComponents(), def}
	case ContIf:
		args, ok1 := s.HashExpr(c.UnevaledArgs)
		k, ok2 := s.HashCont(c.Cont)
		if !ok1 || !ok2 {
			return [8]field.Element{}, false
		}
		slots = [4][2]field.Element{args.HashComponents(), k.HashComponents(), def, def}
	case ContLetStar:
		v, ok1 := s.HashExpr(c.Var)
		body, ok2 := s.HashExpr(c.Body)
		env, ok3 := s.HashExpr(c.SavedEnv)
		k, ok4 := s.HashCont(c.Cont)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return [8]field.Element{}, false
		}
		slots = [4][2]field.Element{v.HashComponents(), body.HashComponents(), env.HashComponents(), k.HashComponents()}
	case ContLetRecStar:
		v, ok1 := s.HashExpr(c.Var)
		body, ok2 := s.HashExpr(c.Body)
		env, ok3 := s.HashExpr(c.SavedEnv)
		k, ok4 := s.HashCont(c.Cont)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return [8]field.Element{}, false
		}
		slots = [4][2]field.Element{v.HashComponents(), body.HashComponents(), env.HashComponents(), k.HashComponents()}
	default:
		return [8]field.Element{}, false
	}

	return [8]field.Element{
		slots[0][0], slots[0][1],
		slots[1][0], slots[1][1],
		slots[2][0], slots[2][1],
		slots[3][0], slots[3][1],
	}, true
}

// GetHashComponentsThunk returns the 4-field preimage for a Thunk's hash:
// the value's hash components followed by the continuation's.
func (s *Store) GetHashComponentsThunk(th Thunk) ([4]field.Element, bool) {
	v, ok := s.HashExpr(th.Value)
	if !ok {
		return [4]field.Element{}, false
	}
	k, ok := s.HashCont(th.Continuation)
	if !ok {
		return [4]field.Element{}, false
	}
	vc := v.HashComponents()
	kc := k.HashComponents()
	return [4]field.Element{vc[0], vc[1], kc[0], kc[1]}, true
}
