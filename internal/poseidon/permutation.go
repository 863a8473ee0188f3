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

// Package poseidon implements the fixed-arity Poseidon permutation the store
// treats as a black-box hash H_n : F^n -> F for n in {4, 6, 8}. The
// permutation math runs entirely on gnark-crypto's BN254 scalar field
// (internal/field); round-constant and MDS-matrix construction live in
// constants.go, lazy per-arity initialization and the preimage -> digest
// convention live in poseidon.go.
package poseidon

import "github.com/erigontech/exprstore/internal/field"

// permute runs the full Poseidon permutation over state in place: fullRounds/2
// rounds of the full S-box (every element raised to the 5th power), followed
// by partialRounds rounds where only state[0] is raised to the 5th power,
// followed by the remaining fullRounds/2 full rounds. Every round applies the
// round constants for that round and then the MDS linear layer.
func (p *Params) permute(state []field.Element) {
	half := p.fullRounds / 2

	round := 0
	for i := 0; i < half; i++ {
		p.addRoundConstants(state, round)
		p.sboxFull(state)
		p.mixLayer(state)
		round++
	}
	for i := 0; i < p.partialRounds; i++ {
		p.addRoundConstants(state, round)
		p.sboxPartial(state)
		p.mixLayer(state)
		round++
	}
	for i := 0; i < half; i++ {
		p.addRoundConstants(state, round)
		p.sboxFull(state)
		p.mixLayer(state)
		round++
	}
}

func (p *Params) addRoundConstants(state []field.Element, round int) {
	rc := p.roundConstants[round]
	for i := range state {
		state[i].Add(&state[i], &rc[i])
	}
}

func (p *Params) sboxFull(state []field.Element) {
	for i := range state {
		quintic(&state[i])
	}
}

func (p *Params) sboxPartial(state []field.Element) {
	quintic(&state[0])
}

// quintic computes x^5 in place: one square, one more square, one multiply.
func quintic(x *field.Element) {
	var x2, x4 field.Element
	x2.Square(x)
	x4.Square(&x2)
	x.Mul(&x4, x)
}

func (p *Params) mixLayer(state []field.Element) {
	next := make([]field.Element, p.width)
	for i := 0; i < p.width; i++ {
		var acc field.Element
		for j := 0; j < p.width; j++ {
			var term field.Element
			term.Mul(&p.mds[i][j], &state[j])
			acc.Add(&acc, &term)
		}
		next[i] = acc
	}
	copy(state, next)
}

// Hash runs the permutation over a copy of preimage and returns the first
// state element as the digest, mirroring how the reference implementation's
// neptune-backed Poseidon reduces an n-element preimage to a single field
// element.
func (p *Params) Hash(preimage []field.Element) field.Element {
	state := make([]field.Element, p.width)
	copy(state, preimage)
	p.permute(state)
	return state[0]
}
