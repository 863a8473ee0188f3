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

package poseidon

import (
	"sync"

	"github.com/erigontech/exprstore/internal/field"
)

// Constants holds the lazily-initialized parameter sets for arities 4, 6,
// and 8. Building a Params is expensive (round-constant and MDS-matrix
// generation); a zero-value Constants is ready to use and each arity is
// built at most once, analogous to the reference implementation's
// once_cell::sync::OnceCell-backed HashConstants.
type Constants struct {
	once4, once6, once8 sync.Once
	p4, p6, p8          *Params
}

func (c *Constants) params4() *Params {
	c.once4.Do(func() { c.p4 = newParams(4) })
	return c.p4
}

func (c *Constants) params6() *Params {
	c.once6.Do(func() { c.p6 = newParams(6) })
	return c.p6
}

func (c *Constants) params8() *Params {
	c.once8.Do(func() { c.p8 = newParams(8) })
	return c.p8
}

// Hash4 computes H_4(preimage) under this parameter set.
func (c *Constants) Hash4(preimage *[4]field.Element) field.Element {
	return c.params4().Hash(preimage[:])
}

// Hash6 computes H_6(preimage) under this parameter set.
func (c *Constants) Hash6(preimage *[6]field.Element) field.Element {
	return c.params6().Hash(preimage[:])
}

// Hash8 computes H_8(preimage) under this parameter set.
func (c *Constants) Hash8(preimage *[8]field.Element) field.Element {
	return c.params8().Hash(preimage[:])
}
