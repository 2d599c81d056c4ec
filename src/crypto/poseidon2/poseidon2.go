// MIT License
//
// Copyright (c) 2025 sig-agg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// go/src/crypto/poseidon2/poseidon2.go

// Package poseidon2 implements the Poseidon2 permutation over the KoalaBear
// field at widths 16 and 24, plus the feed-forward compression function and
// the sponge construction built on it. The round-constant tables are
// expensive to derive, so each width is constructed once on first use and
// shared read-only across all callers.
package poseidon2

import (
	"fmt"
	"sync"

	"github.com/adust09/sig-agg/src/crypto/koalabear"
)

// fullRounds is the number of external (full S-box) rounds, split evenly
// before and after the internal rounds.
const fullRounds = 8

// Permutation is an immutable Poseidon2 instance for one state width.
type Permutation struct {
	width          int
	internalRounds int

	externalRC [][]koalabear.Element // fullRounds x width
	internalRC []koalabear.Element   // internalRounds
	diag       []koalabear.Element   // width, internal-layer diagonal
}

var (
	once16 sync.Once
	once24 sync.Once
	perm16 *Permutation
	perm24 *Permutation
)

// Width16 returns the shared width-16 permutation, used for chain hashing.
func Width16() *Permutation {
	once16.Do(func() { perm16 = newPermutation(16, 20) })
	return perm16
}

// Width24 returns the shared width-24 permutation, used for message, leaf
// and internal-node hashing.
func Width24() *Permutation {
	once24.Do(func() { perm24 = newPermutation(24, 23) })
	return perm24
}

// Width returns the permutation state width.
func (p *Permutation) Width() int {
	return p.width
}

// Permute applies the permutation to state in place.
// len(state) must equal the permutation width.
func (p *Permutation) Permute(state []koalabear.Element) {
	if len(state) != p.width {
		panic(fmt.Sprintf("poseidon2: state length %d does not match width %d", len(state), p.width))
	}

	// Poseidon2 applies the external linear layer once before any round.
	p.externalLinear(state)

	half := fullRounds / 2
	for r := 0; r < half; r++ {
		p.externalRound(state, r)
	}
	for r := 0; r < p.internalRounds; r++ {
		p.internalRound(state, r)
	}
	for r := half; r < fullRounds; r++ {
		p.externalRound(state, r)
	}
}

func (p *Permutation) externalRound(state []koalabear.Element, r int) {
	rc := p.externalRC[r]
	for i := range state {
		state[i] = koalabear.Cube(koalabear.Add(state[i], rc[i]))
	}
	p.externalLinear(state)
}

func (p *Permutation) internalRound(state []koalabear.Element, r int) {
	state[0] = koalabear.Cube(koalabear.Add(state[0], p.internalRC[r]))
	p.internalLinear(state)
}

// externalLinear multiplies the state by the external MDS matrix
// circ(2*M4, M4, ..., M4): M4 is applied to each 4-element block, then the
// per-position sum of all transformed blocks is added back in.
func (p *Permutation) externalLinear(state []koalabear.Element) {
	for i := 0; i < p.width; i += 4 {
		mulM4(state[i : i+4])
	}
	var sums [4]koalabear.Element
	for i, v := range state {
		sums[i%4] = koalabear.Add(sums[i%4], v)
	}
	for i := range state {
		state[i] = koalabear.Add(state[i], sums[i%4])
	}
}

// mulM4 multiplies a 4-element block by the matrix
// [2 3 1 1; 1 2 3 1; 1 1 2 3; 3 1 1 2] in place.
func mulM4(b []koalabear.Element) {
	t0 := koalabear.Add(b[0], b[1])
	t1 := koalabear.Add(b[2], b[3])
	t2 := koalabear.Add(koalabear.Double(b[1]), t1)
	t3 := koalabear.Add(koalabear.Double(b[3]), t0)
	t4 := koalabear.Add(koalabear.Double(koalabear.Double(t1)), t3)
	t5 := koalabear.Add(koalabear.Double(koalabear.Double(t0)), t2)
	b[0] = koalabear.Add(t3, t5)
	b[1] = t5
	b[2] = koalabear.Add(t2, t4)
	b[3] = t4
}

// internalLinear multiplies the state by I*diag + J: every output element is
// the row sum plus its own diagonal term.
func (p *Permutation) internalLinear(state []koalabear.Element) {
	var sum koalabear.Element
	for _, v := range state {
		sum = koalabear.Add(sum, v)
	}
	for i := range state {
		state[i] = koalabear.Add(koalabear.Mul(state[i], p.diag[i]), sum)
	}
}
