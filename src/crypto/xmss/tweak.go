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

// go/src/crypto/xmss/tweak.go

package xmss

import (
	"github.com/holiman/uint256"

	"github.com/adust09/sig-agg/src/crypto/koalabear"
)

// Domain-separation constants mixed into every hash invocation. The three
// values must stay pairwise distinct: a chain tweak aliasing a tree tweak
// would let structurally different hash calls collide, which breaks the
// verification contract. Distinctness is enforced by Params.Validate.
const (
	chainHashSeparator   uint8 = 0x00
	treeHashSeparator    uint8 = 0x01
	messageHashSeparator uint8 = 0x02
)

// tweak is the closed sum of hash-purpose discriminants. Each variant packs
// its coordinates and separator into one integer; pack is the only method,
// so adding a variant without an encoding cannot compile.
type tweak interface {
	pack() *uint256.Int
}

// chainTweak addresses one step of one Winternitz chain in one epoch.
type chainTweak struct {
	epoch      uint32
	chainIndex uint8
	posInChain uint8
}

func (t chainTweak) pack() *uint256.Int {
	return uint256.NewInt(uint64(t.epoch)<<24 |
		uint64(t.chainIndex)<<16 |
		uint64(t.posInChain)<<8 |
		uint64(chainHashSeparator))
}

// treeTweak addresses one node position of one Merkle level. Level 0 is the
// leaf hash; internal levels count upward toward the root.
type treeTweak struct {
	level      uint8
	posInLevel uint32
}

func (t treeTweak) pack() *uint256.Int {
	return uint256.NewInt(uint64(t.level)<<40 |
		uint64(t.posInLevel)<<8 |
		uint64(treeHashSeparator))
}

// tweakElements reduces a packed tweak into tweakLen field elements through
// the same modulus-reduction loop as the byte codec.
func tweakElements(t tweak, tweakLen int) []koalabear.Element {
	return reduceToElements(t.pack(), tweakLen)
}
