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

// go/src/crypto/xmss/merkle.go

package xmss

import (
	"github.com/adust09/sig-agg/src/crypto/koalabear"
	"github.com/adust09/sig-agg/src/crypto/poseidon2"
)

// hashNode hashes a sequence of digests under a tree tweak. Two digests or
// fewer fit one width-24 compression call; the chain-terminal set feeding a
// leaf does not, so it goes through the sponge with (parameter, tweak) as
// the capacity value.
func hashNode(p *Params, parameter []koalabear.Element, tw treeTweak, digests []Digest) Digest {
	twFE := tweakElements(tw, p.TweakLen)

	if len(digests) > 2 {
		capacity := make([]koalabear.Element, 0, p.ParameterLen+p.TweakLen)
		capacity = append(capacity, parameter...)
		capacity = append(capacity, twFE...)

		flat := make([]koalabear.Element, 0, len(digests)*p.HashLen)
		for _, d := range digests {
			flat = append(flat, d...)
		}
		return poseidon2.Sponge(poseidon2.Width24(), capacity, flat, p.HashLen)
	}

	input := make([]koalabear.Element, 0, p.ParameterLen+p.TweakLen+len(digests)*p.HashLen)
	input = append(input, parameter...)
	input = append(input, twFE...)
	for _, d := range digests {
		input = append(input, d...)
	}
	return poseidon2.Compress(poseidon2.Width24(), input, p.HashLen)
}

// hashLeaf folds all chain terminals of one epoch into the level-0 node.
func hashLeaf(p *Params, parameter []koalabear.Element, epoch uint32, terminals []Digest) Digest {
	return hashNode(p, parameter, treeTweak{level: 0, posInLevel: epoch}, terminals)
}

// hashInternal combines an ordered (left, right) child pair into the parent
// at the given level and position.
func hashInternal(p *Params, parameter []koalabear.Element, level uint8, posInLevel uint32, left, right Digest) Digest {
	return hashNode(p, parameter, treeTweak{level: level, posInLevel: posInLevel}, []Digest{left, right})
}

// buildAuthPath climbs from the leaf to the root, drawing a fresh random
// sibling at every level instead of materializing the other 2^height - 1
// leaves. An even position makes the current node the left child; the
// verifier applies the same parity rule, so the pair (co-path, root) is
// self-consistent by construction. Returns the recorded siblings, leaf
// first, and the root.
func buildAuthPath(rng *sampler, p *Params, parameter []koalabear.Element, epoch uint32, leaf Digest) (coPath []Digest, root Digest) {
	coPath = make([]Digest, 0, p.TreeHeight)
	current := leaf
	position := epoch
	for level := 0; level < p.TreeHeight; level++ {
		sibling := rng.digest(p)
		left, right := current, sibling
		if position%2 != 0 {
			left, right = sibling, current
		}
		current = hashInternal(p, parameter, uint8(level+1), position>>1, left, right)
		coPath = append(coPath, sibling)
		position >>= 1
	}
	return coPath, current
}

// foldAuthPath recombines a leaf with a co-path under the verifier's parity
// rule and returns the implied root.
func foldAuthPath(p *Params, parameter []koalabear.Element, epoch uint32, leaf Digest, coPath []Digest) Digest {
	current := leaf
	position := epoch
	for level, sibling := range coPath {
		left, right := current, sibling
		if position%2 != 0 {
			left, right = sibling, current
		}
		current = hashInternal(p, parameter, uint8(level+1), position>>1, left, right)
		position >>= 1
	}
	return current
}
