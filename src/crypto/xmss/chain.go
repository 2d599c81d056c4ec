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

// go/src/crypto/xmss/chain.go

package xmss

import (
	"github.com/adust09/sig-agg/src/crypto/koalabear"
	"github.com/adust09/sig-agg/src/crypto/poseidon2"
)

// chainHash applies one tweaked chain step to value.
func chainHash(p *Params, parameter []koalabear.Element, tw chainTweak, value Digest) Digest {
	input := make([]koalabear.Element, 0, p.ParameterLen+p.TweakLen+p.HashLen)
	input = append(input, parameter...)
	input = append(input, tweakElements(tw, p.TweakLen)...)
	input = append(input, value...)
	return poseidon2.Compress(poseidon2.Width16(), input, p.HashLen)
}

// chainWalk advances start by steps positions along chain chainIndex,
// beginning at position startPos. Step j hashes with position startPos+j+1,
// so walking [0, x) from the chain start and then [x, base-1) from the
// revealed value reproduces the verifier's arithmetic exactly. steps == 0
// returns start unchanged.
func chainWalk(p *Params, parameter []koalabear.Element, epoch uint32, chainIndex uint8, startPos uint8, steps int, start Digest) Digest {
	current := start
	for j := 0; j < steps; j++ {
		tw := chainTweak{
			epoch:      epoch,
			chainIndex: chainIndex,
			posInChain: startPos + uint8(j) + 1,
		}
		current = chainHash(p, parameter, tw, current)
	}
	return current
}

// buildChains draws a fresh random start per chain and walks it to the
// revealed position given by the encoding digit, then onward to the chain
// terminal. Revealed values go into the signature; terminals exist only to
// feed the leaf hash.
func buildChains(rng *sampler, p *Params, parameter []koalabear.Element, epoch uint32, encoding []uint8) (revealed, terminals []Digest) {
	revealed = make([]Digest, len(encoding))
	terminals = make([]Digest, len(encoding))
	lastPos := p.Base() - 1
	for i, xi := range encoding {
		start := rng.digest(p)
		revealed[i] = chainWalk(p, parameter, epoch, uint8(i), 0, int(xi), start)
		terminals[i] = chainWalk(p, parameter, epoch, uint8(i), xi, lastPos-int(xi), revealed[i])
	}
	return revealed, terminals
}
