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

// go/src/crypto/xmss/synthesize.go

package xmss

import "fmt"

// Synthesize produces a (public key, signature) pair for one epoch and
// message that the scheme's verifier accepts, without running real key
// generation: instead of a coherent secret-key tree it builds a single-leaf
// authentication path from randomness expanded out of seed. The cost is
// proportional to the tree height, not the tree size. Identical
// (epoch, message, seed) inputs always yield identical output.
//
// Synthesized pairs are benchmark material only; they carry no secret key
// and no unforgeability guarantee.
//
// Synthesize is pure and touches no shared mutable state, so calls may run
// concurrently without coordination.
func Synthesize(p *Params, epoch uint32, message [MessageLength]byte, seed uint64) (*PublicKey, *Signature) {
	if uint64(epoch) > p.maxEpoch() {
		panic(fmt.Sprintf("xmss: epoch %d exceeds tree height %d", epoch, p.TreeHeight))
	}

	rng := newSampler(seed)
	parameter := rng.vector(p.ParameterLen)
	rho := rng.vector(p.RandLen)

	encoding := winternitzEncode(p, parameter, epoch, rho, message)

	revealed, terminals := buildChains(rng, p, parameter, epoch, encoding)

	leaf := hashLeaf(p, parameter, epoch, terminals)
	coPath, root := buildAuthPath(rng, p, parameter, epoch, leaf)

	pk := &PublicKey{
		Root:      root,
		Parameter: parameter,
	}
	sig := &Signature{
		CoPath: coPath,
		Rho:    rho,
		Hashes: revealed,
	}
	return pk, sig
}
