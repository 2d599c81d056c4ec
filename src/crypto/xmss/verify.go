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

// go/src/crypto/xmss/verify.go

package xmss

// Verify checks a signature against a public key, epoch and message using
// only the public algorithm: it recomputes the Winternitz encoding from the
// signature randomness, walks every revealed chain value to its terminal,
// hashes the leaf, folds the co-path by epoch parity and compares the
// result with the key's root. It makes no distinction between genuine and
// synthesized material.
func Verify(p *Params, pk *PublicKey, epoch uint32, message [MessageLength]byte, sig *Signature) bool {
	if uint64(epoch) > p.maxEpoch() {
		return false
	}
	if len(pk.Root) != p.HashLen || len(pk.Parameter) != p.ParameterLen {
		return false
	}
	if len(sig.Rho) != p.RandLen || len(sig.Hashes) != p.NumChains() || len(sig.CoPath) != p.TreeHeight {
		return false
	}
	for _, d := range sig.Hashes {
		if len(d) != p.HashLen {
			return false
		}
	}
	for _, d := range sig.CoPath {
		if len(d) != p.HashLen {
			return false
		}
	}

	encoding := winternitzEncode(p, pk.Parameter, epoch, sig.Rho, message)

	lastPos := p.Base() - 1
	terminals := make([]Digest, len(encoding))
	for i, xi := range encoding {
		terminals[i] = chainWalk(p, pk.Parameter, epoch, uint8(i), xi, lastPos-int(xi), sig.Hashes[i])
	}

	leaf := hashLeaf(p, pk.Parameter, epoch, terminals)
	root := foldAuthPath(p, pk.Parameter, epoch, leaf, sig.CoPath)

	if len(root) != len(pk.Root) {
		return false
	}
	for i := range root {
		if root[i] != pk.Root[i] {
			return false
		}
	}
	return true
}
