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

// go/src/crypto/xmss/types.go

package xmss

import "github.com/adust09/sig-agg/src/crypto/koalabear"

// Digest is a hash value of Params.HashLen field elements. Digests are used
// for chain values, leaf values, tree nodes and the root, and are never
// mutated once produced.
type Digest []koalabear.Element

// clone returns an independent copy of d.
func (d Digest) clone() Digest {
	c := make(Digest, len(d))
	copy(c, d)
	return c
}

// PublicKey is the verifier-side key: the Merkle root and the public
// parameter shared by every hash call of one key.
type PublicKey struct {
	Root      Digest
	Parameter []koalabear.Element
}

// Signature carries everything the verifier needs beyond the message and
// epoch: the authentication co-path from leaf to root, the encoding
// randomness rho, and one revealed chain value per Winternitz chain.
// The field order matches the wire layout of the real scheme.
type Signature struct {
	CoPath []Digest
	Rho    []koalabear.Element
	Hashes []Digest
}
