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

// go/src/crypto/xmss/serialize.go

package xmss

import (
	"encoding/binary"
	"fmt"

	"github.com/adust09/sig-agg/src/crypto/koalabear"
)

// Wire layout: every field element is one little-endian uint32; composite
// values keep the field order of their structs. Public key: root then
// parameter. Signature: co-path (leaf level first), rho, then one revealed
// value per chain. The layout matches the real scheme's serialized types
// field for field, so downstream batch consumers cannot tell synthesized
// items apart from genuine ones.

// PublicKeySize returns the serialized public key length in bytes.
func PublicKeySize(p *Params) int {
	return 4 * (p.HashLen + p.ParameterLen)
}

// SignatureSize returns the serialized signature length in bytes.
func SignatureSize(p *Params) int {
	return 4 * (p.TreeHeight*p.HashLen + p.RandLen + p.NumChains()*p.HashLen)
}

func putElements(dst []byte, src []koalabear.Element) []byte {
	for _, v := range src {
		dst = binary.LittleEndian.AppendUint32(dst, uint32(v))
	}
	return dst
}

func readElements(src []byte, n int) ([]koalabear.Element, []byte, error) {
	if len(src) < 4*n {
		return nil, nil, fmt.Errorf("xmss: need %d bytes for %d elements, have %d", 4*n, n, len(src))
	}
	out := make([]koalabear.Element, n)
	for i := range out {
		v := binary.LittleEndian.Uint32(src[4*i:])
		if v >= koalabear.Order {
			return nil, nil, fmt.Errorf("xmss: element %d out of field range", v)
		}
		out[i] = koalabear.Element(v)
	}
	return out, src[4*n:], nil
}

// Bytes serializes the public key.
func (pk *PublicKey) Bytes(p *Params) []byte {
	out := make([]byte, 0, PublicKeySize(p))
	out = putElements(out, pk.Root)
	out = putElements(out, pk.Parameter)
	return out
}

// ParsePublicKey deserializes a public key, validating length and field
// range.
func ParsePublicKey(p *Params, b []byte) (*PublicKey, error) {
	if len(b) != PublicKeySize(p) {
		return nil, fmt.Errorf("xmss: public key is %d bytes, want %d", len(b), PublicKeySize(p))
	}
	root, rest, err := readElements(b, p.HashLen)
	if err != nil {
		return nil, fmt.Errorf("xmss: public key root: %w", err)
	}
	parameter, _, err := readElements(rest, p.ParameterLen)
	if err != nil {
		return nil, fmt.Errorf("xmss: public key parameter: %w", err)
	}
	return &PublicKey{Root: root, Parameter: parameter}, nil
}

// Bytes serializes the signature.
func (sig *Signature) Bytes(p *Params) []byte {
	out := make([]byte, 0, SignatureSize(p))
	for _, d := range sig.CoPath {
		out = putElements(out, d)
	}
	out = putElements(out, sig.Rho)
	for _, d := range sig.Hashes {
		out = putElements(out, d)
	}
	return out
}

// ParseSignature deserializes a signature, validating length and field
// range.
func ParseSignature(p *Params, b []byte) (*Signature, error) {
	if len(b) != SignatureSize(p) {
		return nil, fmt.Errorf("xmss: signature is %d bytes, want %d", len(b), SignatureSize(p))
	}

	rest := b
	var err error

	coPath := make([]Digest, p.TreeHeight)
	for i := range coPath {
		var d []koalabear.Element
		d, rest, err = readElements(rest, p.HashLen)
		if err != nil {
			return nil, fmt.Errorf("xmss: signature co-path level %d: %w", i, err)
		}
		coPath[i] = Digest(d)
	}

	rho, rest, err := readElements(rest, p.RandLen)
	if err != nil {
		return nil, fmt.Errorf("xmss: signature randomness: %w", err)
	}

	hashes := make([]Digest, p.NumChains())
	for i := range hashes {
		var d []koalabear.Element
		d, rest, err = readElements(rest, p.HashLen)
		if err != nil {
			return nil, fmt.Errorf("xmss: signature chain %d: %w", i, err)
		}
		hashes[i] = Digest(d)
	}

	return &Signature{CoPath: coPath, Rho: rho, Hashes: hashes}, nil
}
