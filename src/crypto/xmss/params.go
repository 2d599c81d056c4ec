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

// go/src/crypto/xmss/params.go

// Package xmss implements the hashing side of a generalized XMSS signature
// scheme over the KoalaBear field: Winternitz message encoding, tweaked
// chain and tree hashing, a reference verifier, and a synthesizer that
// produces structurally valid (public key, signature) pairs from ephemeral
// randomness without a real secret-key tree. Synthesized pairs carry no
// unforgeability guarantee; their only contract is that the verifier in
// this package, and any verifier agreeing on the same permutation and
// parameters, accepts them.
package xmss

import (
	"fmt"
	"sync"
)

// MessageLength is the fixed byte length of signed messages.
const MessageLength = 32

// Params fixes one instantiation of the scheme. All lengths are counted in
// field elements unless noted. A Params value is immutable after Validate.
type Params struct {
	ParameterLen int // public parameter vector
	RandLen      int // signature randomness rho
	HashLen      int // digest width for chains, leaves, nodes, root
	MsgLenFE     int // message encoded into field elements
	TweakLen     int // packed tweak vector

	ChunkBits         int // bits per Winternitz digit; base is 1<<ChunkBits
	NumMessageChunks  int
	NumChecksumChunks int

	TreeHeight int // Merkle levels between leaf and root
}

// Base returns the Winternitz digit base.
func (p *Params) Base() int {
	return 1 << p.ChunkBits
}

// NumChains returns the total chain count, message plus checksum digits.
func (p *Params) NumChains() int {
	return p.NumMessageChunks + p.NumChecksumChunks
}

// Validate checks the parameter combination once, up front. Every failure
// here is a configuration error: no per-call input can fix it, so callers
// are expected to treat a non-nil result as fatal.
func (p *Params) Validate() error {
	if chainHashSeparator == treeHashSeparator ||
		chainHashSeparator == messageHashSeparator ||
		treeHashSeparator == messageHashSeparator {
		return fmt.Errorf("xmss: tweak separators must be pairwise distinct (chain=%#x tree=%#x message=%#x)",
			chainHashSeparator, treeHashSeparator, messageHashSeparator)
	}

	switch p.ChunkBits {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("xmss: chunk bits must be 1, 2, 4 or 8, got %d", p.ChunkBits)
	}

	for _, c := range []struct {
		name string
		v    int
	}{
		{"parameter length", p.ParameterLen},
		{"randomness length", p.RandLen},
		{"hash length", p.HashLen},
		{"message field length", p.MsgLenFE},
		{"tweak length", p.TweakLen},
		{"message chunk count", p.NumMessageChunks},
		{"checksum chunk count", p.NumChecksumChunks},
	} {
		if c.v <= 0 {
			return fmt.Errorf("xmss: %s must be positive, got %d", c.name, c.v)
		}
	}

	if p.TreeHeight < 1 || p.TreeHeight > 32 {
		return fmt.Errorf("xmss: tree height must be in [1, 32], got %d", p.TreeHeight)
	}

	// The three hash call shapes must fit their permutation widths.
	if n := p.RandLen + p.ParameterLen + p.TweakLen + p.MsgLenFE; n > width24 {
		return fmt.Errorf("xmss: message hash input is %d elements, exceeds width %d", n, width24)
	}
	if n := p.ParameterLen + p.TweakLen + p.HashLen; n > width16 {
		return fmt.Errorf("xmss: chain hash input is %d elements, exceeds width %d", n, width16)
	}
	if n := p.ParameterLen + p.TweakLen + 2*p.HashLen; n > width24 {
		return fmt.Errorf("xmss: tree node hash input is %d elements, exceeds width %d", n, width24)
	}
	if p.HashLen > p.RandLen+p.ParameterLen+p.TweakLen+p.MsgLenFE {
		return fmt.Errorf("xmss: hash length %d exceeds message hash input length", p.HashLen)
	}

	// Checksum representability: the sum of digit complements must fit the
	// fixed checksum digit count, and its little-endian byte image must fit
	// a 64-bit accumulator.
	if p.NumChecksumChunks*p.ChunkBits > 64 {
		return fmt.Errorf("xmss: checksum spans %d bits, exceeds 64", p.NumChecksumChunks*p.ChunkBits)
	}
	maxChecksum := uint64(p.NumMessageChunks) * uint64(p.Base()-1)
	if limit := uint64(1) << (p.NumChecksumChunks * p.ChunkBits); maxChecksum >= limit {
		return fmt.Errorf("xmss: maximum checksum %d does not fit %d chunks of %d bits",
			maxChecksum, p.NumChecksumChunks, p.ChunkBits)
	}

	if p.Base() > 256 {
		return fmt.Errorf("xmss: base %d exceeds 256", p.Base())
	}
	if p.NumChains() > 256 {
		return fmt.Errorf("xmss: chain count %d exceeds 256", p.NumChains())
	}

	return nil
}

// maxEpoch returns the largest epoch addressable by the tree height.
func (p *Params) maxEpoch() uint64 {
	return (uint64(1) << p.TreeHeight) - 1
}

func mustParams(p *Params) func() *Params {
	var once sync.Once
	return func() *Params {
		once.Do(func() {
			if err := p.Validate(); err != nil {
				panic(err)
			}
		})
		return p
	}
}

// WinternitzW1 is the benchmark instantiation: one-bit digits, 155 message
// chunks + 8 checksum chunks over a 7-element digest, full 2^32 tree height.
var WinternitzW1 = mustParams(&Params{
	ParameterLen:      5,
	RandLen:           5,
	HashLen:           7,
	MsgLenFE:          9,
	TweakLen:          2,
	ChunkBits:         1,
	NumMessageChunks:  155,
	NumChecksumChunks: 8,
	TreeHeight:        32,
})

// WinternitzW2 uses two-bit digits: 78 message chunks + 4 checksum chunks.
var WinternitzW2 = mustParams(&Params{
	ParameterLen:      5,
	RandLen:           5,
	HashLen:           7,
	MsgLenFE:          9,
	TweakLen:          2,
	ChunkBits:         2,
	NumMessageChunks:  78,
	NumChecksumChunks: 4,
	TreeHeight:        32,
})

// WinternitzW4 uses four-bit digits: 39 message chunks + 3 checksum chunks.
var WinternitzW4 = mustParams(&Params{
	ParameterLen:      5,
	RandLen:           5,
	HashLen:           7,
	MsgLenFE:          9,
	TweakLen:          2,
	ChunkBits:         4,
	NumMessageChunks:  39,
	NumChecksumChunks: 3,
	TreeHeight:        32,
})
