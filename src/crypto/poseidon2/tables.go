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

// go/src/crypto/poseidon2/tables.go

package poseidon2

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/adust09/sig-agg/src/crypto/koalabear"
)

// newPermutation derives the round-constant and internal-diagonal tables for
// one width from a domain-separated SHAKE128 stream. The derivation is
// deterministic, so every process that agrees on the domain string agrees on
// the permutation. The tables live in one place so they can be swapped for
// an externally published set without touching the round function.
func newPermutation(width, internalRounds int) *Permutation {
	shake := sha3.NewShake128()
	shake.Write([]byte(fmt.Sprintf("sig-agg/poseidon2/koalabear/width-%d/rounds-%d-%d", width, fullRounds, internalRounds)))

	p := &Permutation{
		width:          width,
		internalRounds: internalRounds,
		externalRC:     make([][]koalabear.Element, fullRounds),
		internalRC:     make([]koalabear.Element, internalRounds),
		diag:           make([]koalabear.Element, width),
	}

	for r := range p.externalRC {
		p.externalRC[r] = sampleVector(shake, width)
	}
	p.internalRC = sampleVector(shake, internalRounds)
	p.diag = sampleVector(shake, width)

	return p
}

// sampleVector draws n canonical field elements from the stream by
// rejection sampling over 31-bit candidates.
func sampleVector(shake sha3.ShakeHash, n int) []koalabear.Element {
	out := make([]koalabear.Element, n)
	var buf [4]byte
	for i := 0; i < n; {
		if _, err := shake.Read(buf[:]); err != nil {
			panic("poseidon2: shake read failed: " + err.Error())
		}
		v := binary.LittleEndian.Uint32(buf[:]) & 0x7fffffff
		if v >= koalabear.Order {
			continue
		}
		out[i] = koalabear.Element(v)
		i++
	}
	return out
}
