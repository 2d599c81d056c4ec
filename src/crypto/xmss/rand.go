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

// go/src/crypto/xmss/rand.go

package xmss

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/adust09/sig-agg/src/crypto/koalabear"
)

// sampler is a deterministic field-element source seeded from a caller
// value. Identical seeds replay identical draw sequences, which is what
// makes Synthesize reproducible. Elements are drawn by rejection sampling
// over 31-bit candidates so the distribution is uniform over the field.
type sampler struct {
	shake sha3.ShakeHash
}

func newSampler(seed uint64) *sampler {
	shake := sha3.NewShake256()
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], seed)
	shake.Write(b[:])
	return &sampler{shake: shake}
}

func (s *sampler) element() koalabear.Element {
	var buf [4]byte
	for {
		if _, err := s.shake.Read(buf[:]); err != nil {
			panic("xmss: shake read failed: " + err.Error())
		}
		v := binary.LittleEndian.Uint32(buf[:]) & 0x7fffffff
		if v < koalabear.Order {
			return koalabear.Element(v)
		}
	}
}

func (s *sampler) vector(n int) []koalabear.Element {
	out := make([]koalabear.Element, n)
	for i := range out {
		out[i] = s.element()
	}
	return out
}

func (s *sampler) digest(p *Params) Digest {
	return Digest(s.vector(p.HashLen))
}
