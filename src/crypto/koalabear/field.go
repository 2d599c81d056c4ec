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

// go/src/crypto/koalabear/field.go

// Package koalabear implements arithmetic in the KoalaBear prime field
// GF(p) with p = 2^31 - 2^24 + 1. The field is the coefficient domain for
// the Poseidon2 permutation used by the XMSS hashing layer; p-1 is not
// divisible by 3, so x^3 is a permutation of the field.
package koalabear

// Order is the field modulus p = 2^31 - 2^24 + 1.
const Order uint32 = 2130706433

// Order64 is the modulus widened for 64-bit intermediate arithmetic.
const Order64 uint64 = uint64(Order)

// Element is a field element, always kept in canonical form [0, Order).
type Element uint32

// reduceOnce reduces a value < 2*Order to [0, Order).
func reduceOnce(a uint32) Element {
	x := a - Order
	// If a < Order the subtraction wrapped and the high bit is set.
	x += (x >> 31) * Order
	return Element(x)
}

// New returns the canonical element for an arbitrary uint32.
func New(v uint32) Element {
	return Element(uint64(v) % Order64)
}

// NewFromUint64 returns the canonical element for an arbitrary uint64.
func NewFromUint64(v uint64) Element {
	return Element(v % Order64)
}

// Add returns a + b mod p.
func Add(a, b Element) Element {
	return reduceOnce(uint32(a) + uint32(b))
}

// Sub returns a - b mod p.
func Sub(a, b Element) Element {
	return reduceOnce(uint32(a) - uint32(b) + Order)
}

// Mul returns a * b mod p.
func Mul(a, b Element) Element {
	return Element(uint64(a) * uint64(b) % Order64)
}

// Cube returns a^3 mod p, the Poseidon2 S-box for this field.
func Cube(a Element) Element {
	return Mul(Mul(a, a), a)
}

// Double returns 2a mod p.
func Double(a Element) Element {
	return Add(a, a)
}

// AddVec adds b into a element-wise. The slices must have equal length.
func AddVec(a, b []Element) {
	for i := range a {
		a[i] = Add(a[i], b[i])
	}
}
