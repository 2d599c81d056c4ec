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

package koalabear

import "testing"

func TestOrderValue(t *testing.T) {
	// p = 2^31 - 2^24 + 1
	want := uint32(1<<31) - uint32(1<<24) + 1
	if Order != want {
		t.Fatalf("Order = %d, want %d", Order, want)
	}
}

func TestAddSub(t *testing.T) {
	cases := []struct {
		a, b uint32
	}{
		{0, 0},
		{1, Order - 1},
		{Order - 1, Order - 1},
		{123456789, 987654321},
	}
	for _, c := range cases {
		a, b := Element(c.a), Element(c.b)
		sum := Add(a, b)
		want := Element((uint64(c.a) + uint64(c.b)) % Order64)
		if sum != want {
			t.Errorf("Add(%d, %d) = %d, want %d", c.a, c.b, sum, want)
		}
		if got := Sub(sum, b); got != a {
			t.Errorf("Sub(Add(%d, %d), %d) = %d, want %d", c.a, c.b, c.b, got, c.a)
		}
	}
}

func TestMulWraps(t *testing.T) {
	a := Element(Order - 1)
	// (p-1)^2 = p^2 - 2p + 1 ≡ 1 mod p
	if got := Mul(a, a); got != 1 {
		t.Fatalf("Mul(p-1, p-1) = %d, want 1", got)
	}
}

func TestCubeIsPermutation(t *testing.T) {
	// Spot-check injectivity of the S-box on a few distinct inputs.
	seen := make(map[Element]Element)
	for v := uint32(1); v < 2000; v++ {
		c := Cube(Element(v))
		if prev, ok := seen[c]; ok {
			t.Fatalf("Cube collision: %d and %d both map to %d", prev, v, c)
		}
		seen[c] = Element(v)
	}
}

func TestNewReduces(t *testing.T) {
	if got := New(Order); got != 0 {
		t.Fatalf("New(Order) = %d, want 0", got)
	}
	if got := NewFromUint64(Order64 * 7); got != 0 {
		t.Fatalf("NewFromUint64(7p) = %d, want 0", got)
	}
}
