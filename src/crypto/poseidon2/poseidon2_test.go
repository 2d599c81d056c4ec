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

package poseidon2

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adust09/sig-agg/src/crypto/koalabear"
)

func seqState(n int) []koalabear.Element {
	s := make([]koalabear.Element, n)
	for i := range s {
		s[i] = koalabear.Element(i + 1)
	}
	return s
}

func TestSharedInstances(t *testing.T) {
	if Width16() != Width16() {
		t.Fatal("Width16 returned distinct instances")
	}
	if Width24() != Width24() {
		t.Fatal("Width24 returned distinct instances")
	}
	if Width16().Width() != 16 || Width24().Width() != 24 {
		t.Fatalf("unexpected widths %d, %d", Width16().Width(), Width24().Width())
	}
}

func TestSharedInstanceConcurrentInit(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*Permutation, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Width24()
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(got); i++ {
		if got[i] != got[0] {
			t.Fatal("concurrent Width24 calls returned distinct instances")
		}
	}
}

func TestPermuteDeterministicAndNontrivial(t *testing.T) {
	for _, perm := range []*Permutation{Width16(), Width24()} {
		in := seqState(perm.Width())

		a := make([]koalabear.Element, len(in))
		copy(a, in)
		perm.Permute(a)

		b := make([]koalabear.Element, len(in))
		copy(b, in)
		perm.Permute(b)

		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("width %d permute not deterministic:\n%s", perm.Width(), diff)
		}
		if diff := cmp.Diff(in, a); diff == "" {
			t.Fatalf("width %d permute is the identity", perm.Width())
		}
	}
}

func TestPermuteRejectsWrongWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched state length")
		}
	}()
	Width16().Permute(seqState(24))
}

func TestCompressOutputLength(t *testing.T) {
	perm := Width24()
	out := Compress(perm, seqState(21), 7)
	if len(out) != 7 {
		t.Fatalf("Compress output length = %d, want 7", len(out))
	}
}

func TestCompressFeedForward(t *testing.T) {
	// Compress must differ from the bare permutation: the feed-forward adds
	// the padded input back in.
	perm := Width16()
	in := seqState(14)

	compressed := Compress(perm, in, 7)

	state := make([]koalabear.Element, perm.Width())
	copy(state, in)
	perm.Permute(state)

	same := true
	for i := range compressed {
		if compressed[i] != state[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("Compress output equals bare permutation output")
	}
	for i := range compressed {
		want := koalabear.Add(state[i], in[i])
		if compressed[i] != want {
			t.Fatalf("feed-forward mismatch at %d: got %d, want %d", i, compressed[i], want)
		}
	}
}

func TestCompressPreconditions(t *testing.T) {
	perm := Width16()
	cases := []struct {
		name   string
		input  []koalabear.Element
		outLen int
	}{
		{"input exceeds width", seqState(17), 7},
		{"output exceeds width", seqState(16), 17},
		{"input shorter than output", seqState(3), 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			Compress(perm, c.input, c.outLen)
		})
	}
}

func TestSpongeAbsorbsAllBlocks(t *testing.T) {
	perm := Width24()
	capacity := seqState(7)

	// Two inputs sharing a first rate block but differing in the second must
	// produce different digests.
	rate := perm.Width() - len(capacity)
	a := seqState(rate + 3)
	b := make([]koalabear.Element, len(a))
	copy(b, a)
	b[rate+1] = koalabear.Add(b[rate+1], 1)

	da := Sponge(perm, capacity, a, 7)
	db := Sponge(perm, capacity, b, 7)
	if diff := cmp.Diff(da, db); diff == "" {
		t.Fatal("sponge ignored second rate block")
	}
}

func TestSpongePadsPartialBlock(t *testing.T) {
	perm := Width24()
	capacity := seqState(7)

	// Explicit zero padding to a full block must match implicit padding.
	rate := perm.Width() - len(capacity)
	short := seqState(rate - 2)
	full := make([]koalabear.Element, rate)
	copy(full, short)

	if diff := cmp.Diff(Sponge(perm, capacity, short, 7), Sponge(perm, capacity, full, 7)); diff != "" {
		t.Fatalf("implicit and explicit padding disagree:\n%s", diff)
	}
}

func BenchmarkPermuteWidth16(b *testing.B) {
	perm := Width16()
	state := seqState(16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		perm.Permute(state)
	}
}

func BenchmarkPermuteWidth24(b *testing.B) {
	perm := Width24()
	state := seqState(24)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		perm.Permute(state)
	}
}
