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

package xmss

import (
	"strings"
	"testing"
)

func TestNamedInstantiationsValidate(t *testing.T) {
	for _, f := range []func() *Params{WinternitzW1, WinternitzW2, WinternitzW4} {
		p := f()
		if err := p.Validate(); err != nil {
			t.Errorf("instantiation with %d-bit chunks failed validation: %v", p.ChunkBits, err)
		}
	}
}

func TestWinternitzW1Shape(t *testing.T) {
	p := WinternitzW1()
	if p.Base() != 2 {
		t.Errorf("Base = %d, want 2", p.Base())
	}
	if p.NumChains() != 163 {
		t.Errorf("NumChains = %d, want 163", p.NumChains())
	}
	if p.TreeHeight != 32 {
		t.Errorf("TreeHeight = %d, want 32", p.TreeHeight)
	}
}

func TestValidateRejectsBadConfigurations(t *testing.T) {
	base := *WinternitzW1()

	cases := []struct {
		name    string
		mutate  func(*Params)
		wantSub string
	}{
		{
			"bad chunk bits",
			func(p *Params) { p.ChunkBits = 3 },
			"chunk bits",
		},
		{
			"checksum overflow",
			func(p *Params) { p.NumChecksumChunks = 4 }, // max checksum 155 needs 8 one-bit chunks
			"does not fit",
		},
		{
			"checksum accumulator overflow",
			func(p *Params) { p.ChunkBits = 8; p.NumChecksumChunks = 9 },
			"exceeds 64",
		},
		{
			"message hash too wide",
			func(p *Params) { p.MsgLenFE = 20 },
			"message hash input",
		},
		{
			"chain hash too wide",
			func(p *Params) { p.HashLen = 12 },
			"chain hash input",
		},
		{
			"zero tree height",
			func(p *Params) { p.TreeHeight = 0 },
			"tree height",
		},
		{
			"tree too tall",
			func(p *Params) { p.TreeHeight = 33 },
			"tree height",
		},
		{
			"negative length",
			func(p *Params) { p.RandLen = 0 },
			"must be positive",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := base
			c.mutate(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), c.wantSub) {
				t.Fatalf("error %q does not mention %q", err, c.wantSub)
			}
		})
	}
}
