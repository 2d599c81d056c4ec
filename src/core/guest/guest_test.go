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

package guest

import (
	"errors"
	"testing"

	"github.com/adust09/sig-agg/src/core/aggregator"
	"github.com/adust09/sig-agg/src/crypto/xmss"
)

func multiKeyBatch(t testing.TB, n int) *aggregator.AggregationBatch {
	t.Helper()
	p := xmss.WinternitzW1()
	items := make([]aggregator.VerificationItem, n)
	for i := range items {
		var msg [xmss.MessageLength]byte
		msg[0] = byte(i)
		pk, sig := xmss.Synthesize(p, uint32(i), msg, uint64(i))
		items[i] = aggregator.VerificationItem{
			Message:   msg,
			Epoch:     uint32(i),
			Signature: sig,
			PublicKey: pk,
		}
	}
	return &aggregator.AggregationBatch{Mode: aggregator.MultiKey, Items: items}
}

func TestVerifySignaturesMultiKey(t *testing.T) {
	p := xmss.WinternitzW1()
	batch := multiKeyBatch(t, 5)
	if got := VerifySignatures(p, batch); got != 5 {
		t.Fatalf("verified count = %d, want 5", got)
	}
}

func TestVerifySignaturesSingleKey(t *testing.T) {
	p := xmss.WinternitzW1()
	var msg [xmss.MessageLength]byte
	pk, sig := xmss.Synthesize(p, 9, msg, 3)
	batch := &aggregator.AggregationBatch{
		Mode:      aggregator.SingleKey,
		PublicKey: pk,
		Items: []aggregator.VerificationItem{
			{Message: msg, Epoch: 9, Signature: sig},
		},
	}
	if got := VerifySignatures(p, batch); got != 1 {
		t.Fatalf("verified count = %d, want 1", got)
	}
}

func TestVerifySignaturesCountsOutFailures(t *testing.T) {
	p := xmss.WinternitzW1()
	batch := multiKeyBatch(t, 4)

	// Corrupt one item's message so its signature no longer matches.
	batch.Items[2].Message[5] ^= 0xff

	if got := VerifySignatures(p, batch); got != 3 {
		t.Fatalf("verified count = %d, want 3", got)
	}
}

func TestVerifySignaturesMissingKeyCountsOut(t *testing.T) {
	p := xmss.WinternitzW1()
	batch := multiKeyBatch(t, 3)
	batch.Items[1].PublicKey = nil

	if got := VerifySignatures(p, batch); got != 2 {
		t.Fatalf("verified count = %d, want 2", got)
	}
}

func TestVerifySignaturesStrict(t *testing.T) {
	p := xmss.WinternitzW1()

	t.Run("all valid", func(t *testing.T) {
		batch := multiKeyBatch(t, 4)
		got, err := VerifySignaturesStrict(p, batch)
		if err != nil {
			t.Fatalf("VerifySignaturesStrict: %v", err)
		}
		if got != 4 {
			t.Fatalf("verified count = %d, want 4", got)
		}
	})

	t.Run("fails with first invalid index", func(t *testing.T) {
		batch := multiKeyBatch(t, 4)
		batch.Items[1].Message[0] ^= 1
		batch.Items[3].Message[0] ^= 1

		_, err := VerifySignaturesStrict(p, batch)
		var invalid *aggregator.InvalidSignatureError
		if !errors.As(err, &invalid) {
			t.Fatalf("got %v, want InvalidSignatureError", err)
		}
		if invalid.Index != 1 {
			t.Errorf("failing index = %d, want 1", invalid.Index)
		}
	})

	t.Run("empty batch verifies zero", func(t *testing.T) {
		batch := &aggregator.AggregationBatch{Mode: aggregator.MultiKey}
		got, err := VerifySignaturesStrict(p, batch)
		if err != nil {
			t.Fatalf("VerifySignaturesStrict: %v", err)
		}
		if got != 0 {
			t.Fatalf("verified count = %d, want 0", got)
		}
	})
}

func BenchmarkVerifySignatures(b *testing.B) {
	p := xmss.WinternitzW1()
	batch := multiKeyBatch(b, 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if VerifySignatures(p, batch) != 16 {
			b.Fatal("verification failed")
		}
	}
}
