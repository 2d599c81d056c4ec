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

// go/src/core/guest/guest.go

// Package guest holds the batch-verification kernels that run inside a
// constrained execution environment. The kernels are plain loops over
// Verify with no allocation beyond what verification itself needs, so
// their cost is batch size times single-verification cost.
package guest

import (
	"github.com/adust09/sig-agg/src/core/aggregator"
	"github.com/adust09/sig-agg/src/crypto/xmss"
)

// VerifySignatures verifies every item in the batch and returns how many
// passed. SingleKey batches verify every item against batch.PublicKey;
// MultiKey batches verify each item against its own key. Items that fail,
// including items missing the key their mode requires, are counted out
// rather than aborting the loop.
func VerifySignatures(p *xmss.Params, batch *aggregator.AggregationBatch) uint32 {
	var verified uint32
	for _, item := range batch.Items {
		pk := batch.PublicKey
		if batch.Mode == aggregator.MultiKey {
			pk = item.PublicKey
		}
		if pk == nil {
			continue
		}
		if xmss.Verify(p, pk, item.Epoch, item.Message, item.Signature) {
			verified++
		}
	}
	return verified
}

// VerifySignaturesStrict is the all-or-nothing variant: it fails on the
// first item that does not verify, reporting its index, and otherwise
// returns the batch size.
func VerifySignaturesStrict(p *xmss.Params, batch *aggregator.AggregationBatch) (uint32, error) {
	for i, item := range batch.Items {
		pk := batch.PublicKey
		if batch.Mode == aggregator.MultiKey {
			pk = item.PublicKey
		}
		if pk == nil || !xmss.Verify(p, pk, item.Epoch, item.Message, item.Signature) {
			return 0, &aggregator.InvalidSignatureError{Index: i}
		}
	}
	return uint32(len(batch.Items)), nil
}
