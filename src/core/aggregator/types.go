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

// go/src/core/aggregator/types.go

// Package aggregator validates and assembles batches of XMSS signatures
// for downstream batch verification. It enforces the structural rules a
// batch must satisfy before any cryptographic work happens: no duplicate
// epochs under a shared key, no duplicate (key, epoch) pairs across keys,
// and every item carrying the key material its mode requires.
package aggregator

import (
	"github.com/adust09/sig-agg/src/crypto/xmss"
)

// AggregationMode selects the validation and verification rules applied
// to a batch.
type AggregationMode int

const (
	// SingleKey means every signature in the batch shares one public key,
	// carried on the batch rather than on the items.
	SingleKey AggregationMode = iota
	// MultiKey means each item carries its own public key.
	MultiKey
)

func (m AggregationMode) String() string {
	switch m {
	case SingleKey:
		return "SingleKey"
	case MultiKey:
		return "MultiKey"
	default:
		return "Unknown"
	}
}

// VerificationItem is a single signature with its verification context.
type VerificationItem struct {
	// Message that was signed.
	Message [xmss.MessageLength]byte
	// Epoch the signature was created for.
	Epoch uint32
	// The signature itself.
	Signature *xmss.Signature
	// PublicKey is required in MultiKey mode and nil in SingleKey mode.
	PublicKey *xmss.PublicKey
}

// AggregationBatch is a validated collection of items ready for batch
// verification.
type AggregationBatch struct {
	// Mode the batch was validated under.
	Mode AggregationMode
	// PublicKey is the shared key in SingleKey mode, nil otherwise.
	PublicKey *xmss.PublicKey
	// Items in batch order.
	Items []VerificationItem
}

// ProofMetadata records context about a proof generation run.
type ProofMetadata struct {
	// Timestamp is the unix time the proof was produced.
	Timestamp uint64
	// BatchSize is the number of signatures covered.
	BatchSize int
	// MemorySize and TraceLength describe the prover configuration.
	MemorySize  int
	TraceLength int
}

// AggregationProof wraps an opaque batch-verification proof with the
// count and mode it attests to. Proof generation itself lives outside
// this module; the bytes are carried as-is.
type AggregationProof struct {
	Proof         []byte
	VerifiedCount uint32
	Mode          AggregationMode
	Metadata      ProofMetadata
}
