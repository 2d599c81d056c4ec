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

// go/src/core/aggregator/errors.go

package aggregator

import (
	"errors"
	"fmt"
)

// ErrEmptyBatch is returned when a batch carries no items at all.
var ErrEmptyBatch = errors.New("empty batch: at least one signature required")

// DuplicateEpochError reports two items claiming the same epoch in
// single-key mode, where each epoch keys a distinct one-time signature.
type DuplicateEpochError struct {
	Epoch uint32
}

func (e *DuplicateEpochError) Error() string {
	return fmt.Sprintf("duplicate epoch %d in single-key aggregation mode", e.Epoch)
}

// MismatchedPublicKeyError reports an item whose public key differs from
// the batch's shared key in single-key mode.
type MismatchedPublicKeyError struct {
	Expected string
	Found    string
}

func (e *MismatchedPublicKeyError) Error() string {
	return fmt.Sprintf("mismatched public key: expected %s, found %s", e.Expected, e.Found)
}

// DuplicateKeyEpochPairError reports two items claiming the same
// (public key, epoch) pair in multi-key mode.
type DuplicateKeyEpochPairError struct {
	PublicKey string // truncated hex of the serialized key
	Epoch     uint32
}

func (e *DuplicateKeyEpochPairError) Error() string {
	return fmt.Sprintf("duplicate (public_key, epoch) pair: (%s, %d) in multi-key mode", e.PublicKey, e.Epoch)
}

// MissingPublicKeyError reports an item lacking its required public key.
type MissingPublicKeyError struct {
	Mode AggregationMode
}

func (e *MissingPublicKeyError) Error() string {
	return fmt.Sprintf("missing public key in %s mode", e.Mode)
}

// BatchTooLargeError reports a batch exceeding the configured size cap.
type BatchTooLargeError struct {
	Size int
	Max  int
}

func (e *BatchTooLargeError) Error() string {
	return fmt.Sprintf("batch size %d exceeds maximum %d", e.Size, e.Max)
}

// InvalidSignatureError reports the first item that failed verification.
type InvalidSignatureError struct {
	Index int
}

func (e *InvalidSignatureError) Error() string {
	return fmt.Sprintf("invalid signature at index %d", e.Index)
}

// VerificationMismatchError reports a verified count that does not match
// the batch size.
type VerificationMismatchError struct {
	Expected int
	Actual   int
}

func (e *VerificationMismatchError) Error() string {
	return fmt.Sprintf("verification mismatch: expected %d valid signatures, found %d", e.Expected, e.Actual)
}
