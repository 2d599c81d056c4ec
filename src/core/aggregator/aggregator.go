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

// go/src/core/aggregator/aggregator.go

package aggregator

import (
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"

	"github.com/adust09/sig-agg/src/crypto/xmss"
	logger "github.com/adust09/sig-agg/src/log"
)

// keyPrefixLen is how many serialized-key bytes appear in error messages.
const keyPrefixLen = 8

// Aggregator validates verification items and assembles them into
// batches. The zero value is not usable; construct with New.
type Aggregator struct {
	params   *xmss.Params
	maxBatch int
	log      *zap.Logger
}

// New returns an Aggregator for the given scheme parameters. maxBatch
// caps the number of items per batch; zero or negative means no cap.
// log may be nil to disable logging.
func New(params *xmss.Params, maxBatch int, log *zap.Logger) *Aggregator {
	if log == nil {
		log = logger.Nop()
	}
	return &Aggregator{
		params:   params,
		maxBatch: maxBatch,
		log:      log,
	}
}

// ValidateSingleKey checks the structural rules for a single-key batch:
// at least one item and no epoch claimed twice. Items must not carry
// individual public keys; the shared key is supplied on the batch.
func ValidateSingleKey(items []VerificationItem) error {
	if len(items) == 0 {
		return ErrEmptyBatch
	}

	seen := make(map[uint32]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.Epoch]; dup {
			return &DuplicateEpochError{Epoch: item.Epoch}
		}
		seen[item.Epoch] = struct{}{}
	}
	return nil
}

// ValidateMultiKey checks the structural rules for a multi-key batch:
// at least one item, every item carrying a public key, and no
// (public key, epoch) pair claimed twice. Keys are compared by their
// serialized form.
func ValidateMultiKey(p *xmss.Params, items []VerificationItem) error {
	if len(items) == 0 {
		return ErrEmptyBatch
	}

	for _, item := range items {
		if item.PublicKey == nil {
			return &MissingPublicKeyError{Mode: MultiKey}
		}
	}

	type keyEpoch struct {
		key   string
		epoch uint32
	}
	seen := make(map[keyEpoch]struct{}, len(items))
	for _, item := range items {
		pkBytes := item.PublicKey.Bytes(p)
		pair := keyEpoch{key: string(pkBytes), epoch: item.Epoch}
		if _, dup := seen[pair]; dup {
			return &DuplicateKeyEpochPairError{
				PublicKey: hex.EncodeToString(pkBytes[:keyPrefixLen]) + "...",
				Epoch:     item.Epoch,
			}
		}
		seen[pair] = struct{}{}
	}
	return nil
}

// Aggregate validates items under the given mode and returns a batch
// ready for verification. Validation is O(N) in the number of items.
func (a *Aggregator) Aggregate(items []VerificationItem, mode AggregationMode) (*AggregationBatch, error) {
	if a.maxBatch > 0 && len(items) > a.maxBatch {
		return nil, &BatchTooLargeError{Size: len(items), Max: a.maxBatch}
	}

	var err error
	switch mode {
	case SingleKey:
		err = ValidateSingleKey(items)
	case MultiKey:
		err = ValidateMultiKey(a.params, items)
	default:
		return nil, fmt.Errorf("unknown aggregation mode %d", mode)
	}
	if err != nil {
		a.log.Debug("batch validation failed",
			zap.Stringer("mode", mode),
			zap.Int("items", len(items)),
			zap.Error(err))
		return nil, err
	}

	a.log.Info("batch aggregated",
		zap.Stringer("mode", mode),
		zap.Int("items", len(items)))

	return &AggregationBatch{
		Mode:  mode,
		Items: items,
	}, nil
}
