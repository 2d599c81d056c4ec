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

// go/src/core/corpus/corpus.go

// Package corpus builds deterministic batches of synthesized signatures
// for benchmarking batch verification. Item i signs the deterministic
// message for index i, at epoch i, from seed i, so a corpus of a given
// size is identical across runs and machines.
package corpus

import (
	"context"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/adust09/sig-agg/src/core/aggregator"
	"github.com/adust09/sig-agg/src/crypto/xmss"
	logger "github.com/adust09/sig-agg/src/log"
)

// DefaultSize is the corpus size used when the caller does not choose one.
const DefaultSize = 100

// DeterministicMessage returns the fixed message for corpus index i:
// byte j is (i + j) mod 256.
func DeterministicMessage(index int) [xmss.MessageLength]byte {
	var msg [xmss.MessageLength]byte
	for offset := range msg {
		msg[offset] = byte(index + offset)
	}
	return msg
}

// Builder generates corpora over a bounded pool of workers. Item
// synthesis is pure, so items are generated in parallel and written to
// their slots by index.
type Builder struct {
	params  *xmss.Params
	workers int
	log     *zap.Logger
}

// NewBuilder returns a Builder for the given scheme parameters. workers
// bounds the generation parallelism; zero or negative means GOMAXPROCS.
// log may be nil to disable logging.
func NewBuilder(params *xmss.Params, workers int, log *zap.Logger) *Builder {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Builder{
		params:  params,
		workers: workers,
		log:     log,
	}
}

// Items synthesizes n verification items, each carrying its own public
// key. Generation stops early if ctx is cancelled, returning the
// context's error.
func (b *Builder) Items(ctx context.Context, n int) ([]aggregator.VerificationItem, error) {
	items := make([]aggregator.VerificationItem, n)

	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < b.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				msg := DeterministicMessage(i)
				pk, sig := xmss.Synthesize(b.params, uint32(i), msg, uint64(i))
				items[i] = aggregator.VerificationItem{
					Message:   msg,
					Epoch:     uint32(i),
					Signature: sig,
					PublicKey: pk,
				}
			}
		}()
	}

	var cancelled error
feed:
	for i := 0; i < n; i++ {
		select {
		case indices <- i:
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		}
	}
	close(indices)
	wg.Wait()

	if cancelled != nil {
		b.log.Warn("corpus generation cancelled",
			zap.Int("requested", n),
			zap.Error(cancelled))
		return nil, cancelled
	}

	b.log.Info("corpus generated",
		zap.Int("items", n),
		zap.Int("workers", b.workers))
	return items, nil
}

// Batch synthesizes n items and wraps them in a validated multi-key
// batch.
func (b *Builder) Batch(ctx context.Context, n int) (*aggregator.AggregationBatch, error) {
	items, err := b.Items(ctx, n)
	if err != nil {
		return nil, err
	}
	if err := aggregator.ValidateMultiKey(b.params, items); err != nil {
		return nil, err
	}
	return &aggregator.AggregationBatch{
		Mode:  aggregator.MultiKey,
		Items: items,
	}, nil
}
