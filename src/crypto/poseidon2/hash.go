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

// go/src/crypto/poseidon2/hash.go

package poseidon2

import (
	"fmt"

	"github.com/adust09/sig-agg/src/crypto/koalabear"
)

// Compress hashes input to outLen field elements by padding the input with
// zeros to the permutation width, permuting, and adding the padded input
// back into the permuted state (feed-forward). Preconditions, violated only
// by programming errors: len(input) <= width, outLen <= width, and
// len(input) >= outLen.
func Compress(perm *Permutation, input []koalabear.Element, outLen int) []koalabear.Element {
	w := perm.Width()
	if len(input) > w {
		panic(fmt.Sprintf("poseidon2: compress input length %d exceeds width %d", len(input), w))
	}
	if outLen > w {
		panic(fmt.Sprintf("poseidon2: compress output length %d exceeds width %d", outLen, w))
	}
	if len(input) < outLen {
		panic(fmt.Sprintf("poseidon2: compress input length %d shorter than output length %d", len(input), outLen))
	}

	padded := make([]koalabear.Element, w)
	copy(padded, input)

	state := make([]koalabear.Element, w)
	copy(state, padded)
	perm.Permute(state)
	koalabear.AddVec(state, padded)

	return state[:outLen:outLen]
}

// Sponge hashes a variable-length input to outLen field elements. The
// capacity vector is written into the leading state slots and never touched
// by absorption; the remaining width - len(capacity) slots form the rate.
// The input is zero-padded to a whole number of rate blocks, and each block
// is added into the rate portion before permuting.
func Sponge(perm *Permutation, capacity, input []koalabear.Element, outLen int) []koalabear.Element {
	w := perm.Width()
	if len(capacity) >= w {
		panic(fmt.Sprintf("poseidon2: sponge capacity length %d must be below width %d", len(capacity), w))
	}
	if outLen > w {
		panic(fmt.Sprintf("poseidon2: sponge output length %d exceeds width %d", outLen, w))
	}
	rate := w - len(capacity)

	padded := input
	if rem := len(input) % rate; rem != 0 {
		padded = make([]koalabear.Element, len(input)+rate-rem)
		copy(padded, input)
	}

	state := make([]koalabear.Element, w)
	copy(state, capacity)

	for off := 0; off < len(padded); off += rate {
		block := padded[off : off+rate]
		for i, v := range block {
			state[len(capacity)+i] = koalabear.Add(state[len(capacity)+i], v)
		}
		perm.Permute(state)
	}

	return state[:outLen:outLen]
}
