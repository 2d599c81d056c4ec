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

// go/src/crypto/xmss/codec.go

package xmss

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/adust09/sig-agg/src/crypto/koalabear"
)

// The codec views byte strings and digests as big integers and converts
// them to fixed-arity digit vectors by repeated division. uint256 is the
// accumulator: every integer handled here is bounded by 2^256 (messages are
// 32 bytes, digests at most 8 elements of 31 bits), so a fixed-capacity
// type avoids heap-churning arbitrary-precision arithmetic in the hot path.

var fieldModulus = uint256.NewInt(uint64(koalabear.Order))

// reduceToElements emits outLen base-p digits of acc, least significant
// first. Any excess value beyond outLen digits is silently dropped; that is
// the documented contract for every call site in this package (the original
// scheme extracts a fixed digit count the same way). acc is consumed.
func reduceToElements(acc *uint256.Int, outLen int) []koalabear.Element {
	out := make([]koalabear.Element, outLen)
	var rem uint256.Int
	for i := range out {
		acc.DivMod(acc, fieldModulus, &rem)
		out[i] = koalabear.Element(rem.Uint64())
	}
	return out
}

// encodeBytesToElements treats b as a little-endian integer and emits
// outLen field elements, least significant first. b must not exceed 32
// bytes; longer inputs are a programming error at the call site, not a
// runtime condition.
func encodeBytesToElements(b []byte, outLen int) []koalabear.Element {
	if len(b) > 32 {
		panic(fmt.Sprintf("xmss: byte-to-field input is %d bytes, exceeds 32", len(b)))
	}
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	acc := new(uint256.Int).SetBytes(be)
	return reduceToElements(acc, outLen)
}

// encodeIntToElements packs (value << 8) | separator into outLen field
// elements. Used for the message-hash epoch tweak, which is deliberately a
// different packing family from chain and tree tweaks.
func encodeIntToElements(value uint64, separator uint8, outLen int) []koalabear.Element {
	acc := uint256.NewInt(value<<8 | uint64(separator))
	return reduceToElements(acc, outLen)
}

// decodeDigestToDigits reinterprets a digest as one big integer, most
// significant element first, and emits numDigits base-`base` digits, least
// significant first. Excess precision beyond numDigits digits is dropped.
func decodeDigestToDigits(digest Digest, numDigits, base int) []uint8 {
	if len(digest) > 8 {
		panic(fmt.Sprintf("xmss: digest of %d elements exceeds decode capacity", len(digest)))
	}
	acc := new(uint256.Int)
	var tmp uint256.Int
	for _, fe := range digest {
		acc.Mul(acc, fieldModulus)
		acc.Add(acc, tmp.SetUint64(uint64(fe)))
	}

	div := uint256.NewInt(uint64(base))
	out := make([]uint8, numDigits)
	var rem uint256.Int
	for i := range out {
		acc.DivMod(acc, div, &rem)
		out[i] = uint8(rem.Uint64())
	}
	return out
}

// bytesToChunks splits b, read little-endian, into chunkBits-wide digits.
// A trailing partial accumulator is flushed as a final digit.
func bytesToChunks(b []byte, chunkBits int) []uint8 {
	out := make([]uint8, 0, len(b)*8/chunkBits+1)
	var acc uint32
	bits := 0
	mask := uint32(1)<<chunkBits - 1
	for _, v := range b {
		acc |= uint32(v) << bits
		bits += 8
		for bits >= chunkBits {
			out = append(out, uint8(acc&mask))
			acc >>= chunkBits
			bits -= chunkBits
		}
	}
	if bits > 0 {
		out = append(out, uint8(acc&mask))
	}
	return out
}
