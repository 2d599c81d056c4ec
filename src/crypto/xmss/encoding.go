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

// go/src/crypto/xmss/encoding.go

package xmss

import (
	"encoding/binary"

	"github.com/adust09/sig-agg/src/crypto/koalabear"
	"github.com/adust09/sig-agg/src/crypto/poseidon2"
)

// Permutation widths consumed by the three hash call shapes.
const (
	width16 = 16
	width24 = 24
)

// winternitzEncode maps a message to one base-B digit per chain: the digits
// of the randomized message hash followed by the digits of the checksum
// sum(B-1-digit). The checksum binds the total chain advancement, so a
// forger cannot trade a lower revealed position on one chain for a higher
// one elsewhere. The verifier recomputes this encoding from (parameter,
// epoch, rho, message); any divergence here silently produces
// non-verifying signatures.
func winternitzEncode(p *Params, parameter []koalabear.Element, epoch uint32, rho []koalabear.Element, message [MessageLength]byte) []uint8 {
	input := make([]koalabear.Element, 0, p.RandLen+p.ParameterLen+p.TweakLen+p.MsgLenFE)
	input = append(input, rho...)
	input = append(input, parameter...)
	input = append(input, encodeIntToElements(uint64(epoch), messageHashSeparator, p.TweakLen)...)
	input = append(input, encodeBytesToElements(message[:], p.MsgLenFE)...)

	digest := poseidon2.Compress(poseidon2.Width24(), input, p.HashLen)
	digits := decodeDigestToDigits(digest, p.NumMessageChunks, p.Base())

	base := uint64(p.Base())
	var checksum uint64
	for _, d := range digits {
		checksum += base - 1 - uint64(d)
	}

	var csBytes [8]byte
	binary.LittleEndian.PutUint64(csBytes[:], checksum)
	csChunks := bytesToChunks(csBytes[:], p.ChunkBits)

	// bytesToChunks over 8 bytes always yields at least NumChecksumChunks
	// digits for any validated parameter set; high digits are zero when the
	// checksum is small.
	return append(digits, csChunks[:p.NumChecksumChunks]...)
}
