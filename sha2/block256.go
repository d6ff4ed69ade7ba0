//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha2

import (
	"encoding/binary"

	"github.com/markkurossi/hashes/word"
)

// state256 is the SHA-224/256 chaining value.
type state256 [8]uint32

var _K256 = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Blocks is the SHA-256 block step.
func (s *state256) Blocks(p []byte) {
	var w [64]uint32

	h0, h1, h2, h3, h4, h5, h6, h7 :=
		s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]

	for len(p) >= BlockSize256 {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[i*4:])
		}
		for i := 16; i < 64; i++ {
			w[i] = word.Gamma1x32(w[i-2]) + w[i-7] +
				word.Gamma0x32(w[i-15]) + w[i-16]
		}

		a, b, c, d, e, f, g, h := h0, h1, h2, h3, h4, h5, h6, h7

		for i := 0; i < 64; i++ {
			t1 := h + word.Sigma1x32(e) + word.Ch(e, f, g) + _K256[i] + w[i]
			t2 := word.Sigma0x32(a) + word.Maj(a, b, c)

			h = g
			g = f
			f = e
			e = d + t1
			d = c
			c = b
			b = a
			a = t1 + t2
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e
		h5 += f
		h6 += g
		h7 += h

		p = p[BlockSize256:]
	}

	s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7] =
		h0, h1, h2, h3, h4, h5, h6, h7
}

// AppendBinary appends the big-endian state words to b.
func (s *state256) AppendBinary(b []byte) []byte {
	for _, v := range s {
		b = binary.BigEndian.AppendUint32(b, v)
	}
	return b
}

// ConsumeBinary sets the state words from b.
func (s *state256) ConsumeBinary(b []byte) []byte {
	for i := range s {
		s[i] = binary.BigEndian.Uint32(b)
		b = b[4:]
	}
	return b
}
