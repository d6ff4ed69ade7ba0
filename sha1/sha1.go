//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements the SHA-1 hash algorithm as defined in
// FIPS 180-4 and RFC 3174.
//
// SHA-1 is cryptographically broken and should not be used for secure
// applications.
package sha1

import (
	"encoding/binary"

	"github.com/markkurossi/hashes/md"
	"github.com/markkurossi/hashes/word"
)

// The size of a SHA-1 checksum in bytes.
const Size = 20

// The blocksize of SHA-1 in bytes.
const BlockSize = 64

const (
	chunk = 64
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

const (
	_K0 = 0x5A827999
	_K1 = 0x6ED9EBA1
	_K2 = 0x8F1BBCDC
	_K3 = 0xCA62C1D6
)

// state is the SHA-1 chaining value.
type state [5]uint32

var params = &md.Params[state]{
	Name:      "SHA1",
	Size:      Size,
	BlockSize: BlockSize,
	LenSize:   8,
	IV:        state{init0, init1, init2, init3, init4},
	Magic:     "sha\x01",
}

// Digest computes SHA-1 checksums.
type Digest = md.Digest[state, *state]

// New returns a new Digest computing the SHA-1 checksum. The Digest
// also implements encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler to marshal and unmarshal its internal
// state.
func New() *Digest {
	return md.New[state](params)
}

// Sum returns the SHA-1 checksum of the data.
func Sum(data []byte) [Size]byte {
	d := New()
	d.Write(data)

	var sum [Size]byte
	copy(sum[:], d.Finish())
	return sum
}

// Blocks is a portable, pure Go version of the SHA-1 block step.
func (s *state) Blocks(p []byte) {
	var w [16]uint32

	h0, h1, h2, h3, h4 := s[0], s[1], s[2], s[3], s[4]
	for len(p) >= chunk {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[i*4:])
		}

		a, b, c, d, e := h0, h1, h2, h3, h4

		// Each of the four 20-iteration rounds differs only in the
		// computation of f and the choice of K.
		i := 0
		for ; i < 16; i++ {
			f := word.Ch(b, c, d)
			t := word.RotateLeft(a, 5) + f + e + w[i&0xf] + _K0
			a, b, c, d, e = t, a, word.RotateLeft(b, 30), c, d
		}
		for ; i < 20; i++ {
			f := word.Ch(b, c, d)
			t := word.RotateLeft(a, 5) + f + e + schedule(&w, i) + _K0
			a, b, c, d, e = t, a, word.RotateLeft(b, 30), c, d
		}
		for ; i < 40; i++ {
			f := word.Parity(b, c, d)
			t := word.RotateLeft(a, 5) + f + e + schedule(&w, i) + _K1
			a, b, c, d, e = t, a, word.RotateLeft(b, 30), c, d
		}
		for ; i < 60; i++ {
			f := word.Maj(b, c, d)
			t := word.RotateLeft(a, 5) + f + e + schedule(&w, i) + _K2
			a, b, c, d, e = t, a, word.RotateLeft(b, 30), c, d
		}
		for ; i < 80; i++ {
			f := word.Parity(b, c, d)
			t := word.RotateLeft(a, 5) + f + e + schedule(&w, i) + _K3
			a, b, c, d, e = t, a, word.RotateLeft(b, 30), c, d
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e

		p = p[chunk:]
	}

	s[0], s[1], s[2], s[3], s[4] = h0, h1, h2, h3, h4
}

// schedule computes the message schedule word i in the 16-word
// circular buffer w.
func schedule(w *[16]uint32, i int) uint32 {
	tmp := w[(i-3)&0xf] ^ w[(i-8)&0xf] ^ w[(i-14)&0xf] ^ w[i&0xf]
	w[i&0xf] = word.RotateLeft(tmp, 1)
	return w[i&0xf]
}

// AppendBinary appends the big-endian state words to b.
func (s *state) AppendBinary(b []byte) []byte {
	for _, v := range s {
		b = binary.BigEndian.AppendUint32(b, v)
	}
	return b
}

// ConsumeBinary sets the state words from b.
func (s *state) ConsumeBinary(b []byte) []byte {
	for i := range s {
		s[i] = binary.BigEndian.Uint32(b)
		b = b[4:]
	}
	return b
}
