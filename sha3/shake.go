//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha3

import (
	"encoding/binary"

	"github.com/markkurossi/hashes/digest"
	"github.com/markkurossi/hashes/keccak"
)

// Shake implements the SHAKE extendable-output functions. As a
// digest.Hasher, Sum and Finish return Size bytes of output; Read
// squeezes any amount of output.
type Shake struct {
	name   string
	sponge keccak.Sponge[uint64]
	size   int
	done   bool
}

var _ digest.XOF = &Shake{}

// NewShake128 creates a new SHAKE128 XOF. Its generic security
// strength is 128 bits. Sum and Finish return 32 bytes of output.
func NewShake128() *Shake {
	return &Shake{
		name:   "SHAKE128",
		sponge: keccak.NewSponge[uint64](168, dsbyteShake),
		size:   32,
	}
}

// NewShake256 creates a new SHAKE256 XOF. Its generic security
// strength is 256 bits. Sum and Finish return 64 bytes of output.
func NewShake256() *Shake {
	return &Shake{
		name:   "SHAKE256",
		sponge: keccak.NewSponge[uint64](136, dsbyteShake),
		size:   64,
	}
}

// Name returns the function name.
func (s *Shake) Name() string { return s.name }

// Size returns the number of bytes Sum and Finish return.
func (s *Shake) Size() int { return s.size }

// BlockSize returns the rate of the sponge.
func (s *Shake) BlockSize() int { return s.sponge.Rate() }

// Reset resets the function to its initial state.
func (s *Shake) Reset() {
	s.sponge.Reset()
	s.done = false
}

// Write absorbs more data. It panics if output has already been read.
func (s *Shake) Write(p []byte) (int, error) {
	if s.done {
		panic("sha3: write after Finish")
	}
	if s.sponge.Squeezing() {
		panic("sha3: write after Read")
	}
	return s.sponge.Write(p)
}

// Read squeezes output from the function. The first call finalizes
// the absorbed input. It never returns an error. Read panics after
// Finish.
func (s *Shake) Read(out []byte) (int, error) {
	if s.done {
		panic("sha3: Read after Finish")
	}
	return s.sponge.Read(out)
}

// Clone returns an independent copy of the function state.
func (s *Shake) Clone() digest.XOF {
	dup := *s
	return &dup
}

// Sum appends Size bytes of output to b. It squeezes a copy of the
// state and does not change the function. If output has already been
// read, Sum returns the bytes following the read output.
func (s *Shake) Sum(b []byte) []byte {
	if s.done {
		panic("sha3: Sum after Finish")
	}
	dup := s.sponge
	out := make([]byte, s.size)
	dup.Read(out)
	return append(b, out...)
}

// Sum64 returns the first 8 bytes of output as a little-endian
// integer. It does not change the function state.
func (s *Shake) Sum64() uint64 {
	if s.done {
		panic("sha3: Sum64 after Finish")
	}
	dup := s.sponge
	var out [8]byte
	dup.Read(out[:])
	return binary.LittleEndian.Uint64(out[:])
}

// Finish squeezes Size bytes of output and finalizes the function.
func (s *Shake) Finish() digest.Digest {
	if s.done {
		panic("sha3: Finish after Finish")
	}
	out := make(digest.Digest, s.size)
	s.sponge.Read(out)
	s.done = true
	return out
}

// ShakeSum128 writes len(out) bytes of the SHAKE128 output of data to
// out.
func ShakeSum128(out, data []byte) {
	s := NewShake128()
	s.Write(data)
	s.Read(out)
}

// ShakeSum256 writes len(out) bytes of the SHAKE256 output of data to
// out.
func ShakeSum256(out, data []byte) {
	s := NewShake256()
	s.Write(data)
	s.Read(out)
}
