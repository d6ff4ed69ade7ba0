//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha3 implements the SHA-3 hash functions and the SHAKE
// extendable-output functions defined in FIPS 202, and the legacy
// Keccak-256 and Keccak-512 hashes with the original Keccak padding.
package sha3

import (
	"encoding/binary"

	"github.com/markkurossi/hashes/digest"
	"github.com/markkurossi/hashes/keccak"
)

// Domain separation bytes, including the first padding bit.
const (
	dsbyteSHA3   = 0x06
	dsbyteShake  = 0x1f
	dsbyteKeccak = 0x01
)

// Digest computes fixed-size Keccak based hashes.
type Digest struct {
	name   string
	sponge keccak.Sponge[uint64]
	size   int
	done   bool
}

func newDigest(name string, rate, size int, dsbyte byte) *Digest {
	return &Digest{
		name:   name,
		sponge: keccak.NewSponge[uint64](rate, dsbyte),
		size:   size,
	}
}

// New224 creates a new SHA3-224 hash. Its generic security strength
// is 224 bits against preimage attacks, and 112 bits against
// collision attacks.
func New224() *Digest { return newDigest("SHA3-224", 144, 28, dsbyteSHA3) }

// New256 creates a new SHA3-256 hash. Its generic security strength
// is 256 bits against preimage attacks, and 128 bits against
// collision attacks.
func New256() *Digest { return newDigest("SHA3-256", 136, 32, dsbyteSHA3) }

// New384 creates a new SHA3-384 hash. Its generic security strength
// is 384 bits against preimage attacks, and 192 bits against
// collision attacks.
func New384() *Digest { return newDigest("SHA3-384", 104, 48, dsbyteSHA3) }

// New512 creates a new SHA3-512 hash. Its generic security strength
// is 512 bits against preimage attacks, and 256 bits against
// collision attacks.
func New512() *Digest { return newDigest("SHA3-512", 72, 64, dsbyteSHA3) }

// NewLegacyKeccak256 creates a new Keccak-256 hash. It uses the
// original Keccak padding and is not SHA3-256.
func NewLegacyKeccak256() *Digest {
	return newDigest("KECCAK-256", 136, 32, dsbyteKeccak)
}

// NewLegacyKeccak512 creates a new Keccak-512 hash. It uses the
// original Keccak padding and is not SHA3-512.
func NewLegacyKeccak512() *Digest {
	return newDigest("KECCAK-512", 72, 64, dsbyteKeccak)
}

// Name returns the hash function name.
func (d *Digest) Name() string { return d.name }

// Size returns the digest size in bytes.
func (d *Digest) Size() int { return d.size }

// BlockSize returns the rate of the sponge underlying this hash
// function.
func (d *Digest) BlockSize() int { return d.sponge.Rate() }

// Reset resets the hash to its initial state.
func (d *Digest) Reset() {
	d.sponge.Reset()
	d.done = false
}

// Write absorbs more data into the hash state. It never returns an
// error.
func (d *Digest) Write(p []byte) (int, error) {
	if d.done {
		panic("sha3: write after Finish")
	}
	return d.sponge.Write(p)
}

// Sum appends the current hash to b and returns the resulting slice.
// It does not change the underlying hash state.
func (d *Digest) Sum(b []byte) []byte {
	if d.done {
		panic("sha3: Sum after Finish")
	}
	dup := d.sponge
	out := make([]byte, d.size)
	dup.Read(out)
	return append(b, out...)
}

// Sum64 returns the first 8 bytes of the current hash as a
// little-endian integer, that is, the first lane of the squeezed
// state. It does not change the underlying hash state.
func (d *Digest) Sum64() uint64 {
	if d.done {
		panic("sha3: Sum64 after Finish")
	}
	dup := d.sponge
	var out [8]byte
	dup.Read(out[:])
	return binary.LittleEndian.Uint64(out[:])
}

// Finish finalizes the hash and returns its digest.
func (d *Digest) Finish() digest.Digest {
	if d.done {
		panic("sha3: Finish after Finish")
	}
	out := make(digest.Digest, d.size)
	d.sponge.Read(out)
	d.done = true
	return out
}

func sum(d *Digest, data, out []byte) {
	d.Write(data)
	d.sponge.Read(out)
}

// Sum224 returns the SHA3-224 digest of the data.
func Sum224(data []byte) (out [28]byte) {
	sum(New224(), data, out[:])
	return
}

// Sum256 returns the SHA3-256 digest of the data.
func Sum256(data []byte) (out [32]byte) {
	sum(New256(), data, out[:])
	return
}

// Sum384 returns the SHA3-384 digest of the data.
func Sum384(data []byte) (out [48]byte) {
	sum(New384(), data, out[:])
	return
}

// Sum512 returns the SHA3-512 digest of the data.
func Sum512(data []byte) (out [64]byte) {
	sum(New512(), data, out[:])
	return
}

// Keccak256 returns the legacy Keccak-256 digest of the data.
func Keccak256(data ...[]byte) (out [32]byte) {
	d := NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	d.sponge.Read(out[:])
	return
}

// Keccak512 returns the legacy Keccak-512 digest of the data.
func Keccak512(data ...[]byte) (out [64]byte) {
	d := NewLegacyKeccak512()
	for _, b := range data {
		d.Write(b)
	}
	d.sponge.Read(out[:])
	return
}
