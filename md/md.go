//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package md implements the Merkle–Damgård message padding engine
// shared by the SHA-1 and SHA-2 hash functions. The engine buffers
// input into blocks, passes full blocks to the algorithm's compression
// function, and appends the 0x80 delimiter, zero fill, and big-endian
// message bit length when the hash is finalized.
//
// The message length counter is 128 bits wide. Algorithms with a
// 64-bit length field encode the bit length modulo 2^64, and
// algorithms with a 128-bit length field encode it modulo 2^128, as
// the reference implementations do.
package md

import (
	"encoding/binary"
	"errors"
	"math/bits"

	"github.com/markkurossi/hashes/digest"
)

// MaxBlockSize is the largest supported block size in bytes.
const MaxBlockSize = 128

// State is the chaining value of a Merkle–Damgård hash function.
type State interface {
	// Blocks compresses the full blocks of p into the state. The
	// length of p is a multiple of the algorithm block size.
	Blocks(p []byte)

	// AppendBinary appends the big-endian encoding of the state
	// words to b.
	AppendBinary(b []byte) []byte

	// ConsumeBinary sets the state from its big-endian encoding
	// and returns the remaining bytes.
	ConsumeBinary(b []byte) []byte
}

// Params define a hash algorithm instance.
type Params[S any] struct {
	Name      string
	Size      int
	BlockSize int
	// LenSize is the size of the message length field in bytes: 8
	// or 16.
	LenSize int
	IV      S
	// Magic identifies marshaled states.
	Magic string
}

// Digest represents the partial evaluation of a checksum.
type Digest[S any, P interface {
	*S
	State
}] struct {
	params *Params[S]
	h      S
	x      [MaxBlockSize]byte
	nx     int
	lenLo  uint64
	lenHi  uint64
	done   bool
}

// New creates a new hasher for the algorithm params.
func New[S any, P interface {
	*S
	State
}](params *Params[S]) *Digest[S, P] {
	switch params.LenSize {
	case 8, 16:
	default:
		panic("md: invalid length field size")
	}
	if params.BlockSize <= params.LenSize || params.BlockSize > MaxBlockSize ||
		params.BlockSize&(params.BlockSize-1) != 0 {
		panic("md: invalid block size")
	}
	d := &Digest[S, P]{
		params: params,
	}
	d.Reset()
	return d
}

// Name returns the algorithm name.
func (d *Digest[S, P]) Name() string { return d.params.Name }

// Size returns the digest size in bytes.
func (d *Digest[S, P]) Size() int { return d.params.Size }

// BlockSize returns the block size in bytes.
func (d *Digest[S, P]) BlockSize() int { return d.params.BlockSize }

// Reset resets the hasher to its initial state.
func (d *Digest[S, P]) Reset() {
	d.h = d.params.IV
	d.nx = 0
	d.lenLo = 0
	d.lenHi = 0
	d.done = false
}

// Len returns the number of bytes written, modulo 2^64.
func (d *Digest[S, P]) Len() uint64 {
	return d.lenLo
}

// Write adds more data to the running hash. It never returns an
// error.
func (d *Digest[S, P]) Write(p []byte) (nn int, err error) {
	if d.done {
		panic("md: write after Finish")
	}
	nn = len(p)
	var carry uint64
	d.lenLo, carry = bits.Add64(d.lenLo, uint64(nn), 0)
	d.lenHi += carry

	bs := d.params.BlockSize
	if d.nx > 0 {
		n := copy(d.x[d.nx:bs], p)
		d.nx += n
		if d.nx == bs {
			P(&d.h).Blocks(d.x[:bs])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= bs {
		n := len(p) &^ (bs - 1)
		P(&d.h).Blocks(p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

// Sum appends the current hash to in and returns the resulting
// slice. It does not change the underlying hash state.
func (d *Digest[S, P]) Sum(in []byte) []byte {
	if d.done {
		panic("md: Sum after Finish")
	}
	// Make a copy of d so that caller can keep writing and summing.
	d0 := *d
	return d0.checkSum(in)
}

// Sum64 returns the first 8 bytes of the current hash as a
// big-endian integer. It does not change the underlying hash state.
func (d *Digest[S, P]) Sum64() uint64 {
	if d.done {
		panic("md: Sum64 after Finish")
	}
	d0 := *d
	var tmp [MaxBlockSize / 2]byte
	return binary.BigEndian.Uint64(d0.checkSum(tmp[:0]))
}

// Finish finalizes the hash and returns the digest.
func (d *Digest[S, P]) Finish() digest.Digest {
	if d.done {
		panic("md: Finish after Finish")
	}
	sum := d.checkSum(nil)
	d.done = true
	return sum
}

// PadLen returns the number of padding bytes, including the 0x80
// delimiter but excluding the length field, that finalize a message
// of the given length.
func (d *Digest[S, P]) PadLen(length uint64) int {
	bs := d.params.BlockSize
	t := bs - d.params.LenSize - int(length&uint64(bs-1))
	if t <= 0 {
		t += bs
	}
	return t
}

func (d *Digest[S, P]) checkSum(in []byte) []byte {
	// Length in bits.
	hi := d.lenHi<<3 | d.lenLo>>61
	lo := d.lenLo << 3

	var tmp [MaxBlockSize + 16]byte // padding + length buffer
	tmp[0] = 0x80
	t := d.PadLen(d.lenLo)
	padlen := tmp[:t+d.params.LenSize]
	if d.params.LenSize == 16 {
		binary.BigEndian.PutUint64(padlen[t:], hi)
		t += 8
	}
	binary.BigEndian.PutUint64(padlen[t:], lo)
	d.Write(padlen)

	if d.nx != 0 {
		panic("md: d.nx != 0")
	}

	n := len(in)
	in = P(&d.h).AppendBinary(in)
	return in[:n+d.params.Size]
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is
// the one of the Go standard library hashes: the algorithm magic, the
// chaining value, the buffered block, and the low 64 bits of the
// message byte length. Algorithms with a 128-bit length field append
// the high 64 bits when they are non-zero.
func (d *Digest[S, P]) MarshalBinary() ([]byte, error) {
	return d.AppendBinary(make([]byte, 0, d.marshaledSize()+8))
}

// AppendBinary appends the marshaled state to b.
func (d *Digest[S, P]) AppendBinary(b []byte) ([]byte, error) {
	if d.done {
		return nil, errors.New("md: hash state finished")
	}
	bs := d.params.BlockSize
	b = append(b, d.params.Magic...)
	b = P(&d.h).AppendBinary(b)
	b = append(b, d.x[:d.nx]...)
	b = append(b, make([]byte, bs-d.nx)...)
	b = binary.BigEndian.AppendUint64(b, d.lenLo)
	if d.params.LenSize == 16 && d.lenHi != 0 {
		b = binary.BigEndian.AppendUint64(b, d.lenHi)
	}
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Digest[S, P]) UnmarshalBinary(b []byte) error {
	magic := d.params.Magic
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return errors.New("md: invalid hash state identifier")
	}
	size := d.marshaledSize()
	if len(b) != size && (d.params.LenSize != 16 || len(b) != size+8) {
		return errors.New("md: invalid hash state size")
	}
	b = b[len(magic):]
	b = P(&d.h).ConsumeBinary(b)
	bs := d.params.BlockSize
	copy(d.x[:], b[:bs])
	b = b[bs:]
	d.lenLo = binary.BigEndian.Uint64(b)
	d.lenHi = 0
	if len(b) == 16 {
		d.lenHi = binary.BigEndian.Uint64(b[8:])
	}
	d.nx = int(d.lenLo & uint64(bs-1))
	d.done = false
	return nil
}

func (d *Digest[S, P]) marshaledSize() int {
	var zero S
	state := len(P(&zero).AppendBinary(nil))
	return len(d.params.Magic) + state + d.params.BlockSize + 8
}
