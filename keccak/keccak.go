//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package keccak implements the Keccak-f permutations over 5×5 lane
// states with 8, 16, 32, and 64 bit lanes, and a sponge construction
// over them.
//
// Only Keccak-f[1600] (64-bit lanes, 24 rounds) is standardized in
// FIPS 202; the narrower permutations are provided for research and
// experimentation. Use package sha3 for the standardized functions.
package keccak

import (
	"github.com/markkurossi/hashes/word"
)

// State is a Keccak state of 25 lanes. Lane (x, y) is stored at index
// x+5y.
type State[T word.Word] [25]T

// F1600 is the Keccak-f[1600] state of the FIPS 202 functions.
type F1600 = State[uint64]

// roundConstants are the iota round constants of Keccak-f[1600].
// Narrower permutations use the low lane-width bits of each constant.
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotations are the rho offsets of lane x+5y, modulo 64.
var rotations = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// Rounds returns the number of rounds of the full Keccak-f
// permutation for the lane type T: 12+2·log2(w).
func Rounds[T word.Word]() int {
	switch word.Bits[T]() {
	case 8:
		return 18
	case 16:
		return 20
	case 32:
		return 22
	default:
		return 24
	}
}

// Permute applies the full Keccak-f permutation to the state.
func (a *State[T]) Permute() {
	a.PermuteRounds(Rounds[T]())
}

// PermuteRounds applies the last n rounds of the Keccak-f permutation
// to the state, that is, the Keccak-p permutation with n rounds.
func (a *State[T]) PermuteRounds(n int) {
	total := Rounds[T]()
	if n < 0 || n > total {
		panic("keccak: invalid number of rounds")
	}
	for round := total - n; round < total; round++ {
		a.round(T(roundConstants[round]))
	}
}

func (a *State[T]) round(rc T) {
	var c [5]T
	var b [25]T

	// theta
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		d := c[(x+4)%5] ^ word.RotateLeft(c[(x+1)%5], 1)
		for y := 0; y < 25; y += 5 {
			a[x+y] ^= d
		}
	}

	// rho and pi: lane (x, y) moves to (y, 2x+3y).
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			i := x + 5*y
			b[y+5*((2*x+3*y)%5)] = word.RotateLeft(a[i], rotations[i])
		}
	}

	// chi
	for y := 0; y < 25; y += 5 {
		for x := 0; x < 5; x++ {
			a[x+y] = b[x+y] ^ (^b[(x+1)%5+y] & b[(x+2)%5+y])
		}
	}

	// iota
	a[0] ^= rc
}

// XORBytes XORs the little-endian lanes in p into the leading lanes
// of the state. The length of p must be a multiple of the lane size.
func (a *State[T]) XORBytes(p []byte) {
	n := word.Bytes[T]()
	for i := 0; len(p) >= n; i++ {
		a[i] ^= word.LoadLE[T](p)
		p = p[n:]
	}
}

// AppendBytes appends the little-endian encoding of the first n bytes
// of the state to b. The count n must be a multiple of the lane size.
func (a *State[T]) AppendBytes(b []byte, n int) []byte {
	lane := word.Bytes[T]()
	var buf [8]byte
	for i := 0; n > 0; i++ {
		word.StoreLE(buf[:], a[i])
		b = append(b, buf[:lane]...)
		n -= lane
	}
	return b
}

// Size returns the state size in bytes.
func (a *State[T]) Size() int {
	return 25 * word.Bytes[T]()
}
