//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package word implements the fixed-width word operations of the SHA
// and Keccak families: rotations, the boolean round functions, and the
// SHA-2 mixing functions of FIPS 180-4 sections 4.1.2 and 4.1.3.
package word

import (
	"math/bits"
	"unsafe"
)

// Word defines the unsigned integer types usable as hash state
// words. All arithmetic wraps around modulo 2^Bits.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bits returns the width of the word type T in bits.
func Bits[T Word]() int {
	var x T
	return int(unsafe.Sizeof(x)) * 8
}

// Bytes returns the width of the word type T in bytes.
func Bytes[T Word]() int {
	var x T
	return int(unsafe.Sizeof(x))
}

// RotateLeft returns x rotated left by n bits. The rotation count is
// taken modulo the word width so negative counts rotate right.
func RotateLeft[T Word](x T, n int) T {
	w := uint(Bits[T]())
	s := uint(n) & (w - 1)
	return x<<s | x>>(w-s)
}

// RotateRight returns x rotated right by n bits.
func RotateRight[T Word](x T, n int) T {
	return RotateLeft(x, -n)
}

// Ch is the choose function: for each bit, x selects y or z.
func Ch[T Word](x, y, z T) T {
	return ((y ^ z) & x) ^ z
}

// Maj is the majority function.
func Maj[T Word](x, y, z T) T {
	return (x & y) | ((x | y) & z)
}

// Parity is the parity function of SHA-1 rounds 20-39 and 60-79.
func Parity[T Word](x, y, z T) T {
	return x ^ y ^ z
}

// Sigma0x32 is the SHA-224/256 Σ0 function.
func Sigma0x32(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^
		bits.RotateLeft32(x, -22)
}

// Sigma1x32 is the SHA-224/256 Σ1 function.
func Sigma1x32(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^
		bits.RotateLeft32(x, -25)
}

// Gamma0x32 is the SHA-224/256 message schedule σ0 function.
func Gamma0x32(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ x>>3
}

// Gamma1x32 is the SHA-224/256 message schedule σ1 function.
func Gamma1x32(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ x>>10
}

// Sigma0x64 is the SHA-384/512 Σ0 function.
func Sigma0x64(x uint64) uint64 {
	return bits.RotateLeft64(x, -28) ^ bits.RotateLeft64(x, -34) ^
		bits.RotateLeft64(x, -39)
}

// Sigma1x64 is the SHA-384/512 Σ1 function.
func Sigma1x64(x uint64) uint64 {
	return bits.RotateLeft64(x, -14) ^ bits.RotateLeft64(x, -18) ^
		bits.RotateLeft64(x, -41)
}

// Gamma0x64 is the SHA-384/512 message schedule σ0 function.
func Gamma0x64(x uint64) uint64 {
	return bits.RotateLeft64(x, -1) ^ bits.RotateLeft64(x, -8) ^ x>>7
}

// Gamma1x64 is the SHA-384/512 message schedule σ1 function.
func Gamma1x64(x uint64) uint64 {
	return bits.RotateLeft64(x, -19) ^ bits.RotateLeft64(x, -61) ^ x>>6
}

// LoadLE decodes a little-endian word from the first Bytes[T]()
// bytes of b.
func LoadLE[T Word](b []byte) T {
	var v uint64
	for i := Bytes[T]() - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return T(v)
}

// StoreLE encodes v in little-endian order into the first Bytes[T]()
// bytes of b.
func StoreLE[T Word](b []byte, v T) {
	x := uint64(v)
	for i := 0; i < Bytes[T](); i++ {
		b[i] = byte(x)
		x >>= 8
	}
}
