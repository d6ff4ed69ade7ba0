//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha2 implements the SHA-224, SHA-256, SHA-384, SHA-512,
// SHA-512/224, and SHA-512/256 hash algorithms as defined in FIPS
// 180-4.
//
// The truncated variants share the compression function of their
// full-width algorithm and differ only in the initial hash value and
// the digest size.
package sha2

import (
	"github.com/markkurossi/hashes/md"
)

const (
	// Size224 is the size, in bytes, of a SHA-224 checksum.
	Size224 = 28
	// Size256 is the size, in bytes, of a SHA-256 checksum.
	Size256 = 32
	// Size384 is the size, in bytes, of a SHA-384 checksum.
	Size384 = 48
	// Size512 is the size, in bytes, of a SHA-512 checksum.
	Size512 = 64

	// BlockSize256 is the block size of SHA-224 and SHA-256.
	BlockSize256 = 64
	// BlockSize512 is the block size of SHA-384, SHA-512,
	// SHA-512/224, and SHA-512/256.
	BlockSize512 = 128
)

// Digest256 computes SHA-224 and SHA-256 checksums.
type Digest256 = md.Digest[state256, *state256]

// Digest512 computes SHA-384, SHA-512, SHA-512/224, and SHA-512/256
// checksums.
type Digest512 = md.Digest[state512, *state512]

var (
	params224 = &md.Params[state256]{
		Name:      "SHA224",
		Size:      Size224,
		BlockSize: BlockSize256,
		LenSize:   8,
		IV: state256{
			0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
			0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
		},
		Magic: "sha\x02",
	}
	params256 = &md.Params[state256]{
		Name:      "SHA256",
		Size:      Size256,
		BlockSize: BlockSize256,
		LenSize:   8,
		IV: state256{
			0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
			0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
		},
		Magic: "sha\x03",
	}
	params384 = &md.Params[state512]{
		Name:      "SHA384",
		Size:      Size384,
		BlockSize: BlockSize512,
		LenSize:   16,
		IV: state512{
			0xcbbb9d5dc1059ed8, 0x629a292a367cd507,
			0x9159015a3070dd17, 0x152fecd8f70e5939,
			0x67332667ffc00b31, 0x8eb44a8768581511,
			0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
		},
		Magic: "sha\x04",
	}
	params512 = &md.Params[state512]{
		Name:      "SHA512",
		Size:      Size512,
		BlockSize: BlockSize512,
		LenSize:   16,
		IV: state512{
			0x6a09e667f3bcc908, 0xbb67ae8584caa73b,
			0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
			0x510e527fade682d1, 0x9b05688c2b3e6c1f,
			0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
		},
		Magic: "sha\x07",
	}
	params512_224 = &md.Params[state512]{
		Name:      "SHA512/224",
		Size:      Size224,
		BlockSize: BlockSize512,
		LenSize:   16,
		IV: state512{
			0x8c3d37c819544da2, 0x73e1996689dcd4d6,
			0x1dfab7ae32ff9c82, 0x679dd514582f9fcf,
			0x0f6d2b697bd44da8, 0x77e36f7304c48942,
			0x3f9d85a86a1d36c8, 0x1112e6ad91d692a1,
		},
		Magic: "sha\x05",
	}
	params512_256 = &md.Params[state512]{
		Name:      "SHA512/256",
		Size:      Size256,
		BlockSize: BlockSize512,
		LenSize:   16,
		IV: state512{
			0x22312194fc2bf72c, 0x9f555fa3c84c64c2,
			0x2393b86b6f53b151, 0x963877195940eabd,
			0x96283ee2a88effe3, 0xbe5e1e2553863992,
			0x2b0199fc2c85b8aa, 0x0eb72ddc81c52ca2,
		},
		Magic: "sha\x06",
	}
)

// New224 returns a new Digest256 computing the SHA-224 checksum.
func New224() *Digest256 {
	return md.New[state256](params224)
}

// New256 returns a new Digest256 computing the SHA-256 checksum.
func New256() *Digest256 {
	return md.New[state256](params256)
}

// New384 returns a new Digest512 computing the SHA-384 checksum.
func New384() *Digest512 {
	return md.New[state512](params384)
}

// New512 returns a new Digest512 computing the SHA-512 checksum.
func New512() *Digest512 {
	return md.New[state512](params512)
}

// New512_224 returns a new Digest512 computing the SHA-512/224
// checksum.
func New512_224() *Digest512 {
	return md.New[state512](params512_224)
}

// New512_256 returns a new Digest512 computing the SHA-512/256
// checksum.
func New512_256() *Digest512 {
	return md.New[state512](params512_256)
}

// Sum224 returns the SHA-224 checksum of the data.
func Sum224(data []byte) (sum [Size224]byte) {
	d := New224()
	d.Write(data)
	copy(sum[:], d.Finish())
	return
}

// Sum256 returns the SHA-256 checksum of the data.
func Sum256(data []byte) (sum [Size256]byte) {
	d := New256()
	d.Write(data)
	copy(sum[:], d.Finish())
	return
}

// Sum384 returns the SHA-384 checksum of the data.
func Sum384(data []byte) (sum [Size384]byte) {
	d := New384()
	d.Write(data)
	copy(sum[:], d.Finish())
	return
}

// Sum512 returns the SHA-512 checksum of the data.
func Sum512(data []byte) (sum [Size512]byte) {
	d := New512()
	d.Write(data)
	copy(sum[:], d.Finish())
	return
}

// Sum512_224 returns the SHA-512/224 checksum of the data.
func Sum512_224(data []byte) (sum [Size224]byte) {
	d := New512_224()
	d.Write(data)
	copy(sum[:], d.Finish())
	return
}

// Sum512_256 returns the SHA-512/256 checksum of the data.
func Sum512_256(data []byte) (sum [Size256]byte) {
	d := New512_256()
	d.Write(data)
	copy(sum[:], d.Finish())
	return
}
