//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package hashes implements a registry of the hash functions of this
// module, file hashing, and a throughput report.
//
// The hash functions live in their own packages: sha1, sha2, sha3,
// and hmac. The keccak package contains the generic Keccak-f
// permutations and sponge construction, and the md package the
// Merkle–Damgård hasher shared by SHA-1 and SHA-2.
package hashes

import (
	"errors"
	"fmt"
	"hash"
	"io"
	"strings"

	"github.com/markkurossi/hashes/digest"
	"github.com/markkurossi/hashes/hmac"
	"github.com/markkurossi/hashes/mhash"
	"github.com/markkurossi/hashes/sha1"
	"github.com/markkurossi/hashes/sha2"
	"github.com/markkurossi/hashes/sha3"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// ErrUnknownAlgorithm is returned when a hash function is not found.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// Algorithm describes a hash function.
type Algorithm struct {
	Name      string
	Size      int
	BlockSize int
	// LengthBits is the width of the message length field in bits;
	// messages are limited to 2^LengthBits-1 bits. Zero for functions
	// without a length limit.
	LengthBits int
	XOF        bool
	Multihash  uint64
	New        func() digest.Hasher
}

// MaxLength returns the maximum message length as a string.
func (alg *Algorithm) MaxLength() string {
	if alg.LengthBits == 0 {
		return "∞"
	}
	return "2" + superscript.Itoa(alg.LengthBits) + "-1"
}

// NewHash creates a new hash.Hash of the algorithm.
func (alg *Algorithm) NewHash() hash.Hash {
	return alg.New()
}

// NewHMAC creates a new HMAC with the algorithm and the key.
func (alg *Algorithm) NewHMAC(key []byte) digest.Hasher {
	return hmac.New(alg.NewHash, key)
}

// NewXOF creates a new extendable-output function. It returns nil
// if the algorithm is not an XOF.
func (alg *Algorithm) NewXOF() digest.XOF {
	xof, _ := alg.New().(digest.XOF)
	return xof
}

func (alg *Algorithm) String() string {
	return alg.Name
}

var algorithms = []*Algorithm{
	{
		Name:       "SHA1",
		Size:       sha1.Size,
		BlockSize:  sha1.BlockSize,
		LengthBits: 64,
		Multihash:  mhash.SHA1,
		New:        func() digest.Hasher { return sha1.New() },
	},
	{
		Name:       "SHA224",
		Size:       sha2.Size224,
		BlockSize:  sha2.BlockSize256,
		LengthBits: 64,
		Multihash:  mhash.SHA2_224,
		New:        func() digest.Hasher { return sha2.New224() },
	},
	{
		Name:       "SHA256",
		Size:       sha2.Size256,
		BlockSize:  sha2.BlockSize256,
		LengthBits: 64,
		Multihash:  mhash.SHA2_256,
		New:        func() digest.Hasher { return sha2.New256() },
	},
	{
		Name:       "SHA384",
		Size:       sha2.Size384,
		BlockSize:  sha2.BlockSize512,
		LengthBits: 128,
		Multihash:  mhash.SHA2_384,
		New:        func() digest.Hasher { return sha2.New384() },
	},
	{
		Name:       "SHA512",
		Size:       sha2.Size512,
		BlockSize:  sha2.BlockSize512,
		LengthBits: 128,
		Multihash:  mhash.SHA2_512,
		New:        func() digest.Hasher { return sha2.New512() },
	},
	{
		Name:       "SHA512-224",
		Size:       sha2.Size224,
		BlockSize:  sha2.BlockSize512,
		LengthBits: 128,
		Multihash:  mhash.SHA2_512_224,
		New:        func() digest.Hasher { return sha2.New512_224() },
	},
	{
		Name:       "SHA512-256",
		Size:       sha2.Size256,
		BlockSize:  sha2.BlockSize512,
		LengthBits: 128,
		Multihash:  mhash.SHA2_512_256,
		New:        func() digest.Hasher { return sha2.New512_256() },
	},
	{
		Name:      "SHA3-224",
		Size:      28,
		BlockSize: 144,
		Multihash: mhash.SHA3_224,
		New:       func() digest.Hasher { return sha3.New224() },
	},
	{
		Name:      "SHA3-256",
		Size:      32,
		BlockSize: 136,
		Multihash: mhash.SHA3_256,
		New:       func() digest.Hasher { return sha3.New256() },
	},
	{
		Name:      "SHA3-384",
		Size:      48,
		BlockSize: 104,
		Multihash: mhash.SHA3_384,
		New:       func() digest.Hasher { return sha3.New384() },
	},
	{
		Name:      "SHA3-512",
		Size:      64,
		BlockSize: 72,
		Multihash: mhash.SHA3_512,
		New:       func() digest.Hasher { return sha3.New512() },
	},
	{
		Name:      "SHAKE128",
		Size:      32,
		BlockSize: 168,
		XOF:       true,
		Multihash: mhash.SHAKE_128,
		New:       func() digest.Hasher { return sha3.NewShake128() },
	},
	{
		Name:      "SHAKE256",
		Size:      64,
		BlockSize: 136,
		XOF:       true,
		Multihash: mhash.SHAKE_256,
		New:       func() digest.Hasher { return sha3.NewShake256() },
	},
	{
		Name:      "KECCAK256",
		Size:      32,
		BlockSize: 136,
		Multihash: mhash.KECCAK_256,
		New:       func() digest.Hasher { return sha3.NewLegacyKeccak256() },
	},
	{
		Name:      "KECCAK512",
		Size:      64,
		BlockSize: 72,
		Multihash: mhash.KECCAK_512,
		New:       func() digest.Hasher { return sha3.NewLegacyKeccak512() },
	},
}

// Algorithms returns all hash functions.
func Algorithms() []*Algorithm {
	result := make([]*Algorithm, len(algorithms))
	copy(result, algorithms)
	return result
}

func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '/', ' ':
			return -1
		default:
			return r
		}
	}, strings.ToUpper(name))
}

// Lookup finds the hash function by name. The name match is case
// insensitive and ignores '-', '_', and '/' separators so that
// "sha-256", "SHA256", and "sha512/256" all name an algorithm.
func Lookup(name string) (*Algorithm, error) {
	n := normalize(name)
	for _, alg := range algorithms {
		if normalize(alg.Name) == n {
			return alg, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
}

// PrintAlgorithms prints the hash functions as a table to w.
func PrintAlgorithms(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Algorithm").SetAlign(tabulate.ML)
	tab.Header("Digest").SetAlign(tabulate.MR)
	tab.Header("Block").SetAlign(tabulate.MR)
	tab.Header("Max Bits").SetAlign(tabulate.MR)
	tab.Header("Multihash").SetAlign(tabulate.MR)

	for _, alg := range algorithms {
		row := tab.Row()
		row.Column(alg.Name)
		row.Column(fmt.Sprintf("%d", alg.Size*8))
		row.Column(fmt.Sprintf("%d", alg.BlockSize*8))
		row.Column(alg.MaxLength())
		row.Column(fmt.Sprintf("0x%x", alg.Multihash))
	}
	tab.Print(w)
}
