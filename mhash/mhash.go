//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package mhash registers the hash functions of this module with the
// multihash registry and encodes digests as self-describing
// multihashes. Importing the package replaces the registry's hash
// implementations for the codes listed below.
package mhash

import (
	"errors"
	"fmt"
	"hash"

	mbase "github.com/multiformats/go-multibase"
	mh "github.com/multiformats/go-multihash"
	mhcore "github.com/multiformats/go-multihash/core"

	"github.com/markkurossi/hashes/sha1"
	"github.com/markkurossi/hashes/sha2"
	"github.com/markkurossi/hashes/sha3"
)

// Multicodec codes of the hash functions.
const (
	SHA1         uint64 = 0x11
	SHA2_256     uint64 = 0x12
	SHA2_512     uint64 = 0x13
	SHA3_512     uint64 = 0x14
	SHA3_384     uint64 = 0x15
	SHA3_256     uint64 = 0x16
	SHA3_224     uint64 = 0x17
	SHAKE_128    uint64 = 0x18
	SHAKE_256    uint64 = 0x19
	KECCAK_256   uint64 = 0x1b
	KECCAK_512   uint64 = 0x1d
	SHA2_384     uint64 = 0x20
	SHA2_224     uint64 = 0x1013
	SHA2_512_224 uint64 = 0x1014
	SHA2_512_256 uint64 = 0x1015
)

// Factories maps multicodec codes to hash constructors.
var Factories = map[uint64]func() hash.Hash{
	SHA1:         func() hash.Hash { return sha1.New() },
	SHA2_224:     func() hash.Hash { return sha2.New224() },
	SHA2_256:     func() hash.Hash { return sha2.New256() },
	SHA2_384:     func() hash.Hash { return sha2.New384() },
	SHA2_512:     func() hash.Hash { return sha2.New512() },
	SHA2_512_224: func() hash.Hash { return sha2.New512_224() },
	SHA2_512_256: func() hash.Hash { return sha2.New512_256() },
	SHA3_224:     func() hash.Hash { return sha3.New224() },
	SHA3_256:     func() hash.Hash { return sha3.New256() },
	SHA3_384:     func() hash.Hash { return sha3.New384() },
	SHA3_512:     func() hash.Hash { return sha3.New512() },
	SHAKE_128:    func() hash.Hash { return sha3.NewShake128() },
	SHAKE_256:    func() hash.Hash { return sha3.NewShake256() },
	KECCAK_256:   func() hash.Hash { return sha3.NewLegacyKeccak256() },
	KECCAK_512:   func() hash.Hash { return sha3.NewLegacyKeccak512() },
}

func init() {
	for code, factory := range Factories {
		mhcore.Register(code, factory)
	}
}

// ErrUnknownCode is returned for codes without a hash function in
// this module.
var ErrUnknownCode = errors.New("mhash: unknown hash code")

// Sum hashes data with the hash function code and returns the digest
// as a multihash.
func Sum(data []byte, code uint64) (mh.Multihash, error) {
	if _, ok := Factories[code]; !ok {
		return nil, fmt.Errorf("%w: 0x%x", ErrUnknownCode, code)
	}
	return mh.Sum(data, code, -1)
}

// Wrap encodes an existing digest as a multihash.
func Wrap(digest []byte, code uint64) (mh.Multihash, error) {
	if _, ok := Factories[code]; !ok {
		return nil, fmt.Errorf("%w: 0x%x", ErrUnknownCode, code)
	}
	return mh.Encode(digest, code)
}

// Encode encodes the multihash with the multibase encoding base, for
// example "base58btc", "base32", or "base16".
func Encode(m mh.Multihash, base string) (string, error) {
	encoder, err := mbase.EncoderByName(base)
	if err != nil {
		return "", err
	}
	return encoder.Encode(m), nil
}

// Decode decodes a multibase encoded multihash.
func Decode(s string) (*mh.DecodedMultihash, error) {
	_, data, err := mbase.Decode(s)
	if err != nil {
		return nil, err
	}
	return mh.Decode(data)
}
