//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package hmac implements the keyed-hash message authentication code
// (HMAC) as defined in RFC 2104 and FIPS 198-1 over any hash
// function.
package hmac

import (
	"crypto/subtle"
	"encoding/binary"
	"hash"

	"github.com/markkurossi/hashes/digest"
)

// MAC computes HMAC over the hash function newHash.
type MAC struct {
	newHash func() hash.Hash
	inner   hash.Hash
	ipad    []byte
	opad    []byte
	done    bool
}

var _ digest.Hasher = &MAC{}

// New creates a new HMAC with the hash function newHash and the key.
// Keys longer than the hash block size are first hashed with newHash.
func New(newHash func() hash.Hash, key []byte) *MAC {
	inner := newHash()
	bs := inner.BlockSize()

	if len(key) > bs {
		inner.Write(key)
		key = inner.Sum(nil)
		inner.Reset()
	}
	m := &MAC{
		newHash: newHash,
		inner:   inner,
		ipad:    make([]byte, bs),
		opad:    make([]byte, bs),
	}
	copy(m.ipad, key)
	copy(m.opad, key)
	for i := range m.ipad {
		m.ipad[i] ^= 0x36
		m.opad[i] ^= 0x5c
	}
	m.inner.Write(m.ipad)
	return m
}

// Size returns the MAC size in bytes.
func (m *MAC) Size() int {
	return m.inner.Size()
}

// BlockSize returns the block size of the underlying hash function.
func (m *MAC) BlockSize() int {
	return len(m.ipad)
}

// Reset resets the MAC to its keyed initial state.
func (m *MAC) Reset() {
	m.inner.Reset()
	m.inner.Write(m.ipad)
	m.done = false
}

// Write adds more message data to the MAC. It never returns an error.
func (m *MAC) Write(p []byte) (int, error) {
	if m.done {
		panic("hmac: write after Finish")
	}
	return m.inner.Write(p)
}

// outer computes the outer hash over the inner digest.
func (m *MAC) outer(in []byte) hash.Hash {
	o := m.newHash()
	o.Write(m.opad)
	o.Write(in)
	return o
}

// Sum appends the current MAC to b. It does not change the MAC state.
func (m *MAC) Sum(b []byte) []byte {
	if m.done {
		panic("hmac: Sum after Finish")
	}
	return m.outer(m.inner.Sum(nil)).Sum(b)
}

// Sum64 returns the 64-bit summary of the current MAC, as defined by
// the underlying hash function. For hash functions without Sum64,
// the value is the first 8 bytes of the MAC as a big-endian integer.
func (m *MAC) Sum64() uint64 {
	if m.done {
		panic("hmac: Sum64 after Finish")
	}
	o := m.outer(m.inner.Sum(nil))
	if h64, ok := o.(hash.Hash64); ok {
		return h64.Sum64()
	}
	return binary.BigEndian.Uint64(o.Sum(nil))
}

// Finish finalizes the MAC and returns its value.
func (m *MAC) Finish() digest.Digest {
	if m.done {
		panic("hmac: Finish after Finish")
	}
	var in []byte
	if h, ok := m.inner.(digest.Hasher); ok {
		in = h.Finish()
	} else {
		in = m.inner.Sum(nil)
	}
	m.done = true

	o := m.outer(in)
	if h, ok := o.(digest.Hasher); ok {
		return h.Finish()
	}
	return o.Sum(nil)
}

// Digest returns the HMAC of msg with the hash function newHash and
// the key.
func Digest(newHash func() hash.Hash, key, msg []byte) digest.Digest {
	m := New(newHash, key)
	m.Write(msg)
	return m.Finish()
}

// Equal compares two MACs for equality without leaking timing
// information.
func Equal(mac1, mac2 []byte) bool {
	return subtle.ConstantTimeCompare(mac1, mac2) == 1
}
