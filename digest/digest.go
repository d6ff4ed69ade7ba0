//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package digest defines the incremental hasher contract shared by
// all hash and MAC implementations, and the digest value type.
//
// The contract has two finalization paths. Sum and Sum64 finalize a
// copy of the hasher and can be called any number of times. Finish
// finalizes the hasher itself and returns the full digest; the hasher
// must be Reset before it is used again.
package digest

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strings"
)

// Hasher is an incremental hash or MAC function.
type Hasher interface {
	hash.Hash64

	// Finish finalizes the hasher and returns its digest. Calling
	// Write or Finish after Finish panics.
	Finish() Digest
}

// XOF is an extendable-output function. Read squeezes output from
// the function; the first call finalizes the absorbed input.
type XOF interface {
	Hasher
	io.Reader

	// Clone returns an independent copy of the function state.
	Clone() XOF
}

// Digest is a hash function output.
type Digest []byte

// Hex returns the digest as a lowercase hex string.
func (d Digest) Hex() string {
	return hex.EncodeToString(d)
}

// HexUpper returns the digest as an uppercase hex string.
func (d Digest) HexUpper() string {
	return strings.ToUpper(hex.EncodeToString(d))
}

func (d Digest) String() string {
	return d.Hex()
}

// Format implements fmt.Formatter. The verbs %x, %s, and %v print
// lowercase hex, and %X prints uppercase hex.
func (d Digest) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x', 's', 'v':
		io.WriteString(f, d.Hex())
	case 'X':
		io.WriteString(f, d.HexUpper())
	default:
		fmt.Fprintf(f, "%%!%c(digest.Digest=%s)", verb, d.Hex())
	}
}

// Equal tests if the digests are equal. The comparison is not
// constant time; use hmac.Equal for comparing MACs.
func (d Digest) Equal(o Digest) bool {
	return bytes.Equal(d, o)
}

// Uint64 returns the first 8 bytes of the digest as a big-endian
// integer.
func (d Digest) Uint64() uint64 {
	return binary.BigEndian.Uint64(d)
}

// WriteFields writes the fields to w so that the field boundaries
// are part of the hashed data: each field is prefixed with its length
// as an unsigned varint. Writing ("ab", "c") therefore produces a
// different hash input than writing ("abc").
func WriteFields(w io.Writer, fields ...[]byte) error {
	var hdr [binary.MaxVarintLen64]byte
	for _, field := range fields {
		n := binary.PutUvarint(hdr[:], uint64(len(field)))
		if _, err := w.Write(hdr[:n]); err != nil {
			return err
		}
		if _, err := w.Write(field); err != nil {
			return err
		}
	}
	return nil
}

// WriteStrings is WriteFields for string fields.
func WriteStrings(w io.Writer, fields ...string) error {
	for _, field := range fields {
		if err := WriteFields(w, []byte(field)); err != nil {
			return err
		}
	}
	return nil
}
