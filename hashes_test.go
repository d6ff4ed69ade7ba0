//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package hashes

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/markkurossi/hashes/digest"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"SHA1", "SHA1"},
		{"sha-1", "SHA1"},
		{"sha256", "SHA256"},
		{"SHA-256", "SHA256"},
		{"sha512/256", "SHA512-256"},
		{"SHA512_224", "SHA512-224"},
		{"sha3-256", "SHA3-256"},
		{"SHA3_512", "SHA3-512"},
		{"shake128", "SHAKE128"},
		{"Keccak-256", "KECCAK256"},
	}
	for _, test := range tests {
		alg, err := Lookup(test.name)
		require.NoError(t, err, test.name)
		require.Equal(t, test.want, alg.Name)
		require.Equal(t, test.want, alg.String())
	}

	_, err := Lookup("md5")
	require.True(t, errors.Is(err, ErrUnknownAlgorithm))
	require.Contains(t, err.Error(), "md5")
}

func TestAlgorithms(t *testing.T) {
	algs := Algorithms()
	require.Len(t, algs, 15)

	// The result is a copy.
	algs[0] = nil
	require.NotNil(t, Algorithms()[0])

	seen := make(map[uint64]bool)
	for _, alg := range Algorithms() {
		h := alg.New()
		require.Equal(t, alg.Size, h.Size(), alg.Name)
		require.Equal(t, alg.BlockSize, h.BlockSize(), alg.Name)
		require.Equal(t, alg.XOF, alg.NewXOF() != nil, alg.Name)
		require.False(t, seen[alg.Multihash], alg.Name)
		seen[alg.Multihash] = true
	}
}

func TestMaxLength(t *testing.T) {
	sha1, err := Lookup("sha1")
	require.NoError(t, err)
	require.Equal(t, "2⁶⁴-1", sha1.MaxLength())

	sha512, err := Lookup("sha512")
	require.NoError(t, err)
	require.Equal(t, "2¹²⁸-1", sha512.MaxLength())

	sha3, err := Lookup("sha3-256")
	require.NoError(t, err)
	require.Equal(t, "∞", sha3.MaxLength())
}

func TestPrintAlgorithms(t *testing.T) {
	var buf bytes.Buffer
	PrintAlgorithms(&buf)
	out := buf.String()
	for _, alg := range Algorithms() {
		require.Contains(t, out, alg.Name)
	}
	require.Contains(t, out, "2¹²⁸-1")
	require.Contains(t, out, "0x1013")
}

func TestHMAC(t *testing.T) {
	alg, err := Lookup("sha1")
	require.NoError(t, err)
	m := alg.NewHMAC([]byte("key"))
	m.Write([]byte("The quick brown fox jumps over the lazy dog"))
	require.Equal(t, "de7c9b85b8b78aa6bc8a7a36f70a90701c9db4d9",
		m.Finish().Hex())
}

func TestStructuredWrites(t *testing.T) {
	// Field boundaries are part of the hashed data.
	for _, alg := range Algorithms() {
		a := alg.New()
		require.NoError(t, digest.WriteStrings(a, "ab", "c"))
		b := alg.New()
		require.NoError(t, digest.WriteStrings(b, "abc"))
		c := alg.New()
		c.Write([]byte("abc"))

		sa, sb, sc := a.Finish(), b.Finish(), c.Finish()
		require.False(t, sa.Equal(sb), alg.Name)
		require.False(t, sa.Equal(sc), alg.Name)
		require.False(t, sb.Equal(sc), alg.Name)
	}
}

func TestDigestFormat(t *testing.T) {
	alg, err := Lookup("SHA-256")
	require.NoError(t, err)
	h := alg.New()
	h.Write([]byte("abc"))
	sum := h.Finish()

	lower := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	require.Equal(t, lower, sum.Hex())
	require.Equal(t, strings.ToUpper(lower), sum.HexUpper())
}
