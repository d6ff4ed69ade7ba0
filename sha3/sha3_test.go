//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha3

import (
	"bytes"
	"encoding/binary"
	"hash"
	"testing"

	"github.com/markkurossi/hashes/digest"
	"golang.org/x/crypto/chacha20"
	xsha3 "golang.org/x/crypto/sha3"
)

type algorithm struct {
	name   string
	new    func() digest.Hasher
	oracle func() hash.Hash
	empty  string
	abc    string
}

var algorithms = []algorithm{
	{
		name:   "SHA3-224",
		new:    func() digest.Hasher { return New224() },
		oracle: xsha3.New224,
		empty:  "6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7",
		abc:    "e642824c3f8cf24ad09234ee7d3c766fc9a3a5168d0c94ad73b46fdf",
	},
	{
		name:   "SHA3-256",
		new:    func() digest.Hasher { return New256() },
		oracle: xsha3.New256,
		empty:  "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
		abc:    "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
	},
	{
		name:   "SHA3-384",
		new:    func() digest.Hasher { return New384() },
		oracle: xsha3.New384,
		empty:  "0c63a75b845e4f7d01107d852e4c2485c51a50aaaa94fc61995e71bbee983a2ac3713831264adb47fb6bd1e058d5f004",
		abc:    "ec01498288516fc926459f58e2c6ad8df9b473cb0fc08c2596da7cf0e49be4b298d88cea927ac7f539f1edf228376d25",
	},
	{
		name:   "SHA3-512",
		new:    func() digest.Hasher { return New512() },
		oracle: xsha3.New512,
		empty:  "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26",
		abc:    "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0",
	},
	{
		name:   "KECCAK-256",
		new:    func() digest.Hasher { return NewLegacyKeccak256() },
		oracle: xsha3.NewLegacyKeccak256,
		empty:  "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		abc:    "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
	},
	{
		name:   "KECCAK-512",
		new:    func() digest.Hasher { return NewLegacyKeccak512() },
		oracle: xsha3.NewLegacyKeccak512,
		empty:  "0eab42de4c3ceb9235fc91acffe746b29c29a8c366b7c60e4e67c466f36a4304c00fa9caf9d87976ba469bcbe06713b435f091ef2769fb160cdab33d3670680e",
		abc:    "18587dc2ea106b9a1563e32b3312421ca164c7f1f07bc922a9c83d77cea3a1e5d0c69910739025372dc14ac9642629379540c17e2a65b19d77aa511a9d00bb96",
	},
	{
		name: "SHAKE128",
		new:  func() digest.Hasher { return NewShake128() },
		oracle: func() hash.Hash {
			return shakeOracle{xsha3.NewShake128(), 32, 168}
		},
		empty: "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26",
		abc:   "5881092dd818bf5cf8a3ddb793fbcba74097d5c526a6d35f97b83351940f2cc8",
	},
	{
		name: "SHAKE256",
		new:  func() digest.Hasher { return NewShake256() },
		oracle: func() hash.Hash {
			return shakeOracle{xsha3.NewShake256(), 64, 136}
		},
		empty: "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762fd75dc4ddd8c0f200cb05019d67b592f6fc821c49479ab48640292eacb3b7c4be",
		abc:   "483366601360a8771c6863080cc4114d8db44530f8f1e1ee4f94ea37e78b5739d5a15bef186a5386c75744c0527e1faa9f8726e462a12a4feb06bd8801e751e4",
	},
}

// shakeOracle adapts an x/crypto SHAKE function into a fixed-size
// hash.Hash.
type shakeOracle struct {
	xsha3.ShakeHash
	size      int
	blockSize int
}

func (s shakeOracle) Sum(b []byte) []byte {
	out := make([]byte, s.size)
	s.ShakeHash.Clone().Read(out)
	return append(b, out...)
}

func (s shakeOracle) Size() int      { return s.size }
func (s shakeOracle) BlockSize() int { return s.blockSize }

func keystream(seed string, n int) []byte {
	key := make([]byte, chacha20.KeySize)
	copy(key, seed)
	c, err := chacha20.NewUnauthenticatedCipher(key,
		make([]byte, chacha20.NonceSize))
	if err != nil {
		panic(err)
	}
	out := make([]byte, n)
	c.XORKeyStream(out, out)
	return out
}

func TestGolden(t *testing.T) {
	for _, alg := range algorithms {
		for _, msg := range []string{"", "abc"} {
			h := alg.new()
			h.Write([]byte(msg))
			want := alg.empty
			if msg == "abc" {
				want = alg.abc
			}
			if have := h.Finish().Hex(); have != want {
				t.Errorf("%s(%q): have %s, want %s", alg.name, msg, have, want)
			}
		}
	}
}

func TestShake256Prefix(t *testing.T) {
	want := map[string]string{
		"":    "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f",
		"abc": "483366601360a8771c6863080cc4114d8db44530f8f1e1ee4f94ea37e78b5739",
	}
	for msg, w := range want {
		out := make([]byte, 32)
		ShakeSum256(out, []byte(msg))
		if have := digest.Digest(out).Hex(); have != w {
			t.Errorf("SHAKE256(%q): have %s, want %s", msg, have, w)
		}
	}
}

func TestSumFunctions(t *testing.T) {
	msg := []byte("The quick brown fox jumps over the lazy dog")
	s224 := Sum224(msg)
	s256 := Sum256(msg)
	s384 := Sum384(msg)
	s512 := Sum512(msg)
	sums := []struct {
		name string
		have []byte
		want string
	}{
		{"SHA3-224", s224[:],
			"d15dadceaa4d5d7bb3b48f446421d542e08ad8887305e28d58335795"},
		{"SHA3-256", s256[:],
			"69070dda01975c8c120c3aada1b282394e7f032fa9cf32f4cb2259a0897dfc04"},
		{"SHA3-384", s384[:],
			"7063465e08a93bce31cd89d2e3ca8f602498696e253592ed26f07bf7e703cf328581e1471a7ba7ab119b1a9ebdf8be41"},
		{"SHA3-512", s512[:],
			"01dedd5de4ef14642445ba5f5b97c15e47b9ad931326e4b0727cd94cefc44fff23f07bf543139939b49128caf436dc1bdee54fcb24023a08d9403f9b4bf0d450"},
	}
	for _, sum := range sums {
		if have := digest.Digest(sum.have).Hex(); have != sum.want {
			t.Errorf("%s: have %s, want %s", sum.name, have, sum.want)
		}
	}

	k256 := Keccak256([]byte("a"), []byte("bc"))
	if have := digest.Digest(k256[:]).Hex(); have != algorithms[4].abc {
		t.Errorf("Keccak256: have %s, want %s", have, algorithms[4].abc)
	}
	k512 := Keccak512([]byte("ab"), nil, []byte("c"))
	if have := digest.Digest(k512[:]).Hex(); have != algorithms[5].abc {
		t.Errorf("Keccak512: have %s, want %s", have, algorithms[5].abc)
	}
}

func TestMillionA(t *testing.T) {
	h := New256()
	block := bytes.Repeat([]byte{'a'}, 1000)
	for i := 0; i < 1000; i++ {
		h.Write(block)
	}
	want := "5c8875ae474a3634ba4fd55ec85bffd661f32aca75c6d699d0cdcb6c115891c1"
	if have := h.Finish().Hex(); have != want {
		t.Errorf("million a: have %s, want %s", have, want)
	}
}

func TestPaddingBoundaries(t *testing.T) {
	data := keystream("padding", 3*168+1)
	for _, alg := range algorithms {
		for i := 0; i <= len(data); i++ {
			h := alg.new()
			h.Write(data[:i])
			o := alg.oracle()
			o.Write(data[:i])
			if have, want := h.Sum(nil), o.Sum(nil); !bytes.Equal(have, want) {
				t.Fatalf("%s len=%d: have %x, want %x", alg.name, i, have,
					want)
			}
		}
	}
}

func TestChunking(t *testing.T) {
	data := keystream("chunking", 3000)
	splits := keystream("splits", 512)

	for _, alg := range algorithms {
		o := alg.oracle()
		o.Write(data)
		want := o.Sum(nil)

		for round := 0; round < 8; round++ {
			h := alg.new()
			msg := data
			for i := round; len(msg) > 0; i++ {
				n := int(splits[i%len(splits)]) % 185
				if n > len(msg) {
					n = len(msg)
				}
				h.Write(msg[:n])
				msg = msg[n:]
			}
			if have := h.Finish(); !bytes.Equal(have, want) {
				t.Fatalf("%s round %d: have %x, want %x", alg.name, round,
					have, want)
			}
		}
	}
}

func TestSum64(t *testing.T) {
	for _, alg := range algorithms {
		h := alg.new()
		h.Write([]byte("abc"))
		a := h.Sum64()
		b := h.Sum64()
		if a != b {
			t.Fatalf("%s: Sum64 not idempotent", alg.name)
		}
		sum := h.Finish()
		if want := binary.LittleEndian.Uint64(sum); a != want {
			t.Fatalf("%s: Sum64 %x, want %x", alg.name, a, want)
		}
	}
}

func TestSumDoesNotMutate(t *testing.T) {
	for _, alg := range algorithms {
		h := alg.new()
		h.Write([]byte("ab"))
		h.Sum(nil)
		h.Sum64()
		h.Write([]byte("c"))
		if have := h.Finish().Hex(); have[:16] != alg.abc[:16] {
			t.Errorf("%s: have %s, want %s", alg.name, have, alg.abc)
		}
	}
}

func TestFinishPanics(t *testing.T) {
	for _, alg := range algorithms {
		h := alg.new()
		h.Finish()
		for _, f := range []func(){
			func() { h.Write([]byte{0}) },
			func() { h.Sum(nil) },
			func() { h.Sum64() },
			func() { h.Finish() },
		} {
			func() {
				defer func() {
					if recover() == nil {
						t.Errorf("%s: no panic after Finish", alg.name)
					}
				}()
				f()
			}()
		}
		h.Reset()
		h.Write([]byte("abc"))
		if have := h.Finish().Hex(); have[:16] != alg.abc[:16] {
			t.Errorf("%s: Reset: have %s", alg.name, have)
		}
	}
}

func TestSizes(t *testing.T) {
	sizes := [][2]int{
		{28, 144}, {32, 136}, {48, 104}, {64, 72},
		{32, 136}, {64, 72},
		{32, 168}, {64, 136},
	}
	for i, alg := range algorithms {
		h := alg.new()
		if h.Size() != sizes[i][0] || h.BlockSize() != sizes[i][1] {
			t.Errorf("%s: Size=%d, BlockSize=%d", alg.name, h.Size(),
				h.BlockSize())
		}
	}
}

func TestShakeOutputLength(t *testing.T) {
	data := keystream("shake", 333)
	for _, n := range []int{0, 1, 31, 32, 167, 168, 169, 1000} {
		have := make([]byte, n)
		ShakeSum128(have, data)
		want := make([]byte, n)
		xsha3.ShakeSum128(want, data)
		if !bytes.Equal(have, want) {
			t.Fatalf("SHAKE128 n=%d: have %x, want %x", n, have, want)
		}

		have = make([]byte, n)
		ShakeSum256(have, data)
		want = make([]byte, n)
		xsha3.ShakeSum256(want, data)
		if !bytes.Equal(have, want) {
			t.Fatalf("SHAKE256 n=%d: have %x, want %x", n, have, want)
		}
	}
}

func TestShakePrefixConsistency(t *testing.T) {
	s := NewShake128()
	s.Write([]byte("prefix"))

	long := make([]byte, 500)
	s.Clone().Read(long)

	for _, n := range []int{1, 16, 168, 169, 499} {
		short := make([]byte, n)
		s.Clone().Read(short)
		if !bytes.Equal(short, long[:n]) {
			t.Fatalf("n=%d: output is not a prefix", n)
		}
	}

	// Incremental reads continue the output stream.
	var parts []byte
	for _, n := range []int{3, 200, 97, 200} {
		buf := make([]byte, n)
		s.Read(buf)
		parts = append(parts, buf...)
	}
	if !bytes.Equal(parts, long) {
		t.Fatalf("incremental reads differ")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("Write after Read did not panic")
		}
	}()
	s.Write([]byte{0})
}

func TestShakeReadAfterFinish(t *testing.T) {
	for _, test := range []struct {
		s   *Shake
		sum func(out, data []byte)
	}{
		{NewShake128(), ShakeSum128},
		{NewShake256(), ShakeSum256},
	} {
		s := test.s
		s.Write([]byte("abc"))
		s.Finish()
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: Read after Finish did not panic", s.Name())
				}
			}()
			s.Read(make([]byte, 8))
		}()

		s.Reset()
		s.Write([]byte("abc"))
		have := make([]byte, 100)
		s.Read(have)
		want := make([]byte, 100)
		test.sum(want, []byte("abc"))
		if !bytes.Equal(have, want) {
			t.Errorf("%s: Reset: have %x, want %x", s.Name(), have, want)
		}
	}
}

func TestShakeClone(t *testing.T) {
	s := NewShake256()
	s.Write([]byte("ab"))
	c := s.Clone()
	c.Write([]byte("c"))
	s.Write([]byte("x"))

	out := make([]byte, 32)
	c.Read(out)
	want := "483366601360a8771c6863080cc4114d8db44530f8f1e1ee4f94ea37e78b5739"
	if have := digest.Digest(out).Hex(); have != want {
		t.Fatalf("clone: have %s, want %s", have, want)
	}
}

func BenchmarkSHA3_256(b *testing.B) {
	data := keystream("bench", 8192)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum256(data)
	}
}

func BenchmarkShake128(b *testing.B) {
	data := keystream("bench", 8192)
	out := make([]byte, 32)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ShakeSum128(out, data)
	}
}
