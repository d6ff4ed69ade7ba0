//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package keccak

import (
	"github.com/markkurossi/hashes/word"
)

// maxStateSize is the state size of Keccak-f[1600] in bytes.
const maxStateSize = 200

// Sponge implements the sponge construction over a Keccak-f
// permutation with lanes of type T. The sponge is a value type:
// assigning it copies the complete absorb or squeeze state.
type Sponge[T word.Word] struct {
	a      State[T]
	rate   int
	dsbyte byte
	rounds int
	buf    [maxStateSize]byte
	// n is the number of buffered input bytes when absorbing, and
	// the number of consumed output bytes of buf when squeezing.
	n         int
	squeezing bool
}

// NewSponge creates a sponge with the rate in bytes and the domain
// separation byte dsbyte. The dsbyte contains the domain separation
// bits followed by the first bit of the pad10*1 padding, for example
// 0x06 for SHA-3 and 0x1f for SHAKE. The rate must be a positive
// multiple of the lane size and smaller than the state size.
func NewSponge[T word.Word](rate int, dsbyte byte) Sponge[T] {
	return NewSpongeRounds[T](rate, dsbyte, Rounds[T]())
}

// NewSpongeRounds creates a sponge over the Keccak-p permutation with
// the given number of rounds.
func NewSpongeRounds[T word.Word](rate int, dsbyte byte, rounds int) Sponge[T] {
	var s Sponge[T]
	if rate <= 0 || rate >= s.a.Size() || rate%word.Bytes[T]() != 0 {
		panic("keccak: invalid sponge rate")
	}
	if dsbyte == 0 || dsbyte&0x80 != 0 {
		panic("keccak: invalid domain separation byte")
	}
	if rounds <= 0 || rounds > Rounds[T]() {
		panic("keccak: invalid number of rounds")
	}
	s.rate = rate
	s.dsbyte = dsbyte
	s.rounds = rounds
	return s
}

// Rate returns the sponge rate in bytes.
func (s *Sponge[T]) Rate() int {
	return s.rate
}

// Reset clears the sponge state and returns it to absorbing.
func (s *Sponge[T]) Reset() {
	s.a = State[T]{}
	s.n = 0
	s.squeezing = false
}

// Squeezing tests if the sponge has been finalized.
func (s *Sponge[T]) Squeezing() bool {
	return s.squeezing
}

func (s *Sponge[T]) permute() {
	s.a.PermuteRounds(s.rounds)
}

// Write absorbs more data into the sponge. It panics if the sponge
// is already squeezing.
func (s *Sponge[T]) Write(p []byte) (int, error) {
	if s.squeezing {
		panic("keccak: write to sponge after read")
	}
	written := len(p)

	for len(p) > 0 {
		if s.n == 0 && len(p) >= s.rate {
			// Absorb a full block directly from the input.
			s.a.XORBytes(p[:s.rate])
			s.permute()
			p = p[s.rate:]
			continue
		}
		n := copy(s.buf[s.n:s.rate], p)
		s.n += n
		p = p[n:]
		if s.n == s.rate {
			s.a.XORBytes(s.buf[:s.rate])
			s.permute()
			s.n = 0
		}
	}
	return written, nil
}

// padAndPermute appends the domain separation byte and the pad10*1
// padding to the buffered input, absorbs the final block, and moves
// the sponge to squeezing.
func (s *Sponge[T]) padAndPermute() {
	s.buf[s.n] = s.dsbyte
	for i := s.n + 1; i < s.rate; i++ {
		s.buf[i] = 0
	}
	s.buf[s.rate-1] ^= 0x80
	s.a.XORBytes(s.buf[:s.rate])
	s.permute()

	s.squeezing = true
	s.a.AppendBytes(s.buf[:0], s.rate)
	s.n = 0
}

// Read squeezes output from the sponge. The first call finalizes the
// absorbed input. It never returns an error.
func (s *Sponge[T]) Read(out []byte) (int, error) {
	if !s.squeezing {
		s.padAndPermute()
	}
	n := len(out)
	for len(out) > 0 {
		if s.n == s.rate {
			s.permute()
			s.a.AppendBytes(s.buf[:0], s.rate)
			s.n = 0
		}
		c := copy(out, s.buf[s.n:s.rate])
		s.n += c
		out = out[c:]
	}
	return n, nil
}
