// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package prng supplies the registry.PRNG descriptors: Fortuna and Yarrow
// (built generically over registry.Cipher/registry.Hash so they exercise the
// primitive registry the way spec §2 intends), three stream-cipher-backed
// generators (ChaCha20, Salsa20, RC4), and a passthrough adapter over
// crypto/rand for callers that just want the platform CSPRNG behind the same
// registry.PRNG contract.
package prng

import (
	"crypto/rc4"
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/salsa20/salsa"

	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

// streamGenerator is the minimal contract a keystream-based PRNG backend
// needs: produce exactly len(dst) bytes of keystream from a 32-byte key.
type streamGenerator func(key []byte, dst []byte)

// streamState is the shared registry.PRNGState implementation behind
// ChaCha20, Salsa20, and RC4: an accumulating SHA-256 entropy pool, ratcheted
// forward (for backward secrecy) every time Read derives a fresh key from
// it, exactly the shape spec §8's "PRNG reseed isolation" property expects.
type streamState struct {
	gen   streamGenerator
	pool  [32]byte
	ready bool
}

func (s *streamState) Start() error {
	s.pool = [32]byte{}
	s.ready = false
	return nil
}

func (s *streamState) AddEntropy(data []byte) error {
	h := sha256.New()
	h.Write(s.pool[:])
	h.Write(data)
	h.Sum(s.pool[:0])
	s.ready = true
	return nil
}

func (s *streamState) Ready() error {
	if !s.ready {
		return primerr.New("prng.Ready", primerr.ErrorReadPRNG, "no entropy added since start/reseed")
	}
	return nil
}

func (s *streamState) Read(buf []byte) (int, error) {
	if err := s.Ready(); err != nil {
		return 0, err
	}
	h := sha256.New()
	h.Write([]byte("primcrypt-prng-key"))
	h.Write(s.pool[:])
	var key [32]byte
	h.Sum(key[:0])

	s.gen(key[:], buf)

	// Ratchet the pool so a later Export/Import cannot reproduce bytes
	// already delivered by this Read.
	h2 := sha256.New()
	h2.Write([]byte("primcrypt-prng-ratchet"))
	h2.Write(s.pool[:])
	h2.Sum(s.pool[:0])

	return len(buf), nil
}

func (s *streamState) Done() {
	xmem.Zero(s.pool[:])
	s.ready = false
}

func (s *streamState) Export() ([]byte, error) {
	if err := s.Ready(); err != nil {
		return nil, err
	}
	out := make([]byte, 33)
	copy(out, s.pool[:])
	out[32] = 1
	return out, nil
}

func (s *streamState) Import(state []byte) error {
	if len(state) != 33 || state[32] != 1 {
		return primerr.New("prng.Import", primerr.InvalidArg, "malformed export blob")
	}
	copy(s.pool[:], state[:32])
	s.ready = true
	return nil
}

func (s *streamState) SelfTest() error {
	if err := s.Start(); err != nil {
		return err
	}
	if err := s.AddEntropy([]byte("self-test seed")); err != nil {
		return err
	}
	a := make([]byte, 64)
	if _, err := s.Read(a); err != nil {
		return err
	}
	b := make([]byte, 64)
	if _, err := s.Read(b); err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(a, b) == 1 {
		return primerr.New("prng.SelfTest", primerr.FailTestVector, "two reads produced identical output")
	}
	return nil
}

func chacha20Generator(key, dst []byte) {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce[:])
	if err != nil {
		panic("prng: chacha20 rejected a 32-byte key: " + err.Error())
	}
	for i := range dst {
		dst[i] = 0
	}
	c.XORKeyStream(dst, dst)
}

func salsa20Generator(key, dst []byte) {
	var k [32]byte
	copy(k[:], key)
	var nonce [8]byte
	zero := make([]byte, len(dst))
	salsa.XORKeyStream(dst, zero, &nonce, &k)
}

func rc4Generator(key, dst []byte) {
	c, err := rc4.NewCipher(key)
	if err != nil {
		panic("prng: rc4 rejected a 32-byte key: " + err.Error())
	}
	for i := range dst {
		dst[i] = 0
	}
	c.XORKeyStream(dst, dst)
}

type streamDescriptor struct {
	name string
	gen  streamGenerator
}

func (d streamDescriptor) Name() string    { return d.name }
func (d streamDescriptor) ExportSize() int { return 33 }
func (d streamDescriptor) New() registry.PRNGState {
	return &streamState{gen: d.gen}
}

// ChaCha20 is the registry.PRNG descriptor backed by golang.org/x/crypto/chacha20.
var ChaCha20 registry.PRNG = streamDescriptor{name: "chacha20", gen: chacha20Generator}

// Salsa20 is the registry.PRNG descriptor backed by golang.org/x/crypto/salsa20.
var Salsa20 registry.PRNG = streamDescriptor{name: "salsa20", gen: salsa20Generator}

// RC4 is the registry.PRNG descriptor backed by crypto/rc4, kept for
// interoperability with legacy callers; cryptographically broken as a
// stream cipher in the classical RC4-as-TLS-suite sense, but serviceable as
// a PRNG backend behind a SHA-256-whitened key here.
var RC4 registry.PRNG = streamDescriptor{name: "rc4", gen: rc4Generator}
