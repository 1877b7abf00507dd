// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package aead

import (
	stdcipher "crypto/cipher"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/xmem"
)

// chacha20poly1305State buffers AAD/plaintext and defers to
// golang.org/x/crypto/chacha20poly1305's one-shot Seal/Open: ChaCha20-
// Poly1305 is a fixed, non-block-cipher-parameterized construction (RFC
// 8439), so unlike GCM/CCM/EAX/OCB3 there is no registry.Cipher to
// generalize over here — the reference implementation is the correct
// thing to wrap, not reimplement.
type chacha20poly1305State struct {
	aead  stdcipher.AEAD
	nonce []byte
	aad   []byte
	buf   []byte
}

func newChaCha20Poly1305(key, nonce []byte) (*chacha20poly1305State, error) {
	var a stdcipher.AEAD
	var err error
	switch len(nonce) {
	case chacha20poly1305.NonceSize:
		a, err = chacha20poly1305.New(key)
	case chacha20poly1305.NonceSizeX:
		a, err = chacha20poly1305.NewX(key)
	default:
		return nil, primerr.New("chacha20poly1305.New", primerr.InvalidArg, "nonce must be 12 or 24 bytes")
	}
	if err != nil {
		return nil, primerr.New("chacha20poly1305.New", primerr.InvalidKeysize, "%v", err)
	}
	return &chacha20poly1305State{aead: a, nonce: append([]byte(nil), nonce...)}, nil
}

func (s *chacha20poly1305State) AddAAD(data []byte) error {
	s.aad = append(s.aad, data...)
	return nil
}

type chacha20poly1305Seal struct {
	*chacha20poly1305State
	plaintext []byte
	dstBuf    [][]byte
}

// NewChaCha20Poly1305Seal constructs an encryption state. nonce must be 12
// bytes (RFC 8439) or 24 bytes (XChaCha20-Poly1305).
func NewChaCha20Poly1305Seal(key, nonce []byte) (Sealer, error) {
	s, err := newChaCha20Poly1305(key, nonce)
	if err != nil {
		return nil, err
	}
	return &chacha20poly1305Seal{chacha20poly1305State: s}, nil
}

func (s *chacha20poly1305Seal) Encrypt(dst, src []byte) error {
	s.plaintext = append(s.plaintext, src...)
	s.dstBuf = append(s.dstBuf, dst[:len(src)])
	return nil
}

func (s *chacha20poly1305Seal) Done() ([]byte, error) {
	sealed := s.aead.Seal(nil, s.nonce, s.plaintext, s.aad)
	ct := sealed[:len(sealed)-s.aead.Overhead()]
	tag := sealed[len(sealed)-s.aead.Overhead():]
	off := 0
	for _, d := range s.dstBuf {
		copy(d, ct[off:off+len(d)])
		off += len(d)
	}
	xmem.Zero(s.plaintext)
	return tag, nil
}

type chacha20poly1305Open struct {
	*chacha20poly1305State
	ciphertext []byte
	dstBuf     [][]byte
}

// NewChaCha20Poly1305Open constructs a matching decryption state.
func NewChaCha20Poly1305Open(key, nonce []byte) (Opener, error) {
	s, err := newChaCha20Poly1305(key, nonce)
	if err != nil {
		return nil, err
	}
	return &chacha20poly1305Open{chacha20poly1305State: s}, nil
}

func (s *chacha20poly1305Open) Decrypt(dst, src []byte) error {
	s.ciphertext = append(s.ciphertext, src...)
	s.dstBuf = append(s.dstBuf, dst[:len(src)])
	return nil
}

func (s *chacha20poly1305Open) Done(tag []byte) error {
	sealed := append(append([]byte(nil), s.ciphertext...), tag...)
	pt, err := s.aead.Open(nil, s.nonce, sealed, s.aad)
	if err != nil {
		return primerr.New("chacha20poly1305.Open", primerr.FailTestVector, "authentication tag mismatch")
	}
	off := 0
	for _, d := range s.dstBuf {
		copy(d, pt[off:off+len(d)])
		off += len(d)
	}
	return nil
}
