// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package aead implements authenticated-encryption-with-associated-data
// constructions (GCM, OCB1, OCB3, CCM, EAX, ChaCha20-Poly1305) as small streaming
// state machines, the same shape modes and mac give their constructions:
// an Init/Open, zero or more AddAAD/Encrypt/Decrypt calls, and a final Done
// that produces or verifies the tag.
package aead

import (
	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
)

// Sealer produces ciphertext and a tag.
type Sealer interface {
	AddAAD(data []byte) error
	Encrypt(dst, src []byte) error
	// Done returns the authentication tag over everything processed so far.
	Done() ([]byte, error)
}

// Opener consumes ciphertext and verifies a tag.
type Opener interface {
	AddAAD(data []byte) error
	Decrypt(dst, src []byte) error
	// Done verifies tag in constant time. dst buffers passed to Decrypt are
	// only trustworthy once Done returns nil; on mismatch the caller must
	// discard them.
	Done(tag []byte) error
}

// blockAdapter exposes a registry.SchedKey as a one-block-at-a-time
// encrypt/decrypt pair with an explicit block length, the common substrate
// every from-specification AEAD construction in this package is built on.
type blockAdapter struct {
	sk       registry.SchedKey
	blockLen int
}

func newBlockAdapter(c registry.Cipher, key []byte, rounds int) (*blockAdapter, error) {
	if c == nil {
		return nil, primerr.New("aead.New", primerr.InvalidCipher, "nil cipher descriptor")
	}
	sk, err := c.Setup(key, rounds)
	if err != nil {
		return nil, err
	}
	return &blockAdapter{sk: sk, blockLen: c.BlockLength()}, nil
}

func (b *blockAdapter) encrypt(dst, src []byte) { b.sk.EncryptBlock(dst, src) }
func (b *blockAdapter) decrypt(dst, src []byte) { b.sk.DecryptBlock(dst, src) }
func (b *blockAdapter) done()                   { b.sk.Done() }

// BlockSize implements crypto/cipher.Block so a blockAdapter can back
// GCM via the standard library's cipher.NewGCM.
func (b *blockAdapter) BlockSize() int { return b.blockLen }

// Encrypt implements crypto/cipher.Block.
func (b *blockAdapter) Encrypt(dst, src []byte) { b.sk.EncryptBlock(dst, src) }

// Decrypt implements crypto/cipher.Block.
func (b *blockAdapter) Decrypt(dst, src []byte) { b.sk.DecryptBlock(dst, src) }
