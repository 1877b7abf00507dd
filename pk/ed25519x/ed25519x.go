// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ed25519x implements the RFC 8032 Ed25519 signature scheme,
// wrapping crypto/ed25519 the same way pk/ecc wraps crypto/ecdsa for the
// NIST curves: the primitive is stdlib, the package around it supplies
// the key types and error taxonomy consistent with the rest of this
// module's pk/ packages.
package ed25519x

import (
	"bytes"
	"crypto"
	"crypto/ed25519"
	"crypto/rand"
	"io"

	"github.com/luxfi/primcrypt/primerr"
)

// PrivateKey is an Ed25519 private key (RFC 8032's 32-byte seed expanded
// to the 64-byte internal representation crypto/ed25519 uses).
type PrivateKey struct {
	ed25519.PrivateKey
}

// PublicKey is an Ed25519 public key.
type PublicKey struct {
	ed25519.PublicKey
}

// GenerateKey generates a new Ed25519 key pair. random defaults to
// crypto/rand.Reader if nil.
func GenerateKey(random io.Reader) (*PrivateKey, error) {
	if random == nil {
		random = rand.Reader
	}
	_, priv, err := ed25519.GenerateKey(random)
	if err != nil {
		return nil, primerr.New("ed25519x.GenerateKey", primerr.ErrorReadPRNG, "%v", err)
	}
	return &PrivateKey{PrivateKey: priv}, nil
}

// NewKeyFromSeed deterministically expands a 32-byte seed into a key
// pair, the scheme's defining property: a seed is the whole private key.
func NewKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, primerr.New("ed25519x.NewKeyFromSeed", primerr.InvalidArg, "seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return &PrivateKey{PrivateKey: ed25519.NewKeyFromSeed(seed)}, nil
}

// Seed returns the 32-byte seed priv was generated from.
func (priv *PrivateKey) Seed() []byte {
	return priv.PrivateKey.Seed()
}

// Public returns the public half of priv.
func (priv *PrivateKey) Public() *PublicKey {
	return &PublicKey{PublicKey: priv.PrivateKey.Public().(ed25519.PublicKey)}
}

// Sign produces a deterministic Ed25519 signature over message (RFC 8032
// §5.1.6; there is no separate randomized variant, unlike ECDSA).
func Sign(priv *PrivateKey, message []byte) []byte {
	return ed25519.Sign(priv.PrivateKey, message)
}

// Verify checks an Ed25519 signature over message under pub.
func Verify(pub *PublicKey, message, sig []byte) error {
	if !ed25519.Verify(pub.PublicKey, message, sig) {
		return primerr.New("ed25519x.Verify", primerr.FailTestVector, "signature does not verify")
	}
	return nil
}

// SignPh produces an Ed25519ph (RFC 8032 §5.1, pre-hashed) signature over
// a 64-byte SHA-512 digest of the message, using the dom2 context-string
// domain separation crypto/ed25519 implements via the Ed25519ph Options.
func SignPh(priv *PrivateKey, digest, context []byte) ([]byte, error) {
	if len(digest) != 64 {
		return nil, primerr.New("ed25519x.SignPh", primerr.InvalidArg, "digest must be 64 bytes (SHA-512), got %d", len(digest))
	}
	return priv.PrivateKey.Sign(rand.Reader, digest, &ed25519.Options{Hash: crypto.SHA512, Context: string(context)})
}

// VerifyPh checks an Ed25519ph signature over a pre-hashed digest.
func VerifyPh(pub *PublicKey, digest, context, sig []byte) error {
	if len(digest) != 64 {
		return primerr.New("ed25519x.VerifyPh", primerr.InvalidArg, "digest must be 64 bytes (SHA-512), got %d", len(digest))
	}
	if err := ed25519.VerifyWithOptions(pub.PublicKey, digest, sig, &ed25519.Options{Hash: crypto.SHA512, Context: string(context)}); err != nil {
		return primerr.New("ed25519x.VerifyPh", primerr.FailTestVector, "%v", err)
	}
	return nil
}

// Equal reports whether pub is the same key as other.
func (pub *PublicKey) Equal(other *PublicKey) bool {
	return bytes.Equal(pub.PublicKey, other.PublicKey)
}
