// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package x25519 implements the RFC 7748 X25519 Diffie-Hellman function
// over Curve25519, wrapping golang.org/x/crypto/curve25519's scalar
// multiplication the way pk/dh wraps mpi's modular exponentiation for
// classic DH.
package x25519

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/curve25519"

	"github.com/luxfi/primcrypt/primerr"
)

// KeySize is the byte length of an X25519 scalar or point.
const KeySize = 32

// PrivateKey is an X25519 scalar, stored as given; curve25519.X25519 clamps
// it on every use.
type PrivateKey struct {
	scalar [KeySize]byte
}

// PublicKey is an X25519 curve point.
type PublicKey struct {
	point [KeySize]byte
}

// GenerateKey generates a new X25519 key pair. random defaults to
// crypto/rand.Reader if nil. RFC 7748 §5's clamping (clearing the low 3
// bits, clearing the top bit, setting the second-highest bit) happens
// inside curve25519.X25519 itself on every call, not here; the raw random
// scalar is stored unclamped, matching the reference's "clamp at use"
// convention.
func GenerateKey(random io.Reader) (*PrivateKey, error) {
	if random == nil {
		random = rand.Reader
	}
	priv := &PrivateKey{}
	if _, err := io.ReadFull(random, priv.scalar[:]); err != nil {
		return nil, primerr.New("x25519.GenerateKey", primerr.ErrorReadPRNG, "%v", err)
	}
	return priv, nil
}

// NewPrivateKey wraps an existing 32-byte scalar.
func NewPrivateKey(scalar []byte) (*PrivateKey, error) {
	if len(scalar) != KeySize {
		return nil, primerr.New("x25519.NewPrivateKey", primerr.InvalidArg, "scalar must be %d bytes, got %d", KeySize, len(scalar))
	}
	priv := &PrivateKey{}
	copy(priv.scalar[:], scalar)
	return priv, nil
}

// Bytes returns the raw 32-byte scalar.
func (priv *PrivateKey) Bytes() []byte {
	out := make([]byte, KeySize)
	copy(out, priv.scalar[:])
	return out
}

// Public computes the public point for priv: scalar * basepoint.
func (priv *PrivateKey) Public() (*PublicKey, error) {
	out, err := curve25519.X25519(priv.scalar[:], curve25519.Basepoint)
	if err != nil {
		return nil, primerr.New("x25519.Public", primerr.InvalidArg, "%v", err)
	}
	pub := &PublicKey{}
	copy(pub.point[:], out)
	return pub, nil
}

// NewPublicKey wraps an existing 32-byte point.
func NewPublicKey(point []byte) (*PublicKey, error) {
	if len(point) != KeySize {
		return nil, primerr.New("x25519.NewPublicKey", primerr.InvalidArg, "point must be %d bytes, got %d", KeySize, len(point))
	}
	pub := &PublicKey{}
	copy(pub.point[:], point)
	return pub, nil
}

// Bytes returns the raw 32-byte point.
func (pub *PublicKey) Bytes() []byte {
	out := make([]byte, KeySize)
	copy(out, pub.point[:])
	return out
}

// SharedSecret computes the Diffie-Hellman shared secret between priv and
// peer's public point, rejecting the small-order/all-zero output points
// RFC 7748 §6.1 says implementations MUST check for.
func SharedSecret(priv *PrivateKey, peer *PublicKey) ([]byte, error) {
	out, err := curve25519.X25519(priv.scalar[:], peer.point[:])
	if err != nil {
		return nil, primerr.New("x25519.SharedSecret", primerr.InvalidArg, "%v", err)
	}
	return out, nil
}
