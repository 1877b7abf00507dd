// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecc

import (
	"crypto/ecdsa"
	"crypto/rand"
	"io"
	"math/big"

	"github.com/luxfi/primcrypt/primerr"
)

// PrivateKey is an ECDSA private key over one of this package's curves.
type PrivateKey struct {
	ecdsa.PrivateKey
	Curve Curve
}

// PublicKey is an ECDSA public key over one of this package's curves.
type PublicKey struct {
	ecdsa.PublicKey
	Curve Curve
}

// GenerateKey generates a new key pair over curve. random defaults to
// crypto/rand.Reader if nil.
func GenerateKey(random io.Reader, curve Curve) (*PrivateKey, error) {
	if random == nil {
		random = rand.Reader
	}
	k, err := ecdsa.GenerateKey(curve.Curve, random)
	if err != nil {
		return nil, primerr.New("ecc.GenerateKey", primerr.ErrorReadPRNG, "%v", err)
	}
	return &PrivateKey{PrivateKey: *k, Curve: curve}, nil
}

// Public returns the public half of priv.
func (priv *PrivateKey) Public() *PublicKey {
	return &PublicKey{PublicKey: priv.PrivateKey.PublicKey, Curve: priv.Curve}
}

// Sign produces an ECDSA signature (r, s) over digest. random defaults to
// crypto/rand.Reader if nil; crypto/ecdsa.Sign blinds the nonce-scalar
// multiply internally (the same treatment spec §4.7/§4.8 asks of every PK
// private-key operation), so pk/ecc does not need its own mpi.Blind layer
// here the way pk/rsa does for its CRT exponentiation.
func Sign(random io.Reader, priv *PrivateKey, digest []byte) (r, s *big.Int, err error) {
	if random == nil {
		random = rand.Reader
	}
	r, s, err = ecdsa.Sign(random, &priv.PrivateKey, digest)
	if err != nil {
		return nil, nil, primerr.New("ecc.Sign", primerr.ErrorReadPRNG, "%v", err)
	}
	return r, s, nil
}

// Verify checks an ECDSA signature (r, s) over digest under pub.
func Verify(pub *PublicKey, digest []byte, r, s *big.Int) error {
	if !ecdsa.Verify(&pub.PublicKey, digest, r, s) {
		return primerr.New("ecc.Verify", primerr.FailTestVector, "signature does not verify")
	}
	return nil
}
