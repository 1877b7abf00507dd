// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rsa implements RSA key generation and the PKCS#1 v1.5, OAEP, and
// PSS padding schemes over the mpi.Int abstraction, per spec §4.7. The
// primitive is textbook modular exponentiation; everything this package
// adds on top — CRT-with-blinding for the private operation, and the three
// padding/signature schemes — is hand-written, since spec §1 excludes only
// re-deriving the primitive itself, not the PK scheme glue around it.
package rsa

import (
	"crypto/rand"
	"io"

	"github.com/luxfi/primcrypt/mpi"
	"github.com/luxfi/primcrypt/primerr"
)

// PublicKey is an RSA public key (N, E).
type PublicKey struct {
	N mpi.Int
	E mpi.Int
}

// PrivateKey is an RSA private key with CRT precomputation (P, Q, DP, DQ,
// QInv) alongside the plain (N, D) pair.
type PrivateKey struct {
	PublicKey
	D    mpi.Int
	P    mpi.Int
	Q    mpi.Int
	DP   mpi.Int
	DQ   mpi.Int
	QInv mpi.Int
}

// Size returns the key's modulus size in bytes, rounded up.
func (pub *PublicKey) Size() int { return (pub.N.BitLen() + 7) / 8 }

var one = mpi.New().SetInt64(1)
var publicExponent = mpi.New().SetInt64(65537)

// GenerateKey generates a new RSA key pair of the given modulus size using
// a fixed public exponent of 65537, the same choice crypto/rsa.GenerateKey
// makes. random defaults to crypto/rand.Reader if nil.
func GenerateKey(random io.Reader, bits int) (*PrivateKey, error) {
	if random == nil {
		random = rand.Reader
	}
	if bits < 256 {
		return nil, primerr.New("rsa.GenerateKey", primerr.InvalidKeysize, "modulus size %d too small", bits)
	}
	e := publicExponent

	for {
		p, err := randPrime(random, bits/2)
		if err != nil {
			return nil, err
		}
		q, err := randPrime(random, bits-bits/2)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}
		if p.Cmp(q) < 0 {
			p, q = q, p
		}

		pm1 := mpi.New().Sub(p, one)
		qm1 := mpi.New().Sub(q, one)
		if mpi.New().GCD(pm1, e).CmpInt64(1) != 0 {
			continue
		}
		if mpi.New().GCD(qm1, e).CmpInt64(1) != 0 {
			continue
		}

		n := mpi.New().Mul(p, q)
		if n.BitLen() != bits {
			continue
		}

		phi := mpi.New().Mul(pm1, qm1)
		d, ok := mpi.New().ModInverse(e, phi)
		if !ok {
			continue
		}
		qinv, ok := mpi.New().ModInverse(q, p)
		if !ok {
			continue
		}

		return &PrivateKey{
			PublicKey: PublicKey{N: n, E: e},
			D:         d,
			P:         p,
			Q:         q,
			DP:        mpi.New().Mod(d, pm1),
			DQ:        mpi.New().Mod(d, qm1),
			QInv:      qinv,
		}, nil
	}
}

func randPrime(random io.Reader, bits int) (mpi.Int, error) {
	p, err := rand.Prime(random, bits)
	if err != nil {
		return nil, primerr.New("rsa.randPrime", primerr.ErrorReadPRNG, "%v", err)
	}
	return mpi.FromBig(p), nil
}

// publicOp computes m^E mod N.
func (pub *PublicKey) publicOp(m mpi.Int) mpi.Int {
	return mpi.ExpMod(m, pub.E, pub.N)
}

// privateOp computes c^D mod N via CRT, blinding c by a random value raised
// to the public exponent before the two half-size exponentiations and
// removing the blind afterward, per spec §4.7's "choose random r coprime to
// N, compute (r^e·m)^d·r⁻¹ mod N" construction.
func (priv *PrivateKey) privateOp(c mpi.Int) (mpi.Int, error) {
	blind, err := mpi.NewBlind(priv.N)
	if err != nil {
		return nil, err
	}
	masked := blind.MaskExp(c, priv.E)

	m1 := mpi.ExpMod(mpi.New().Mod(masked, priv.P), priv.DP, priv.P)
	m2 := mpi.ExpMod(mpi.New().Mod(masked, priv.Q), priv.DQ, priv.Q)

	h := mpi.New().MulMod(priv.QInv, mpi.New().Sub(m1, m2), priv.P)
	m := mpi.New().Add(m2, mpi.New().Mul(h, priv.Q))

	return blind.Unmask(m), nil
}
