// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dh implements Diffie-Hellman key exchange over safe-prime MODP
// groups, per spec §4.7. Groups are always freshly generated at a requested
// bit size (GenerateGroup); this package does not ship fixed named groups
// (e.g. RFC 3526's Group 5/14) — see DESIGN.md for why. A caller that needs
// byte-identical RFC 3526 parameters constructs a Group literal directly.
package dh

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/luxfi/primcrypt/mpi"
	"github.com/luxfi/primcrypt/primerr"
)

// Group is an MODP group: a safe prime p (p = 2q+1 for prime q) and a
// generator g of the order-q subgroup.
type Group struct {
	Name string
	P    mpi.Int
	G    mpi.Int
}

// PrivateKey is a DH keypair under a Group.
type PrivateKey struct {
	Group Group
	X     mpi.Int
	Y     mpi.Int
}

var one = mpi.New().SetInt64(1)

// GenerateGroup constructs a fresh safe-prime MODP group of the given bit
// size: search for a prime q, test p = 2q+1 for primality, and pick g = 4
// (a quadratic residue mod p for any odd prime p, hence always a generator
// of the order-q subgroup since that subgroup is exactly the quadratic
// residues when p is a safe prime). This is the generated-parameters path
// spec §4.7 allows alongside fixed named groups; a deployment that needs
// byte-identical RFC 3526 constants supplies them directly as a Group
// literal instead of calling this constructor.
func GenerateGroup(random io.Reader, name string, bits int) (Group, error) {
	if random == nil {
		random = rand.Reader
	}
	for {
		q, err := rand.Prime(random, bits-1)
		if err != nil {
			return Group{}, primerr.New("dh.GenerateGroup", primerr.ErrorReadPRNG, "%v", err)
		}
		p := new(big.Int).Lsh(q, 1)
		p.Add(p, big.NewInt(1))
		if p.BitLen() != bits {
			continue
		}
		if !p.ProbablyPrime(32) {
			continue
		}
		return Group{Name: name, P: mpi.FromBig(p), G: mpi.New().SetInt64(4)}, nil
	}
}

// GenerateKey draws a private exponent x in [2, p-2] and computes the
// public value y = g^x mod p.
func GenerateKey(random io.Reader, group Group) (*PrivateKey, error) {
	if random == nil {
		random = rand.Reader
	}
	pm3 := mpi.New().Sub(group.P, mpi.New().SetInt64(3))
	x, err := mpi.New().Rand(random, pm3)
	if err != nil {
		return nil, err
	}
	x = mpi.New().Add(x, mpi.New().SetInt64(2))
	y := mpi.ExpMod(group.G, x, group.P)
	return &PrivateKey{Group: group, X: x, Y: y}, nil
}

// CheckPublicValue validates that y is in the range (1, p-1), rejecting
// the degenerate small-subgroup values 0, 1, and p-1.
func CheckPublicValue(group Group, y mpi.Int) error {
	pm1 := mpi.New().Sub(group.P, one)
	if y.Cmp(one) <= 0 || y.Cmp(pm1) >= 0 {
		return primerr.New("dh.CheckPublicValue", primerr.InvalidArg, "public value out of range (1, p-1)")
	}
	return nil
}

// SharedSecret computes peerY^x mod p, left-padded to the prime's byte
// length.
func SharedSecret(priv *PrivateKey, peerY mpi.Int) ([]byte, error) {
	if err := CheckPublicValue(priv.Group, peerY); err != nil {
		return nil, err
	}
	secret := mpi.ExpMod(peerY, priv.X, priv.Group.P)
	size := (priv.Group.P.BitLen() + 7) / 8
	return secret.FixedBytes(size), nil
}
