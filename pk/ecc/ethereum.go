// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecc

import (
	"crypto/ecdsa"
	"crypto/rand"
	"io"
	"math/big"

	"github.com/luxfi/primcrypt/mpi"
	"github.com/luxfi/primcrypt/primerr"
)

func ecdsaPublicKey(curve Curve, x, y *big.Int) ecdsa.PublicKey {
	return ecdsa.PublicKey{Curve: curve.Curve, X: x, Y: y}
}

// SignEthereum signs digest over secp256k1 and additionally returns the
// recovery id the Ethereum signature encoding carries, so a verifier can
// recover the signer's public key from (r, s, recid) alone instead of
// needing it supplied out of band. crypto/ecdsa.Sign doesn't expose the
// ephemeral point R a recovery id is computed from, so this path
// reimplements the ECDSA nonce-to-signature steps directly over this
// package's secp256k1 curve, blinding the nonce inversion mod N with
// mpi.Blind the same way pk/rsa blinds its CRT exponentiation.
func SignEthereum(random io.Reader, priv *PrivateKey, digest []byte) (r, s *big.Int, recID byte, err error) {
	if priv.Curve.Name != Secp256k1.Name {
		return nil, nil, 0, primerr.New("ecc.SignEthereum", primerr.PKInvalidType, "recoverable signatures are secp256k1-only")
	}
	if random == nil {
		random = rand.Reader
	}
	curve := priv.Curve
	n := mpi.FromBig(curve.Params().N)
	z := mpi.FromBig(new(big.Int).SetBytes(digest))
	d := mpi.FromBig(priv.D)

	for {
		kBig, kerr := rand.Int(random, curve.Params().N)
		if kerr != nil {
			return nil, nil, 0, primerr.New("ecc.SignEthereum", primerr.ErrorReadPRNG, "%v", kerr)
		}
		if kBig.Sign() == 0 {
			continue
		}
		k := mpi.FromBig(kBig)

		rx, ry := curve.ScalarBaseMult(kBig.Bytes())
		if rx.Sign() == 0 && ry.Sign() == 0 {
			continue
		}

		rVal := mpi.New().Mod(mpi.FromBig(rx), n)
		if rVal.IsZero() {
			continue
		}

		blind, berr := mpi.NewBlind(n)
		if berr != nil {
			return nil, nil, 0, berr
		}
		kMasked := blind.Mask(k)
		kInvMasked, ok := mpi.New().ModInverse(kMasked, n)
		if !ok {
			continue
		}
		kInv := blind.Mask(kInvMasked)

		dr := mpi.New().MulMod(d, rVal, n)
		zdr := mpi.New().AddMod(z, dr, n)
		sVal := mpi.New().MulMod(kInv, zdr, n)
		if sVal.IsZero() {
			continue
		}

		id := byte(0)
		if ry.Bit(0) == 1 {
			id |= 1
		}
		if rx.Cmp(curve.Params().N) >= 0 {
			id |= 2
		}

		return mpi.ToBig(rVal), mpi.ToBig(sVal), id, nil
	}
}

// VerifyEthereum verifies an Ethereum-encoded recoverable signature,
// ignoring the recovery id (verification doesn't need it; it exists only
// for recovery).
func VerifyEthereum(pub *PublicKey, digest []byte, r, s *big.Int) error {
	return Verify(pub, digest, r, s)
}

// RecoverPublicKey reconstructs the signer's public key from a signature
// and its recovery id, the point of the Ethereum encoding: p ≡ 3 (mod 4)
// for secp256k1, so the curve equation's square root is a single modular
// exponentiation (Tonelli-Shanks' easy case) rather than the general
// algorithm.
func RecoverPublicKey(curve Curve, digest []byte, r, s *big.Int, recID byte) (*PublicKey, error) {
	if curve.Name != Secp256k1.Name {
		return nil, primerr.New("ecc.RecoverPublicKey", primerr.PKInvalidType, "recovery is secp256k1-only")
	}
	p := curve.Params().P
	n := curve.Params().N

	x := new(big.Int).Set(r)
	if recID&2 != 0 {
		x.Add(x, n)
	}
	if x.Cmp(p) >= 0 {
		return nil, primerr.New("ecc.RecoverPublicKey", primerr.InvalidArg, "x coordinate out of field range")
	}

	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, big.NewInt(7))
	rhs.Mod(rhs, p)

	sqrtExp := new(big.Int).Add(p, big.NewInt(1))
	sqrtExp.Rsh(sqrtExp, 2)
	y := new(big.Int).Exp(rhs, sqrtExp, p)
	y2 := new(big.Int).Mul(y, y)
	y2.Mod(y2, p)
	if y2.Cmp(rhs) != 0 {
		return nil, primerr.New("ecc.RecoverPublicKey", primerr.InvalidArg, "x is not on the curve")
	}
	if y.Bit(0) != uint(recID&1) {
		y.Sub(p, y)
	}

	z := new(big.Int).SetBytes(digest)
	z.Mod(z, n)
	rInv := new(big.Int).ModInverse(r, n)
	if rInv == nil {
		return nil, primerr.New("ecc.RecoverPublicKey", primerr.InvalidArg, "r has no inverse mod n")
	}

	negZ := new(big.Int).Sub(n, z)
	negZ.Mod(negZ, n)
	negZGx, negZGy := curve.ScalarBaseMult(negZ.Bytes())
	sRx, sRy := curve.ScalarMult(x, y, s.Bytes())
	sumX, sumY := curve.Add(sRx, sRy, negZGx, negZGy)
	qx, qy := curve.ScalarMult(sumX, sumY, rInv.Bytes())

	return &PublicKey{
		PublicKey: ecdsaPublicKey(curve, qx, qy),
		Curve:     curve,
	}, nil
}
