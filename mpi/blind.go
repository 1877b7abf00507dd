// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mpi

import (
	"crypto/rand"
	"math/big"

	"github.com/cronokirby/saferith"

	"github.com/luxfi/primcrypt/primerr"
)

// Blind is the random-multiplier blinding spec §4.7/§4.8 requires for
// RSA and ECDSA private-key operations: instead of computing m^d mod N (or
// an ECDSA nonce-scalar multiply) directly on secret-dependent data, the
// caller multiplies by a random blind before the private operation and
// divides it back out after, so the operation's timing no longer depends
// on the secret alone. Mask and Unmask are inverses mod the supplied
// modulus; MaskExp instead multiplies by r^e, as needed by RSA's "(r^e·m)^d
// ·r⁻¹ mod N" construction.
type Blind struct {
	modulus *saferith.Modulus
	r       *saferith.Nat
	rInv    *saferith.Nat
}

// NewBlind draws a random value coprime to modulus and returns a Blind
// that can mask/unmask values modulo it. Coprimality is checked with
// math/big's GCD (rejection sampling on a public quantity — the blind
// itself, not the secret the blind protects — so there is no timing
// concern in the check); the actual blind/unblind arithmetic below runs
// over saferith's constant-time Nat/Modulus pair, since that arithmetic's
// timing is exactly what a private-key operation must not leak.
func NewBlind(modulus Int) (*Blind, error) {
	n := ToBig(modulus)
	if n.Sign() <= 0 {
		return nil, primerr.New("mpi.NewBlind", primerr.InvalidArg, "modulus must be positive")
	}
	bitLen := n.BitLen()

	for attempt := 0; attempt < 256; attempt++ {
		r, err := rand.Int(rand.Reader, n)
		if err != nil {
			return nil, primerr.New("mpi.NewBlind", primerr.ErrorReadPRNG, "%v", err)
		}
		if r.Sign() == 0 {
			continue
		}
		var g big.Int
		g.GCD(nil, nil, r, n)
		if g.Cmp(big.NewInt(1)) != 0 {
			continue
		}
		rInv := new(big.Int).ModInverse(r, n)
		if rInv == nil {
			continue
		}

		mod := saferith.ModulusFromBytes(n.Bytes())
		rNat := new(saferith.Nat).SetBig(r, bitLen)
		rInvNat := new(saferith.Nat).SetBig(rInv, bitLen)
		return &Blind{modulus: mod, r: rNat, rInv: rInvNat}, nil
	}
	return nil, primerr.New("mpi.NewBlind", primerr.ErrGeneric, "failed to find an invertible blind")
}

// Mask returns x*r mod the blind's modulus.
func (b *Blind) Mask(x Int) Int {
	xNat := new(saferith.Nat).SetBig(ToBig(x), b.modulus.BitLen())
	out := new(saferith.Nat).ModMul(xNat, b.r, b.modulus)
	return FromBig(out.Big())
}

// Unmask returns x*r⁻¹ mod the blind's modulus, undoing Mask (or undoing
// the effect of a private-key operation applied to a Mask'd value, since
// the operation's exponent distributes over multiplication mod N).
func (b *Blind) Unmask(x Int) Int {
	xNat := new(saferith.Nat).SetBig(ToBig(x), b.modulus.BitLen())
	out := new(saferith.Nat).ModMul(xNat, b.rInv, b.modulus)
	return FromBig(out.Big())
}

// MaskExp returns x*r^e mod the blind's modulus — the masking RSA's
// "(r^e·m)^d·r⁻¹ mod N" construction needs: the private operation is given
// m masked by r raised to the *public* exponent, so that undoing the
// private exponent's effect on the mask leaves a plain factor of r behind
// for Unmask to remove.
func (b *Blind) MaskExp(x, e Int) Int {
	eNat := new(saferith.Nat).SetBig(ToBig(e), ToBig(e).BitLen())
	rE := new(saferith.Nat).Exp(b.r, eNat, b.modulus)
	xNat := new(saferith.Nat).SetBig(ToBig(x), b.modulus.BitLen())
	out := new(saferith.Nat).ModMul(xNat, rE, b.modulus)
	return FromBig(out.Big())
}

// ExpMod computes x^e mod the blind's modulus using saferith's
// constant-time exponentiation, for callers that want the blind's modulus
// and bit-length bookkeeping without performing a mask/unmask pair
// themselves (e.g. RSA's CRT path, which blinds the full-modulus input but
// exponentiates mod p and mod q separately).
func ExpMod(x, e, m Int) Int {
	mod := saferith.ModulusFromBytes(ToBig(m).Bytes())
	xNat := new(saferith.Nat).SetBig(ToBig(x), mod.BitLen())
	eNat := new(saferith.Nat).SetBig(ToBig(e), ToBig(e).BitLen())
	out := new(saferith.Nat).Exp(xNat, eNat, mod)
	return FromBig(out.Big())
}
