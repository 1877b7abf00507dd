// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package mpi is the multi-precision-integer abstraction every PK scheme in
// this module is written against: a pluggable bignum backend behind a
// narrow interface, rather than a direct math/big dependency sprinkled
// through pk/. The original's ltc_mp function-pointer table is a single
// process-wide var selected at link time; Go has no equivalent global
// linker trick, so the backend is selected once at init time by New and the
// table collapses to "the one exported constructor everyone calls."
package mpi

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/luxfi/primcrypt/primerr"
)

// Int is the operation table spec.md §4.5 requires: init/clear is implicit
// in Go's GC (no explicit handle release), set-to-small-integer, unsigned
// bin and radix round-trips, compare, bit-length and trailing-zero counts,
// zero/odd predicates, the arithmetic and modular-arithmetic family, and a
// uniform random value below a bound. Curve-specific Jacobian point
// operations are not part of this interface: they are ECC-specific, not
// generic bignum operations, and live in pk/ecc built on top of Int.
type Int interface {
	SetInt64(x int64) Int
	SetBytes(b []byte) Int
	Bytes() []byte
	FixedBytes(size int) []byte
	SetString(s string, base int) (Int, bool)
	String() string

	BitLen() int
	TrailingZeroBits() int
	Sign() int
	IsZero() bool
	IsOdd() bool

	Cmp(y Int) int
	CmpInt64(x int64) int

	Add(x, y Int) Int
	Sub(x, y Int) Int
	Mul(x, y Int) Int
	Sqr(x Int) Int
	Div(x, y Int) Int
	Mod(x, y Int) Int

	AddMod(x, y, m Int) Int
	SubMod(x, y, m Int) Int
	MulMod(x, y, m Int) Int
	SqrMod(x, m Int) Int
	ExpMod(x, e, m Int) Int
	ModInverse(x, m Int) (Int, bool)

	GCD(x, y Int) Int
	LCM(x, y Int) Int

	// Rand draws a uniform value in [0, max) using the given entropy
	// source, or crypto/rand.Reader if r is nil.
	Rand(r io.Reader, max Int) (Int, error)
}

// New allocates a zero-valued Int from the active backend. There is
// currently one backend (math/big): the library has no need for a second
// until a constant-time-by-construction bignum type becomes available for
// every operation below, not just the blinding helpers in blind.go.
func New() Int {
	return &bigInt{v: new(big.Int)}
}

// bigInt is the default Int backend, wrapping math/big.Int. math/big is
// not constant-time; spec §4.5 accepts that tradeoff explicitly ("the
// library assumes the backend is constant-time-enough for secrets OR
// offers blinded variants") and requires private-key operations to blind
// with a random multiplier instead, which is what pk/rsa and pk/ecc's
// SignEthereum do via Blind in blind.go (pk/ecc's plain Sign relies on
// crypto/ecdsa instead).
type bigInt struct{ v *big.Int }

func asBig(x Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return x.(*bigInt).v
}

func (z *bigInt) SetInt64(x int64) Int { z.v.SetInt64(x); return z }
func (z *bigInt) SetBytes(b []byte) Int {
	z.v.SetBytes(b)
	return z
}
func (z *bigInt) Bytes() []byte { return z.v.Bytes() }

// FixedBytes renders z as a big-endian unsigned integer left-padded with
// zeros to exactly size bytes, the layout RFC 7518/SSH mpint/SEC1 key
// encodings all require instead of math/big's variable-width Bytes().
func (z *bigInt) FixedBytes(size int) []byte {
	out := make([]byte, size)
	b := z.v.Bytes()
	if len(b) > size {
		b = b[len(b)-size:]
	}
	copy(out[size-len(b):], b)
	return out
}

func (z *bigInt) SetString(s string, base int) (Int, bool) {
	_, ok := z.v.SetString(s, base)
	if !ok {
		return z, false
	}
	return z, true
}
func (z *bigInt) String() string { return z.v.String() }

func (z *bigInt) BitLen() int { return z.v.BitLen() }
func (z *bigInt) TrailingZeroBits() int {
	if z.v.Sign() == 0 {
		return 0
	}
	n := 0
	for z.v.Bit(n) == 0 {
		n++
	}
	return n
}
func (z *bigInt) Sign() int   { return z.v.Sign() }
func (z *bigInt) IsZero() bool { return z.v.Sign() == 0 }
func (z *bigInt) IsOdd() bool  { return z.v.Bit(0) == 1 }

func (z *bigInt) Cmp(y Int) int        { return z.v.Cmp(asBig(y)) }
func (z *bigInt) CmpInt64(x int64) int { return z.v.Cmp(big.NewInt(x)) }

func (z *bigInt) Add(x, y Int) Int { z.v.Add(asBig(x), asBig(y)); return z }
func (z *bigInt) Sub(x, y Int) Int { z.v.Sub(asBig(x), asBig(y)); return z }
func (z *bigInt) Mul(x, y Int) Int { z.v.Mul(asBig(x), asBig(y)); return z }
func (z *bigInt) Sqr(x Int) Int    { z.v.Mul(asBig(x), asBig(x)); return z }
func (z *bigInt) Div(x, y Int) Int { z.v.Quo(asBig(x), asBig(y)); return z }
func (z *bigInt) Mod(x, y Int) Int { z.v.Mod(asBig(x), asBig(y)); return z }

func (z *bigInt) AddMod(x, y, m Int) Int {
	z.v.Add(asBig(x), asBig(y))
	z.v.Mod(z.v, asBig(m))
	return z
}
func (z *bigInt) SubMod(x, y, m Int) Int {
	z.v.Sub(asBig(x), asBig(y))
	z.v.Mod(z.v, asBig(m))
	return z
}
func (z *bigInt) MulMod(x, y, m Int) Int {
	z.v.Mul(asBig(x), asBig(y))
	z.v.Mod(z.v, asBig(m))
	return z
}
func (z *bigInt) SqrMod(x, m Int) Int {
	z.v.Mul(asBig(x), asBig(x))
	z.v.Mod(z.v, asBig(m))
	return z
}
func (z *bigInt) ExpMod(x, e, m Int) Int {
	z.v.Exp(asBig(x), asBig(e), asBig(m))
	return z
}
func (z *bigInt) ModInverse(x, m Int) (Int, bool) {
	r := z.v.ModInverse(asBig(x), asBig(m))
	if r == nil {
		return z, false
	}
	return z, true
}

func (z *bigInt) GCD(x, y Int) Int { z.v.GCD(nil, nil, asBig(x), asBig(y)); return z }
func (z *bigInt) LCM(x, y Int) Int {
	var g big.Int
	g.GCD(nil, nil, asBig(x), asBig(y))
	if g.Sign() == 0 {
		z.v.SetInt64(0)
		return z
	}
	z.v.Mul(asBig(x), asBig(y))
	z.v.Abs(z.v)
	z.v.Quo(z.v, &g)
	return z
}

func (z *bigInt) Rand(r io.Reader, max Int) (Int, error) {
	if r == nil {
		r = rand.Reader
	}
	n, err := rand.Int(r, asBig(max))
	if err != nil {
		return nil, primerr.New("mpi.Rand", primerr.ErrorReadPRNG, "%v", err)
	}
	z.v = n
	return z, nil
}

// FromBig wraps an existing math/big.Int as an Int without copying,
// letting pk/ code that already holds *big.Int curve parameters (e.g. from
// crypto/elliptic-shaped curve definitions) interoperate with the rest of
// this package without a conversion pass.
func FromBig(x *big.Int) Int { return &bigInt{v: x} }

// ToBig returns the underlying math/big.Int of a value produced by this
// package's backend. It exists for interop with stdlib APIs (crypto/ecdsa,
// crypto/elliptic) that are themselves math/big-shaped; it panics if z did
// not originate from this package, which never happens for values pk/
// constructs through New/FromBig.
func ToBig(z Int) *big.Int { return asBig(z) }
