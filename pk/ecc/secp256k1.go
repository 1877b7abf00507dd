// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecc

import (
	"crypto/elliptic"
	"math/big"
)

// secp256k1Curve implements elliptic.Curve over y^2 = x^3 + 7, a Koblitz
// curve with a=0. crypto/elliptic.CurveParams' generic Add/Double
// formulas hardcode the a=-3 case every NIST prime curve happens to use,
// and would silently compute wrong points for a=0; this type reimplements
// the affine group law for a=0 directly instead of routing through that
// shared generic path, the one curve in this package's scope crypto/
// elliptic cannot represent correctly on its own.
type secp256k1Curve struct {
	params *elliptic.CurveParams
}

func hexBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("ecc: malformed secp256k1 constant")
	}
	return n
}

func newSecp256k1() *secp256k1Curve {
	return &secp256k1Curve{params: &elliptic.CurveParams{
		P:       hexBig("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"),
		N:       hexBig("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
		B:       big.NewInt(7),
		Gx:      hexBig("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
		Gy:      hexBig("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
		BitSize: 256,
		Name:    "secp256k1",
	}}
}

func (c *secp256k1Curve) Params() *elliptic.CurveParams { return c.params }

func (c *secp256k1Curve) IsOnCurve(x, y *big.Int) bool {
	p := c.params.P
	lhs := new(big.Int).Mul(y, y)
	lhs.Mod(lhs, p)

	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, c.params.B)
	rhs.Mod(rhs, p)

	return lhs.Cmp(rhs) == 0
}

func (c *secp256k1Curve) isInfinity(x, y *big.Int) bool {
	return x.Sign() == 0 && y.Sign() == 0
}

// Add computes (x1,y1)+(x2,y2) in affine coordinates, treating (0,0) as
// the point at infinity per elliptic.Curve's convention.
func (c *secp256k1Curve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	p := c.params.P
	if c.isInfinity(x1, y1) {
		return new(big.Int).Set(x2), new(big.Int).Set(y2)
	}
	if c.isInfinity(x2, y2) {
		return new(big.Int).Set(x1), new(big.Int).Set(y1)
	}
	if x1.Cmp(x2) == 0 {
		sum := new(big.Int).Add(y1, y2)
		sum.Mod(sum, p)
		if sum.Sign() == 0 {
			return big.NewInt(0), big.NewInt(0)
		}
		return c.Double(x1, y1)
	}

	dx := new(big.Int).Sub(x2, x1)
	dx.Mod(dx, p)
	dy := new(big.Int).Sub(y2, y1)
	dy.Mod(dy, p)

	lambda := new(big.Int).ModInverse(dx, p)
	lambda.Mul(lambda, dy)
	lambda.Mod(lambda, p)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, x1)
	x3.Sub(x3, x2)
	x3.Mod(x3, p)

	y3 := new(big.Int).Sub(x1, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, y1)
	y3.Mod(y3, p)

	return x3, y3
}

// Double computes 2*(x1,y1) in affine coordinates, using lambda = 3x^2 /
// 2y (the a=0 specialization of the general a,b Weierstrass tangent-slope
// formula).
func (c *secp256k1Curve) Double(x1, y1 *big.Int) (*big.Int, *big.Int) {
	p := c.params.P
	if c.isInfinity(x1, y1) {
		return big.NewInt(0), big.NewInt(0)
	}
	if y1.Sign() == 0 {
		return big.NewInt(0), big.NewInt(0)
	}

	num := new(big.Int).Mul(x1, x1)
	num.Mul(num, big.NewInt(3))
	num.Mod(num, p)

	den := new(big.Int).Lsh(y1, 1)
	den.Mod(den, p)
	den.ModInverse(den, p)

	lambda := num.Mul(num, den)
	lambda.Mod(lambda, p)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, new(big.Int).Lsh(x1, 1))
	x3.Mod(x3, p)

	y3 := new(big.Int).Sub(x1, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, y1)
	y3.Mod(y3, p)

	return x3, y3
}

// ScalarMult computes k*(x1,y1) via simple double-and-add. k is treated
// as a big-endian byte string (as elliptic.Curve's interface specifies),
// reduced mod N implicitly by the result wrapping around the group.
func (c *secp256k1Curve) ScalarMult(x1, y1 *big.Int, k []byte) (*big.Int, *big.Int) {
	rx, ry := big.NewInt(0), big.NewInt(0)
	qx, qy := new(big.Int).Set(x1), new(big.Int).Set(y1)

	scalar := new(big.Int).SetBytes(k)
	for i := 0; i < scalar.BitLen(); i++ {
		if scalar.Bit(i) == 1 {
			rx, ry = c.Add(rx, ry, qx, qy)
		}
		qx, qy = c.Double(qx, qy)
	}
	return rx, ry
}

// ScalarBaseMult computes k*G.
func (c *secp256k1Curve) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	return c.ScalarMult(c.params.Gx, c.params.Gy, k)
}
