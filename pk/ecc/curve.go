// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ecc implements ECDSA over NIST P-224/P-256/P-384/P-521 and
// secp256k1, with the four signature encodings spec §4.7 names, using
// crypto/ecdsa and crypto/elliptic directly for the primitive, hand-written code only
// for the PK-scheme glue around it (the encodings, and secp256k1's curve
// arithmetic, which crypto/elliptic cannot represent).
package ecc

import (
	"crypto/elliptic"

	"github.com/luxfi/primcrypt/primerr"
)

// Curve names a supported curve: its crypto/elliptic.Curve implementation
// (NIST curves from the standard library, secp256k1 hand-written in this
// package), a short name for the RFC 5656 SSH curve identifier, and the
// OID used by the ANSI X9.62 / SEC1 AlgorithmIdentifier.
type Curve struct {
	elliptic.Curve
	Name    string
	SSHName string
	OID     []int
}

var (
	P224 = Curve{Curve: elliptic.P224(), Name: "P-224", SSHName: "nistp224", OID: []int{1, 3, 132, 0, 33}}
	P256 = Curve{Curve: elliptic.P256(), Name: "P-256", SSHName: "nistp256", OID: []int{1, 2, 840, 10045, 3, 1, 7}}
	P384 = Curve{Curve: elliptic.P384(), Name: "P-384", SSHName: "nistp384", OID: []int{1, 3, 132, 0, 34}}
	P521 = Curve{Curve: elliptic.P521(), Name: "P-521", SSHName: "nistp521", OID: []int{1, 3, 132, 0, 35}}

	Secp256k1 = Curve{Curve: newSecp256k1(), Name: "secp256k1", SSHName: "secp256k1", OID: []int{1, 3, 132, 0, 10}}
)

// ByName looks up a curve by its Name field.
func ByName(name string) (Curve, error) {
	for _, c := range []Curve{P224, P256, P384, P521, Secp256k1} {
		if c.Name == name {
			return c, nil
		}
	}
	return Curve{}, primerr.New("ecc.ByName", primerr.PKInvalidType, "unknown curve %q", name)
}

// byteSize is the curve order's size in bytes, rounded up: the field
// width RFC 7518 and SSH/RFC 5656 encodings pad r and s to.
func byteSize(c Curve) int {
	return (c.Params().N.BitLen() + 7) / 8
}
