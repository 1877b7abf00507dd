// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hash supplies the registry.Hash descriptors. Each one is a thin
// wrapper that forwards to a standard-library or ecosystem hash.Hash
// constructor; descriptors with no natural hash.Hash (the CHC
// hash-from-cipher construction) implement the interface directly.
package hash

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"

	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
)

// runKAT is the shared shape of every KAT-driven SelfTest below:
// hash a known message and compare against a known digest.
func runKAT(op string, h hash.Hash, msg, wantHex string) error {
	h.Write([]byte(msg))
	got := h.Sum(nil)
	want, err := hex.DecodeString(wantHex)
	if err != nil {
		return primerr.New(op, primerr.ErrGeneric, "bad KAT fixture: %v", err)
	}
	if len(got) != len(want) {
		return primerr.New(op, primerr.FailTestVector, "digest length mismatch")
	}
	for i := range got {
		if got[i] != want[i] {
			return primerr.New(op, primerr.FailTestVector, "digest mismatch")
		}
	}
	return nil
}

type sha1Descriptor struct{}

// SHA1 is the registry.Hash descriptor for SHA-1 (FIPS 180-4), kept for
// interoperability with legacy formats (e.g. existing DSA/SSH signatures)
// even though it is no longer collision-resistant.
var SHA1 registry.Hash = sha1Descriptor{}

func (sha1Descriptor) Name() string      { return "sha1" }
func (sha1Descriptor) OID() string       { return "1.3.14.3.2.26" }
func (sha1Descriptor) Size() int         { return sha1.Size }
func (sha1Descriptor) BlockSize() int    { return sha1.BlockSize }
func (sha1Descriptor) New() hash.Hash    { return sha1.New() }
func (sha1Descriptor) SelfTest() error {
	return runKAT("sha1.SelfTest", sha1.New(), "abc", "A9993E364706816ABA3E25717850C26C9CD0D89D")
}

type sha224Descriptor struct{}

// SHA224 is the registry.Hash descriptor for SHA-224.
var SHA224 registry.Hash = sha224Descriptor{}

func (sha224Descriptor) Name() string      { return "sha224" }
func (sha224Descriptor) OID() string       { return "2.16.840.1.101.3.4.2.4" }
func (sha224Descriptor) Size() int         { return sha256.Size224 }
func (sha224Descriptor) BlockSize() int    { return sha256.BlockSize }
func (sha224Descriptor) New() hash.Hash    { return sha256.New224() }
func (sha224Descriptor) SelfTest() error {
	return runKAT("sha224.SelfTest", sha256.New224(), "abc",
		"23097D223405D8228642A477BDA255B32AADBCE4BDA0B3F7E36C9DA7")
}

type sha256Descriptor struct{}

// SHA256 is the registry.Hash descriptor for SHA-256, the module's default
// hash for HMAC/HKDF/PBKDF2 wherever spec §6 leaves the hash unspecified.
var SHA256 registry.Hash = sha256Descriptor{}

func (sha256Descriptor) Name() string      { return "sha256" }
func (sha256Descriptor) OID() string       { return "2.16.840.1.101.3.4.2.1" }
func (sha256Descriptor) Size() int         { return sha256.Size }
func (sha256Descriptor) BlockSize() int    { return sha256.BlockSize }
func (sha256Descriptor) New() hash.Hash    { return sha256.New() }
func (sha256Descriptor) SelfTest() error {
	return runKAT("sha256.SelfTest", sha256.New(), "abc",
		"BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD")
}

type sha384Descriptor struct{}

// SHA384 is the registry.Hash descriptor for SHA-384.
var SHA384 registry.Hash = sha384Descriptor{}

func (sha384Descriptor) Name() string      { return "sha384" }
func (sha384Descriptor) OID() string       { return "2.16.840.1.101.3.4.2.2" }
func (sha384Descriptor) Size() int         { return sha512.Size384 }
func (sha384Descriptor) BlockSize() int    { return sha512.BlockSize }
func (sha384Descriptor) New() hash.Hash    { return sha512.New384() }
func (sha384Descriptor) SelfTest() error {
	return runKAT("sha384.SelfTest", sha512.New384(), "abc",
		"CB00753F45A35E8BB5A03D699AC65007272C32AB0EDED1631A8B605A43FF5BED8086072BA1E7CC2358BAECA134C825A7")
}

type sha512Descriptor struct{}

// SHA512 is the registry.Hash descriptor for SHA-512.
var SHA512 registry.Hash = sha512Descriptor{}

func (sha512Descriptor) Name() string      { return "sha512" }
func (sha512Descriptor) OID() string       { return "2.16.840.1.101.3.4.2.3" }
func (sha512Descriptor) Size() int         { return sha512.Size }
func (sha512Descriptor) BlockSize() int    { return sha512.BlockSize }
func (sha512Descriptor) New() hash.Hash    { return sha512.New() }
func (sha512Descriptor) SelfTest() error {
	return runKAT("sha512.SelfTest", sha512.New(), "abc",
		"DDAF35A193617ABACC417349AE20413112E6FA4E89A97EA20A9EEEE64B55D39"+
			"A2192992A274FC1A836BA3C23A3FEEBBD454D4423643CE80E2A9AC94FA54CA49F")
}
