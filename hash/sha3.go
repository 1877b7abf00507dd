// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hash

import (
	"crypto/sha3"
	"hash"

	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
)

type sha3_224Descriptor struct{}

// SHA3_224 is the registry.Hash descriptor for SHA3-224 (FIPS 202).
var SHA3_224 registry.Hash = sha3_224Descriptor{}

func (sha3_224Descriptor) Name() string      { return "sha3-224" }
func (sha3_224Descriptor) OID() string       { return "2.16.840.1.101.3.4.2.7" }
func (sha3_224Descriptor) Size() int         { return 28 }
func (sha3_224Descriptor) BlockSize() int    { return 144 }
func (sha3_224Descriptor) New() hash.Hash    { return sha3.New224() }
func (sha3_224Descriptor) SelfTest() error {
	return runKAT("sha3-224.SelfTest", sha3.New224(), "abc",
		"E642824C3F8CF24AD09234EE7D3C766FC9A3A5168D0C94AD73B46FDF")
}

type sha3_256Descriptor struct{}

// SHA3_256 is the registry.Hash descriptor for SHA3-256.
var SHA3_256 registry.Hash = sha3_256Descriptor{}

func (sha3_256Descriptor) Name() string      { return "sha3-256" }
func (sha3_256Descriptor) OID() string       { return "2.16.840.1.101.3.4.2.8" }
func (sha3_256Descriptor) Size() int         { return 32 }
func (sha3_256Descriptor) BlockSize() int    { return 136 }
func (sha3_256Descriptor) New() hash.Hash    { return sha3.New256() }
func (sha3_256Descriptor) SelfTest() error {
	return runKAT("sha3-256.SelfTest", sha3.New256(), "abc",
		"3A985DA74FE225B2045C172D6BD390BD855F086E3E9D525B46BFE24511431532")
}

type sha3_384Descriptor struct{}

// SHA3_384 is the registry.Hash descriptor for SHA3-384.
var SHA3_384 registry.Hash = sha3_384Descriptor{}

func (sha3_384Descriptor) Name() string      { return "sha3-384" }
func (sha3_384Descriptor) OID() string       { return "2.16.840.1.101.3.4.2.9" }
func (sha3_384Descriptor) Size() int         { return 48 }
func (sha3_384Descriptor) BlockSize() int    { return 104 }
func (sha3_384Descriptor) New() hash.Hash    { return sha3.New384() }
func (sha3_384Descriptor) SelfTest() error {
	return runKAT("sha3-384.SelfTest", sha3.New384(), "abc",
		"EC01498288516FC926459F58E2C6AD8DF9B473CB0FC08C2596DA7CF0E49BE4B298D88CEA927AC7F539F1EDF228376D25")
}

type sha3_512Descriptor struct{}

// SHA3_512 is the registry.Hash descriptor for SHA3-512.
var SHA3_512 registry.Hash = sha3_512Descriptor{}

func (sha3_512Descriptor) Name() string      { return "sha3-512" }
func (sha3_512Descriptor) OID() string       { return "2.16.840.1.101.3.4.2.10" }
func (sha3_512Descriptor) Size() int         { return 64 }
func (sha3_512Descriptor) BlockSize() int    { return 72 }
func (sha3_512Descriptor) New() hash.Hash    { return sha3.New512() }
func (sha3_512Descriptor) SelfTest() error {
	return runKAT("sha3-512.SelfTest", sha3.New512(), "abc",
		"B751850B1A57168A5693CD924B6B096E08F621827444F70D884F5D0240D2712"+
			"E10E116E9192AF3C91A7EC57647E3934057340B4CF408D5A56592F8274EEC53F0")
}

// shakeAdapter satisfies hash.Hash over a crypto/sha3 extendable-output
// function: Sum reads defaultLen bytes from a Clone so the underlying
// squeeze state is left untouched, matching hash.Hash's "Sum does not change
// the underlying state" contract.
type shakeAdapter struct {
	sh         *sha3.SHAKE
	defaultLen int
	rate       int
}

func (s *shakeAdapter) Write(p []byte) (int, error) { return s.sh.Write(p) }
func (s *shakeAdapter) Reset()                      { s.sh.Reset() }
func (s *shakeAdapter) Size() int                    { return s.defaultLen }
func (s *shakeAdapter) BlockSize() int               { return s.rate }
func (s *shakeAdapter) Sum(b []byte) []byte {
	st, _ := s.sh.MarshalBinary()
	clone := sha3.NewSHAKE256()
	if s.rate == 168 {
		clone = sha3.NewSHAKE128()
	}
	clone.UnmarshalBinary(st)
	out := make([]byte, s.defaultLen)
	clone.Read(out)
	return append(b, out...)
}

type shake128Descriptor struct{}

// SHAKE128 is the registry.Hash descriptor for the SHAKE128 XOF, exposed as
// a fixed-length hash.Hash with a 32-byte default output; registry.RunSelfTests
// exercises its variable-length property explicitly through SelfTestVariable.
var SHAKE128 registry.Hash = shake128Descriptor{}

func (shake128Descriptor) Name() string   { return "shake128" }
func (shake128Descriptor) OID() string    { return "2.16.840.1.101.3.4.2.11" }
func (shake128Descriptor) Size() int      { return 32 }
func (shake128Descriptor) BlockSize() int { return 168 }
func (shake128Descriptor) New() hash.Hash {
	return &shakeAdapter{sh: sha3.NewSHAKE128(), defaultLen: 32, rate: 168}
}
func (d shake128Descriptor) SelfTest() error { return d.SelfTestVariable(32) }
func (shake128Descriptor) SelfTestVariable(outLen int) error {
	sh := sha3.NewSHAKE128()
	sh.Write([]byte("abc"))
	out := make([]byte, outLen)
	sh.Read(out)
	if len(out) != outLen {
		return primerr.New("shake128.SelfTestVariable", primerr.FailTestVector, "short read")
	}
	return nil
}

type shake256Descriptor struct{}

// SHAKE256 is the registry.Hash descriptor for the SHAKE256 XOF.
var SHAKE256 registry.Hash = shake256Descriptor{}

func (shake256Descriptor) Name() string   { return "shake256" }
func (shake256Descriptor) OID() string    { return "2.16.840.1.101.3.4.2.12" }
func (shake256Descriptor) Size() int      { return 64 }
func (shake256Descriptor) BlockSize() int { return 136 }
func (shake256Descriptor) New() hash.Hash {
	return &shakeAdapter{sh: sha3.NewSHAKE256(), defaultLen: 64, rate: 136}
}
func (d shake256Descriptor) SelfTest() error { return d.SelfTestVariable(64) }
func (shake256Descriptor) SelfTestVariable(outLen int) error {
	sh := sha3.NewSHAKE256()
	sh.Write([]byte("abc"))
	out := make([]byte, outLen)
	sh.Read(out)
	if len(out) != outLen {
		return primerr.New("shake256.SelfTestVariable", primerr.FailTestVector, "short read")
	}
	return nil
}
