// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hash

import (
	"crypto/md5"
	"hash"

	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"

	"github.com/luxfi/primcrypt/registry"
)

type md4Descriptor struct{}

// MD4 is the registry.Hash descriptor for MD4, kept only for interop with
// legacy protocols (NTLM) that still specify it; broken as a cryptographic
// hash.
var MD4 registry.Hash = md4Descriptor{}

func (md4Descriptor) Name() string      { return "md4" }
func (md4Descriptor) OID() string       { return "1.2.840.113549.2.4" }
func (md4Descriptor) Size() int         { return md4.Size }
func (md4Descriptor) BlockSize() int    { return md4.BlockSize }
func (md4Descriptor) New() hash.Hash    { return md4.New() }
func (md4Descriptor) SelfTest() error {
	return runKAT("md4.SelfTest", md4.New(), "abc", "A448017AAF21D8525FC10AE87AA6729D")
}

type md5Descriptor struct{}

// MD5 is the registry.Hash descriptor for MD5, kept for interop with legacy
// formats (PBKDF1, some PKCS#5 KDFs); broken as a cryptographic hash.
var MD5 registry.Hash = md5Descriptor{}

func (md5Descriptor) Name() string      { return "md5" }
func (md5Descriptor) OID() string       { return "1.2.840.113549.2.5" }
func (md5Descriptor) Size() int         { return md5.Size }
func (md5Descriptor) BlockSize() int    { return md5.BlockSize }
func (md5Descriptor) New() hash.Hash    { return md5.New() }
func (md5Descriptor) SelfTest() error {
	return runKAT("md5.SelfTest", md5.New(), "abc", "900150983CD24FB0D6963F7D28E17F72")
}

type ripemd160Descriptor struct{}

// RIPEMD160 is the registry.Hash descriptor for RIPEMD-160.
var RIPEMD160 registry.Hash = ripemd160Descriptor{}

func (ripemd160Descriptor) Name() string      { return "ripemd160" }
func (ripemd160Descriptor) OID() string       { return "1.3.36.3.2.1" }
func (ripemd160Descriptor) Size() int         { return ripemd160.Size }
func (ripemd160Descriptor) BlockSize() int    { return ripemd160.BlockSize }
func (ripemd160Descriptor) New() hash.Hash    { return ripemd160.New() }
func (ripemd160Descriptor) SelfTest() error {
	return runKAT("ripemd160.SelfTest", ripemd160.New(), "abc",
		"8EB208F7E05D987A9B044A8E98C6B087F15A0BFC")
}
