// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rsa

import (
	"io"

	"github.com/luxfi/primcrypt/mpi"
	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

// SignPSS signs a precomputed digest using PSS padding (RFC 8017 §9.1)
// with MGF1 built on h and a salt of saltLen random bytes.
func SignPSS(random io.Reader, priv *PrivateKey, h registry.Hash, digest []byte, saltLen int) ([]byte, error) {
	if random == nil {
		random = defaultRandom()
	}
	if len(digest) != h.Size() {
		return nil, primerr.New("rsa.SignPSS", primerr.InvalidArg, "digest length does not match hash size")
	}
	emBits := priv.N.BitLen() - 1
	emLen := (emBits + 7) / 8
	hLen := h.Size()
	if emLen < hLen+saltLen+2 {
		return nil, primerr.New("rsa.SignPSS", primerr.InputTooLong, "modulus too small for hash and salt length")
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(random, salt); err != nil {
		return nil, primerr.New("rsa.SignPSS", primerr.ErrorReadPRNG, "%v", err)
	}

	mPrime := make([]byte, 0, 8+hLen+saltLen)
	mPrime = append(mPrime, make([]byte, 8)...)
	mPrime = append(mPrime, digest...)
	mPrime = append(mPrime, salt...)
	hHash := hashSum(h, mPrime)

	dbLen := emLen - hLen - 1
	db := make([]byte, dbLen)
	db[dbLen-saltLen-1] = 0x01
	copy(db[dbLen-saltLen:], salt)

	dbMask := mgf1(h, hHash, dbLen)
	xmem.XorBytes(db, dbMask)
	clearUnusedBits(db, emLen*8-emBits)

	em := make([]byte, emLen)
	copy(em, db)
	copy(em[dbLen:], hHash)
	em[emLen-1] = 0xbc

	s, err := priv.privateOp(mpi.New().SetBytes(em))
	if err != nil {
		return nil, err
	}
	return s.FixedBytes(priv.Size()), nil
}

// VerifyPSS verifies sig against digest under pub.
func VerifyPSS(pub *PublicKey, h registry.Hash, digest, sig []byte, saltLen int) error {
	k := pub.Size()
	if len(sig) != k {
		return primerr.New("rsa.VerifyPSS", primerr.InvalidPacket, "signature length mismatch")
	}
	m := pub.publicOp(mpi.New().SetBytes(sig))
	emBits := pub.N.BitLen() - 1
	emLen := (emBits + 7) / 8
	em := m.FixedBytes(emLen)

	hLen := h.Size()
	if emLen < hLen+saltLen+2 || em[emLen-1] != 0xbc {
		return primerr.New("rsa.VerifyPSS", primerr.FailTestVector, "invalid PSS trailer")
	}

	dbLen := emLen - hLen - 1
	db := make([]byte, dbLen)
	copy(db, em[:dbLen])
	hHash := em[dbLen : dbLen+hLen]

	unusedBits := emLen*8 - emBits
	mask := byte(0xff) >> uint(unusedBits)
	if unusedBits > 0 && db[0]&^mask != 0 {
		return primerr.New("rsa.VerifyPSS", primerr.FailTestVector, "nonzero leading padding bits")
	}

	dbMask := mgf1(h, hHash, dbLen)
	xmem.XorBytes(db, dbMask)
	clearUnusedBits(db, unusedBits)

	for i := 0; i < dbLen-saltLen-1; i++ {
		if db[i] != 0 {
			return primerr.New("rsa.VerifyPSS", primerr.FailTestVector, "invalid PS padding")
		}
	}
	if db[dbLen-saltLen-1] != 0x01 {
		return primerr.New("rsa.VerifyPSS", primerr.FailTestVector, "missing 0x01 separator")
	}
	salt := db[dbLen-saltLen:]

	mPrime := make([]byte, 0, 8+hLen+saltLen)
	mPrime = append(mPrime, make([]byte, 8)...)
	mPrime = append(mPrime, digest...)
	mPrime = append(mPrime, salt...)
	wantHash := hashSum(h, mPrime)

	if !xmem.ConstantTimeCompare(hHash, wantHash) {
		return primerr.New("rsa.VerifyPSS", primerr.FailTestVector, "signature does not verify")
	}
	return nil
}

func clearUnusedBits(buf []byte, unusedBits int) {
	if unusedBits <= 0 || len(buf) == 0 {
		return
	}
	buf[0] &= byte(0xff) >> uint(unusedBits)
}
