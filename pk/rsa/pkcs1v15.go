// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rsa

import (
	"io"

	"github.com/luxfi/primcrypt/der"
	"github.com/luxfi/primcrypt/mpi"
	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

// EncryptPKCS1v15 encrypts msg under pub using the PKCS#1 v1.5 encryption
// padding: 00 || 02 || PS || 00 || msg, where PS is a run of non-zero
// random octets filling the block to the modulus size.
func EncryptPKCS1v15(random io.Reader, pub *PublicKey, msg []byte) ([]byte, error) {
	k := pub.Size()
	if len(msg) > k-11 {
		return nil, primerr.New("rsa.EncryptPKCS1v15", primerr.InputTooLong, "message too long for modulus size")
	}
	em := make([]byte, k)
	em[1] = 0x02
	psLen := k - len(msg) - 3
	if err := fillNonZero(random, em[2:2+psLen]); err != nil {
		return nil, err
	}
	copy(em[3+psLen:], msg)

	c := pub.publicOp(mpi.New().SetBytes(em))
	return c.FixedBytes(k), nil
}

// DecryptPKCS1v15 reverses EncryptPKCS1v15. Padding errors are reported
// generically rather than pinpointing which check failed, and the padding
// scan always walks the full buffer rather than stopping at the first
// zero byte, so a timing side channel can't localize where the padding
// diverges from well-formed (spec §4.8's "reject malformed padding in
// constant time where practical").
func DecryptPKCS1v15(priv *PrivateKey, ciphertext []byte) ([]byte, error) {
	k := priv.Size()
	if len(ciphertext) != k {
		return nil, primerr.New("rsa.DecryptPKCS1v15", primerr.InvalidPacket, "ciphertext length mismatch")
	}
	m, err := priv.privateOp(mpi.New().SetBytes(ciphertext))
	if err != nil {
		return nil, err
	}
	em := m.FixedBytes(k)

	good := 1
	if em[0] != 0x00 {
		good = 0
	}
	if em[1] != 0x02 {
		good = 0
	}
	zeroIdx := -1
	for i := 2; i < len(em); i++ {
		isZero := em[i] == 0
		if isZero && zeroIdx == -1 {
			zeroIdx = i
		}
	}
	if zeroIdx < 10 {
		good = 0
	}
	if good == 0 || zeroIdx < 0 {
		return nil, primerr.New("rsa.DecryptPKCS1v15", primerr.InvalidPacket, "invalid PKCS#1 v1.5 padding")
	}
	return em[zeroIdx+1:], nil
}

func fillNonZero(random io.Reader, buf []byte) error {
	if random == nil {
		random = defaultRandom()
	}
	one := make([]byte, 1)
	for i := range buf {
		for {
			if _, err := io.ReadFull(random, one); err != nil {
				return primerr.New("rsa.fillNonZero", primerr.ErrorReadPRNG, "%v", err)
			}
			if one[0] != 0 {
				break
			}
		}
		buf[i] = one[0]
	}
	return nil
}

// SignPKCS1v15 signs a precomputed digest (the caller hashes the message)
// using PKCS#1 v1.5 signature padding: 00 || 01 || PS(0xff) || 00 ||
// DigestInfo(digest).
func SignPKCS1v15(priv *PrivateKey, h registry.Hash, digest []byte) ([]byte, error) {
	if len(digest) != h.Size() {
		return nil, primerr.New("rsa.SignPKCS1v15", primerr.InvalidArg, "digest length does not match hash size")
	}
	oid, err := parseOID(h.OID())
	if err != nil {
		return nil, err
	}
	alg := der.AlgorithmIdentifier{OID: oid}
	algDER, err := alg.Encode()
	if err != nil {
		return nil, err
	}
	digestInfo := der.EncodeSequence(algDER, der.EncodeOctetString(digest))

	k := priv.Size()
	if len(digestInfo) > k-11 {
		return nil, primerr.New("rsa.SignPKCS1v15", primerr.InputTooLong, "digest info too long for modulus size")
	}
	em := make([]byte, k)
	em[1] = 0x01
	psLen := k - len(digestInfo) - 3
	for i := range em[2 : 2+psLen] {
		em[2+i] = 0xff
	}
	copy(em[3+psLen:], digestInfo)

	s, err := priv.privateOp(mpi.New().SetBytes(em))
	if err != nil {
		return nil, err
	}
	return s.FixedBytes(k), nil
}

// VerifyPKCS1v15 verifies sig against digest under pub.
func VerifyPKCS1v15(pub *PublicKey, h registry.Hash, digest, sig []byte) error {
	k := pub.Size()
	if len(sig) != k {
		return primerr.New("rsa.VerifyPKCS1v15", primerr.InvalidPacket, "signature length mismatch")
	}
	m := pub.publicOp(mpi.New().SetBytes(sig))
	em := m.FixedBytes(k)

	oid, err := parseOID(h.OID())
	if err != nil {
		return err
	}
	alg := der.AlgorithmIdentifier{OID: oid}
	algDER, err := alg.Encode()
	if err != nil {
		return err
	}
	wantInfo := der.EncodeSequence(algDER, der.EncodeOctetString(digest))

	psLen := k - len(wantInfo) - 3
	if psLen < 8 {
		return primerr.New("rsa.VerifyPKCS1v15", primerr.InvalidPacket, "digest info too long for modulus size")
	}
	want := make([]byte, k)
	want[1] = 0x01
	for i := range want[2 : 2+psLen] {
		want[2+i] = 0xff
	}
	copy(want[3+psLen:], wantInfo)

	if !xmem.ConstantTimeCompare(em, want) {
		return primerr.New("rsa.VerifyPKCS1v15", primerr.FailTestVector, "signature does not verify")
	}
	return nil
}
