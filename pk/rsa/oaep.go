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

// EncryptOAEP encrypts msg under pub using OAEP padding (RFC 8017 §7.1)
// with MGF1 built on h, and the given label (nil for the empty label).
func EncryptOAEP(random io.Reader, h registry.Hash, pub *PublicKey, msg, label []byte) ([]byte, error) {
	if random == nil {
		random = defaultRandom()
	}
	k := pub.Size()
	hLen := h.Size()
	if len(msg) > k-2*hLen-2 {
		return nil, primerr.New("rsa.EncryptOAEP", primerr.InputTooLong, "message too long for modulus size and hash")
	}

	lHash := hashSum(h, label)
	psLen := k - len(msg) - 2*hLen - 2
	dataBlock := make([]byte, 0, k-hLen-1)
	dataBlock = append(dataBlock, lHash...)
	dataBlock = append(dataBlock, make([]byte, psLen)...)
	dataBlock = append(dataBlock, 0x01)
	dataBlock = append(dataBlock, msg...)

	seed := make([]byte, hLen)
	if _, err := io.ReadFull(random, seed); err != nil {
		return nil, primerr.New("rsa.EncryptOAEP", primerr.ErrorReadPRNG, "%v", err)
	}

	dbMask := mgf1(h, seed, len(dataBlock))
	xmem.XorBytes(dataBlock, dbMask)

	seedMask := mgf1(h, dataBlock, hLen)
	maskedSeed := make([]byte, hLen)
	copy(maskedSeed, seed)
	xmem.XorBytes(maskedSeed, seedMask)

	em := make([]byte, k)
	copy(em[1:1+hLen], maskedSeed)
	copy(em[1+hLen:], dataBlock)

	c := pub.publicOp(mpi.New().SetBytes(em))
	return c.FixedBytes(k), nil
}

// DecryptOAEP reverses EncryptOAEP.
func DecryptOAEP(priv *PrivateKey, h registry.Hash, ciphertext, label []byte) ([]byte, error) {
	k := priv.Size()
	hLen := h.Size()
	if len(ciphertext) != k || k < 2*hLen+2 {
		return nil, primerr.New("rsa.DecryptOAEP", primerr.InvalidPacket, "ciphertext length mismatch")
	}
	m, err := priv.privateOp(mpi.New().SetBytes(ciphertext))
	if err != nil {
		return nil, err
	}
	em := m.FixedBytes(k)

	maskedSeed := em[1 : 1+hLen]
	maskedDB := em[1+hLen:]

	seedMask := mgf1(h, maskedDB, hLen)
	seed := make([]byte, hLen)
	copy(seed, maskedSeed)
	xmem.XorBytes(seed, seedMask)

	dbMask := mgf1(h, seed, len(maskedDB))
	db := make([]byte, len(maskedDB))
	copy(db, maskedDB)
	xmem.XorBytes(db, dbMask)

	lHash := hashSum(h, label)
	good := 1
	if em[0] != 0x00 {
		good = 0
	}
	if !xmem.ConstantTimeCompare(db[:hLen], lHash) {
		good = 0
	}
	idx := -1
	for i := hLen; i < len(db); i++ {
		if db[i] == 0x01 && idx == -1 {
			allZeroBefore := true
			for j := hLen; j < i; j++ {
				if db[j] != 0 {
					allZeroBefore = false
				}
			}
			if allZeroBefore {
				idx = i
			}
		}
	}
	if good == 0 || idx < 0 {
		return nil, primerr.New("rsa.DecryptOAEP", primerr.InvalidPacket, "invalid OAEP padding")
	}
	return db[idx+1:], nil
}

func hashSum(h registry.Hash, data []byte) []byte {
	st := h.New()
	st.Write(data)
	return st.Sum(nil)
}
