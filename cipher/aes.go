// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cipher

import (
	stdaes "crypto/aes"
	"encoding/hex"

	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
)

// AES is the registry.Cipher descriptor for AES-128/192/256, wrapping
// crypto/aes directly: the standard library's implementation is constant-time
// on every platform Go supports (hardware AES-NI/ARMv8 crypto extensions via
// runtime dispatch), so there is no reason to reimplement Rijndael here.
type aesDescriptor struct{}

// AES is the shared descriptor instance, registered by Register.
var AES registry.Cipher = aesDescriptor{}

func (aesDescriptor) Name() string          { return "aes" }
func (aesDescriptor) ID() int                { return 6 }
func (aesDescriptor) MinKeyLength() int      { return 16 }
func (aesDescriptor) MaxKeyLength() int      { return 32 }
func (aesDescriptor) DefaultKeyLength() int  { return 16 }
func (aesDescriptor) BlockLength() int       { return stdaes.BlockSize }
func (aesDescriptor) DefaultRounds() int     { return 0 }

func (aesDescriptor) RecommendedKeysize(keylen int) int {
	return recommendRange(keylen, 16, 24, 32)
}

func (d aesDescriptor) Setup(key []byte, rounds int) (registry.SchedKey, error) {
	if rounds != 0 {
		return nil, primerr.New("aes.Setup", primerr.InvalidRounds, "aes round count is fixed by key length")
	}
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, checkKeyLength("aes.Setup", len(key), d.MinKeyLength(), d.MaxKeyLength())
	}
	blk, err := stdaes.NewCipher(key)
	if err != nil {
		return nil, primerr.New("aes.Setup", primerr.InvalidKeysize, "%v", err)
	}
	return wrapBlock(blk, key), nil
}

func (d aesDescriptor) SelfTest() error {
	// FIPS-197 AES-128 ECB known-answer vector.
	key, _ := hex.DecodeString("000102030405060708090A0B0C0D0E0F")
	pt, _ := hex.DecodeString("00112233445566778899AABBCCDDEEFF")
	want, _ := hex.DecodeString("69C4E0D86A7B0430D8CDB78070B4C55A")

	sk, err := d.Setup(key, 0)
	if err != nil {
		return err
	}
	defer sk.Done()

	got := make([]byte, len(pt))
	sk.EncryptBlock(got, pt)
	for i := range got {
		if got[i] != want[i] {
			return primerr.New("aes.SelfTest", primerr.FailTestVector, "ECB encrypt mismatch")
		}
	}
	return nil
}
