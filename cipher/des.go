// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cipher

import (
	stddes "crypto/des"
	"encoding/hex"

	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
)

type desDescriptor struct{}

// DES is the registry.Cipher descriptor for single-key DES, kept only for
// interoperability with legacy wire formats; callers wanting real security
// margin should reach for TripleDES or AES.
var DES registry.Cipher = desDescriptor{}

func (desDescriptor) Name() string         { return "des" }
func (desDescriptor) ID() int               { return 1 }
func (desDescriptor) MinKeyLength() int     { return 8 }
func (desDescriptor) MaxKeyLength() int     { return 8 }
func (desDescriptor) DefaultKeyLength() int { return 8 }
func (desDescriptor) BlockLength() int      { return stddes.BlockSize }
func (desDescriptor) DefaultRounds() int    { return 16 }

func (desDescriptor) RecommendedKeysize(keylen int) int { return 8 }

func (d desDescriptor) Setup(key []byte, rounds int) (registry.SchedKey, error) {
	if rounds != 0 && rounds != d.DefaultRounds() {
		return nil, primerr.New("des.Setup", primerr.InvalidRounds, "des round count is fixed at 16")
	}
	if len(key) != 8 {
		return nil, checkKeyLength("des.Setup", len(key), 8, 8)
	}
	blk, err := stddes.NewCipher(key)
	if err != nil {
		return nil, primerr.New("des.Setup", primerr.InvalidKeysize, "%v", err)
	}
	return wrapBlock(blk, key), nil
}

func (d desDescriptor) SelfTest() error {
	// NIST SP 800-17 single-DES known-answer vector.
	key, _ := hex.DecodeString("0123456789ABCDEF")
	pt, _ := hex.DecodeString("4E6F772069732074")
	want, _ := hex.DecodeString("3FA40E8A984D4815")

	sk, err := d.Setup(key, 0)
	if err != nil {
		return err
	}
	defer sk.Done()

	got := make([]byte, len(pt))
	sk.EncryptBlock(got, pt)
	for i := range got {
		if got[i] != want[i] {
			return primerr.New("des.SelfTest", primerr.FailTestVector, "encrypt mismatch")
		}
	}
	back := make([]byte, len(pt))
	sk.DecryptBlock(back, got)
	for i := range back {
		if back[i] != pt[i] {
			return primerr.New("des.SelfTest", primerr.FailTestVector, "decrypt mismatch")
		}
	}
	return nil
}

type tripleDESDescriptor struct{}

// TripleDES is the registry.Cipher descriptor for 3DES (EDE, 24-byte keys).
var TripleDES registry.Cipher = tripleDESDescriptor{}

func (tripleDESDescriptor) Name() string         { return "3des" }
func (tripleDESDescriptor) ID() int               { return 2 }
func (tripleDESDescriptor) MinKeyLength() int     { return 24 }
func (tripleDESDescriptor) MaxKeyLength() int     { return 24 }
func (tripleDESDescriptor) DefaultKeyLength() int { return 24 }
func (tripleDESDescriptor) BlockLength() int      { return stddes.BlockSize }
func (tripleDESDescriptor) DefaultRounds() int    { return 48 }

func (tripleDESDescriptor) RecommendedKeysize(keylen int) int { return 24 }

func (d tripleDESDescriptor) Setup(key []byte, rounds int) (registry.SchedKey, error) {
	if rounds != 0 && rounds != d.DefaultRounds() {
		return nil, primerr.New("3des.Setup", primerr.InvalidRounds, "3des round count is fixed at 48")
	}
	if len(key) != 24 {
		return nil, checkKeyLength("3des.Setup", len(key), 24, 24)
	}
	blk, err := stddes.NewTripleDESCipher(key)
	if err != nil {
		return nil, primerr.New("3des.Setup", primerr.InvalidKeysize, "%v", err)
	}
	return wrapBlock(blk, key), nil
}

func (d tripleDESDescriptor) SelfTest() error {
	key, _ := hex.DecodeString("0123456789ABCDEFFEDCBA9876543210" + "0123456789ABCDEF")
	pt := make([]byte, 8)

	sk, err := d.Setup(key, 0)
	if err != nil {
		return err
	}
	defer sk.Done()

	ct := make([]byte, 8)
	sk.EncryptBlock(ct, pt)
	back := make([]byte, 8)
	sk.DecryptBlock(back, ct)
	for i := range back {
		if back[i] != pt[i] {
			return primerr.New("3des.SelfTest", primerr.FailTestVector, "round-trip mismatch")
		}
	}
	return nil
}
