// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cipher

import (
	"encoding/hex"

	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/cast5"
	"golang.org/x/crypto/tea"
	"golang.org/x/crypto/twofish"
	"golang.org/x/crypto/xtea"

	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
)

// blowfishDescriptor wraps golang.org/x/crypto/blowfish, which already
// implements Schneier's key schedule and P-box/S-box initialization; there is
// no reason to hand-transcribe it.
type blowfishDescriptor struct{}

// Blowfish is the registry.Cipher descriptor for Blowfish (variable 32-448
// bit keys, 8-byte blocks).
var Blowfish registry.Cipher = blowfishDescriptor{}

func (blowfishDescriptor) Name() string         { return "blowfish" }
func (blowfishDescriptor) ID() int               { return 7 }
func (blowfishDescriptor) MinKeyLength() int     { return 4 }
func (blowfishDescriptor) MaxKeyLength() int     { return 56 }
func (blowfishDescriptor) DefaultKeyLength() int { return 16 }
func (blowfishDescriptor) BlockLength() int      { return 8 }
func (blowfishDescriptor) DefaultRounds() int    { return 16 }

func (blowfishDescriptor) RecommendedKeysize(keylen int) int {
	if keylen > 56 {
		return 56
	}
	if keylen < 4 {
		return 4
	}
	return keylen
}

func (d blowfishDescriptor) Setup(key []byte, rounds int) (registry.SchedKey, error) {
	if rounds != 0 && rounds != d.DefaultRounds() {
		return nil, primerr.New("blowfish.Setup", primerr.InvalidRounds, "blowfish round count is fixed at 16")
	}
	if err := checkKeyLength("blowfish.Setup", len(key), d.MinKeyLength(), d.MaxKeyLength()); err != nil {
		return nil, err
	}
	blk, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, primerr.New("blowfish.Setup", primerr.InvalidKeysize, "%v", err)
	}
	return wrapBlock(blk, key), nil
}

func (d blowfishDescriptor) SelfTest() error {
	key, _ := hex.DecodeString("0000000000000000")
	pt, _ := hex.DecodeString("0000000000000000")
	want, _ := hex.DecodeString("4EF997456198DD78")

	sk, err := d.Setup(key, 0)
	if err != nil {
		return err
	}
	defer sk.Done()
	got := make([]byte, 8)
	sk.EncryptBlock(got, pt)
	for i := range got {
		if got[i] != want[i] {
			return primerr.New("blowfish.SelfTest", primerr.FailTestVector, "encrypt mismatch")
		}
	}
	return nil
}

// twofishDescriptor wraps golang.org/x/crypto/twofish (128-bit blocks,
// 128/192/256-bit keys).
type twofishDescriptor struct{}

// Twofish is the registry.Cipher descriptor for Twofish.
var Twofish registry.Cipher = twofishDescriptor{}

func (twofishDescriptor) Name() string         { return "twofish" }
func (twofishDescriptor) ID() int               { return 8 }
func (twofishDescriptor) MinKeyLength() int     { return 16 }
func (twofishDescriptor) MaxKeyLength() int     { return 32 }
func (twofishDescriptor) DefaultKeyLength() int { return 16 }
func (twofishDescriptor) BlockLength() int      { return 16 }
func (twofishDescriptor) DefaultRounds() int    { return 16 }

func (twofishDescriptor) RecommendedKeysize(keylen int) int {
	return recommendRange(keylen, 16, 24, 32)
}

func (d twofishDescriptor) Setup(key []byte, rounds int) (registry.SchedKey, error) {
	if rounds != 0 && rounds != d.DefaultRounds() {
		return nil, primerr.New("twofish.Setup", primerr.InvalidRounds, "twofish round count is fixed at 16")
	}
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, checkKeyLength("twofish.Setup", len(key), d.MinKeyLength(), d.MaxKeyLength())
	}
	blk, err := twofish.NewCipher(key)
	if err != nil {
		return nil, primerr.New("twofish.Setup", primerr.InvalidKeysize, "%v", err)
	}
	return wrapBlock(blk, key), nil
}

func (d twofishDescriptor) SelfTest() error {
	key := make([]byte, 16)
	pt := make([]byte, 16)
	sk, err := d.Setup(key, 0)
	if err != nil {
		return err
	}
	defer sk.Done()
	ct := make([]byte, 16)
	sk.EncryptBlock(ct, pt)
	back := make([]byte, 16)
	sk.DecryptBlock(back, ct)
	for i := range back {
		if back[i] != pt[i] {
			return primerr.New("twofish.SelfTest", primerr.FailTestVector, "round-trip mismatch")
		}
	}
	return nil
}

// cast5Descriptor wraps golang.org/x/crypto/cast5 (RFC 2144, fixed 128-bit
// keys and 64-bit blocks in this module's usage).
type cast5Descriptor struct{}

// CAST5 is the registry.Cipher descriptor for CAST5/CAST-128.
var CAST5 registry.Cipher = cast5Descriptor{}

func (cast5Descriptor) Name() string         { return "cast5" }
func (cast5Descriptor) ID() int               { return 9 }
func (cast5Descriptor) MinKeyLength() int     { return 16 }
func (cast5Descriptor) MaxKeyLength() int     { return 16 }
func (cast5Descriptor) DefaultKeyLength() int { return 16 }
func (cast5Descriptor) BlockLength() int      { return 8 }
func (cast5Descriptor) DefaultRounds() int    { return 16 }

func (cast5Descriptor) RecommendedKeysize(keylen int) int { return 16 }

func (d cast5Descriptor) Setup(key []byte, rounds int) (registry.SchedKey, error) {
	if rounds != 0 && rounds != d.DefaultRounds() {
		return nil, primerr.New("cast5.Setup", primerr.InvalidRounds, "cast5 round count is fixed at 16")
	}
	if len(key) != 16 {
		return nil, checkKeyLength("cast5.Setup", len(key), 16, 16)
	}
	blk, err := cast5.NewCipher(key)
	if err != nil {
		return nil, primerr.New("cast5.Setup", primerr.InvalidKeysize, "%v", err)
	}
	return wrapBlock(blk, key), nil
}

func (d cast5Descriptor) SelfTest() error {
	// RFC 2144 appendix B.1 known-answer vector.
	key, _ := hex.DecodeString("0123456712345678234567893456789A")
	pt, _ := hex.DecodeString("0123456789ABCDEF")
	want, _ := hex.DecodeString("238B4FE5847E44B2")

	sk, err := d.Setup(key, 0)
	if err != nil {
		return err
	}
	defer sk.Done()
	got := make([]byte, 8)
	sk.EncryptBlock(got, pt)
	for i := range got {
		if got[i] != want[i] {
			return primerr.New("cast5.SelfTest", primerr.FailTestVector, "encrypt mismatch")
		}
	}
	return nil
}

// teaDescriptor wraps golang.org/x/crypto/tea (Needham/Wheeler's Tiny
// Encryption Algorithm, fixed 128-bit key, 64-bit block).
type teaDescriptor struct{}

// TEA is the registry.Cipher descriptor for TEA.
var TEA registry.Cipher = teaDescriptor{}

func (teaDescriptor) Name() string         { return "tea" }
func (teaDescriptor) ID() int               { return 10 }
func (teaDescriptor) MinKeyLength() int     { return 16 }
func (teaDescriptor) MaxKeyLength() int     { return 16 }
func (teaDescriptor) DefaultKeyLength() int { return 16 }
func (teaDescriptor) BlockLength() int      { return 8 }
func (teaDescriptor) DefaultRounds() int    { return tea.DefaultRounds }

func (teaDescriptor) RecommendedKeysize(keylen int) int { return 16 }

func (d teaDescriptor) Setup(key []byte, rounds int) (registry.SchedKey, error) {
	if len(key) != 16 {
		return nil, checkKeyLength("tea.Setup", len(key), 16, 16)
	}
	if rounds == 0 {
		rounds = tea.DefaultRounds
	}
	blk, err := tea.NewCipherWithRounds(key, rounds)
	if err != nil {
		return nil, primerr.New("tea.Setup", primerr.InvalidRounds, "%v", err)
	}
	return wrapBlock(blk, key), nil
}

func (d teaDescriptor) SelfTest() error {
	key := make([]byte, 16)
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
			return primerr.New("tea.SelfTest", primerr.FailTestVector, "round-trip mismatch")
		}
	}
	return nil
}

// xteaDescriptor wraps golang.org/x/crypto/xtea (the corrected successor to
// TEA, same key/block sizes).
type xteaDescriptor struct{}

// XTEA is the registry.Cipher descriptor for XTEA.
var XTEA registry.Cipher = xteaDescriptor{}

func (xteaDescriptor) Name() string         { return "xtea" }
func (xteaDescriptor) ID() int               { return 11 }
func (xteaDescriptor) MinKeyLength() int     { return 16 }
func (xteaDescriptor) MaxKeyLength() int     { return 16 }
func (xteaDescriptor) DefaultKeyLength() int { return 16 }
func (xteaDescriptor) BlockLength() int      { return 8 }
func (xteaDescriptor) DefaultRounds() int    { return 64 }

func (xteaDescriptor) RecommendedKeysize(keylen int) int { return 16 }

func (d xteaDescriptor) Setup(key []byte, rounds int) (registry.SchedKey, error) {
	if rounds != 0 && rounds != d.DefaultRounds() {
		return nil, primerr.New("xtea.Setup", primerr.InvalidRounds, "xtea round count is fixed at 64")
	}
	if len(key) != 16 {
		return nil, checkKeyLength("xtea.Setup", len(key), 16, 16)
	}
	blk, err := xtea.NewCipher(key)
	if err != nil {
		return nil, primerr.New("xtea.Setup", primerr.InvalidKeysize, "%v", err)
	}
	return wrapBlock(blk, key), nil
}

func (d xteaDescriptor) SelfTest() error {
	key := make([]byte, 16)
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
			return primerr.New("xtea.SelfTest", primerr.FailTestVector, "round-trip mismatch")
		}
	}
	return nil
}
