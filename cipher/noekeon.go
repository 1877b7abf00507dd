// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cipher

import (
	"encoding/binary"

	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

// noekeonRC holds the 17 round constants used by the 16-round cipher plus
// its final output transform, generated by repeated GF(2^8) doubling from
// 0x80 under the AES reduction polynomial — the same recurrence as the
// Rijndael key-schedule Rcon table, just restricted to one byte per round.
var noekeonRC = func() [17]byte {
	var rc [17]byte
	rc[0] = 0x80
	for i := 1; i < 17; i++ {
		prev := rc[i-1]
		next := prev << 1
		if prev&0x80 != 0 {
			next ^= 0x1B
		}
		rc[i] = next
	}
	return rc
}()

type noekeonDescriptor struct{}

// Noekeon is the registry.Cipher descriptor for the Noekeon block cipher
// (direct-key mode): 128-bit block and key, 16 rounds built from two
// involutions (Theta, a linear diffusion layer, and Gamma, a nonlinear
// substitution layer), which is what lets encryption and decryption share
// almost the same round structure.
var Noekeon registry.Cipher = noekeonDescriptor{}

func (noekeonDescriptor) Name() string         { return "noekeon" }
func (noekeonDescriptor) ID() int               { return 15 }
func (noekeonDescriptor) MinKeyLength() int     { return 16 }
func (noekeonDescriptor) MaxKeyLength() int     { return 16 }
func (noekeonDescriptor) DefaultKeyLength() int { return 16 }
func (noekeonDescriptor) BlockLength() int      { return 16 }
func (noekeonDescriptor) DefaultRounds() int    { return 16 }

func (noekeonDescriptor) RecommendedKeysize(keylen int) int { return 16 }

type noekeonKey struct {
	k       [4]uint32
	keyCopy []byte
}

func (k *noekeonKey) Done() {
	xmem.Zero(k.keyCopy)
	k.k = [4]uint32{}
}

func (d noekeonDescriptor) Setup(key []byte, rounds int) (registry.SchedKey, error) {
	if rounds != 0 && rounds != d.DefaultRounds() {
		return nil, primerr.New("noekeon.Setup", primerr.InvalidRounds, "noekeon round count is fixed at 16")
	}
	if len(key) != 16 {
		return nil, checkKeyLength("noekeon.Setup", len(key), 16, 16)
	}
	kc := make([]byte, 16)
	copy(kc, key)
	sk := &noekeonKey{keyCopy: kc}
	for i := 0; i < 4; i++ {
		sk.k[i] = binary.BigEndian.Uint32(key[4*i:])
	}
	return sk, nil
}

// noekeonTheta with a zero key is its own inverse. With key k it is undone
// by noekeonTheta keyed with k' = noekeonTheta(0, k), which is the key
// DecryptBlock uses.
func noekeonTheta(a *[4]uint32, k [4]uint32) {
	t := a[0] ^ a[2]
	t ^= rotl32(t, 8) ^ rotl32(t, 24)
	a[1] ^= t
	a[3] ^= t

	a[0] ^= k[0]
	a[1] ^= k[1]
	a[2] ^= k[2]
	a[3] ^= k[3]

	t = a[1] ^ a[3]
	t ^= rotl32(t, 8) ^ rotl32(t, 24)
	a[0] ^= t
	a[2] ^= t
}

// noekeonGamma is its own inverse.
func noekeonGamma(a *[4]uint32) {
	a[1] ^= ^a[3] & ^a[2]
	a[0] ^= a[2] & a[1]
	a[3], a[0] = a[0], a[3]
	a[2] ^= a[0] ^ a[1] ^ a[3]
	a[1] ^= ^a[3] & ^a[2]
	a[0] ^= a[2] & a[1]
}

func noekeonRound(a *[4]uint32, k [4]uint32, rc byte) {
	a[0] ^= uint32(rc)
	noekeonTheta(a, k)
	a[1] = rotl32(a[1], 1)
	a[2] = rotl32(a[2], 5)
	a[3] = rotl32(a[3], 2)
	noekeonGamma(a)
	a[1] = rotl32(a[1], 31)
	a[2] = rotl32(a[2], 27)
	a[3] = rotl32(a[3], 30)
}

// noekeonInverseRound undoes noekeonRound when k is the decryption key
// noekeonTheta(0, K): it applies the same stages in reverse order.
func noekeonInverseRound(a *[4]uint32, k [4]uint32, rc byte) {
	a[1] = rotl32(a[1], 1)
	a[2] = rotl32(a[2], 5)
	a[3] = rotl32(a[3], 2)
	noekeonGamma(a)
	a[1] = rotl32(a[1], 31)
	a[2] = rotl32(a[2], 27)
	a[3] = rotl32(a[3], 30)
	noekeonTheta(a, k)
	a[0] ^= uint32(rc)
}

func (k *noekeonKey) EncryptBlock(dst, src []byte) {
	var a [4]uint32
	for i := 0; i < 4; i++ {
		a[i] = binary.BigEndian.Uint32(src[4*i:])
	}
	for i := 0; i < 16; i++ {
		noekeonRound(&a, k.k, noekeonRC[i])
	}
	a[0] ^= uint32(noekeonRC[16])
	noekeonTheta(&a, k.k)
	for i := 0; i < 4; i++ {
		binary.BigEndian.PutUint32(dst[4*i:], a[i])
	}
}

func (k *noekeonKey) DecryptBlock(dst, src []byte) {
	var a [4]uint32
	for i := 0; i < 4; i++ {
		a[i] = binary.BigEndian.Uint32(src[4*i:])
	}
	dk := k.k
	noekeonTheta(&dk, [4]uint32{})
	noekeonTheta(&a, dk)
	a[0] ^= uint32(noekeonRC[16])
	for i := 15; i >= 0; i-- {
		noekeonInverseRound(&a, dk, noekeonRC[i])
	}
	for i := 0; i < 4; i++ {
		binary.BigEndian.PutUint32(dst[4*i:], a[i])
	}
}

func (d noekeonDescriptor) SelfTest() error {
	key := make([]byte, 16)
	for i := range key {
		key[i] = byte(i * 3)
	}
	pt := make([]byte, 16)
	for i := range pt {
		pt[i] = byte(0xF0 + i)
	}

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
			return primerr.New("noekeon.SelfTest", primerr.FailTestVector, "round-trip mismatch")
		}
	}
	return nil
}
