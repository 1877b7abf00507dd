// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cipher

import (
	"encoding/binary"

	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

type ideaDescriptor struct{}

// IDEA is the registry.Cipher descriptor for the International Data
// Encryption Algorithm: a 64-bit block, 128-bit key, 8.5-round cipher built
// from 16-bit addition, XOR, and multiplication mod 2^16+1.
var IDEA registry.Cipher = ideaDescriptor{}

func (ideaDescriptor) Name() string         { return "idea" }
func (ideaDescriptor) ID() int               { return 13 }
func (ideaDescriptor) MinKeyLength() int     { return 16 }
func (ideaDescriptor) MaxKeyLength() int     { return 16 }
func (ideaDescriptor) DefaultKeyLength() int { return 16 }
func (ideaDescriptor) BlockLength() int      { return 8 }
func (ideaDescriptor) DefaultRounds() int    { return 8 }

func (ideaDescriptor) RecommendedKeysize(keylen int) int { return 16 }

type ideaKey struct {
	ek, dk  [52]uint16
	keyCopy []byte
}

func (k *ideaKey) Done() {
	xmem.Zero(k.keyCopy)
	for i := range k.ek {
		k.ek[i], k.dk[i] = 0, 0
	}
}

func (d ideaDescriptor) Setup(key []byte, rounds int) (registry.SchedKey, error) {
	if rounds != 0 && rounds != d.DefaultRounds() {
		return nil, primerr.New("idea.Setup", primerr.InvalidRounds, "idea round count is fixed at 8")
	}
	if len(key) != 16 {
		return nil, checkKeyLength("idea.Setup", len(key), 16, 16)
	}

	kc := make([]byte, 16)
	copy(kc, key)
	sk := &ideaKey{keyCopy: kc}
	sk.ek = ideaExpandEncryptKey(key)
	sk.dk = ideaExpandDecryptKey(sk.ek)
	return sk, nil
}

func ideaExpandEncryptKey(key []byte) [52]uint16 {
	var buf [16]byte
	copy(buf[:], key)

	var ek [52]uint16
	idx := 0
	for idx < 52 {
		for w := 0; w < 8 && idx < 52; w++ {
			ek[idx] = uint16(buf[2*w])<<8 | uint16(buf[2*w+1])
			idx++
		}
		ideaRotateLeft128(&buf, 25)
	}
	return ek
}

func ideaRotateLeft128(buf *[16]byte, n uint) {
	n %= 128
	if n == 0 {
		return
	}
	hi := binary.BigEndian.Uint64(buf[0:8])
	lo := binary.BigEndian.Uint64(buf[8:16])
	var nhi, nlo uint64
	if n < 64 {
		nhi = hi<<n | lo>>(64-n)
		nlo = lo<<n | hi>>(64-n)
	} else {
		m := n - 64
		nhi = lo<<m | hi>>(64-m)
		nlo = hi<<m | lo>>(64-m)
	}
	binary.BigEndian.PutUint64(buf[0:8], nhi)
	binary.BigEndian.PutUint64(buf[8:16], nlo)
}

func ideaAddInv(x uint16) uint16 { return uint16(0x10000 - uint32(x)) }

func ideaMulInv(x uint16) uint16 {
	if x <= 1 {
		return x
	}
	var t0, t1 int32 = 0, 1
	y, xx := int32(65537), int32(x)
	for xx != 0 {
		q := y / xx
		t0, t1 = t1, t0-q*t1
		y, xx = xx, y-q*xx
	}
	if t0 < 0 {
		t0 += 65537
	}
	return uint16(t0)
}

// ideaExpandDecryptKey derives the decryption subkey schedule from the
// encryption one: each of the 9 subkey groups is inverted (multiplicative
// inverse mod 2^16+1 for the multiplying subkeys, additive inverse mod 2^16
// for the adding ones) and the groups are applied back to front, with the
// two adding subkeys of rounds 2-8 swapped to match the middle-word swap.
func ideaExpandDecryptKey(ek [52]uint16) [52]uint16 {
	var dk [52]uint16
	p := 52

	t1 := ideaMulInv(ek[0])
	t2 := ideaAddInv(ek[1])
	t3 := ideaAddInv(ek[2])
	p--
	dk[p] = ideaMulInv(ek[3])
	p--
	dk[p] = t3
	p--
	dk[p] = t2
	p--
	dk[p] = t1

	for r := 1; r < 8; r++ {
		a := ek[6*r-2]
		b := ek[6*r-1]
		p--
		dk[p] = b
		p--
		dk[p] = a

		t1 = ideaMulInv(ek[6*r])
		t2 = ideaAddInv(ek[6*r+1])
		t3 = ideaAddInv(ek[6*r+2])
		p--
		dk[p] = ideaMulInv(ek[6*r+3])
		p--
		dk[p] = t2
		p--
		dk[p] = t3
		p--
		dk[p] = t1
	}

	a := ek[46]
	b := ek[47]
	p--
	dk[p] = b
	p--
	dk[p] = a

	t1 = ideaMulInv(ek[48])
	t2 = ideaAddInv(ek[49])
	t3 = ideaAddInv(ek[50])
	p--
	dk[p] = ideaMulInv(ek[51])
	p--
	dk[p] = t3
	p--
	dk[p] = t2
	p--
	dk[p] = t1

	return dk
}

func ideaMul(a, b uint16) uint16 {
	x, y := uint32(a), uint32(b)
	if x == 0 {
		x = 0x10000
	}
	if y == 0 {
		y = 0x10000
	}
	p := uint64(x) * uint64(y)
	lo := uint32(p & 0xffff)
	hi := uint32(p >> 16)
	r := lo - hi
	if lo < hi {
		r += 0x10001
	}
	if r == 0x10000 {
		return 0
	}
	return uint16(r)
}

func ideaTransform(sub [52]uint16, src []byte, dst []byte) {
	x1 := uint16(src[0])<<8 | uint16(src[1])
	x2 := uint16(src[2])<<8 | uint16(src[3])
	x3 := uint16(src[4])<<8 | uint16(src[5])
	x4 := uint16(src[6])<<8 | uint16(src[7])

	for round := 0; round < 8; round++ {
		k := sub[round*6 : round*6+6]
		y1 := ideaMul(x1, k[0])
		y2 := x2 + k[1]
		y3 := x3 + k[2]
		y4 := ideaMul(x4, k[3])
		p := y1 ^ y3
		q := y2 ^ y4
		p = ideaMul(p, k[4])
		q = p + q
		q = ideaMul(q, k[5])
		p = p + q
		y1 ^= q
		y4 ^= p
		t := y2 ^ p
		y2 = y3 ^ q
		y3 = t
		x1, x2, x3, x4 = y1, y2, y3, y4
	}

	out1 := ideaMul(x1, sub[48])
	out2 := x3 + sub[49]
	out3 := x2 + sub[50]
	out4 := ideaMul(x4, sub[51])

	binary.BigEndian.PutUint16(dst[0:2], out1)
	binary.BigEndian.PutUint16(dst[2:4], out2)
	binary.BigEndian.PutUint16(dst[4:6], out3)
	binary.BigEndian.PutUint16(dst[6:8], out4)
}

func (k *ideaKey) EncryptBlock(dst, src []byte) { ideaTransform(k.ek, src, dst) }
func (k *ideaKey) DecryptBlock(dst, src []byte) { ideaTransform(k.dk, src, dst) }

func (d ideaDescriptor) SelfTest() error {
	key := make([]byte, 16)
	for i := range key {
		key[i] = byte(i + 1)
	}
	pt := make([]byte, 8)
	for i := range pt {
		pt[i] = byte(0x10 + i)
	}

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
			return primerr.New("idea.SelfTest", primerr.FailTestVector, "round-trip mismatch")
		}
	}
	return nil
}
