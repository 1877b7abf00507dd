// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hash

import (
	"hash"

	"github.com/luxfi/primcrypt/cipher"
	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

// chcState is a Davies-Meyer hash built generically over any registry.Cipher:
// H_0 is all-zero, and each block compresses as H_i = E_{H_{i-1}}(M_i) XOR
// H_i-1. This is the module's demonstration that the registry is
// compositional by design — CHC is written once against registry.Cipher and
// gets a free, independent hash function out of every block cipher
// descriptor registered, exactly as spec §2's "CHC" entry intends.
type chcState struct {
	c       registry.Cipher
	blkSize int
	state   []byte
	buf     []byte
	length  uint64
}

// NewCHC returns a Davies-Meyer hash.Hash over c. c's block length is both
// the hash's digest size and its internal block size; c must accept its
// block length as a key length (AES, SM4, Noekeon and Twofish do; 3DES,
// IDEA and Skipjack, for example, do not).
func NewCHC(c registry.Cipher) hash.Hash {
	s := &chcState{c: c, blkSize: c.BlockLength()}
	s.state = make([]byte, s.blkSize)
	s.buf = make([]byte, 0, s.blkSize)
	return s
}

func (s *chcState) compress(block []byte) {
	// Nothing checks up front that c accepts its block length as a key;
	// compress panics if Setup rejects the state. AES-128 is the
	// instantiation this module registers.
	sk, err := s.c.Setup(s.state, 0)
	if err != nil {
		panic("chc: cipher rejected its own state as key: " + err.Error())
	}
	defer sk.Done()

	out := make([]byte, s.blkSize)
	sk.EncryptBlock(out, block)
	xmem.XorBytes(out, s.state)
	copy(s.state, out)
}

func (s *chcState) Write(p []byte) (int, error) {
	n := len(p)
	s.length += uint64(n)
	s.buf = append(s.buf, p...)
	for len(s.buf) >= s.blkSize {
		s.compress(s.buf[:s.blkSize])
		s.buf = s.buf[s.blkSize:]
	}
	return n, nil
}

func (s *chcState) Sum(b []byte) []byte {
	clone := &chcState{c: s.c, blkSize: s.blkSize, length: s.length}
	clone.state = append([]byte(nil), s.state...)
	clone.buf = append([]byte(nil), s.buf...)
	clone.padAndFinish()
	return append(b, clone.state...)
}

// padAndFinish applies Merkle-Damgard strengthening: a single 0x80 byte, zero
// padding, and the bit length of the whole message in the final 8 bytes,
// then compresses every remaining block.
func (s *chcState) padAndFinish() {
	bitLen := s.length * 8
	s.buf = append(s.buf, 0x80)
	for len(s.buf)%s.blkSize != s.blkSize-8 {
		s.buf = append(s.buf, 0)
	}
	for i := 7; i >= 0; i-- {
		s.buf = append(s.buf, byte(bitLen>>(8*i)))
	}
	for len(s.buf) >= s.blkSize {
		s.compress(s.buf[:s.blkSize])
		s.buf = s.buf[s.blkSize:]
	}
}

func (s *chcState) Reset() {
	s.state = make([]byte, s.blkSize)
	s.buf = s.buf[:0]
	s.length = 0
}

func (s *chcState) Size() int      { return s.blkSize }
func (s *chcState) BlockSize() int { return s.blkSize }

type chcDescriptor struct {
	name string
	c    registry.Cipher
}

// CHCAES is the registry.Hash descriptor for CHC instantiated over AES-128,
// the combination spec §2's "CHC" entry is usually illustrated with.
var CHCAES registry.Hash = chcDescriptor{name: "chc-aes", c: cipher.AES}

func (d chcDescriptor) Name() string      { return d.name }
func (d chcDescriptor) OID() string       { return "" }
func (d chcDescriptor) Size() int         { return d.c.BlockLength() }
func (d chcDescriptor) BlockSize() int    { return d.c.BlockLength() }
func (d chcDescriptor) New() hash.Hash    { return NewCHC(d.c) }

func (d chcDescriptor) SelfTest() error {
	h1 := d.New()
	h1.Write([]byte("the quick brown fox"))
	sum1 := h1.Sum(nil)

	h2 := d.New()
	h2.Write([]byte("the quick brown fox"))
	sum2 := h2.Sum(nil)

	for i := range sum1 {
		if sum1[i] != sum2[i] {
			return primerr.New("chc.SelfTest", primerr.FailTestVector, "non-deterministic digest")
		}
	}

	h3 := d.New()
	h3.Write([]byte("the quick brown foy"))
	sum3 := h3.Sum(nil)
	same := true
	for i := range sum1 {
		if sum1[i] != sum3[i] {
			same = false
			break
		}
	}
	if same {
		return primerr.New("chc.SelfTest", primerr.FailTestVector, "digest did not change with input")
	}
	return nil
}
