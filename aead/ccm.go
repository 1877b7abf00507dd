// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package aead

import (
	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

// ccmState is RFC 3610 CCM: B0 formats a flags byte (AAD-present bit, tag
// length, nonce length) followed by the message-length field; a CBC-MAC
// runs over the length-prefixed AAD then the plaintext; counter block S0
// (counter field zero) encrypts the tag and S1.. encrypt the message. CCM
// requires the message length up front (it is baked into B0), which is
// why NewCCMSeal/NewCCMOpen take msgLen and aadLen as explicit parameters
// rather than discovering them from call counts the way GCM does.
type ccmState struct {
	ba       *blockAdapter
	y        [16]byte
	macBuf   []byte
	ctr      [16]byte
	flags    byte
	nonce    []byte
	pad      [16]byte
	padUsed  int
	tagSize  int
	aadLen   int
	aadSeen  int
	aadClosed bool
}

func cbcMacWrite(ba *blockAdapter, y *[16]byte, buf *[]byte, data []byte) {
	*buf = append(*buf, data...)
	for len(*buf) >= 16 {
		var block [16]byte
		copy(block[:], (*buf)[:16])
		xmem.XorBytes(y[:], block[:])
		ba.encrypt(y[:], y[:])
		*buf = (*buf)[16:]
	}
}

func cbcMacFinish(ba *blockAdapter, y *[16]byte, buf *[]byte) {
	if len(*buf) == 0 {
		return
	}
	var block [16]byte
	copy(block[:], *buf)
	xmem.XorBytes(y[:], block[:])
	ba.encrypt(y[:], y[:])
	*buf = nil
}

func newCCM(c registry.Cipher, key, nonce []byte, tagSize, msgLen, aadLen int) (*ccmState, error) {
	if tagSize < 4 || tagSize > 16 || tagSize%2 != 0 {
		return nil, primerr.New("ccm.New", primerr.InvalidArg, "tag size must be an even value 4-16")
	}
	l := 15 - len(nonce)
	if l < 2 || l > 8 {
		return nil, primerr.New("ccm.New", primerr.InvalidArg, "nonce length must leave a 2-8 byte length field")
	}
	ba, err := newBlockAdapter(c, key, 0)
	if err != nil {
		return nil, err
	}
	if ba.blockLen != 16 {
		return nil, primerr.New("ccm.New", primerr.InvalidArg, "CCM requires a 16-byte block cipher")
	}

	var b0 [16]byte
	flags := byte(l - 1)
	flags |= byte(((tagSize - 2) / 2) << 3)
	if aadLen > 0 {
		flags |= 0x40
	}
	b0[0] = flags
	copy(b0[1:], nonce)
	for i, shift := 15, 0; i > 15-l; i, shift = i-1, shift+8 {
		b0[i] = byte(msgLen >> shift)
	}

	s := &ccmState{ba: ba, flags: byte(l - 1), nonce: append([]byte(nil), nonce...), tagSize: tagSize, aadLen: aadLen}
	ba.encrypt(s.y[:], b0[:])

	s.ctr[0] = s.flags
	copy(s.ctr[1:], s.nonce)
	if aadLen == 0 {
		s.aadClosed = true
	}
	return s, nil
}

func (s *ccmState) AddAAD(data []byte) error {
	if s.aadClosed {
		return primerr.New("ccm.AddAAD", primerr.InvalidArg, "AAD must precede message data")
	}
	if s.aadSeen == 0 {
		var prefix [2]byte
		prefix[0] = byte(s.aadLen >> 8)
		prefix[1] = byte(s.aadLen)
		cbcMacWrite(s.ba, &s.y, &s.macBuf, prefix[:])
	}
	s.aadSeen += len(data)
	cbcMacWrite(s.ba, &s.y, &s.macBuf, data)
	if s.aadSeen >= s.aadLen {
		cbcMacFinish(s.ba, &s.y, &s.macBuf)
		s.aadClosed = true
	}
	return nil
}

func (s *ccmState) closeAADIfNeeded() {
	if !s.aadClosed {
		cbcMacFinish(s.ba, &s.y, &s.macBuf)
		s.aadClosed = true
	}
}

func (s *ccmState) nextKeystreamBlock() {
	xmem.IncCounterBE(s.ctr[1+len(s.nonce):], 15-len(s.nonce))
	s.ba.encrypt(s.pad[:], s.ctr[:])
}

func (s *ccmState) crypt(dst, src []byte) {
	for i := range src {
		if s.padUsed == 16 {
			s.padUsed = 0
		}
		if s.padUsed == 0 {
			s.nextKeystreamBlock()
		}
		dst[i] = src[i] ^ s.pad[s.padUsed]
		s.padUsed++
	}
}

func (s *ccmState) finalTag() []byte {
	s.closeAADIfNeeded()
	cbcMacFinish(s.ba, &s.y, &s.macBuf)
	var s0Ctr [16]byte
	s0Ctr[0] = s.flags
	copy(s0Ctr[1:], s.nonce)
	var s0 [16]byte
	s.ba.encrypt(s0[:], s0Ctr[:])
	tag := append([]byte(nil), s.y[:]...)
	xmem.XorBytes(tag, s0[:])
	return tag[:s.tagSize]
}

type ccmSeal struct{ *ccmState }
type ccmOpen struct{ *ccmState }

// NewCCMSeal constructs a CCM encryption state. msgLen and aadLen must be
// the exact total byte counts the caller will pass to Encrypt/AddAAD.
func NewCCMSeal(c registry.Cipher, key, nonce []byte, tagSize, msgLen, aadLen int) (Sealer, error) {
	s, err := newCCM(c, key, nonce, tagSize, msgLen, aadLen)
	if err != nil {
		return nil, err
	}
	return &ccmSeal{s}, nil
}

// NewCCMOpen constructs a matching CCM decryption state.
func NewCCMOpen(c registry.Cipher, key, nonce []byte, tagSize, msgLen, aadLen int) (Opener, error) {
	s, err := newCCM(c, key, nonce, tagSize, msgLen, aadLen)
	if err != nil {
		return nil, err
	}
	return &ccmOpen{s}, nil
}

func (s *ccmSeal) Encrypt(dst, src []byte) error {
	s.closeAADIfNeeded()
	cbcMacWrite(s.ba, &s.y, &s.macBuf, src)
	s.crypt(dst, src)
	return nil
}

func (s *ccmSeal) Done() ([]byte, error) {
	tag := s.finalTag()
	s.ba.done()
	return tag, nil
}

func (o *ccmOpen) Decrypt(dst, src []byte) error {
	o.closeAADIfNeeded()
	o.crypt(dst, src)
	cbcMacWrite(o.ba, &o.y, &o.macBuf, dst[:len(src)])
	return nil
}

func (o *ccmOpen) Done(tag []byte) error {
	want := o.finalTag()
	o.ba.done()
	if !xmem.ConstantTimeCompare(tag, want) {
		return primerr.New("ccm.Open", primerr.FailTestVector, "authentication tag mismatch")
	}
	return nil
}
