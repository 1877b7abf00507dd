// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mac

import (
	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

// omacState is OMAC1/CMAC (NIST SP 800-38B): a CBC-MAC variant that derives
// two subkeys K1, K2 from E_K(0) by doubling in GF(2^n), then XORs the
// final message block with K1 (if the message is a whole number of blocks)
// or K2 after 10-padding (otherwise) before the last cipher application.
type omacState struct {
	sk       registry.SchedKey
	blockLen int
	k1, k2   []byte
	state    []byte
	buf      []byte
}

func doubleGF(block []byte) {
	var carry byte
	for i := len(block) - 1; i >= 0; i-- {
		next := block[i] >> 7
		block[i] = (block[i] << 1) | carry
		carry = next
	}
	if carry != 0 {
		rb := byte(0x87)
		if len(block) == 8 {
			rb = 0x1b
		}
		block[len(block)-1] ^= rb
	}
}

// NewOMAC schedules c with key for OMAC1/CMAC.
func NewOMAC(c registry.Cipher, key []byte, rounds int) (State, error) {
	if c == nil {
		return nil, primerr.New("omac.New", primerr.InvalidCipher, "nil cipher descriptor")
	}
	sk, err := c.Setup(key, rounds)
	if err != nil {
		return nil, err
	}
	blockLen := c.BlockLength()
	l := make([]byte, blockLen)
	sk.EncryptBlock(l, l)
	k1 := append([]byte(nil), l...)
	doubleGF(k1)
	k2 := append([]byte(nil), k1...)
	doubleGF(k2)
	return &omacState{
		sk: sk, blockLen: blockLen, k1: k1, k2: k2,
		state: make([]byte, blockLen), buf: make([]byte, 0, blockLen),
	}, nil
}

func (s *omacState) Process(data []byte) error {
	s.buf = append(s.buf, data...)
	for len(s.buf) > s.blockLen {
		xmem.XorBytes(s.state, s.buf[:s.blockLen])
		s.sk.EncryptBlock(s.state, s.state)
		s.buf = s.buf[s.blockLen:]
	}
	return nil
}

func (s *omacState) Done() ([]byte, error) {
	last := make([]byte, s.blockLen)
	if len(s.buf) == s.blockLen {
		copy(last, s.buf)
		xmem.XorBytes(last, s.k1)
	} else {
		copy(last, s.buf)
		last[len(s.buf)] = 0x80
		xmem.XorBytes(last, s.k2)
	}
	xmem.XorBytes(s.state, last)
	s.sk.EncryptBlock(s.state, s.state)
	tag := append([]byte(nil), s.state...)

	s.sk.Done()
	xmem.Zero(s.k1)
	xmem.Zero(s.k2)
	xmem.Zero(s.state)
	return tag, nil
}
