// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mac

import (
	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

// xcbcState is RFC 3566 XCBC-MAC: three subkeys K1 (the CBC-MAC key), K2,
// K3 are derived from a single master key by encrypting the constant
// blocks 0x01..01, 0x02..02, 0x03..03 under it, and the final block is
// XORed with K2 (whole-block message) or K3 (after 10-padding) before the
// last K1-keyed encryption, the same shape OMAC1 generalized away from a
// single derived key.
type xcbcState struct {
	sk1      registry.SchedKey
	blockLen int
	k2, k3   []byte
	state    []byte
	buf      []byte
}

// NewXCBC derives K1/K2/K3 from masterKey under c and schedules K1.
func NewXCBC(c registry.Cipher, masterKey []byte, rounds int) (State, error) {
	if c == nil {
		return nil, primerr.New("xcbc.New", primerr.InvalidCipher, "nil cipher descriptor")
	}
	sk0, err := c.Setup(masterKey, rounds)
	if err != nil {
		return nil, err
	}
	blockLen := c.BlockLength()
	k1 := make([]byte, blockLen)
	k2 := make([]byte, blockLen)
	k3 := make([]byte, blockLen)
	for i := range k1 {
		k1[i] = 0x01
	}
	for i := range k2 {
		k2[i] = 0x02
	}
	for i := range k3 {
		k3[i] = 0x03
	}
	sk0.EncryptBlock(k1, k1)
	sk0.EncryptBlock(k2, k2)
	sk0.EncryptBlock(k3, k3)
	sk0.Done()

	sk1, err := c.Setup(k1, rounds)
	xmem.Zero(k1)
	if err != nil {
		return nil, err
	}
	return &xcbcState{
		sk1: sk1, blockLen: blockLen, k2: k2, k3: k3,
		state: make([]byte, blockLen), buf: make([]byte, 0, blockLen),
	}, nil
}

func (s *xcbcState) Process(data []byte) error {
	s.buf = append(s.buf, data...)
	for len(s.buf) > s.blockLen {
		xmem.XorBytes(s.state, s.buf[:s.blockLen])
		s.sk1.EncryptBlock(s.state, s.state)
		s.buf = s.buf[s.blockLen:]
	}
	return nil
}

func (s *xcbcState) Done() ([]byte, error) {
	last := make([]byte, s.blockLen)
	if len(s.buf) == s.blockLen {
		copy(last, s.buf)
		xmem.XorBytes(last, s.k2)
	} else {
		copy(last, s.buf)
		last[len(s.buf)] = 0x80
		xmem.XorBytes(last, s.k3)
	}
	xmem.XorBytes(s.state, last)
	s.sk1.EncryptBlock(s.state, s.state)
	tag := append([]byte(nil), s.state...)

	s.sk1.Done()
	xmem.Zero(s.k2)
	xmem.Zero(s.k3)
	xmem.Zero(s.state)
	return tag, nil
}
