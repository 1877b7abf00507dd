// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package modes

import (
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

// CFB is cipher feedback mode, a self-synchronizing stream mode: the
// running IV register is encrypted to produce keystream, and the
// ciphertext feeds back into the register (so CFB needs no block-length
// alignment, unlike CBC/ECB).
type CFB struct {
	sk       registry.SchedKey
	blockLen int
	iv       []byte
	pad      []byte
	padUsed  int
}

// NewCFB schedules c with key/rounds and copies iv as the initial feedback
// register.
func NewCFB(c registry.Cipher, key, iv []byte, rounds int) (*CFB, error) {
	if err := checkSetup("cfb.Start", c, iv); err != nil {
		return nil, err
	}
	sk, err := c.Setup(key, rounds)
	if err != nil {
		return nil, err
	}
	blockLen := c.BlockLength()
	m := &CFB{sk: sk, blockLen: blockLen, iv: append([]byte(nil), iv...), pad: make([]byte, blockLen)}
	m.sk.EncryptBlock(m.pad, m.iv)
	m.padUsed = 0
	return m, nil
}

func (m *CFB) Encrypt(dst, src []byte) error {
	if err := checkEqualLen("cfb.Encrypt", dst, src); err != nil {
		return err
	}
	for i := range src {
		if m.padUsed == m.blockLen {
			m.sk.EncryptBlock(m.pad, m.iv)
			m.padUsed = 0
		}
		c := src[i] ^ m.pad[m.padUsed]
		dst[i] = c
		m.iv[m.padUsed] = c
		m.padUsed++
	}
	return nil
}

func (m *CFB) Decrypt(dst, src []byte) error {
	if err := checkEqualLen("cfb.Decrypt", dst, src); err != nil {
		return err
	}
	for i := range src {
		if m.padUsed == m.blockLen {
			m.sk.EncryptBlock(m.pad, m.iv)
			m.padUsed = 0
		}
		c := src[i]
		dst[i] = c ^ m.pad[m.padUsed]
		m.iv[m.padUsed] = c
		m.padUsed++
	}
	return nil
}

// Done zeroizes the scheduled key and feedback state.
func (m *CFB) Done() {
	m.sk.Done()
	xmem.Zero(m.iv)
	xmem.Zero(m.pad)
}
