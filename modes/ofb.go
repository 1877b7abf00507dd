// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package modes

import (
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

// OFB is output feedback mode: the keystream register is repeatedly
// self-encrypted (independent of the ciphertext), so it degrades to a pure
// stream cipher and is symmetric between Encrypt and Decrypt.
type OFB struct {
	sk       registry.SchedKey
	blockLen int
	iv       []byte
	padUsed  int
}

// NewOFB schedules c with key/rounds and copies iv as the initial register.
func NewOFB(c registry.Cipher, key, iv []byte, rounds int) (*OFB, error) {
	if err := checkSetup("ofb.Start", c, iv); err != nil {
		return nil, err
	}
	sk, err := c.Setup(key, rounds)
	if err != nil {
		return nil, err
	}
	blockLen := c.BlockLength()
	return &OFB{sk: sk, blockLen: blockLen, iv: append([]byte(nil), iv...), padUsed: blockLen}, nil
}

func (m *OFB) crypt(dst, src []byte) {
	for i := range src {
		if m.padUsed == m.blockLen {
			m.sk.EncryptBlock(m.iv, m.iv)
			m.padUsed = 0
		}
		dst[i] = src[i] ^ m.iv[m.padUsed]
		m.padUsed++
	}
}

// Encrypt and Decrypt are identical for OFB.
func (m *OFB) Encrypt(dst, src []byte) error {
	if err := checkEqualLen("ofb.Encrypt", dst, src); err != nil {
		return err
	}
	m.crypt(dst, src)
	return nil
}

func (m *OFB) Decrypt(dst, src []byte) error {
	if err := checkEqualLen("ofb.Decrypt", dst, src); err != nil {
		return err
	}
	m.crypt(dst, src)
	return nil
}

// Done zeroizes the scheduled key and register state.
func (m *OFB) Done() {
	m.sk.Done()
	xmem.Zero(m.iv)
}
