// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package modes

import (
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

// CBC is cipher block chaining mode, grounded directly on cbc_encrypt.c/
// cbc_decrypt.c's block loop: each plaintext block is XORed with the
// running IV before encryption, and the ciphertext becomes the next IV.
type CBC struct {
	sk       registry.SchedKey
	blockLen int
	iv       []byte
}

// NewCBC schedules c with key/rounds and copies iv as the initial chaining
// value. iv must be exactly one block long.
func NewCBC(c registry.Cipher, key, iv []byte, rounds int) (*CBC, error) {
	if err := checkSetup("cbc.Start", c, iv); err != nil {
		return nil, err
	}
	sk, err := c.Setup(key, rounds)
	if err != nil {
		return nil, err
	}
	return &CBC{sk: sk, blockLen: c.BlockLength(), iv: append([]byte(nil), iv...)}, nil
}

func (m *CBC) Encrypt(dst, src []byte) error {
	if err := checkEqualLen("cbc.Encrypt", dst, src); err != nil {
		return err
	}
	if err := checkBlockMultiple("cbc.Encrypt", src, m.blockLen); err != nil {
		return err
	}
	buf := make([]byte, m.blockLen)
	for off := 0; off < len(src); off += m.blockLen {
		copy(buf, src[off:off+m.blockLen])
		xmem.XorBytes(buf, m.iv)
		m.sk.EncryptBlock(dst[off:off+m.blockLen], buf)
		copy(m.iv, dst[off:off+m.blockLen])
	}
	return nil
}

func (m *CBC) Decrypt(dst, src []byte) error {
	if err := checkEqualLen("cbc.Decrypt", dst, src); err != nil {
		return err
	}
	if err := checkBlockMultiple("cbc.Decrypt", src, m.blockLen); err != nil {
		return err
	}
	tmp := make([]byte, m.blockLen)
	nextIV := make([]byte, m.blockLen)
	for off := 0; off < len(src); off += m.blockLen {
		block := src[off : off+m.blockLen]
		m.sk.DecryptBlock(tmp, block)
		copy(nextIV, block)
		xmem.XorBytes(tmp, m.iv)
		copy(dst[off:off+m.blockLen], tmp)
		copy(m.iv, nextIV)
	}
	return nil
}

// Done zeroizes the scheduled key and chaining state.
func (m *CBC) Done() {
	m.sk.Done()
	xmem.Zero(m.iv)
}
