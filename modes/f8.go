// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package modes

import (
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

// F8 is 3GPP F8 mode (the UMTS confidentiality construction): the cipher
// key is masked with a salt before scheduling, the IV is encrypted once to
// seed a feedback register, and each subsequent block chains the previous
// register XORed with a running counter back through the same cipher. Like
// every block-chained stream mode in this package, Encrypt and Decrypt are
// the same keystream-XOR operation, so this mode's correctness does not
// depend on separately deriving an inverse transform.
type F8 struct {
	sk       registry.SchedKey
	blockLen int
	reg      []byte
	pad      []byte
	padUsed  int
	counter  uint64
}

// NewF8 masks key with salt (XORed in, salt shorter than key is zero-padded)
// before scheduling c, then encrypts iv once to seed the feedback register.
func NewF8(c registry.Cipher, key, salt, iv []byte, rounds int) (*F8, error) {
	if err := checkSetup("f8.Start", c, iv); err != nil {
		return nil, err
	}
	masked := append([]byte(nil), key...)
	for i := range masked {
		if i < len(salt) {
			masked[i] ^= salt[i]
		}
	}
	sk, err := c.Setup(masked, rounds)
	xmem.Zero(masked)
	if err != nil {
		return nil, err
	}
	blockLen := c.BlockLength()
	reg := make([]byte, blockLen)
	sk.EncryptBlock(reg, iv)
	return &F8{sk: sk, blockLen: blockLen, reg: reg, pad: make([]byte, blockLen), padUsed: blockLen}, nil
}

func (m *F8) nextPad() {
	xmem.StoreBE64(m.reg[m.blockLen-8:], xmem.LoadBE64(m.reg[m.blockLen-8:])^m.counter)
	m.sk.EncryptBlock(m.pad, m.reg)
	copy(m.reg, m.pad)
	m.counter++
	m.padUsed = 0
}

func (m *F8) crypt(dst, src []byte) {
	for i := range src {
		if m.padUsed == m.blockLen {
			m.nextPad()
		}
		dst[i] = src[i] ^ m.pad[m.padUsed]
		m.padUsed++
	}
}

// Encrypt and Decrypt are identical for F8.
func (m *F8) Encrypt(dst, src []byte) error {
	if err := checkEqualLen("f8.Encrypt", dst, src); err != nil {
		return err
	}
	m.crypt(dst, src)
	return nil
}

func (m *F8) Decrypt(dst, src []byte) error {
	if err := checkEqualLen("f8.Decrypt", dst, src); err != nil {
		return err
	}
	m.crypt(dst, src)
	return nil
}

// Done zeroizes the scheduled key and feedback state.
func (m *F8) Done() {
	m.sk.Done()
	xmem.Zero(m.reg)
	xmem.Zero(m.pad)
}
