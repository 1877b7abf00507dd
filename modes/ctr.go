// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package modes

import (
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

// CTR is counter mode: the keystream is the encryption of a monotonically
// incrementing counter block, so it is symmetric between Encrypt and
// Decrypt and, unlike CFB/OFB, randomly seekable by construction.
type CTR struct {
	sk       registry.SchedKey
	blockLen int
	ctr      []byte
	pad      []byte
	padUsed  int
	littleEndian bool
}

// NewCTR schedules c with key/rounds and copies iv as the initial counter
// block. littleEndian selects little- vs big-endian counter increment (spec
// §4.2 carries both, matching ltc_ctr_mode's CTR_COUNTER_LITTLE_ENDIAN flag).
func NewCTR(c registry.Cipher, key, iv []byte, rounds int, littleEndian bool) (*CTR, error) {
	if err := checkSetup("ctr.Start", c, iv); err != nil {
		return nil, err
	}
	sk, err := c.Setup(key, rounds)
	if err != nil {
		return nil, err
	}
	blockLen := c.BlockLength()
	m := &CTR{sk: sk, blockLen: blockLen, ctr: append([]byte(nil), iv...), pad: make([]byte, blockLen), littleEndian: littleEndian}
	m.sk.EncryptBlock(m.pad, m.ctr)
	m.padUsed = 0
	return m, nil
}

func (m *CTR) incr() {
	if m.littleEndian {
		xmem.IncCounterLE(m.ctr, m.blockLen)
	} else {
		xmem.IncCounterBE(m.ctr, m.blockLen)
	}
}

func (m *CTR) crypt(dst, src []byte) {
	for i := range src {
		if m.padUsed == m.blockLen {
			m.incr()
			m.sk.EncryptBlock(m.pad, m.ctr)
			m.padUsed = 0
		}
		dst[i] = src[i] ^ m.pad[m.padUsed]
		m.padUsed++
	}
}

// Encrypt and Decrypt are identical for CTR.
func (m *CTR) Encrypt(dst, src []byte) error {
	if err := checkEqualLen("ctr.Encrypt", dst, src); err != nil {
		return err
	}
	m.crypt(dst, src)
	return nil
}

func (m *CTR) Decrypt(dst, src []byte) error {
	if err := checkEqualLen("ctr.Decrypt", dst, src); err != nil {
		return err
	}
	m.crypt(dst, src)
	return nil
}

// Done zeroizes the scheduled key and counter state.
func (m *CTR) Done() {
	m.sk.Done()
	xmem.Zero(m.ctr)
	xmem.Zero(m.pad)
}
