// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package modes

import (
	"github.com/luxfi/primcrypt/registry"
)

// ECB is electronic codebook mode: every block enciphered independently.
// Included for completeness and as the base every other mode in this
// package composes on top of; not recommended for anything beyond one block
// of random-looking data (spec §4.2's framing carries this mode with no
// endorsement attached).
type ECB struct {
	sk       registry.SchedKey
	blockLen int
}

// NewECB schedules c with key/rounds for ECB mode.
func NewECB(c registry.Cipher, key []byte, rounds int) (*ECB, error) {
	if err := checkSetup("ecb.Start", c, nil); err != nil {
		return nil, err
	}
	sk, err := c.Setup(key, rounds)
	if err != nil {
		return nil, err
	}
	return &ECB{sk: sk, blockLen: c.BlockLength()}, nil
}

func (m *ECB) Encrypt(dst, src []byte) error {
	if err := checkEqualLen("ecb.Encrypt", dst, src); err != nil {
		return err
	}
	if err := checkBlockMultiple("ecb.Encrypt", src, m.blockLen); err != nil {
		return err
	}
	for off := 0; off < len(src); off += m.blockLen {
		m.sk.EncryptBlock(dst[off:off+m.blockLen], src[off:off+m.blockLen])
	}
	return nil
}

func (m *ECB) Decrypt(dst, src []byte) error {
	if err := checkEqualLen("ecb.Decrypt", dst, src); err != nil {
		return err
	}
	if err := checkBlockMultiple("ecb.Decrypt", src, m.blockLen); err != nil {
		return err
	}
	for off := 0; off < len(src); off += m.blockLen {
		m.sk.DecryptBlock(dst[off:off+m.blockLen], src[off:off+m.blockLen])
	}
	return nil
}

// Done zeroizes the scheduled key.
func (m *ECB) Done() {
	m.sk.Done()
}
