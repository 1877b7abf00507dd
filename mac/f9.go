// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mac

import (
	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

// f9State is an f9-style CBC-MAC modelled on 3GPP TS 35.201's f9: the chain
// is seeded with E_K(count), each message block is XORed into the state and
// encrypted, and the final block (10-padded when partial) is XORed in and
// encrypted to give the tag. No length block is appended and no second key
// is used, so tags are not bit-compatible with UMTS f9.
type f9State struct {
	sk       registry.SchedKey
	blockLen int
	state    []byte
	buf      []byte
}

// NewF9 schedules c with key and folds count (treated as an opaque
// blockLen-sized initial-block value, e.g. COUNT||FRESH||DIRECTION in UMTS)
// into the chain before any message bytes are processed.
func NewF9(c registry.Cipher, key, count []byte, rounds int) (State, error) {
	if c == nil {
		return nil, primerr.New("f9.New", primerr.InvalidCipher, "nil cipher descriptor")
	}
	sk, err := c.Setup(key, rounds)
	if err != nil {
		return nil, err
	}
	blockLen := c.BlockLength()
	state := make([]byte, blockLen)
	copy(state, count)
	sk.EncryptBlock(state, state)
	return &f9State{sk: sk, blockLen: blockLen, state: state, buf: make([]byte, 0, blockLen)}, nil
}

func (s *f9State) Process(data []byte) error {
	s.buf = append(s.buf, data...)
	for len(s.buf) > s.blockLen {
		xmem.XorBytes(s.state, s.buf[:s.blockLen])
		s.sk.EncryptBlock(s.state, s.state)
		s.buf = s.buf[s.blockLen:]
	}
	return nil
}

func (s *f9State) Done() ([]byte, error) {
	last := make([]byte, s.blockLen)
	copy(last, s.buf)
	if len(s.buf) != s.blockLen {
		last[len(s.buf)] = 0x80
	}
	xmem.XorBytes(s.state, last)
	s.sk.EncryptBlock(s.state, s.state)
	tag := append([]byte(nil), s.state...)

	s.sk.Done()
	xmem.Zero(s.state)
	return tag, nil
}
