// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mac

import (
	stdhmac "crypto/hmac"
	"encoding/hex"
	stdhash "hash"

	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
)

// hmacState wraps the standard library's crypto/hmac, keyed with a
// registry.Hash's constructor: the standard library's HMAC implementation
// is already the RFC 2104 reference construction, so there is nothing this
// module would gain from reimplementing the inner/outer-pad XOR by hand.
type hmacState struct {
	h stdhash.Hash
}

// NewHMAC keys an HMAC over hash h.
func NewHMAC(h registry.Hash, key []byte) (State, error) {
	if h == nil {
		return nil, primerr.New("hmac.New", primerr.InvalidHash, "nil hash descriptor")
	}
	return &hmacState{h: stdhmac.New(h.New, key)}, nil
}

func (s *hmacState) Process(data []byte) error {
	s.h.Write(data)
	return nil
}

func (s *hmacState) Done() ([]byte, error) {
	return s.h.Sum(nil), nil
}

// selfTestHMACSHA1 checks spec §8 scenario's HMAC-SHA1 RFC 2202 TC1 vector:
// key = 20 bytes of 0x0b, data = "Hi There".
func selfTestHMACSHA1(h registry.Hash) error {
	key := make([]byte, 20)
	for i := range key {
		key[i] = 0x0b
	}
	s, err := NewHMAC(h, key)
	if err != nil {
		return err
	}
	if err := s.Process([]byte("Hi There")); err != nil {
		return err
	}
	got, err := s.Done()
	if err != nil {
		return err
	}
	want, _ := hex.DecodeString("b617318655057264e28bc0b6fb378c8ef146be00")
	if len(got) != len(want) {
		return primerr.New("hmac.SelfTest", primerr.FailTestVector, "tag length mismatch")
	}
	for i := range got {
		if got[i] != want[i] {
			return primerr.New("hmac.SelfTest", primerr.FailTestVector, "RFC 2202 TC1 mismatch")
		}
	}
	return nil
}
