// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mac

import (
	"encoding/hex"

	"golang.org/x/crypto/poly1305"

	"github.com/luxfi/primcrypt/primerr"
)

// poly1305State buffers the whole message before calling
// golang.org/x/crypto/poly1305.Sum: Poly1305 is a one-shot (key, message)
// -> tag primitive, not an incremental hash, so there is no streaming
// internal state to maintain beyond the buffer itself.
type poly1305State struct {
	key [32]byte
	buf []byte
}

// NewPoly1305 keys a Poly1305 MAC. key must be exactly 32 bytes (the
// one-time r/s key pair RFC 7539 §2.5 describes).
func NewPoly1305(key []byte) (State, error) {
	if len(key) != 32 {
		return nil, primerr.New("poly1305.New", primerr.InvalidKeysize, "poly1305 key must be 32 bytes")
	}
	s := &poly1305State{}
	copy(s.key[:], key)
	return s, nil
}

func (s *poly1305State) Process(data []byte) error {
	s.buf = append(s.buf, data...)
	return nil
}

func (s *poly1305State) Done() ([]byte, error) {
	var tag [16]byte
	poly1305.Sum(&tag, s.buf, &s.key)
	s.key = [32]byte{}
	s.buf = nil
	return tag[:], nil
}

// selfTestPoly1305 checks the RFC 7539 §2.5.2 test vector.
func selfTestPoly1305() error {
	key, _ := hex.DecodeString("85d6be7857556d337f4452fe42d506a80103808afb0db2fd4abff6af4149f51b")
	msg := []byte("Cryptographic Forum Research Group")
	s, err := NewPoly1305(key)
	if err != nil {
		return err
	}
	if err := s.Process(msg); err != nil {
		return err
	}
	got, err := s.Done()
	if err != nil {
		return err
	}
	want, _ := hex.DecodeString("a8061dc1305136c6c22b8baf0c0127a9")
	if len(got) != len(want) {
		return primerr.New("poly1305.SelfTest", primerr.FailTestVector, "tag length mismatch")
	}
	for i := range got {
		if got[i] != want[i] {
			return primerr.New("poly1305.SelfTest", primerr.FailTestVector, "RFC 7539 vector mismatch")
		}
	}
	return nil
}
