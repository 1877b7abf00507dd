// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package modes

import (
	"bytes"
	"testing"

	"github.com/luxfi/primcrypt/cipher"
)

var testKey16 = bytes.Repeat([]byte{0x2b}, 16)
var testIV16 = bytes.Repeat([]byte{0x00}, 16)
var testMsg = bytes.Repeat([]byte("0123456789abcdef"), 4)

func TestECBRoundTrip(t *testing.T) {
	m, err := NewECB(cipher.AES, testKey16, 0)
	if err != nil {
		t.Fatalf("NewECB: %v", err)
	}
	defer m.Done()
	ct := make([]byte, len(testMsg))
	if err := m.Encrypt(ct, testMsg); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	pt := make([]byte, len(testMsg))
	if err := m.Decrypt(pt, ct); err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(pt, testMsg) {
		t.Fatal("ECB round trip did not reproduce plaintext")
	}
}

func TestCBCRoundTrip(t *testing.T) {
	m, err := NewCBC(cipher.AES, testKey16, testIV16, 0)
	if err != nil {
		t.Fatalf("NewCBC: %v", err)
	}
	defer m.Done()
	ct := make([]byte, len(testMsg))
	if err := m.Encrypt(ct, testMsg); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	m2, err := NewCBC(cipher.AES, testKey16, testIV16, 0)
	if err != nil {
		t.Fatalf("NewCBC (decrypt side): %v", err)
	}
	defer m2.Done()
	pt := make([]byte, len(testMsg))
	if err := m2.Decrypt(pt, ct); err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(pt, testMsg) {
		t.Fatal("CBC round trip did not reproduce plaintext")
	}
}

func TestCBCRejectsBadIVLength(t *testing.T) {
	if _, err := NewCBC(cipher.AES, testKey16, []byte{0x00}, 0); err == nil {
		t.Fatal("expected an error for a short IV")
	}
}

func streamModeRoundTrip(t *testing.T, name string,
	newMode func() (interface {
		Encrypt(dst, src []byte) error
		Decrypt(dst, src []byte) error
		Done()
	}, error)) {
	t.Helper()
	enc, err := newMode()
	if err != nil {
		t.Fatalf("%s: new (encrypt side): %v", name, err)
	}
	defer enc.Done()
	ct := make([]byte, len(testMsg))
	if err := enc.Encrypt(ct, testMsg); err != nil {
		t.Fatalf("%s: Encrypt: %v", name, err)
	}

	dec, err := newMode()
	if err != nil {
		t.Fatalf("%s: new (decrypt side): %v", name, err)
	}
	defer dec.Done()
	pt := make([]byte, len(testMsg))
	if err := dec.Decrypt(pt, ct); err != nil {
		t.Fatalf("%s: Decrypt: %v", name, err)
	}
	if !bytes.Equal(pt, testMsg) {
		t.Fatalf("%s: round trip did not reproduce plaintext", name)
	}
}

func TestCFBRoundTrip(t *testing.T) {
	streamModeRoundTrip(t, "cfb", func() (interface {
		Encrypt(dst, src []byte) error
		Decrypt(dst, src []byte) error
		Done()
	}, error) {
		return NewCFB(cipher.AES, testKey16, testIV16, 0)
	})
}

func TestOFBRoundTrip(t *testing.T) {
	streamModeRoundTrip(t, "ofb", func() (interface {
		Encrypt(dst, src []byte) error
		Decrypt(dst, src []byte) error
		Done()
	}, error) {
		return NewOFB(cipher.AES, testKey16, testIV16, 0)
	})
}

func TestCTRRoundTrip(t *testing.T) {
	for _, le := range []bool{false, true} {
		streamModeRoundTrip(t, "ctr", func() (interface {
			Encrypt(dst, src []byte) error
			Decrypt(dst, src []byte) error
			Done()
		}, error) {
			return NewCTR(cipher.AES, testKey16, testIV16, 0, le)
		})
	}
}

func TestF8RoundTrip(t *testing.T) {
	salt := bytes.Repeat([]byte{0x11}, 16)
	streamModeRoundTrip(t, "f8", func() (interface {
		Encrypt(dst, src []byte) error
		Decrypt(dst, src []byte) error
		Done()
	}, error) {
		return NewF8(cipher.AES, testKey16, salt, testIV16, 0)
	})
}

func TestLRWRoundTrip(t *testing.T) {
	tweakKey := bytes.Repeat([]byte{0x33}, 16)
	initial := make([]byte, 16)
	m, err := NewLRW(cipher.AES, testKey16, tweakKey, initial, 0)
	if err != nil {
		t.Fatalf("NewLRW: %v", err)
	}
	defer m.Done()
	ct := make([]byte, len(testMsg))
	if err := m.Encrypt(ct, testMsg); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	m2, err := NewLRW(cipher.AES, testKey16, tweakKey, initial, 0)
	if err != nil {
		t.Fatalf("NewLRW (decrypt side): %v", err)
	}
	defer m2.Done()
	pt := make([]byte, len(testMsg))
	if err := m2.Decrypt(pt, ct); err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(pt, testMsg) {
		t.Fatal("LRW round trip did not reproduce plaintext")
	}
}

func TestXTSRoundTrip(t *testing.T) {
	key2 := bytes.Repeat([]byte{0x44}, 16)
	sector := make([]byte, 16)
	sector[0] = 7

	m, err := NewXTS(cipher.AES, testKey16, key2, 0)
	if err != nil {
		t.Fatalf("NewXTS: %v", err)
	}
	defer m.Done()
	ct := make([]byte, len(testMsg))
	if err := m.Encrypt(ct, testMsg, sector); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	m2, err := NewXTS(cipher.AES, testKey16, key2, 0)
	if err != nil {
		t.Fatalf("NewXTS (decrypt side): %v", err)
	}
	defer m2.Done()
	pt := make([]byte, len(testMsg))
	if err := m2.Decrypt(pt, ct, sector); err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(pt, testMsg) {
		t.Fatal("XTS round trip did not reproduce plaintext")
	}
}
