// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cipher

import (
	"testing"

	"github.com/luxfi/primcrypt/registry"
)

func TestAllSelfTests(t *testing.T) {
	for _, c := range All {
		if err := c.SelfTest(); err != nil {
			t.Errorf("%s.SelfTest: %v", c.Name(), err)
		}
	}
}

func TestRegisterAll(t *testing.T) {
	if err := RegisterAll(); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}
	for _, c := range All {
		if slot := registry.FindCipher(c.Name()); slot < 0 {
			t.Errorf("%s not found after RegisterAll", c.Name())
		}
	}
}

func TestRoundTripAllCiphers(t *testing.T) {
	for _, c := range All {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			key := make([]byte, c.DefaultKeyLength())
			for i := range key {
				key[i] = byte(i + 1)
			}
			sk, err := c.Setup(key, 0)
			if err != nil {
				t.Fatalf("Setup: %v", err)
			}
			defer sk.Done()

			pt := make([]byte, c.BlockLength())
			for i := range pt {
				pt[i] = byte(0x5A + i)
			}
			ct := make([]byte, c.BlockLength())
			sk.EncryptBlock(ct, pt)
			back := make([]byte, c.BlockLength())
			sk.DecryptBlock(back, ct)
			for i := range back {
				if back[i] != pt[i] {
					t.Fatalf("round-trip mismatch at byte %d", i)
				}
			}
		})
	}
}

func TestSetupRejectsBadKeysize(t *testing.T) {
	if _, err := AES.Setup(make([]byte, 5), 0); err == nil {
		t.Fatal("expected error for undersized AES key")
	}
	if _, err := SM4.Setup(make([]byte, 8), 0); err == nil {
		t.Fatal("expected error for undersized SM4 key")
	}
}

func TestAESECBKnownAnswer(t *testing.T) {
	key := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F}
	pt := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	want := []byte{0x69, 0xC4, 0xE0, 0xD8, 0x6A, 0x7B, 0x04, 0x30, 0xD8, 0xCD, 0xB7, 0x80, 0x70, 0xB4, 0xC5, 0x5A}

	sk, err := AES.Setup(key, 0)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer sk.Done()

	got := make([]byte, 16)
	sk.EncryptBlock(got, pt)
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("AES ECB KAT mismatch at byte %d: got %02x want %02x", i, got[i], want[i])
		}
	}
}
