// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package misc

import (
	"bytes"
	"testing"

	"github.com/luxfi/primcrypt/cipher"
	"github.com/luxfi/primcrypt/der"
	"github.com/luxfi/primcrypt/hash"
	"github.com/luxfi/primcrypt/modes"
)

func TestDecryptDEKInfoRoundTrip(t *testing.T) {
	passphrase := []byte("hunter2")
	iv := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10}
	key := PBKDF1(hash.MD5, passphrase, iv[:8], 32)

	plaintext := []byte("this is a private key payload..")
	padded, err := PadPKCS7(plaintext, 16)
	if err != nil {
		t.Fatalf("PadPKCS7: %v", err)
	}

	cbc, err := modes.NewCBC(cipher.AES, key, iv, 0)
	if err != nil {
		t.Fatalf("NewCBC: %v", err)
	}
	ciphertext := make([]byte, len(padded))
	if err := cbc.Encrypt(ciphertext, padded); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	cbc.Done()

	info := &der.EncryptedPEMInfo{Encrypted: true, DEKAlgorithm: "AES-256-CBC", IV: iv}
	got, err := DecryptDEKInfo(info, passphrase, ciphertext)
	if err != nil {
		t.Fatalf("DecryptDEKInfo: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("DecryptDEKInfo = %q, want %q", got, plaintext)
	}
}

func TestDecryptDEKInfoRejectsUnknownAlgorithm(t *testing.T) {
	info := &der.EncryptedPEMInfo{Encrypted: true, DEKAlgorithm: "ROT13-CBC", IV: make([]byte, 16)}
	if _, err := DecryptDEKInfo(info, []byte("pass"), make([]byte, 16)); err == nil {
		t.Fatal("DecryptDEKInfo accepted an unsupported algorithm")
	}
}
