// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package misc

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/luxfi/primcrypt/cipher"
	"github.com/luxfi/primcrypt/der"
	"github.com/luxfi/primcrypt/modes"
)

func TestDecryptOpenSSHPrivateBlobNoneCipher(t *testing.T) {
	checkInt := []byte{0xde, 0xad, 0xbe, 0xef}
	blob := append(append([]byte{}, checkInt...), checkInt...)
	blob = append(blob, []byte("private key fields go here")...)

	key := &der.OpenSSHKey{CipherName: "none", KDFName: "none", PrivateBlob: blob}
	rest, err := DecryptOpenSSHPrivateBlob(key, nil)
	if err != nil {
		t.Fatalf("DecryptOpenSSHPrivateBlob: %v", err)
	}
	if !bytes.Equal(rest, []byte("private key fields go here")) {
		t.Fatalf("unexpected rest: %q", rest)
	}
}

func TestDecryptOpenSSHPrivateBlobBcryptAESCTR(t *testing.T) {
	passphrase := []byte("correct horse battery staple")
	salt := []byte("0123456789abcdef")
	rounds := uint32(4)

	material, err := BcryptPBKDF(passphrase, salt, int(rounds), 32+16)
	if err != nil {
		t.Fatalf("BcryptPBKDF: %v", err)
	}
	cipherKey, iv := material[:32], material[32:]

	checkInt := []byte{0x13, 0x37, 0x13, 0x37}
	plain := append(append([]byte{}, checkInt...), checkInt...)
	plain = append(plain, []byte("ed25519 private key fields")...)
	for len(plain)%16 != 0 {
		plain = append(plain, byte(len(plain)%16+1))
	}

	ctr, err := modes.NewCTR(cipher.AES, cipherKey, iv, 0, false)
	if err != nil {
		t.Fatalf("NewCTR: %v", err)
	}
	ciphertext := make([]byte, len(plain))
	if err := ctr.Encrypt(ciphertext, plain); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	ctr.Done()

	options := der.SSHWriteString(salt)
	roundBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(roundBytes, rounds)
	options = append(options, roundBytes...)

	key := &der.OpenSSHKey{
		CipherName:  "aes256-ctr",
		KDFName:     "bcrypt",
		KDFOptions:  options,
		PrivateBlob: ciphertext,
	}
	rest, err := DecryptOpenSSHPrivateBlob(key, passphrase)
	if err != nil {
		t.Fatalf("DecryptOpenSSHPrivateBlob: %v", err)
	}
	if !bytes.Equal(rest, plain[8:]) {
		t.Fatalf("unexpected rest: %q", rest)
	}
}

func TestDecryptOpenSSHPrivateBlobRejectsUnknownCipher(t *testing.T) {
	key := &der.OpenSSHKey{CipherName: "rot13", KDFName: "bcrypt"}
	if _, err := DecryptOpenSSHPrivateBlob(key, []byte("pass")); err == nil {
		t.Fatal("DecryptOpenSSHPrivateBlob accepted an unsupported cipher")
	}
}
