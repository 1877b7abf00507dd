// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519x

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"
	"testing"

	"github.com/luxfi/primcrypt/der"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	priv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	message := []byte("ed25519 message")
	sig := Sign(priv, message)
	if err := Verify(priv.Public(), message, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	priv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	sig := Sign(priv, []byte("original"))
	if err := Verify(priv.Public(), []byte("tampered"), sig); err == nil {
		t.Fatal("Verify accepted a signature over a different message")
	}
}

func TestNewKeyFromSeedDeterministic(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}
	priv1, err := NewKeyFromSeed(seed)
	if err != nil {
		t.Fatalf("NewKeyFromSeed: %v", err)
	}
	priv2, err := NewKeyFromSeed(seed)
	if err != nil {
		t.Fatalf("NewKeyFromSeed: %v", err)
	}
	if !priv1.Public().Equal(priv2.Public()) {
		t.Fatal("same seed produced different public keys")
	}
	message := []byte("deterministic")
	sig1 := Sign(priv1, message)
	sig2 := Sign(priv2, message)
	if string(sig1) != string(sig2) {
		t.Fatal("Ed25519 signing is supposed to be deterministic")
	}
}

func TestNewKeyFromSeedRejectsWrongLength(t *testing.T) {
	if _, err := NewKeyFromSeed(make([]byte, 16)); err == nil {
		t.Fatal("NewKeyFromSeed accepted a short seed")
	}
}

func TestSignPhVerifyPhRoundTrip(t *testing.T) {
	priv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	digest := sha512.Sum512([]byte("prehashed message"))
	context := []byte("test context")
	sig, err := SignPh(priv, digest[:], context)
	if err != nil {
		t.Fatalf("SignPh: %v", err)
	}
	if err := VerifyPh(priv.Public(), digest[:], context, sig); err != nil {
		t.Fatalf("VerifyPh: %v", err)
	}
}

func TestOpenSSHPrivateKeyRoundTrip(t *testing.T) {
	priv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	encoded := EncodeOpenSSHPrivateKey(priv, "test@example.com")
	got, comment, err := ParseOpenSSHPrivateKey(encoded)
	if err != nil {
		t.Fatalf("ParseOpenSSHPrivateKey: %v", err)
	}
	if comment != "test@example.com" {
		t.Fatalf("comment = %q, want test@example.com", comment)
	}
	if !got.Public().Equal(priv.Public()) {
		t.Fatal("ParseOpenSSHPrivateKey did not recover the original key")
	}
}

func TestParseOpenSSHPrivateKeyRejectsWrongKeyType(t *testing.T) {
	fields := der.SSHWriteString([]byte("ssh-rsa"))
	if _, _, err := ParseOpenSSHPrivateKey(fields); err == nil {
		t.Fatal("ParseOpenSSHPrivateKey accepted a non-ed25519 key type")
	}
}

func TestVerifyPhRejectsWrongContext(t *testing.T) {
	priv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	digest := sha512.Sum512([]byte("prehashed message"))
	sig, err := SignPh(priv, digest[:], []byte("context a"))
	if err != nil {
		t.Fatalf("SignPh: %v", err)
	}
	if err := VerifyPh(priv.Public(), digest[:], []byte("context b"), sig); err == nil {
		t.Fatal("VerifyPh accepted a signature under a different context string")
	}
}
