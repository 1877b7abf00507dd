// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package x25519

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestSharedSecretAgreement(t *testing.T) {
	alicePriv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	bobPriv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	alicePub, err := alicePriv.Public()
	if err != nil {
		t.Fatalf("Public: %v", err)
	}
	bobPub, err := bobPriv.Public()
	if err != nil {
		t.Fatalf("Public: %v", err)
	}

	aliceShared, err := SharedSecret(alicePriv, bobPub)
	if err != nil {
		t.Fatalf("SharedSecret (alice): %v", err)
	}
	bobShared, err := SharedSecret(bobPriv, alicePub)
	if err != nil {
		t.Fatalf("SharedSecret (bob): %v", err)
	}
	if !bytes.Equal(aliceShared, bobShared) {
		t.Fatal("alice and bob computed different shared secrets")
	}
}

func TestNewPrivateKeyRejectsWrongLength(t *testing.T) {
	if _, err := NewPrivateKey(make([]byte, 16)); err == nil {
		t.Fatal("NewPrivateKey accepted a short scalar")
	}
}

func TestNewPublicKeyRejectsWrongLength(t *testing.T) {
	if _, err := NewPublicKey(make([]byte, 16)); err == nil {
		t.Fatal("NewPublicKey accepted a short point")
	}
}

func TestSharedSecretRejectsAllZeroPoint(t *testing.T) {
	priv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	zeroPub, err := NewPublicKey(make([]byte, KeySize))
	if err != nil {
		t.Fatalf("NewPublicKey: %v", err)
	}
	if _, err := SharedSecret(priv, zeroPub); err == nil {
		t.Fatal("SharedSecret accepted an all-zero (low-order) peer point")
	}
}
