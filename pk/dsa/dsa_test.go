// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dsa

import (
	"crypto/rand"
	"crypto/sha256"
	"testing"
)

func testParams(t *testing.T) *Parameters {
	t.Helper()
	params, err := GenerateParameters(rand.Reader, 256, 64)
	if err != nil {
		t.Fatalf("GenerateParameters: %v", err)
	}
	return params
}

func TestSignVerifyRoundTrip(t *testing.T) {
	params := testParams(t)
	priv, err := GenerateKey(rand.Reader, params)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	digest := sha256.Sum256([]byte("dsa message"))
	r, s, err := Sign(rand.Reader, priv, digest[:])
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := Verify(&priv.PublicKey, digest[:], r, s); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyRejectsWrongDigest(t *testing.T) {
	params := testParams(t)
	priv, err := GenerateKey(rand.Reader, params)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	digest := sha256.Sum256([]byte("dsa message"))
	r, s, err := Sign(rand.Reader, priv, digest[:])
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	wrong := sha256.Sum256([]byte("different message"))
	if err := Verify(&priv.PublicKey, wrong[:], r, s); err == nil {
		t.Fatal("expected verification to fail against a different digest")
	}
}

func TestGeneratorHasOrderQ(t *testing.T) {
	params := testParams(t)
	// g^q mod p must be 1 for a correctly constructed order-q generator;
	// exercised indirectly via a signature round trip with a second,
	// independently generated key under the same parameters.
	priv2, err := GenerateKey(rand.Reader, params)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	digest := sha256.Sum256([]byte("second key message"))
	r, s, err := Sign(rand.Reader, priv2, digest[:])
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := Verify(&priv2.PublicKey, digest[:], r, s); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}
