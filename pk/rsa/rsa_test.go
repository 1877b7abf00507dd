// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rsa

import (
	"crypto/rand"
	"crypto/sha256"
	"hash"
	"testing"

	"github.com/luxfi/primcrypt/mpi"
)

// fixedHash is a minimal registry.Hash stub over crypto/sha256, avoiding a
// dependency on the hash package's init-time registration for these tests.
type fixedHash struct{}

func (fixedHash) Name() string           { return "sha256" }
func (fixedHash) OID() string            { return "2.16.840.1.101.3.4.2.1" }
func (fixedHash) Size() int              { return sha256.Size }
func (fixedHash) BlockSize() int         { return sha256.BlockSize }
func (fixedHash) New() hash.Hash         { return sha256.New() }
func (fixedHash) SelfTest() error        { return nil }

func testKey(t *testing.T) *PrivateKey {
	t.Helper()
	priv, err := GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	return priv
}

func TestGenerateKeyInvariants(t *testing.T) {
	priv := testKey(t)
	if priv.N.BitLen() != 1024 {
		t.Fatalf("modulus bit length = %d, want 1024", priv.N.BitLen())
	}
	// e*d mod phi(N) == 1 is implicit in ModInverse succeeding; sanity
	// check the CRT identity p*q == N.
	if mpi.New().Mul(priv.P, priv.Q).Cmp(priv.N) != 0 {
		t.Fatal("p*q != N")
	}
}

func TestPrivateOpUndoesPublicOp(t *testing.T) {
	priv := testKey(t)
	m := mpi.New().SetInt64(424242)
	c := priv.publicOp(m)
	got, err := priv.privateOp(c)
	if err != nil {
		t.Fatalf("privateOp: %v", err)
	}
	if got.Cmp(m) != 0 {
		t.Fatalf("privateOp(publicOp(m)) = %s, want %s", got.String(), m.String())
	}
}

func TestPKCS1v15EncryptDecryptRoundTrip(t *testing.T) {
	priv := testKey(t)
	msg := []byte("the quick brown fox")
	ct, err := EncryptPKCS1v15(rand.Reader, &priv.PublicKey, msg)
	if err != nil {
		t.Fatalf("EncryptPKCS1v15: %v", err)
	}
	got, err := DecryptPKCS1v15(priv, ct)
	if err != nil {
		t.Fatalf("DecryptPKCS1v15: %v", err)
	}
	if string(got) != string(msg) {
		t.Fatalf("round trip = %q, want %q", got, msg)
	}
}

func TestPKCS1v15DecryptRejectsTamperedCiphertext(t *testing.T) {
	priv := testKey(t)
	ct, err := EncryptPKCS1v15(rand.Reader, &priv.PublicKey, []byte("hello"))
	if err != nil {
		t.Fatalf("EncryptPKCS1v15: %v", err)
	}
	ct[len(ct)-1] ^= 0xff
	if _, err := DecryptPKCS1v15(priv, ct); err == nil {
		t.Fatal("expected tampered ciphertext to be rejected")
	}
}

func TestPKCS1v15SignVerifyRoundTrip(t *testing.T) {
	priv := testKey(t)
	h := fixedHash{}
	digest := sha256.Sum256([]byte("message to sign"))
	sig, err := SignPKCS1v15(priv, h, digest[:])
	if err != nil {
		t.Fatalf("SignPKCS1v15: %v", err)
	}
	if err := VerifyPKCS1v15(&priv.PublicKey, h, digest[:], sig); err != nil {
		t.Fatalf("VerifyPKCS1v15: %v", err)
	}
	wrong := sha256.Sum256([]byte("a different message"))
	if err := VerifyPKCS1v15(&priv.PublicKey, h, wrong[:], sig); err == nil {
		t.Fatal("expected signature to fail against wrong digest")
	}
}

func TestOAEPEncryptDecryptRoundTrip(t *testing.T) {
	priv := testKey(t)
	h := fixedHash{}
	msg := []byte("oaep payload")
	label := []byte("context")
	ct, err := EncryptOAEP(rand.Reader, h, &priv.PublicKey, msg, label)
	if err != nil {
		t.Fatalf("EncryptOAEP: %v", err)
	}
	got, err := DecryptOAEP(priv, h, ct, label)
	if err != nil {
		t.Fatalf("DecryptOAEP: %v", err)
	}
	if string(got) != string(msg) {
		t.Fatalf("round trip = %q, want %q", got, msg)
	}
}

func TestOAEPDecryptRejectsWrongLabel(t *testing.T) {
	priv := testKey(t)
	h := fixedHash{}
	ct, err := EncryptOAEP(rand.Reader, h, &priv.PublicKey, []byte("secret"), []byte("label-a"))
	if err != nil {
		t.Fatalf("EncryptOAEP: %v", err)
	}
	if _, err := DecryptOAEP(priv, h, ct, []byte("label-b")); err == nil {
		t.Fatal("expected label mismatch to be rejected")
	}
}

func TestPSSSignVerifyRoundTrip(t *testing.T) {
	priv := testKey(t)
	h := fixedHash{}
	digest := sha256.Sum256([]byte("pss message"))
	sig, err := SignPSS(rand.Reader, priv, h, digest[:], 32)
	if err != nil {
		t.Fatalf("SignPSS: %v", err)
	}
	if err := VerifyPSS(&priv.PublicKey, h, digest[:], sig, 32); err != nil {
		t.Fatalf("VerifyPSS: %v", err)
	}
}

func TestPSSVerifyRejectsTamperedSignature(t *testing.T) {
	priv := testKey(t)
	h := fixedHash{}
	digest := sha256.Sum256([]byte("pss message"))
	sig, err := SignPSS(rand.Reader, priv, h, digest[:], 32)
	if err != nil {
		t.Fatalf("SignPSS: %v", err)
	}
	sig[0] ^= 0xff
	if err := VerifyPSS(&priv.PublicKey, h, digest[:], sig, 32); err == nil {
		t.Fatal("expected tampered signature to fail verification")
	}
}
