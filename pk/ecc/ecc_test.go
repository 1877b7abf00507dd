// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecc

import (
	"crypto/rand"
	"crypto/sha256"
	"testing"
)

var testCurves = []Curve{P224, P256, P384, P521, Secp256k1}

func TestSignVerifyRoundTripAllCurves(t *testing.T) {
	digest := sha256.Sum256([]byte("ecc message"))
	for _, curve := range testCurves {
		curve := curve
		t.Run(curve.Name, func(t *testing.T) {
			priv, err := GenerateKey(rand.Reader, curve)
			if err != nil {
				t.Fatalf("GenerateKey: %v", err)
			}
			r, s, err := Sign(rand.Reader, priv, digest[:])
			if err != nil {
				t.Fatalf("Sign: %v", err)
			}
			if err := Verify(priv.Public(), digest[:], r, s); err != nil {
				t.Fatalf("Verify: %v", err)
			}
		})
	}
}

func TestVerifyRejectsTamperedDigest(t *testing.T) {
	digest := sha256.Sum256([]byte("ecc message"))
	priv, err := GenerateKey(rand.Reader, P256)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	r, s, err := Sign(rand.Reader, priv, digest[:])
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	tampered := sha256.Sum256([]byte("different message"))
	if err := Verify(priv.Public(), tampered[:], r, s); err == nil {
		t.Fatal("Verify accepted a signature over the wrong digest")
	}
}

func TestByNameAndUnknown(t *testing.T) {
	for _, curve := range testCurves {
		got, err := ByName(curve.Name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", curve.Name, err)
		}
		if got.Name != curve.Name {
			t.Fatalf("ByName(%q) returned curve %q", curve.Name, got.Name)
		}
	}
	if _, err := ByName("P-999"); err == nil {
		t.Fatal("ByName accepted an unknown curve name")
	}
}

func TestSecp256k1GeneratorOnCurve(t *testing.T) {
	params := Secp256k1.Params()
	if !Secp256k1.IsOnCurve(params.Gx, params.Gy) {
		t.Fatal("secp256k1 generator does not satisfy the curve equation")
	}
}

func TestX962EncodeDecodeRoundTrip(t *testing.T) {
	digest := sha256.Sum256([]byte("x962 message"))
	priv, err := GenerateKey(rand.Reader, P256)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	r, s, err := Sign(rand.Reader, priv, digest[:])
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	encoded := EncodeX962(r, s)
	r2, s2, err := DecodeX962(encoded)
	if err != nil {
		t.Fatalf("DecodeX962: %v", err)
	}
	if r2.Cmp(r) != 0 || s2.Cmp(s) != 0 {
		t.Fatal("DecodeX962 did not recover the original (r, s)")
	}
}

func TestJWSEncodeDecodeRoundTrip(t *testing.T) {
	digest := sha256.Sum256([]byte("jws message"))
	priv, err := GenerateKey(rand.Reader, P256)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	r, s, err := Sign(rand.Reader, priv, digest[:])
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	encoded := EncodeJWS(P256, r, s)
	if len(encoded) != 2*byteSize(P256) {
		t.Fatalf("EncodeJWS produced %d bytes, want %d", len(encoded), 2*byteSize(P256))
	}
	r2, s2, err := DecodeJWS(P256, encoded)
	if err != nil {
		t.Fatalf("DecodeJWS: %v", err)
	}
	if r2.Cmp(r) != 0 || s2.Cmp(s) != 0 {
		t.Fatal("DecodeJWS did not recover the original (r, s)")
	}
}

func TestJWSDecodeRejectsWrongLength(t *testing.T) {
	if _, _, err := DecodeJWS(P256, make([]byte, 10)); err == nil {
		t.Fatal("DecodeJWS accepted a signature of the wrong length")
	}
}

func TestSSHEncodeDecodeRoundTrip(t *testing.T) {
	digest := sha256.Sum256([]byte("ssh message"))
	priv, err := GenerateKey(rand.Reader, P384)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	r, s, err := Sign(rand.Reader, priv, digest[:])
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	encoded := EncodeSSH(r, s)
	r2, s2, err := DecodeSSH(encoded)
	if err != nil {
		t.Fatalf("DecodeSSH: %v", err)
	}
	if r2.Cmp(r) != 0 || s2.Cmp(s) != 0 {
		t.Fatal("DecodeSSH did not recover the original (r, s)")
	}
}

func TestEthereumSignRecoverRoundTrip(t *testing.T) {
	digest := sha256.Sum256([]byte("ethereum message"))
	priv, err := GenerateKey(rand.Reader, Secp256k1)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	r, s, recID, err := SignEthereum(rand.Reader, priv, digest[:])
	if err != nil {
		t.Fatalf("SignEthereum: %v", err)
	}
	if err := VerifyEthereum(priv.Public(), digest[:], r, s); err != nil {
		t.Fatalf("VerifyEthereum: %v", err)
	}

	encoded, err := EncodeEthereum(r, s, recID)
	if err != nil {
		t.Fatalf("EncodeEthereum: %v", err)
	}
	if len(encoded) != 65 {
		t.Fatalf("EncodeEthereum produced %d bytes, want 65", len(encoded))
	}
	r2, s2, recID2, err := DecodeEthereum(encoded)
	if err != nil {
		t.Fatalf("DecodeEthereum: %v", err)
	}
	if r2.Cmp(r) != 0 || s2.Cmp(s) != 0 || recID2 != recID {
		t.Fatal("DecodeEthereum did not recover the original (r, s, recid)")
	}

	recovered, err := RecoverPublicKey(Secp256k1, digest[:], r, s, recID)
	if err != nil {
		t.Fatalf("RecoverPublicKey: %v", err)
	}
	want := priv.Public()
	if recovered.X.Cmp(want.X) != 0 || recovered.Y.Cmp(want.Y) != 0 {
		t.Fatal("RecoverPublicKey did not recover the signer's public key")
	}
}

func TestSignEthereumRejectsNonSecp256k1Curve(t *testing.T) {
	priv, err := GenerateKey(rand.Reader, P256)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	digest := sha256.Sum256([]byte("wrong curve"))
	if _, _, _, err := SignEthereum(rand.Reader, priv, digest[:]); err == nil {
		t.Fatal("SignEthereum accepted a non-secp256k1 key")
	}
}

func TestDecodeEthereumRejectsWrongLength(t *testing.T) {
	if _, _, _, err := DecodeEthereum(make([]byte, 64)); err == nil {
		t.Fatal("DecodeEthereum accepted a signature of the wrong length")
	}
}
