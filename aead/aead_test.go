// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package aead

import (
	"bytes"
	"testing"

	"github.com/luxfi/primcrypt/cipher"
)

var (
	testKey16 = bytes.Repeat([]byte{0x2b}, 16)
	testAAD   = []byte("header metadata")
	testMsg   = []byte("the quick brown fox jumps over the lazy dog, many times over")
)

func TestGCMRoundTrip(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x00}, 12)

	seal, err := NewGCMSeal(cipher.AES, testKey16, nonce, 16)
	if err != nil {
		t.Fatal(err)
	}
	if err := seal.AddAAD(testAAD); err != nil {
		t.Fatal(err)
	}
	ct := make([]byte, len(testMsg))
	if err := seal.Encrypt(ct, testMsg); err != nil {
		t.Fatal(err)
	}
	tag, err := seal.Done()
	if err != nil {
		t.Fatal(err)
	}

	open, err := NewGCMOpen(cipher.AES, testKey16, nonce, 16)
	if err != nil {
		t.Fatal(err)
	}
	if err := open.AddAAD(testAAD); err != nil {
		t.Fatal(err)
	}
	pt := make([]byte, len(ct))
	if err := open.Decrypt(pt, ct); err != nil {
		t.Fatal(err)
	}
	if err := open.Done(tag); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt, testMsg) {
		t.Fatal("GCM round trip mismatch")
	}
}

func TestGCMTamperDetection(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x01}, 12)
	seal, _ := NewGCMSeal(cipher.AES, testKey16, nonce, 16)
	seal.AddAAD(testAAD)
	ct := make([]byte, len(testMsg))
	seal.Encrypt(ct, testMsg)
	tag, _ := seal.Done()

	ct[0] ^= 0x01
	open, _ := NewGCMOpen(cipher.AES, testKey16, nonce, 16)
	open.AddAAD(testAAD)
	pt := make([]byte, len(ct))
	open.Decrypt(pt, ct)
	if err := open.Done(tag); err == nil {
		t.Fatal("tampered ciphertext did not fail authentication")
	}
}

func TestGCMNonStandardNonceLength(t *testing.T) {
	nonce := []byte("a nonce longer than twelve bytes")
	seal, err := NewGCMSeal(cipher.AES, testKey16, nonce, 16)
	if err != nil {
		t.Fatal(err)
	}
	ct := make([]byte, len(testMsg))
	seal.Encrypt(ct, testMsg)
	tag, _ := seal.Done()

	open, err := NewGCMOpen(cipher.AES, testKey16, nonce, 16)
	if err != nil {
		t.Fatal(err)
	}
	pt := make([]byte, len(ct))
	open.Decrypt(pt, ct)
	if err := open.Done(tag); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt, testMsg) {
		t.Fatal("GCM round trip mismatch with non-standard nonce length")
	}
}

func TestCCMRoundTrip(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x03}, 11)

	seal, err := NewCCMSeal(cipher.AES, testKey16, nonce, 16, len(testMsg), len(testAAD))
	if err != nil {
		t.Fatal(err)
	}
	if err := seal.AddAAD(testAAD); err != nil {
		t.Fatal(err)
	}
	ct := make([]byte, len(testMsg))
	if err := seal.Encrypt(ct, testMsg); err != nil {
		t.Fatal(err)
	}
	tag, err := seal.Done()
	if err != nil {
		t.Fatal(err)
	}

	open, err := NewCCMOpen(cipher.AES, testKey16, nonce, 16, len(testMsg), len(testAAD))
	if err != nil {
		t.Fatal(err)
	}
	if err := open.AddAAD(testAAD); err != nil {
		t.Fatal(err)
	}
	pt := make([]byte, len(ct))
	if err := open.Decrypt(pt, ct); err != nil {
		t.Fatal(err)
	}
	if err := open.Done(tag); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt, testMsg) {
		t.Fatal("CCM round trip mismatch")
	}
}

func TestCCMTamperDetection(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x04}, 11)
	seal, _ := NewCCMSeal(cipher.AES, testKey16, nonce, 16, len(testMsg), 0)
	ct := make([]byte, len(testMsg))
	seal.Encrypt(ct, testMsg)
	tag, _ := seal.Done()

	tag[0] ^= 0x01
	open, _ := NewCCMOpen(cipher.AES, testKey16, nonce, 16, len(testMsg), 0)
	pt := make([]byte, len(ct))
	open.Decrypt(pt, ct)
	if err := open.Done(tag); err == nil {
		t.Fatal("tampered tag did not fail authentication")
	}
}

func TestEAXRoundTrip(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x05}, 16)

	seal, err := NewEAXSeal(cipher.AES, testKey16, nonce, 16)
	if err != nil {
		t.Fatal(err)
	}
	if err := seal.AddAAD(testAAD); err != nil {
		t.Fatal(err)
	}
	ct := make([]byte, len(testMsg))
	if err := seal.Encrypt(ct, testMsg); err != nil {
		t.Fatal(err)
	}
	tag, err := seal.Done()
	if err != nil {
		t.Fatal(err)
	}

	open, err := NewEAXOpen(cipher.AES, testKey16, nonce, 16)
	if err != nil {
		t.Fatal(err)
	}
	if err := open.AddAAD(testAAD); err != nil {
		t.Fatal(err)
	}
	pt := make([]byte, len(ct))
	if err := open.Decrypt(pt, ct); err != nil {
		t.Fatal(err)
	}
	if err := open.Done(tag); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt, testMsg) {
		t.Fatal("EAX round trip mismatch")
	}
}

func TestEAXTamperDetection(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x06}, 16)
	seal, _ := NewEAXSeal(cipher.AES, testKey16, nonce, 16)
	seal.AddAAD(testAAD)
	ct := make([]byte, len(testMsg))
	seal.Encrypt(ct, testMsg)
	tag, _ := seal.Done()

	open, _ := NewEAXOpen(cipher.AES, testKey16, nonce, 16)
	open.AddAAD([]byte("different header"))
	pt := make([]byte, len(ct))
	open.Decrypt(pt, ct)
	if err := open.Done(tag); err == nil {
		t.Fatal("mismatched AAD did not fail authentication")
	}
}

func TestOCB3RoundTrip(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x07}, 12)

	seal, err := NewOCB3Seal(cipher.AES, testKey16, nonce, 16)
	if err != nil {
		t.Fatal(err)
	}
	if err := seal.AddAAD(testAAD); err != nil {
		t.Fatal(err)
	}
	ct := make([]byte, len(testMsg))
	if err := seal.Encrypt(ct, testMsg); err != nil {
		t.Fatal(err)
	}
	tag, err := seal.Done()
	if err != nil {
		t.Fatal(err)
	}

	open, err := NewOCB3Open(cipher.AES, testKey16, nonce, 16)
	if err != nil {
		t.Fatal(err)
	}
	if err := open.AddAAD(testAAD); err != nil {
		t.Fatal(err)
	}
	pt := make([]byte, len(ct))
	if err := open.Decrypt(pt, ct); err != nil {
		t.Fatal(err)
	}
	if err := open.Done(tag); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt, testMsg) {
		t.Fatal("OCB3 round trip mismatch")
	}
}

func TestOCB3RoundTripBlockAlignedMessage(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x08}, 12)
	msg := bytes.Repeat([]byte("0123456789abcdef"), 3)

	seal, _ := NewOCB3Seal(cipher.AES, testKey16, nonce, 16)
	ct := make([]byte, len(msg))
	seal.Encrypt(ct, msg)
	tag, _ := seal.Done()

	open, _ := NewOCB3Open(cipher.AES, testKey16, nonce, 16)
	pt := make([]byte, len(ct))
	open.Decrypt(pt, ct)
	if err := open.Done(tag); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt, msg) {
		t.Fatal("OCB3 round trip mismatch for a block-aligned message")
	}
}

func TestOCB3TamperDetection(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x09}, 12)
	seal, _ := NewOCB3Seal(cipher.AES, testKey16, nonce, 16)
	ct := make([]byte, len(testMsg))
	seal.Encrypt(ct, testMsg)
	tag, _ := seal.Done()

	ct[len(ct)-1] ^= 0x01
	open, _ := NewOCB3Open(cipher.AES, testKey16, nonce, 16)
	pt := make([]byte, len(ct))
	open.Decrypt(pt, ct)
	if err := open.Done(tag); err == nil {
		t.Fatal("tampered ciphertext did not fail authentication")
	}
}

func TestOCB1RoundTrip(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x0a}, 16)

	seal, err := NewOCB1Seal(cipher.AES, testKey16, nonce, 16)
	if err != nil {
		t.Fatal(err)
	}
	if err := seal.AddAAD(testAAD); err != nil {
		t.Fatal(err)
	}
	ct := make([]byte, len(testMsg))
	if err := seal.Encrypt(ct, testMsg); err != nil {
		t.Fatal(err)
	}
	tag, err := seal.Done()
	if err != nil {
		t.Fatal(err)
	}

	open, err := NewOCB1Open(cipher.AES, testKey16, nonce, 16)
	if err != nil {
		t.Fatal(err)
	}
	if err := open.AddAAD(testAAD); err != nil {
		t.Fatal(err)
	}
	pt := make([]byte, len(ct))
	if err := open.Decrypt(pt, ct); err != nil {
		t.Fatal(err)
	}
	if err := open.Done(tag); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt, testMsg) {
		t.Fatal("OCB1 round trip mismatch")
	}
}

func TestOCB1RoundTripBlockAlignedMessage(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x0b}, 16)
	msg := bytes.Repeat([]byte("0123456789abcdef"), 3)

	seal, _ := NewOCB1Seal(cipher.AES, testKey16, nonce, 16)
	ct := make([]byte, len(msg))
	seal.Encrypt(ct, msg)
	tag, _ := seal.Done()

	open, _ := NewOCB1Open(cipher.AES, testKey16, nonce, 16)
	pt := make([]byte, len(ct))
	open.Decrypt(pt, ct)
	if err := open.Done(tag); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt, msg) {
		t.Fatal("OCB1 round trip mismatch for a block-aligned message")
	}
}

func TestOCB1TamperDetection(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x0c}, 16)
	seal, _ := NewOCB1Seal(cipher.AES, testKey16, nonce, 16)
	ct := make([]byte, len(testMsg))
	seal.Encrypt(ct, testMsg)
	tag, _ := seal.Done()

	ct[len(ct)-1] ^= 0x01
	open, _ := NewOCB1Open(cipher.AES, testKey16, nonce, 16)
	pt := make([]byte, len(ct))
	open.Decrypt(pt, ct)
	if err := open.Done(tag); err == nil {
		t.Fatal("tampered ciphertext did not fail authentication")
	}
}

func TestOCB1RejectsWrongNonceLength(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x0d}, 12)
	if _, err := NewOCB1Seal(cipher.AES, testKey16, nonce, 16); err == nil {
		t.Fatal("NewOCB1Seal accepted a non-block-length nonce")
	}
}

func TestChaCha20Poly1305RoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x2b}, 32)
	nonce := bytes.Repeat([]byte{0x00}, 12)

	seal, err := NewChaCha20Poly1305Seal(key, nonce)
	if err != nil {
		t.Fatal(err)
	}
	if err := seal.AddAAD(testAAD); err != nil {
		t.Fatal(err)
	}
	ct := make([]byte, len(testMsg))
	if err := seal.Encrypt(ct, testMsg); err != nil {
		t.Fatal(err)
	}
	tag, err := seal.Done()
	if err != nil {
		t.Fatal(err)
	}

	open, err := NewChaCha20Poly1305Open(key, nonce)
	if err != nil {
		t.Fatal(err)
	}
	if err := open.AddAAD(testAAD); err != nil {
		t.Fatal(err)
	}
	pt := make([]byte, len(ct))
	if err := open.Decrypt(pt, ct); err != nil {
		t.Fatal(err)
	}
	if err := open.Done(tag); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt, testMsg) {
		t.Fatal("ChaCha20-Poly1305 round trip mismatch")
	}
}

func TestChaCha20Poly1305XNonce(t *testing.T) {
	key := bytes.Repeat([]byte{0x2b}, 32)
	nonce := bytes.Repeat([]byte{0x00}, 24)

	seal, err := NewChaCha20Poly1305Seal(key, nonce)
	if err != nil {
		t.Fatal(err)
	}
	ct := make([]byte, len(testMsg))
	seal.Encrypt(ct, testMsg)
	tag, _ := seal.Done()

	open, err := NewChaCha20Poly1305Open(key, nonce)
	if err != nil {
		t.Fatal(err)
	}
	pt := make([]byte, len(ct))
	open.Decrypt(pt, ct)
	if err := open.Done(tag); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt, testMsg) {
		t.Fatal("XChaCha20-Poly1305 round trip mismatch")
	}
}

func TestChaCha20Poly1305TamperDetection(t *testing.T) {
	key := bytes.Repeat([]byte{0x2b}, 32)
	nonce := bytes.Repeat([]byte{0x01}, 12)
	seal, _ := NewChaCha20Poly1305Seal(key, nonce)
	ct := make([]byte, len(testMsg))
	seal.Encrypt(ct, testMsg)
	tag, _ := seal.Done()

	tag[0] ^= 0x01
	open, _ := NewChaCha20Poly1305Open(key, nonce)
	pt := make([]byte, len(ct))
	open.Decrypt(pt, ct)
	if err := open.Done(tag); err == nil {
		t.Fatal("tampered tag did not fail authentication")
	}
}

// TestStreamingEncryptMatchesOneShot exercises GCM with the message split
// across several short Encrypt calls, confirming the accumulated keystream
// and GHASH bookkeeping produce the same ciphertext and tag as one call.
func TestStreamingEncryptMatchesOneShot(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x0a}, 12)

	oneShot, _ := NewGCMSeal(cipher.AES, testKey16, nonce, 16)
	oneShot.AddAAD(testAAD)
	wantCT := make([]byte, len(testMsg))
	oneShot.Encrypt(wantCT, testMsg)
	wantTag, _ := oneShot.Done()

	streamed, _ := NewGCMSeal(cipher.AES, testKey16, nonce, 16)
	streamed.AddAAD(testAAD)
	gotCT := make([]byte, len(testMsg))
	for i := 0; i < len(testMsg); i += 7 {
		end := i + 7
		if end > len(testMsg) {
			end = len(testMsg)
		}
		streamed.Encrypt(gotCT[i:end], testMsg[i:end])
	}
	gotTag, _ := streamed.Done()

	if !bytes.Equal(gotCT, wantCT) {
		t.Fatal("streaming GCM ciphertext diverges from one-shot")
	}
	if !bytes.Equal(gotTag, wantTag) {
		t.Fatal("streaming GCM tag diverges from one-shot")
	}
}
