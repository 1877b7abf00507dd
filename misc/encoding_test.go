// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package misc

import (
	"bytes"
	"testing"
)

func TestEncodingRoundTrips(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	if got, err := DecodeBase16(EncodeBase16(data)); err != nil || !bytes.Equal(got, data) {
		t.Fatalf("base16 round trip failed: %v", err)
	}
	if got, err := DecodeBase32(EncodeBase32(data)); err != nil || !bytes.Equal(got, data) {
		t.Fatalf("base32 round trip failed: %v", err)
	}
	if got, err := DecodeBase64(EncodeBase64(data)); err != nil || !bytes.Equal(got, data) {
		t.Fatalf("base64 round trip failed: %v", err)
	}
	if got, err := DecodeBase64URL(EncodeBase64URL(data)); err != nil || !bytes.Equal(got, data) {
		t.Fatalf("base64url round trip failed: %v", err)
	}
	if got, err := DecodeBase58(EncodeBase58(data)); err != nil || !bytes.Equal(got, data) {
		t.Fatalf("base58 round trip failed: %v", err)
	}
}

func TestDecodeBase16RejectsInvalid(t *testing.T) {
	if _, err := DecodeBase16("not-hex!!"); err == nil {
		t.Fatal("DecodeBase16 accepted invalid input")
	}
}
