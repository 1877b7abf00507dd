// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package misc implements the ambient helpers spec §6 groups under "misc":
// binary-to-text encodings, key-derivation functions, padding, checksums,
// and the legacy/OpenSSH encrypted-private-key unlock paths built on top
// of them.
package misc

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"

	"github.com/mr-tron/base58"

	"github.com/luxfi/primcrypt/primerr"
)

// EncodeBase16 / DecodeBase16 implement spec §6's base16 codec.
func EncodeBase16(data []byte) string { return hex.EncodeToString(data) }

func DecodeBase16(s string) ([]byte, error) {
	out, err := hex.DecodeString(s)
	if err != nil {
		return nil, primerr.New("misc.DecodeBase16", primerr.InvalidPacket, "%v", err)
	}
	return out, nil
}

// EncodeBase32 / DecodeBase32 use the standard (not hex) base32 alphabet
// with padding, per RFC 4648 §6.
func EncodeBase32(data []byte) string { return base32.StdEncoding.EncodeToString(data) }

func DecodeBase32(s string) ([]byte, error) {
	out, err := base32.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, primerr.New("misc.DecodeBase32", primerr.InvalidPacket, "%v", err)
	}
	return out, nil
}

// EncodeBase64 / DecodeBase64 use RFC 4648 §4's standard alphabet with
// padding.
func EncodeBase64(data []byte) string { return base64.StdEncoding.EncodeToString(data) }

func DecodeBase64(s string) ([]byte, error) {
	out, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, primerr.New("misc.DecodeBase64", primerr.InvalidPacket, "%v", err)
	}
	return out, nil
}

// EncodeBase64URL / DecodeBase64URL use RFC 4648 §5's URL-safe, unpadded
// alphabet (the form JOSE/JWS signature encodings use).
func EncodeBase64URL(data []byte) string { return base64.RawURLEncoding.EncodeToString(data) }

func DecodeBase64URL(s string) ([]byte, error) {
	out, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, primerr.New("misc.DecodeBase64URL", primerr.InvalidPacket, "%v", err)
	}
	return out, nil
}

// EncodeBase58 / DecodeBase58 implement the Bitcoin-alphabet base58 codec
// spec §6 names as a bonus encoding alongside base16/32/64.
func EncodeBase58(data []byte) string { return base58.Encode(data) }

func DecodeBase58(s string) ([]byte, error) {
	out, err := base58.Decode(s)
	if err != nil {
		return nil, primerr.New("misc.DecodeBase58", primerr.InvalidPacket, "%v", err)
	}
	return out, nil
}
