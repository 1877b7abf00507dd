// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519x

import (
	"crypto/ed25519"

	"github.com/luxfi/primcrypt/der"
	"github.com/luxfi/primcrypt/primerr"
)

// ParseOpenSSHPrivateKey decodes a single ed25519 record from an
// openssh-key-v1 private-key block, the per-algorithm field layout
// der.DecodeOpenSSHPrivateBlob leaves to the matching pk/ package once
// any encryption has already been removed (misc.DecryptOpenSSHPrivateBlob
// for an encrypted container, or der.DecodeOpenSSHPrivateBlob directly
// for CipherName "none"): a key-type string ("ssh-ed25519"), the 32-byte
// public key, the 64-byte expanded private key (seed||public), and a
// comment string, followed by an incrementing 1,2,3,... padding run this
// function does not need to validate since it stops reading once the
// fields it knows about are consumed.
func ParseOpenSSHPrivateKey(fields []byte) (*PrivateKey, string, error) {
	keyType, rest, err := der.SSHReadString(fields)
	if err != nil {
		return nil, "", err
	}
	if string(keyType) != "ssh-ed25519" {
		return nil, "", primerr.New("ed25519x.ParseOpenSSHPrivateKey", primerr.PKInvalidType, "key type is %q, not ssh-ed25519", keyType)
	}

	pubBytes, rest, err := der.SSHReadString(rest)
	if err != nil {
		return nil, "", err
	}
	if len(pubBytes) != ed25519.PublicKeySize {
		return nil, "", primerr.New("ed25519x.ParseOpenSSHPrivateKey", primerr.InvalidPacket, "public key must be %d bytes, got %d", ed25519.PublicKeySize, len(pubBytes))
	}

	privBytes, rest, err := der.SSHReadString(rest)
	if err != nil {
		return nil, "", err
	}
	if len(privBytes) != ed25519.PrivateKeySize {
		return nil, "", primerr.New("ed25519x.ParseOpenSSHPrivateKey", primerr.InvalidPacket, "private key must be %d bytes, got %d", ed25519.PrivateKeySize, len(privBytes))
	}

	comment, _, err := der.SSHReadString(rest)
	if err != nil {
		return nil, "", err
	}

	priv := append(ed25519.PrivateKey(nil), privBytes...)
	return &PrivateKey{PrivateKey: priv}, string(comment), nil
}

// EncodeOpenSSHPrivateKey renders a single ed25519 record in the layout
// ParseOpenSSHPrivateKey reads back.
func EncodeOpenSSHPrivateKey(priv *PrivateKey, comment string) []byte {
	out := der.SSHWriteString([]byte("ssh-ed25519"))
	out = append(out, der.SSHWriteString([]byte(priv.Public().PublicKey))...)
	out = append(out, der.SSHWriteString([]byte(priv.PrivateKey))...)
	out = append(out, der.SSHWriteString([]byte(comment))...)
	return out
}
