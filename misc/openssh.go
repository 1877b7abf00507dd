// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package misc

import (
	"github.com/luxfi/primcrypt/cipher"
	"github.com/luxfi/primcrypt/der"
	"github.com/luxfi/primcrypt/modes"
	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
)

// opensshCipher names the subset of openssh-key-v1 cipher identifiers
// this module unlocks, and whether the mode is CBC or CTR (OpenSSH's own
// cipher-table entries carry the same split).
type opensshCipher struct {
	cipher registry.Cipher
	keyLen int
	ivLen  int
	useCTR bool
}

var opensshCiphers = map[string]opensshCipher{
	"none":       {nil, 0, 0, false},
	"aes128-cbc": {cipher.AES, 16, 16, false},
	"aes192-cbc": {cipher.AES, 24, 16, false},
	"aes256-cbc": {cipher.AES, 32, 16, false},
	"aes128-ctr": {cipher.AES, 16, 16, true},
	"aes192-ctr": {cipher.AES, 24, 16, true},
	"aes256-ctr": {cipher.AES, 32, 16, true},
}

// parseBcryptKDFOptions reads the wire layout of an openssh-key-v1 "bcrypt" KDF's
// options string: a length-prefixed salt and a uint32 round count.
func parseBcryptKDFOptions(options []byte) (salt []byte, rounds uint32, err error) {
	salt, rest, err := der.SSHReadString(options)
	if err != nil {
		return nil, 0, err
	}
	if len(rest) < 4 {
		return nil, 0, primerr.New("misc.parseBcryptKDFOptions", primerr.InvalidPacket, "truncated round count")
	}
	rounds = uint32(rest[0])<<24 | uint32(rest[1])<<16 | uint32(rest[2])<<8 | uint32(rest[3])
	return salt, rounds, nil
}

// DecryptOpenSSHPrivateBlob removes an openssh-key-v1 container's
// encryption, if any, and validates the resulting check-int pair,
// returning the remaining per-key wire-encoded records for the matching
// pk/ package to decode (der.DecodeOpenSSHPrivateBlob's job once
// decryption, when needed, has already happened here).
func DecryptOpenSSHPrivateBlob(key *der.OpenSSHKey, passphrase []byte) ([]byte, error) {
	if key.CipherName == "none" {
		return der.DecodeOpenSSHPrivateBlob(key.PrivateBlob)
	}

	spec, ok := opensshCiphers[key.CipherName]
	if !ok || spec.cipher == nil {
		return nil, primerr.New("misc.DecryptOpenSSHPrivateBlob", primerr.InvalidArg, "unsupported openssh cipher %q", key.CipherName)
	}
	if key.KDFName != "bcrypt" {
		return nil, primerr.New("misc.DecryptOpenSSHPrivateBlob", primerr.InvalidArg, "unsupported openssh KDF %q", key.KDFName)
	}

	salt, rounds, err := parseBcryptKDFOptions(key.KDFOptions)
	if err != nil {
		return nil, err
	}
	material, err := BcryptPBKDF(passphrase, salt, int(rounds), spec.keyLen+spec.ivLen)
	if err != nil {
		return nil, err
	}
	cipherKey, iv := material[:spec.keyLen], material[spec.keyLen:]

	plain := make([]byte, len(key.PrivateBlob))
	if spec.useCTR {
		ctr, err := modes.NewCTR(spec.cipher, cipherKey, iv, 0, false)
		if err != nil {
			return nil, err
		}
		defer ctr.Done()
		if err := ctr.Decrypt(plain, key.PrivateBlob); err != nil {
			return nil, err
		}
	} else {
		cbc, err := modes.NewCBC(spec.cipher, cipherKey, iv, 0)
		if err != nil {
			return nil, err
		}
		defer cbc.Done()
		if err := cbc.Decrypt(plain, key.PrivateBlob); err != nil {
			return nil, err
		}
	}

	return der.DecodeOpenSSHPrivateBlob(plain)
}
