// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package misc

import (
	"strings"

	"github.com/luxfi/primcrypt/cipher"
	"github.com/luxfi/primcrypt/der"
	"github.com/luxfi/primcrypt/hash"
	"github.com/luxfi/primcrypt/modes"
	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
)

// dekInfoCipher names the subset of DEK-Info algorithm identifiers a
// classic OpenSSL encrypted PEM header actually carries, and the
// registry.Cipher plus key length each one implies.
type dekInfoCipher struct {
	cipher registry.Cipher
	keyLen int
}

var dekInfoCiphers = map[string]dekInfoCipher{
	"AES-128-CBC":  {cipher.AES, 16},
	"AES-192-CBC":  {cipher.AES, 24},
	"AES-256-CBC":  {cipher.AES, 32},
	"DES-CBC":      {cipher.DES, 8},
	"DES-EDE3-CBC": {cipher.TripleDES, 24},
	"BF-CBC":       {cipher.Blowfish, 16},
}

// DecryptDEKInfo decrypts content encrypted under an OpenSSL "Proc-Type:
// 4,ENCRYPTED" / "DEK-Info" PEM header, deriving the cipher key from
// passphrase and info.IV via OpenSSL's legacy PBKDF1-style
// EVP_BytesToKey single-MD5-hash scheme (the key-derivation half of
// der.EncryptedPEMInfo this module's der/ package only parses, not
// decrypts) and removing PKCS#7 padding from the result.
func DecryptDEKInfo(info *der.EncryptedPEMInfo, passphrase, content []byte) ([]byte, error) {
	if !info.Encrypted {
		return nil, primerr.New("misc.DecryptDEKInfo", primerr.InvalidArg, "header is not marked ENCRYPTED")
	}
	spec, ok := dekInfoCiphers[strings.ToUpper(info.DEKAlgorithm)]
	if !ok {
		return nil, primerr.New("misc.DecryptDEKInfo", primerr.InvalidArg, "unsupported DEK-Info algorithm %q", info.DEKAlgorithm)
	}
	if len(info.IV) < 8 {
		return nil, primerr.New("misc.DecryptDEKInfo", primerr.InvalidPacket, "DEK-Info IV too short")
	}

	key := PBKDF1(hash.MD5, passphrase, info.IV[:8], spec.keyLen)

	blockLen := spec.cipher.BlockLength()
	iv := info.IV
	if len(iv) > blockLen {
		iv = iv[:blockLen]
	}
	cbc, err := modes.NewCBC(spec.cipher, key, iv, 0)
	if err != nil {
		return nil, err
	}
	defer cbc.Done()

	if len(content)%blockLen != 0 {
		return nil, primerr.New("misc.DecryptDEKInfo", primerr.InvalidPacket, "ciphertext is not a multiple of the block size")
	}
	plain := make([]byte, len(content))
	if err := cbc.Decrypt(plain, content); err != nil {
		return nil, err
	}
	return UnpadPKCS7(plain, blockLen)
}
