// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cipher

import "github.com/luxfi/primcrypt/registry"

// All is every descriptor this package defines, in registration order.
var All = []registry.Cipher{
	AES, DES, TripleDES, Blowfish, Twofish, CAST5, RC2, TEA, XTEA, IDEA, SM4, Noekeon, Skipjack,
}

// RegisterAll registers every cipher descriptor in this package against the
// global registry, matching spec §4.1's register_all_ciphers convenience
// function. Re-registration is idempotent.
func RegisterAll() error {
	for _, c := range All {
		if _, err := registry.RegisterCipher(c); err != nil {
			return err
		}
	}
	return nil
}
