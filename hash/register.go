// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hash

import "github.com/luxfi/primcrypt/registry"

// All is every descriptor this package defines, in registration order.
var All = []registry.Hash{
	SHA1, SHA224, SHA256, SHA384, SHA512,
	SHA3_224, SHA3_256, SHA3_384, SHA3_512, SHAKE128, SHAKE256,
	BLAKE2b, BLAKE2s, BLAKE3,
	MD4, MD5, RIPEMD160,
	CHCAES,
}

// RegisterAll registers every hash descriptor in this package against the
// global registry. Re-registration is idempotent.
func RegisterAll() error {
	for _, h := range All {
		if _, err := registry.RegisterHash(h); err != nil {
			return err
		}
	}
	return nil
}
