// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prng

import "github.com/luxfi/primcrypt/registry"

// All is every descriptor this package defines, in registration order.
var All = []registry.PRNG{
	Fortuna, Yarrow, ChaCha20, Salsa20, RC4, System,
}

// RegisterAll registers every PRNG descriptor in this package against the
// global registry. Re-registration is idempotent.
func RegisterAll() error {
	for _, p := range All {
		if _, err := registry.RegisterPRNG(p); err != nil {
			return err
		}
	}
	return nil
}
