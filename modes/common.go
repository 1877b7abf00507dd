// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package modes implements the block-cipher chaining modes (spec §4.2): ECB,
// CBC, CFB, OFB, CTR, LRW, F8, and XTS. Every mode is written once against
// registry.Cipher/registry.SchedKey and runs unchanged over any registered
// cipher descriptor, the same "write it once against the interface" shape
// the registry package is designed around.
package modes

import (
	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
)

// checkSetup validates a mode Start's arguments in the fixed order the
// reference implementation's *_start.c files use: invalid_cipher before
// invalid_arg before invalid_keysize. c.Setup itself surfaces
// InvalidKeysize/InvalidRounds, so callers run this check first and then
// call c.Setup.
func checkSetup(op string, c registry.Cipher, iv []byte) error {
	if c == nil {
		return primerr.New(op, primerr.InvalidCipher, "nil cipher descriptor")
	}
	if iv != nil && len(iv) != c.BlockLength() {
		return primerr.New(op, primerr.InvalidArg, "iv length %d does not match block length %d", len(iv), c.BlockLength())
	}
	return nil
}

func checkBlockMultiple(op string, data []byte, blockLen int) error {
	if len(data)%blockLen != 0 {
		return primerr.New(op, primerr.InvalidArg, "length %d is not a multiple of the block length %d", len(data), blockLen)
	}
	return nil
}

func checkEqualLen(op string, dst, src []byte) error {
	if len(dst) != len(src) {
		return primerr.New(op, primerr.InvalidArg, "dst length %d does not match src length %d", len(dst), len(src))
	}
	return nil
}
