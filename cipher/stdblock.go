// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cipher supplies the block-cipher descriptors registered against
// package registry (spec §4.1). Each descriptor is a thin, stateless record;
// Setup is the only entry point that allocates per-key state.
package cipher

import (
	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

// stdBlock implements registry.SchedKey over anything satisfying Go's
// standard cipher.Block contract (Encrypt/Decrypt/BlockSize), which is what
// crypto/aes, crypto/des, and every golang.org/x/crypto legacy block cipher
// package returns from their New functions.
type stdBlock struct {
	blk     stdCipherBlock
	keyCopy []byte
}

// stdCipherBlock mirrors crypto/cipher.Block without importing it under a
// name that would collide with this package.
type stdCipherBlock interface {
	BlockSize() int
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
}

func wrapBlock(blk stdCipherBlock, key []byte) registry.SchedKey {
	kc := make([]byte, len(key))
	copy(kc, key)
	return &stdBlock{blk: blk, keyCopy: kc}
}

func (s *stdBlock) EncryptBlock(dst, src []byte) { s.blk.Encrypt(dst, src) }
func (s *stdBlock) DecryptBlock(dst, src []byte) { s.blk.Decrypt(dst, src) }

func (s *stdBlock) Done() {
	xmem.Zero(s.keyCopy)
}

// checkKeyLength validates keylen against [min, max], returning
// primerr.InvalidKeysize on violation. Ciphers with a discrete set of
// accepted lengths (DES/3DES/AES) should check membership themselves first
// and fall through to this only for the bounds message.
func checkKeyLength(op string, keylen, min, max int) error {
	if keylen < min || keylen > max {
		return primerr.New(op, primerr.InvalidKeysize, "key length %d outside [%d, %d]", keylen, min, max)
	}
	return nil
}

// recommendRange rounds keylen down to the nearest value in sizes (sorted
// ascending), or returns sizes[0] if keylen is smaller than every entry.
func recommendRange(keylen int, sizes ...int) int {
	best := sizes[0]
	for _, s := range sizes {
		if s <= keylen {
			best = s
		}
	}
	return best
}

// ktVector is a hex known-answer test case shared by every descriptor's
// SelfTest.
type ktVector struct {
	key, pt, ct string
}
