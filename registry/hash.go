// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"hash"

	"github.com/luxfi/primcrypt/primerr"
)

// Hash is a hash-function descriptor (spec §3 "Hash descriptor"). New
// returns a fresh streaming state; this module deliberately reuses the
// standard library's hash.Hash (Write/Sum/Reset/Size/BlockSize) as that
// streaming state instead of inventing an init/process/done trio, since
// hash.Hash already is exactly that contract and every hash package this
// module wraps (crypto/sha256, golang.org/x/crypto/blake2b, ...) already
// implements it.
type Hash interface {
	Name() string
	// OID is the dotted-decimal object identifier used by the DER codec's
	// AlgorithmIdentifier (e.g. "2.16.840.1.101.3.4.2.1" for SHA-256), or ""
	// if the hash has no assigned OID.
	OID() string
	Size() int
	BlockSize() int
	New() hash.Hash
	SelfTest() error
}

var hashes table[Hash]

// RegisterHash registers desc in the first empty slot, or returns the slot
// of an already-registered descriptor with the same name.
func RegisterHash(desc Hash) (int, error) {
	return hashes.register(&desc)
}

// UnregisterHash removes desc, matched by descriptor identity.
func UnregisterHash(desc Hash) error {
	for i, s := range hashes.slots {
		if s != nil && *s == desc {
			hashes.slots[i] = nil
			return nil
		}
	}
	return primerr.New("registry.UnregisterHash", primerr.ErrGeneric, "hash not registered")
}

// FindHash returns the slot index for name, or -1 if unregistered.
func FindHash(name string) int {
	return hashes.find(name)
}

// HashIsValid reports whether slot is populated.
func HashIsValid(slot int) bool {
	return hashes.isValid(slot)
}

// GetHash returns the descriptor at slot, or nil.
func GetHash(slot int) Hash {
	h := hashes.get(slot)
	if h == nil {
		return nil
	}
	return *h
}

// AllHashes returns every registered hash descriptor.
func AllHashes() []Hash {
	out := make([]Hash, 0, MaxSlots)
	for _, h := range hashes.all() {
		out = append(out, *h)
	}
	return out
}
