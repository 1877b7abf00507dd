// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import "github.com/luxfi/primcrypt/primerr"

// SchedKey is a cipher's scheduled (expanded) key, returned by Cipher.Setup.
// Every cipher mode, MAC, and AEAD in this module is written once against
// this interface so it runs unchanged over any registered block cipher.
type SchedKey interface {
	// EncryptBlock enciphers exactly one block from src into dst. src and
	// dst may alias the same underlying array at offset 0.
	EncryptBlock(dst, src []byte)
	// DecryptBlock deciphers exactly one block from src into dst.
	DecryptBlock(dst, src []byte)
	// Done zeroizes the scheduled key material. Safe to call more than once.
	Done()
}

// Cipher is a block-cipher descriptor (spec §3 "Cipher descriptor"): an
// immutable record of a cipher's parameters plus its Setup entry point.
// Concrete ciphers live in package cipher; this interface is what every
// consumer (modes, MACs, AEAD) is written against.
type Cipher interface {
	Name() string
	ID() int
	MinKeyLength() int
	MaxKeyLength() int
	DefaultKeyLength() int
	BlockLength() int
	DefaultRounds() int
	// Setup schedules key (whose length must fall within
	// [MinKeyLength, MaxKeyLength]) for the given round count (0 selects
	// DefaultRounds). It returns InvalidKeysize or InvalidRounds on
	// out-of-domain arguments.
	Setup(key []byte, rounds int) (SchedKey, error)
	// RecommendedKeysize rounds keylen down to the nearest size the cipher
	// actually accepts, per spec §4.1's recommended_keysize contract.
	RecommendedKeysize(keylen int) int
	// SelfTest runs the cipher's built-in known-answer test.
	SelfTest() error
}

// Accelerated is implemented by ciphers that can provide a bulk-mode
// fast path (spec §4.2 "optional accelerators"). Modes probe for it with a
// type assertion before falling back to the generic per-block software
// loop.
type Accelerated interface {
	// AcceleratedModes returns the lowercase mode names (e.g. "cbc", "ctr",
	// "xts") this cipher has a bulk implementation for.
	AcceleratedModes() []string
}

var ciphers table[Cipher]

// RegisterCipher registers desc in the first empty slot, or returns the
// slot of an already-registered descriptor with the same name.
func RegisterCipher(desc Cipher) (int, error) {
	return ciphers.register(&desc)
}

// UnregisterCipher removes desc, matched by descriptor identity.
func UnregisterCipher(desc Cipher) error {
	// table.unregister matches by *T pointer identity; re-find the slot
	// holding this exact value first since callers pass interface values,
	// not the internal *Cipher the table stores.
	for i, s := range ciphers.slots {
		if s != nil && *s == desc {
			ciphers.slots[i] = nil
			return nil
		}
	}
	return primerr.New("registry.UnregisterCipher", primerr.ErrGeneric, "cipher not registered")
}

// FindCipher returns the slot index for name, or -1 if unregistered.
func FindCipher(name string) int {
	return ciphers.find(name)
}

// CipherIsValid reports whether slot is populated.
func CipherIsValid(slot int) bool {
	return ciphers.isValid(slot)
}

// GetCipher returns the descriptor at slot, or nil.
func GetCipher(slot int) Cipher {
	c := ciphers.get(slot)
	if c == nil {
		return nil
	}
	return *c
}

// AllCiphers returns every registered cipher descriptor.
func AllCiphers() []Cipher {
	out := make([]Cipher, 0, MaxSlots)
	for _, c := range ciphers.all() {
		out = append(out, *c)
	}
	return out
}
