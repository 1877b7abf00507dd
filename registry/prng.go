// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import "github.com/luxfi/primcrypt/primerr"

// PRNGState is a single running instance of a PRNG (spec §3 "PRNG
// descriptor"). Read is rejected with ErrorReadPRNG unless Ready has
// succeeded since construction or since the last AddEntropy-triggered
// reseed; Export/Import must reproduce the subsequent output stream up to
// primitive-specific caveats (spec §8 "PRNG reseed isolation").
type PRNGState interface {
	Start() error
	AddEntropy(data []byte) error
	Ready() error
	Read(buf []byte) (int, error)
	Done()
	Export() ([]byte, error)
	Import(state []byte) error
	SelfTest() error
}

// PRNG is a PRNG descriptor: a name and a constructor for fresh state.
type PRNG interface {
	Name() string
	// ExportSize is the byte length Export/Import exchange, or -1 where that
	// length is not fixed; a PRNG reporting -1 may still export and import
	// (Fortuna and Yarrow do).
	ExportSize() int
	New() PRNGState
}

var prngs table[PRNG]

// RegisterPRNG registers desc in the first empty slot, or returns the slot
// of an already-registered descriptor with the same name.
func RegisterPRNG(desc PRNG) (int, error) {
	return prngs.register(&desc)
}

// UnregisterPRNG removes desc, matched by descriptor identity.
func UnregisterPRNG(desc PRNG) error {
	for i, s := range prngs.slots {
		if s != nil && *s == desc {
			prngs.slots[i] = nil
			return nil
		}
	}
	return primerr.New("registry.UnregisterPRNG", primerr.ErrGeneric, "prng not registered")
}

// FindPRNG returns the slot index for name, or -1 if unregistered.
func FindPRNG(name string) int {
	return prngs.find(name)
}

// PRNGIsValid reports whether slot is populated.
func PRNGIsValid(slot int) bool {
	return prngs.isValid(slot)
}

// GetPRNG returns the descriptor at slot, or nil.
func GetPRNG(slot int) PRNG {
	p := prngs.get(slot)
	if p == nil {
		return nil
	}
	return *p
}

// AllPRNGs returns every registered PRNG descriptor.
func AllPRNGs() []PRNG {
	out := make([]PRNG, 0, MaxSlots)
	for _, p := range prngs.all() {
		out = append(out, *p)
	}
	return out
}
