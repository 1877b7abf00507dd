// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package registry is the primitive registry (spec §4.1): fixed-capacity
// tables of cipher, hash, and PRNG descriptors, looked up by name or by the
// stable slot index returned at registration time. It generalizes the
// teacher's sorted, duplicate-checked module table
// (modules.RegisterModule/GetPrecompileModule in the retrieved
// luxfi/precompile tree) from "one slot per EVM precompile address" to "one
// slot per named cryptographic descriptor" — register finds the first empty
// slot instead of inserting in address order, because descriptor slots carry
// no ordering contract, only name/id identity.
//
// Registration is a process-wide, caller-serialized operation (spec §5):
// concurrent Register/Unregister calls on the same table are not safe and
// must be serialized by the embedder, but once a slot is populated, lookup
// and dispatch through it are read-only and safe to share across goroutines.
package registry

import "github.com/luxfi/primcrypt/primerr"

// MaxSlots is the fixed capacity of every descriptor table in this package,
// matching the reference implementation's typical array size.
const MaxSlots = 32

// table is the generic slotted array shared by the cipher, hash, and PRNG
// registries. T is a descriptor type identified by Name().
type table[T named] struct {
	slots [MaxSlots]*T
}

type named interface {
	Name() string
}

// register finds the first empty slot and stores desc in it, or returns the
// existing slot if a descriptor with the same name is already registered
// (idempotent re-registration, matching register_all_ciphers/hashes/prngs's
// "convenience, re-registration is idempotent" contract).
func (t *table[T]) register(desc *T) (int, error) {
	name := (*desc).Name()
	for i, s := range t.slots {
		if s != nil && (*s).Name() == name {
			return i, nil
		}
	}
	for i, s := range t.slots {
		if s == nil {
			t.slots[i] = desc
			return i, nil
		}
	}
	return -1, primerr.New("registry.register", primerr.Mem, "table full at capacity %d", MaxSlots)
}

// unregister clears the slot holding desc, matched by pointer identity as
// spec §4.1 requires ("unregister matches by address identity of the
// descriptor").
func (t *table[T]) unregister(desc *T) error {
	for i, s := range t.slots {
		if s == desc {
			t.slots[i] = nil
			return nil
		}
	}
	return primerr.New("registry.unregister", primerr.ErrGeneric, "descriptor not registered")
}

// find returns the slot index for name, or -1 if not registered.
func (t *table[T]) find(name string) int {
	for i, s := range t.slots {
		if s != nil && (*s).Name() == name {
			return i
		}
	}
	return -1
}

// isValid reports whether slot is a populated index into the table.
func (t *table[T]) isValid(slot int) bool {
	return slot >= 0 && slot < MaxSlots && t.slots[slot] != nil
}

// get returns the descriptor at slot, or nil if the slot is empty or out of
// range.
func (t *table[T]) get(slot int) *T {
	if !t.isValid(slot) {
		return nil
	}
	return t.slots[slot]
}

// all returns every populated descriptor, in slot order.
func (t *table[T]) all() []*T {
	out := make([]*T, 0, MaxSlots)
	for _, s := range t.slots {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
