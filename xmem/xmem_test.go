// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package xmem

import "testing"

func TestEndianRoundTrip(t *testing.T) {
	buf := make([]byte, 8)

	StoreBE32(buf, 0xDEADBEEF)
	if got := LoadBE32(buf); got != 0xDEADBEEF {
		t.Fatalf("BE32 round trip: got %x", got)
	}

	StoreLE32(buf, 0xDEADBEEF)
	if got := LoadLE32(buf); got != 0xDEADBEEF {
		t.Fatalf("LE32 round trip: got %x", got)
	}

	StoreBE64(buf, 0x0102030405060708)
	if got := LoadBE64(buf); got != 0x0102030405060708 {
		t.Fatalf("BE64 round trip: got %x", got)
	}

	StoreLE64(buf, 0x0102030405060708)
	if got := LoadLE64(buf); got != 0x0102030405060708 {
		t.Fatalf("LE64 round trip: got %x", got)
	}
}

func TestRotations(t *testing.T) {
	if RotL32(1, 1) != 2 {
		t.Fatal("RotL32(1,1) != 2")
	}
	if RotR32(2, 1) != 1 {
		t.Fatal("RotR32(2,1) != 1")
	}
	if RotL32(RotR32(0x12345678, 7), 7) != 0x12345678 {
		t.Fatal("RotL32/RotR32 are not inverses")
	}
	if RotL64(RotR64(0x0123456789ABCDEF, 13), 13) != 0x0123456789ABCDEF {
		t.Fatal("RotL64/RotR64 are not inverses")
	}
}

func TestIncCounterBE(t *testing.T) {
	block := make([]byte, 16)
	block[15] = 0xFF
	IncCounterBE(block, 16)
	if block[14] != 1 || block[15] != 0 {
		t.Fatalf("carry did not propagate: %x", block)
	}
}

func TestIncCounterLE(t *testing.T) {
	block := make([]byte, 16)
	block[0] = 0xFF
	IncCounterLE(block, 16)
	if block[0] != 0 || block[1] != 1 {
		t.Fatalf("carry did not propagate: %x", block)
	}
}

func TestConstantTimeCompare(t *testing.T) {
	a := []byte("identical-bytes-here")
	b := []byte("identical-bytes-here")
	if !ConstantTimeCompare(a, b) {
		t.Fatal("expected equal")
	}
	c := []byte("identical-BYTES-here")
	if ConstantTimeCompare(a, c) {
		t.Fatal("expected unequal")
	}
	if ConstantTimeCompare(a, a[:len(a)-1]) {
		t.Fatal("expected length mismatch to be unequal")
	}
}

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Zero(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not zeroed: %x", i, v)
		}
	}
}

func TestXorBytes(t *testing.T) {
	dst := []byte{0x0F, 0x0F, 0x0F}
	XorBytes(dst, []byte{0xFF, 0x00})
	if dst[0] != 0xF0 || dst[1] != 0x0F || dst[2] != 0x0F {
		t.Fatalf("unexpected xor result: %x", dst)
	}
}
