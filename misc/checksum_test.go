// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package misc

import "testing"

func TestAdler32KnownValue(t *testing.T) {
	if got := Adler32([]byte("Wikipedia")); got != 0x11E60398 {
		t.Fatalf("Adler32 = %#x, want 0x11e60398", got)
	}
}

func TestCRC32KnownValue(t *testing.T) {
	if got := CRC32([]byte("123456789")); got != 0xCBF43926 {
		t.Fatalf("CRC32 = %#x, want 0xcbf43926", got)
	}
}
