// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sshwire

import (
	"bytes"
	"testing"

	"github.com/luxfi/primcrypt/mpi"
)

func TestStringRoundTrip(t *testing.T) {
	enc := WriteString([]byte("ssh-ed25519"))
	got, rest, err := ReadString(enc)
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if len(rest) != 0 || string(got) != "ssh-ed25519" {
		t.Fatalf("round trip = %q, rest=%d", got, len(rest))
	}
}

func TestMPIntRoundTrip(t *testing.T) {
	vals := []int64{0, 1, 127, 128, 255, 256, 1 << 20}
	for _, v := range vals {
		enc := WriteMPInt(mpi.New().SetInt64(v))
		got, rest, err := ReadMPInt(enc)
		if err != nil {
			t.Fatalf("ReadMPInt(%d): %v", v, err)
		}
		if len(rest) != 0 {
			t.Fatalf("unexpected trailing bytes for %d", v)
		}
		if got.CmpInt64(v) != 0 {
			t.Fatalf("mpint round trip %d got %s", v, got.String())
		}
	}
}

func TestMPIntHighBitGetsZeroPad(t *testing.T) {
	// 0x80 alone would look negative without a leading zero byte.
	v := mpi.New().SetInt64(0x80)
	enc := WriteMPInt(v)
	if !bytes.Equal(enc, []byte{0, 0, 0, 2, 0x00, 0x80}) {
		t.Fatalf("WriteMPInt(0x80) = %x", enc)
	}
}

func TestUint32RoundTrip(t *testing.T) {
	enc := WriteUint32(42)
	got, rest, err := ReadUint32(enc)
	if err != nil {
		t.Fatalf("ReadUint32: %v", err)
	}
	if got != 42 || len(rest) != 0 {
		t.Fatalf("round trip = %d, rest=%d", got, len(rest))
	}
}
