// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mpi

import (
	"math/big"
	"testing"
)

func TestBytesRoundTrip(t *testing.T) {
	x := New().SetBytes([]byte{0x01, 0x02, 0x03, 0xff})
	if got := x.Bytes(); len(got) != 4 || got[0] != 0x01 || got[3] != 0xff {
		t.Fatalf("Bytes round trip = %x", got)
	}
}

func TestFixedBytesPadsAndTruncates(t *testing.T) {
	x := New().SetInt64(0x1234)
	got := x.FixedBytes(8)
	want := []byte{0, 0, 0, 0, 0, 0, 0x12, 0x34}
	if len(got) != 8 {
		t.Fatalf("FixedBytes length = %d, want 8", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FixedBytes = %x, want %x", got, want)
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := New().SetInt64(7)
	b := New().SetInt64(3)
	if New().Add(a, b).CmpInt64(10) != 0 {
		t.Fatal("Add wrong")
	}
	if New().Sub(a, b).CmpInt64(4) != 0 {
		t.Fatal("Sub wrong")
	}
	if New().Mul(a, b).CmpInt64(21) != 0 {
		t.Fatal("Mul wrong")
	}
	if New().Mod(a, b).CmpInt64(1) != 0 {
		t.Fatal("Mod wrong")
	}
}

func TestModularArithmetic(t *testing.T) {
	m := New().SetInt64(13)
	a := New().SetInt64(11)
	b := New().SetInt64(7)
	if New().AddMod(a, b, m).CmpInt64((11 + 7) % 13) != 0 {
		t.Fatal("AddMod wrong")
	}
	if New().MulMod(a, b, m).CmpInt64((11 * 7) % 13) != 0 {
		t.Fatal("MulMod wrong")
	}
	e := New().SetInt64(5)
	want := new(big.Int).Exp(big.NewInt(11), big.NewInt(5), big.NewInt(13))
	if ToBig(New().ExpMod(a, e, m)).Cmp(want) != 0 {
		t.Fatal("ExpMod wrong")
	}
}

func TestModInverse(t *testing.T) {
	m := New().SetInt64(13)
	a := New().SetInt64(5)
	inv, ok := New().ModInverse(a, m)
	if !ok {
		t.Fatal("expected invertible")
	}
	if New().MulMod(a, inv, m).CmpInt64(1) != 0 {
		t.Fatalf("a * a^-1 mod m != 1, got %s", inv.String())
	}
}

func TestGCDAndLCM(t *testing.T) {
	a := New().SetInt64(12)
	b := New().SetInt64(18)
	if New().GCD(a, b).CmpInt64(6) != 0 {
		t.Fatal("GCD wrong")
	}
	if New().LCM(a, b).CmpInt64(36) != 0 {
		t.Fatal("LCM wrong")
	}
}

func TestBitLenAndParity(t *testing.T) {
	x := New().SetInt64(255)
	if x.BitLen() != 8 {
		t.Fatalf("BitLen = %d, want 8", x.BitLen())
	}
	if !x.IsOdd() {
		t.Fatal("255 should be odd")
	}
	if New().SetInt64(0).IsZero() == false {
		t.Fatal("0 should be zero")
	}
}

func TestTrailingZeroBits(t *testing.T) {
	x := New().SetInt64(40) // 0b101000
	if got := x.TrailingZeroBits(); got != 3 {
		t.Fatalf("TrailingZeroBits(40) = %d, want 3", got)
	}
}

func TestRandBelowBound(t *testing.T) {
	max := New().SetInt64(1000)
	for i := 0; i < 20; i++ {
		r, err := New().Rand(nil, max)
		if err != nil {
			t.Fatalf("Rand: %v", err)
		}
		if r.Sign() < 0 || r.Cmp(max) >= 0 {
			t.Fatalf("Rand produced out-of-range value %s", r.String())
		}
	}
}

func TestBlindMaskUnmaskRoundTrip(t *testing.T) {
	// A small RSA-shaped modulus: p=61, q=53, N=3233.
	n := New().SetInt64(3233)
	x := New().SetInt64(65)

	b, err := NewBlind(n)
	if err != nil {
		t.Fatalf("NewBlind: %v", err)
	}
	masked := b.Mask(x)
	unmasked := b.Unmask(masked)
	if unmasked.Cmp(x) != 0 {
		t.Fatalf("Mask/Unmask round trip = %s, want %s", unmasked.String(), x.String())
	}
}

func TestExpModMatchesBig(t *testing.T) {
	x := New().SetInt64(4)
	e := New().SetInt64(13)
	m := New().SetInt64(497)
	got := ExpMod(x, e, m)
	want := new(big.Int).Exp(big.NewInt(4), big.NewInt(13), big.NewInt(497))
	if ToBig(got).Cmp(want) != 0 {
		t.Fatalf("ExpMod = %s, want %s", got.String(), want.String())
	}
}

func TestFromBigToBig(t *testing.T) {
	orig := big.NewInt(123456789)
	z := FromBig(orig)
	if ToBig(z) != orig {
		t.Fatal("FromBig/ToBig should not copy")
	}
}
