// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hash

import (
	"testing"

	"github.com/luxfi/primcrypt/registry"
)

func TestAllSelfTests(t *testing.T) {
	for _, h := range All {
		if err := h.SelfTest(); err != nil {
			t.Errorf("%s.SelfTest: %v", h.Name(), err)
		}
	}
}

func TestRegisterAll(t *testing.T) {
	if err := RegisterAll(); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}
	for _, h := range All {
		if slot := registry.FindHash(h.Name()); slot < 0 {
			t.Errorf("%s not found after RegisterAll", h.Name())
		}
	}
}

func TestStreamingMatchesOneShot(t *testing.T) {
	msg := []byte("The quick brown fox jumps over the lazy dog, 1234567890, and then some more text to span multiple blocks for every hash's block size so streaming is actually exercised across boundaries.")

	for _, h := range All {
		h := h
		t.Run(h.Name(), func(t *testing.T) {
			oneShot := h.New()
			oneShot.Write(msg)
			want := oneShot.Sum(nil)

			streamed := h.New()
			for i := 0; i < len(msg); i += 7 {
				end := i + 7
				if end > len(msg) {
					end = len(msg)
				}
				streamed.Write(msg[i:end])
			}
			got := streamed.Sum(nil)

			if len(got) != len(want) {
				t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
			}
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("streaming digest diverges from one-shot at byte %d", i)
				}
			}
		})
	}
}

func TestShakeVariableOutput(t *testing.T) {
	for _, outLen := range []int{16, 32, 64, 100} {
		if err := shake128Descriptor{}.SelfTestVariable(outLen); err != nil {
			t.Errorf("shake128 SelfTestVariable(%d): %v", outLen, err)
		}
		if err := shake256Descriptor{}.SelfTestVariable(outLen); err != nil {
			t.Errorf("shake256 SelfTestVariable(%d): %v", outLen, err)
		}
	}
}

func TestRunSelfTestsCoversShake(t *testing.T) {
	if err := RegisterAll(); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}
	results := registry.RunSelfTests()
	sawShake := 0
	for _, r := range results {
		if r.Kind == "hash" && (r.Name == "shake128/32" || r.Name == "shake128/64") {
			sawShake++
		}
	}
	if sawShake != 2 {
		t.Fatalf("expected RunSelfTests to exercise shake128 at 2 distinct lengths, saw %d", sawShake)
	}
	if !registry.AllPassed(results) {
		t.Fatal("expected all registered self-tests to pass")
	}
}
