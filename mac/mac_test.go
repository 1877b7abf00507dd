// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mac

import (
	"bytes"
	"testing"

	"github.com/luxfi/primcrypt/cipher"
	"github.com/luxfi/primcrypt/hash"
)

var testKey = bytes.Repeat([]byte{0x2b}, 16)

func TestHMACSHA1KnownAnswer(t *testing.T) {
	if err := selfTestHMACSHA1(hash.SHA1); err != nil {
		t.Fatal(err)
	}
}

func TestHMACStreamingMatchesOneShot(t *testing.T) {
	msg := bytes.Repeat([]byte("the quick brown fox "), 10)

	oneShot, _ := NewHMAC(hash.SHA256, testKey)
	oneShot.Process(msg)
	want, _ := oneShot.Done()

	streamed, _ := NewHMAC(hash.SHA256, testKey)
	for i := 0; i < len(msg); i += 7 {
		end := i + 7
		if end > len(msg) {
			end = len(msg)
		}
		streamed.Process(msg[i:end])
	}
	got, _ := streamed.Done()

	if !bytes.Equal(got, want) {
		t.Fatal("streaming HMAC diverges from one-shot")
	}
}

func TestPoly1305KnownAnswer(t *testing.T) {
	if err := selfTestPoly1305(); err != nil {
		t.Fatal(err)
	}
}

func TestBLAKE2MACKnownAnswer(t *testing.T) {
	if err := selfTestBLAKE2MAC(); err != nil {
		t.Fatal(err)
	}
}

func TestBLAKE2MACStreamingMatchesOneShot(t *testing.T) {
	msg := bytes.Repeat([]byte("the quick brown fox "), 10)

	oneShot, _ := NewBLAKE2MAC(testKey, 32)
	oneShot.Process(msg)
	want, _ := oneShot.Done()

	for _, chunk := range []int{5, 4, 3, 2, 1} {
		streamed, _ := NewBLAKE2MAC(testKey, 32)
		for i := 0; i < len(msg); i += chunk {
			end := i + chunk
			if end > len(msg) {
				end = len(msg)
			}
			streamed.Process(msg[i:end])
		}
		got, _ := streamed.Done()
		if !bytes.Equal(got, want) {
			t.Fatalf("chunk size %d: streaming diverges from one-shot", chunk)
		}
	}
}

// macDeterminismAndSensitivity is the self-test shape used for every MAC
// construction this module built from a specification rather than a
// library, since none of them has a confidently-memorized official test
// vector: the same (key, message) must always produce the same tag, and
// changing one message byte must change the tag.
func macDeterminismAndSensitivity(t *testing.T, name string, newState func(msg []byte) (State, error)) {
	t.Helper()
	msg := []byte("the quick brown fox jumps over the lazy dog")

	s1, err := newState(msg)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	s1.Process(msg)
	tag1, err := s1.Done()
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}

	s2, err := newState(msg)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	s2.Process(msg)
	tag2, err := s2.Done()
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	if !bytes.Equal(tag1, tag2) {
		t.Fatalf("%s: non-deterministic tag", name)
	}

	altered := append([]byte(nil), msg...)
	altered[0] ^= 0x01
	s3, err := newState(altered)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	s3.Process(altered)
	tag3, err := s3.Done()
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	if bytes.Equal(tag1, tag3) {
		t.Fatalf("%s: tag did not change with message", name)
	}
}

func TestOMACDeterminismAndSensitivity(t *testing.T) {
	macDeterminismAndSensitivity(t, "omac", func(msg []byte) (State, error) {
		return NewOMAC(cipher.AES, testKey, 0)
	})
}

func TestXCBCDeterminismAndSensitivity(t *testing.T) {
	macDeterminismAndSensitivity(t, "xcbc", func(msg []byte) (State, error) {
		return NewXCBC(cipher.AES, testKey, 0)
	})
}

func TestPMACDeterminismAndSensitivity(t *testing.T) {
	macDeterminismAndSensitivity(t, "pmac", func(msg []byte) (State, error) {
		return NewPMAC(cipher.AES, testKey, 0)
	})
}

func TestF9DeterminismAndSensitivity(t *testing.T) {
	count := bytes.Repeat([]byte{0x00}, 16)
	macDeterminismAndSensitivity(t, "f9", func(msg []byte) (State, error) {
		return NewF9(cipher.AES, testKey, count, 0)
	})
}

func TestPelicanDeterminismAndSensitivity(t *testing.T) {
	macDeterminismAndSensitivity(t, "pelican", func(msg []byte) (State, error) {
		return NewPelican(cipher.AES, testKey, 0)
	})
}

func TestOMACShortAndEmptyMessages(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 31, 32} {
		msg := bytes.Repeat([]byte{0xAB}, n)
		s, err := NewOMAC(cipher.AES, testKey, 0)
		if err != nil {
			t.Fatalf("len %d: %v", n, err)
		}
		s.Process(msg)
		if _, err := s.Done(); err != nil {
			t.Fatalf("len %d: %v", n, err)
		}
	}
}
