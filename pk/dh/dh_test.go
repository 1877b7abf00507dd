// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dh

import (
	"crypto/rand"
	"testing"
)

func testGroup(t *testing.T) Group {
	t.Helper()
	g, err := GenerateGroup(rand.Reader, "test-group", 128)
	if err != nil {
		t.Fatalf("GenerateGroup: %v", err)
	}
	return g
}

func TestSharedSecretAgreement(t *testing.T) {
	group := testGroup(t)
	alice, err := GenerateKey(rand.Reader, group)
	if err != nil {
		t.Fatalf("GenerateKey(alice): %v", err)
	}
	bob, err := GenerateKey(rand.Reader, group)
	if err != nil {
		t.Fatalf("GenerateKey(bob): %v", err)
	}

	aliceSecret, err := SharedSecret(alice, bob.Y)
	if err != nil {
		t.Fatalf("SharedSecret(alice): %v", err)
	}
	bobSecret, err := SharedSecret(bob, alice.Y)
	if err != nil {
		t.Fatalf("SharedSecret(bob): %v", err)
	}
	if string(aliceSecret) != string(bobSecret) {
		t.Fatalf("shared secrets disagree: %x vs %x", aliceSecret, bobSecret)
	}
}

func TestCheckPublicValueRejectsBoundaryValues(t *testing.T) {
	group := testGroup(t)
	if err := CheckPublicValue(group, group.P); err == nil {
		t.Fatal("expected y == p to be rejected")
	}
	if err := CheckPublicValue(group, one); err == nil {
		t.Fatal("expected y == 1 to be rejected")
	}
}
