// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package misc

import (
	"testing"

	"github.com/luxfi/primcrypt/primerr"
)

func TestErrorString(t *testing.T) {
	if ErrorString(primerr.InvalidArg) != primerr.InvalidArg.String() {
		t.Fatal("ErrorString should just forward to Kind.String")
	}
}

func TestInfo(t *testing.T) {
	if Info().MPIBackend != "saferith" {
		t.Fatalf("Info().MPIBackend = %q, want saferith", Info().MPIBackend)
	}
}
