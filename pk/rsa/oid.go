// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rsa

import (
	"crypto/rand"
	"io"
	"strconv"
	"strings"

	"github.com/luxfi/primcrypt/primerr"
)

// parseOID splits a dotted-decimal OID string (as registry.Hash.OID
// returns) into its arc values for der.EncodeOID.
func parseOID(s string) ([]int, error) {
	parts := strings.Split(s, ".")
	arcs := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, primerr.New("rsa.parseOID", primerr.InvalidArg, "malformed OID %q", s)
		}
		arcs[i] = n
	}
	return arcs, nil
}

func defaultRandom() io.Reader { return rand.Reader }
