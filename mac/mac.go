// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package mac implements the message authentication codes in spec §4.3:
// HMAC, OMAC/CMAC, PMAC, XCBC, F9, Pelican, Poly1305, and keyed BLAKE2.
// Every MAC shares the same init/process/done streaming contract (State
// below) regardless of whether it's built over a registry.Cipher or a
// registry.Hash.
package mac

// State is the uniform streaming contract every MAC in this package
// implements: feed data with Process, any number of times, then call Done
// exactly once to get the tag and zeroize key-bearing state. Calling
// Process after Done is undefined.
type State interface {
	Process(data []byte) error
	Done() ([]byte, error)
}
