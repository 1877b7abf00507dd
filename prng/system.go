// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prng

import (
	"crypto/rand"
	"io"

	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
)

// systemState adapts the platform CSPRNG (crypto/rand) to the
// registry.PRNGState contract, for callers that want "the best available
// randomness" behind the same interface every other descriptor in this
// package uses rather than reaching for crypto/rand directly. AddEntropy is
// accepted but discarded: the OS generator mixes its own entropy and has no
// notion of caller-supplied seed material.
type systemState struct {
	reader io.Reader
	ready  bool
}

func (s *systemState) Start() error {
	if s.reader == nil {
		s.reader = rand.Reader
	}
	s.ready = true
	return nil
}

func (s *systemState) AddEntropy(data []byte) error {
	return nil
}

func (s *systemState) Ready() error {
	if !s.ready {
		return primerr.New("prng.system.Ready", primerr.ErrorReadPRNG, "Start has not been called")
	}
	return nil
}

func (s *systemState) Read(buf []byte) (int, error) {
	if err := s.Ready(); err != nil {
		return 0, err
	}
	return io.ReadFull(s.reader, buf)
}

func (s *systemState) Done() {
	s.ready = false
}

func (s *systemState) Export() ([]byte, error) {
	return nil, primerr.New("prng.system.Export", primerr.InvalidArg, "the system generator has no exportable state")
}

func (s *systemState) Import(state []byte) error {
	return primerr.New("prng.system.Import", primerr.InvalidArg, "the system generator has no importable state")
}

func (s *systemState) SelfTest() error {
	if err := s.Start(); err != nil {
		return err
	}
	a := make([]byte, 32)
	if _, err := s.Read(a); err != nil {
		return err
	}
	b := make([]byte, 32)
	if _, err := s.Read(b); err != nil {
		return err
	}
	if bytesEqual(a, b) {
		return primerr.New("prng.system.SelfTest", primerr.FailTestVector, "two reads from the system generator were identical")
	}
	return nil
}

type systemDescriptor struct{}

// System is the registry.PRNG descriptor that passes straight through to
// the operating system's CSPRNG via crypto/rand.
var System registry.PRNG = systemDescriptor{}

func (systemDescriptor) Name() string              { return "sprng" }
func (systemDescriptor) ExportSize() int           { return -1 }
func (systemDescriptor) New() registry.PRNGState   { return &systemState{} }
