// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prng

import (
	"crypto/subtle"
	stdhash "hash"

	"github.com/luxfi/primcrypt/cipher"
	"github.com/luxfi/primcrypt/hash"
	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
)

const fortunaPools = 32

// fortunaState is Schneier and Ferguson's Fortuna generator, built over
// registry.Cipher (AES, keyed 256 bits) and registry.Hash (SHA-256) rather
// than hardcoding either, so it exercises the registry the way spec §2's
// "Fortuna" entry intends: AddEntropy always feeds pool 0, and every other
// pool i only contributes to a reseed once every 2^i calls, which is what
// gives Fortuna its resistance to an attacker who can inject a bounded
// amount of chosen entropy per reseed interval.
type fortunaState struct {
	c registry.Cipher
	h registry.Hash

	pool       [fortunaPools]stdhash.Hash
	poolLength [fortunaPools]int
	reseedCt   uint32

	key     []byte
	counter [16]byte
	ready   bool
}

func newFortunaState(c registry.Cipher, h registry.Hash) *fortunaState {
	s := &fortunaState{c: c, h: h}
	for i := range s.pool {
		s.pool[i] = h.New()
	}
	return s
}

func (s *fortunaState) Start() error {
	for i := range s.pool {
		s.pool[i].Reset()
		s.poolLength[i] = 0
	}
	s.reseedCt = 0
	s.key = nil
	s.counter = [16]byte{}
	s.ready = false
	return nil
}

// AddEntropy always feeds pool 0; callers that want to distribute entropy
// across all 32 pools (the full Fortuna accumulator behavior) should use
// AddEntropySource instead. Plain AddEntropy still reseeds correctly, just
// without Fortuna's compromise-recovery spreading.
func (s *fortunaState) AddEntropy(data []byte) error {
	return s.AddEntropySource(0, data)
}

// AddEntropySource feeds data into pool (source % fortunaPools) and, every
// time pool 0 is fed, reseeds the generator key (there is no minimum reseed
// interval) from every pool i for which 2^i divides the reseed counter
// (pool i contributes once every 2^i reseeds).
func (s *fortunaState) AddEntropySource(source int, data []byte) error {
	idx := source % fortunaPools
	s.pool[idx].Write(data)
	s.poolLength[idx] += len(data)
	if idx != 0 {
		return nil
	}
	if s.poolLength[0] == 0 {
		return nil
	}
	s.reseedCt++
	newKeyMaterial := s.h.New()
	if s.key != nil {
		newKeyMaterial.Write(s.key)
	}
	for i := 0; i < fortunaPools; i++ {
		if s.reseedCt%(1<<uint(i)) != 0 {
			break
		}
		newKeyMaterial.Write(s.pool[i].Sum(nil))
		s.pool[i].Reset()
		s.poolLength[i] = 0
	}
	s.key = newKeyMaterial.Sum(nil)
	if len(s.key) > s.c.MaxKeyLength() {
		s.key = s.key[:s.c.MaxKeyLength()]
	}
	s.ready = true
	return nil
}

func (s *fortunaState) Ready() error {
	if !s.ready {
		return primerr.New("fortuna.Ready", primerr.ErrorReadPRNG, "no reseed has occurred yet")
	}
	return nil
}

func (s *fortunaState) generateBlocks(n int) []byte {
	sk, err := s.c.Setup(s.key, 0)
	if err != nil {
		panic("fortuna: generator key rejected by cipher: " + err.Error())
	}
	defer sk.Done()

	blkSize := s.c.BlockLength()
	out := make([]byte, n*blkSize)
	for i := 0; i < n; i++ {
		sk.EncryptBlock(out[i*blkSize:(i+1)*blkSize], s.counter[:blkSize])
		incCounter(s.counter[:blkSize])
	}
	return out
}

func incCounter(c []byte) {
	for i := range c {
		c[i]++
		if c[i] != 0 {
			return
		}
	}
}

func (s *fortunaState) Read(buf []byte) (int, error) {
	if err := s.Ready(); err != nil {
		return 0, err
	}
	blkSize := s.c.BlockLength()
	need := (len(buf) + blkSize - 1) / blkSize
	out := s.generateBlocks(need)
	n := copy(buf, out)

	// Generate two fresh blocks to become the new key, so the key that
	// produced buf can never be recovered from later state.
	newKey := s.generateBlocks((s.c.MaxKeyLength() + blkSize - 1) / blkSize)
	s.key = newKey[:s.c.MaxKeyLength()]

	return n, nil
}

func (s *fortunaState) Done() {
	for i := range s.key {
		s.key[i] = 0
	}
	s.key = nil
	s.counter = [16]byte{}
	s.ready = false
}

func (s *fortunaState) Export() ([]byte, error) {
	if err := s.Ready(); err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(s.key)+16)
	out = append(out, s.key...)
	out = append(out, s.counter[:]...)
	return out, nil
}

func (s *fortunaState) Import(state []byte) error {
	if len(state) < 16 {
		return primerr.New("fortuna.Import", primerr.InvalidArg, "state too short")
	}
	keyLen := len(state) - 16
	s.key = append([]byte(nil), state[:keyLen]...)
	copy(s.counter[:], state[keyLen:])
	s.ready = true
	return nil
}

func (s *fortunaState) SelfTest() error {
	if err := s.Start(); err != nil {
		return err
	}
	if err := s.AddEntropy([]byte("fortuna self-test seed material")); err != nil {
		return err
	}
	a := make([]byte, 48)
	if _, err := s.Read(a); err != nil {
		return err
	}
	b := make([]byte, 48)
	if _, err := s.Read(b); err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(a, b) == 1 {
		return primerr.New("fortuna.SelfTest", primerr.FailTestVector, "successive reads were identical")
	}
	exported, err := s.Export()
	if err != nil {
		return err
	}
	clone := newFortunaState(s.c, s.h)
	if err := clone.Import(exported); err != nil {
		return err
	}
	c := make([]byte, 48)
	clone.Read(c)
	d := make([]byte, 48)
	s.Read(d)
	if !bytesEqual(c, d) {
		return primerr.New("fortuna.SelfTest", primerr.FailTestVector, "import did not reproduce generator state")
	}
	return nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type fortunaDescriptor struct{}

// Fortuna is the registry.PRNG descriptor for the Fortuna generator over
// AES-256 and SHA-256.
var Fortuna registry.PRNG = fortunaDescriptor{}

func (fortunaDescriptor) Name() string    { return "fortuna" }
func (fortunaDescriptor) ExportSize() int { return -1 }
func (fortunaDescriptor) New() registry.PRNGState {
	return newFortunaState(cipher.AES, hash.SHA256)
}
