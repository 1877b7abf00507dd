// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prng

import (
	stdhash "hash"

	"github.com/luxfi/primcrypt/cipher"
	"github.com/luxfi/primcrypt/hash"
	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
)

// yarrowState is Kelsey, Schneier, and Ferguson's Yarrow-160-shaped
// generator, simplified to the two pools (fast and slow) that give Yarrow
// its defining property: the fast pool reseeds the generator on every
// AddEntropy call once it has accumulated enough estimated entropy, while
// the slow pool only reseeds once two independent sources have both
// contributed to it, making a single compromised entropy source unable to
// force a reseed on its own. Built over registry.Cipher (3DES, matching
// Yarrow's original design choice of a 3-key block cipher generator) and
// registry.Hash (SHA-256, standing in for Yarrow's original SHA-1).
type yarrowState struct {
	c registry.Cipher
	h registry.Hash

	fastPool   stdhash.Hash
	slowPool   stdhash.Hash
	fastLen    int
	slowLen    int
	slowEver   [2]bool

	key     []byte
	counter []byte
	ready   bool
}

const yarrowFastThreshold = 100 // bytes of raw entropy before a fast reseed

func newYarrowState(c registry.Cipher, h registry.Hash) *yarrowState {
	return &yarrowState{
		c:        c,
		h:        h,
		fastPool: h.New(),
		slowPool: h.New(),
	}
}

func (s *yarrowState) Start() error {
	s.fastPool.Reset()
	s.slowPool.Reset()
	s.fastLen = 0
	s.slowLen = 0
	s.slowEver = [2]bool{}
	s.key = nil
	s.counter = make([]byte, s.c.BlockLength())
	s.ready = false
	return nil
}

// AddEntropy feeds the fast pool (source 0) and reseeds once the fast pool
// has accumulated yarrowFastThreshold bytes. Use AddEntropySource with odd
// sources to feed the slow pool for the two-source slow reseed behavior.
func (s *yarrowState) AddEntropy(data []byte) error {
	return s.AddEntropySource(0, data)
}

// AddEntropySource feeds data into the fast pool when source is even, or the
// slow pool when source is odd. Odd sources are tagged by (source/2)%2, so
// sources 1 and 3 carry different tags; the slow pool reseeds only once both
// tags have been seen and it holds at least yarrowFastThreshold bytes.
func (s *yarrowState) AddEntropySource(source int, data []byte) error {
	if source%2 == 0 {
		s.fastPool.Write(data)
		s.fastLen += len(data)
		if s.fastLen >= yarrowFastThreshold {
			s.reseedFast()
		}
		return nil
	}
	s.slowPool.Write(data)
	s.slowLen += len(data)
	s.slowEver[(source/2)%2] = true
	if s.slowEver[0] && s.slowEver[1] && s.slowLen >= yarrowFastThreshold {
		s.reseedSlow()
	}
	return nil
}

func (s *yarrowState) reseedFast() {
	s.rekey(s.fastPool)
	s.fastPool.Reset()
	s.fastLen = 0
}

func (s *yarrowState) reseedSlow() {
	s.rekey(s.slowPool)
	s.slowPool.Reset()
	s.slowLen = 0
	s.slowEver = [2]bool{}
}

func (s *yarrowState) rekey(pool stdhash.Hash) {
	mix := s.h.New()
	if s.key != nil {
		mix.Write(s.key)
	}
	mix.Write(pool.Sum(nil))
	digest := mix.Sum(nil)
	if len(digest) > s.c.MaxKeyLength() {
		digest = digest[:s.c.MaxKeyLength()]
	}
	s.key = digest
	s.ready = true
}

func (s *yarrowState) Ready() error {
	if !s.ready {
		return primerr.New("yarrow.Ready", primerr.ErrorReadPRNG, "generator has not been reseeded yet")
	}
	return nil
}

func (s *yarrowState) Read(buf []byte) (int, error) {
	if err := s.Ready(); err != nil {
		return 0, err
	}
	sk, err := s.c.Setup(s.key, 0)
	if err != nil {
		return 0, primerr.New("yarrow.Read", primerr.ErrorReadPRNG, "%v", err)
	}
	defer sk.Done()

	blkSize := s.c.BlockLength()
	n := 0
	block := make([]byte, blkSize)
	for n < len(buf) {
		sk.EncryptBlock(block, s.counter)
		incCounter(s.counter)
		n += copy(buf[n:], block)
	}
	return n, nil
}

func (s *yarrowState) Done() {
	for i := range s.key {
		s.key[i] = 0
	}
	s.key = nil
	s.ready = false
}

func (s *yarrowState) Export() ([]byte, error) {
	if err := s.Ready(); err != nil {
		return nil, err
	}
	out := append([]byte(nil), s.key...)
	out = append(out, s.counter...)
	return out, nil
}

func (s *yarrowState) Import(state []byte) error {
	blkSize := s.c.BlockLength()
	if len(state) <= blkSize {
		return primerr.New("yarrow.Import", primerr.InvalidArg, "state too short")
	}
	keyLen := len(state) - blkSize
	s.key = append([]byte(nil), state[:keyLen]...)
	s.counter = append([]byte(nil), state[keyLen:]...)
	s.ready = true
	return nil
}

func (s *yarrowState) SelfTest() error {
	if err := s.Start(); err != nil {
		return err
	}
	data := make([]byte, yarrowFastThreshold)
	for i := range data {
		data[i] = byte(i)
	}
	if err := s.AddEntropy(data); err != nil {
		return err
	}
	if err := s.Ready(); err != nil {
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
		return primerr.New("yarrow.SelfTest", primerr.FailTestVector, "successive reads were identical")
	}
	return nil
}

type yarrowDescriptor struct{}

// Yarrow is the registry.PRNG descriptor for the Yarrow generator over
// 3DES and SHA-256.
var Yarrow registry.PRNG = yarrowDescriptor{}

func (yarrowDescriptor) Name() string    { return "yarrow" }
func (yarrowDescriptor) ExportSize() int { return -1 }
func (yarrowDescriptor) New() registry.PRNGState {
	return newYarrowState(cipher.TripleDES, hash.SHA256)
}
