// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package aead

import (
	"github.com/luxfi/primcrypt/mac"
	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

// eaxState is EAX mode (Bellare/Rogaway/Wagner): three domain-separated
// OMAC1/CMAC instances, each seeded with a one-block tweak (0 for the
// nonce, 1 for the header/AAD, 2 for the ciphertext), and the tag is the
// XOR of all three CMAC outputs. The nonce's CMAC becomes the starting
// counter block for the CTR-mode encryption of the message, the analogous
// CMAC/offset construction the spec calls for alongside OCB.
type eaxState struct {
	ba        *blockAdapter
	headerMAC mac.State
	ctMAC     mac.State
	ctr       []byte
	pad       []byte
	padUsed   int
	blockLen  int
	tagSize   int
}

func tweakBlock(blockLen int, tweak byte) []byte {
	b := make([]byte, blockLen)
	b[blockLen-1] = tweak
	return b
}

func newEAX(c registry.Cipher, key, nonce []byte, tagSize int) (*eaxState, error) {
	if c == nil {
		return nil, primerr.New("eax.New", primerr.InvalidCipher, "nil cipher descriptor")
	}
	blockLen := c.BlockLength()
	if tagSize < 1 || tagSize > blockLen {
		return nil, primerr.New("eax.New", primerr.InvalidArg, "tag size must be 1..block length")
	}

	nonceMAC, err := mac.NewOMAC(c, key, 0)
	if err != nil {
		return nil, err
	}
	nonceMAC.Process(tweakBlock(blockLen, 0))
	nonceMAC.Process(nonce)
	nPrime, err := nonceMAC.Done()
	if err != nil {
		return nil, err
	}

	headerMAC, err := mac.NewOMAC(c, key, 0)
	if err != nil {
		return nil, err
	}
	headerMAC.Process(tweakBlock(blockLen, 1))

	ctMAC, err := mac.NewOMAC(c, key, 0)
	if err != nil {
		return nil, err
	}
	ctMAC.Process(tweakBlock(blockLen, 2))

	ba, err := newBlockAdapter(c, key, 0)
	if err != nil {
		return nil, err
	}

	return &eaxState{
		ba: ba, headerMAC: headerMAC, ctMAC: ctMAC,
		ctr: nPrime, pad: make([]byte, blockLen), blockLen: blockLen, tagSize: tagSize,
	}, nil
}

func (s *eaxState) nextKeystreamBlock() {
	s.ba.encrypt(s.pad, s.ctr)
	xmem.IncCounterBE(s.ctr, s.blockLen)
}

func (s *eaxState) crypt(dst, src []byte) {
	for i := range src {
		if s.padUsed == s.blockLen {
			s.padUsed = 0
		}
		if s.padUsed == 0 {
			s.nextKeystreamBlock()
		}
		dst[i] = src[i] ^ s.pad[s.padUsed]
		s.padUsed++
	}
}

type eaxSeal struct {
	*eaxState
	nPrime []byte
}
type eaxOpen struct {
	*eaxState
	nPrime []byte
}

// NewEAXSeal constructs an EAX encryption state.
func NewEAXSeal(c registry.Cipher, key, nonce []byte, tagSize int) (Sealer, error) {
	s, err := newEAX(c, key, nonce, tagSize)
	if err != nil {
		return nil, err
	}
	nPrime := append([]byte(nil), s.ctr...)
	return &eaxSeal{s, nPrime}, nil
}

// NewEAXOpen constructs a matching EAX decryption state.
func NewEAXOpen(c registry.Cipher, key, nonce []byte, tagSize int) (Opener, error) {
	s, err := newEAX(c, key, nonce, tagSize)
	if err != nil {
		return nil, err
	}
	nPrime := append([]byte(nil), s.ctr...)
	return &eaxOpen{s, nPrime}, nil
}

func (s *eaxState) addAAD(data []byte) error {
	return s.headerMAC.Process(data)
}

func (s *eaxSeal) AddAAD(data []byte) error { return s.addAAD(data) }
func (s *eaxOpen) AddAAD(data []byte) error { return s.addAAD(data) }

func (s *eaxSeal) Encrypt(dst, src []byte) error {
	s.crypt(dst, src)
	return s.ctMAC.Process(dst[:len(src)])
}

func (s *eaxSeal) Done() ([]byte, error) {
	hPrime, err := s.headerMAC.Done()
	if err != nil {
		return nil, err
	}
	cPrime, err := s.ctMAC.Done()
	if err != nil {
		return nil, err
	}
	tag := append([]byte(nil), s.nPrime...)
	xmem.XorBytes(tag, hPrime)
	xmem.XorBytes(tag, cPrime)
	s.ba.done()
	return tag[:s.tagSize], nil
}

func (o *eaxOpen) Decrypt(dst, src []byte) error {
	if err := o.ctMAC.Process(src); err != nil {
		return err
	}
	o.crypt(dst, src)
	return nil
}

func (o *eaxOpen) Done(tag []byte) error {
	hPrime, err := o.headerMAC.Done()
	if err != nil {
		return err
	}
	cPrime, err := o.ctMAC.Done()
	if err != nil {
		return err
	}
	want := append([]byte(nil), o.nPrime...)
	xmem.XorBytes(want, hPrime)
	xmem.XorBytes(want, cPrime)
	o.ba.done()
	if !xmem.ConstantTimeCompare(tag, want[:o.tagSize]) {
		return primerr.New("eax.Open", primerr.FailTestVector, "authentication tag mismatch")
	}
	return nil
}
