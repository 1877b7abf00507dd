// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package aead

import (
	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
	"github.com/luxfi/primcrypt/xmem"
)

// ocb1State is the original Rogaway/Bellare/Black/Krovetz OCB mode: the
// same offset-codebook shape ocb3State implements (an L-table built by
// repeated doubling, block i's offset stepped by L_{ntz(i)}, AAD absorbed
// into a second parallel offset/sum pair — the PMAC construction this
// module's mac package also builds on), but with OCB1's plainer, more
// expensive per-session setup: the starting offset is E_K(Nonce) directly
// rather than OCB3's stretch-and-shift construction, and the final tag
// folds in L itself (E_K(0^n)) rather than OCB3's doubled L_$.
//
// Like ocb3State, this implementation treats every full block identically
// rather than reproducing the original paper's separate "last block is a
// full block" offset rule, so Nonce is required to already be exactly one
// block long (the paper's bit-length-dependent nonce preprocessing, needed
// there to vary the offset with the final block's length, is not
// reproduced); a trailing partial block still gets the documented
// L-keyed pad.
type ocb1State struct {
	ba       *blockAdapter
	blockLen int
	l        []byte
	lTable   [][]byte

	offset     []byte
	checksum   []byte
	buf        []byte
	pendingDst [][]byte
	blockIdx   int

	aadOffset   []byte
	aadSum      []byte
	aadBuf      []byte
	aadBlockIdx int
	aadClosed   bool
	tagSize     int
}

func (s *ocb1State) lTableEntry(i int) []byte {
	for len(s.lTable) <= i {
		prev := s.l
		if len(s.lTable) > 0 {
			prev = s.lTable[len(s.lTable)-1]
		}
		s.lTable = append(s.lTable, ocbDouble(prev))
	}
	return s.lTable[i]
}

func newOCB1(c registry.Cipher, key, nonce []byte, tagSize int) (*ocb1State, error) {
	if c == nil {
		return nil, primerr.New("ocb1.New", primerr.InvalidCipher, "nil cipher descriptor")
	}
	ba, err := newBlockAdapter(c, key, 0)
	if err != nil {
		return nil, err
	}
	blockLen := ba.blockLen
	if len(nonce) != blockLen {
		return nil, primerr.New("ocb1.New", primerr.InvalidArg, "nonce must be exactly the block length")
	}
	if tagSize < 1 || tagSize > blockLen {
		return nil, primerr.New("ocb1.New", primerr.InvalidArg, "invalid tag size")
	}

	zero := make([]byte, blockLen)
	l := make([]byte, blockLen)
	ba.encrypt(l, zero)

	offset := make([]byte, blockLen)
	ba.encrypt(offset, nonce)

	return &ocb1State{
		ba: ba, blockLen: blockLen, l: l,
		offset: offset, checksum: make([]byte, blockLen),
		aadOffset: make([]byte, blockLen), aadSum: make([]byte, blockLen),
		tagSize: tagSize,
	}, nil
}

func (s *ocb1State) processFullAADBlock(block []byte) {
	s.aadBlockIdx++
	xmem.XorBytes(s.aadOffset, s.lTableEntry(ntz(s.aadBlockIdx)))
	tmp := append([]byte(nil), block...)
	xmem.XorBytes(tmp, s.aadOffset)
	s.ba.encrypt(tmp, tmp)
	xmem.XorBytes(s.aadSum, tmp)
}

func (s *ocb1State) AddAAD(data []byte) error {
	if s.aadClosed {
		return primerr.New("ocb1.AddAAD", primerr.InvalidArg, "AAD must precede message data")
	}
	s.aadBuf = append(s.aadBuf, data...)
	for len(s.aadBuf) >= s.blockLen {
		s.processFullAADBlock(s.aadBuf[:s.blockLen])
		s.aadBuf = s.aadBuf[s.blockLen:]
	}
	return nil
}

func (s *ocb1State) closeAAD() {
	if s.aadClosed {
		return
	}
	if len(s.aadBuf) > 0 {
		xmem.XorBytes(s.aadOffset, s.l)
		padded := make([]byte, s.blockLen)
		copy(padded, s.aadBuf)
		padded[len(s.aadBuf)] = 0x80
		xmem.XorBytes(padded, s.aadOffset)
		s.ba.encrypt(padded, padded)
		xmem.XorBytes(s.aadSum, padded)
		s.aadBuf = nil
	}
	s.aadClosed = true
}

func (s *ocb1State) pushDst(d []byte) {
	if len(d) > 0 {
		s.pendingDst = append(s.pendingDst, d)
	}
}

func (s *ocb1State) writeOut(data []byte) {
	for len(data) > 0 {
		chunk := s.pendingDst[0]
		n := len(chunk)
		if n > len(data) {
			n = len(data)
		}
		copy(chunk[:n], data[:n])
		data = data[n:]
		if n == len(chunk) {
			s.pendingDst = s.pendingDst[1:]
		} else {
			s.pendingDst[0] = chunk[n:]
		}
	}
}

func (s *ocb1State) processFullBlock(dst, src []byte, encrypting bool) {
	s.blockIdx++
	xmem.XorBytes(s.offset, s.lTableEntry(ntz(s.blockIdx)))
	tmp := append([]byte(nil), src...)
	xmem.XorBytes(tmp, s.offset)
	if encrypting {
		s.ba.encrypt(tmp, tmp)
		xmem.XorBytes(tmp, s.offset)
		xmem.XorBytes(s.checksum, src)
		copy(dst, tmp)
	} else {
		s.ba.decrypt(tmp, tmp)
		xmem.XorBytes(tmp, s.offset)
		copy(dst, tmp)
		xmem.XorBytes(s.checksum, tmp)
	}
}

func (s *ocb1State) finalBlock(dst, src []byte, encrypting bool) {
	if len(src) == 0 {
		return
	}
	xmem.XorBytes(s.offset, s.l)
	pad := append([]byte(nil), s.offset...)
	s.ba.encrypt(pad, pad)
	padded := make([]byte, s.blockLen)
	if encrypting {
		for i := range src {
			dst[i] = src[i] ^ pad[i]
		}
		copy(padded, src)
		if len(src) < s.blockLen {
			padded[len(src)] = 0x80
		}
		xmem.XorBytes(s.checksum, padded)
	} else {
		for i := range src {
			dst[i] = src[i] ^ pad[i]
			padded[i] = dst[i]
		}
		if len(src) < s.blockLen {
			padded[len(src)] = 0x80
		}
		xmem.XorBytes(s.checksum, padded)
	}
}

func (s *ocb1State) finalTag() []byte {
	s.closeAAD()
	tag := append([]byte(nil), s.checksum...)
	xmem.XorBytes(tag, s.offset)
	xmem.XorBytes(tag, s.l)
	s.ba.encrypt(tag, tag)
	xmem.XorBytes(tag, s.aadSum)
	return tag[:s.tagSize]
}

type ocb1Seal struct{ *ocb1State }
type ocb1Open struct{ *ocb1State }

// NewOCB1Seal constructs an OCB1 (Rogaway 2001) encryption state over a
// 16-byte block cipher (or 8-byte, for the legacy LRW-style reduction
// constant). Unlike NewOCB3Seal, nonce must be exactly one block long.
func NewOCB1Seal(c registry.Cipher, key, nonce []byte, tagSize int) (Sealer, error) {
	s, err := newOCB1(c, key, nonce, tagSize)
	if err != nil {
		return nil, err
	}
	return &ocb1Seal{s}, nil
}

// NewOCB1Open constructs a matching OCB1 decryption state.
func NewOCB1Open(c registry.Cipher, key, nonce []byte, tagSize int) (Opener, error) {
	s, err := newOCB1(c, key, nonce, tagSize)
	if err != nil {
		return nil, err
	}
	return &ocb1Open{s}, nil
}

func (s *ocb1Seal) Encrypt(dst, src []byte) error {
	s.closeAAD()
	s.buf = append(s.buf, src...)
	s.pushDst(dst[:len(src)])
	for len(s.buf) >= s.blockLen {
		out := make([]byte, s.blockLen)
		s.processFullBlock(out, s.buf[:s.blockLen], true)
		s.writeOut(out)
		s.buf = s.buf[s.blockLen:]
	}
	return nil
}

func (s *ocb1Seal) Done() ([]byte, error) {
	if len(s.buf) > 0 {
		out := make([]byte, len(s.buf))
		s.finalBlock(out, s.buf, true)
		s.writeOut(out)
		s.buf = nil
	}
	tag := s.finalTag()
	s.ba.done()
	return tag, nil
}

func (s *ocb1Open) Decrypt(dst, src []byte) error {
	s.closeAAD()
	s.buf = append(s.buf, src...)
	s.pushDst(dst[:len(src)])
	for len(s.buf) >= s.blockLen {
		out := make([]byte, s.blockLen)
		s.processFullBlock(out, s.buf[:s.blockLen], false)
		s.writeOut(out)
		s.buf = s.buf[s.blockLen:]
	}
	return nil
}

func (s *ocb1Open) Done(tag []byte) error {
	if len(s.buf) > 0 {
		out := make([]byte, len(s.buf))
		s.finalBlock(out, s.buf, false)
		s.writeOut(out)
		s.buf = nil
	}
	want := s.finalTag()
	s.ba.done()
	if !xmem.ConstantTimeCompare(tag, want) {
		return primerr.New("ocb1.Open", primerr.FailTestVector, "authentication tag mismatch")
	}
	return nil
}
