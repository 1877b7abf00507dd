// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package der

import (
	"math/big"

	"github.com/luxfi/primcrypt/mpi"
	"github.com/luxfi/primcrypt/primerr"
)

var bigOne = big.NewInt(1)

// EncodeInteger encodes x as a DER INTEGER: two's-complement, minimal
// length, with a leading 0x00 inserted whenever the magnitude's top byte
// would otherwise read as negative. der_encode_integer.c computes the same
// result by counting bits and special-casing exact powers of two; this
// expresses it as the standard "invert (-x-1)" two's-complement transform
// instead, which is equivalent and needs no bit-counting special case.
func EncodeInteger(x mpi.Int) []byte {
	n := mpi.ToBig(x)
	var payload []byte
	switch n.Sign() {
	case 0:
		payload = []byte{0x00}
	case -1:
		nMinus1 := new(big.Int).Neg(n)
		nMinus1.Sub(nMinus1, bigOne)
		b := nMinus1.Bytes()
		for i := range b {
			b[i] ^= 0xff
		}
		if len(b) == 0 || b[0]&0x80 == 0 {
			b = append([]byte{0xff}, b...)
		}
		payload = b
	default:
		b := n.Bytes()
		if len(b) > 0 && b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		payload = b
	}
	return encodeTLV(TagInteger, payload)
}

// DecodeInteger parses an INTEGER's content octets (an ASN.1 node's
// Payload) back into an mpi.Int.
func DecodeInteger(payload []byte) (mpi.Int, error) {
	if len(payload) == 0 {
		return nil, primerr.New("der.DecodeInteger", primerr.InvalidPacket, "empty INTEGER content")
	}
	if payload[0]&0x80 != 0 {
		b := append([]byte(nil), payload...)
		for i := range b {
			b[i] ^= 0xff
		}
		n := new(big.Int).SetBytes(b)
		n.Add(n, bigOne)
		n.Neg(n)
		return mpi.FromBig(n), nil
	}
	return mpi.FromBig(new(big.Int).SetBytes(payload)), nil
}
