// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// The four ECDSA signature encodings spec §4.7 names: ANSI X9.62 (the DER
// SEQUENCE{INTEGER, INTEGER} format X.509 and PKCS keys use), RFC 7518
// (JOSE/JWS's fixed-width r||s), Ethereum (r||s||recovery-id, secp256k1
// only), and RFC 5656 (the SSH wire format).
package ecc

import (
	"math/big"

	"github.com/luxfi/primcrypt/der"
	"github.com/luxfi/primcrypt/mpi"
	"github.com/luxfi/primcrypt/pk/sshwire"
	"github.com/luxfi/primcrypt/primerr"
)

// EncodeX962 renders (r, s) as the ANSI X9.62 DER SEQUENCE{INTEGER r,
// INTEGER s}.
func EncodeX962(r, s *big.Int) []byte {
	return der.EncodeSequence(der.EncodeInteger(mpi.FromBig(r)), der.EncodeInteger(mpi.FromBig(s)))
}

// DecodeX962 parses an ANSI X9.62 ECDSA signature.
func DecodeX962(data []byte) (r, s *big.Int, err error) {
	node, rest, err := der.ParseFlexi(data)
	if err != nil {
		return nil, nil, err
	}
	if len(rest) != 0 {
		return nil, nil, primerr.New("ecc.DecodeX962", primerr.InvalidPacket, "trailing data after signature")
	}
	if err := node.MatchTags(der.TagInteger, der.TagInteger); err != nil {
		return nil, nil, err
	}
	rInt, err := der.DecodeInteger(node.Children[0].Payload)
	if err != nil {
		return nil, nil, err
	}
	sInt, err := der.DecodeInteger(node.Children[1].Payload)
	if err != nil {
		return nil, nil, err
	}
	return mpi.ToBig(rInt), mpi.ToBig(sInt), nil
}

// EncodeJWS renders (r, s) as RFC 7518 §3.4's fixed-width concatenation:
// r and s each left-padded with zeros to the curve order's byte length.
func EncodeJWS(curve Curve, r, s *big.Int) []byte {
	size := byteSize(curve)
	out := make([]byte, 2*size)
	copy(out[size-len(r.Bytes()):size], r.Bytes())
	copy(out[2*size-len(s.Bytes()):], s.Bytes())
	return out
}

// DecodeJWS parses an RFC 7518 fixed-width ECDSA signature.
func DecodeJWS(curve Curve, data []byte) (r, s *big.Int, err error) {
	size := byteSize(curve)
	if len(data) != 2*size {
		return nil, nil, primerr.New("ecc.DecodeJWS", primerr.InvalidPacket, "signature length mismatch for curve")
	}
	r = new(big.Int).SetBytes(data[:size])
	s = new(big.Int).SetBytes(data[size:])
	return r, s, nil
}

// EncodeEthereum renders (r, s, recID) as Ethereum's r(32)||s(32)||v,
// v = recID+27. Secp256k1-only, per spec §4.7.
func EncodeEthereum(r, s *big.Int, recID byte) ([]byte, error) {
	out := make([]byte, 65)
	rb, sb := r.Bytes(), s.Bytes()
	if len(rb) > 32 || len(sb) > 32 {
		return nil, primerr.New("ecc.EncodeEthereum", primerr.InvalidArg, "r or s too large for 32-byte field")
	}
	copy(out[32-len(rb):32], rb)
	copy(out[64-len(sb):64], sb)
	out[64] = recID + 27
	return out, nil
}

// DecodeEthereum parses an Ethereum-encoded recoverable signature.
func DecodeEthereum(data []byte) (r, s *big.Int, recID byte, err error) {
	if len(data) != 65 {
		return nil, nil, 0, primerr.New("ecc.DecodeEthereum", primerr.InvalidPacket, "signature must be 65 bytes")
	}
	v := data[64]
	if v < 27 {
		return nil, nil, 0, primerr.New("ecc.DecodeEthereum", primerr.InvalidPacket, "recovery byte must be >= 27")
	}
	r = new(big.Int).SetBytes(data[:32])
	s = new(big.Int).SetBytes(data[32:64])
	return r, s, v - 27, nil
}

// EncodeSSH renders (r, s) as RFC 5656 §3.1.2's ECDSA signature blob:
// mpint(r) || mpint(s), each length-prefixed per RFC 4251 §5.
func EncodeSSH(r, s *big.Int) []byte {
	out := sshwire.WriteMPInt(mpi.FromBig(r))
	out = append(out, sshwire.WriteMPInt(mpi.FromBig(s))...)
	return out
}

// DecodeSSH parses an RFC 5656 ECDSA signature blob.
func DecodeSSH(data []byte) (r, s *big.Int, err error) {
	rInt, rest, err := sshwire.ReadMPInt(data)
	if err != nil {
		return nil, nil, err
	}
	sInt, rest, err := sshwire.ReadMPInt(rest)
	if err != nil {
		return nil, nil, err
	}
	if len(rest) != 0 {
		return nil, nil, primerr.New("ecc.DecodeSSH", primerr.InvalidPacket, "trailing data after signature blob")
	}
	return mpi.ToBig(rInt), mpi.ToBig(sInt), nil
}
