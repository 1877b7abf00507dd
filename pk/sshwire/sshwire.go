// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sshwire implements the RFC 4251 §5 wire primitives (length-
// prefixed strings and the mpint big-integer encoding) that the SSH
// public-key and signature blob formats spec §4.7/§4.8 names are built
// from, layered on top of der's string primitives rather than duplicating
// them.
package sshwire

import (
	"encoding/binary"

	"github.com/luxfi/primcrypt/der"
	"github.com/luxfi/primcrypt/mpi"
	"github.com/luxfi/primcrypt/primerr"
)

// WriteString length-prefixes s, the wire shape every SSH field uses.
func WriteString(s []byte) []byte { return der.SSHWriteString(s) }

// ReadString reads one length-prefixed string and returns the remainder.
func ReadString(buf []byte) (s, rest []byte, err error) { return der.SSHReadString(buf) }

// WriteUint32 encodes a uint32 field (e.g. a key count).
func WriteUint32(v uint32) []byte {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, v)
	return out
}

// ReadUint32 reads a uint32 field and returns the remainder.
func ReadUint32(buf []byte) (uint32, []byte, error) {
	if len(buf) < 4 {
		return 0, nil, primerr.New("sshwire.ReadUint32", primerr.InvalidPacket, "truncated uint32")
	}
	return binary.BigEndian.Uint32(buf), buf[4:], nil
}

// WriteMPInt encodes x as an SSH mpint: a length-prefixed two's-complement
// big-endian integer, with a leading zero byte inserted whenever the
// high-order bit of the first content byte would otherwise be set (the
// same "avoid looking negative" rule DER INTEGER uses, expressed here as
// string framing rather than a TLV). x must be non-negative, the only
// case every PK scheme in this module's scope needs.
func WriteMPInt(x mpi.Int) []byte {
	b := x.Bytes()
	if x.IsZero() {
		return WriteString(nil)
	}
	if len(b) > 0 && b[0]&0x80 != 0 {
		padded := make([]byte, len(b)+1)
		copy(padded[1:], b)
		b = padded
	}
	return WriteString(b)
}

// ReadMPInt reads an SSH mpint and returns the remainder.
func ReadMPInt(buf []byte) (mpi.Int, []byte, error) {
	s, rest, err := ReadString(buf)
	if err != nil {
		return nil, nil, err
	}
	return mpi.New().SetBytes(s), rest, nil
}
