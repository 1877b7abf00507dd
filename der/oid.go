// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package der

import "github.com/luxfi/primcrypt/primerr"

// EncodeOID encodes an OBJECT IDENTIFIER's arc list using base-128
// continuation encoding, per spec §4.6: the first two arcs are combined
// into a single value (40*arc0 + arc1), constrained to arc0 <= 2 and, when
// arc0 < 2, arc1 <= 39.
func EncodeOID(arcs []int) ([]byte, error) {
	if len(arcs) < 2 {
		return nil, primerr.New("der.EncodeOID", primerr.InvalidArg, "OID needs at least two arcs")
	}
	if arcs[0] < 0 || arcs[0] > 2 || arcs[1] < 0 || (arcs[0] < 2 && arcs[1] > 39) {
		return nil, primerr.New("der.EncodeOID", primerr.InvalidArg, "invalid first two OID arcs")
	}
	payload := appendBase128(nil, arcs[0]*40+arcs[1])
	for _, a := range arcs[2:] {
		if a < 0 {
			return nil, primerr.New("der.EncodeOID", primerr.InvalidArg, "OID arcs must be non-negative")
		}
		payload = appendBase128(payload, a)
	}
	return encodeTLV(TagOID, payload), nil
}

func appendBase128(buf []byte, n int) []byte {
	if n == 0 {
		return append(buf, 0)
	}
	var tmp []byte
	for n > 0 {
		tmp = append(tmp, byte(n&0x7f))
		n >>= 7
	}
	for i := len(tmp) - 1; i >= 0; i-- {
		b := tmp[i]
		if i != 0 {
			b |= 0x80
		}
		buf = append(buf, b)
	}
	return buf
}

// DecodeOID parses an OBJECT IDENTIFIER's content octets back into its arc
// list, reversing the first-two-arcs combination EncodeOID performs.
func DecodeOID(payload []byte) ([]int, error) {
	if len(payload) == 0 {
		return nil, primerr.New("der.DecodeOID", primerr.InvalidPacket, "empty OID content")
	}
	var out []int
	first := true
	val := 0
	for _, b := range payload {
		val = val<<7 | int(b&0x7f)
		if b&0x80 == 0 {
			if first {
				if val < 80 {
					out = append(out, val/40, val%40)
				} else {
					out = append(out, 2, val-80)
				}
				first = false
			} else {
				out = append(out, val)
			}
			val = 0
		}
	}
	if val != 0 {
		return nil, primerr.New("der.DecodeOID", primerr.InvalidPacket, "truncated base-128 component")
	}
	return out, nil
}
