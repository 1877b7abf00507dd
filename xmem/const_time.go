// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package xmem

// ConstantTimeCompare reports whether a and b hold the same bytes without
// branching on their content. Every MAC/AEAD tag check and the PKCS#1 v1.5
// padding check in this module route through this function (spec §4.8):
// differences are OR-accumulated across the whole comparison and reduced to
// a single bit only at the end, so the number of differing bytes and their
// position cannot be observed through control flow.
func ConstantTimeCompare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	return v == 0
}

// ConstantTimeSelect returns a if v == 1, b if v == 0. v must be 0 or 1;
// behavior is otherwise unspecified. Used to pick between a real and a
// decoy result without a data-dependent branch.
func ConstantTimeSelect(v, a, b int) int {
	mask := -v
	return (a & mask) | (b & ^mask)
}

// ConstantTimeByteEq returns 1 if x == y, 0 otherwise, without branching.
func ConstantTimeByteEq(x, y byte) int {
	z := ^(x ^ y)
	z &= z >> 4
	z &= z >> 2
	z &= z >> 1
	return int(z & 1)
}
