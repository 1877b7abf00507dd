// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package xmem

// Zero overwrites b with zero bytes in a way the compiler cannot elide, even
// when b is about to go out of scope. Every mode/MAC/AEAD/PK Done or Free in
// this module calls Zero on its key-bearing buffers (spec §4.8, §5 resource
// discipline), including on partial-construction failure paths.
//
//go:noinline
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ZeroAll zeroizes every buffer passed to it, in order.
func ZeroAll(bufs ...[]byte) {
	for _, b := range bufs {
		Zero(b)
	}
}
