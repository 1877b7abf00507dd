// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rsa

import (
	"encoding/binary"

	"github.com/luxfi/primcrypt/registry"
)

// mgf1 is the MGF1 mask-generation function RFC 8017 defines: repeated
// hashing of seed concatenated with a big-endian counter, truncated to
// maskLen bytes.
func mgf1(h registry.Hash, seed []byte, maskLen int) []byte {
	var counter [4]byte
	out := make([]byte, 0, maskLen+h.Size())
	st := h.New()
	for i := 0; len(out) < maskLen; i++ {
		binary.BigEndian.PutUint32(counter[:], uint32(i))
		st.Reset()
		st.Write(seed)
		st.Write(counter[:])
		out = st.Sum(out)
	}
	return out[:maskLen]
}
