// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package misc

import (
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"

	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/registry"
)

// HKDF derives outLen bytes from secret/salt/info using RFC 5869 HKDF
// under the given registered hash.
func HKDF(h registry.Hash, secret, salt, info []byte, outLen int) ([]byte, error) {
	reader := hkdf.New(h.New, secret, salt, info)
	out := make([]byte, outLen)
	if _, err := io.ReadFull(reader, out); err != nil {
		return nil, primerr.New("misc.HKDF", primerr.ErrGeneric, "%v", err)
	}
	return out, nil
}

// PBKDF2 derives keyLen bytes from password/salt using RFC 2898 PBKDF2
// under the given registered hash, run for iterations rounds.
func PBKDF2(h registry.Hash, password, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, h.New)
}

// PBKDF1 implements OpenSSL's legacy EVP_BytesToKey single-hash key
// derivation (not a standardized PBKDF1 variant, but the scheme OpenSSL's
// `-----BEGIN ... Proc-Type: 4,ENCRYPTED` / `DEK-Info` PEM convention
// actually uses): D_0 = {}, D_i = Hash(D_{i-1} || password || salt),
// concatenated until at least keyLen bytes are produced.
func PBKDF1(h registry.Hash, password, salt []byte, keyLen int) []byte {
	out := make([]byte, 0, keyLen+h.Size())
	var prev []byte
	for len(out) < keyLen {
		st := h.New()
		st.Write(prev)
		st.Write(password)
		st.Write(salt)
		prev = st.Sum(nil)
		out = append(out, prev...)
	}
	return out[:keyLen]
}
