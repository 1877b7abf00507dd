// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package misc

import (
	"crypto/sha512"
	"encoding/binary"

	"golang.org/x/crypto/blowfish"

	"github.com/luxfi/primcrypt/primerr"
)

const (
	bcryptPBKDFBlockSize = 32
	bcryptPBKDFMagic     = "OxychromaticBlowfishSwatDynamite"
)

// BcryptPBKDF derives keyLen bytes from password/salt using OpenSSH's
// bcrypt_pbkdf, the key-stretching function openssh-key-v1 containers use
// when KDFName is "bcrypt" (spec §4.6/§6's OpenSSH private-key unlock
// path). It is distinct from the password-hashing bcrypt scheme
// golang.org/x/crypto/bcrypt exposes at its top level; this builds the
// same "expensive Blowfish key schedule" core bcrypt uses
// (blowfish.NewSaltedCipher plus repeated blowfish.ExpandKey rounds) but
// drives it from SHA-512 digests of the password and salt rather than
// from bcrypt's own password-hash input format.
func BcryptPBKDF(password, salt []byte, rounds, keyLen int) ([]byte, error) {
	if rounds < 1 {
		return nil, primerr.New("misc.BcryptPBKDF", primerr.InvalidArg, "rounds must be >= 1")
	}
	if len(password) == 0 || len(salt) == 0 || keyLen == 0 {
		return nil, primerr.New("misc.BcryptPBKDF", primerr.InvalidArg, "password, salt, and keyLen must all be non-empty")
	}

	numBlocks := (keyLen + bcryptPBKDFBlockSize - 1) / bcryptPBKDFBlockSize
	stride := numBlocks
	amt := (keyLen + stride - 1) / stride

	sha2pass := sha512.Sum512(password)

	out := make([]byte, numBlocks*bcryptPBKDFBlockSize)
	key := make([]byte, keyLen)
	remaining := keyLen

	for count := uint32(1); remaining > 0; count++ {
		countSalt := make([]byte, len(salt)+4)
		copy(countSalt, salt)
		binary.BigEndian.PutUint32(countSalt[len(salt):], count)
		sha2salt := sha512.Sum512(countSalt)

		tmp, err := bcryptHash(sha2pass[:], sha2salt[:])
		if err != nil {
			return nil, err
		}
		copy(out, tmp)

		for i := 1; i < rounds; i++ {
			sha2salt = sha512.Sum512(tmp)
			tmp, err = bcryptHash(sha2pass[:], sha2salt[:])
			if err != nil {
				return nil, err
			}
			for j := range out[:bcryptPBKDFBlockSize] {
				out[j] ^= tmp[j]
			}
		}

		n := amt
		if n > remaining {
			n = remaining
		}
		for i := 0; i < n; i++ {
			dest := i*stride + int(count-1)
			if dest >= keyLen {
				break
			}
			key[dest] = out[i]
		}
		remaining -= n
	}

	return key, nil
}

// bcryptHash runs bcrypt's core Eksblowfish key schedule (salted setup
// plus 64 alternating re-expansions against salt and key) over sha2pass
// as the "key" and sha2salt as the "salt", then encrypts the fixed
// 32-byte magic block 64 times and returns the 32-byte result with each
// 32-bit word written little-endian, exactly as OpenSSH's bcrypt_pbkdf.c's
// bcrypt_hash does.
func bcryptHash(sha2pass, sha2salt []byte) ([]byte, error) {
	cipher, err := blowfish.NewSaltedCipher(sha2pass, sha2salt)
	if err != nil {
		return nil, primerr.New("misc.bcryptHash", primerr.ErrGeneric, "%v", err)
	}
	for i := 0; i < 64; i++ {
		blowfish.ExpandKey(sha2salt, cipher)
		blowfish.ExpandKey(sha2pass, cipher)
	}

	cdata := []byte(bcryptPBKDFMagic)
	block := make([]byte, 8)
	out := make([]byte, len(cdata))
	for i := 0; i < 64; i++ {
		for off := 0; off < len(cdata); off += 8 {
			cipher.Encrypt(block, cdata[off:off+8])
			copy(cdata[off:off+8], block)
		}
	}
	for i := 0; i < len(cdata); i += 4 {
		cdata[i], cdata[i+1], cdata[i+2], cdata[i+3] = cdata[i+3], cdata[i+2], cdata[i+1], cdata[i]
	}
	copy(out, cdata)
	return out, nil
}
