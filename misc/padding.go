// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package misc

import (
	"github.com/luxfi/primcrypt/primerr"
	"github.com/luxfi/primcrypt/xmem"
)

// PadPKCS7 appends PKCS#7 padding so len(data)+padding is a multiple of
// blockSize (1..255).
func PadPKCS7(data []byte, blockSize int) ([]byte, error) {
	if blockSize < 1 || blockSize > 255 {
		return nil, primerr.New("misc.PadPKCS7", primerr.InvalidArg, "block size must be 1..255, got %d", blockSize)
	}
	padLen := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out, nil
}

// UnpadPKCS7 strips and validates PKCS#7 padding, rejecting malformed
// padding in constant time relative to the padding byte's own value
// (the whole final block is compared, not just the bytes the last byte
// claims as padding) to avoid turning padding validity into a timing
// oracle over ciphertext the caller hasn't authenticated yet.
func UnpadPKCS7(data []byte, blockSize int) ([]byte, error) {
	if blockSize < 1 || blockSize > 255 || len(data) == 0 || len(data)%blockSize != 0 {
		return nil, primerr.New("misc.UnpadPKCS7", primerr.InvalidPacket, "data is not a multiple of the block size")
	}
	padLen := int(data[len(data)-1])
	good := 1
	if padLen < 1 || padLen > blockSize {
		good = 0
		padLen = 1
	}
	check := make([]byte, blockSize)
	for i := range check {
		if i >= blockSize-padLen {
			check[i] = byte(padLen)
		} else {
			check[i] = data[len(data)-blockSize+i]
		}
	}
	tail := data[len(data)-blockSize:]
	if !xmem.ConstantTimeCompare(check, tail) {
		good = 0
	}
	if good == 0 {
		return nil, primerr.New("misc.UnpadPKCS7", primerr.InvalidPacket, "invalid padding")
	}
	return data[:len(data)-padLen], nil
}

// PadZero right-pads data with zero bytes to a multiple of blockSize, the
// padding convention some legacy DEK-Info ciphers use instead of PKCS#7.
func PadZero(data []byte, blockSize int) []byte {
	if len(data)%blockSize == 0 {
		return data
	}
	padLen := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	return out
}
