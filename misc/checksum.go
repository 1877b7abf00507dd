// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package misc

import (
	"hash/adler32"
	"hash/crc32"
)

// Adler32 computes the Adler-32 checksum of data.
func Adler32(data []byte) uint32 { return adler32.Checksum(data) }

// CRC32 computes the IEEE-polynomial CRC-32 checksum of data.
func CRC32(data []byte) uint32 { return crc32.ChecksumIEEE(data) }
