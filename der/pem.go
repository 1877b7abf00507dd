// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// PEM framing: "-----BEGIN <label>-----" / "-----END <label>-----" wrapping
// base64, OpenSSL's Proc-Type/DEK-Info encrypted-key headers, and the
// OpenSSH private-key container. The outer BEGIN/END/base64 framing is
// exactly what stdlib encoding/pem already does correctly (it is a fixed,
// narrow text format with no PK-specific semantics); everything
// PK-specific — the encrypted-header convention and the OpenSSH container
// — is this module's own parsing on top of it.
package der

import (
	"bytes"
	"encoding/binary"
	"encoding/pem"
	"strings"

	"github.com/luxfi/primcrypt/primerr"
)

// ParsePEM decodes one PEM block and returns its label, headers, and the
// decoded DER payload.
func ParsePEM(data []byte) (label string, headers map[string]string, content []byte, err error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return "", nil, nil, primerr.New("der.ParsePEM", primerr.InvalidPacket, "no PEM block found")
	}
	return block.Type, block.Headers, block.Bytes, nil
}

// EncodePEM renders label/headers/content as a PEM block.
func EncodePEM(label string, headers map[string]string, content []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: label, Headers: headers, Bytes: content})
}

// EncryptedPEMInfo is the OpenSSL-style "Proc-Type: 4,ENCRYPTED" /
// "DEK-Info: <cipher>,<hex-IV>" header pair.
type EncryptedPEMInfo struct {
	Encrypted    bool
	DEKAlgorithm string
	IV           []byte
}

// ParseEncryptedHeaders inspects a decoded PEM block's headers for the
// OpenSSL encrypted-key convention.
func ParseEncryptedHeaders(headers map[string]string) (*EncryptedPEMInfo, error) {
	pt, ok := headers["Proc-Type"]
	if !ok || !strings.Contains(pt, "ENCRYPTED") {
		return &EncryptedPEMInfo{}, nil
	}
	dek, ok := headers["DEK-Info"]
	if !ok {
		return nil, primerr.New("der.ParseEncryptedHeaders", primerr.InvalidPacket, "Proc-Type: ENCRYPTED without DEK-Info")
	}
	parts := strings.SplitN(dek, ",", 2)
	if len(parts) != 2 {
		return nil, primerr.New("der.ParseEncryptedHeaders", primerr.InvalidPacket, "malformed DEK-Info header")
	}
	iv, err := decodeHex(parts[1])
	if err != nil {
		return nil, primerr.New("der.ParseEncryptedHeaders", primerr.InvalidPacket, "malformed DEK-Info IV: %v", err)
	}
	return &EncryptedPEMInfo{Encrypted: true, DEKAlgorithm: parts[0], IV: iv}, nil
}

func decodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, primerr.New("der.decodeHex", primerr.InvalidPacket, "odd-length hex string")
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(out); i++ {
		hi, err := hexDigit(s[2*i])
		if err != nil {
			return nil, err
		}
		lo, err := hexDigit(s[2*i+1])
		if err != nil {
			return nil, err
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexDigit(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, primerr.New("der.hexDigit", primerr.InvalidPacket, "invalid hex digit %q", c)
	}
}

var openSSHMagic = []byte("openssh-key-v1\x00")

// OpenSSHKey is the outer container of an "openssh-key-v1" private-key
// PEM: cipher/KDF identification, one SSH-wire-encoded public key per
// embedded key, and the (possibly still encrypted) private-key block.
// Per-algorithm private-key field layouts inside PrivateBlob are decoded
// by the corresponding pk/ package once any encryption has been removed,
// since that layout depends on the key type spki.Algorithm names.
type OpenSSHKey struct {
	CipherName  string
	KDFName     string
	KDFOptions  []byte
	PublicKeys  [][]byte
	PrivateBlob []byte
}

// sshReadString reads a uint32-length-prefixed byte string (RFC 4251 §5).
func sshReadString(buf []byte) (s, rest []byte, err error) {
	if len(buf) < 4 {
		return nil, nil, primerr.New("der.sshReadString", primerr.InvalidPacket, "truncated length")
	}
	n := binary.BigEndian.Uint32(buf)
	if uint64(4)+uint64(n) > uint64(len(buf)) {
		return nil, nil, primerr.New("der.sshReadString", primerr.InvalidPacket, "truncated string")
	}
	return buf[4 : 4+n], buf[4+n:], nil
}

// SSHWriteString length-prefixes s per RFC 4251 §5, the wire shape every
// field in an openssh-key-v1 container and an RFC 4253 mpint/string uses.
func SSHWriteString(s []byte) []byte {
	out := make([]byte, 4+len(s))
	binary.BigEndian.PutUint32(out, uint32(len(s)))
	copy(out[4:], s)
	return out
}

// SSHReadString is the exported form of sshReadString, for pk/sshwire and
// the per-algorithm OpenSSH private-key field decoders built on top of
// ParseOpenSSHKey's container parsing.
func SSHReadString(buf []byte) (s, rest []byte, err error) { return sshReadString(buf) }

// ParseOpenSSHKey parses the openssh-key-v1 container format: magic,
// cipher name, KDF name, KDF options, a count of embedded keys, that many
// SSH-wire public key blobs, and a single length-prefixed private-key
// block (still encrypted if CipherName != "none").
func ParseOpenSSHKey(data []byte) (*OpenSSHKey, error) {
	if !bytes.HasPrefix(data, openSSHMagic) {
		return nil, primerr.New("der.ParseOpenSSHKey", primerr.InvalidPacket, "missing openssh-key-v1 magic")
	}
	buf := data[len(openSSHMagic):]
	cipherName, buf, err := sshReadString(buf)
	if err != nil {
		return nil, err
	}
	kdfName, buf, err := sshReadString(buf)
	if err != nil {
		return nil, err
	}
	kdfOptions, buf, err := sshReadString(buf)
	if err != nil {
		return nil, err
	}
	if len(buf) < 4 {
		return nil, primerr.New("der.ParseOpenSSHKey", primerr.InvalidPacket, "truncated key count")
	}
	numKeys := binary.BigEndian.Uint32(buf)
	buf = buf[4:]
	pubKeys := make([][]byte, 0, numKeys)
	for i := uint32(0); i < numKeys; i++ {
		var pk []byte
		pk, buf, err = sshReadString(buf)
		if err != nil {
			return nil, err
		}
		pubKeys = append(pubKeys, pk)
	}
	privBlob, _, err := sshReadString(buf)
	if err != nil {
		return nil, err
	}
	return &OpenSSHKey{
		CipherName:  string(cipherName),
		KDFName:     string(kdfName),
		KDFOptions:  kdfOptions,
		PublicKeys:  pubKeys,
		PrivateBlob: privBlob,
	}, nil
}

// DecodeOpenSSHPrivateBlob validates and strips the duplicated check-int
// prefix RFC says every decrypted openssh-key-v1 private-key block starts
// with, returning the remaining per-key fields (still wire-encoded, one
// record per embedded key, terminated by a byte-incrementing padding run)
// for the matching pk/ package to decode.
func DecodeOpenSSHPrivateBlob(blob []byte) (rest []byte, err error) {
	if len(blob) < 8 {
		return nil, primerr.New("der.DecodeOpenSSHPrivateBlob", primerr.InvalidPacket, "truncated check-ints")
	}
	c1 := binary.BigEndian.Uint32(blob)
	c2 := binary.BigEndian.Uint32(blob[4:])
	if c1 != c2 {
		return nil, primerr.New("der.DecodeOpenSSHPrivateBlob", primerr.InvalidPacket, "check-int mismatch (wrong passphrase or corrupt key)")
	}
	return blob[8:], nil
}
