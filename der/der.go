// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package der is the ASN.1 DER codec spec §4.6 describes: tag/length/value
// primitive encoders, a "flexi" decoder that turns an arbitrary DER stream
// into a tree of nodes a caller walks and type-checks, the higher-level
// SubjectPublicKeyInfo/PKCS#8/X.509-SPKI structures built on top of it, and
// PEM framing for both the OpenSSL-style encrypted-header convention and
// the OpenSSH private-key container.
package der

import (
	"github.com/luxfi/primcrypt/primerr"
)

// Universal-class tag numbers this codec recognizes (spec §4.6's primitive
// list). SEQUENCE and SET are always constructed (bit 0x20 set); the other
// tags here are primitive, matching how every PK structure in this module
// actually uses them.
const (
	TagBoolean         = 0x01
	TagInteger         = 0x02
	TagBitString       = 0x03
	TagOctetString     = 0x04
	TagNull            = 0x05
	TagOID             = 0x06
	TagUTF8String      = 0x0C
	TagPrintableString = 0x13
	TagTeletexString   = 0x14
	TagIA5String       = 0x16
	TagUTCTime         = 0x17
	TagGeneralizedTime = 0x18
	TagGeneralString   = 0x1B
	TagSequence        = 0x30
	TagSet             = 0x31
)

// Node is one entry in the flexi-decoder's tree: every node carries its
// raw tag byte, the class/constructed bits and number decoded out of it,
// the content octets (Payload), the full TLV encoding as it appeared in
// the source buffer (Raw, useful for passing an opaque ANY-typed field
// through unmodified), and — for constructed types — the parsed children.
type Node struct {
	Tag         byte
	Class       int
	Constructed bool
	Number      int
	Payload     []byte
	Raw         []byte
	Children    []*Node
}

func encodeLength(n int) []byte {
	if n < 0x80 {
		return []byte{byte(n)}
	}
	var b []byte
	for x := n; x > 0; x >>= 8 {
		b = append([]byte{byte(x)}, b...)
	}
	return append([]byte{0x80 | byte(len(b))}, b...)
}

// decodeLength parses a DER length field at the start of data, rejecting
// the reserved 0xFF form and any non-minimal long-form encoding.
func decodeLength(data []byte) (length, consumed int, err error) {
	if len(data) == 0 {
		return 0, 0, primerr.New("der.decodeLength", primerr.InvalidPacket, "truncated length")
	}
	first := data[0]
	if first < 0x80 {
		return int(first), 1, nil
	}
	if first == 0xFF {
		return 0, 0, primerr.New("der.decodeLength", primerr.InvalidPacket, "reserved length form 0xFF")
	}
	k := int(first & 0x7F)
	if k == 0 {
		return 0, 0, primerr.New("der.decodeLength", primerr.InvalidPacket, "indefinite length not permitted in DER")
	}
	if len(data) < 1+k {
		return 0, 0, primerr.New("der.decodeLength", primerr.InvalidPacket, "truncated long-form length")
	}
	if data[1] == 0 && k > 1 {
		return 0, 0, primerr.New("der.decodeLength", primerr.InvalidPacket, "non-minimal long-form length")
	}
	n := 0
	for i := 0; i < k; i++ {
		n = n<<8 | int(data[1+i])
	}
	if k == 1 && n < 0x80 {
		return 0, 0, primerr.New("der.decodeLength", primerr.InvalidPacket, "non-minimal long-form length")
	}
	return n, 1 + k, nil
}

func encodeTLV(tag byte, payload []byte) []byte {
	out := append([]byte{tag}, encodeLength(len(payload))...)
	return append(out, payload...)
}

// ParseFlexi decodes exactly one TLV node at the start of data (descending
// into children if it is constructed) and returns it along with whatever
// bytes follow it, mirroring der_flexi_sequence_cmp.c's "parse an unknown
// stream into a tree, then type-check by walking it" approach rather than
// decoding against a fixed template up front.
func ParseFlexi(data []byte) (*Node, []byte, error) {
	if len(data) < 2 {
		return nil, nil, primerr.New("der.ParseFlexi", primerr.InvalidPacket, "truncated TLV header")
	}
	tagByte := data[0]
	length, lenBytes, err := decodeLength(data[1:])
	if err != nil {
		return nil, nil, err
	}
	start := 1 + lenBytes
	if start+length > len(data) {
		return nil, nil, primerr.New("der.ParseFlexi", primerr.InvalidPacket, "truncated content")
	}
	node := &Node{
		Tag:         tagByte,
		Class:       int(tagByte >> 6),
		Constructed: tagByte&0x20 != 0,
		Number:      int(tagByte & 0x1F),
		Payload:     data[start : start+length],
		Raw:         data[:start+length],
	}
	if node.Constructed {
		children, err := parseChildren(node.Payload)
		if err != nil {
			return nil, nil, err
		}
		node.Children = children
	}
	return node, data[start+length:], nil
}

func parseChildren(data []byte) ([]*Node, error) {
	var out []*Node
	for len(data) > 0 {
		n, rest, err := ParseFlexi(data)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
		data = rest
	}
	return out, nil
}

// MatchTags reports whether n is constructed with exactly the given
// sequence of child tags, the flexi-decoder's equivalent of
// der_flexi_sequence_cmp against a template.
func (n *Node) MatchTags(tags ...byte) error {
	if len(n.Children) != len(tags) {
		return primerr.New("der.MatchTags", primerr.InvalidPacket, "expected %d children, got %d", len(tags), len(n.Children))
	}
	for i, want := range tags {
		if n.Children[i].Tag != want {
			return primerr.New("der.MatchTags", primerr.InvalidPacket, "child %d: tag %#x, want %#x", i, n.Children[i].Tag, want)
		}
	}
	return nil
}

// EncodeSequence concatenates already-encoded child TLVs and wraps them in
// a SEQUENCE tag.
func EncodeSequence(children ...[]byte) []byte {
	return encodeTLV(TagSequence, concat(children))
}

// EncodeSet concatenates already-encoded child TLVs and wraps them in a
// SET tag. DER requires SET OF elements sorted by their encoding; callers
// constructing a SET OF are responsible for pre-sorting children since this
// helper has no way to know which sort order (if any) applies to a plain
// SET's heterogeneous members.
func EncodeSet(children ...[]byte) []byte {
	return encodeTLV(TagSet, concat(children))
}

func concat(parts [][]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
