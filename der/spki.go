// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package der

import "github.com/luxfi/primcrypt/primerr"

// AlgorithmIdentifier is SEQUENCE { OID, params ANY }. Params carries the
// already-DER-encoded parameters TLV verbatim (nil means "omit", which
// this package renders as an explicit NULL, the conventional choice for
// algorithms with no parameters such as RSA and Ed25519).
type AlgorithmIdentifier struct {
	OID    []int
	Params []byte
}

// Encode renders the AlgorithmIdentifier as its DER SEQUENCE encoding.
func (a AlgorithmIdentifier) Encode() ([]byte, error) {
	oid, err := EncodeOID(a.OID)
	if err != nil {
		return nil, err
	}
	params := a.Params
	if params == nil {
		params = EncodeNull()
	}
	return EncodeSequence(oid, params), nil
}

func decodeAlgorithmIdentifier(n *Node) (AlgorithmIdentifier, error) {
	if n.Tag != TagSequence || len(n.Children) < 1 {
		return AlgorithmIdentifier{}, primerr.New("der.decodeAlgorithmIdentifier", primerr.InvalidPacket, "malformed AlgorithmIdentifier")
	}
	if n.Children[0].Tag != TagOID {
		return AlgorithmIdentifier{}, primerr.New("der.decodeAlgorithmIdentifier", primerr.InvalidPacket, "AlgorithmIdentifier first field must be an OID")
	}
	oid, err := DecodeOID(n.Children[0].Payload)
	if err != nil {
		return AlgorithmIdentifier{}, err
	}
	var params []byte
	if len(n.Children) > 1 && n.Children[1].Tag != TagNull {
		params = n.Children[1].Raw
	}
	return AlgorithmIdentifier{OID: oid, Params: params}, nil
}

// SubjectPublicKeyInfo is SEQUENCE { AlgorithmIdentifier, BIT STRING
// publicKey }, per spec §4.6.
type SubjectPublicKeyInfo struct {
	Algorithm AlgorithmIdentifier
	PublicKey []byte
}

// EncodeSPKI renders spki as its DER SEQUENCE encoding.
func EncodeSPKI(spki SubjectPublicKeyInfo) ([]byte, error) {
	alg, err := spki.Algorithm.Encode()
	if err != nil {
		return nil, err
	}
	return EncodeSequence(alg, EncodeBitString(spki.PublicKey, 0)), nil
}

// DecodeSPKI parses a standalone SubjectPublicKeyInfo DER blob (as
// der_decode_subject_public_key_info.c does for a bare SPKI, distinct from
// ExtractSPKI's search through a full certificate).
func DecodeSPKI(data []byte) (*SubjectPublicKeyInfo, error) {
	node, rest, err := ParseFlexi(data)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, primerr.New("der.DecodeSPKI", primerr.InvalidPacket, "trailing data after SPKI")
	}
	if node.Tag != TagSequence || len(node.Children) != 2 {
		return nil, primerr.New("der.DecodeSPKI", primerr.InvalidPacket, "malformed SubjectPublicKeyInfo")
	}
	return decodeSPKINode(node)
}

func decodeSPKINode(n *Node) (*SubjectPublicKeyInfo, error) {
	alg, err := decodeAlgorithmIdentifier(n.Children[0])
	if err != nil {
		return nil, err
	}
	if n.Children[1].Tag != TagBitString {
		return nil, primerr.New("der.decodeSPKINode", primerr.InvalidPacket, "SPKI second field must be a BIT STRING")
	}
	pub, _, err := DecodeBitString(n.Children[1].Payload)
	if err != nil {
		return nil, err
	}
	return &SubjectPublicKeyInfo{Algorithm: alg, PublicKey: pub}, nil
}

// ExtractSPKI walks an X.509 certificate's flexi tree until it finds a
// SEQUENCE of exactly two children whose first child is itself a SEQUENCE
// starting with an OBJECT IDENTIFIER and whose second child is a BIT
// STRING — the SubjectPublicKeyInfo subtree — exactly the heuristic spec
// §4.6 describes x509_decode_spki.c using instead of parsing the full
// certificate structure.
func ExtractSPKI(certDER []byte) (*SubjectPublicKeyInfo, error) {
	root, _, err := ParseFlexi(certDER)
	if err != nil {
		return nil, err
	}
	found := findSPKINode(root)
	if found == nil {
		return nil, primerr.New("der.ExtractSPKI", primerr.InvalidPacket, "no SubjectPublicKeyInfo subtree found")
	}
	return decodeSPKINode(found)
}

func findSPKINode(n *Node) *Node {
	if n.Tag == TagSequence && len(n.Children) == 2 {
		c0, c1 := n.Children[0], n.Children[1]
		if c0.Tag == TagSequence && len(c0.Children) >= 1 && c0.Children[0].Tag == TagOID && c1.Tag == TagBitString {
			return n
		}
	}
	for _, c := range n.Children {
		if found := findSPKINode(c); found != nil {
			return found
		}
	}
	return nil
}

// PKCS8PrivateKeyInfo is SEQUENCE { INTEGER version, AlgorithmIdentifier,
// OCTET STRING privateKey [, [0] attributes] }; attributes are not
// round-tripped since no PK scheme in this module's scope consumes them.
type PKCS8PrivateKeyInfo struct {
	Version    int
	Algorithm  AlgorithmIdentifier
	PrivateKey []byte
}

// EncodePKCS8 renders pki as its DER SEQUENCE encoding.
func EncodePKCS8(pki PKCS8PrivateKeyInfo) ([]byte, error) {
	alg, err := pki.Algorithm.Encode()
	if err != nil {
		return nil, err
	}
	ver := encodeTLV(TagInteger, []byte{byte(pki.Version)})
	return EncodeSequence(ver, alg, EncodeOctetString(pki.PrivateKey)), nil
}

// DecodePKCS8 parses a PKCS#8 PrivateKeyInfo DER blob, accepting version 0
// or 1 per spec §4.6.
func DecodePKCS8(data []byte) (*PKCS8PrivateKeyInfo, error) {
	node, rest, err := ParseFlexi(data)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, primerr.New("der.DecodePKCS8", primerr.InvalidPacket, "trailing data after PrivateKeyInfo")
	}
	if node.Tag != TagSequence || len(node.Children) < 3 {
		return nil, primerr.New("der.DecodePKCS8", primerr.InvalidPacket, "malformed PrivateKeyInfo")
	}
	verNode := node.Children[0]
	if verNode.Tag != TagInteger {
		return nil, primerr.New("der.DecodePKCS8", primerr.InvalidPacket, "PrivateKeyInfo first field must be an INTEGER")
	}
	ver, err := DecodeInteger(verNode.Payload)
	if err != nil {
		return nil, err
	}
	v := ver.CmpInt64(0)
	var version int
	switch {
	case v == 0:
		version = 0
	case ver.CmpInt64(1) == 0:
		version = 1
	default:
		return nil, primerr.New("der.DecodePKCS8", primerr.InvalidPacket, "unsupported PrivateKeyInfo version")
	}
	alg, err := decodeAlgorithmIdentifier(node.Children[1])
	if err != nil {
		return nil, err
	}
	keyNode := node.Children[2]
	if keyNode.Tag != TagOctetString {
		return nil, primerr.New("der.DecodePKCS8", primerr.InvalidPacket, "PrivateKeyInfo third field must be an OCTET STRING")
	}
	return &PKCS8PrivateKeyInfo{Version: version, Algorithm: alg, PrivateKey: keyNode.Payload}, nil
}
