// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package der

import (
	"time"

	"github.com/luxfi/primcrypt/primerr"
)

// EncodeBitString encodes a BIT STRING whose content is bits with the
// trailing unusedBits (0-7) least-significant bits of the final octet
// ignored by the reader, per spec §4.6's "leading-unused-bits octet"
// framing.
func EncodeBitString(bits []byte, unusedBits int) []byte {
	payload := append([]byte{byte(unusedBits)}, bits...)
	return encodeTLV(TagBitString, payload)
}

// DecodeBitString splits a BIT STRING's content octets into the data and
// its unused-bit count.
func DecodeBitString(payload []byte) (bits []byte, unusedBits int, err error) {
	if len(payload) == 0 {
		return nil, 0, primerr.New("der.DecodeBitString", primerr.InvalidPacket, "empty BIT STRING content")
	}
	unusedBits = int(payload[0])
	if unusedBits > 7 {
		return nil, 0, primerr.New("der.DecodeBitString", primerr.InvalidPacket, "unused-bit count must be 0-7")
	}
	return payload[1:], unusedBits, nil
}

// EncodeOctetString encodes an OCTET STRING.
func EncodeOctetString(data []byte) []byte { return encodeTLV(TagOctetString, data) }

// EncodeNull encodes the ASN.1 NULL value (a zero-length NULL TLV).
func EncodeNull() []byte { return encodeTLV(TagNull, nil) }

// EncodeBoolean encodes a BOOLEAN; DER requires 0x00 for false and 0xFF
// for true (any other non-zero byte is valid BER but not DER).
func EncodeBoolean(b bool) []byte {
	v := byte(0x00)
	if b {
		v = 0xff
	}
	return encodeTLV(TagBoolean, []byte{v})
}

// DecodeBoolean parses a BOOLEAN's content octet.
func DecodeBoolean(payload []byte) (bool, error) {
	if len(payload) != 1 {
		return false, primerr.New("der.DecodeBoolean", primerr.InvalidPacket, "BOOLEAN content must be one byte")
	}
	return payload[0] != 0, nil
}

func encodeStringTag(tag byte, s string) []byte { return encodeTLV(tag, []byte(s)) }

func EncodePrintableString(s string) []byte { return encodeStringTag(TagPrintableString, s) }
func EncodeIA5String(s string) []byte       { return encodeStringTag(TagIA5String, s) }
func EncodeUTF8String(s string) []byte      { return encodeStringTag(TagUTF8String, s) }
func EncodeTeletexString(s string) []byte   { return encodeStringTag(TagTeletexString, s) }
func EncodeGeneralString(s string) []byte   { return encodeStringTag(TagGeneralString, s) }

// EncodeUTCTime encodes t (truncated to the second, in UTC) as an ASN.1
// UTCTime: YYMMDDHHMMSSZ.
func EncodeUTCTime(t time.Time) []byte {
	return encodeTLV(TagUTCTime, []byte(t.UTC().Format("060102150405Z")))
}

// DecodeUTCTime parses a UTCTime, applying X.509's two-digit-year pivot:
// YY >= 50 means 19YY, otherwise 20YY.
func DecodeUTCTime(payload []byte) (time.Time, error) {
	t, err := time.Parse("060102150405Z", string(payload))
	if err != nil {
		return time.Time{}, primerr.New("der.DecodeUTCTime", primerr.InvalidPacket, "%v", err)
	}
	if t.Year() >= 2050 {
		t = t.AddDate(-100, 0, 0)
	}
	return t, nil
}

// EncodeGeneralizedTime encodes t as ASN.1 GeneralizedTime:
// YYYYMMDDHHMMSSZ.
func EncodeGeneralizedTime(t time.Time) []byte {
	return encodeTLV(TagGeneralizedTime, []byte(t.UTC().Format("20060102150405Z")))
}

// DecodeGeneralizedTime parses a GeneralizedTime, accepting the optional
// fractional-seconds and explicit-offset forms spec §4.6 allows in
// addition to the bare YYYYMMDDHHMMSSZ form.
func DecodeGeneralizedTime(payload []byte) (time.Time, error) {
	layouts := []string{
		"20060102150405Z",
		"20060102150405.999999999Z",
		"20060102150405-0700",
		"20060102150405.999999999-0700",
	}
	var lastErr error
	for _, layout := range layouts {
		if t, err := time.Parse(layout, string(payload)); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, primerr.New("der.DecodeGeneralizedTime", primerr.InvalidPacket, "%v", lastErr)
}
