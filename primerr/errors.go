// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package primerr is the closed error taxonomy every entry point in this
// module returns through (spec §7). It replaces the teacher's EVM-specific
// (ret, remainingGas, err) triple with plain Go errors: every operation
// validates its arguments and returns an error value, never panics, and
// never writes to stdout/stderr.
package primerr

import "fmt"

// Kind is the closed set of error categories spec §7 defines.
type Kind int

const (
	OK Kind = iota
	NOP
	ErrGeneric
	BufferOverflow
	InvalidPacket
	InvalidArg
	InvalidKeysize
	InvalidRounds
	InvalidCipher
	InvalidHash
	InvalidPRNG
	Mem
	PKTypeMismatch
	PKNotPrivate
	PKInvalidType
	PKInvalidSize
	FailTestVector
	Overflow
	ErrorReadPRNG
	InputTooLong
)

var kindNames = [...]string{
	OK:             "CRYPT_OK",
	NOP:            "CRYPT_NOP",
	ErrGeneric:     "CRYPT_ERROR",
	BufferOverflow: "CRYPT_BUFFER_OVERFLOW",
	InvalidPacket:  "CRYPT_INVALID_PACKET",
	InvalidArg:     "CRYPT_INVALID_ARG",
	InvalidKeysize: "CRYPT_INVALID_KEYSIZE",
	InvalidRounds:  "CRYPT_INVALID_ROUNDS",
	InvalidCipher:  "CRYPT_INVALID_CIPHER",
	InvalidHash:    "CRYPT_INVALID_HASH",
	InvalidPRNG:    "CRYPT_INVALID_PRNG",
	Mem:            "CRYPT_MEM",
	PKTypeMismatch: "CRYPT_PK_TYPE_MISMATCH",
	PKNotPrivate:   "CRYPT_PK_NOT_PRIVATE",
	PKInvalidType:  "CRYPT_PK_INVALID_TYPE",
	PKInvalidSize:  "CRYPT_PK_INVALID_SIZE",
	FailTestVector: "CRYPT_FAIL_TESTVECTOR",
	Overflow:       "CRYPT_OVERFLOW",
	ErrorReadPRNG:  "CRYPT_ERROR_READPRNG",
	InputTooLong:   "CRYPT_INPUT_TOO_LONG",
}

// String implements fmt.Stringer, and is what error_to_string (spec §6)
// becomes in idiomatic Go: a method on the type, rather than a free function
// keyed off an integer.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) || kindNames[k] == "" {
		return "CRYPT_UNKNOWN"
	}
	return kindNames[k]
}

// Error wraps a Kind with operation context. Every package in this module
// returns *Error (or nil) rather than a bare Kind, so callers get both the
// closed taxonomy (for programmatic dispatch via errors.Is against the
// sentinel below) and a human-readable message.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

// New constructs an *Error for op failing with kind, with an optional
// formatted message.
func New(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether target is an *Error of the same Kind, so callers can
// write errors.Is(err, primerr.Sentinel(primerr.InvalidArg)).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel returns a comparable *Error carrying only a Kind, for use with
// errors.Is. This generalizes the teacher's package-level sentinel style
// (errInvalidInput, errInvalidMode in pqcrypto/contract.go) into the one
// taxonomy every package shares.
func Sentinel(k Kind) *Error {
	return &Error{Kind: k}
}

// KindOf extracts the Kind from err, returning ErrGeneric if err is not a
// *Error produced by this package.
func KindOf(err error) Kind {
	if err == nil {
		return OK
	}
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return ErrGeneric
}
