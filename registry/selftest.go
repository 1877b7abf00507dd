// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import "strings"

// TestResult names one self-test invocation and its outcome.
type TestResult struct {
	Kind string // "cipher", "hash", or "prng"
	Name string
	Err  error
}

// VariableOutputHash is implemented by hash descriptors whose digest length
// is not fixed (SHAKE128/SHAKE256). SelfTestVariable lets the dispatcher
// exercise more than one output length explicitly, per spec §4.1's "SHA-3
// SHAKE is tested explicitly because its output is variable-length".
type VariableOutputHash interface {
	Hash
	SelfTestVariable(outLen int) error
}

// RunSelfTests iterates every live table and invokes each descriptor's
// SelfTest, tallying the results the way cipher_hash_test dispatches across
// the whole registry in the reference implementation.
func RunSelfTests() []TestResult {
	var results []TestResult

	for _, c := range AllCiphers() {
		results = append(results, TestResult{Kind: "cipher", Name: c.Name(), Err: c.SelfTest()})
	}

	for _, h := range AllHashes() {
		if v, ok := h.(VariableOutputHash); ok && strings.Contains(strings.ToUpper(h.Name()), "SHAKE") {
			results = append(results,
				TestResult{Kind: "hash", Name: h.Name() + "/32", Err: v.SelfTestVariable(32)},
				TestResult{Kind: "hash", Name: h.Name() + "/64", Err: v.SelfTestVariable(64)},
			)
			continue
		}
		results = append(results, TestResult{Kind: "hash", Name: h.Name(), Err: h.SelfTest()})
	}

	for _, p := range AllPRNGs() {
		results = append(results, TestResult{Kind: "prng", Name: p.Name(), Err: p.New().SelfTest()})
	}

	return results
}

// AllPassed reports whether every result in results succeeded.
func AllPassed(results []TestResult) bool {
	for _, r := range results {
		if r.Err != nil {
			return false
		}
	}
	return true
}
