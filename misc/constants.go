// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package misc

import "github.com/luxfi/primcrypt/primerr"

// ErrorString renders a primerr.Kind as its human-readable name, the role
// crypt_constants.c's error-to-string table plays in the original: every
// *primerr.Error already stringifies itself via Kind.String, so this is a
// thin convenience for callers that only have the bare Kind.
func ErrorString(k primerr.Kind) string { return k.String() }

// BuildInfo is the fixed set of compile-time facts spec §9's
// crypt_constants.c-equivalent query exposes: which optional accelerators
// and math backend this build carries. This module has no build-time
// feature macros (spec's own non-goal), so every field is a constant.
type BuildInfo struct {
	MPIBackend string
}

// Info returns this build's fixed BuildInfo.
func Info() BuildInfo {
	return BuildInfo{MPIBackend: "saferith"}
}
