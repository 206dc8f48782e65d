/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package mapper provides deterministic, immutable mappings from fstatus
// error kinds (dirpx.dev/fstatus/code) to transport-level statuses for HTTP
// and gRPC.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the Code;
//  2. per-Code default (library or user-adjusted);
//  3. fallback (InvalidHTTPStatus / codes.Unknown).
//
// Only code.OK and values outside 1..16 reach the fallback with the library
// defaults, since every error kind has a default on both transports.
//
// # Library defaults
//
// gRPC codes are identical to fstatus codes. HTTP follows the usual
// gRPC-gateway conventions: INVALID_ARGUMENT, FAILED_PRECONDITION and
// OUT_OF_RANGE map to 400, CANCELLED to 499 (nginx "client closed request"),
// UNAVAILABLE to 503, and so on. See defaults.go for the full table.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.Cancelled, http.StatusRequestTimeout),
//	)
//	if err != nil {
//	    // option targets OK, status out of range, etc.
//	}
//
//	st := m.Status(code.Unavailable)
//	// st.HTTP == 503, st.GRPC == codes.Unavailable
//
// Default returns a shared snapshot with no options applied.
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// which tier resolved a code. It is intended for inspection and logging,
// not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes. This makes it safe to share a
// single instance across handlers, goroutines, and requests.
package mapper
