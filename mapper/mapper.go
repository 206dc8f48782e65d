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

package mapper

import (
	"fmt"
	"strings"
	"sync"

	"dirpx.dev/fstatus/apis"
	"dirpx.dev/fstatus/code"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance; no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, fallbacks).
//  3. Validate every entry (error kinds only, statuses in range).
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate an option that targets
// code.OK or an undefined code, or a status outside its transport's range.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate.
	if err := b.validate(); err != nil {
		return nil, err
	}

	// (4) Freeze everything into a read-only snapshot.
	m := &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// Must is like New but panics on error. It is meant for package-level
// variables built from constant options.
func Must(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

var defaultMapper = sync.OnceValue(func() apis.Mapper { return Must() })

// Default returns the shared snapshot built from the library defaults only.
func Default() apis.Mapper { return defaultMapper() }

// HTTPStatus resolves c against the default snapshot.
func HTTPStatus(c code.Code) int { return Default().HTTPStatus(c) }

// GRPCStatus resolves c against the default snapshot.
func GRPCStatus(c code.Code) codes.Code { return Default().GRPCStatus(c) }

// mapper is an immutable mapper implementation that combines per-code
// defaults and per-code exact overrides. Lookups are safe for concurrent
// use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given error code.
	httpDefault map[code.Code]int

	// grpcDefault holds the base gRPC status for a given error code.
	grpcDefault map[code.Code]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	// These take precedence over defaults.
	httpOverride map[code.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.Code]codes.Code

	// fallbackHTTP is used when there is no mapping at all for a code.
	// InvalidHTTPStatus unless configured.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a code.
	// codes.Unknown unless configured.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. per-code default (library or user overridden);
//  3. fallback (InvalidHTTPStatus unless configured).
func (m *mapper) HTTPStatus(c code.Code) int {
	_, v := m.resolveHTTP(c)
	return v
}

// GRPCStatus resolves a gRPC status for the given code.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	_, v := m.resolveGRPC(c)
	return v
}

// Status resolves both HTTP and gRPC using the same input.
// This keeps HTTP/GRPC decisions consistent for a single logical error.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular code.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, default, or fallback).
//
// Example output:
//
//	code="UNAVAILABLE"
//	http: source=override -> 502
//	grpc: source=default -> UNAVAILABLE(14)
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", c)

	src, hv := m.resolveHTTP(c)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", src, hv)

	src, gv := m.resolveGRPC(c)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s(%d)", src, grpcName(gv), int(gv))

	return b.String()
}

// resolveHTTP returns the origin ("override", "default", "fallback") and
// the HTTP status chosen for c.
func (m *mapper) resolveHTTP(c code.Code) (source string, v int) {
	if v, ok := m.httpOverride[c]; ok {
		return "override", v
	}
	if v, ok := m.httpDefault[c]; ok {
		return "default", v
	}
	return "fallback", m.fallbackHTTP
}

// resolveGRPC returns the origin ("override", "default", "fallback") and
// the gRPC code chosen for c.
func (m *mapper) resolveGRPC(c code.Code) (source string, v codes.Code) {
	if v, ok := m.grpcOverride[c]; ok {
		return "override", v
	}
	if v, ok := m.grpcDefault[c]; ok {
		return "default", v
	}
	return "fallback", m.fallbackGRPC
}
