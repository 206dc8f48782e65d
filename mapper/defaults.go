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
	"net/http"

	"dirpx.dev/fstatus/code"
	"google.golang.org/grpc/codes"
)

// StatusClientClosedRequest is the non-standard but widely used (nginx)
// status for "client closed request". net/http has no constant for it.
const StatusClientClosedRequest = 499

// InvalidHTTPStatus is returned for codes that have no HTTP mapping
// (code.OK and values outside the defined range). It is not a valid HTTP
// status, so callers can detect the fallback.
const InvalidHTTPStatus = 0

// defaultHTTP defines the library's built-in HTTP mappings for every error
// kind. These are only defaults: callers may override them at the boundary
// where HTTP is actually produced (REST gateway, HTTP handler, etc.).
var defaultHTTP = map[code.Code]int{
	// 4xx: the caller must change something.
	code.Cancelled:          StatusClientClosedRequest,  // Caller gave up; integrators may switch to 408.
	code.InvalidArgument:    http.StatusBadRequest,      // Malformed input, validation errors.
	code.FailedPrecondition: http.StatusBadRequest,      // System is not in the required state.
	code.OutOfRange:         http.StatusBadRequest,      // Past the valid range.
	code.Unauthenticated:    http.StatusUnauthorized,    // No or invalid credentials.
	code.PermissionDenied:   http.StatusForbidden,       // Authenticated but not allowed.
	code.NotFound:           http.StatusNotFound,        // Target does not exist (or is not visible).
	code.AlreadyExists:      http.StatusConflict,        // Creation clash.
	code.Aborted:            http.StatusConflict,        // Concurrency conflict.
	code.ResourceExhausted:  http.StatusTooManyRequests, // Quota or rate limit.

	// 5xx: server side or dependency issues.
	code.Unknown:          http.StatusInternalServerError, // Unclassified failure.
	code.Internal:         http.StatusInternalServerError, // Broken invariant; do not expose internals.
	code.DataLoss:         http.StatusInternalServerError, // Unrecoverable corruption.
	code.Unimplemented:    http.StatusNotImplemented,      // Operation not supported.
	code.Unavailable:      http.StatusServiceUnavailable,  // Temporarily unreachable; safe to retry.
	code.DeadlineExceeded: http.StatusGatewayTimeout,      // Time budget exceeded.
}

// defaultGRPC maps every error kind to the gRPC code with the same number.
var defaultGRPC = func() map[code.Code]codes.Code {
	m := make(map[code.Code]codes.Code, code.Max)
	for _, c := range code.Values() {
		m[c] = codes.Code(c)
	}
	return m
}()
