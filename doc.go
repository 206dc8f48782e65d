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

// Package fstatus is the error model shared by Go code that is exposed to a
// foreign, C-ABI-only caller.
//
// An *Error pairs exactly one kind (a non-OK code.Code) with an
// ErrorStatus: an optional human message plus an ordered list of structured
// details (bad-request field violations, debug info, localized messages).
//
//	err := fstatus.InvalidArgumentFieldName("email", "must contain '@'")
//	err.Error()        // "INVALID_ARGUMENT"
//	err.Code()         // code.InvalidArgument (3)
//	err.Inner().Details // [BAD_REQUEST]
//
// Error() renders the kind's machine-readable name, not the message;
// callers that need the human text read Message() or Inner().Message.
//
// Values are immutable: every With* method returns a new *Error and never
// mutates the receiver or a details slice it shares.
//
// Internal code passes *Error values around as-is. Only at a boundary is an
// error flattened: into an ffi.Status (code + message), a gRPC status
// (package grpcx) or an HTTP response (package httpx). The minimal boundary
// forms drop details unless the richer variants are requested explicitly.
package fstatus
