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

// Package code defines the numeric status codes shared by fstatus errors,
// the FFI boundary envelope and the gRPC/HTTP adapters.
//
// A code is the top-level, machine-readable classification of an outcome.
// The table is fixed and never reassigned:
//
//	0  OK                   9  FAILED_PRECONDITION
//	1  CANCELLED           10  ABORTED
//	2  UNKNOWN             11  OUT_OF_RANGE
//	3  INVALID_ARGUMENT    12  UNIMPLEMENTED
//	4  DEADLINE_EXCEEDED   13  INTERNAL
//	5  NOT_FOUND           14  UNAVAILABLE
//	6  ALREADY_EXISTS      15  DATA_LOSS
//	7  PERMISSION_DENIED   16  UNAUTHENTICATED
//	8  RESOURCE_EXHAUSTED
//
// The numbering matches google.rpc.Code and google.golang.org/grpc/codes,
// so a Code can cross a wire or C boundary as a plain int32.
//
// IMPORTANT: OK is reserved for "no error". It is a valid Code (and the
// code of a successful boundary Status) but it is never the kind of an
// fstatus.Error.
package code
