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

package apis

import (
	"dirpx.dev/fstatus/code"
	"dirpx.dev/fstatus/detail"
)

// CodedError represents an error that is classified into one of the fixed
// error kinds of package code.
//
// Codes are stable and enumerable. They are the primary value that
// higher-level adapters (HTTP, gRPC, FFI) use to decide which status to
// return to the client. Adapters treat code.OK or an undefined code as a
// server-side failure.
type CodedError interface {
	error

	// Code returns the machine-readable error kind.
	Code() code.Code
}

// MessagedError represents an error that carries a human-oriented message
// separate from its Error() text.
type MessagedError interface {
	error

	// Message returns the message, or "" when absent.
	Message() string
}

// DetailedError represents an error that exposes zero or more structured
// details. This is especially useful for validation scenarios where multiple
// fields may fail at once and the caller needs to show *all* of them.
//
// Implementations SHOULD return a slice that the caller may modify freely.
// Returning nil is allowed and simply means "no extra details".
type DetailedError interface {
	error

	// Details returns structured details of the error. May return nil.
	Details() []detail.Detail
}

// CausedError represents an error that exposes its underlying cause in the
// errors.Unwrap style.
type CausedError interface {
	error

	// Unwrap returns the underlying error, if any. May return nil.
	Unwrap() error
}

// StatusError is the full contract of a boundary error: a kind, a message
// and details.
type StatusError interface {
	CodedError
	MessagedError
	DetailedError
}
