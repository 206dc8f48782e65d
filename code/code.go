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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"strconv"
	"strings"
)

// Code is the canonical numeric status code.
//
// It is a distinct type (not just int32) so that packages declare
// explicitly where a status code is expected, while still having the exact
// width used by the C ABI and by google.rpc.Status.
type Code int32

const (
	// OK is returned on success. Not an error.
	OK Code = 0

	// Cancelled indicates the operation was cancelled, typically by the caller.
	//
	// Can be mapped to an HTTP 499 (client closed request).
	Cancelled Code = 1

	// Unknown indicates an error whose class could not be determined, for
	// example a status received from another address space that uses an
	// error space unknown to this one.
	//
	// Can be mapped to an HTTP 500.
	Unknown Code = 2

	// InvalidArgument indicates the client specified an invalid argument,
	// independent of the state of the system (malformed name, bad field).
	// Not safe to retry without changing the input.
	//
	// Can be mapped to an HTTP 400.
	InvalidArgument Code = 3

	// DeadlineExceeded indicates the deadline expired before the operation
	// could complete. The operation may still have completed successfully.
	//
	// Can be mapped to an HTTP 504.
	DeadlineExceeded Code = 4

	// NotFound indicates some requested entity was not found.
	//
	// Can be mapped to an HTTP 404.
	NotFound Code = 5

	// AlreadyExists indicates the entity a client attempted to create
	// already exists.
	//
	// Can be mapped to an HTTP 409.
	AlreadyExists Code = 6

	// PermissionDenied indicates the caller is identified but does not have
	// permission to execute the operation.
	//
	// Can be mapped to an HTTP 403.
	PermissionDenied Code = 7

	// ResourceExhausted indicates some resource has been exhausted, perhaps a
	// per-user quota or the entire file system.
	//
	// Can be mapped to an HTTP 429.
	ResourceExhausted Code = 8

	// FailedPrecondition indicates the system is not in a state required for
	// the operation. Not safe to retry until the state has been fixed.
	//
	// Can be mapped to an HTTP 400.
	FailedPrecondition Code = 9

	// Aborted indicates the operation was aborted, typically due to a
	// concurrency issue such as a sequencer check failure or a transaction
	// abort. Safe to retry at a higher level.
	//
	// Can be mapped to an HTTP 409.
	Aborted Code = 10

	// OutOfRange indicates the operation was attempted past the valid range,
	// e.g. seeking or reading past end-of-file.
	//
	// Can be mapped to an HTTP 400.
	OutOfRange Code = 11

	// Unimplemented indicates the operation is not implemented or not
	// supported/enabled in this service.
	//
	// Can be mapped to an HTTP 501.
	Unimplemented Code = 12

	// Internal indicates that some invariant expected by the underlying
	// system has been broken. Reserved for serious errors.
	//
	// Can be mapped to an HTTP 500.
	Internal Code = 13

	// Unavailable indicates the service is currently unavailable. This is
	// most likely a transient condition, safe to retry with a backoff.
	//
	// Can be mapped to an HTTP 503.
	Unavailable Code = 14

	// DataLoss indicates unrecoverable data loss or corruption.
	//
	// Can be mapped to an HTTP 500.
	DataLoss Code = 15

	// Unauthenticated indicates the request does not have valid
	// authentication credentials for the operation.
	//
	// Can be mapped to an HTTP 401.
	Unauthenticated Code = 16
)

// Max is the highest defined code.
const Max = Unauthenticated

var (
	// ErrCodeInvalid is returned when a value cannot be parsed or validated
	// as a fstatus code.
	ErrCodeInvalid = errors.New("fstatus: invalid code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into config files and API structs by name.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// names holds the machine-readable SCREAMING_SNAKE_CASE name of each code,
// indexed by its numeric value.
var names = [...]string{
	OK:                 "OK",
	Cancelled:          "CANCELLED",
	Unknown:            "UNKNOWN",
	InvalidArgument:    "INVALID_ARGUMENT",
	DeadlineExceeded:   "DEADLINE_EXCEEDED",
	NotFound:           "NOT_FOUND",
	AlreadyExists:      "ALREADY_EXISTS",
	PermissionDenied:   "PERMISSION_DENIED",
	ResourceExhausted:  "RESOURCE_EXHAUSTED",
	FailedPrecondition: "FAILED_PRECONDITION",
	Aborted:            "ABORTED",
	OutOfRange:         "OUT_OF_RANGE",
	Unimplemented:      "UNIMPLEMENTED",
	Internal:           "INTERNAL",
	Unavailable:        "UNAVAILABLE",
	DataLoss:           "DATA_LOSS",
	Unauthenticated:    "UNAUTHENTICATED",
}

// byName is the reverse of names, built once at init.
var byName = func() map[string]Code {
	m := make(map[string]Code, len(names))
	for i, n := range names {
		m[n] = Code(i)
	}
	return m
}()

// Values returns the sixteen error codes (everything except OK) in numeric
// order. The returned slice is a fresh copy.
func Values() []Code {
	out := make([]Code, 0, int(Max))
	for c := Cancelled; c <= Max; c++ {
		out = append(out, c)
	}
	return out
}

// Parse takes a user-provided string, normalizes it and resolves it to a
// Code. Both names ("not-found", "NOT_FOUND") and decimal values ("5") are
// accepted.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if c, ok := byName[s]; ok {
		return c, nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return OK, ErrCodeInvalid
	}
	c := Code(n)
	if err := Validate(c); err != nil {
		return OK, err
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level values in var blocks and tests.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize brings an arbitrary string closer to the canonical name form:
// it trims surrounding spaces, upper-cases the value and replaces '-' and
// inner spaces with '_'.
//
// It does NOT guarantee that the result is a known name.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// Validate checks whether c is one of the defined codes (0..16).
func Validate(c Code) error {
	if c < OK || c > Max {
		return ErrCodeInvalid
	}
	return nil
}

// IsError reports whether c is one of the sixteen error codes.
func (c Code) IsError() bool {
	return c > OK && c <= Max
}

// Retryable reports whether a failure with this code is documented as safe
// for the caller to retry as-is. Enforcement is the caller's job.
func (c Code) Retryable() bool {
	switch c {
	case Unavailable, Aborted:
		return true
	default:
		return false
	}
}

// RequiresChange reports whether a failure with this code must not be
// retried until the caller changes its input or the system state.
func (c Code) RequiresChange() bool {
	switch c {
	case InvalidArgument, FailedPrecondition, OutOfRange:
		return true
	default:
		return false
	}
}

// String returns the canonical name of the code, e.g. "NOT_FOUND".
// Undefined values render as "CODE(n)".
func (c Code) String() string {
	if Validate(c) != nil {
		return "CODE(" + strconv.FormatInt(int64(c), 10) + ")"
	}
	return names[c]
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical name.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(names[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
