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

package fstatus

import (
	"errors"

	"dirpx.dev/fstatus/code"
	"dirpx.dev/fstatus/detail"
)

// ErrorStatus is the payload carried by every error kind.
//
// The zero value has no message and no details.
type ErrorStatus struct {
	// Message is the human-oriented description. Nil when absent.
	Message *string

	// Details is the ordered list of structured records. Appending never
	// replaces existing entries.
	Details []detail.Detail
}

// WithMessage returns a copy of s with the message replaced.
func (s ErrorStatus) WithMessage(msg *string) ErrorStatus {
	return ErrorStatus{Message: cloneString(msg), Details: s.Details}
}

// WithDetails returns a copy of s with ds appended to the details.
//
// The details slice is always copied, so statuses derived from the same
// parent never observe each other's appends.
func (s ErrorStatus) WithDetails(ds ...detail.Detail) ErrorStatus {
	if len(ds) == 0 {
		return s
	}
	out := make([]detail.Detail, 0, len(s.Details)+len(ds))
	out = append(out, s.Details...)
	out = append(out, ds...)
	return ErrorStatus{Message: s.Message, Details: out}
}

// WithError returns a copy of s with a DebugInfo detail holding the
// rendered text of err. A nil err leaves s unchanged.
func (s ErrorStatus) WithError(err error) ErrorStatus {
	if err == nil {
		return s
	}
	return s.WithDetails(detail.NewDebugInfo(err.Error()))
}

// Text returns the message, or "" when absent.
func (s ErrorStatus) Text() string {
	if s.Message == nil {
		return ""
	}
	return *s.Message
}

// clone returns a deep enough copy for handing out: the details slice is
// fresh, the detail values themselves are immutable.
func (s ErrorStatus) clone() ErrorStatus {
	out := ErrorStatus{Message: cloneString(s.Message)}
	if s.Details != nil {
		out.Details = append(make([]detail.Detail, 0, len(s.Details)), s.Details...)
	}
	return out
}

// Error is the canonical error type: one kind plus its ErrorStatus.
//
// Construct it with the per-kind constructors (NotFound, Internal, ...),
// New or FromCode. The zero value is not a valid Error. Every method is
// safe on a nil *Error, which reads as code.OK with no message.
type Error struct {
	kind   code.Code
	status ErrorStatus

	// cause is kept for errors.Is / errors.As; only its rendered text is
	// part of the status.
	cause error
}

// Error implements the built-in error interface.
//
// It returns the kind's name, e.g. "INTERNAL". The message is deliberately
// not included; see Message.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.kind.String()
}

// Code returns the fixed numeric code of the error's kind.
func (e *Error) Code() code.Code {
	if e == nil {
		return code.OK
	}
	return e.kind
}

// Kind is an alias of Code.
func (e *Error) Kind() code.Code { return e.Code() }

// Message returns the status message, or "" when absent.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.status.Text()
}

// Inner returns a copy of the ErrorStatus, discarding the kind.
//
// This is lossy: use it only where the kind is no longer needed.
func (e *Error) Inner() ErrorStatus {
	if e == nil {
		return ErrorStatus{}
	}
	return e.status.clone()
}

// Details returns a copy of the status details.
func (e *Error) Details() []detail.Detail {
	if e == nil {
		return nil
	}
	return e.status.clone().Details
}

// Unwrap returns the source error attached with WithError, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, fstatus.NotFound(nil)) matches any NotFound.
func (e *Error) Is(target error) bool {
	var t *Error
	if e == nil || !errors.As(target, &t) || t == nil {
		return false
	}
	return e.kind == t.kind
}

// WithError returns a new Error of the same kind with a DebugInfo detail
// built from source.Error() appended. A nil source or receiver returns e
// unchanged.
func (e *Error) WithError(source error) *Error {
	if e == nil || source == nil {
		return e
	}
	return &Error{kind: e.kind, status: e.status.WithError(source), cause: source}
}

// WithDetails returns a new Error of the same kind with ds appended.
func (e *Error) WithDetails(ds ...detail.Detail) *Error {
	if e == nil {
		return nil
	}
	return &Error{kind: e.kind, status: e.status.WithDetails(ds...), cause: e.cause}
}

// WithMessage returns a new Error of the same kind with the message
// replaced.
func (e *Error) WithMessage(msg *string) *Error {
	if e == nil {
		return nil
	}
	return &Error{kind: e.kind, status: e.status.WithMessage(msg), cause: e.cause}
}

// Msg is a convenience for building the optional message argument of the
// constructors: fstatus.NotFound(fstatus.Msg("no such user")).
func Msg(s string) *string { return &s }

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
