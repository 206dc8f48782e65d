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
	"context"
	"errors"

	"dirpx.dev/fstatus/code"
)

// FromCode rebuilds an Error from a numeric code and message, as received
// from a minimal wire status. Details are not part of that form and are not
// reconstructed.
//
// Code OK cannot be represented as a failure: FromCode returns a nil *Error
// and an InvalidArgument error. Codes outside 0..16 map to Unknown with the
// message preserved.
func FromCode(c code.Code, message string) (*Error, error) {
	switch {
	case c == code.OK:
		return nil, InvalidArgument(Msg("cannot convert OK status to Error"))
	case !c.IsError():
		return newError(code.Unknown, &message), nil
	default:
		return newError(c, &message), nil
	}
}

// New is a convenience constructor that resolves kind via FromCode and
// applies opts in order.
//
// New never panics: an OK kind yields the InvalidArgument error FromCode
// reports, an undefined kind yields Unknown.
//
//	return fstatus.New(code.Unavailable, "storage is down",
//	    fstatus.WithErrorOption(err),
//	)
func New(kind code.Code, message string, opts ...Option) *Error {
	e, err := FromCode(kind, message)
	if err != nil {
		e = err.(*Error)
	}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// KindOf returns code.OK for a nil error or nil *Error, the kind of the
// first *Error in err's chain, the matching kind for context errors, and
// code.Unknown for anything else.
func KindOf(err error) code.Code {
	return Convert(err).Code()
}

// isNil reports whether err is nil or a nil *Error.
func isNil(err error) bool {
	if err == nil {
		return true
	}
	e, ok := err.(*Error)
	return ok && e == nil
}

// Convert returns err as an *Error.
//
// A nil err, or an err holding a nil *Error, yields nil. An *Error
// anywhere in the chain is returned as-is.
// context.Canceled and context.DeadlineExceeded become Cancelled and
// DeadlineExceeded; any other error becomes Unknown. In the latter cases the
// original error's text is kept as the message and as a DebugInfo detail.
func Convert(err error) *Error {
	if isNil(err) {
		return nil
	}
	if e, ok := As(err); ok {
		return e
	}
	if e := FromContextError(err); e != nil {
		return e
	}
	return newError(code.Unknown, Msg(err.Error())).WithError(err)
}

// FromContextError maps context.Canceled to Cancelled and
// context.DeadlineExceeded to DeadlineExceeded. It returns nil for a nil err
// and for errors that are not context errors.
func FromContextError(err error) *Error {
	switch {
	case isNil(err):
		return nil
	case errors.Is(err, context.Canceled):
		return newError(code.Cancelled, Msg(err.Error())).WithError(err)
	case errors.Is(err, context.DeadlineExceeded):
		return newError(code.DeadlineExceeded, Msg(err.Error())).WithError(err)
	default:
		return nil
	}
}
