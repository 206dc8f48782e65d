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
	"dirpx.dev/fstatus/detail"
	"dirpx.dev/fstatus/field"
)

// Option is a functional option for constructing or transforming an Error.
// It always takes an *Error and returns a (possibly new) *Error.
type Option func(*Error) *Error

// WithErrorOption attaches a source error as DebugInfo on construction.
// Intended to be used with New(...).
func WithErrorOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithError(err)
	}
}

// WithDetailsOption appends details on construction.
// Intended to be used with New(...).
func WithDetailsOption(ds ...detail.Detail) Option {
	return func(e *Error) *Error {
		return e.WithDetails(ds...)
	}
}

// WithFieldViolationOption appends a single-violation BadRequest on
// construction.
func WithFieldViolationOption(f field.Field, description string) Option {
	return func(e *Error) *Error {
		return e.WithDetails(detail.NewBadRequest(detail.ForField(f, &description)))
	}
}

// WithLocalizedMessageOption appends a LocalizedMessage on construction.
func WithLocalizedMessageOption(locale, message string) Option {
	return func(e *Error) *Error {
		return e.WithDetails(detail.NewLocalizedMessage(locale, message))
	}
}
