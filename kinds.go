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
	"dirpx.dev/fstatus/code"
	"dirpx.dev/fstatus/detail"
	"dirpx.dev/fstatus/field"
)

func newError(k code.Code, msg *string) *Error {
	return &Error{kind: k, status: ErrorStatus{Message: cloneString(msg)}}
}

// Cancelled returns an error for an operation cancelled, typically by the
// caller.
func Cancelled(msg *string) *Error { return newError(code.Cancelled, msg) }

// Unknown returns an error whose class could not be determined.
func Unknown(msg *string) *Error { return newError(code.Unknown, msg) }

// InvalidArgument returns an error for a client-specified invalid argument.
func InvalidArgument(msg *string) *Error { return newError(code.InvalidArgument, msg) }

// InvalidArgumentField returns an InvalidArgument error whose status holds a
// BadRequest detail for the top-level member name.
func InvalidArgumentField(msg *string, name string, description *string) *Error {
	return newError(code.InvalidArgument, msg).
		WithDetails(detail.NewBadRequest(detail.ForMember(name, cloneString(description))))
}

// InvalidArgumentFieldName is InvalidArgumentField without a message.
func InvalidArgumentFieldName(name, description string) *Error {
	return InvalidArgumentField(nil, name, &description)
}

// InvalidField returns an InvalidArgument error with a message and a
// BadRequest detail for the (possibly nested) field f.
func InvalidField(f field.Field, message, description string) *Error {
	return newError(code.InvalidArgument, &message).
		WithDetails(detail.NewBadRequest(detail.ForField(f, &description)))
}

// DeadlineExceeded returns an error for a deadline that expired before the
// operation could complete.
func DeadlineExceeded(msg *string) *Error { return newError(code.DeadlineExceeded, msg) }

// NotFound returns an error for a requested entity that was not found.
func NotFound(msg *string) *Error { return newError(code.NotFound, msg) }

// AlreadyExists returns an error for an entity that already exists.
func AlreadyExists(msg *string) *Error { return newError(code.AlreadyExists, msg) }

// PermissionDenied returns an error for a caller without permission.
func PermissionDenied(msg *string) *Error { return newError(code.PermissionDenied, msg) }

// Unauthenticated returns an error for a request without valid credentials.
func Unauthenticated(msg *string) *Error { return newError(code.Unauthenticated, msg) }

// ResourceExhausted returns an error for an exhausted resource or quota.
func ResourceExhausted(msg *string) *Error { return newError(code.ResourceExhausted, msg) }

// FailedPrecondition returns an error for a system not in the state
// required by the operation.
func FailedPrecondition(msg *string) *Error { return newError(code.FailedPrecondition, msg) }

// Aborted returns an error for an operation aborted by a concurrency
// conflict.
func Aborted(msg *string) *Error { return newError(code.Aborted, msg) }

// OutOfRange returns an error for an operation attempted past the valid
// range.
func OutOfRange(msg *string) *Error { return newError(code.OutOfRange, msg) }

// Unimplemented returns an error for an operation that is not implemented.
func Unimplemented(msg *string) *Error { return newError(code.Unimplemented, msg) }

// Internal returns an error for a broken internal invariant.
func Internal(msg *string) *Error { return newError(code.Internal, msg) }

// Unavailable returns an error for a service that is currently unavailable.
func Unavailable(msg *string) *Error { return newError(code.Unavailable, msg) }

// DataLoss returns an error for unrecoverable data loss or corruption.
func DataLoss(msg *string) *Error { return newError(code.DataLoss, msg) }
