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

package ffi

/*
#cgo CFLAGS: -I${SRCDIR}
#include "fstatus.h"
*/
import "C"

import (
	"bytes"
	"strings"
	"unsafe"

	"go.uber.org/zap"

	"dirpx.dev/fstatus"
	"dirpx.dev/fstatus/code"
)

// OwnedVec is a byte buffer allocated with the C allocator. Its layout is
// FStatus_OwnedVec.
//
// The zero value is the empty buffer: a null pointer and length 0.
type OwnedVec struct {
	data *byte
	len  uintptr
}

// NewOwnedVec copies b into a fresh C allocation. An empty b yields the
// zero OwnedVec.
func NewOwnedVec(b []byte) OwnedVec {
	if len(b) == 0 {
		return OwnedVec{}
	}
	p := C.malloc(C.size_t(len(b)))
	if p == nil {
		Logger().Error("ffi: malloc failed", zap.Int("len", len(b)))
		return OwnedVec{}
	}
	copy(unsafe.Slice((*byte)(p), len(b)), b)
	return OwnedVec{data: (*byte)(p), len: uintptr(len(b))}
}

// Len returns the buffer length in bytes.
func (v OwnedVec) Len() int { return int(v.len) }

// IsNull reports whether the buffer holds no allocation.
func (v OwnedVec) IsNull() bool { return v.data == nil }

// Bytes returns a Go copy of the buffer contents.
func (v OwnedVec) Bytes() []byte {
	if v.data == nil {
		return nil
	}
	return bytes.Clone(unsafe.Slice(v.data, v.len))
}

// Take returns the buffer and zeroes v.
func (v *OwnedVec) Take() OwnedVec {
	out := *v
	*v = OwnedVec{}
	return out
}

// Release frees the buffer and zeroes v.
func (v *OwnedVec) Release() {
	Logger().Debug("OwnedVec.Release", zap.Bool("data.is_null", v.data == nil))
	if v.data != nil {
		C.free(unsafe.Pointer(v.data))
	}
	*v = OwnedVec{}
}

// ReferencedVec is a byte buffer borrowed from the caller. Its layout is
// FStatus_ReferencedVec. It is never released by this package.
type ReferencedVec struct {
	data *byte
	len  uintptr
}

// Borrow returns a ReferencedVec over b. The caller keeps b alive and
// unmodified for as long as the ReferencedVec is in use.
func Borrow(b []byte) ReferencedVec {
	if len(b) == 0 {
		return ReferencedVec{}
	}
	return ReferencedVec{data: &b[0], len: uintptr(len(b))}
}

// Len returns the buffer length in bytes.
func (r ReferencedVec) Len() int { return int(r.len) }

// IsNull reports whether the buffer points nowhere.
func (r ReferencedVec) IsNull() bool { return r.data == nil }

// Bytes returns a Go copy of the buffer contents. Copy before returning to
// the caller if the data must outlive the call.
func (r ReferencedVec) Bytes() []byte {
	if r.data == nil {
		return nil
	}
	return bytes.Clone(unsafe.Slice(r.data, r.len))
}

// String is a NUL-terminated string allocated with the C allocator. Its
// layout is FStatus_String. The zero value is the absent string.
type String struct {
	bytes *C.char
}

// NewString copies s into a fresh C allocation.
//
// C strings cannot contain NUL. If s does, NewString logs an error event
// and returns the absent string instead of failing.
func NewString(s string) String {
	if i := strings.IndexByte(s, 0); i >= 0 {
		Logger().Error("ffi: string contains NUL byte, using absent value",
			zap.Int("nul.index", i), zap.Int("len", len(s)))
		return String{}
	}
	return String{bytes: C.CString(s)}
}

// IsNull reports whether the string is absent.
func (s String) IsNull() bool { return s.bytes == nil }

// Get returns a Go copy of the string, and false when it is absent.
func (s String) Get() (string, bool) {
	if s.bytes == nil {
		return "", false
	}
	return C.GoString(s.bytes), true
}

// Take returns the string and zeroes s.
func (s *String) Take() String {
	out := *s
	*s = String{}
	return out
}

// Release frees the string and zeroes s.
func (s *String) Release() {
	Logger().Debug("String.Release", zap.Bool("bytes.is_null", s.bytes == nil))
	if s.bytes != nil {
		C.free(unsafe.Pointer(s.bytes))
	}
	*s = String{}
}

// Status is the outcome of an operation. Its layout is FStatus_Status.
type Status struct {
	code    int32
	message String
}

// OK returns the success status: code 0 and an absent message.
func OK() Status { return Status{} }

// StatusFromError flattens e into a Status carrying its code and message.
// Details do not cross the boundary. A nil e yields OK().
func StatusFromError(e *fstatus.Error) Status {
	if e == nil {
		return OK()
	}
	st := Status{code: int32(e.Code())}
	if msg := e.Inner().Message; msg != nil {
		st.message = NewString(*msg)
	}
	return st
}

// Code returns the status code.
func (s Status) Code() code.Code { return code.Code(s.code) }

// IsOK reports whether the status is a success.
func (s Status) IsOK() bool { return s.code == int32(code.OK) }

// Message returns the message, and false when it is absent.
func (s Status) Message() (string, bool) { return s.message.Get() }

// SetMessage replaces the message, releasing the previous one.
func (s *Status) SetMessage(msg string) {
	s.message.Release()
	s.message = NewString(msg)
}

// Err rebuilds the error carried by s, or nil for a success.
// Codes outside the defined range are reported as UNKNOWN.
func (s Status) Err() *fstatus.Error {
	if s.IsOK() {
		return nil
	}
	msg, ok := s.message.Get()
	e, _ := fstatus.FromCode(s.Code(), msg)
	if !ok {
		e = e.WithMessage(nil)
	}
	return e
}

// Take returns the status and zeroes s.
func (s *Status) Take() Status {
	out := *s
	*s = Status{}
	return out
}

// Release frees the message and zeroes s.
func (s *Status) Release() {
	s.message.Release()
	*s = Status{}
}

// Result is the response bytes and status of an operation. Its layout is
// FStatus_Result.
type Result struct {
	response OwnedVec
	status   Status
}

// NewResult returns a successful Result holding a C copy of b.
func NewResult(b []byte) Result {
	return Result{response: NewOwnedVec(b), status: OK()}
}

// ResultFromError returns a failed Result with an empty response.
func ResultFromError(e *fstatus.Error) Result {
	return Result{status: StatusFromError(e)}
}

// ResultOf returns ResultFromError(fstatus.Convert(err)) when err converts
// to a failure, and NewResult(b) otherwise. A nil *fstatus.Error counts as
// success.
func ResultOf(b []byte, err error) Result {
	if e := fstatus.Convert(err); e != nil {
		return ResultFromError(e)
	}
	return NewResult(b)
}

// Status returns the status. The returned value aliases r's message; do
// not release it separately.
func (r Result) Status() Status { return r.status }

// Err returns the error carried by the status, or nil for a success.
func (r Result) Err() *fstatus.Error { return r.status.Err() }

// Response returns a Go copy of the response bytes.
func (r Result) Response() []byte { return r.response.Bytes() }

// TakeResponse moves the response buffer out of r.
func (r *Result) TakeResponse() OwnedVec { return r.response.Take() }

// Take returns the result and zeroes r.
func (r *Result) Take() Result {
	out := *r
	*r = Result{}
	return out
}

// Release frees the response and the status message and zeroes r.
func (r *Result) Release() {
	r.response.Release()
	r.status.Release()
	*r = Result{}
}
