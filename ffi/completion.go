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

extern void fstatusGoCompletion(void *context, FStatus_Result result);

static void fstatus_completion_invoke(FStatus_Completion c, FStatus_Result r) {
	c.fn(c.context, r);
}
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"go.uber.org/zap"

	"dirpx.dev/fstatus"
)

// Context is the opaque context pointer of a Completion.
//
// Wrapping a pointer in a Context asserts that the completion may be moved
// to and invoked from any goroutine or OS thread. The pointer itself carries
// no such guarantee: code reading or writing through it must synchronize
// externally.
type Context struct {
	ptr unsafe.Pointer
}

// NewContext wraps p. See Context for the thread-safety contract.
func NewContext(p unsafe.Pointer) Context { return Context{ptr: p} }

// Pointer returns the wrapped pointer.
func (c Context) Pointer() unsafe.Pointer { return c.ptr }

// Completion delivers the Result of an asynchronous operation. Its layout is
// FStatus_Completion.
//
// A Completion is single-owner: hand it to the goroutine that produces the
// result and invoke it there exactly once.
type Completion struct {
	context Context
	fn      C.FStatus_CompletionFn
}

// IsZero reports whether c has no callback, either because it was never
// registered or because it was already invoked.
func (c Completion) IsZero() bool { return c.fn == nil }

// NewCompletion registers recv behind a C function pointer, so the
// completion follows the same C call path as one registered by a foreign
// host. recv owns the Result it receives.
//
// If the completion is never invoked, recv stays registered; Discard
// releases it.
func NewCompletion(recv func(Result)) Completion {
	h := cgo.NewHandle(recv)
	p := C.malloc(C.size_t(unsafe.Sizeof(uintptr(0))))
	*(*uintptr)(p) = uintptr(h)
	return Completion{
		context: NewContext(p),
		fn:      C.FStatus_CompletionFn(C.fstatusGoCompletion),
	}
}

// Invoke calls the completion with r, moving the result into the receiver
// (r is zeroed), and zeroes c.
//
// A second Invoke on the same completion returns a FAILED_PRECONDITION
// error and leaves r with the caller.
func (c *Completion) Invoke(r *Result) error {
	if c == nil || c.fn == nil {
		return fstatus.FailedPrecondition(fstatus.Msg("completion is not registered or was already invoked"))
	}
	if r == nil {
		return fstatus.InvalidArgument(fstatus.Msg("nil result"))
	}
	res := r.Take()
	cc := *c
	*c = Completion{}

	Logger().Debug("Completion.Invoke",
		zap.Bool("context.is_null", cc.context.ptr == nil),
		zap.Int32("status.code", res.status.code))
	C.fstatus_completion_invoke(
		*(*C.FStatus_Completion)(unsafe.Pointer(&cc)),
		*(*C.FStatus_Result)(unsafe.Pointer(&res)),
	)
	return nil
}

// Discard drops a completion created by NewCompletion that will never be
// invoked, releasing its registration. It is a no-op for an already
// invoked completion. Completions registered by a foreign host must not be
// discarded; their context belongs to the host.
func (c *Completion) Discard() {
	if c == nil || c.fn == nil {
		return
	}
	if c.fn == C.FStatus_CompletionFn(C.fstatusGoCompletion) && c.context.ptr != nil {
		h := cgo.Handle(*(*uintptr)(c.context.ptr))
		h.Delete()
		C.free(c.context.ptr)
	}
	*c = Completion{}
}

// Go runs work on a new goroutine and invokes c with its result. If the
// completion cannot be invoked the result is released.
func Go(c Completion, work func() Result) {
	go func() {
		r := work()
		if err := c.Invoke(&r); err != nil {
			Logger().Error("ffi: completion not invoked", zap.Error(err))
			r.Release()
		}
	}()
}
