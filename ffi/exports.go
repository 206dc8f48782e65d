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
	"runtime/cgo"
	"unsafe"

	"go.uber.org/zap"
)

//export FStatus_OwnedVec_drop
func FStatus_OwnedVec_drop(ptr *C.FStatus_OwnedVec) {
	Logger().Debug("FStatus_OwnedVec_drop", zap.Bool("ptr.is_null", ptr == nil))
	if ptr != nil {
		(*OwnedVec)(unsafe.Pointer(ptr)).Release()
	}
}

//export FStatus_String_drop
func FStatus_String_drop(ptr *C.FStatus_String) {
	Logger().Debug("FStatus_String_drop", zap.Bool("ptr.is_null", ptr == nil))
	if ptr != nil {
		(*String)(unsafe.Pointer(ptr)).Release()
	}
}

//export FStatus_Status_drop
func FStatus_Status_drop(ptr *C.FStatus_Status) {
	Logger().Debug("FStatus_Status_drop", zap.Bool("ptr.is_null", ptr == nil))
	if ptr != nil {
		(*Status)(unsafe.Pointer(ptr)).Release()
	}
}

//export FStatus_Result_drop
func FStatus_Result_drop(ptr *C.FStatus_Result) {
	Logger().Debug("FStatus_Result_drop", zap.Bool("ptr.is_null", ptr == nil))
	if ptr != nil {
		(*Result)(unsafe.Pointer(ptr)).Release()
	}
}

// fstatusGoCompletion is the C callback behind NewCompletion. context
// points to a C allocation holding the cgo.Handle of the receiver.
//
//export fstatusGoCompletion
func fstatusGoCompletion(context unsafe.Pointer, result C.FStatus_Result) {
	r := *(*Result)(unsafe.Pointer(&result))
	if context == nil {
		Logger().Error("ffi: completion called without context")
		r.Release()
		return
	}
	h := cgo.Handle(*(*uintptr)(context))
	C.free(context)
	recv, ok := h.Value().(func(Result))
	h.Delete()
	if !ok {
		Logger().Error("ffi: completion context holds no receiver")
		r.Release()
		return
	}
	recv(r)
}
