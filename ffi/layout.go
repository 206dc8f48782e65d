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
#include <stddef.h>
#include "fstatus.h"
*/
import "C"

import (
	"fmt"
	"unsafe"
)

type layoutCheck struct {
	name    string
	goValue uintptr
	cValue  uintptr
}

func layoutChecks() []layoutCheck {
	return []layoutCheck{
		{"sizeof(FStatus_OwnedVec)", unsafe.Sizeof(OwnedVec{}), uintptr(C.sizeof_FStatus_OwnedVec)},
		{"offsetof(FStatus_OwnedVec, len)", unsafe.Offsetof(OwnedVec{}.len), unsafe.Offsetof(C.FStatus_OwnedVec{}.len)},
		{"sizeof(FStatus_ReferencedVec)", unsafe.Sizeof(ReferencedVec{}), uintptr(C.sizeof_FStatus_ReferencedVec)},
		{"offsetof(FStatus_ReferencedVec, len)", unsafe.Offsetof(ReferencedVec{}.len), unsafe.Offsetof(C.FStatus_ReferencedVec{}.len)},
		{"sizeof(FStatus_String)", unsafe.Sizeof(String{}), uintptr(C.sizeof_FStatus_String)},
		{"sizeof(FStatus_Status)", unsafe.Sizeof(Status{}), uintptr(C.sizeof_FStatus_Status)},
		{"offsetof(FStatus_Status, message)", unsafe.Offsetof(Status{}.message), unsafe.Offsetof(C.FStatus_Status{}.message)},
		{"sizeof(FStatus_Result)", unsafe.Sizeof(Result{}), uintptr(C.sizeof_FStatus_Result)},
		{"offsetof(FStatus_Result, status)", unsafe.Offsetof(Result{}.status), unsafe.Offsetof(C.FStatus_Result{}.status)},
		{"sizeof(FStatus_Completion)", unsafe.Sizeof(Completion{}), uintptr(C.sizeof_FStatus_Completion)},
		{"offsetof(FStatus_Completion, fn)", unsafe.Offsetof(Completion{}.fn), unsafe.Offsetof(C.FStatus_Completion{}.fn)},
	}
}

// CheckLayout verifies that the Go boundary types match the sizes and
// field offsets of the C structs in fstatus.h.
func CheckLayout() error {
	for _, c := range layoutChecks() {
		if c.goValue != c.cValue {
			return fmt.Errorf("ffi: layout mismatch: %s is %d in Go, %d in C", c.name, c.goValue, c.cValue)
		}
	}
	return nil
}
