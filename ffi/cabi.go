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

import "unsafe"

// The helpers below call the exported drop functions through their C
// signatures, as a foreign host would. They let Go code in this package
// (tests included) exercise the C entry points.

func dropOwnedVec(v *OwnedVec) { FStatus_OwnedVec_drop((*C.FStatus_OwnedVec)(unsafe.Pointer(v))) }
func dropString(s *String)     { FStatus_String_drop((*C.FStatus_String)(unsafe.Pointer(s))) }
func dropStatus(s *Status)     { FStatus_Status_drop((*C.FStatus_Status)(unsafe.Pointer(s))) }
func dropResult(r *Result)     { FStatus_Result_drop((*C.FStatus_Result)(unsafe.Pointer(r))) }
