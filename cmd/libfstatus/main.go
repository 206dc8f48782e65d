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

// Command libfstatus is built with -buildmode=c-shared. It links the
// greeter example, whose FStatus_Greeter_* functions are exported together
// with the FStatus_*_drop functions of package ffi, for C callers using
// ffi/fstatus.h.
package main

/*
#cgo CFLAGS: -I${SRCDIR}/../../ffi
#include "fstatus.h"
*/
import "C"

import (
	_ "dirpx.dev/fstatus/examples/greeter"
	"dirpx.dev/fstatus/ffi"
)

func init() {
	if err := ffi.CheckLayout(); err != nil {
		panic(err)
	}
}

func main() {}
