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

// Package ffi defines the C ABI types used to hand results to a foreign
// caller: owned and referenced byte buffers, NUL-terminated strings, the
// Status/Result envelope and the asynchronous Completion.
//
// Every Go type here has the same memory layout as its C counterpart in
// fstatus.h (see CheckLayout), so values are converted with a plain pointer
// cast at the boundary.
//
// # Ownership
//
// OwnedVec and String (and the Status and Result that contain them) hold
// memory from the C allocator. Exactly one handle owns an allocation at a
// time:
//
//   - Take moves ownership out of a handle and zeroes the source;
//   - Release frees the memory with C.free and zeroes the handle, so a second
//     Release of the same handle, or a Release of the zero value, is a no-op;
//   - copying a handle by assignment creates an alias. Do not release both.
//
// ReferencedVec borrows memory owned by the caller and has no Release.
//
// # Completions
//
// A Completion is invoked exactly once, possibly from another goroutine or
// OS thread than the one that created it. Invoke moves the Result into the
// receiver, which becomes responsible for releasing it.
package ffi
