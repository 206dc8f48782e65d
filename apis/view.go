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

package apis

// ErrorView is a minimal, serializable representation of an error.
//
// This is *not* the concrete error type used internally. It is the shape
// that we are comfortable exposing over the wire or logging. Keeping it here
// (in apis) allows the HTTP adapter, the CLI and loggers to share the same
// struct.
type ErrorView struct {
	// Kind is the canonical kind name, e.g. "INVALID_ARGUMENT".
	Kind string `json:"kind"`

	// Code is the fixed numeric code of the kind.
	Code int32 `json:"code"`

	// Message is the error's message, empty when absent.
	Message string `json:"message,omitempty"`

	// Details is the ordered list of details in view form.
	Details []Detail `json:"details,omitempty"`
}
