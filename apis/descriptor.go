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

// ErrorDescriptor is a flat, transport-friendly description of an error
// kind and how it is exposed on each transport.
//
// This type intentionally uses plain strings and integers (not the code
// value type) so that it marshals the same way in every encoder and can be
// used by tooling that lists the taxonomy.
type ErrorDescriptor struct {
	// Kind is the canonical kind name, e.g. "NOT_FOUND".
	Kind string `json:"kind" yaml:"kind"`

	// Code is the fixed numeric code of the kind.
	Code int32 `json:"code" yaml:"code"`

	// HTTPStatus is the HTTP status used when this kind is exposed over
	// HTTP. A value of 0 means "no mapping".
	HTTPStatus int `json:"http_status,omitempty" yaml:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) used when this kind is
	// exposed over gRPC.
	GRPCCode int `json:"grpc_code" yaml:"grpc_code"`

	// Retryable reports whether the same request may succeed when retried.
	Retryable bool `json:"retryable,omitempty" yaml:"retryable,omitempty"`

	// Message is an optional human-friendly message carried by the error
	// instance the descriptor was built from.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}
