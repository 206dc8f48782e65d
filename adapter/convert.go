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

package adapter

import (
	"dirpx.dev/fstatus"
	"dirpx.dev/fstatus/apis"
	"dirpx.dev/fstatus/code"
	"dirpx.dev/fstatus/detail"
)

var _ apis.StatusError = (*fstatus.Error)(nil)

// ToDescriptor converts a domain-level error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or tooling
// output. It carries both the logical kind and the concrete transport
// statuses (HTTP and gRPC).
func ToDescriptor(e apis.StatusError, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	d := Describe(e.Code(), st)
	d.Message = e.Message()
	return d
}

// Describe builds the descriptor of a bare kind, without an error instance.
func Describe(c code.Code, st apis.Status) apis.ErrorDescriptor {
	return apis.ErrorDescriptor{
		Kind:       c.String(),
		Code:       int32(c),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Retryable:  c.Retryable(),
	}
}

// Descriptors lists every error kind as resolved by m, in numeric order.
func Descriptors(m apis.Mapper) []apis.ErrorDescriptor {
	vs := code.Values()
	out := make([]apis.ErrorDescriptor, 0, len(vs))
	for _, c := range vs {
		out = append(out, Describe(c, m.Status(c)))
	}
	return out
}

// ToView converts a domain-level error into a public ErrorView. This
// function performs no automatic redaction or filtering; it exposes exactly
// what the error instance contains.
func ToView(e apis.StatusError) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{
		Kind:    e.Code().String(),
		Code:    int32(e.Code()),
		Message: e.Message(),
	}
	if ds := e.Details(); len(ds) > 0 {
		v.Details = make([]apis.Detail, 0, len(ds))
		for _, d := range ds {
			v.Details = append(v.Details, ToDetailView(d))
		}
	}
	return v
}

// ToDetailView converts a single detail into its view form.
func ToDetailView(d detail.Detail) apis.Detail {
	out := apis.Detail{Type: d.String()}
	switch d := d.(type) {
	case detail.BadRequest:
		out.Violations = make([]apis.FieldViolation, 0, len(d.FieldViolations))
		for _, fv := range d.FieldViolations {
			out.Violations = append(out.Violations, apis.FieldViolation{
				Field:       fv.Field.String(),
				Description: deref(fv.Description),
			})
		}
	case detail.DebugInfo:
		out.StackEntries = append([]string(nil), d.StackEntries...)
		out.Debug = deref(d.Detail)
	case detail.LocalizedMessage:
		out.Locale = d.Locale
		out.Message = d.Message
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
