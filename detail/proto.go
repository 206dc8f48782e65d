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

package detail

import (
	"errors"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/fstatus/field"
)

// ToProto converts d into its google.rpc errdetails message.
//
// Optional text that is absent becomes the empty string, which is how
// proto3 encodes "not set" for scalar strings.
func ToProto(d Detail) proto.Message {
	switch v := d.(type) {
	case BadRequest:
		out := &errdetails.BadRequest{
			FieldViolations: make([]*errdetails.BadRequest_FieldViolation, 0, len(v.FieldViolations)),
		}
		for _, fv := range v.FieldViolations {
			out.FieldViolations = append(out.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       fv.Field.String(),
				Description: deref(fv.Description),
			})
		}
		return out
	case DebugInfo:
		return &errdetails.DebugInfo{
			StackEntries: append([]string(nil), v.StackEntries...),
			Detail:       deref(v.Detail),
		}
	case LocalizedMessage:
		return &errdetails.LocalizedMessage{
			Locale:  v.Locale,
			Message: v.Message,
		}
	default:
		return nil
	}
}

// ToAny packs d into an Any suitable for google.rpc.Status.details.
func ToAny(d Detail) (*anypb.Any, error) {
	m := ToProto(d)
	if m == nil {
		return nil, fmt.Errorf("fstatus: unsupported detail %T", d)
	}
	return anypb.New(m)
}

// FromProto converts a google.rpc errdetails message back into a Detail.
// It reports false for message types that have no Detail counterpart.
//
// Field paths that do not parse (for example ones produced by another
// implementation) are kept verbatim as a single Member so that their
// rendered form is preserved.
func FromProto(m proto.Message) (Detail, bool) {
	switch v := m.(type) {
	case *errdetails.BadRequest:
		out := BadRequest{FieldViolations: make([]FieldViolation, 0, len(v.GetFieldViolations()))}
		for _, fv := range v.GetFieldViolations() {
			f, err := field.Parse(fv.GetField())
			if err != nil {
				f = field.ForMember(fv.GetField())
			}
			out.FieldViolations = append(out.FieldViolations, FieldViolation{
				Field:       f,
				Description: ref(fv.GetDescription()),
			})
		}
		return out, true
	case *errdetails.DebugInfo:
		return DebugInfo{
			StackEntries: append([]string(nil), v.GetStackEntries()...),
			Detail:       ref(v.GetDetail()),
		}, true
	case *errdetails.LocalizedMessage:
		return LocalizedMessage{Locale: v.GetLocale(), Message: v.GetMessage()}, true
	default:
		return nil, false
	}
}

// FromAny unpacks an Any produced by ToAny. Unknown payload types report
// false without an error; malformed payloads return an error.
func FromAny(a *anypb.Any) (Detail, bool, error) {
	m, err := a.UnmarshalNew()
	if errors.Is(err, protoregistry.NotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("fstatus: unpack detail %q: %w", a.GetTypeUrl(), err)
	}
	d, ok := FromProto(m)
	return d, ok, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ref(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
