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
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/fstatus/field"
)

func strp(s string) *string { return &s }

func TestDetail_Tags(t *testing.T) {
	tests := []struct {
		in   Detail
		want string
	}{
		{NewBadRequest(ForMember("name", nil)), "BAD_REQUEST"},
		{NewDebugInfo("boom"), "DEBUG_INFO"},
		{NewLocalizedMessage("en-US", "Try again"), "LOCALIZED_MESSAGE"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNewBadRequest_CopiesInput(t *testing.T) {
	vs := []FieldViolation{ForMember("a", nil)}
	br := NewBadRequest(vs...)
	vs[0] = ForMember("b", nil)
	if br.FieldViolations[0].Field.String() != "a" {
		t.Fatal("NewBadRequest must not alias the caller's slice")
	}
}

func TestToProto_BadRequest(t *testing.T) {
	f := field.ForArrayMember("children", 3).WithinMember("family")
	m := ToProto(NewBadRequest(ForField(f, strp("must be set"))))

	br, ok := m.(*errdetails.BadRequest)
	if !ok {
		t.Fatalf("ToProto type = %T", m)
	}
	if len(br.GetFieldViolations()) != 1 {
		t.Fatalf("violations = %d", len(br.GetFieldViolations()))
	}
	fv := br.GetFieldViolations()[0]
	if fv.GetField() != "family.children[3]" || fv.GetDescription() != "must be set" {
		t.Fatalf("violation = %q / %q", fv.GetField(), fv.GetDescription())
	}
}

func TestAny_RoundTrip(t *testing.T) {
	in := []Detail{
		NewBadRequest(
			ForField(field.ForMapMember("nicknames", "joe").WithinMember("family"), strp("too long")),
			ForMember("age", nil),
		),
		DebugInfo{StackEntries: []string{"main.go:10", "lib.go:3"}, Detail: strp("boom")},
		NewLocalizedMessage("fr-CH", "Réessayez plus tard"),
	}
	for _, d := range in {
		t.Run(d.String(), func(t *testing.T) {
			a, err := ToAny(d)
			if err != nil {
				t.Fatalf("ToAny: %v", err)
			}
			got, ok, err := FromAny(a)
			if err != nil || !ok {
				t.Fatalf("FromAny: ok=%v err=%v", ok, err)
			}
			if !proto.Equal(ToProto(got), ToProto(d)) {
				t.Fatalf("round-trip mismatch: %v vs %v", ToProto(got), ToProto(d))
			}
		})
	}
}

func TestFromProto_BadRequestKeepsStructure(t *testing.T) {
	d, ok := FromProto(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: `family.children[3].nicknames["joe"]`},
		},
	})
	if !ok {
		t.Fatal("FromProto must accept BadRequest")
	}
	fv := d.(BadRequest).FieldViolations[0]
	if fv.Field.Len() != 3 {
		t.Fatalf("field len = %d, want 3", fv.Field.Len())
	}
	if fv.Description != nil {
		t.Fatalf("empty description must decode as absent")
	}
}

func TestFromProto_UnparseableFieldKeptVerbatim(t *testing.T) {
	d, _ := FromProto(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{{Field: "config/replicas"}},
	})
	if got := d.(BadRequest).FieldViolations[0].Field.String(); got != "config/replicas" {
		t.Fatalf("field = %q, want verbatim", got)
	}
}

func TestFromAny_UnsupportedTypes(t *testing.T) {
	// Known to the registry but not a detail.
	a, err := anypb.New(durationpb.New(0))
	if err != nil {
		t.Fatalf("anypb.New: %v", err)
	}
	if _, ok, err := FromAny(a); ok || err != nil {
		t.Fatalf("FromAny(duration) ok=%v err=%v; want false, nil", ok, err)
	}

	// Unknown to the registry.
	unknown := &anypb.Any{TypeUrl: "type.googleapis.com/example.Nope"}
	if _, ok, err := FromAny(unknown); ok || err != nil {
		t.Fatalf("FromAny(unknown) ok=%v err=%v; want false, nil", ok, err)
	}
}
