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

package field

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestProperty_String(t *testing.T) {
	tests := []struct {
		name string
		in   Property
		want string
	}{
		{"member", Member{Name: "nickname"}, "nickname"},
		{"map member", MapMember{Name: "children", Key: "son"}, `children["son"]`},
		{"array member", ArrayMember{Name: "children", Index: 3}, `children[3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestField_SingleSegment(t *testing.T) {
	if got := ForMember("nickname").String(); got != "nickname" {
		t.Fatalf("String() = %q", got)
	}
	if got := ForArrayMember("children", 0).String(); got != "children[0]" {
		t.Fatalf("String() = %q", got)
	}
}

func TestField_RendersOutermostFirst(t *testing.T) {
	f := New(MapMember{Name: "nicknames", Key: "joe"}).
		WithContext(ArrayMember{Name: "children", Index: 3}).
		WithContext(Member{Name: "family"})

	if got, want := f.String(), `family.children[3].nicknames["joe"]`; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if f.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", f.Len())
	}

	props := f.Properties()
	if props[0] != (Member{Name: "family"}) {
		t.Fatalf("Properties()[0] = %#v, want outermost member", props[0])
	}
	if props[2] != (MapMember{Name: "nicknames", Key: "joe"}) {
		t.Fatalf("Properties()[2] = %#v, want innermost map member", props[2])
	}
}

func TestField_TwoSegments(t *testing.T) {
	f := ForMember("config").WithinMember("server")
	if got := f.String(); got != "server.config" {
		t.Fatalf("String() = %q, want %q", got, "server.config")
	}
}

func TestField_Immutability_CopyOnWrite(t *testing.T) {
	base := ForMember("leaf").WithinMember("mid")
	a := base.WithinMember("a")
	b := base.WithinMember("b")

	if a.String() != "a.mid.leaf" || b.String() != "b.mid.leaf" {
		t.Fatalf("siblings share storage: a=%q b=%q", a, b)
	}
	if base.String() != "mid.leaf" {
		t.Fatalf("receiver mutated: %q", base)
	}
}

func TestField_Zero(t *testing.T) {
	var f Field
	if !f.IsZero() || f.String() != "" {
		t.Fatalf("zero Field must render empty, got %q", f)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	fields := []Field{
		ForMember("nickname"),
		ForMapMember("children", "son"),
		ForArrayMember("children", 3),
		ForMapMember("nicknames", "joe").WithinArrayMember("children", 3).WithinMember("family"),
		ForMapMember("labels", "app.kubernetes.io/name").WithinMember("metadata"),
		ForMapMember("m", `a"].b["c`),
		ForMapMember("paths", `C:\temp\`).WithinMember("env"),
	}
	for _, f := range fields {
		t.Run(f.String(), func(t *testing.T) {
			got, err := Parse(f.String())
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", f, err)
			}
			if got.String() != f.String() || got.Len() != f.Len() {
				t.Fatalf("Parse(%q) = %q (len %d)", f, got, got.Len())
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{
		".a",
		"a.",
		"a..b",
		"1abc",
		"a[",
		"a[]",
		`a["x]`,
		`a["x"`,
		`a["x\y"]`,
		`a["x\"]`,
		"a[-1]",
		"a[1]b",
		"a b",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			if !errors.Is(err, ErrFieldInvalid) {
				t.Fatalf("Parse(%q) err = %v, want ErrFieldInvalid", in, err)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse("   ")
	if err != nil || !f.IsZero() {
		t.Fatalf("Parse(blank) = %q, %v; want zero Field", f, err)
	}
}

func TestField_JSONUsesRenderedForm(t *testing.T) {
	in := struct {
		Field Field `json:"field"`
	}{Field: ForMember("config").WithinMember("server")}

	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"field":"server.config"}` {
		t.Fatalf("Marshal = %s", b)
	}

	var out struct {
		Field Field `json:"field"`
	}
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Field.String() != "server.config" {
		t.Fatalf("Unmarshal = %q", out.Field)
	}
}

func TestMapMember_KeyWithQuotes(t *testing.T) {
	f := ForMapMember("m", `a"].b["c`)
	if want := `m["a\"].b[\"c"]`; f.String() != want {
		t.Fatalf("String() = %s, want %s", f, want)
	}
	got, err := Parse(f.String())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	props := got.Properties()
	if len(props) != 1 || props[0] != (MapMember{Name: "m", Key: `a"].b["c`}) {
		t.Fatalf("Parse(%s) = %#v", f, props)
	}
}
