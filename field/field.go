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
	"encoding"
	"strconv"
	"strings"
)

// Property is a single segment of a Field path. The set of implementations
// is closed: Member, MapMember and ArrayMember.
type Property interface {
	// String renders the segment: name, name["key"] or name[index].
	String() string

	isProperty()
}

// Member addresses a named member of a message or object.
type Member struct {
	Name string
}

// MapMember addresses the entry with Key inside the map member Name.
type MapMember struct {
	Name string
	Key  string
}

// ArrayMember addresses the element at Index inside the list member Name.
type ArrayMember struct {
	Name  string
	Index int
}

func (Member) isProperty()      {}
func (MapMember) isProperty()   {}
func (ArrayMember) isProperty() {}

// String renders the member name as-is.
func (p Member) String() string { return p.Name }

// String renders name["key"]. A '"' or '\' inside the key is escaped with
// a backslash, so Parse can always find the end of the key.
func (p MapMember) String() string { return p.Name + `["` + keyEscaper.Replace(p.Key) + `"]` }

var keyEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// String renders name[index].
func (p ArrayMember) String() string { return p.Name + "[" + strconv.Itoa(p.Index) + "]" }

// Field is an ordered path into a structured value.
//
// The zero Field is an empty path that renders as "".
type Field struct {
	// reversed holds the path innermost-first; the last element is the
	// outermost context.
	reversed []Property
}

// Ensure Field implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it serializes by its rendered form.
var (
	_ encoding.TextMarshaler   = (*Field)(nil)
	_ encoding.TextUnmarshaler = (*Field)(nil)
)

// New returns a Field consisting of the single (innermost) property p.
func New(p Property) Field {
	return Field{reversed: []Property{p}}
}

// ForMember is shorthand for New(Member{Name: name}).
func ForMember(name string) Field {
	return New(Member{Name: name})
}

// ForMapMember is shorthand for New(MapMember{Name: name, Key: key}).
func ForMapMember(name, key string) Field {
	return New(MapMember{Name: name, Key: key})
}

// ForArrayMember is shorthand for New(ArrayMember{Name: name, Index: index}).
func ForArrayMember(name string, index int) Field {
	return New(ArrayMember{Name: name, Index: index})
}

// WithContext returns a copy of f wrapped by the enclosing property p.
// The receiver is not modified.
func (f Field) WithContext(p Property) Field {
	out := make([]Property, len(f.reversed), len(f.reversed)+1)
	copy(out, f.reversed)
	return Field{reversed: append(out, p)}
}

// WithinMember wraps f with an enclosing Member.
func (f Field) WithinMember(name string) Field {
	return f.WithContext(Member{Name: name})
}

// WithinMapMember wraps f with an enclosing MapMember.
func (f Field) WithinMapMember(name, key string) Field {
	return f.WithContext(MapMember{Name: name, Key: key})
}

// WithinArrayMember wraps f with an enclosing ArrayMember.
func (f Field) WithinArrayMember(name string, index int) Field {
	return f.WithContext(ArrayMember{Name: name, Index: index})
}

// Len returns the number of segments in the path.
func (f Field) Len() int { return len(f.reversed) }

// IsZero reports whether f is the empty path.
func (f Field) IsZero() bool { return len(f.reversed) == 0 }

// Properties returns the segments in reading order, outermost first.
// The returned slice is a fresh copy.
func (f Field) Properties() []Property {
	out := make([]Property, len(f.reversed))
	for i, p := range f.reversed {
		out[len(f.reversed)-1-i] = p
	}
	return out
}

// String renders the path outermost-to-innermost joined with ".".
func (f Field) String() string {
	var b strings.Builder
	for i := len(f.reversed) - 1; i >= 0; i-- {
		b.WriteString(f.reversed[i].String())
		if i > 0 {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler using the rendered form.
func (f Field) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// Empty or whitespace-only input produces the zero Field.
func (f *Field) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
