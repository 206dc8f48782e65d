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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrFieldInvalid is returned when a string cannot be parsed as a
	// rendered Field path.
	ErrFieldInvalid = errors.New("fstatus: invalid field path")
)

// Parse takes a rendered path such as `family.children[3].nicknames["joe"]`
// and rebuilds the Field it came from, so that Parse(f.String()) is
// equivalent to f.
//
// Accepted grammar:
//
//	path    = segment *( "." segment )
//	segment = name [ "[" ( index | `"` key `"` ) "]" ]
//	name    = [A-Za-z_][A-Za-z0-9_]*
//	index   = decimal digits
//	key     = *( any character except `"` and `\` | `\"` | `\\` )
//
// Surrounding whitespace is trimmed; an empty input yields the zero Field.
func Parse(s string) (Field, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Field{}, nil
	}

	// Segments are collected in reading order, then pushed innermost-first.
	var outerFirst []Property
	p := parser{src: s}
	for {
		prop, err := p.segment()
		if err != nil {
			return Field{}, err
		}
		outerFirst = append(outerFirst, prop)
		if p.done() {
			break
		}
		if !p.accept('.') {
			return Field{}, p.fail("expected '.'")
		}
	}

	rev := make([]Property, len(outerFirst))
	for i, prop := range outerFirst {
		rev[len(outerFirst)-1-i] = prop
	}
	return Field{reversed: rev}, nil
}

// MustParse is the panic-on-error variant of Parse, intended for tests and
// package-level values.
func MustParse(s string) Field {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

// parser is a tiny cursor over the input string.
type parser struct {
	src string
	pos int
}

func (p *parser) done() bool { return p.pos >= len(p.src) }

func (p *parser) accept(c byte) bool {
	if !p.done() && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) fail(what string) error {
	return fmt.Errorf("%w: %s at offset %d in %q", ErrFieldInvalid, what, p.pos, p.src)
}

func (p *parser) segment() (Property, error) {
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	if !p.accept('[') {
		return Member{Name: name}, nil
	}

	if p.accept('"') {
		key, err := p.key()
		if err != nil {
			return nil, err
		}
		if !p.accept(']') {
			return nil, p.fail("expected ']'")
		}
		return MapMember{Name: name, Key: key}, nil
	}

	start := p.pos
	for !p.done() && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if start == p.pos {
		return nil, p.fail("expected index or quoted key")
	}
	idx, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return nil, p.fail("index out of range")
	}
	if !p.accept(']') {
		return nil, p.fail("expected ']'")
	}
	return ArrayMember{Name: name, Index: idx}, nil
}

// key reads a quoted key up to and including the closing '"'.
func (p *parser) key() (string, error) {
	var b strings.Builder
	for !p.done() {
		c := p.src[p.pos]
		p.pos++
		switch c {
		case '"':
			return b.String(), nil
		case '\\':
			if p.done() || (p.src[p.pos] != '"' && p.src[p.pos] != '\\') {
				return "", p.fail("invalid escape in key")
			}
			b.WriteByte(p.src[p.pos])
			p.pos++
		default:
			b.WriteByte(c)
		}
	}
	return "", p.fail("unterminated key")
}

func (p *parser) name() (string, error) {
	start := p.pos
	if p.done() || !isNameStart(p.src[p.pos]) {
		return "", p.fail("expected name")
	}
	p.pos++
	for !p.done() && (isNameStart(p.src[p.pos]) || isDigit(p.src[p.pos])) {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
