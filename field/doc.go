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

// Package field describes locators into a structured request value, such as
// "family.children[3].nicknames[\"joe\"]". Fields are carried inside
// bad-request details to point at the offending input.
//
// A Field is built from the inside out: validation code that fails on a
// nested value creates the innermost Property first and each enclosing
// layer wraps it with its own context on the way back up:
//
//	f := field.ForMapMember("nicknames", "joe").
//	    WithinArrayMember("children", 3).
//	    WithinMember("family")
//
//	f.String() // family.children[3].nicknames["joe"]
//
// Internally the path is therefore a stack in reverse reading order (the
// last pushed element is the outermost one); rendering walks it backwards.
//
// Field values are immutable. Every With* method returns a new Field and
// never shares storage with its receiver.
package field
