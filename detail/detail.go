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

import "dirpx.dev/fstatus/field"

// Tags rendered by Detail.String.
const (
	TagBadRequest       = "BAD_REQUEST"
	TagDebugInfo        = "DEBUG_INFO"
	TagLocalizedMessage = "LOCALIZED_MESSAGE"
)

// Detail is one structured record attached to an error status.
//
// Implementations are BadRequest, DebugInfo and LocalizedMessage only;
// callers can switch exhaustively over them.
type Detail interface {
	// String returns the machine-readable tag, e.g. "DEBUG_INFO".
	String() string

	isDetail()
}

// BadRequest describes violations in a client request. It focuses on the
// syntactic aspects of the request.
type BadRequest struct {
	FieldViolations []FieldViolation
}

// FieldViolation is a single bad request field.
type FieldViolation struct {
	// Field locates the offending value inside the request.
	Field field.Field

	// Description explains why the value is bad. Nil when absent.
	Description *string
}

// DebugInfo carries debugging information such as a rendered cause chain.
type DebugInfo struct {
	// StackEntries is an optional stack trace, one frame per entry.
	StackEntries []string

	// Detail is any additional debugging text. Nil when absent.
	Detail *string
}

// LocalizedMessage provides an error message that is safe to return to the
// end user.
type LocalizedMessage struct {
	// Locale is a BCP-47 tag, e.g. "en-US" or "fr-CH".
	Locale string

	// Message is the localized text.
	Message string
}

func (BadRequest) isDetail()       {}
func (DebugInfo) isDetail()        {}
func (LocalizedMessage) isDetail() {}

func (BadRequest) String() string       { return TagBadRequest }
func (DebugInfo) String() string        { return TagDebugInfo }
func (LocalizedMessage) String() string { return TagLocalizedMessage }

// NewBadRequest returns a BadRequest holding the given violations.
func NewBadRequest(violations ...FieldViolation) BadRequest {
	out := make([]FieldViolation, len(violations))
	copy(out, violations)
	return BadRequest{FieldViolations: out}
}

// NewDebugInfo returns a DebugInfo with detail text and no stack entries.
func NewDebugInfo(detail string) DebugInfo {
	return DebugInfo{Detail: &detail}
}

// NewLocalizedMessage returns a LocalizedMessage.
func NewLocalizedMessage(locale, message string) LocalizedMessage {
	return LocalizedMessage{Locale: locale, Message: message}
}

// ForMember returns a violation of the top-level member name.
func ForMember(name string, description *string) FieldViolation {
	return FieldViolation{Field: field.ForMember(name), Description: description}
}

// ForField returns a violation of an arbitrary field path.
func ForField(f field.Field, description *string) FieldViolation {
	return FieldViolation{Field: f, Description: description}
}
