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

// Detail is the view form of a single structured detail. It is small,
// transport-friendly and suitable for JSON or log output.
//
// Exactly one group of fields is set, according to Type:
//   - "BAD_REQUEST": Violations;
//   - "DEBUG_INFO": StackEntries and Debug;
//   - "LOCALIZED_MESSAGE": Locale and Message.
type Detail struct {
	// Type is the detail tag, e.g. "BAD_REQUEST".
	Type string `json:"type"`

	// Violations lists the field violations of a bad request.
	Violations []FieldViolation `json:"violations,omitempty"`

	// StackEntries and Debug carry debug info.
	StackEntries []string `json:"stack_entries,omitempty"`
	Debug        string   `json:"debug,omitempty"`

	// Locale and Message carry a localized message.
	Locale  string `json:"locale,omitempty"`
	Message string `json:"message,omitempty"`
}

// FieldViolation is the view form of a single bad-request violation.
type FieldViolation struct {
	// Field is the rendered path, e.g. `family.children[3].name`.
	Field string `json:"field"`

	// Description is empty when absent.
	Description string `json:"description,omitempty"`
}
