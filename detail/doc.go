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

// Package detail defines the structured records that can be attached to an
// fstatus error status.
//
// The set is closed and mirrors the google.rpc error detail messages:
//
//   - BadRequest: a list of field violations (see package field);
//   - DebugInfo: stack entries and free-form detail text for diagnostics;
//   - LocalizedMessage: an end-user message in a BCP-47 locale.
//
// Each record converts to and from its google.golang.org/genproto errdetails
// message so that a status can carry its details over gRPC unchanged.
package detail
