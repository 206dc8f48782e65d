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

// Package httpx writes *fstatus.Error values as JSON HTTP responses.
//
// The body has the shape of the gRPC-gateway error envelope:
//
//	{"error": {"code": 5, "message": "no such user", "details": [...]}}
//
// where the inner object is a google.rpc.Status rendered with protojson.
package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	gstatus "google.golang.org/grpc/status"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/fstatus"
	"dirpx.dev/fstatus/adapter"
	"dirpx.dev/fstatus/apis"
	"dirpx.dev/fstatus/code"
	"dirpx.dev/fstatus/grpcx"
	"dirpx.dev/fstatus/mapper"
)

// ContentType is the media type of error bodies.
const ContentType = "application/json"

// Writer is a thin adapter that knows how to turn an error into an HTTP
// response using the provided status mapper.
//
// The zero value uses mapper.Default() and logs nothing.
type Writer struct {
	Mapper apis.Mapper
	Logger *zap.Logger
}

type envelope struct {
	Error json.RawMessage `json:"error"`
}

// Write resolves the HTTP status of err and writes the JSON envelope.
//
// err is converted with fstatus.Convert, so plain errors are written as
// UNKNOWN and context errors as CANCELLED or DEADLINE_EXCEEDED. A nil err
// writes nothing. Kinds without an HTTP mapping are written as 500.
//
// No automatic redaction or filtering is performed here: every detail of
// the error is exposed as-is. Higher-level handlers should apply policies
// if needed.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	e := fstatus.Convert(err)
	if e == nil {
		return
	}
	m := w.mapper()
	st := m.Status(e.Code())
	httpStatus := st.HTTP
	if httpStatus == mapper.InvalidHTTPStatus {
		httpStatus = http.StatusInternalServerError
	}

	body, merr := Encode(e, m)
	if merr != nil {
		w.logger().Error("httpx: encode error body", zap.Error(merr), adapter.ZapError(e))
		http.Error(rw, http.StatusText(httpStatus), httpStatus)
		return
	}
	w.logger().Debug("httpx: writing error", zap.Int("status", httpStatus), adapter.ZapError(e))

	rw.Header().Set("Content-Type", ContentType)
	rw.WriteHeader(httpStatus)
	_, _ = rw.Write(body)
}

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handle adapts fn into an http.Handler that writes returned errors with w.
func (w Writer) Handle(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := fn(rw, r); err != nil {
			w.Write(rw, err)
		}
	})
}

func (w Writer) mapper() apis.Mapper {
	if w.Mapper == nil {
		return mapper.Default()
	}
	return w.Mapper
}

func (w Writer) logger() *zap.Logger {
	if w.Logger == nil {
		return zap.NewNop()
	}
	return w.Logger
}

// StatusCode returns the HTTP status for err under the default mapping:
// 200 for nil (including a nil *fstatus.Error), 500 for kinds with no
// mapping.
func StatusCode(err error) int {
	k := fstatus.KindOf(err)
	if k == code.OK {
		return http.StatusOK
	}
	s := mapper.HTTPStatus(k)
	if s == mapper.InvalidHTTPStatus {
		return http.StatusInternalServerError
	}
	return s
}

// Encode renders the JSON envelope of e. The inner status code is the gRPC
// code resolved by m and every detail is included.
func Encode(e *fstatus.Error, m apis.Mapper) ([]byte, error) {
	// protojson must be used to render the Any details with their @type.
	inner, err := protojson.Marshal(grpcx.ToStatus(e, grpcx.WithDetails(), grpcx.WithMapper(m)).Proto())
	if err != nil {
		return nil, fmt.Errorf("httpx: marshal status: %w", err)
	}
	return json.Marshal(envelope{Error: inner})
}

// Decode parses a body produced by Encode back into an *fstatus.Error.
func Decode(body []byte) (*fstatus.Error, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("httpx: decode envelope: %w", err)
	}
	if len(env.Error) == 0 {
		return nil, fmt.Errorf("httpx: decode envelope: missing \"error\" member")
	}
	var p spb.Status
	if err := (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(env.Error, &p); err != nil {
		return nil, fmt.Errorf("httpx: decode status: %w", err)
	}
	return grpcx.FromStatusWithDetails(gstatus.FromProto(&p))
}
