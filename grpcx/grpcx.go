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

// Package grpcx converts between *fstatus.Error and gRPC statuses and
// provides interceptors that apply the conversion at the transport edge.
//
// The minimal form carries the numeric code and the message only, which is
// the field set needed to rebuild the error kind and message. WithDetails
// additionally attaches every detail as a google.rpc error detail message.
package grpcx

import (
	"go.uber.org/zap"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/fstatus"
	"dirpx.dev/fstatus/apis"
	"dirpx.dev/fstatus/code"
	"dirpx.dev/fstatus/detail"
	"dirpx.dev/fstatus/mapper"
)

type options struct {
	details bool
	mapper  apis.Mapper
	logger  *zap.Logger
}

// Option configures conversions and interceptors.
type Option func(*options)

// WithDetails attaches the error's details to the status as Any messages.
func WithDetails() Option {
	return func(o *options) { o.details = true }
}

// WithMapper resolves the gRPC code through m instead of mapper.Default().
// Only a mapper that keeps codes identical preserves the round trip.
func WithMapper(m apis.Mapper) Option {
	return func(o *options) { o.mapper = m }
}

// WithLogger makes the server interceptors log converted errors at Debug.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{mapper: mapper.Default(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ToStatus converts e into a gRPC status whose code is the kind's code and
// whose message is the error's message (empty when absent).
//
// A nil e yields an OK status.
func ToStatus(e *fstatus.Error, opts ...Option) *gstatus.Status {
	return toStatus(e, buildOptions(opts))
}

func toStatus(e *fstatus.Error, o options) *gstatus.Status {
	if e == nil {
		return gstatus.New(gcodes.OK, "")
	}
	p := &spb.Status{
		Code:    int32(o.mapper.GRPCStatus(e.Code())),
		Message: e.Message(),
	}
	if o.details {
		for _, d := range e.Details() {
			a, err := detail.ToAny(d)
			if err != nil {
				o.logger.Warn("grpcx: detail dropped", zap.String("detail", d.String()), zap.Error(err))
				continue
			}
			p.Details = append(p.Details, a)
		}
	}
	return gstatus.FromProto(p)
}

// FromStatus rebuilds an *fstatus.Error from the code and message of st.
//
// An OK or nil status cannot be represented as a failure; FromStatus
// returns an InvalidArgument error for it. Details are ignored.
func FromStatus(st *gstatus.Status) (*fstatus.Error, error) {
	return fstatus.FromCode(code.Code(st.Code()), st.Message())
}

// FromStatusWithDetails is FromStatus that also decodes the known
// google.rpc detail messages. Unknown or malformed detail payloads are
// skipped.
func FromStatusWithDetails(st *gstatus.Status) (*fstatus.Error, error) {
	e, err := FromStatus(st)
	if err != nil {
		return nil, err
	}
	ds := decodeDetails(st.Proto().GetDetails())
	if len(ds) == 0 {
		return e, nil
	}
	return e.WithDetails(ds...), nil
}

func decodeDetails(anys []*anypb.Any) []detail.Detail {
	var out []detail.Detail
	for _, a := range anys {
		d, ok, err := detail.FromAny(a)
		if err != nil || !ok {
			continue
		}
		out = append(out, d)
	}
	return out
}

// FromError extracts an *fstatus.Error from err.
//
// An *fstatus.Error anywhere in the chain is returned as-is. An error that
// carries a non-OK gRPC status is decoded with its details. Anything else
// reports false.
func FromError(err error) (*fstatus.Error, bool) {
	if err == nil {
		return nil, false
	}
	if e, ok := fstatus.As(err); ok {
		return e, true
	}
	st, ok := gstatus.FromError(err)
	if !ok || st.Code() == gcodes.OK {
		return nil, false
	}
	e, cerr := FromStatusWithDetails(st)
	if cerr != nil {
		return nil, false
	}
	return e, true
}
