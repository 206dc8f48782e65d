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

package grpcx

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"dirpx.dev/fstatus"
	"dirpx.dev/fstatus/adapter"
)

// serverError converts a handler error into a gRPC status error when it is
// an *fstatus.Error or a context error. Other errors pass through as-is.
func serverError(err error, o options, method string) error {
	e, ok := fstatus.As(err)
	if !ok {
		e = fstatus.FromContextError(err)
	}
	if e == nil {
		return err
	}
	o.logger.Debug("grpcx: handler failed", zap.String("method", method), adapter.ZapError(e))
	return toStatus(e, o).Err()
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// fstatus errors returned by handlers into gRPC status errors.
func UnaryServerInterceptor(opts ...Option) grpc.UnaryServerInterceptor {
	o := buildOptions(opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, serverError(err, o, info.FullMethod)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(opts ...Option) grpc.StreamServerInterceptor {
	o := buildOptions(opts)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := handler(srv, ss); err != nil {
			return serverError(err, o, info.FullMethod)
		}
		return nil
	}
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that turns
// non-OK status errors into *fstatus.Error values, details included.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, callOpts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, callOpts...)
		if err == nil {
			return nil
		}
		if e, ok := FromError(err); ok {
			return e
		}
		return err
	}
}
