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

package mapper

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/fstatus/apis"
	"dirpx.dev/fstatus/code"
	"google.golang.org/grpc/codes"
)

func TestDefaults_Table(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	want := map[code.Code]int{
		code.Cancelled:          499,
		code.Unknown:            500,
		code.InvalidArgument:    400,
		code.DeadlineExceeded:   504,
		code.NotFound:           404,
		code.AlreadyExists:      409,
		code.PermissionDenied:   403,
		code.ResourceExhausted:  429,
		code.FailedPrecondition: 400,
		code.Aborted:            409,
		code.OutOfRange:         400,
		code.Unimplemented:      501,
		code.Internal:           500,
		code.Unavailable:        503,
		code.DataLoss:           500,
		code.Unauthenticated:    401,
	}
	for _, c := range code.Values() {
		st := m.Status(c)
		if st.HTTP != want[c] {
			t.Errorf("HTTP(%v) = %d, want %d", c, st.HTTP, want[c])
		}
		if int32(st.GRPC) != int32(c) {
			t.Errorf("GRPC(%v) = %v, want same number", c, st.GRPC)
		}
	}
}

func TestFallback_UnmappedCodes(t *testing.T) {
	m := Default()
	for _, c := range []code.Code{code.OK, code.Code(17), code.Code(-1)} {
		st := m.Status(c)
		if st.HTTP != InvalidHTTPStatus {
			t.Errorf("HTTP(%v) = %d, want InvalidHTTPStatus", c, st.HTTP)
		}
		if st.GRPC != codes.Unknown {
			t.Errorf("GRPC(%v) = %v, want Unknown", c, st.GRPC)
		}
	}
}

func TestFallback_Configurable(t *testing.T) {
	m, err := New(WithHTTPFallback(500), WithGRPCFallback(codes.Internal))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m.Status(code.OK); st.HTTP != 500 || st.GRPC != codes.Internal {
		t.Fatalf("fallback = %+v", st)
	}
}

func TestPriority_OverrideOverDefault_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPDefault(code.Unavailable, 502),
		WithHTTPOverride(code.Unavailable, 418),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m.Status(code.Unavailable); st.HTTP != 418 {
		t.Fatalf("override must win; got %d, want 418", st.HTTP)
	}
}

func TestPriority_OverrideOverDefault_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCDefault(code.Unavailable, int(codes.Internal)),
		WithGRPCOverride(code.Unavailable, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m.Status(code.Unavailable); st.GRPC != codes.Aborted {
		t.Fatalf("override must win; got %v, want %v", st.GRPC, codes.Aborted)
	}
}

func TestUserDefault_ReplacesLibraryDefault(t *testing.T) {
	m, err := New(WithHTTPDefault(code.Cancelled, 408))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.Cancelled); got != 408 {
		t.Fatalf("got %d, want 408", got)
	}
	if got := HTTPStatus(code.Cancelled); got != 499 {
		t.Fatalf("default snapshot changed: %d", got)
	}
}

func TestNew_RejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"override OK", WithHTTPOverride(code.OK, 200)},
		{"undefined code", WithGRPCDefault(code.Code(99), 1)},
		{"http too low", WithHTTPOverride(code.NotFound, 42)},
		{"http too high", WithHTTPDefault(code.NotFound, 600)},
		{"grpc out of range", WithGRPCOverride(code.NotFound, 17)},
		{"bad fallback", WithHTTPFallback(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
	_, err := New(WithHTTPOverride(code.OK, 200))
	if !errors.Is(err, code.ErrCodeInvalid) {
		t.Errorf("error should wrap ErrCodeInvalid: %v", err)
	}
}

func TestMust_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Must should panic on invalid options")
		}
	}()
	Must(WithHTTPOverride(code.OK, 200))
}

func TestExplain_Sources(t *testing.T) {
	m, err := New(WithHTTPOverride(code.NotFound, 410))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain(code.NotFound)
	if !strings.Contains(exp, "http: source=override -> 410") {
		t.Fatalf("Explain must include the override:\n%s", exp)
	}
	if !strings.Contains(exp, "grpc: source=default -> NOT_FOUND(5)") {
		t.Fatalf("Explain must include the gRPC default:\n%s", exp)
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(WithHTTPOverride(code.Cancelled, 408))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(code.Unavailable)
				_ = m.Status(code.Cancelled)
				_ = Default().Status(code.InvalidArgument)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(b *testing.B) {
	m := Default()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(code.InvalidArgument)
	}
}

func BenchmarkMapperStatus_Override(b *testing.B) {
	m := Must(
		WithHTTPOverride(code.Unavailable, 418),
		WithGRPCOverride(code.Unavailable, int(codes.Aborted)),
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(code.Unavailable)
	}
}

// Ensure mapper implements apis.Mapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
