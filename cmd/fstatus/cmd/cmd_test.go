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

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"dirpx.dev/fstatus/apis"
	"dirpx.dev/fstatus/code"
	"dirpx.dev/fstatus/ffi"
	"dirpx.dev/fstatus/httpx"
	"dirpx.dev/fstatus/internal/config"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(config.EnvConfig, "")
	var out, errOut bytes.Buffer
	err = run(NewRootCmd(), append([]string{"--log-level", "error"}, args...), &out, &errOut)
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "fstatus.toml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCodesTable(t *testing.T) {
	out, _, err := execute(t, "codes")
	if err != nil {
		t.Fatalf("codes: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1+int(code.Max) {
		t.Fatalf("got %d lines, want header + %d rows:\n%s", len(lines), code.Max, out)
	}
	if !strings.HasPrefix(lines[0], "CODE") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(out, "NOT_FOUND") || !strings.Contains(out, "404") {
		t.Errorf("table missing NOT_FOUND row:\n%s", out)
	}
}

func TestCodesJSON(t *testing.T) {
	out, _, err := execute(t, "codes", "-o", "json")
	if err != nil {
		t.Fatalf("codes: %v", err)
	}
	var ds []apis.ErrorDescriptor
	if err := json.Unmarshal([]byte(out), &ds); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(ds) != int(code.Max) {
		t.Fatalf("got %d descriptors, want %d", len(ds), code.Max)
	}
	if ds[0].Kind != "CANCELLED" || ds[0].HTTPStatus != 499 {
		t.Errorf("first descriptor = %+v", ds[0])
	}
}

func TestCodesYAML(t *testing.T) {
	out, _, err := execute(t, "codes", "--output", "yaml")
	if err != nil {
		t.Fatalf("codes: %v", err)
	}
	if !strings.Contains(out, "kind: UNAVAILABLE") {
		t.Errorf("yaml output missing UNAVAILABLE:\n%s", out)
	}
}

func TestCodesUnknownFormat(t *testing.T) {
	_, stderr, err := execute(t, "codes", "-o", "xml")
	if err == nil {
		t.Fatal("expected error")
	}
	if want := `INVALID_ARGUMENT: unknown output format "xml"`; strings.TrimSpace(stderr) != want {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}
}

func TestExplain(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"by name", []string{"explain", "NOT_FOUND"}, "http: source=default -> 404"},
		{"by number", []string{"explain", "5"}, `code="NOT_FOUND"`},
		{"grpc", []string{"explain", "unavailable"}, "grpc: source=default -> UNAVAILABLE(14)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("explain: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestExplainWithConfig(t *testing.T) {
	p := writeConfig(t, "[http]\nCANCELLED = 408\n\n[grpc]\nABORTED = 14\n")

	out, _, err := execute(t, "--config", p, "explain", "CANCELLED")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if !strings.Contains(out, "http: source=override -> 408") {
		t.Errorf("override not applied:\n%s", out)
	}

	out, _, err = execute(t, "--config", p, "explain", "ABORTED")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if !strings.Contains(out, "grpc: source=override -> UNAVAILABLE(14)") {
		t.Errorf("override not applied:\n%s", out)
	}
}

func TestBadConfig(t *testing.T) {
	p := writeConfig(t, "[http]\nNOPE = 400\n")
	_, stderr, err := execute(t, "--config", p, "codes")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(stderr, "INVALID_ARGUMENT: ") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestExplainUnknownKind(t *testing.T) {
	_, stderr, err := execute(t, "explain", "BOGUS")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(stderr, `INVALID_ARGUMENT: unknown kind "BOGUS"`) {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestExplainArgs(t *testing.T) {
	_, stderr, err := execute(t, "explain")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(stderr, "INVALID_ARGUMENT: ") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestUnknownFlag(t *testing.T) {
	_, stderr, err := execute(t, "codes", "--nope")
	if err == nil {
		t.Fatal("expected error")
	}
	if want := "INVALID_ARGUMENT: unknown flag: --nope"; strings.TrimSpace(stderr) != want {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}
}

func TestRender(t *testing.T) {
	out, _, err := execute(t, "render", "NOT_FOUND", "no such user", "--locale", "en-US")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	status, body, ok := strings.Cut(out, "\n")
	if !ok || status != "HTTP 404" {
		t.Fatalf("status line = %q", status)
	}
	e, err := httpx.Decode([]byte(strings.TrimSpace(body)))
	if err != nil {
		t.Fatalf("decode body: %v\n%s", err, body)
	}
	if e.Code() != code.NotFound || e.Message() != "no such user" {
		t.Errorf("decoded = %v %q", e.Code(), e.Message())
	}
	if len(e.Details()) != 1 {
		t.Errorf("details = %v, want one localized message", e.Details())
	}
}

func TestGetGreeting(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"named", []string{"greeter", "get-greeting", "Ada"}, "Hello, Ada!\n"},
		{"stranger", []string{"greeter", "get-greeting"}, "Hello, stranger.\n"},
		{"async", []string{"greeter", "get-greeting", "--async", "Ada"}, "Hello, Ada!\n"},
		{"async stranger", []string{"greeter", "get-greeting", "--async"}, "Hello, stranger.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("get-greeting: %v", err)
			}
			if out != tt.want {
				t.Errorf("out = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestGetGreetingInvalidName(t *testing.T) {
	for _, async := range []bool{false, true} {
		args := []string{"greeter", "get-greeting", "\xff"}
		if async {
			args = append(args, "--async")
		}
		out, stderr, err := execute(t, args...)
		if err == nil {
			t.Fatalf("async=%v: expected error", async)
		}
		if out != "" {
			t.Errorf("async=%v: stdout = %q", async, out)
		}
		if want := "INVALID_ARGUMENT: name is not valid UTF-8"; strings.TrimSpace(stderr) != want {
			t.Errorf("async=%v: stderr = %q, want %q", async, stderr, want)
		}
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "fstatus dev\n") || !strings.Contains(out, "Go Version: go") {
		t.Errorf("out = %q", out)
	}
}

func TestAwaitCompletion_ReleasesLateResult(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ffi.SetLogger(zap.New(core))
	defer ffi.SetLogger(nil)

	late := make(chan ffi.Completion, 1)
	_, err := awaitCompletion(func(c ffi.Completion) { late <- c }, time.Millisecond)
	if err == nil {
		t.Fatal("expected a timeout")
	}
	if !strings.HasPrefix(err.Error(), "DEADLINE_EXCEEDED") {
		t.Fatalf("err = %v", err)
	}

	c := <-late
	r := ffi.NewResult([]byte("too late"))
	if err := c.Invoke(&r); err != nil {
		t.Fatalf("Invoke: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, e := range logs.FilterMessage("OwnedVec.Release").All() {
			if isNull, ok := e.ContextMap()["data.is_null"].(bool); ok && !isNull {
				return
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("late result was never released")
}
