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

package adapter

import (
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"dirpx.dev/fstatus"
	"dirpx.dev/fstatus/code"
	"dirpx.dev/fstatus/field"
	"dirpx.dev/fstatus/mapper"
)

func TestToView(t *testing.T) {
	e := fstatus.InvalidField(field.ForMember("name").WithinMember("user"), "bad user", "required").
		WithError(errors.New("decode failed"))

	v := ToView(e)
	if v.Kind != "INVALID_ARGUMENT" || v.Code != 3 || v.Message != "bad user" {
		t.Fatalf("view header = %+v", v)
	}
	if len(v.Details) != 2 {
		t.Fatalf("details = %d", len(v.Details))
	}
	if got := v.Details[0].Violations[0].Field; got != "user.name" {
		t.Errorf("violation field = %q", got)
	}
	if got := v.Details[1].Debug; got != "decode failed" {
		t.Errorf("debug = %q", got)
	}

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	var back map[string]any
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back["kind"] != "INVALID_ARGUMENT" {
		t.Errorf("json kind = %v", back["kind"])
	}
}

func TestToDescriptor(t *testing.T) {
	e := fstatus.Unavailable(fstatus.Msg("db down"))
	d := ToDescriptor(e, mapper.Default().Status(e.Code()))
	if d.Kind != "UNAVAILABLE" || d.Code != 14 || d.HTTPStatus != 503 || d.GRPCCode != 14 {
		t.Fatalf("descriptor = %+v", d)
	}
	if !d.Retryable || d.Message != "db down" {
		t.Errorf("descriptor = %+v", d)
	}
}

func TestDescriptors_AllKinds(t *testing.T) {
	ds := Descriptors(mapper.Default())
	if len(ds) != len(code.Values()) {
		t.Fatalf("got %d descriptors", len(ds))
	}
	if ds[0].Kind != "CANCELLED" || ds[0].HTTPStatus != 499 {
		t.Errorf("first = %+v", ds[0])
	}
	if ds[len(ds)-1].Kind != "UNAUTHENTICATED" {
		t.Errorf("last = %+v", ds[len(ds)-1])
	}
}

func TestZapError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	e := fstatus.NotFound(fstatus.Msg("no user")).
		WithDetails() // no-op
	log.Error("lookup failed", ZapError(e))
	log.Error("plain", ZapError(errors.New("boom")))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries = %d", len(entries))
	}
	obj, ok := entries[0].ContextMap()["error"].(map[string]any)
	if !ok {
		t.Fatalf("error field = %#v", entries[0].ContextMap()["error"])
	}
	if obj["kind"] != "NOT_FOUND" || obj["message"] != "no user" {
		t.Errorf("object = %v", obj)
	}
	if got := entries[1].ContextMap()["error"]; got != "boom" {
		t.Errorf("plain error = %v", got)
	}
}
