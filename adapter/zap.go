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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/fstatus/apis"
)

// ZapError returns a zap field that renders err as a structured object
// under the "error" key: kind, code, message and details.
//
// Errors that do not implement apis.StatusError fall back to zap.Error.
func ZapError(err error) zap.Field {
	se, ok := err.(apis.StatusError)
	if !ok || se == nil {
		return zap.Error(err)
	}
	return zap.Object("error", viewMarshaler(ToView(se)))
}

type viewMarshaler apis.ErrorView

func (v viewMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("kind", v.Kind)
	enc.AddInt32("code", v.Code)
	if v.Message != "" {
		enc.AddString("message", v.Message)
	}
	if len(v.Details) == 0 {
		return nil
	}
	return enc.AddArray("details", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
		for _, d := range v.Details {
			if err := ae.AppendObject(detailMarshaler(d)); err != nil {
				return err
			}
		}
		return nil
	}))
}

type detailMarshaler apis.Detail

func (d detailMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("type", d.Type)
	if len(d.Violations) > 0 {
		err := enc.AddArray("violations", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
			for _, fv := range d.Violations {
				err := ae.AppendObject(zapcore.ObjectMarshalerFunc(func(oe zapcore.ObjectEncoder) error {
					oe.AddString("field", fv.Field)
					if fv.Description != "" {
						oe.AddString("description", fv.Description)
					}
					return nil
				}))
				if err != nil {
					return err
				}
			}
			return nil
		}))
		if err != nil {
			return err
		}
	}
	if len(d.StackEntries) > 0 {
		_ = enc.AddReflected("stack_entries", d.StackEntries)
	}
	if d.Debug != "" {
		enc.AddString("debug", d.Debug)
	}
	if d.Locale != "" {
		enc.AddString("locale", d.Locale)
		enc.AddString("message", d.Message)
	}
	return nil
}
