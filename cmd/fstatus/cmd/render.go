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
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/fstatus"
	"dirpx.dev/fstatus/httpx"
)

func newRenderCmd(a *app) *cobra.Command {
	var locale string
	c := &cobra.Command{
		Use:   "render KIND [MESSAGE]",
		Short: "Print the HTTP status and JSON body written for an error",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return fstatus.InvalidArgument(fstatus.Msg(fmt.Sprintf("accepts 1 or 2 arg(s), received %d", len(args))))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseKind(args[0])
			if err != nil {
				return err
			}
			var msg string
			if len(args) == 2 {
				msg = args[1]
			}
			var opts []fstatus.Option
			if locale != "" && msg != "" {
				opts = append(opts, fstatus.WithLocalizedMessageOption(locale, msg))
			}
			e := fstatus.New(k, msg, opts...)
			body, err := httpx.Encode(e, a.mapper)
			if err != nil {
				return fstatus.Internal(fstatus.Msg(err.Error())).WithError(err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "HTTP %d\n", a.mapper.HTTPStatus(e.Code()))
			fmt.Fprintln(out, string(body))
			return nil
		},
	}
	c.Flags().StringVar(&locale, "locale", "", "attach MESSAGE as a localized message in this locale")
	return c
}
