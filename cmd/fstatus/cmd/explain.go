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
	"dirpx.dev/fstatus/code"
)

func newExplainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explain KIND",
		Short: "Show how a kind resolves to HTTP and gRPC statuses",
		Long: `explain prints which table (override, default or fallback) each status
of KIND comes from. KIND is a name such as NOT_FOUND or a number such as 5.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseKind(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.mapper.Explain(c))
			return nil
		},
	}
}

func parseKind(s string) (code.Code, error) {
	c, err := code.Parse(s)
	if err != nil {
		return code.OK, fstatus.InvalidArgumentField(
			fstatus.Msg(fmt.Sprintf("unknown kind %q", s)),
			"kind", fstatus.Msg(err.Error())).WithError(err)
	}
	return c, nil
}
