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
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dirpx.dev/fstatus"
	"dirpx.dev/fstatus/adapter"
	"dirpx.dev/fstatus/apis"
)

func newCodesCmd(a *app) *cobra.Command {
	var output string
	c := &cobra.Command{
		Use:   "codes",
		Short: "List every error kind with its HTTP and gRPC mapping",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeDescriptors(cmd.OutOrStdout(), output, adapter.Descriptors(a.mapper))
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json or yaml")
	return c
}

func writeDescriptors(w io.Writer, format string, ds []apis.ErrorDescriptor) error {
	switch format {
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CODE\tKIND\tHTTP\tGRPC\tRETRYABLE")
		for _, d := range ds {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%t\n", d.Code, d.Kind, d.HTTPStatus, d.GRPCCode, d.Retryable)
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ds)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ds); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fstatus.InvalidArgumentField(
			fstatus.Msg(fmt.Sprintf("unknown output format %q", format)),
			"output", fstatus.Msg("must be one of table, json, yaml"))
	}
}
