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

// Package cmd implements the fstatus command line.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/fstatus"
	"dirpx.dev/fstatus/apis"
	"dirpx.dev/fstatus/ffi"
	"dirpx.dev/fstatus/internal/config"
	"dirpx.dev/fstatus/internal/telemetry"
)

// app is the state shared by all commands once the root command's
// PersistentPreRunE has run.
type app struct {
	cfgFile  string
	logLevel string

	cfg    *config.Config
	log    *zap.Logger
	mapper apis.Mapper
}

func (a *app) setup() error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return fstatus.InvalidArgument(fstatus.Msg(err.Error())).WithError(err)
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	if a.log, err = telemetry.New(a.cfg.Log); err != nil {
		return fstatus.InvalidArgument(fstatus.Msg(err.Error())).WithError(err)
	}
	ffi.SetLogger(a.log.Named("ffi"))
	if a.mapper, err = a.cfg.Mapper(); err != nil {
		return fstatus.InvalidArgument(fstatus.Msg(err.Error())).WithError(err)
	}
	return nil
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "fstatus",
		Short: "Inspect the fstatus error taxonomy and run the greeter example",
		Long: `fstatus lists the sixteen error kinds and how they map onto HTTP and
gRPC, explains a single mapping, and calls the greeter example through the
same C ABI types a foreign host would use.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml or .yaml; default: $"+config.EnvConfig+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fstatus.InvalidArgument(fstatus.Msg(err.Error()))
	})

	root.AddCommand(
		newCodesCmd(a),
		newExplainCmd(a),
		newRenderCmd(a),
		newGreeterCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line and reports a failure as "KIND: message"
// on stderr.
func Execute() error {
	return run(NewRootCmd(), os.Args[1:], os.Stdout, os.Stderr)
}

func run(root *cobra.Command, args []string, stdout, stderr io.Writer) error {
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	if err != nil {
		printError(stderr, err)
	}
	return err
}

func printError(w io.Writer, err error) {
	e := fstatus.Convert(err)
	if msg := e.Message(); msg != "" {
		fmt.Fprintf(w, "%s: %s\n", e.Code(), msg)
		return
	}
	fmt.Fprintln(w, e.Code())
}

// exactArgs is cobra.ExactArgs reporting INVALID_ARGUMENT.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fstatus.InvalidArgument(fstatus.Msg(err.Error()))
		}
		return nil
	}
}
