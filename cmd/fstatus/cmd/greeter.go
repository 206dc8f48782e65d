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
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/fstatus"
	"dirpx.dev/fstatus/examples/greeter"
	"dirpx.dev/fstatus/ffi"
)

func newGreeterCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "greeter",
		Short: "Call the greeter example through its C ABI bindings",
	}
	c.AddCommand(newGetGreetingCmd(a))
	return c
}

func newGetGreetingCmd(a *app) *cobra.Command {
	var (
		async   bool
		timeout time.Duration
	)
	c := &cobra.Command{
		Use:   "get-greeting [NAME]",
		Short: "Greet NAME, or a stranger when NAME is omitted",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fstatus.InvalidArgument(fstatus.Msg(fmt.Sprintf("accepts at most 1 arg(s), received %d", len(args))))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var name []byte
			if len(args) == 1 {
				name = []byte(args[0])
			}
			var (
				r   ffi.Result
				err error
			)
			if async {
				r, err = greetAsync(name, timeout)
			} else {
				r = greeter.GetGreetingResult(ffi.Borrow(name))
			}
			if err != nil {
				return err
			}
			defer r.Release()
			if e := r.Err(); e != nil {
				return e
			}
			a.log.Debug("greeting delivered", zap.Bool("async", async), zap.Int("bytes", len(r.Response())))
			fmt.Fprintln(cmd.OutOrStdout(), string(r.Response()))
			return nil
		},
	}
	c.Flags().BoolVar(&async, "async", false, "deliver the result through a completion callback")
	c.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "how long to wait for an async result")
	return c
}

func greetAsync(name []byte, timeout time.Duration) (ffi.Result, error) {
	return awaitCompletion(func(c ffi.Completion) {
		greeter.GetGreetingAsync(ffi.Borrow(name), c)
	}, timeout)
}

// awaitCompletion hands a fresh completion to start and waits for its
// result. A result delivered after the timeout is released.
func awaitCompletion(start func(ffi.Completion), timeout time.Duration) (ffi.Result, error) {
	done := make(chan ffi.Result, 1)
	start(ffi.NewCompletion(func(r ffi.Result) { done <- r }))
	select {
	case r := <-done:
		return r, nil
	case <-time.After(timeout):
		go func() {
			r := <-done
			r.Release()
		}()
		return ffi.Result{}, fstatus.DeadlineExceeded(fstatus.Msg("greeting was not delivered in " + timeout.String()))
	}
}
