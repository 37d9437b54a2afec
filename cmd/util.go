// Copyright © 2018-2021 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// argError reports a malformed positional argument, distinct from a
// flag-parsing failure so checkError's message stays specific about
// which positional value was bad.
type argError struct {
	what  string
	value string
}

func (e *argError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.what, e.value)
}

// osExit is os.Exit by default; tests override it to capture the exit
// code a real invocation would have produced without killing the test
// binary.
var osExit = os.Exit

// errWriter returns where checkError/checkOutputError print: RootCmd's
// error output, which is os.Stderr unless redirected with SetErr. It is
// assigned in init rather than at declaration because RootCmd's own
// initializer reaches checkError.
var errWriter func() io.Writer

func init() {
	errWriter = RootCmd.ErrOrStderr
}

// checkError prints err and exits with status 1 (argument or input
// error). Subcommands call this after every fallible operation instead
// of threading errors back up through cobra's RunE, matching the
// teacher's own style.
func checkError(err error) {
	if err != nil {
		fmt.Fprintf(errWriter(), "kcount: %s\n", err)
		osExit(1)
	}
}

// checkOutputError prints err and exits with status 2, reserved for
// failures writing the final result (output file, index file, stdout),
// per the CLI's documented exit code split between input/argument
// errors (1) and output errors (2).
func checkOutputError(err error) {
	if err != nil {
		fmt.Fprintf(errWriter(), "kcount: %s\n", err)
		osExit(2)
	}
}

func getFlagString(cmd *cobra.Command, flag string) string {
	s, err := cmd.Flags().GetString(flag)
	checkError(err)
	return s
}

func getFlagInt(cmd *cobra.Command, flag string) int {
	n, err := cmd.Flags().GetInt(flag)
	checkError(err)
	return n
}

func getFlagPositiveInt(cmd *cobra.Command, flag string) int {
	n := getFlagInt(cmd, flag)
	if n <= 0 {
		checkError(fmt.Errorf("value of flag --%s must be > 0", flag))
	}
	return n
}

func getFlagNonNegativeInt(cmd *cobra.Command, flag string) int {
	n := getFlagInt(cmd, flag)
	if n < 0 {
		checkError(fmt.Errorf("value of flag --%s must be >= 0", flag))
	}
	return n
}

func getFlagBool(cmd *cobra.Command, flag string) bool {
	b, err := cmd.Flags().GetBool(flag)
	checkError(err)
	return b
}

func getFlagUint64(cmd *cobra.Command, flag string) uint64 {
	n, err := cmd.Flags().GetUint64(flag)
	checkError(err)
	return n
}

// getFileList resolves positional arguments to a file list, treating a
// bare "-" or an empty arg list as stdin. This follows the teacher's
// own getFileList: multiple positional paths are supported, each
// processed in turn.
func getFileList(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	files := make([]string, len(args))
	copy(files, args)
	return files
}

// isStdin reports whether path names standard input by convention.
func isStdin(path string) bool {
	return path == "-" || path == ""
}

// logReadingFrom logs the file being opened, using a friendlier message
// for stdin than printing its "-" placeholder.
func logReadingFrom(path string) {
	if isStdin(path) {
		log.Info("reading sequence data from stdin")
		return
	}
	log.Infof("reading sequence file: %s", path)
}
