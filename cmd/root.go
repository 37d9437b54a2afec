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

// Package cmd implements the kcount command-line interface on top of
// cobra, following the teacher's own RootCmd/getOptions/checkError
// scaffolding.
package cmd

import (
	"fmt"
	"os"
	"runtime"

	colorable "github.com/mattn/go-colorable"
	logging "github.com/shenwei356/go-logging"
	"github.com/spf13/cobra"
)

var log = logging.MustGetLogger("kcount")

var logFormat = logging.MustStringFormatter(
	`%{color}[%{level:.4s}]%{color:reset} %{message}`,
)

// RootCmd is the entry point every subcommand registers itself against
// in its own init().
var RootCmd = &cobra.Command{
	Use:   "kcount",
	Short: "count canonical k-mers from FASTA/FASTQ sequence data",
	Long: `kcount counts canonical k-mers from FASTA/FASTQ sequence data

`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		backend := logging.NewLogBackend(colorable.NewColorableStderr(), "", 0)
		backendFormatter := logging.NewBackendFormatter(backend, logFormat)
		logging.SetBackend(backendFormatter)

		if getFlagBool(cmd, "quiet") {
			logging.SetLevel(logging.ERROR, "kcount")
		} else if getFlagBool(cmd, "verbose") {
			logging.SetLevel(logging.DEBUG, "kcount")
		} else {
			logging.SetLevel(logging.INFO, "kcount")
		}
	},
}

// Execute runs RootCmd; this is called from cmd/kcount/main.go.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		osExit(1)
	}
}

func init() {
	defaultThreads := runtime.NumCPU()
	if defaultThreads > 2 {
		defaultThreads = 2
	}

	RootCmd.PersistentFlags().IntP("threads", "j", defaultThreads, "number of worker goroutines")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "print extra progress information")
	RootCmd.PersistentFlags().BoolP("quiet", "q", false, "only print errors")
}
