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
	"context"

	"github.com/spf13/cobra"

	"github.com/kmertools/kcount"
	"github.com/kmertools/kcount/format"
	"github.com/kmertools/kcount/input"
)

var histogramCmd = &cobra.Command{
	Use:   "histogram -k <int> [input files]",
	Short: "print a count-of-counts histogram of canonical k-mers",
	Run: func(cmd *cobra.Command, args []string) {
		k := getFlagPositiveInt(cmd, "kmer-len")
		threads := getFlagPositiveInt(cmd, "threads")
		files := getFileList(args)

		builder, err := kcount.NewBuilder().K(k)
		checkError(err)
		builder = builder.Workers(threads)

		var allSeqs [][]byte
		for _, file := range files {
			if !getFlagBool(cmd, "quiet") {
				logReadingFrom(file)
			}
			r, err := input.Open(file, 0)
			checkError(err)
			seqs, err := input.ReadAll(r)
			checkError(err)
			checkError(r.Close())
			allSeqs = append(allSeqs, seqs...)
		}

		entries, err := builder.Histogram(context.Background(), allSeqs)
		checkError(err)
		checkOutputError(format.WriteHistogram(cmd.OutOrStdout(), entries))
	},
}

func init() {
	RootCmd.AddCommand(histogramCmd)
	histogramCmd.Flags().IntP("kmer-len", "k", 0, "k-mer length (1-32)")
}
