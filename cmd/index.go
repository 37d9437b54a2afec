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
	"fmt"
	"os"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kmertools/kcount"
	"github.com/kmertools/kcount/input"
)

var indexCmd = &cobra.Command{
	Use:   "index -k <int> -o <file.kmix> [input files]",
	Short: "count k-mers and save a binary index file",
	Long: `count k-mers and save a binary index (.kmix) file

The index stores every (canonical k-mer, count) pair in a compact
16-bytes-per-entry layout with a trailing CRC32 checksum. Use "view" to
read one back.

`,
	Run: func(cmd *cobra.Command, args []string) {
		k := getFlagPositiveInt(cmd, "kmer-len")
		minCount := getFlagUint64(cmd, "min-count")
		threads := getFlagPositiveInt(cmd, "threads")
		outFile := getFlagString(cmd, "out-file")
		if outFile == "" {
			checkError(fmt.Errorf("required flag --out-file not set"))
		}

		files := getFileList(args)

		builder, err := kcount.NewBuilder().K(k)
		checkError(err)
		builder = builder.MinCount(minCount).Workers(threads)

		var merged map[uint64]uint64
		for _, file := range files {
			if !getFlagBool(cmd, "quiet") {
				logReadingFrom(file)
			}
			r, err := input.Open(file, 0)
			checkError(err)
			seqs, err := input.ReadAll(r)
			checkError(err)
			checkError(r.Close())

			packed, err := builder.CountPacked(context.Background(), seqs)
			checkError(err)
			if merged == nil {
				merged = packed
			} else {
				for code, count := range packed {
					merged[code] += count
				}
			}
		}

		kl, err := kcount.NewKmerLength(k)
		checkError(err)
		idx := kcount.Index{K: kl, Counts: merged}

		f, err := os.Create(outFile)
		checkOutputError(err)
		defer f.Close()

		if strings.HasSuffix(strings.ToLower(outFile), ".gz") {
			checkOutputError(kcount.SaveIndexGzip(f, idx))
		} else {
			checkOutputError(kcount.SaveIndex(f, idx))
		}

		if !getFlagBool(cmd, "quiet") {
			log.Infof("%s distinct canonical k-mers written to %s", humanize.Comma(int64(len(merged))), outFile)
		}
	},
}

var viewCmd = &cobra.Command{
	Use:   "view <file.kmix>",
	Short: "print the contents of a binary index file",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			checkError(fmt.Errorf("expected exactly one argument: file.kmix"))
		}
		path := args[0]

		f, err := os.Open(path)
		checkError(err)
		defer f.Close()

		var idx kcount.Index
		if strings.HasSuffix(strings.ToLower(path), ".gz") {
			idx, err = kcount.LoadIndexGzip(f)
		} else {
			idx, err = kcount.LoadIndex(f)
		}
		checkError(err)

		out := cmd.OutOrStdout()
		for code, count := range idx.Counts {
			kmer := kcount.Unpack(code, idx.K)
			_, err := fmt.Fprintf(out, "%s\t%s\n", kmer, humanize.Comma(int64(count)))
			checkOutputError(err)
		}
	},
}

func init() {
	RootCmd.AddCommand(indexCmd)
	RootCmd.AddCommand(viewCmd)

	indexCmd.Flags().IntP("kmer-len", "k", 0, "k-mer length (1-32)")
	indexCmd.Flags().Uint64P("min-count", "m", 1, "minimum occurrence count to keep in the output")
	indexCmd.Flags().StringP("out-file", "o", "", "output index file (required; .gz suffix gzip-compresses)")
}
