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
	"io"
	"os"
	"strconv"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v5"
	"github.com/vbauerster/mpb/v5/decor"

	"github.com/kmertools/kcount"
	"github.com/kmertools/kcount/format"
	"github.com/kmertools/kcount/input"
)

var countCmd = &cobra.Command{
	Use:   "count <k> [path]",
	Short: "count canonical k-mers from FASTA/FASTQ sequences",
	Long: `count canonical k-mers from FASTA/FASTQ sequences

k (an integer in [1, 32]) and path are positional, matching the
top-level tool's documented surface: "kcount count <k> [path]". path
may be plain or gzip-compressed FASTA/FASTQ; "-" or an omitted path
reads from stdin.

`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		k, err := strconv.Atoi(args[0])
		if err != nil {
			checkError(&argError{what: "k", value: args[0]})
		}
		path := "-"
		if len(args) == 2 {
			path = args[1]
		}

		minCount := getFlagUint64(cmd, "min-count")
		minQuality := getFlagNonNegativeInt(cmd, "min-qual")
		threads := getFlagPositiveInt(cmd, "threads")
		outFile := getFlagString(cmd, "out-file")
		showProgress := getFlagBool(cmd, "progress") && !getFlagBool(cmd, "quiet")

		kind, err := format.ParseKind(getFlagString(cmd, "format"))
		checkError(err)

		files := []string{path}

		builder, err := kcount.NewBuilder().K(k)
		checkError(err)
		builder = builder.MinCount(minCount).Workers(threads)

		var bar *mpb.Bar
		var pbs *mpb.Progress
		if showProgress {
			pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))
			bar = pbs.AddBar(0,
				mpb.BarStyle("[=>-]<+"),
				mpb.PrependDecorators(
					decor.Name("counting k-mers: ", decor.WC{W: len("counting k-mers: "), C: decor.DidentRight}),
				),
				mpb.AppendDecorators(
					decor.Name("bases: ", decor.WC{W: len("bases: ")}),
					decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
				),
			)
		}

		onProgress := func(snap kcount.ProgressSnapshot) {
			if bar != nil {
				bar.SetCurrent(int64(snap.Bases))
			}
		}

		var packed map[uint64]uint64
		for _, file := range files {
			if !getFlagBool(cmd, "quiet") {
				logReadingFrom(file)
			}
			r, err := input.Open(file, minQuality)
			checkError(err)

			seqs, err := input.ReadAll(r)
			checkError(err)
			checkError(r.Close())

			partial, err := builder.CountPackedWithProgress(context.Background(), seqs, onProgress)
			checkError(err)
			packed = mergePacked(packed, partial)
		}

		if pbs != nil {
			pbs.Wait()
		}

		var out io.Writer = cmd.OutOrStdout()
		if outFile != "" && outFile != "-" {
			f, err := os.Create(outFile)
			checkOutputError(err)
			defer f.Close()
			out = f
		}

		if kind == format.Histogram {
			checkOutputError(format.WriteHistogram(out, kcount.BuildHistogram(packed)))
		} else {
			kl, err := kcount.NewKmerLength(k)
			checkError(err)
			counts := make(map[string]uint64, len(packed))
			for code, count := range packed {
				counts[string(kcount.Unpack(code, kl))] = count
			}
			checkOutputError(format.WriteCounts(out, counts, kind))
		}
		if !getFlagBool(cmd, "quiet") {
			log.Infof("%s distinct canonical k-mers", humanize.Comma(int64(len(packed))))
		}
	},
}

func mergePacked(dst, src map[uint64]uint64) map[uint64]uint64 {
	if dst == nil {
		return src
	}
	for k, v := range src {
		dst[k] += v
	}
	return dst
}

func init() {
	RootCmd.AddCommand(countCmd)

	countCmd.Flags().Uint64P("min-count", "m", 1, "minimum occurrence count to keep in the output")
	countCmd.Flags().IntP("min-qual", "Q", 0, "mask FASTQ bases below this Phred score to N (0 disables)")
	countCmd.Flags().StringP("out-file", "o", "-", `output file ("-" for stdout)`)
	countCmd.Flags().StringP("format", "f", "fasta", "output format: fasta, tsv, json, histogram")
	countCmd.Flags().BoolP("progress", "p", false, "show a progress bar on stderr")
}
