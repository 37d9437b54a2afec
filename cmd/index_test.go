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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexAndViewRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := writeFASTA(t, dir, "reads.fa", "ACGTACGT")
	idxPath := filepath.Join(dir, "reads.kmix")

	_, stderr, code := runCLI(t, "index", "-k", "2", "-o", idxPath, path, "--quiet")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	stdout, stderr, code := runCLI(t, "view", idxPath)
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "AC\t4")
	assert.Contains(t, stdout, "CG\t2")
	assert.Contains(t, stdout, "TA\t1")
}

func TestIndexAndViewRoundtripGzip(t *testing.T) {
	dir := t.TempDir()
	path := writeFASTA(t, dir, "reads.fa", "ACGTACGT")
	idxPath := filepath.Join(dir, "reads.kmix.gz")

	_, stderr, code := runCLI(t, "index", "-k", "2", "-o", idxPath, path, "--quiet")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	stdout, stderr, code := runCLI(t, "view", idxPath)
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "AC\t4")
}

func TestIndexCommandRequiresOutFile(t *testing.T) {
	path := writeFASTA(t, t.TempDir(), "reads.fa", "ACGT")

	_, stderr, code := runCLI(t, "index", "-k", "3", path, "--quiet")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "out-file")
}

func TestIndexCommandOutputErrorExitsTwo(t *testing.T) {
	path := writeFASTA(t, t.TempDir(), "reads.fa", "ACGT")
	badOut := t.TempDir()

	_, stderr, code := runCLI(t, "index", "-k", "3", "-o", badOut, path, "--quiet")
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, stderr)
}

func TestViewCommandMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist.kmix")

	_, stderr, code := runCLI(t, "view", missing)
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr)
}
