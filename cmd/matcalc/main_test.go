// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvmatrix/internal/matfile"
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// writeDoc stores a YAML matrix document in a temp dir and returns its path.
func writeDoc(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "m.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

// execute runs the command tree with fresh global flag state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	verbose, format, strict = false, formatYAML, false
	minorRow, minorCol, scaleBy = 0, 0, 1

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

const (
	doc2x2     = "rows:\n  - [1, 2]\n  - [3, 4]\n"
	docSingle  = "rows: [[1, 2], [2, 4]]\n"
	docWide    = "rows: [[1, 2, 3]]\n"
	docCofSrc  = "rows: [[1, 2, 3], [0, 4, 2], [5, 2, 1]]\n"
	docInv3x3  = "rows: [[2, 5, 7], [6, 3, 4], [5, -2, -3]]\n"
	docRagged  = "rows: [[1, 2], [3]]\n"
	docNonFin  = "rows: [[.nan, 1], [2, 3]]\n"
	docColumn  = "rows: [[1], [1]]\n"
	docOnes2x2 = "rows: [[1, 1], [1, 1]]\n"
)

func TestDet(t *testing.T) {
	out, err := execute(t, "det", writeDoc(t, doc2x2))
	require.NoError(t, err)
	require.Equal(t, "det: -2\n", out)

	out, err = execute(t, "det", "--format", "text", writeDoc(t, docInv3x3))
	require.NoError(t, err)
	require.Equal(t, "-1\n", out)

	_, err = execute(t, "det", writeDoc(t, docWide))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverse(t *testing.T) {
	out, err := execute(t, "inverse", "--format", "text", writeDoc(t, doc2x2))
	require.NoError(t, err)
	require.Equal(t, "[-2, 1]\n[1.5, -0.5]\n", out)

	// YAML output decodes back into the same matrix.
	out, err = execute(t, "inverse", writeDoc(t, docInv3x3))
	require.NoError(t, err)
	got, err := matfile.Decode(strings.NewReader(out))
	require.NoError(t, err)
	want, err := matrix.NewDenseFrom([][]float64{{1, -1, 1}, {-38, 41, -34}, {27, -29, 24}})
	require.NoError(t, err)
	require.True(t, matrix.Equal(want, got), out)

	_, err = execute(t, "inverse", writeDoc(t, docSingle))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestCofactorsAndAdjugate(t *testing.T) {
	src := writeDoc(t, docCofSrc)

	out, err := execute(t, "cofactors", "--format", "text", src)
	require.NoError(t, err)
	require.Equal(t, "[0, 10, -20]\n[4, -14, 8]\n[-8, -2, 4]\n", out)

	out, err = execute(t, "adjugate", "--format", "text", src)
	require.NoError(t, err)
	require.Equal(t, "[0, 4, -8]\n[10, -14, -2]\n[-20, 8, 4]\n", out)
}

func TestMinorScaleTranspose(t *testing.T) {
	src := writeDoc(t, docCofSrc)

	out, err := execute(t, "minor", "--row", "1", "--col", "1", "--format", "text", src)
	require.NoError(t, err)
	require.Equal(t, "[1, 3]\n[5, 1]\n", out)

	_, err = execute(t, "minor", "--row", "3", "--col", "0", src)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	out, err = execute(t, "scale", "--by", "-2", "--format", "text", writeDoc(t, doc2x2))
	require.NoError(t, err)
	require.Equal(t, "[-2, -4]\n[-6, -8]\n", out)

	out, err = execute(t, "transpose", "--format", "text", writeDoc(t, docWide))
	require.NoError(t, err)
	require.Equal(t, "[1]\n[2]\n[3]\n", out)
}

func TestBinaryOps(t *testing.T) {
	a := writeDoc(t, doc2x2)
	ones := writeDoc(t, docOnes2x2)

	out, err := execute(t, "mul", "--format", "text", a, a)
	require.NoError(t, err)
	require.Equal(t, "[7, 10]\n[15, 22]\n", out)

	out, err = execute(t, "add", "--format", "text", a, ones)
	require.NoError(t, err)
	require.Equal(t, "[2, 3]\n[4, 5]\n", out)

	out, err = execute(t, "sub", "--format", "text", a, ones)
	require.NoError(t, err)
	require.Equal(t, "[0, 1]\n[2, 3]\n", out)

	out, err = execute(t, "mul", "--format", "text", a, writeDoc(t, docColumn))
	require.NoError(t, err)
	require.Equal(t, "[3]\n[7]\n", out)

	_, err = execute(t, "add", a, writeDoc(t, docWide))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	out, err = execute(t, "equal", a, a)
	require.NoError(t, err)
	require.Equal(t, "equal: true\n", out)

	out, err = execute(t, "equal", "--format", "text", a, ones)
	require.NoError(t, err)
	require.Equal(t, "false\n", out)
}

func TestInputErrors(t *testing.T) {
	_, err := execute(t, "det", writeDoc(t, docRagged))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = execute(t, "det", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = execute(t, "det", "--format", "xml", writeDoc(t, doc2x2))
	require.ErrorContains(t, err, "unknown --format")

	_, err = execute(t, "det", "--strict", writeDoc(t, docNonFin))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = execute(t, "mul", writeDoc(t, doc2x2))
	require.Error(t, err, "mul needs two files")
}

func TestStrictResults(t *testing.T) {
	out, err := execute(t, "scale", "--strict", "--by", "1e308", "--format", "text", writeDoc(t, "rows: [[10, 1]]\n"))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Empty(t, out)

	big := writeDoc(t, "rows: [[1e200, 0], [0, 1e200]]\n")
	out, err = execute(t, "det", "--strict", big)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Empty(t, out)

	out, err = execute(t, "mul", "--strict", big, big)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Empty(t, out)

	// Without --strict the overflow is printed as is.
	out, err = execute(t, "scale", "--by", "1e308", "--format", "text", writeDoc(t, "rows: [[10, 1]]\n"))
	require.NoError(t, err)
	require.Equal(t, "[+Inf, 1e+308]\n", out)
}

// TestRunDetDirect calls a command body without the root, as a caller
// embedding the commands would.
func TestRunDetDirect(t *testing.T) {
	logger = zap.NewNop()
	format = formatText
	defer func() { format = formatYAML }()

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.NoError(t, runDet(cmd, []string{writeDoc(t, doc2x2)}))
	require.Equal(t, "-2\n", out.String())
}
