// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvmatrix/internal/matfile"
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var detCmd = &cobra.Command{
	Use:   "det FILE",
	Short: "Print the determinant of a square matrix",
	Args:  cobra.ExactArgs(1),
	RunE:  runDet,
}

var transposeCmd = &cobra.Command{
	Use:   "transpose FILE",
	Short: "Print the transpose",
	Args:  cobra.ExactArgs(1),
	RunE:  unary(matrix.Transpose),
}

var cofactorsCmd = &cobra.Command{
	Use:   "cofactors FILE",
	Short: "Print the cofactor matrix (algebraic complements)",
	Args:  cobra.ExactArgs(1),
	RunE:  unary(matrix.Cofactors),
}

var adjugateCmd = &cobra.Command{
	Use:   "adjugate FILE",
	Short: "Print the adjugate (transposed cofactor matrix)",
	Args:  cobra.ExactArgs(1),
	RunE:  unary(matrix.Adjugate),
}

var inverseCmd = &cobra.Command{
	Use:   "inverse FILE",
	Short: "Print the inverse; fails on singular input",
	Args:  cobra.ExactArgs(1),
	RunE:  unary(matrix.Inverse),
}

var minorCmd = &cobra.Command{
	Use:   "minor FILE --row R --col C",
	Short: "Print the matrix with one row and one column removed",
	Args:  cobra.ExactArgs(1),
	RunE: unary(func(m matrix.Matrix) (*matrix.Dense, error) {
		return matrix.Minor(m, minorRow, minorCol)
	}),
}

var scaleCmd = &cobra.Command{
	Use:   "scale FILE --by X",
	Short: "Multiply every element by a scalar",
	Args:  cobra.ExactArgs(1),
	RunE: unary(func(m matrix.Matrix) (*matrix.Dense, error) {
		return matrix.Scale(m, scaleBy)
	}),
}

var addCmd = &cobra.Command{
	Use:   "add A B",
	Short: "Print A + B",
	Args:  cobra.ExactArgs(2),
	RunE:  binary(matrix.Add),
}

var subCmd = &cobra.Command{
	Use:   "sub A B",
	Short: "Print A - B",
	Args:  cobra.ExactArgs(2),
	RunE:  binary(matrix.Sub),
}

var mulCmd = &cobra.Command{
	Use:   "mul A B",
	Short: "Print the matrix product A × B",
	Args:  cobra.ExactArgs(2),
	RunE:  binary(matrix.Mul),
}

var equalCmd = &cobra.Command{
	Use:   "equal A B",
	Short: "Report whether A and B match within the engine tolerance",
	Args:  cobra.ExactArgs(2),
	RunE:  runEqual,
}

// loadOptions maps CLI flags onto engine options.
func loadOptions() []matrix.Option {
	if strict {
		return []matrix.Option{matrix.WithValidateNaNInf()}
	}
	return nil
}

// checkResult holds a computed matrix to the same numeric policy as the inputs.
func checkResult(res *matrix.Dense) error {
	if !strict {
		return nil
	}
	guard, err := matrix.NewDense(res.Rows(), res.Cols(), loadOptions()...)
	if err != nil {
		return err
	}
	return guard.CopyFrom(res)
}

// loadAll decodes every path in order.
func loadAll(paths []string) ([]*matrix.Dense, error) {
	out := make([]*matrix.Dense, 0, len(paths))
	for _, p := range paths {
		m, err := matfile.Load(p, loadOptions()...)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded matrix", zap.String("path", p), zap.Int("rows", m.Rows()), zap.Int("cols", m.Cols()))
		out = append(out, m)
	}
	return out, nil
}

// unary adapts a single-operand kernel into a command body.
func unary(op func(matrix.Matrix) (*matrix.Dense, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ms, err := loadAll(args)
		if err != nil {
			return err
		}
		res, err := op(ms[0])
		if err != nil {
			logger.Debug("operation failed", zap.String("op", cmd.Name()), zap.Error(err))
			return err
		}
		if err = checkResult(res); err != nil {
			return fmt.Errorf("%s result: %w", cmd.Name(), err)
		}
		return writeMatrix(cmd.OutOrStdout(), res)
	}
}

// binary adapts a two-operand kernel into a command body.
func binary(op func(a, b matrix.Matrix) (*matrix.Dense, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ms, err := loadAll(args)
		if err != nil {
			return err
		}
		res, err := op(ms[0], ms[1])
		if err != nil {
			logger.Debug("operation failed", zap.String("op", cmd.Name()), zap.Error(err))
			return err
		}
		if err = checkResult(res); err != nil {
			return fmt.Errorf("%s result: %w", cmd.Name(), err)
		}
		return writeMatrix(cmd.OutOrStdout(), res)
	}
}

func runDet(cmd *cobra.Command, args []string) error {
	ms, err := loadAll(args)
	if err != nil {
		return err
	}
	det, err := matrix.Determinant(ms[0])
	if err != nil {
		return err
	}
	logger.Debug("determinant", zap.Float64("det", det))
	if strict && (math.IsNaN(det) || math.IsInf(det, 0)) {
		return fmt.Errorf("%s result: %w", cmd.Name(), matrix.ErrNaNInf)
	}
	return writeScalar(cmd.OutOrStdout(), "det", det)
}

func runEqual(cmd *cobra.Command, args []string) error {
	ms, err := loadAll(args)
	if err != nil {
		return err
	}
	return writeScalar(cmd.OutOrStdout(), "equal", matrix.Equal(ms[0], ms[1]))
}

func writeMatrix(w io.Writer, m *matrix.Dense) error {
	if format == formatText {
		_, err := fmt.Fprint(w, m.String())
		return err
	}
	return matfile.Encode(w, m)
}

// writeScalar prints v alone in text mode, or as a one-key document in YAML mode.
func writeScalar(w io.Writer, key string, v interface{}) error {
	if format == formatText {
		_, err := fmt.Fprintln(w, v)
		return err
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(map[string]interface{}{key: v}); err != nil {
		return err
	}
	return enc.Close()
}
