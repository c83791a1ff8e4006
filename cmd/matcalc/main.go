// SPDX-License-Identifier: MIT
// Command matcalc runs matrix operations on YAML matrix documents.
//
//	matcalc det a.yaml
//	matcalc inverse --format text a.yaml
//	matcalc mul a.yaml b.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output formats accepted by --format.
const (
	formatYAML = "yaml"
	formatText = "text"
)

var (
	// Global flags
	verbose bool
	format  string
	strict  bool

	// Per-command flags
	minorRow int
	minorCol int
	scaleBy  float64

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "matcalc",
	Short: "Dense matrix calculator",
	Long: `matcalc loads matrices from YAML documents of the form

  rows:
    - [1, 2]
    - [3, 4]

and prints the result of one operation. Determinants, cofactors and inverses
use Laplace expansion and are meant for small matrices.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if format != formatYAML && format != formatText {
			return fmt.Errorf("unknown --format %q (want %s or %s)", format, formatYAML, formatText)
		}

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", formatYAML, "Output format: yaml or text")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Reject NaN and Inf values in inputs and results")

	minorCmd.Flags().IntVar(&minorRow, "row", 0, "Row to delete (zero-based)")
	minorCmd.Flags().IntVar(&minorCol, "col", 0, "Column to delete (zero-based)")
	scaleCmd.Flags().Float64Var(&scaleBy, "by", 1, "Scale factor")
	_ = scaleCmd.MarkFlagRequired("by")

	rootCmd.AddCommand(
		detCmd,
		transposeCmd,
		cofactorsCmd,
		adjugateCmd,
		inverseCmd,
		minorCmd,
		scaleCmd,
		addCmd,
		subCmd,
		mulCmd,
		equalCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
