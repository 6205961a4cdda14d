// Package cli wires the routh command: flag parsing, logging and output.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/stability/internal/config"
	"github.com/katalvlaran/stability/internal/logging"
	"github.com/katalvlaran/stability/report"
	"github.com/katalvlaran/stability/routh"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// DefaultCoefficients is analysed when no coefficients are given:
// x³ + 3x² + 2x + 7.
var DefaultCoefficients = []float64{1, 3, 2, 7}

// usageError marks bad flags or arguments (exit code 2).
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// Run executes the command with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "routh:", err)
		return ExitUsage
	}

	cmd := NewRootCommand(cfg, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "routh:", err)
		var ue *usageError
		if errors.As(err, &ue) {
			return ExitUsage
		}
		return ExitFailure
	}

	return ExitOK
}

// NewRootCommand builds the cobra command. Flag defaults come from cfg, so
// flags override ROUTH_* environment variables.
func NewRootCommand(cfg config.Config, stdout, stderr io.Writer) *cobra.Command {
	var (
		coeffsFlag string
		formatFlag string
		pivotFlag  string
		printTable bool
	)

	cmd := &cobra.Command{
		Use:   "routh [flags] [coeff ...]",
		Short: "Count unstable poles with the Routh–Hurwitz criterion",
		Long: `routh builds the Routh–Hurwitz array for a characteristic polynomial
and counts the sign changes in its first column.

Coefficients are given highest degree first, either as arguments or with
--coeffs. Use "--" before a negative leading coefficient.

Examples:
  routh 1 3 2 7
  routh --coeffs 1,10,35,50,24 --table
  routh --format json -- -1 -2 -1`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(formatFlag)
			if err != nil {
				return &usageError{err: err}
			}
			policy, err := routh.ParsePivotPolicy(pivotFlag)
			if err != nil {
				return &usageError{err: err}
			}
			coeffs, err := parseCoefficients(append(splitList(coeffsFlag), args...))
			if err != nil {
				return err
			}

			logger := logging.NewOrNop(cfg.Log, stderr)
			defer func() { _ = logger.Sync() }()

			return analyze(logger, stdout, coeffs, policy, format, printTable)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	f := cmd.Flags()
	f.StringVarP(&coeffsFlag, "coeffs", "c", "", "comma separated coefficients, highest degree first")
	f.StringVarP(&formatFlag, "format", "f", cfg.Format, "output format: text, json or yaml")
	f.StringVar(&pivotFlag, "pivot", cfg.PivotPolicy, "zero pivot policy: fail or defer")
	f.BoolVarP(&printTable, "table", "t", cfg.PrintTable, "print the Routh array (text format)")

	return cmd
}

// analyze runs the criterion and writes the report.
func analyze(logger *zap.Logger, w io.Writer, coeffs []float64, policy routh.PivotPolicy, format report.Format, printTable bool) error {
	if len(coeffs) == 0 {
		coeffs = DefaultCoefficients
		logger.Info("no coefficients given, using default example", zap.Float64s("coeffs", coeffs))
	}
	logger.Debug("analysing polynomial",
		zap.Int("degree", len(coeffs)-1),
		zap.Stringer("pivot_policy", policy),
		zap.String("format", string(format)),
	)

	res, err := routh.Analyze(coeffs, routh.WithPivotPolicy(policy))
	if err != nil {
		rep, ok := report.FromZeroPivot(coeffs, policy, err)
		if !ok {
			logger.Error("analysis failed", zap.Error(err))
			return err
		}
		logger.Warn("zero pivot, reporting special case", zap.Error(err))
		return report.Write(w, rep, format, printTable)
	}

	logger.Debug("verdict",
		zap.Stringer("verdict", res.Verdict),
		zap.Stringer("stability", res.Stability),
		zap.Ints("sign_changes", res.SignChanges),
	)

	return report.Write(w, report.FromResult(res, policy), format, printTable)
}

// splitList splits on commas and whitespace, dropping empty fields.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == ';'
	})
}

// parseCoefficients parses every field of every argument as a float64.
func parseCoefficients(args []string) ([]float64, error) {
	var out []float64
	for _, a := range args {
		for _, field := range splitList(a) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, usagef("invalid coefficient %q", field)
			}
			out = append(out, v)
		}
	}

	return out, nil
}
