// SPDX-License-Identifier: MIT
// Package: quasirandom/internal/cli
//
// root.go — the cobra command tree and the shared pre-run.
//
// Precedence for every setting: built-in default < --config file <
// QRNG_* environment < command-line flag. Data goes to stdout, logs to
// stderr.

// Package cli implements the qrng command.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quasirandom/internal/config"
	"github.com/katalvlaran/quasirandom/internal/logging"
)

// Flag names shared between commands and the override step.
const (
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagDim       = "dim"
	flagCount     = "count"
	flagSeed      = "seed"
	flagSkip      = "skip"
	flagFormat    = "format"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	cfg        config.Config
	log        *slog.Logger
}

// NewRootCommand builds the qrng command tree writing data to out and logs
// to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, log: logging.Discard()}

	root := &cobra.Command{
		Use:   "qrng",
		Short: "Quasirandom (R_d) sequence generator",
		Long: "qrng emits low-discrepancy point sets from the additive recurrence\n" +
			"x_i(n+1) = frac(x_i(n) + 1/g^i), g the root of g^(d+1) = g + 1,\n" +
			"and compares them with a pseudorandom baseline.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, flagConfig, "", "YAML file with default settings")
	pf.String(flagLogLevel, config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.String(flagLogFormat, config.DefaultLogFormat, "log format: text or json")

	root.AddCommand(
		newSampleCommand(a),
		newConstantsCommand(a),
		newCompareCommand(a),
		newPiCommand(a),
	)

	return root
}

// setup loads configuration, applies the flags the user actually set and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Read(a.configPath)
	if err != nil {
		return err
	}
	if err = applyFlags(cmd, &cfg); err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: a.errOut})
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.Debug("configuration loaded",
		"command", cmd.Name(),
		"config", a.configPath,
		"seed", cfg.Seed,
		"dim", cfg.Dim,
		"count", cfg.Count,
		"skip", cfg.Skip,
		"format", cfg.Format,
	)

	return nil
}

// applyFlags copies every changed flag that the command defines into cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	changed := func(name string) bool {
		f := fs.Lookup(name)
		return f != nil && f.Changed
	}

	var err error
	if changed(flagLogLevel) {
		if cfg.LogLevel, err = fs.GetString(flagLogLevel); err != nil {
			return err
		}
	}
	if changed(flagLogFormat) {
		if cfg.LogFormat, err = fs.GetString(flagLogFormat); err != nil {
			return err
		}
	}
	if changed(flagDim) {
		if cfg.Dim, err = fs.GetInt(flagDim); err != nil {
			return err
		}
	}
	if changed(flagCount) {
		if cfg.Count, err = fs.GetInt(flagCount); err != nil {
			return err
		}
	}
	if changed(flagSeed) {
		if cfg.Seed, err = fs.GetFloat64(flagSeed); err != nil {
			return err
		}
	}
	if changed(flagSkip) {
		if cfg.Skip, err = fs.GetUint64(flagSkip); err != nil {
			return err
		}
	}
	if changed(flagFormat) {
		if cfg.Format, err = fs.GetString(flagFormat); err != nil {
			return err
		}
	}

	return nil
}

// addFormatFlag registers --format on cmd.
func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().String(flagFormat, config.DefaultFormat, "output format: csv, json or yaml")
}
