// SPDX-License-Identifier: MIT

package cli

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quasirandom/internal/config"
	"github.com/katalvlaran/quasirandom/qrng"
	"github.com/katalvlaran/quasirandom/stats"
	"github.com/katalvlaran/quasirandom/uniform"
)

// piReport holds both Monte Carlo estimates and their absolute errors.
type piReport struct {
	Count       int     `json:"count"        yaml:"count"`
	Quasi       float64 `json:"quasi"        yaml:"quasi"`
	QuasiError  float64 `json:"quasi_error"  yaml:"quasi_error"`
	Pseudo      float64 `json:"pseudo"       yaml:"pseudo"`
	PseudoError float64 `json:"pseudo_error" yaml:"pseudo_error"`
}

func newPiCommand(a *app) *cobra.Command {
	var baselineSeed uint64
	cmd := &cobra.Command{
		Use:   "pi",
		Short: "Estimate π from points in the unit square",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPi(baselineSeed)
		},
	}
	f := cmd.Flags()
	f.Int(flagCount, config.DefaultCount, "number of points")
	f.Float64(flagSeed, config.DefaultSeed, "quasirandom seed in [0,1)")
	f.Uint64Var(&baselineSeed, flagBaselineSeed, 0, "ChaCha8 seed")
	addFormatFlag(cmd)

	return cmd
}

func (a *app) runPi(baselineSeed uint64) error {
	cfg := a.cfg
	g, err := qrng.New[qrng.Pair[float64, float64]](
		qrng.PairOf[float64, float64](uniform.Float64{}, uniform.Float64{}), cfg.Seed)
	if err != nil {
		return err
	}
	quasi, err := stats.EstimatePi(cfg.Count, func() (float64, float64) {
		p := g.Gen()
		return p.First, p.Second
	})
	if err != nil {
		return err
	}

	r := baseline(baselineSeed)
	pseudo, err := stats.EstimatePi(cfg.Count, func() (float64, float64) {
		return r.Float64(), r.Float64()
	})
	if err != nil {
		return err
	}

	rep := piReport{
		Count:       cfg.Count,
		Quasi:       quasi,
		QuasiError:  math.Abs(quasi - math.Pi),
		Pseudo:      pseudo,
		PseudoError: math.Abs(pseudo - math.Pi),
	}
	tab := table{
		header: []string{"source", "estimate", "abs_error"},
		rows: [][]string{
			{"quasirandom", formatFloat(rep.Quasi), formatFloat(rep.QuasiError)},
			{"pseudorandom", formatFloat(rep.Pseudo), formatFloat(rep.PseudoError)},
		},
	}
	if err = encode(a.out, cfg.Format, rep, tab); err != nil {
		return err
	}
	a.log.Info("estimated pi", "count", cfg.Count, "quasi_error", rep.QuasiError, "pseudo_error", rep.PseudoError)

	return nil
}
