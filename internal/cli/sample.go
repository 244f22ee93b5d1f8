// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quasirandom/internal/config"
	"github.com/katalvlaran/quasirandom/qrng"
)

// samplePoint is one emitted point with its 1-based step number.
type samplePoint struct {
	Step  uint64    `json:"step"  yaml:"step"`
	Point []float64 `json:"point" yaml:"point,flow"`
}

func newSampleCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Emit raw points of an R_d sequence",
		Example: "  qrng sample --dim 3 --count 5\n" +
			"  QRNG_SEED=0.5 qrng sample --format json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSample()
		},
	}
	f := cmd.Flags()
	f.Int(flagDim, config.DefaultDim, "dimensions per point (1..32)")
	f.Int(flagCount, config.DefaultCount, "number of points")
	f.Float64(flagSeed, config.DefaultSeed, "seed in [0,1)")
	f.Uint64(flagSkip, 0, "steps to discard before the first point")
	addFormatFlag(cmd)

	return cmd
}

func (a *app) runSample() error {
	cfg := a.cfg
	g, err := qrng.New[[]float64](qrng.Coords(cfg.Dim), cfg.Seed, qrng.WithSkip(cfg.Skip))
	if err != nil {
		return err
	}

	points := make([]samplePoint, cfg.Count)
	tab := table{header: make([]string, 0, cfg.Dim+1), rows: make([][]string, cfg.Count)}
	tab.header = append(tab.header, "step")
	for i := 0; i < cfg.Dim; i++ {
		tab.header = append(tab.header, "x"+strconv.Itoa(i))
	}
	for i := range points {
		p := g.Gen()
		points[i] = samplePoint{Step: g.Steps(), Point: p}
		tab.rows[i] = append([]string{strconv.FormatUint(g.Steps(), 10)}, formatFloats(p)...)
	}

	if err = encode(a.out, cfg.Format, points, tab); err != nil {
		return err
	}
	a.log.Info("sampled",
		"dim", cfg.Dim,
		"count", cfg.Count,
		"seed", cfg.Seed,
		"skip", cfg.Skip,
		"state", g.String(),
	)

	return nil
}
