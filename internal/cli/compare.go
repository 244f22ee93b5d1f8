// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quasirandom/internal/config"
	"github.com/katalvlaran/quasirandom/qrng"
	"github.com/katalvlaran/quasirandom/stats"
	"github.com/katalvlaran/quasirandom/uniform"
)

const (
	flagPacking    = "packing"
	defaultPacking = 1000
	minPacking     = 2 // nearest-neighbour distances need a pair
)

// compareReport holds the uniformity measures of both streams.
type compareReport struct {
	Count          int     `json:"count"            yaml:"count"`
	QuasiCoverage  int     `json:"quasi_coverage"   yaml:"quasi_coverage"`
	PseudoCoverage int     `json:"pseudo_coverage"  yaml:"pseudo_coverage"`
	PackingPoints  int     `json:"packing_points"   yaml:"packing_points"`
	QuasiNNStdDev  float64 `json:"quasi_nn_stddev"  yaml:"quasi_nn_stddev"`
	PseudoNNStdDev float64 `json:"pseudo_nn_stddev" yaml:"pseudo_nn_stddev"`
}

func newCompareCommand(a *app) *cobra.Command {
	var (
		packing      int
		baselineSeed uint64
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare coverage and packing against ChaCha8",
		Long: "compare buckets --count 1-D draws into --count cells and reports how\n" +
			"many cells each stream touched, then measures the spread of\n" +
			"nearest-neighbour distances of --packing 3-D points.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCompare(packing, baselineSeed)
		},
	}
	f := cmd.Flags()
	f.Int(flagCount, config.DefaultCount, "1-D draws and buckets for the coverage measure")
	f.Float64(flagSeed, config.DefaultSeed, "quasirandom seed in [0,1)")
	f.IntVar(&packing, flagPacking, defaultPacking, "3-D points for the packing measure (O(n²))")
	f.Uint64Var(&baselineSeed, flagBaselineSeed, 0, "ChaCha8 seed")
	addFormatFlag(cmd)

	return cmd
}

func (a *app) runCompare(packing int, baselineSeed uint64) error {
	if packing < minPacking {
		return fmt.Errorf("compare: --%s must be at least %d, got %d: %w", flagPacking, minPacking, packing, config.ErrCount)
	}
	cfg := a.cfg
	rep := compareReport{Count: cfg.Count, PackingPoints: packing}

	var err error
	if rep.QuasiCoverage, rep.PseudoCoverage, err = coverage(cfg.Count, cfg.Seed, baselineSeed); err != nil {
		return err
	}
	if rep.QuasiNNStdDev, rep.PseudoNNStdDev, err = packingSpread(packing, cfg.Seed, baselineSeed); err != nil {
		return err
	}

	tab := table{
		header: []string{"metric", "quasirandom", "pseudorandom"},
		rows: [][]string{
			{"coverage", strconv.Itoa(rep.QuasiCoverage), strconv.Itoa(rep.PseudoCoverage)},
			{"nn_stddev", formatFloat(rep.QuasiNNStdDev), formatFloat(rep.PseudoNNStdDev)},
		},
	}
	if err = encode(a.out, cfg.Format, rep, tab); err != nil {
		return err
	}
	a.log.Info("compared",
		"count", rep.Count,
		"quasi_coverage", rep.QuasiCoverage,
		"pseudo_coverage", rep.PseudoCoverage,
		"packing_points", packing,
	)

	return nil
}

// coverage counts the cells of n equal buckets hit by n draws of each stream.
func coverage(n int, seed float64, baselineSeed uint64) (quasi, pseudo int, err error) {
	g, err := qrng.New[float64](qrng.One[float64](uniform.Float64{}), seed)
	if err != nil {
		return 0, 0, err
	}
	qs := make([]float64, n)
	g.Fill(qs)

	r := baseline(baselineSeed)
	ps := make([]float64, n)
	for i := range ps {
		ps[i] = r.Float64()
	}

	if quasi, err = stats.Coverage(qs, n); err != nil {
		return 0, 0, err
	}
	if pseudo, err = stats.Coverage(ps, n); err != nil {
		return 0, 0, err
	}

	return quasi, pseudo, nil
}

// packingSpread returns the standard deviation of nearest-neighbour
// distances of n 3-D points from each stream.
func packingSpread(n int, seed float64, baselineSeed uint64) (quasi, pseudo float64, err error) {
	g, err := qrng.New[[]float64](qrng.Coords(3), seed)
	if err != nil {
		return 0, 0, err
	}
	qp := make([][]float64, n)
	g.Fill(qp)

	r := baseline(baselineSeed)
	pp := make([][]float64, n)
	for i := range pp {
		pp[i] = []float64{r.Float64(), r.Float64(), r.Float64()}
	}

	if quasi, err = nnStdDev(qp); err != nil {
		return 0, 0, err
	}
	if pseudo, err = nnStdDev(pp); err != nil {
		return 0, 0, err
	}

	return quasi, pseudo, nil
}

func nnStdDev(points [][]float64) (float64, error) {
	d, err := stats.NearestNeighbor(points)
	if err != nil {
		return 0, err
	}
	_, sd, err := stats.MeanStdDev(d)

	return sd, err
}
