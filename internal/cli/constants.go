// SPDX-License-Identifier: MIT

package cli

import (
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quasirandom/internal/config"
	"github.com/katalvlaran/quasirandom/sequence"
)

const flagDerive = "derive"

// constantsReport lists the generator constants of one dimensionality and,
// with --derive, the values recomputed by bisection.
type constantsReport struct {
	Dim          int       `json:"dim"                     yaml:"dim"`
	Root         float64   `json:"root,omitempty"          yaml:"root,omitempty"`
	Constants    []float64 `json:"constants"               yaml:"constants"`
	Derived      []float64 `json:"derived,omitempty"       yaml:"derived,omitempty"`
	MaxDeviation *float64  `json:"max_deviation,omitempty" yaml:"max_deviation,omitempty"`
}

func newConstantsCommand(a *app) *cobra.Command {
	var derive bool
	cmd := &cobra.Command{
		Use:   "constants",
		Short: "Print the per-dimension increments 1/g^i",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runConstants(derive)
		},
	}
	cmd.Flags().Int(flagDim, config.DefaultDim, "dimensionality (1..32)")
	cmd.Flags().BoolVar(&derive, flagDerive, false, "also recompute the constants by bisection")
	addFormatFlag(cmd)

	return cmd
}

func (a *app) runConstants(derive bool) error {
	dim := a.cfg.Dim
	consts, err := sequence.Constants(dim)
	if err != nil {
		return err
	}
	rep := constantsReport{Dim: dim, Constants: consts}
	tab := table{header: []string{"index", "constant"}}

	if derive {
		root, err := sequence.GoldenRoot(dim)
		if err != nil {
			return err
		}
		derived, err := sequence.DeriveConstants(dim)
		if err != nil {
			return err
		}
		var maxDev float64
		for i := range consts {
			maxDev = math.Max(maxDev, math.Abs(consts[i]-derived[i]))
		}
		rep.Root, rep.Derived, rep.MaxDeviation = root, derived, &maxDev
		tab.header = append(tab.header, "derived", "deviation")
		a.log.Info("derived constants", "dim", dim, "root", root, "max_deviation", maxDev)
	}

	tab.rows = make([][]string, len(consts))
	for i, c := range consts {
		row := []string{strconv.Itoa(i + 1), formatFloat(c)}
		if derive {
			row = append(row, formatFloat(rep.Derived[i]), formatFloat(math.Abs(c-rep.Derived[i])))
		}
		tab.rows[i] = row
	}

	return encode(a.out, a.cfg.Format, rep, tab)
}
