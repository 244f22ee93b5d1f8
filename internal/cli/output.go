// SPDX-License-Identifier: MIT
// Package: quasirandom/internal/cli
//
// output.go — csv, json and yaml encoders for command results.
//
// Every command produces a document (encoded as JSON or YAML) and an
// equivalent table (encoded as CSV with a header row).

package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quasirandom/internal/config"
)

// table is the CSV view of a result.
type table struct {
	header []string
	rows   [][]string
}

// encode writes doc or tab to w depending on format.
func encode(w io.Writer, format string, doc any, tab table) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(tab.header); err != nil {
			return err
		}
		return cw.WriteAll(tab.rows)
	default:
		return fmt.Errorf("encode: %q: %w", format, config.ErrFormat)
	}
}

// formatFloat renders x with the shortest representation that round-trips.
func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// formatFloats renders every element of xs.
func formatFloats(xs []float64) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = formatFloat(x)
	}

	return out
}
