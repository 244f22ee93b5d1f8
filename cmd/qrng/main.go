// SPDX-License-Identifier: MIT

// Command qrng generates quasirandom point sets and compares them with a
// pseudorandom baseline.
//
//	qrng sample --dim 3 --count 1000 --format csv > points.csv
//	qrng constants --dim 4 --derive
//	qrng compare --count 100000
//	qrng pi --count 1000000
//
// Settings come from --config (YAML), then QRNG_* environment variables,
// then flags.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/quasirandom/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qrng:", err)
		os.Exit(1)
	}
}
