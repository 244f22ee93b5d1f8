package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/quasirandom/sequence"
)

// ExampleNewState advances a one-dimensional state seeded at 0: the points are
// successive multiples of 1/φ modulo one.
func ExampleNewState() {
	st, err := sequence.NewState(1, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i := 0; i < 4; i++ {
		fmt.Printf("%.6f\n", st.Advance()[0])
	}
	// Output:
	// 0.618034
	// 0.236068
	// 0.854102
	// 0.472136
}

// ExampleDeriveConstants recomputes the two-dimensional constants, the
// reciprocal powers of the plastic number.
func ExampleDeriveConstants() {
	cs, err := sequence.DeriveConstants(2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.10f %.10f\n", cs[0], cs[1])
	// Output:
	// 0.7548776662 0.5698402910
}
