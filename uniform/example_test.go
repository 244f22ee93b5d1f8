package uniform_test

import (
	"fmt"

	"github.com/katalvlaran/quasirandom/uniform"
)

// ExampleOption shows the split at 0.5 and the rescaling of the present half.
func ExampleOption() {
	opt := uniform.Option[uint8](uniform.Uint8{})
	for _, u := range []float64{0.1, 0.4, 0.6} {
		v, ok := opt.FromUniform(u).Get()
		fmt.Println(v, ok)
	}
	// Output:
	// 51 true
	// 204 true
	// 0 false
}

// ExampleNewChoice maps a coordinate onto one of several named variants.
func ExampleNewChoice() {
	weekday, err := uniform.NewChoice("Mon", "Tue", "Wed", "Thu", "Fri")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(weekday.FromUniform(0.05), weekday.FromUniform(0.5), weekday.FromUniform(0.95))
	// Output:
	// Mon Wed Fri
}

// ExampleNewRange scales a coordinate into a physical interval.
func ExampleNewRange() {
	celsius, _ := uniform.NewRange(-40, 60)
	fmt.Printf("%.1f\n", celsius.FromUniform(0.25))
	// Output:
	// -15.0
}
