package qrng_test

import (
	"fmt"

	"github.com/katalvlaran/quasirandom/qrng"
	"github.com/katalvlaran/quasirandom/stats"
	"github.com/katalvlaran/quasirandom/uniform"
)

// ExampleNew draws 2-D points in the unit square.
func ExampleNew() {
	g, err := qrng.New[qrng.Pair[float64, float64]](
		qrng.PairOf[float64, float64](uniform.Float64{}, uniform.Float64{}), 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < 3; i++ {
		p := g.Gen()
		fmt.Printf("%.6f %.6f\n", p.First, p.Second)
	}
	// Output:
	// 0.754878 0.569840
	// 0.509755 0.139681
	// 0.264633 0.709521
}

// ExampleStruct fills a user struct field by field.
func ExampleStruct() {
	type particle struct {
		X, Y float64
		Spin bool
	}
	shape := qrng.Struct(
		qrng.FieldOf(func(p *particle, v float64) { p.X = v }, uniform.Float64{}),
		qrng.FieldOf(func(p *particle, v float64) { p.Y = v }, uniform.Float64{}),
		qrng.FieldOf(func(p *particle, v bool) { p.Spin = v }, uniform.Bool{}),
	)
	g := qrng.MustNew[particle](shape, 0)
	p := g.Gen()
	fmt.Printf("x=%.4f y=%.4f spin=%v\n", p.X, p.Y, p.Spin)
	// Output:
	// x=0.8192 y=0.6710 spin=false
}

// Example_pi estimates π from a 2-D stream.
func Example_pi() {
	g := qrng.MustNew[qrng.Pair[float64, float64]](
		qrng.PairOf[float64, float64](uniform.Float64{}, uniform.Float64{}), 0.123)
	pi, _ := stats.EstimatePi(100000, func() (float64, float64) {
		p := g.Gen()
		return p.First, p.Second
	})
	fmt.Printf("%.3f\n", pi)
	// Output:
	// 3.141
}

// ExampleCounter uses the integer-seeded form.
func ExampleCounter() {
	c := qrng.NewCounter(1)
	fmt.Printf("%.6f\n", c.Next())
	fmt.Printf("%.6f\n", c.Next())
	fmt.Println(c.Index())
	// Output:
	// 0.618034
	// 0.236068
	// 3
}
