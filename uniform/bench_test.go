package uniform_test

import (
	"testing"

	"github.com/katalvlaran/quasirandom/uniform"
)

var sinkU64 uint64
var sinkI32 int32
var sinkOpt uniform.Optional[int32]

func BenchmarkUint64(b *testing.B) {
	var m uniform.Uint64
	u := 0.0
	for i := 0; i < b.N; i++ {
		u += 0.6180339887498949
		if u >= 1 {
			u--
		}
		sinkU64 = m.FromUniform(u)
	}
}

func BenchmarkInt32(b *testing.B) {
	var m uniform.Int32
	u := 0.0
	for i := 0; i < b.N; i++ {
		u += 0.6180339887498949
		if u >= 1 {
			u--
		}
		sinkI32 = m.FromUniform(u)
	}
}

func BenchmarkOptionInt32(b *testing.B) {
	m := uniform.Option[int32](uniform.Int32{})
	u := 0.0
	for i := 0; i < b.N; i++ {
		u += 0.6180339887498949
		if u >= 1 {
			u--
		}
		sinkOpt = m.FromUniform(u)
	}
}
