package number

import (
	"github.com/anthonyraymond/randomizer/pkg/randutils"
)

// fixedSource always returns the same draws.
type fixedSource struct {
	i64 int64
	f64 float64
	b   bool
	n   int
}

var _ randutils.Source = (*fixedSource)(nil)

func (f *fixedSource) Int32() int32     { return int32(f.i64) }
func (f *fixedSource) Int64() int64     { return f.i64 }
func (f *fixedSource) Uint64() uint64   { return uint64(f.i64) }
func (f *fixedSource) Float32() float32 { return float32(f.f64) }
func (f *fixedSource) Float64() float64 { return f.f64 }
func (f *fixedSource) Bool() bool       { return f.b }
func (f *fixedSource) IntN(n int) int {
	if f.n >= n {
		return n - 1
	}
	return f.n
}
func (f *fixedSource) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(f.i64)
	}
	return len(p), nil
}

func seeded() *randutils.Rand {
	return randutils.MustBuild(randutils.WithSeed(20200904))
}
