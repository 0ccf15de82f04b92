// Package number generates bounded random numbers, booleans and characters.
//
// Every bounded generator takes a positive range n, an algorithm and a source
// and returns a value in [0, n). The algorithm only changes how the raw value
// is produced:
//
//	MATH_ABS       |raw| % n
//	MATH_RANDOM    global generator scaled by n, the source is ignored
//	RANDOM         fresh time seeded generator, raw % n, sign corrected
//	SECURE_RANDOM  floor(source.Float64() * n)
package number

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/anthonyraymond/randomizer/pkg/algorithm"
	"github.com/anthonyraymond/randomizer/pkg/randutils"
	"golang.org/x/exp/constraints"
)

// timeSeeded builds the disposable generator used by the RANDOM algorithm.
// Two calls in the same millisecond return the same stream.
func timeSeeded() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixMilli()), 0))
}

func boundedInt[T constraints.Signed](op string, n T, alg algorithm.RandomAlgorithm, src randutils.Source) (T, error) {
	if n <= 0 {
		return 0, rangeErrorf(op, "range must be positive, got %d", n)
	}

	switch alg.OrDefault() {
	case algorithm.MathAbs:
		return absMod(T(src.Int64()), n), nil
	case algorithm.MathRandom:
		return scaleInt(rand.Float64(), n), nil
	case algorithm.Random:
		return absMod(T(int64(timeSeeded().Uint64())), n), nil
	default:
		return scaleInt(src.Float64(), n), nil
	}
}

// absMod is |v| % n without overflowing on the minimum value of T.
func absMod[T constraints.Signed](v T, n T) T {
	r := v % n
	if r < 0 {
		r = -r
	}
	return r
}

func scaleInt[T constraints.Signed](f float64, n T) T {
	x := math.Floor(f * float64(n))
	if x >= float64(n) {
		return n - 1
	}
	return T(x)
}

func boundedFloat[T constraints.Float](op string, n T, alg algorithm.RandomAlgorithm, src randutils.Source) (T, error) {
	if !(n > 0) || math.IsInf(float64(n), 1) {
		return 0, rangeErrorf(op, "range must be a positive finite number, got %v", n)
	}

	var v float64
	switch alg.OrDefault() {
	case algorithm.MathAbs:
		v = math.Mod(math.Abs(src.Float64()), float64(n))
	case algorithm.MathRandom:
		v = rand.Float64() * float64(n)
	case algorithm.Random:
		v = math.Abs(math.Mod(timeSeeded().Float64(), float64(n)))
	default:
		v = src.Float64() * float64(n)
	}

	if T(v) >= n {
		return below(n), nil
	}
	return T(v), nil
}

// below returns the largest value of T smaller than n.
func below[T constraints.Float](n T) T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return T(math.Nextafter32(float32(n), float32(math.Inf(-1))))
	}
	return T(math.Nextafter(float64(n), math.Inf(-1)))
}

func Int8N(n int8, alg algorithm.RandomAlgorithm, src randutils.Source) (int8, error) {
	return boundedInt("Int8N", n, alg, src)
}

func Int16N(n int16, alg algorithm.RandomAlgorithm, src randutils.Source) (int16, error) {
	return boundedInt("Int16N", n, alg, src)
}

func Int32N(n int32, alg algorithm.RandomAlgorithm, src randutils.Source) (int32, error) {
	return boundedInt("Int32N", n, alg, src)
}

func Int64N(n int64, alg algorithm.RandomAlgorithm, src randutils.Source) (int64, error) {
	return boundedInt("Int64N", n, alg, src)
}

func IntN(n int, alg algorithm.RandomAlgorithm, src randutils.Source) (int, error) {
	return boundedInt("IntN", n, alg, src)
}

func Float32N(n float32, alg algorithm.RandomAlgorithm, src randutils.Source) (float32, error) {
	return boundedFloat("Float32N", n, alg, src)
}

func Float64N(n float64, alg algorithm.RandomAlgorithm, src randutils.Source) (float64, error) {
	return boundedFloat("Float64N", n, alg, src)
}
